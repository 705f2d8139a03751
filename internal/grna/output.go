package grna

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// lineWidth is the width of the dividers in the report
const lineWidth = 80

// Output is a struct containing the design results for one target.
type Output struct {
	// Target's sequence
	Target string `json:"target"`

	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// Candidates, best first
	Candidates []Candidate `json:"candidates"`
}

// printResults writes the formatted candidate report to w, showing at
// most top candidates. The quality score is logged out of 5, the best
// score a candidate can reach in practice, but it is not clamped: a
// candidate can score above 5 or below 0.
func printResults(w io.Writer, candidates []Candidate, top int) {
	if len(candidates) == 0 {
		fmt.Fprintln(w, "No suitable gRNA candidates found.")
		return
	}

	fmt.Fprintf(w, "\nFound %d gRNA candidate(s)\n\n", len(candidates))
	fmt.Fprintln(w, strings.Repeat("=", lineWidth))

	shown := candidates
	if len(shown) > top {
		shown = shown[:top]
	}

	for i, c := range shown {
		fmt.Fprintf(w, "\nCandidate #%d\n", i+1)
		fmt.Fprintln(w, strings.Repeat("-", lineWidth))
		fmt.Fprintf(w, "gRNA Sequence:  5'-%s-3'\n", c.Seq)
		fmt.Fprintf(w, "PAM:            %s\n", c.PAM)
		fmt.Fprintf(w, "Position:       %d\n", c.Position)
		fmt.Fprintf(w, "GC Content:     %.1f%%\n", c.GCContent)
		fmt.Fprintf(w, "Quality Score:  %d/5\n", c.Score)

		if len(c.Warnings) > 0 {
			fmt.Fprintf(w, "Warnings:       %s\n", strings.Join(c.Warnings, ", "))
		} else {
			fmt.Fprintf(w, "Warnings:       None (Good candidate!)\n")
		}
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("=", lineWidth))
	fmt.Fprintf(w, "\nTop candidate: 5'-%s-3'\n", candidates[0].Seq)
	fmt.Fprintln(w, "Recommended for experimental validation.")
}

// writeJSON turns the ranked candidates into an Output and writes it to
// the filename requested.
func writeJSON(filename, target string, candidates []Candidate, seconds float64) (output []byte, err error) {
	// store save time, using same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	timestamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	// round to one decimal place
	execution, err := strconv.ParseFloat(fmt.Sprintf("%.1f", seconds), 64)
	if err != nil {
		return nil, err
	}

	out := Output{
		Target:     target,
		Time:       timestamp,
		Execution:  execution,
		Candidates: candidates,
	}

	if output, err = json.MarshalIndent(out, "", "  "); err != nil {
		return nil, errors.Wrap(err, "failed to serialize design results")
	}

	if err = ioutil.WriteFile(filename, output, 0666); err != nil {
		return nil, errors.Wrapf(err, "failed to write results to %s", filename)
	}

	return output, nil
}
