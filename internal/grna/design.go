package grna

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/alicefrolov/crispr-grna-designer/config"
	"github.com/spf13/cobra"
)

// Candidate is a single gRNA candidate found upstream of a PAM site.
type Candidate struct {
	// Seq is the gRNA sequence, 5' to 3'
	Seq string `json:"sequence"`

	// PAM is the 3bp NGG motif immediately downstream of the gRNA
	PAM string `json:"pam"`

	// Position is the start offset of the gRNA in the target sequence
	Position int `json:"position"`

	// GCContent is the percentage of G and C bases in the gRNA
	GCContent float64 `json:"gcContent"`

	// Score is the heuristic quality score
	Score int `json:"score"`

	// Warnings raised while scoring the candidate
	Warnings []string `json:"warnings"`
}

// DesignCmd takes a cobra command (with its flags) and runs Design.
func DesignCmd(cmd *cobra.Command, args []string) {
	RunDesign(parseCmdFlags(cmd, args))
}

// RunDesign is for an end to end gRNA design against a target sequence.
// It prints the ranked candidates to stdout and, if an output path was
// passed, writes the results to a JSON file.
func RunDesign(flags *Flags, c *config.Config) []Candidate {
	start := time.Now()

	fmt.Println("CRISPR gRNA Designer")
	fmt.Println(strings.Repeat("=", lineWidth))
	fmt.Printf("\nTarget Sequence: %s\n", flags.target)
	fmt.Printf("Length: %d bp\n\n", len(flags.target))

	candidates := Design(flags.target, c)
	printResults(os.Stdout, candidates, c.TopCandidates)

	if flags.out != "" {
		elapsed := time.Since(start)
		if _, err := writeJSON(flags.out, flags.target, candidates, elapsed.Seconds()); err != nil {
			stderr.Fatalln(err)
		}
	}

	return candidates
}

// Design scans the target for NGG PAM sites and returns scored gRNA
// candidates upstream of each, best first.
func Design(target string, c *config.Config) []Candidate {
	target = strings.ToUpper(target)

	var candidates []Candidate
	for _, p := range FindPAMSites(target) {
		start := p - c.GrnaLength
		if start < 0 {
			continue // not enough upstream sequence
		}

		seq := target[start:p]
		if len(seq) != c.GrnaLength {
			continue
		}

		score, warnings := evaluate(seq, c.HomopolymerRun)
		candidates = append(candidates, Candidate{
			Seq:       seq,
			PAM:       target[p : p+3],
			Position:  start,
			GCContent: GCContent(seq),
			Score:     score,
			Warnings:  warnings,
		})
	}

	// best candidates first; ties keep their position order
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}
