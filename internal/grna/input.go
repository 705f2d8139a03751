package grna

import (
	"bufio"
	"log"
	"os"
	"strings"

	"github.com/alicefrolov/crispr-grna-designer/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra flags like "in" and "out" that are used
// by the design command.
type Flags struct {
	// the target sequence (from a positional argument or the first FASTA record)
	target string

	// the path of the FASTA file to read the target from
	in string

	// the path of the file to write JSON results to (optional)
	out string
}

// inputParser contains methods for parsing the input to the design command.
type inputParser struct{}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(target, out string) (*Flags, *config.Config) {
	return &Flags{
		target: target,
		out:    out,
	}, config.New()
}

// parseCmdFlags gathers the target sequence, out path, etc from a cobra cmd object.
// returns Flags and a Config struct for grna.RunDesign.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	fs := &Flags{}
	p := inputParser{}
	c := config.New()

	fs.in, _ = cmd.Flags().GetString("in")
	fs.out, _ = cmd.Flags().GetString("out")

	if len(args) > 0 {
		fs.target = args[0]
	} else if fs.in != "" {
		target, err := p.readFasta(fs.in)
		if err != nil {
			stderr.Fatalln(err)
		}
		fs.target = target
	} else {
		cmd.Help()
		stderr.Fatalln("\nno target sequence passed.")
	}

	return fs, c
}

// readFasta returns the sequence of the first record in a FASTA file.
// A warning is logged if the file holds more than one record.
func (p *inputParser) readFasta(path string) (seq string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open FASTA file %s", path)
	}
	defer f.Close()

	var headers []string
	var seqs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			headers = append(headers, strings.TrimPrefix(line, ">"))
			seqs = append(seqs, "")
		} else if len(seqs) > 0 {
			seqs[len(seqs)-1] += line
		}
	}
	if err = scanner.Err(); err != nil {
		return "", errors.Wrapf(err, "failed to read FASTA file %s", path)
	}

	if len(seqs) == 0 || seqs[0] == "" {
		return "", errors.Errorf("no sequence records in %s", path)
	}

	if len(seqs) > 1 {
		stderr.Printf(
			"warning: %d records were in %s. Only targeting the sequence of the first: %s\n",
			len(seqs),
			path,
			headers[0],
		)
	}

	return seqs[0], nil
}
