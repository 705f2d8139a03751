package grna

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alicefrolov/crispr-grna-designer/config"
	"github.com/spf13/cobra"
)

// PAMFindCmd is for finding NGG PAM sites in a sequence and logging them.
func PAMFindCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno sequence passed.")
	}
	seq := strings.ToUpper(args[0])
	c := config.New()

	sites := FindPAMSites(seq)
	if len(sites) == 0 {
		stderr.Fatalln("no PAM sites found")
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "position\tpam\tgRNA\t\n")
	for _, p := range sites {
		// the gRNA upstream of the PAM, if there's enough sequence for one
		guide := "-"
		if start := p - c.GrnaLength; start >= 0 {
			guide = seq[start:p]
		}

		fmt.Fprintf(writer, "%d\t%s\t%s\n", p, seq[p:p+3], guide)
	}
	writer.Flush()
}

// GCFindCmd is for logging the GC content of a sequence.
func GCFindCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno sequence passed.")
	}

	fmt.Printf("%.1f%%\n", GCContent(strings.ToUpper(args[0])))
}
