package cmd

import (
	"github.com/alicefrolov/crispr-grna-designer/internal/grna"
	"github.com/spf13/cobra"
)

// findCmd is for inspecting a sequence without running a full design.
var findCmd = &cobra.Command{
	Use:                        "find",
	Short:                      "Find PAM sites or sequence metrics",
	SuggestionsMinimumDistance: 2,
	Long: `Find PAM sites in a sequence or calculate its metrics.
Useful for inspecting a target before designing gRNAs against it`,
	Aliases: []string{"ls", "list"},
}

// pamFindCmd is for listing the NGG PAM sites in a sequence.
var pamFindCmd = &cobra.Command{
	Use:                        "pam [sequence]",
	Short:                      "Find NGG PAM sites in a sequence",
	Run:                        grna.PAMFindCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  grna find pam AAAGGTTTGGC",
	Long: `Find every NGG PAM site in a sequence.
Writes each site to stdout with its offset, the PAM itself, and the gRNA
upstream of it (when there is enough upstream sequence)`,
	Aliases: []string{"pams"},
}

// gcFindCmd is for calculating the GC content of a sequence.
var gcFindCmd = &cobra.Command{
	Use:                        "gc [sequence]",
	Short:                      "Calculate the GC content of a sequence",
	Run:                        grna.GCFindCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  grna find gc ATGCATGC",
	Long:                       `Calculate the GC content of a sequence as a percentage.`,
}

// set flags
func init() {
	findCmd.AddCommand(pamFindCmd)
	findCmd.AddCommand(gcFindCmd)

	RootCmd.AddCommand(findCmd)
}
