package cmd

import (
	"github.com/alicefrolov/crispr-grna-designer/internal/grna"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// designCmd is for scanning a target sequence and ranking gRNA candidates.
var designCmd = &cobra.Command{
	Use:                        "design [sequence]",
	Short:                      "Design gRNAs against a target sequence",
	Run:                        grna.DesignCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Scan a target sequence for NGG PAM sites and rank the gRNA candidates
found upstream of each.

Every candidate is scored against simple quality heuristics: GC content
(optimal between 40% and 60%), homopolymer runs that raise off-target risk,
and the TTTT motif that terminates Pol III transcription. Candidates are
written to stdout, best first`,
	Aliases: []string{"d"},
	Example: "  grna design GGTCTCAATCGGTTACAGGCTAGCTAGGTTTACAGG",
}

// set flags
func init() {
	designCmd.Flags().StringP("in", "i", "", "input FASTA with the target sequence")
	designCmd.Flags().StringP("out", "o", "", "output file name for JSON results")
	designCmd.Flags().IntP("length", "l", 20, "length of the gRNAs to design")
	designCmd.Flags().IntP("top", "t", 10, "number of candidates to show")

	// settings is an optional parameter for a settings file that overrides the defaults
	designCmd.Flags().StringP("settings", "s", "", "settings file that overrides the defaults")

	viper.BindPFlag("grna-length", designCmd.Flags().Lookup("length"))
	viper.BindPFlag("top-candidates", designCmd.Flags().Lookup("top"))
	viper.BindPFlag("settings", designCmd.Flags().Lookup("settings"))

	RootCmd.AddCommand(designCmd)
}
