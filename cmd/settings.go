package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settingsCmd logs the design settings currently in use.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Log the design settings being used",
	Run: func(cmd *cobra.Command, args []string) {
		b, err := json.MarshalIndent(viper.AllSettings(), "", "  ")
		if err == nil {
			fmt.Println(string(b))
		}
	},
}

func init() {
	RootCmd.AddCommand(settingsCmd)
}
