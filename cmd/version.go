package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the opsdesk version",
	GroupID: "session",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("opsdesk %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
