package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/k5aq/adifcount"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of adifcount",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "adifcount version %s\n", strings.TrimSpace(adifcount.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
