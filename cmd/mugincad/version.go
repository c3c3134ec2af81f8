package main

import (
	"fmt"
	"strings"

	mugincad "github.com/Hakkology/MuginCAD-sub000"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mugincad",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mugincad version %s\n", strings.TrimSpace(mugincad.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
