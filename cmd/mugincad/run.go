package main

import (
	"github.com/Hakkology/MuginCAD-sub000/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [session-id]",
	Short: "Draw interactively",
	Long: `Starts an interactive drawing session on stdin/stdout.

With a session id the drawing is loaded from the configured store and saved
after every input. Without one the drawing is thrown away on exit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		sessionID, _ := cmd.Flags().GetString("session")
		if sessionID == "" && len(args) > 0 {
			sessionID = args[0]
		}
		headless, _ := cmd.Flags().GetBool("headless")
		jsonMode, _ := cmd.Flags().GetBool("json")
		debug, _ := cmd.Flags().GetBool("debug")

		return cli.RunSession(cmd.Context(), cli.RunOptions{
			Config:    cfg,
			SessionID: sessionID,
			JSON:      jsonMode,
			Headless:  headless,
			Debug:     debug,
			In:        cmd.InOrStdin(),
			Out:       cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("session", "s", "", "Session id to load and persist")
	runCmd.Flags().Bool("headless", false, "Run in headless mode (no banner or system messages)")
	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")

	rootCmd.RunE = runCmd.RunE
	rootCmd.Args = runCmd.Args
}
