package main

import (
	"fmt"

	"github.com/Hakkology/MuginCAD-sub000/internal/presentation/graph"
	"github.com/Hakkology/MuginCAD-sub000/internal/presentation/tui"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <session-id>",
	Short: "Summarise a stored drawing",
	Long: `Prints a report of a stored drawing: entity counts, the entity tree,
layers, axes and the structural type library. With --mermaid the entity tree
is printed as a Mermaid flowchart instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		p, err := env.backend.Store.Load(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("error loading session '%s': %w", args[0], err)
		}
		name := p.Name
		if name == "" {
			name = args[0]
		}
		m := domain.ModelFromProject(p)

		if mermaid, _ := cmd.Flags().GetBool("mermaid"); mermaid {
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(name, m, nil))
			return nil
		}
		out, err := tui.NewRenderer()(tui.Report(name, m))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("mermaid", false, "Print the entity tree as a Mermaid flowchart")
}
