package main

import (
	"fmt"
	"text/tabwriter"

	mugincad "github.com/Hakkology/MuginCAD-sub000"
	"github.com/Hakkology/MuginCAD-sub000/pkg/adapters/loam"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the column and beam type catalog",
	Long: `The catalog is a directory of Markdown documents, one per column or beam
type, with the section in the front matter. New drawings started by 'run'
import it automatically.`,
}

func openCatalog(cmd *cobra.Command, env *environment, readOnly bool) (*loam.Catalog, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = env.cfg.CatalogDir
	}
	return loam.Open(dir, readOnly, loam.WithLogger(env.logger))
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog types",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		cat, err := openCatalog(cmd, env, true)
		if err != nil {
			return err
		}
		entries, err := cat.List(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tNAME\tSECTION\tCONCRETE\tSTEEL\tDOCUMENT")
		for _, e := range entries {
			second := e.Meta.Depth
			if e.Meta.Kind == loam.KindBeam {
				second = e.Meta.Height
			}
			fmt.Fprintf(w, "%s\t%s\t%gx%g\t%s\t%s\t%s\n",
				e.Meta.Kind, e.Meta.Name, e.Meta.Width, second, e.Meta.Concrete, e.Meta.Steel, e.ID)
		}
		return w.Flush()
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <session-id>",
	Short: "Merge the catalog into a stored drawing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		cat, err := openCatalog(cmd, env, true)
		if err != nil {
			return err
		}
		var n int
		err = env.manager(domain.LifecycleHooks{}).Do(cmd.Context(), args[0], func(d *mugincad.Drawing) error {
			n, err = cat.Import(cmd.Context(), d.Model().Definitions)
			return err
		})
		if err != nil {
			return fmt.Errorf("error importing into '%s': %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d types into '%s'\n", n, args[0])
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export <session-id>",
	Short: "Write the types of a stored drawing to the catalog",
	Args:  cobra.ExactArgs(1),
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
		cat, err := openCatalog(cmd, env, false)
		if err != nil {
			return err
		}
		defs := domain.ModelFromProject(p).Definitions
		if err := cat.Export(cmd.Context(), defs); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d types from '%s'\n", len(defs.ColumnTypes)+len(defs.BeamTypes), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd, catalogImportCmd, catalogExportCmd)
	catalogCmd.PersistentFlags().String("dir", "", "Catalog directory (default from catalog_dir)")
}
