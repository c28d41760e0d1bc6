package category

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/appState"
	"github.com/promptdeck/promptdeck/internal/command"
)

var listCmd = &cobra.Command{
	Use:   "ls",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appState.Get()
		boundary, cleanup, err := command.Open(cmd.Context(), app.Config, app.Logger)
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := boundary.Dispatch(cmd.Context(), command.ListCategories{})
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		categories := result.(command.CategoriesResult).Categories

		countsResult, err := boundary.Dispatch(cmd.Context(), command.CountsByCategory{})
		if err != nil {
			return fmt.Errorf("failed to count templates: %w", err)
		}
		counts := countsResult.(command.CountsResult).Counts

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tName\tColor\tTemplates\tDescription")
		for _, c := range categories {
			name := c.Name
			if c.IsDefault {
				name += " (default)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", c.ID, name, c.Color, counts[c.ID], c.Description)
		}
		return w.Flush()
	},
}

func init() {
	CategoryCmd.AddCommand(listCmd)
}
