package category

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/appState"
	"github.com/promptdeck/promptdeck/internal/command"
)

var countsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Show template counts per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appState.Get()
		boundary, cleanup, err := command.Open(cmd.Context(), app.Config, app.Logger)
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := boundary.Dispatch(cmd.Context(), command.CountsByCategory{})
		if err != nil {
			return fmt.Errorf("failed to count templates: %w", err)
		}
		counts := result.(command.CountsResult).Counts

		ids := make([]string, 0, len(counts))
		for id := range counts {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Category\tTemplates")
		for _, id := range ids {
			fmt.Fprintf(w, "%s\t%d\n", id, counts[id])
		}
		return w.Flush()
	},
}

func init() {
	CategoryCmd.AddCommand(countsCmd)
}
