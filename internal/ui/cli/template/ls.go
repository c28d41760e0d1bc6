package template

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/appState"
	"github.com/promptdeck/promptdeck/internal/command"
)

var listCmd = &cobra.Command{
	Use:   "ls",
	Short: "List prompt templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appState.Get()
		boundary, cleanup, err := command.Open(cmd.Context(), app.Config, app.Logger)
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := boundary.Dispatch(cmd.Context(), command.ListTemplates{})
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}
		templates := result.(command.TemplatesResult).Templates

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTitle\tCategory\tUses\tLast used")

		for _, t := range templates {
			if categoryFlag != "" && t.Category != categoryFlag {
				continue
			}

			title := t.Title
			if t.Favorite {
				title = "* " + title
			}
			lastUsed := "never"
			if t.LastUsed > 0 {
				lastUsed = time.UnixMilli(t.LastUsed).Format(time.RFC822)
			}

			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", t.ID, title, t.Category, t.UsageCount, lastUsed)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "Only show templates in this category")
	TemplateCmd.AddCommand(listCmd)
}
