package template

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/appState"
	"github.com/promptdeck/promptdeck/internal/command"
	"github.com/promptdeck/promptdeck/internal/prompt"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a template in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appState.Get()
		boundary, cleanup, err := command.Open(cmd.Context(), app.Config, app.Logger)
		if err != nil {
			return err
		}
		defer cleanup()

		t, err := findTemplate(cmd.Context(), boundary, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID:          %s\n", t.ID)
		fmt.Printf("Title:       %s\n", t.Title)
		if t.Description != "" {
			fmt.Printf("Description: %s\n", t.Description)
		}
		fmt.Printf("Category:    %s\n", t.Category)
		fmt.Printf("Favorite:    %v\n", t.Favorite)
		fmt.Printf("Created:     %s\n", time.UnixMilli(t.CreatedAt).Format(time.RFC822))
		fmt.Printf("Updated:     %s\n", time.UnixMilli(t.UpdatedAt).Format(time.RFC822))
		if t.LastUsed > 0 {
			fmt.Printf("Last used:   %s (%d uses)\n", time.UnixMilli(t.LastUsed).Format(time.RFC822), t.UsageCount)
		}
		if variables := prompt.ExtractVariables(t.Content); len(variables) > 0 {
			fmt.Printf("Variables:   %s\n", strings.Join(variables, ", "))
		}
		fmt.Printf("\n%s\n", t.Content)
		return nil
	},
}

func init() {
	TemplateCmd.AddCommand(showCmd)
}
