package template

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/appState"
	"github.com/promptdeck/promptdeck/internal/command"
	"github.com/promptdeck/promptdeck/internal/prompt"
)

var varsCmd = &cobra.Command{
	Use:   "vars [id]",
	Short: "List the placeholder variables of a template",
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

		variables := prompt.ExtractVariables(t.Content)
		if len(variables) == 0 {
			fmt.Println("No variables")
			return nil
		}
		for _, name := range variables {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	TemplateCmd.AddCommand(varsCmd)
}
