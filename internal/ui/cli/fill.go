package cli

import (
	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/appState"
	"github.com/promptdeck/promptdeck/internal/command"
	"github.com/promptdeck/promptdeck/internal/ui/tui/fill"
)

var fillCmd = &cobra.Command{
	Use:   "fill [id]",
	Short: "Interactively fill a template with a live preview",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appState.Get()
		boundary, cleanup, err := command.Open(cmd.Context(), app.Config, app.Logger)
		if err != nil {
			return err
		}
		defer cleanup()

		templateID := ""
		if len(args) == 1 {
			templateID = args[0]
		}
		return fill.Run(cmd.Context(), boundary, templateID)
	},
}
