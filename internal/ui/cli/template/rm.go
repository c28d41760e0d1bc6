package template

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/appState"
	"github.com/promptdeck/promptdeck/internal/command"
)

var deleteCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appState.Get()
		boundary, cleanup, err := command.Open(cmd.Context(), app.Config, app.Logger)
		if err != nil {
			return err
		}
		defer cleanup()

		target, err := findTemplate(cmd.Context(), boundary, args[0])
		if err != nil {
			return err
		}

		if !forceFlag {
			fmt.Printf("About to delete %q (%s)\n", target.Title, target.ID)
			fmt.Print("Are you sure? [y/N] ")
			var response string
			if _, err := fmt.Scanln(&response); err != nil && err.Error() != "unexpected newline" {
				return fmt.Errorf("failed to read input: %w", err)
			}
			response = strings.ToLower(strings.TrimSpace(response))
			if response != "y" && response != "yes" {
				fmt.Println("Operation cancelled")
				return nil
			}
		}

		if _, err := boundary.Dispatch(cmd.Context(), command.DeleteTemplate{TemplateID: target.ID}); err != nil {
			return fmt.Errorf("failed to delete template: %w", err)
		}

		fmt.Println("Template deleted")
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Delete without confirmation")
	TemplateCmd.AddCommand(deleteCmd)
}
