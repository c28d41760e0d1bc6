package template

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/appState"
	"github.com/promptdeck/promptdeck/internal/command"
	"github.com/promptdeck/promptdeck/internal/prompt"
)

var useCmd = &cobra.Command{
	Use:   "use [id]",
	Short: "Render a template with variable values",
	Long: `Render a template, substituting --var name=value pairs into its
{{variable}} placeholders, and record the usage. Placeholders without a value
are left as-is so you can see which fields are still blank.`,
	Args: cobra.ExactArgs(1),
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

		values, err := parseVars(varFlags)
		if err != nil {
			return err
		}

		rendered := prompt.Render(t.Content, values)

		if _, err := boundary.Dispatch(cmd.Context(), command.RecordUsage{TemplateID: t.ID}); err != nil {
			return fmt.Errorf("failed to record usage: %w", err)
		}

		if copyFlag {
			if err := clipboard.WriteAll(rendered); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Println("Copied to clipboard")
			return nil
		}

		fmt.Println(rendered)

		if unresolved := prompt.ExtractVariables(rendered); len(unresolved) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "\nUnfilled variables: %s\n", strings.Join(unresolved, ", "))
		}
		return nil
	},
}

func init() {
	useCmd.Flags().StringArrayVar(&varFlags, "var", nil, "Variable value as name=value (repeatable)")
	useCmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the rendered text to the clipboard instead of printing")
	TemplateCmd.AddCommand(useCmd)
}
