package template

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/appState"
	"github.com/promptdeck/promptdeck/internal/command"
	"github.com/promptdeck/promptdeck/internal/domain"
	"github.com/promptdeck/promptdeck/internal/prompt"
)

var saveCmd = &cobra.Command{
	Use:   "save [id]",
	Short: "Create a template, or update one by id",
	Long: `Create a new prompt template, or update an existing one when an id is given.
Content comes from --content or from piped stdin. Creation and usage metadata
are managed by the store and cannot be set here.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appState.Get()
		boundary, cleanup, err := command.Open(cmd.Context(), app.Config, app.Logger)
		if err != nil {
			return err
		}
		defer cleanup()

		content := contentFlag
		if content == "" {
			stat, _ := os.Stdin.Stat()
			if (stat.Mode() & os.ModeCharDevice) == 0 {
				raw, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read piped input: %w", err)
				}
				content = strings.TrimSpace(string(raw))
			}
		}

		var input domain.Template
		if len(args) == 1 {
			existing, err := findTemplate(cmd.Context(), boundary, args[0])
			if err != nil {
				return err
			}
			input = existing
			if cmd.Flags().Changed("title") {
				input.Title = titleFlag
			}
			if cmd.Flags().Changed("description") {
				input.Description = descriptionFlag
			}
			if cmd.Flags().Changed("category") {
				input.Category = categoryFlag
			}
			if cmd.Flags().Changed("favorite") {
				input.Favorite = favoriteFlag
			}
			if content != "" {
				input.Content = content
			}
		} else {
			input = domain.Template{
				Title:       titleFlag,
				Description: descriptionFlag,
				Content:     content,
				Category:    categoryFlag,
				Favorite:    favoriteFlag,
			}
		}

		if _, err := boundary.Dispatch(cmd.Context(), command.SaveTemplate{Template: input}); err != nil {
			return fmt.Errorf("failed to save template: %w", err)
		}

		if variables := prompt.ExtractVariables(input.Content); len(variables) > 0 {
			fmt.Printf("Saved %q with variables: %s\n", input.Title, strings.Join(variables, ", "))
		} else {
			fmt.Printf("Saved %q\n", input.Title)
		}
		return nil
	},
}

func init() {
	saveCmd.Flags().StringVarP(&titleFlag, "title", "t", "", "Template title")
	saveCmd.Flags().StringVarP(&descriptionFlag, "description", "d", "", "Template description")
	saveCmd.Flags().StringVar(&contentFlag, "content", "", "Template body with {{variable}} placeholders")
	saveCmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "Category id (defaults to general)")
	saveCmd.Flags().BoolVar(&favoriteFlag, "favorite", false, "Mark as favorite")
	TemplateCmd.AddCommand(saveCmd)
}
