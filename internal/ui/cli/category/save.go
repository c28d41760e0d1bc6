package category

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/appState"
	"github.com/promptdeck/promptdeck/internal/command"
	"github.com/promptdeck/promptdeck/internal/domain"
)

var saveCmd = &cobra.Command{
	Use:   "save [id]",
	Short: "Create a category, or update one by id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appState.Get()
		boundary, cleanup, err := command.Open(cmd.Context(), app.Config, app.Logger)
		if err != nil {
			return err
		}
		defer cleanup()

		input := domain.Category{
			Name:        nameFlag,
			Description: descriptionFlag,
			Color:       domain.Color(colorFlag),
		}
		if len(args) == 1 {
			input.ID = args[0]

			result, err := boundary.Dispatch(cmd.Context(), command.ListCategories{})
			if err != nil {
				return err
			}
			for _, existing := range result.(command.CategoriesResult).Categories {
				if existing.ID != input.ID {
					continue
				}
				if !cmd.Flags().Changed("name") {
					input.Name = existing.Name
				}
				if !cmd.Flags().Changed("description") {
					input.Description = existing.Description
				}
				if !cmd.Flags().Changed("color") {
					input.Color = existing.Color
				}
			}
		}

		result, err := boundary.Dispatch(cmd.Context(), command.SaveCategory{Category: input})
		if err != nil {
			return fmt.Errorf("failed to save category: %w", err)
		}

		saved := result.(command.CategoryResult).Category
		fmt.Printf("Saved category %q (%s)\n", saved.Name, saved.ID)
		return nil
	},
}

func init() {
	saveCmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Category name (unique, case-insensitive)")
	saveCmd.Flags().StringVarP(&descriptionFlag, "description", "d", "", "Category description")
	saveCmd.Flags().StringVarP(&colorFlag, "color", "c", "", "Palette color (blue, green, purple, red, orange, yellow, pink, gray)")
	CategoryCmd.AddCommand(saveCmd)
}
