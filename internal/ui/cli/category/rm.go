package category

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/appState"
	"github.com/promptdeck/promptdeck/internal/command"
	"github.com/promptdeck/promptdeck/internal/domain"
)

var deleteCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a category and move its templates to the default category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appState.Get()
		boundary, cleanup, err := command.Open(cmd.Context(), app.Config, app.Logger)
		if err != nil {
			return err
		}
		defer cleanup()

		id := args[0]

		if !forceFlag {
			fmt.Printf("About to delete category %q. Its templates will move to %q.\n", id, domain.DefaultCategoryID)
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

		if _, err := boundary.Dispatch(cmd.Context(), command.DeleteCategory{CategoryID: id}); err != nil {
			if domain.IsProtectedCategoryError(err) {
				return fmt.Errorf("the default category cannot be deleted")
			}
			return fmt.Errorf("failed to delete category: %w", err)
		}

		fmt.Println("Category deleted")
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Delete without confirmation")
	CategoryCmd.AddCommand(deleteCmd)
}
