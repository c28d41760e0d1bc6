package category

import (
	"github.com/spf13/cobra"
)

// CategoryCmd groups the category subcommands.
var CategoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage template categories",
}

var (
	nameFlag        string
	descriptionFlag string
	colorFlag       string
	forceFlag       bool
)
