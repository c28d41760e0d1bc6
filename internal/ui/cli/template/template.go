package template

import (
	"github.com/spf13/cobra"
)

// TemplateCmd groups the template subcommands.
var TemplateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"tmpl"},
	Short:   "Manage prompt templates",
}

var (
	titleFlag       string
	descriptionFlag string
	contentFlag     string
	categoryFlag    string
	favoriteFlag    bool
	forceFlag       bool
	copyFlag        bool
	varFlags        []string
)
