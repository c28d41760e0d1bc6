package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptdeck/promptdeck/internal/appState"
	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/ui/cli/category"
	"github.com/promptdeck/promptdeck/internal/ui/cli/template"
)

var (
	logLevel string
	logFile  string
	dbPath   string
)

var rootCmd = &cobra.Command{
	Use:               "promptdeck",
	Short:             "Store, organize and fill prompt templates",
	Long:              `promptdeck keeps reusable prompt templates with {{variable}} placeholders, organized into categories, and renders filled-in instances on demand.`,
	DisableAutoGenTag: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set logging level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (defaults to stderr)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		overrides := &config.RuntimeOverrides{}
		if logLevel != "" {
			overrides.LogLevel = &logLevel
		}
		if logFile != "" {
			overrides.LogFile = &logFile
		}
		if dbPath != "" {
			overrides.DBPath = &dbPath
		}
		return appState.Initialize(overrides)
	}

	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return appState.Cleanup()
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		template.TemplateCmd,
		category.CategoryCmd,
		fillCmd,
	)
}
