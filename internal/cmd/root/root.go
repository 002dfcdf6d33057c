// Package root provides the root command for the copycheck CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/copyops/copycheck/internal/cmd/analyzecmd"
	"github.com/copyops/copycheck/internal/cmd/configcmd"
	initcmd "github.com/copyops/copycheck/internal/cmd/init"
	"github.com/copyops/copycheck/internal/cmd/normalize"
	"github.com/copyops/copycheck/internal/cmd/rulescmd"
	"github.com/copyops/copycheck/internal/version"
)

// NewCmdRoot creates the root command for copycheck.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copycheck",
		Short: "Normalize prose against a communications style guide",
		Long: `copycheck normalizes prose inside structured documents against a fixed
communications style guide: abbreviation expansion, punctuation, digital
terminology, time and number formatting, and terminology substitutions,
while preserving each character's visual formatting.

It also reports readability and keyword metrics on the result.

Get started by running: copycheck init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/copycheck/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	cmd.SetVersionTemplate("copycheck version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(normalize.NewCmdNormalize())
	cmd.AddCommand(analyzecmd.NewCmdAnalyze())
	cmd.AddCommand(rulescmd.NewCmdRules())
	cmd.AddCommand(configcmd.NewCmdConfig())

	return cmd
}
