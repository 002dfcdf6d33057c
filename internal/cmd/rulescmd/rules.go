// Package rulescmd provides the rules command: list rule categories and the
// rules inside them with their enabled state.
package rulescmd

import (
	"github.com/spf13/cobra"

	"github.com/copyops/copycheck/internal/config"
	"github.com/copyops/copycheck/internal/view"
)

type rulesOptions struct {
	configPath string
	output     string
	noColor    bool
}

// NewCmdRules creates the rules command.
func NewCmdRules() *cobra.Command {
	opts := &rulesOptions{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List rule categories and their rules",
		Example: `  # Show all rules and whether their category is enabled
  copycheck rules`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.configPath, _ = cmd.Flags().GetString("config")
			return runRules(opts)
		},
	}

	return cmd
}

func runRules(opts *rulesOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	cfgPath := opts.configPath
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}
	cfg, err := config.LoadWithEnv(cfgPath)
	if err != nil {
		return err
	}

	ruleset := cfg.RuleSet()
	pcfg := cfg.PipelineConfig()

	var rows [][]string
	for _, r := range ruleset.Rules() {
		enabled := "yes"
		if !pcfg.Enabled(r.Category) {
			enabled = "no"
		}
		kind := "rewrite"
		if r.Validate {
			kind = "check"
		}
		rows = append(rows, []string{r.Category.String(), r.Name, kind, enabled})
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	renderer.RenderTable([]string{"Category", "Rule", "Kind", "Enabled"}, rows)
	return nil
}
