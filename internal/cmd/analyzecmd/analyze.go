// Package analyzecmd provides the analyze command: readability and keyword
// metrics without rewriting anything.
package analyzecmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/copyops/copycheck/internal/config"
	"github.com/copyops/copycheck/internal/docfile"
	"github.com/copyops/copycheck/internal/view"
	"github.com/copyops/copycheck/pkg/analyze"
)

type analyzeOptions struct {
	keywords   []string
	configPath string
	output     string
	noColor    bool
}

// NewCmdAnalyze creates the analyze command.
func NewCmdAnalyze() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Report readability and keyword metrics for a document",
		Long: `Analyze a document without changing it: word count, Flesch-Kincaid
reading level, reading ease, and keyword frequency against the configured
targets.`,
		Example: `  # Analyze a page
  copycheck analyze page.md

  # Override the configured keywords
  copycheck analyze page.md --keywords "health care,virtual care"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.configPath, _ = cmd.Flags().GetString("config")
			return runAnalyze(args[0], opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.keywords, "keywords", nil, "Comma-separated keywords to count (overrides config)")

	return cmd
}

func runAnalyze(path string, opts *analyzeOptions) error {
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

	d, err := docfile.Load(path)
	if err != nil {
		return err
	}

	aopts := analyze.Options{
		Keywords:           cfg.Keywords,
		TargetWordCount:    cfg.TargetWordCount,
		TargetReadingLevel: cfg.TargetReadingLevel,
	}
	if len(opts.keywords) > 0 {
		aopts.Keywords = opts.keywords
	}
	for i, kw := range aopts.Keywords {
		aopts.Keywords[i] = strings.TrimSpace(kw)
	}

	report := analyze.Analyze(d, aopts)

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	renderer.RenderReport(report)
	return nil
}
