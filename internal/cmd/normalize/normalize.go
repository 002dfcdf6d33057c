// Package normalize provides the normalize command: run the style-guide
// pipeline over one or more documents.
package normalize

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/copyops/copycheck/internal/config"
	"github.com/copyops/copycheck/internal/docfile"
	"github.com/copyops/copycheck/internal/view"
	"github.com/copyops/copycheck/pkg/doc"
	"github.com/copyops/copycheck/pkg/pipeline"
)

type normalizeOptions struct {
	write      bool
	outPath    string
	diff       bool
	quiet      bool
	configPath string
	output     string
	noColor    bool
}

// NewCmdNormalize creates the normalize command.
func NewCmdNormalize() *cobra.Command {
	opts := &normalizeOptions{}

	cmd := &cobra.Command{
		Use:   "normalize <file>...",
		Short: "Apply the style guide to one or more documents",
		Long: `Normalize a document against the communications style guide.

The input format is chosen by extension: .md/.markdown, .html/.htm, or the
run-level .json format. Multiple files are processed concurrently.`,
		Example: `  # Print the normalized document to stdout
  copycheck normalize page.md

  # Rewrite the file in place and show a diff
  copycheck normalize -w --diff page.md

  # Normalize a batch
  copycheck normalize -w docs/*.md`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.configPath, _ = cmd.Flags().GetString("config")
			return runNormalize(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Rewrite the input file in place")
	cmd.Flags().StringVar(&opts.outPath, "out", "", "Write the normalized document to this path (single file only)")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Show a unified diff of the changes")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress the change log and analysis report")

	return cmd
}

func runNormalize(ctx context.Context, paths []string, opts *normalizeOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}
	if opts.outPath != "" && len(paths) > 1 {
		return fmt.Errorf("--out cannot be used with multiple input files")
	}

	cfgPath := opts.configPath
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}
	cfg, err := config.LoadWithEnv(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ruleset := cfg.RuleSet()
	pcfg := cfg.PipelineConfig()

	docs := make([]*doc.Document, len(paths))
	befores := make([]string, len(paths))
	for i, path := range paths {
		d, err := docfile.Load(path)
		if err != nil {
			return err
		}
		docs[i] = d
		befores[i] = d.Text()
	}

	results, err := pipeline.ProcessBatch(ctx, docs, ruleset, pcfg)
	if err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	for i, res := range results {
		if res == nil {
			renderer.Error(fmt.Sprintf("%s: not processed", paths[i]))
			continue
		}
		if err := emitResult(renderer, paths[i], befores[i], res, opts, len(paths) > 1); err != nil {
			return err
		}
	}
	return nil
}

func emitResult(renderer *view.Renderer, path, before string, res *pipeline.Result, opts *normalizeOptions, multi bool) error {
	// Re-insert disclaimer markers around legal text so the written document
	// segments the same way on a later run.
	outDoc := doc.WithDisclaimerMarkers(res.Doc, res.Regions)

	if opts.output == "json" {
		return renderer.RenderJSON(struct {
			File     string           `json:"file"`
			Result   *pipeline.Result `json:"result"`
			Document *doc.Document    `json:"document"`
		}{File: path, Result: res, Document: outDoc})
	}

	if multi {
		renderer.RenderKeyValue("File", path)
	}

	switch {
	case opts.write:
		if err := docfile.Save(outDoc, path); err != nil {
			return err
		}
		renderer.Success(fmt.Sprintf("%s: %d correction(s)", path, len(res.Changes)))
	case opts.outPath != "":
		if err := docfile.Save(outDoc, opts.outPath); err != nil {
			return err
		}
		renderer.Success(fmt.Sprintf("%s: %d correction(s), written to %s", path, len(res.Changes), opts.outPath))
	default:
		data, err := docfile.Encode(outDoc, path)
		if err != nil {
			return err
		}
		_, _ = os.Stdout.Write(data)
	}

	renderer.RenderWarnings(res.Warnings)
	if opts.diff {
		renderer.RenderDiff(before, outDoc.Text())
	}
	if !opts.quiet {
		renderer.RenderChanges(res)
		fmt.Println()
		renderer.RenderReport(res.Report)
	}
	return nil
}
