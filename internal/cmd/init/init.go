// Package init provides the init command for copycheck.
package init

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/copyops/copycheck/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		wordCount    string
		readingLevel string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize copycheck configuration",
		Long: `Initialize copycheck with your style-guide targets.

This command will guide you through setting the target word count, target
reading level, keywords, and protected terms. The configuration will be
saved to ~/.config/copycheck/config.yml.`,
		Example: `  # Interactive setup
  copycheck init

  # Pre-populate targets
  copycheck init --word-count 600 --reading-level 8`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(wordCount, readingLevel)
		},
	}

	cmd.Flags().StringVar(&wordCount, "word-count", "", "Target word count")
	cmd.Flags().StringVar(&readingLevel, "reading-level", "", "Target reading level (grade)")

	return cmd
}

func runInit(prefillWordCount, prefillReadingLevel string) error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	wordCount := prefillWordCount
	readingLevel := prefillReadingLevel
	var keywords, exclusions string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target word count").
				Description("Reporting target for page copy (blank to skip)").
				Placeholder("600").
				Value(&wordCount).
				Validate(validateOptionalInt),

			huh.NewInput().
				Title("Target reading level").
				Description("Flesch-Kincaid grade target (blank to skip)").
				Placeholder("8").
				Value(&readingLevel).
				Validate(validateOptionalFloat),

			huh.NewInput().
				Title("Keywords (optional)").
				Description("Comma-separated keyword phrases to track").
				Placeholder("health care, virtual care").
				Value(&keywords),

			huh.NewInput().
				Title("Protected terms (optional)").
				Description("Comma-separated terms no rule may alter").
				Placeholder("AT&T, Q&A").
				Value(&exclusions),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg := &config.Config{}
	if wordCount != "" {
		cfg.TargetWordCount, _ = strconv.Atoi(strings.TrimSpace(wordCount))
	}
	if readingLevel != "" {
		cfg.TargetReadingLevel, _ = strconv.ParseFloat(strings.TrimSpace(readingLevel), 64)
	}
	cfg.Keywords = splitTrimmed(keywords)
	cfg.Exclusions = splitTrimmed(exclusions)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  copycheck normalize page.md")
	fmt.Println("  copycheck analyze page.md")

	return nil
}

func splitTrimmed(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func validateOptionalInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("must be a whole number")
	}
	return nil
}

func validateOptionalFloat(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}
