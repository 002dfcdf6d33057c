package configcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/copyops/copycheck/internal/config"
	"github.com/copyops/copycheck/internal/view"
)

func defaultPath() string {
	return config.DefaultConfigPath()
}

func newCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(resolvePath(cmd), output, noColor)
		},
	}
	return cmd
}

func runShow(path, output string, noColor bool) error {
	if err := view.ValidateFormat(output); err != nil {
		return err
	}

	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(output), noColor)
	if output == "json" {
		return renderer.RenderJSON(cfg)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	renderer.RenderKeyValue("Config file", describePath(path))
	renderer.RenderText(string(data))
	return nil
}

func describePath(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path + " (not found, defaults apply)"
	}
	return path
}
