package configcmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/copyops/copycheck/internal/view"
)

func newCmdClear() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runClear(resolvePath(cmd), force, noColor)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")
	return cmd
}

func runClear(path string, force, noColor bool) error {
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("No configuration found at %s\n", path)
		return nil
	}

	if !force {
		var confirm bool
		err := huh.NewConfirm().
			Title("Delete configuration?").
			Description(path).
			Value(&confirm).
			Run()
		if err != nil {
			return err
		}
		if !confirm {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove config: %w", err)
	}

	renderer := view.NewRenderer(view.FormatTable, noColor)
	renderer.Success("Configuration removed")
	return nil
}
