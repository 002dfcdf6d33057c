// Package configcmd provides the config command group for copycheck.
package configcmd

import (
	"github.com/spf13/cobra"
)

// NewCmdConfig creates the config command group.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage copycheck configuration",
	}

	cmd.AddCommand(newCmdShow())
	cmd.AddCommand(newCmdPath())
	cmd.AddCommand(newCmdClear())

	return cmd
}

// resolvePath returns the --config flag value or the default path.
func resolvePath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return path
	}
	return defaultPath()
}
