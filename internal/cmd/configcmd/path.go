package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCmdPath() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Println(resolvePath(cmd))
			return nil
		},
	}
}
