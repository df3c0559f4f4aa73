package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDeployCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the entry file and everything it imports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return c.app.Run(cmd.Context(), configPath)
		},
	}
}
