package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/quill/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site into the public directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			skipInvalid, _ := cmd.Flags().GetBool("skip-invalid")

			_, err := c.app.Build(cmd.Context(), app.BuildOptions{
				ConfigPath:  configPath,
				SkipInvalid: skipInvalid,
			})
			return err
		},
	}
	cmd.Flags().Bool("skip-invalid", false, "Skip documents that fail to parse instead of aborting")
	return cmd
}
