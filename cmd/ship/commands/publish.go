package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ship/internal/app"
)

func (c *CLI) newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Release every changed package and the packages depending on it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			yes, _ := cmd.Flags().GetBool("yes")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			maxLoops, _ := cmd.Flags().GetInt("max-loops")
			level, _ := cmd.Flags().GetString("level")
			packages, _ := cmd.Flags().GetStringSlice("package")

			return c.app.Publish(cmd.Context(), app.PublishOptions{
				Force:    force,
				Yes:      yes,
				DryRun:   dryRun,
				MaxLoops: maxLoops,
				Level:    level,
				Packages: packages,
			})
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Bump unchanged packages and republish existing tags")
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().Bool("dry-run", false, "Print the packages that would be released")
	cmd.Flags().Int("max-loops", 0, "Maximum stabilization loops (defaults to the max_loops setting)")
	cmd.Flags().StringP("level", "l", "", "Version part to increment: patch, minor or major")
	cmd.Flags().StringSliceP("package", "p", nil, "Publish only the named package (repeatable)")

	return cmd
}
