package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ship/internal/app"
)

func (c *CLI) newBumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bump",
		Short: "Create the next version of changed packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			packages, _ := cmd.Flags().GetStringSlice("package")
			level, _ := cmd.Flags().GetString("level")
			yes, _ := cmd.Flags().GetBool("yes")
			force, _ := cmd.Flags().GetBool("force")

			return c.app.Bump(cmd.Context(), app.BumpOptions{
				All:      all,
				Packages: packages,
				Level:    level,
				Yes:      yes,
				Force:    force,
			})
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Bump every package, changed or not")
	cmd.Flags().StringSliceP("package", "p", nil, "Bump only the named package (repeatable)")
	cmd.Flags().StringP("level", "l", "", "Version part to increment: patch, minor or major")
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().BoolP("force", "f", false, "Bump even when nothing changed since the last publication")

	return cmd
}
