package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ship/internal/app"
)

func (c *CLI) newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [flags] -- <command> [args...]",
		Short: "Run a command in every package, dependencies first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packages, _ := cmd.Flags().GetStringSlice("package")
			shell, _ := cmd.Flags().GetBool("shell")

			return c.app.Exec(cmd.Context(), app.ExecOptions{
				Args:     args,
				Shell:    shell,
				Packages: packages,
			})
		},
	}

	cmd.Flags().StringSliceP("package", "p", nil, "Run only in the named package (repeatable)")
	cmd.Flags().Bool("shell", false, "Run the arguments as one sh -c command line")

	return cmd
}
