package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ship/internal/app"
)

func (c *CLI) newCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit and push the pending changes of the suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			return c.app.CommitAndPush(cmd.Context(), app.CommitOptions{Yes: yes})
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Commit and push without stopping at the warning")
	return cmd
}

func (c *CLI) newPrepareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Check dependencies, propagate versions, then commit and push",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			return c.app.Prepare(cmd.Context(), app.PrepareOptions{Yes: yes})
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Commit and push without stopping at the warning")
	return cmd
}
