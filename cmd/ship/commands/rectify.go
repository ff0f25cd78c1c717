package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ship/internal/app"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/engine/pipeline"
)

func (c *CLI) newRectifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rectify",
		Short: "Bring package files to their declared state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			packages, _ := cmd.Flags().GetStringSlice("package")
			loop, _ := cmd.Flags().GetBool("loop")
			loopLimit, _ := cmd.Flags().GetInt("loop-limit")
			force, _ := cmd.Flags().GetBool("force")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			filterPath, _ := cmd.Flags().GetString("filter-path")
			filterOperation, _ := cmd.Flags().GetString("filter-operation")
			maxOps, _ := cmd.Flags().GetInt("max")

			return c.app.Rectify(cmd.Context(), app.RectifyOptions{
				Packages: packages,
				RectifyOptions: pipeline.RectifyOptions{
					Filters: domain.ScopeFilters{
						Path:      filterPath,
						Operation: domain.OperationKind(filterOperation),
						Max:       maxOps,
					},
					Force:     force,
					DryRun:    dryRun,
					Loop:      loop,
					LoopLimit: loopLimit,
				},
			})
		},
	}

	cmd.Flags().StringSliceP("package", "p", nil, "Rectify only the named package (repeatable)")
	cmd.Flags().Bool("loop", true, "Repeat passes until one applies no operation")
	cmd.Flags().Int("loop-limit", 0, "Maximum number of passes (defaults to the loop_limit setting)")
	cmd.Flags().BoolP("force", "f", false, "Apply even when the state did not change since the last pass")
	cmd.Flags().Bool("dry-run", false, "Print the planned operations without applying them")
	cmd.Flags().String("filter-path", "", "Only apply operations on paths matching this glob or prefix")
	cmd.Flags().String("filter-operation", "", "Only apply operations of this kind: create or update")
	cmd.Flags().Int("max", 0, "Apply at most this many operations per pass")

	return cmd
}
