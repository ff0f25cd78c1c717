package ports

import (
	"context"
	"io"

	"go.trai.ch/ship/internal/core/domain"
)

// CommandRunner runs external programs.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes cmd, streaming its output to the logger and to stdout when non-nil.
	Run(ctx context.Context, cmd *domain.Command, stdout io.Writer) error
	// Output executes cmd and returns its standard output.
	Output(ctx context.Context, cmd *domain.Command) (string, error)
}
