package ports

// ProgressReporter is a nestable progress handle. A handle owns a numeric
// total; a sub-range maps its own total onto [start, end] of its parent.
//
//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type ProgressReporter interface {
	// Advance moves forward by step units and shows label.
	Advance(step int, label string)
	// CreateSubRange returns a child handle with its own total covering [start, end] of this handle.
	CreateSubRange(start, end float64, total int) ProgressReporter
	// Finish moves to the end of the handle's range.
	Finish()
}
