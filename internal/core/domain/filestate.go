package domain

// ScopeFilters restrict a file-state pass to part of the declared state.
type ScopeFilters struct {
	// Path keeps only operations whose relative path matches this glob or prefix.
	Path string
	// Operation keeps only operations of this kind.
	Operation OperationKind
	// Max caps the number of operations, 0 meaning unlimited.
	Max int
}

// IsZero reports whether no filter is set.
func (f ScopeFilters) IsZero() bool {
	return f.Path == "" && f.Operation == "" && f.Max == 0
}

// OperationKind is the kind of change a file-state operation makes.
type OperationKind string

const (
	// OperationCreate writes a missing file.
	OperationCreate OperationKind = "create"
	// OperationUpdate rewrites a file whose content differs.
	OperationUpdate OperationKind = "update"
)

// FileOperation is one planned change to a package's files.
type FileOperation struct {
	Kind OperationKind
	// Path is relative to the package directory.
	Path string
	// Content is the target content.
	Content string
	// Diff is a unified diff from current to target content.
	Diff string
}

// ConvergenceRecord is the persisted result of the last full apply pass of a package.
type ConvergenceRecord struct {
	// LastUpdateHash is the state hash after the last full pass, "" when cleared.
	LastUpdateHash string
}

// Settings holds operator settings for a suite.
type Settings struct {
	Remote      string `mapstructure:"remote"`
	MainBranch  string `mapstructure:"main_branch"`
	MergeToMain bool   `mapstructure:"merge_to_main"`
	MaxLoops    int    `mapstructure:"max_loops"`
	LoopLimit   int    `mapstructure:"loop_limit"`
	BumpLevel   string `mapstructure:"bump_level"`
	LogFormat   string `mapstructure:"log_format"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Remote:      "origin",
		MainBranch:  "main",
		MergeToMain: true,
		MaxLoops:    3,
		LoopLimit:   10,
		BumpLevel:   string(BumpPatch),
		LogFormat:   "pretty",
	}
}
