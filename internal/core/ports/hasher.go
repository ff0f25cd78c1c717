package ports

// StateHasher summarizes the on-disk state of a directory tree.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type StateHasher interface {
	// ComputeStateHash returns a digest of every file under root.
	ComputeStateHash(root string) (string, error)
}
