package ports

// Confirmer asks the operator a yes/no question.
//
//go:generate mockgen -source=confirmer.go -destination=mocks/mock_confirmer.go -package=mocks
type Confirmer interface {
	Confirm(question string, defaultYes bool) (bool, error)
}
