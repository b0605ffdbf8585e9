package medication

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int) (*Medication, error)
	// MissingIDs returns the subset of ids not present in the catalog,
	// resolved in a single query. An empty input is trivially satisfied.
	MissingIDs(ctx context.Context, ids []int) ([]int, error)
	List(ctx context.Context, limit, offset int) ([]*Medication, int, error)
}
