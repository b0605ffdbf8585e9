package patient

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int) (*Patient, error)
	Exists(ctx context.Context, id int) (bool, error)
	// Create inserts a new patient row and sets p.ID to the assigned
	// identifier.
	Create(ctx context.Context, p *Patient) error
	// GetDetails loads a patient with its full prescription history in a
	// bounded number of queries.
	GetDetails(ctx context.Context, id int) (*Details, error)
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
}
