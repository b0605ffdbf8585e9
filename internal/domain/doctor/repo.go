package doctor

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int) (*Doctor, error)
	List(ctx context.Context, limit, offset int) ([]*Doctor, int, error)
}
