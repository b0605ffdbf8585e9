package medication

import "context"

type Service struct {
	medications Repository
}

func NewService(meds Repository) *Service {
	return &Service{medications: meds}
}

func (s *Service) Get(ctx context.Context, id int) (*Medication, error) {
	return s.medications.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Medication, int, error) {
	return s.medications.List(ctx, limit, offset)
}

// MissingIDs reports which of the given catalog ids do not exist. Used by
// the prescription write path to validate medication references in one
// round trip.
func (s *Service) MissingIDs(ctx context.Context, ids []int) ([]int, error) {
	return s.medications.MissingIDs(ctx, ids)
}
