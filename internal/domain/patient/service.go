package patient

import "context"

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

// ResolveOrCreate turns patient input into a stable patient id. Two explicit
// branches: a supplied id that resolves to an existing row is returned
// unchanged, with the stored demographics left untouched; in every other
// case a new patient row is inserted from the supplied fields. Existing
// rows are never updated.
func (s *Service) ResolveOrCreate(ctx context.Context, in Input) (int, error) {
	if in.ID != nil {
		exists, err := s.patients.Exists(ctx, *in.ID)
		if err != nil {
			return 0, err
		}
		if exists {
			return *in.ID, nil
		}
	}

	p := &Patient{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Birthdate: in.Birthdate,
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

// GetDetails returns the patient with its prescription history, ordered
// ascending by due date.
func (s *Service) GetDetails(ctx context.Context, id int) (*Details, error) {
	return s.patients.GetDetails(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}
