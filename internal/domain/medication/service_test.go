package medication

import (
	"context"
	"errors"
	"sort"
	"testing"
)

type mockRepo struct {
	meds map[int]*Medication
}

func newMockRepo(meds ...*Medication) *mockRepo {
	r := &mockRepo{meds: make(map[int]*Medication)}
	for _, m := range meds {
		r.meds[m.ID] = m
	}
	return r
}

func (r *mockRepo) GetByID(ctx context.Context, id int) (*Medication, error) {
	m, ok := r.meds[id]
	if !ok {
		return nil, ErrNotFound
	}
	return m, nil
}

func (r *mockRepo) MissingIDs(ctx context.Context, ids []int) ([]int, error) {
	var missing []int
	seen := make(map[int]bool)
	for _, id := range ids {
		if _, ok := r.meds[id]; !ok && !seen[id] {
			missing = append(missing, id)
			seen[id] = true
		}
	}
	return missing, nil
}

func (r *mockRepo) List(ctx context.Context, limit, offset int) ([]*Medication, int, error) {
	var all []*Medication
	for _, m := range r.meds {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, len(all), nil
}

func TestGet(t *testing.T) {
	svc := NewService(newMockRepo(
		&Medication{ID: 1, Name: "Aspirin", Type: "NSAID"},
	))

	m, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name != "Aspirin" {
		t.Errorf("expected Aspirin, got %s", m.Name)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.Get(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMissingIDs(t *testing.T) {
	svc := NewService(newMockRepo(
		&Medication{ID: 1, Name: "Aspirin"},
		&Medication{ID: 2, Name: "Ibuprofen"},
	))

	missing, err := svc.MissingIDs(context.Background(), []int{1, 2, 3, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(missing) != 1 || missing[0] != 3 {
		t.Errorf("expected missing [3], got %v", missing)
	}
}

func TestMissingIDs_EmptyInput(t *testing.T) {
	svc := NewService(newMockRepo())

	missing, err := svc.MissingIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("empty input should be trivially satisfied, got %v", missing)
	}
}

func TestList(t *testing.T) {
	svc := NewService(newMockRepo(
		&Medication{ID: 1, Name: "Aspirin"},
		&Medication{ID: 2, Name: "Ibuprofen"},
	))

	meds, total, err := svc.List(context.Background(), 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(meds) != 2 {
		t.Errorf("expected 2 medications, got %d (total %d)", len(meds), total)
	}
}
