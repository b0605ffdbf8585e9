package prescription

import (
	"context"

	"github.com/clinrx/clinrx/internal/domain/patient"
)

type Repository interface {
	// Create inserts the prescription row and sets p.ID to the assigned
	// identifier.
	Create(ctx context.Context, p *Prescription) error
	// AddLines inserts all line items for a prescription in one batch.
	AddLines(ctx context.Context, lines []*LineItem) error
}

// MedicationRegistry is the catalog existence check used during validation.
type MedicationRegistry interface {
	MissingIDs(ctx context.Context, ids []int) ([]int, error)
}

// PatientResolver turns patient input into a stable patient id, creating a
// row when needed.
type PatientResolver interface {
	ResolveOrCreate(ctx context.Context, in patient.Input) (int, error)
}

// TxRunner owns the transaction around the multi-statement write.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
