package medication

import "errors"

// ErrNotFound is returned when a medication id is not present in the catalog.
var ErrNotFound = errors.New("medication not found")

// Medication maps to the medications table. The catalog is seeded at
// migration time and read-only through the API.
type Medication struct {
	ID          int    `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Type        string `db:"type" json:"type"`
}
