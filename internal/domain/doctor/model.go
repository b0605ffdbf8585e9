package doctor

import "errors"

// ErrNotFound is returned when a doctor id is not present in the directory.
var ErrNotFound = errors.New("doctor not found")

// Doctor maps to the doctors table. The directory is seeded and read-only
// through the API.
type Doctor struct {
	ID        int    `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"firstName"`
	LastName  string `db:"last_name" json:"lastName"`
	Email     string `db:"email" json:"email"`
}
