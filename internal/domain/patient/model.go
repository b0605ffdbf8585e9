package patient

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a patient id does not exist.
var ErrNotFound = errors.New("patient not found")

// Patient maps to the patients table.
type Patient struct {
	ID        int       `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name" json:"lastName"`
	Birthdate time.Time `db:"birthdate" json:"birthdate"`
}

// Input carries patient data submitted with a prescription. When ID is set
// and resolves to an existing row, that row is reused and the demographic
// fields are ignored; otherwise a new patient is created from them.
type Input struct {
	ID        *int      `json:"id,omitempty"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Birthdate time.Time `json:"birthdate"`
}

// Details is the patient detail view: demographics plus the full
// prescription history, ordered ascending by due date.
type Details struct {
	ID            int                  `json:"id"`
	FirstName     string               `json:"firstName"`
	LastName      string               `json:"lastName"`
	Birthdate     time.Time            `json:"birthdate"`
	Prescriptions []PrescriptionDetail `json:"prescriptions"`
}

type PrescriptionDetail struct {
	PrescriptionID int              `json:"prescriptionId"`
	Date           time.Time        `json:"date"`
	DueDate        time.Time        `json:"dueDate"`
	Doctor         DoctorRef        `json:"doctor"`
	Medications    []MedicationLine `json:"medications"`
}

type DoctorRef struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// MedicationLine is one prescribed medication within a prescription.
// Description is the line's own instructions text, not the medication's
// catalog description.
type MedicationLine struct {
	MedicationID int    `json:"medicationId"`
	Name         string `json:"name"`
	Dose         int    `json:"dose"`
	Description  string `json:"description"`
}
