package prescription

import (
	"errors"
	"time"

	"github.com/clinrx/clinrx/internal/domain/patient"
)

var (
	// ErrInvalid marks request validation failures. Raised before any
	// mutation; maps to a 4xx response.
	ErrInvalid = errors.New("invalid prescription request")

	// ErrTxFailed marks a failure inside the write transaction. The
	// transaction is rolled back in full before this is returned; maps to
	// a 5xx response.
	ErrTxFailed = errors.New("prescription write failed")
)

// MaxLines is the maximum number of medication lines per prescription.
const MaxLines = 10

// Prescription maps to the prescriptions table.
type Prescription struct {
	ID        int       `db:"id" json:"id"`
	Date      time.Time `db:"date" json:"date"`
	DueDate   time.Time `db:"due_date" json:"dueDate"`
	PatientID int       `db:"patient_id" json:"patientId"`
	DoctorID  int       `db:"doctor_id" json:"doctorId"`
}

// LineItem maps to the prescription_medications table. A medication appears
// at most once per prescription (composite primary key).
type LineItem struct {
	PrescriptionID int    `db:"prescription_id" json:"prescriptionId"`
	MedicationID   int    `db:"medication_id" json:"medicationId"`
	Dose           int    `db:"dose" json:"dose"`
	Details        string `db:"details" json:"details"`
}

// LineInput is one requested medication line.
type LineInput struct {
	MedicationID int    `json:"medicationId"`
	Dose         int    `json:"dose"`
	Description  string `json:"description"`
}

// CreateRequest is the boundary payload for creating a prescription.
type CreateRequest struct {
	Patient     patient.Input `json:"patient"`
	Medications []LineInput   `json:"medications"`
	Date        time.Time     `json:"date"`
	DueDate     time.Time     `json:"dueDate"`
	DoctorID    int           `json:"doctorId"`
}

// CreateResponse points the caller at the new prescription and the detail
// view of the patient it belongs to.
type CreateResponse struct {
	PrescriptionID int    `json:"prescriptionId"`
	PatientID      int    `json:"patientId"`
	Location       string `json:"location"`
}
