package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clinrx/clinrx/internal/domain/medication"
	"github.com/clinrx/clinrx/internal/domain/patient"
	"github.com/clinrx/clinrx/internal/domain/prescription"
	"github.com/clinrx/clinrx/internal/platform/db"
)

func newServices() (*prescription.Service, *patient.Service) {
	pool := globalDB.Pool
	patientSvc := patient.NewService(patient.NewRepoPG(pool))
	medSvc := medication.NewService(medication.NewRepoPG(pool))
	presSvc := prescription.NewService(
		prescription.NewRepoPG(pool), patientSvc, medSvc, db.NewTxManager(pool))
	return presSvc, patientSvc
}

var (
	issueDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	birthdate = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
)

func newPatientRequest(firstName string, due time.Time, lines ...prescription.LineInput) *prescription.CreateRequest {
	return &prescription.CreateRequest{
		Patient: patient.Input{
			FirstName: firstName,
			LastName:  "Nowak",
			Birthdate: birthdate,
		},
		Medications: lines,
		Date:        issueDate,
		DueDate:     due,
		DoctorID:    1,
	}
}

func TestPrescriptionWorkflow(t *testing.T) {
	ctx := context.Background()
	presSvc, patientSvc := newServices()

	req := newPatientRequest("Anna", issueDate.AddDate(0, 0, 7),
		prescription.LineInput{MedicationID: 1, Dose: 2, Description: "Twice daily"})

	prescriptionID, patientID, err := presSvc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create prescription: %v", err)
	}
	if prescriptionID <= 0 || patientID <= 0 {
		t.Fatalf("expected positive ids, got prescription=%d patient=%d", prescriptionID, patientID)
	}

	details, err := patientSvc.GetDetails(ctx, patientID)
	if err != nil {
		t.Fatalf("get details: %v", err)
	}
	if details.FirstName != "Anna" {
		t.Errorf("expected Anna, got %s", details.FirstName)
	}
	if len(details.Prescriptions) != 1 {
		t.Fatalf("expected 1 prescription, got %d", len(details.Prescriptions))
	}

	pd := details.Prescriptions[0]
	if pd.PrescriptionID != prescriptionID {
		t.Errorf("expected prescription %d, got %d", prescriptionID, pd.PrescriptionID)
	}
	if pd.Doctor.ID != 1 || pd.Doctor.LastName != "House" {
		t.Errorf("unexpected doctor: %+v", pd.Doctor)
	}
	if len(pd.Medications) != 1 {
		t.Fatalf("expected 1 medication line, got %d", len(pd.Medications))
	}
	line := pd.Medications[0]
	if line.MedicationID != 1 || line.Name != "Aspirin" || line.Dose != 2 || line.Description != "Twice daily" {
		t.Errorf("medication line not preserved: %+v", line)
	}
}

func TestCreate_RollbackLeavesNoOrphanPatient(t *testing.T) {
	ctx := context.Background()
	presSvc, _ := newServices()

	patientsBefore := countRows(t, ctx, "patients")
	prescriptionsBefore := countRows(t, ctx, "prescriptions")
	linesBefore := countRows(t, ctx, "prescription_medications")

	// Unknown doctor id trips the foreign key inside the transaction,
	// after the patient row has already been inserted.
	req := newPatientRequest("Orphan", issueDate.AddDate(0, 0, 7),
		prescription.LineInput{MedicationID: 1, Dose: 1})
	req.DoctorID = 9999

	_, _, err := presSvc.Create(ctx, req)
	if !errors.Is(err, prescription.ErrTxFailed) {
		t.Fatalf("expected ErrTxFailed, got %v", err)
	}

	if got := countRows(t, ctx, "patients"); got != patientsBefore {
		t.Errorf("patient count changed from %d to %d after rollback", patientsBefore, got)
	}
	if got := countRows(t, ctx, "prescriptions"); got != prescriptionsBefore {
		t.Errorf("prescription count changed from %d to %d after rollback", prescriptionsBefore, got)
	}
	if got := countRows(t, ctx, "prescription_medications"); got != linesBefore {
		t.Errorf("line item count changed from %d to %d after rollback", linesBefore, got)
	}
}

func TestGetDetails_OrderedByDueDate(t *testing.T) {
	ctx := context.Background()
	presSvc, patientSvc := newServices()

	d1 := issueDate.AddDate(0, 0, 3)
	d2 := issueDate.AddDate(0, 0, 10)
	d3 := issueDate.AddDate(0, 0, 30)

	// Insert in the order D2, D1, D3 and expect them back sorted
	_, patientID, err := presSvc.Create(ctx, newPatientRequest("Ola", d2,
		prescription.LineInput{MedicationID: 1, Dose: 1}))
	if err != nil {
		t.Fatalf("create first prescription: %v", err)
	}

	for _, due := range []time.Time{d1, d3} {
		req := newPatientRequest("Ola", due,
			prescription.LineInput{MedicationID: 2, Dose: 1})
		req.Patient.ID = &patientID
		if _, _, err := presSvc.Create(ctx, req); err != nil {
			t.Fatalf("create prescription due %v: %v", due, err)
		}
	}

	details, err := patientSvc.GetDetails(ctx, patientID)
	if err != nil {
		t.Fatalf("get details: %v", err)
	}
	if len(details.Prescriptions) != 3 {
		t.Fatalf("expected 3 prescriptions, got %d", len(details.Prescriptions))
	}
	for i := 1; i < len(details.Prescriptions); i++ {
		prev := details.Prescriptions[i-1].DueDate
		cur := details.Prescriptions[i].DueDate
		if cur.Before(prev) {
			t.Errorf("prescriptions out of order: %v before %v", prev, cur)
		}
	}
}

func TestCreate_ReusesExistingPatientRow(t *testing.T) {
	ctx := context.Background()
	presSvc, _ := newServices()

	_, patientID, err := presSvc.Create(ctx, newPatientRequest("Jan", issueDate.AddDate(0, 0, 7),
		prescription.LineInput{MedicationID: 3, Dose: 1}))
	if err != nil {
		t.Fatalf("create first prescription: %v", err)
	}

	patientsBefore := countRows(t, ctx, "patients")

	req := newPatientRequest("Jan", issueDate.AddDate(0, 0, 14),
		prescription.LineInput{MedicationID: 4, Dose: 2})
	req.Patient.ID = &patientID
	_, gotPatientID, err := presSvc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create second prescription: %v", err)
	}
	if gotPatientID != patientID {
		t.Errorf("expected patient %d to be reused, got %d", patientID, gotPatientID)
	}
	if got := countRows(t, ctx, "patients"); got != patientsBefore {
		t.Errorf("patient count changed from %d to %d on reuse", patientsBefore, got)
	}
}

func TestGetDetails_UnknownPatient(t *testing.T) {
	ctx := context.Background()
	_, patientSvc := newServices()

	_, err := patientSvc.GetDetails(ctx, 999999)
	if !errors.Is(err, patient.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
