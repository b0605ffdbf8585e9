package prescription

import (
	"context"
	"fmt"
)

type Service struct {
	prescriptions Repository
	patients      PatientResolver
	medications   MedicationRegistry
	tx            TxRunner
}

func NewService(prescriptions Repository, patients PatientResolver, medications MedicationRegistry, tx TxRunner) *Service {
	return &Service{
		prescriptions: prescriptions,
		patients:      patients,
		medications:   medications,
		tx:            tx,
	}
}

// Create validates the request and atomically persists the prescription
// with its line items, creating the patient row first when the request does
// not reference an existing patient. Validation runs to completion before
// anything is written; a failure inside the transaction rolls back every
// insert, the patient row included.
//
// Returns the new prescription id and the id of the patient it was filed
// under.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (prescriptionID, patientID int, err error) {
	if req.DueDate.Before(req.Date) {
		return 0, 0, fmt.Errorf("%w: invalid date range: due date precedes issue date", ErrInvalid)
	}
	if len(req.Medications) == 0 {
		return 0, 0, fmt.Errorf("%w: at least one medication is required", ErrInvalid)
	}
	if len(req.Medications) > MaxLines {
		return 0, 0, fmt.Errorf("%w: a prescription can hold at most %d medications", ErrInvalid, MaxLines)
	}

	ids := make([]int, 0, len(req.Medications))
	seen := make(map[int]bool, len(req.Medications))
	for _, line := range req.Medications {
		if seen[line.MedicationID] {
			return 0, 0, fmt.Errorf("%w: duplicate medication %d", ErrInvalid, line.MedicationID)
		}
		seen[line.MedicationID] = true
		ids = append(ids, line.MedicationID)
	}

	missing, err := s.medications.MissingIDs(ctx, ids)
	if err != nil {
		return 0, 0, err
	}
	if len(missing) > 0 {
		return 0, 0, fmt.Errorf("%w: medication not found: %v", ErrInvalid, missing)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		patientID, err = s.patients.ResolveOrCreate(ctx, req.Patient)
		if err != nil {
			return err
		}

		p := &Prescription{
			Date:      req.Date,
			DueDate:   req.DueDate,
			PatientID: patientID,
			DoctorID:  req.DoctorID,
		}
		if err := s.prescriptions.Create(ctx, p); err != nil {
			return err
		}

		lines := make([]*LineItem, len(req.Medications))
		for i, in := range req.Medications {
			lines[i] = &LineItem{
				PrescriptionID: p.ID,
				MedicationID:   in.MedicationID,
				Dose:           in.Dose,
				Details:        in.Description,
			}
		}
		if err := s.prescriptions.AddLines(ctx, lines); err != nil {
			return err
		}

		prescriptionID = p.ID
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrTxFailed, err)
	}

	return prescriptionID, patientID, nil
}
