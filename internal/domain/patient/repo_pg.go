package patient

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinrx/clinrx/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const patientCols = `id, first_name, last_name, birthdate`

func (r *repoPG) GetByID(ctx context.Context, id int) (*Patient, error) {
	var p Patient
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1`, id).
		Scan(&p.ID, &p.FirstName, &p.LastName, &p.Birthdate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM patients WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO patients (first_name, last_name, birthdate)
		VALUES ($1, $2, $3)
		RETURNING id`,
		p.FirstName, p.LastName, p.Birthdate).Scan(&p.ID)
}

// GetDetails answers the patient detail view in three queries: the patient
// row, the prescriptions joined with their doctors, and the line items
// joined with the medication catalog for all loaded prescriptions at once.
func (r *repoPG) GetDetails(ctx context.Context, id int) (*Details, error) {
	conn := r.conn(ctx)

	var d Details
	err := conn.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1`, id).
		Scan(&d.ID, &d.FirstName, &d.LastName, &d.Birthdate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, `
		SELECT p.id, p.date, p.due_date, d.id, d.first_name, d.last_name
		FROM prescriptions p
		JOIN doctors d ON d.id = p.doctor_id
		WHERE p.patient_id = $1
		ORDER BY p.due_date ASC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	d.Prescriptions = []PrescriptionDetail{}
	index := make(map[int]int)
	var prescriptionIDs []int
	for rows.Next() {
		var pd PrescriptionDetail
		if err := rows.Scan(&pd.PrescriptionID, &pd.Date, &pd.DueDate,
			&pd.Doctor.ID, &pd.Doctor.FirstName, &pd.Doctor.LastName); err != nil {
			return nil, err
		}
		pd.Medications = []MedicationLine{}
		index[pd.PrescriptionID] = len(d.Prescriptions)
		prescriptionIDs = append(prescriptionIDs, pd.PrescriptionID)
		d.Prescriptions = append(d.Prescriptions, pd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(prescriptionIDs) == 0 {
		return &d, nil
	}

	lineRows, err := conn.Query(ctx, `
		SELECT pm.prescription_id, pm.medication_id, m.name, pm.dose, pm.details
		FROM prescription_medications pm
		JOIN medications m ON m.id = pm.medication_id
		WHERE pm.prescription_id = ANY($1)`, prescriptionIDs)
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var prescriptionID int
		var line MedicationLine
		if err := lineRows.Scan(&prescriptionID, &line.MedicationID, &line.Name,
			&line.Dose, &line.Description); err != nil {
			return nil, err
		}
		i := index[prescriptionID]
		d.Prescriptions[i].Medications = append(d.Prescriptions[i].Medications, line)
	}
	if err := lineRows.Err(); err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+patientCols+` FROM patients ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Birthdate); err != nil {
			return nil, 0, err
		}
		patients = append(patients, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return patients, total, nil
}
