package prescription

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinrx/clinrx/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
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

func (r *repoPG) Create(ctx context.Context, p *Prescription) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO prescriptions (date, due_date, patient_id, doctor_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		p.Date, p.DueDate, p.PatientID, p.DoctorID).Scan(&p.ID)
}

func (r *repoPG) AddLines(ctx context.Context, lines []*LineItem) error {
	if len(lines) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(`
			INSERT INTO prescription_medications (prescription_id, medication_id, dose, details)
			VALUES ($1, $2, $3, $4)`,
			line.PrescriptionID, line.MedicationID, line.Dose, line.Details)
	}

	results := r.conn(ctx).SendBatch(ctx, batch)
	defer results.Close()

	for range lines {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return results.Close()
}
