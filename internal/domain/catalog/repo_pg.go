package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const offeringCols = `id, clinic_id, name, description, duration_minutes, price_cents,
	is_active, created_at, updated_at`

func scanOffering(row pgx.Row) (*Offering, error) {
	var o Offering
	err := row.Scan(&o.ID, &o.ClinicID, &o.Name, &o.Description, &o.DurationMinutes, &o.PriceCents,
		&o.IsActive, &o.CreatedAt, &o.UpdatedAt)
	return &o, err
}

func (r *repoPG) Create(ctx context.Context, o *Offering) error {
	o.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO service_offering (id, clinic_id, name, description, duration_minutes, price_cents, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		o.ID, o.ClinicID, o.Name, o.Description, o.DurationMinutes, o.PriceCents, o.IsActive)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Offering, error) {
	return scanOffering(r.pool.QueryRow(ctx, `SELECT `+offeringCols+` FROM service_offering WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, o *Offering) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE service_offering SET clinic_id=$2, name=$3, description=$4,
			duration_minutes=$5, price_cents=$6, is_active=$7, updated_at=NOW()
		WHERE id = $1`,
		o.ID, o.ClinicID, o.Name, o.Description, o.DurationMinutes, o.PriceCents, o.IsActive)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM service_offering WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Offering, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM service_offering`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+offeringCols+` FROM service_offering ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func (r *repoPG) ListByClinic(ctx context.Context, clinicID uuid.UUID, limit, offset int) ([]*Offering, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM service_offering WHERE clinic_id = $1`, clinicID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+offeringCols+` FROM service_offering WHERE clinic_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`, clinicID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func collect(rows pgx.Rows, total int) ([]*Offering, int, error) {
	var items []*Offering
	for rows.Next() {
		o, err := scanOffering(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, o)
	}
	return items, total, rows.Err()
}
