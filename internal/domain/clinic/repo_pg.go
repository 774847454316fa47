package clinic

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicore/clinicore/internal/domain/timetable"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const clinicCols = `id, name, address, city, phone, email, operating_hours,
	is_active, created_at, updated_at`

func scanClinic(row pgx.Row) (*Clinic, error) {
	var (
		c   Clinic
		raw []byte
	)
	err := row.Scan(&c.ID, &c.Name, &c.Address, &c.City, &c.Phone, &c.Email, &raw,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &c.OperatingHours); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func hoursJSON(h timetable.OperatingHours) (interface{}, error) {
	if len(h) == 0 {
		return nil, nil
	}
	return json.Marshal(h)
}

func (r *repoPG) Create(ctx context.Context, c *Clinic) error {
	c.ID = uuid.New()
	hours, err := hoursJSON(c.OperatingHours)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO clinic (id, name, address, city, phone, email, operating_hours, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		c.ID, c.Name, c.Address, c.City, c.Phone, c.Email, hours, c.IsActive)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Clinic, error) {
	return scanClinic(r.pool.QueryRow(ctx, `SELECT `+clinicCols+` FROM clinic WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, c *Clinic) error {
	hours, err := hoursJSON(c.OperatingHours)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		UPDATE clinic SET name=$2, address=$3, city=$4, phone=$5, email=$6,
			operating_hours=$7, is_active=$8, updated_at=NOW()
		WHERE id = $1`,
		c.ID, c.Name, c.Address, c.City, c.Phone, c.Email, hours, c.IsActive)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM clinic WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Clinic, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clinic`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+clinicCols+` FROM clinic ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Clinic
	for rows.Next() {
		c, err := scanClinic(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	return items, total, rows.Err()
}
