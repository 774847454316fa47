package timetable

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const entryCols = `id, owner_type, owner_id, day_of_week, start_time, end_time,
	is_active, slot_order, notes, created_at, updated_at`

func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	err := row.Scan(&e.ID, &e.OwnerType, &e.OwnerID, &e.DayOfWeek, &e.StartTime, &e.EndTime,
		&e.IsActive, &e.SlotOrder, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &e, err
}

func insertEntry(ctx context.Context, q queryable, e *Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := q.Exec(ctx, `
		INSERT INTO timetable_entry (id, owner_type, owner_id, day_of_week, start_time, end_time,
			is_active, slot_order, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		e.ID, e.OwnerType, e.OwnerID, e.DayOfWeek, int(e.StartTime), int(e.EndTime),
		e.IsActive, e.SlotOrder, e.Notes)
	return err
}

func (r *repoPG) Create(ctx context.Context, e *Entry) error {
	return insertEntry(ctx, r.pool, e)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Entry, error) {
	return scanEntry(r.pool.QueryRow(ctx, `SELECT `+entryCols+` FROM timetable_entry WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, e *Entry) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE timetable_entry SET day_of_week=$2, start_time=$3, end_time=$4,
			is_active=$5, slot_order=$6, notes=$7, updated_at=NOW()
		WHERE id = $1`,
		e.ID, e.DayOfWeek, int(e.StartTime), int(e.EndTime), e.IsActive, e.SlotOrder, e.Notes)
	return err
}

func (r *repoPG) SetActive(ctx context.Context, id uuid.UUID, active bool) (*Entry, error) {
	return scanEntry(r.pool.QueryRow(ctx, `
		UPDATE timetable_entry SET is_active=$2, updated_at=NOW()
		WHERE id = $1
		RETURNING `+entryCols, id, active))
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM timetable_entry WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListByOwner(ctx context.Context, owner Owner) ([]*Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+entryCols+` FROM timetable_entry
		WHERE owner_type = $1 AND owner_id = $2
		ORDER BY array_position(ARRAY['monday','tuesday','wednesday','thursday','friday','saturday','sunday'], day_of_week),
			start_time, slot_order`, owner.Type, owner.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *repoPG) InitializeWeek(ctx context.Context, owner Owner, entries []*Entry, replaceExisting bool) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if replaceExisting {
		if _, err := tx.Exec(ctx,
			`DELETE FROM timetable_entry WHERE owner_type = $1 AND owner_id = $2`,
			owner.Type, owner.ID); err != nil {
			return err
		}
	}

	for _, e := range entries {
		if err := insertEntry(ctx, tx, e); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
