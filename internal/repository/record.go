package repository

import (
	"context"
	"errors"
	"fmt"

	"fabricshop/bot/internal/domain"
	"fabricshop/bot/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// recordRepository serves the record store contract from Postgres instead of
// Airtable. Rows mirror the Airtable shape: one jsonb column carries the
// flat field map.
type recordRepository struct {
	db *pgxpool.Pool
}

func NewRecordRepository(db *pgxpool.Pool) store.RecordStore {
	return &recordRepository{
		db: db,
	}
}

func (r *recordRepository) GetAllRecords(ctx context.Context, table string) ([]domain.Record, error) {
	query := `
	SELECT id, fields
	FROM records
	WHERE table_name = $1
	ORDER BY position, id`

	rows, err := r.db.Query(ctx, query, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query records for %s: %w", table, err)
	}
	defer rows.Close()

	records := make([]domain.Record, 0)
	for rows.Next() {
		var rec domain.Record
		if err := rows.Scan(&rec.ID, &rec.Fields); err != nil {
			return nil, fmt.Errorf("failed to scan record for %s: %w", table, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records for %s: %w", table, err)
	}

	return records, nil
}

func (r *recordRepository) GetRecord(ctx context.Context, id, table string) (domain.Record, error) {
	query := `
	SELECT id, fields
	FROM records
	WHERE table_name = $1 AND id = $2`

	var rec domain.Record
	err := r.db.QueryRow(ctx, query, table, id).Scan(&rec.ID, &rec.Fields)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Record{}, store.ErrRecordNotFound
		}
		return domain.Record{}, fmt.Errorf("failed to fetch record %s from %s: %w", id, table, err)
	}

	return rec, nil
}
