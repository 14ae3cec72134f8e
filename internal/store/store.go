package store

import (
	"context"
	"errors"

	"fabricshop/bot/internal/domain"
)

// Table names of the shop's record tables.
const (
	TableCategories = "Categories"
	TableProducts   = "Products"
)

// ErrRecordNotFound is returned by GetRecord for an unknown record id.
var ErrRecordNotFound = errors.New("record not found")

// RecordStore fetches flat records from the shop's tables. Implementations
// exist for Airtable and Postgres.
type RecordStore interface {
	GetAllRecords(ctx context.Context, table string) ([]domain.Record, error)
	GetRecord(ctx context.Context, id, table string) (domain.Record, error)
}
