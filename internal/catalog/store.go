package catalog

import (
	"context"
	"sync/atomic"
	"time"

	"fabricshop/bot/internal/domain"
	"fabricshop/bot/internal/store"

	log "github.com/sirupsen/logrus"
)

// Store holds the current catalog snapshot. Readers take one snapshot at the
// start of handling an event and use it throughout; refreshes build a new
// catalog and swap it in wholesale, so a reader never observes a
// partially-built tree.
type Store struct {
	current atomic.Pointer[domain.Catalog]
}

func NewStore() *Store {
	s := &Store{}
	s.current.Store(&domain.Catalog{})
	return s
}

// Snapshot returns the current catalog value.
func (s *Store) Snapshot() domain.Catalog {
	return *s.current.Load()
}

// Swap replaces the catalog wholesale.
func (s *Store) Swap(c domain.Catalog) {
	s.current.Store(&c)
}

// Refresher rebuilds the catalog from the record store, once at startup and
// then on a fixed interval.
type Refresher struct {
	store    *Store
	records  store.RecordStore
	interval time.Duration
}

func NewRefresher(catalogStore *Store, records store.RecordStore, interval time.Duration) *Refresher {
	return &Refresher{
		store:    catalogStore,
		records:  records,
		interval: interval,
	}
}

// Refresh fetches the Categories table and swaps in a freshly built catalog.
// A fetch failure keeps the previous snapshot so a transient outage does not
// blank a working menu; at startup the snapshot is simply empty.
func (r *Refresher) Refresh(ctx context.Context) error {
	records, err := r.records.GetAllRecords(ctx, store.TableCategories)
	if err != nil {
		log.Errorf("❌ Failed to fetch categories: %v", err)
		return err
	}

	r.store.Swap(Build(records))
	return nil
}

// Run performs the initial refresh and, when an interval is configured,
// keeps refreshing until the context is cancelled. The initial refresh is
// best-effort: navigation degrades to a "no categories" reply while the
// catalog is empty.
func (r *Refresher) Run(ctx context.Context) error {
	if err := r.Refresh(ctx); err != nil {
		log.Warnf("Starting with an empty catalog: %v", err)
	}

	if r.interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.Refresh(ctx); err != nil {
				log.Errorf("❌ Catalog refresh failed, keeping previous snapshot: %v", err)
			}
		}
	}
}
