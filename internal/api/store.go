package api

import (
	"context"

	"github.com/vietanh2810/clubevents-api/internal/repository"
	"github.com/vietanh2810/clubevents-api/internal/service"
)

// storeAdapter narrows *repository.Store to the service.Store contract.
// Transact re-wraps the transaction-bound store so everything inside the
// callback shares the same connection.
type storeAdapter struct {
	s *repository.Store
}

func newStoreAdapter(s *repository.Store) storeAdapter {
	return storeAdapter{s: s}
}

func (a storeAdapter) Events() service.EventRepository          { return a.s.Events() }
func (a storeAdapter) Catalog() service.CatalogRepository       { return a.s.Catalog() }
func (a storeAdapter) Degrees() service.DegreeRepository        { return a.s.Degrees() }
func (a storeAdapter) Membership() service.MembershipRepository { return a.s.Membership() }
func (a storeAdapter) Billing() service.BillingEngine           { return a.s.Billing() }

func (a storeAdapter) Transact(ctx context.Context, fn func(tx service.Store) error) error {
	return a.s.Transact(ctx, func(tx *repository.Store) error {
		return fn(storeAdapter{s: tx})
	})
}
