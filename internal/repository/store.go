package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vietanh2810/clubevents-api/internal/repository/dao"
)

// Store bundles the repositories over one gorm connection and exposes the
// transaction boundary the validate transition runs inside.
type Store struct {
	db *gorm.DB

	events     *EventRepository
	catalog    *CatalogRepository
	degrees    *DegreeRepository
	membership *MembershipRepository
	billing    *BillingRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		events:     NewEventRepository(dao.NewEventDAO(db)),
		catalog:    NewCatalogRepository(dao.NewCatalogDAO(db)),
		degrees:    NewDegreeRepository(dao.NewDegreeDAO(db)),
		membership: NewMembershipRepository(dao.NewMembershipDAO(db)),
		billing:    NewBillingRepository(dao.NewBillingDAO(db)),
	}
}

func (s *Store) Events() *EventRepository           { return s.events }
func (s *Store) Catalog() *CatalogRepository        { return s.catalog }
func (s *Store) Degrees() *DegreeRepository         { return s.degrees }
func (s *Store) Membership() *MembershipRepository  { return s.membership }
func (s *Store) Billing() *BillingRepository        { return s.billing }

// Transact runs fn against a store bound to one database transaction.
// Returning an error rolls everything back.
func (s *Store) Transact(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
