package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/clubevents-api/internal/domain"
	"github.com/vietanh2810/clubevents-api/internal/repository/dao"
)

var (
	ErrContactNotFound  = dao.ErrContactNotFound
	ErrMemberNotFound   = dao.ErrMemberNotFound
	ErrSeasonNotFound   = dao.ErrSeasonNotFound
	ErrActivityNotFound = dao.ErrActivityNotFound
)

type MembershipDAO interface {
	FindContactByID(ctx context.Context, id uint) (dao.Contact, error)
	FindMemberByContactID(ctx context.Context, contactID uint) (dao.Member, error)
	FindSeasonByDate(ctx context.Context, date time.Time) (dao.Season, error)
	FindSeasonByID(ctx context.Context, id uint) (dao.Season, error)
	HasActiveSubscription(ctx context.Context, memberID, seasonID uint) (bool, error)
	FindAllActivities(ctx context.Context) ([]dao.Activity, error)
	FindActivityByID(ctx context.Context, id uint) (dao.Activity, error)
}

// MembershipRepository is the consumed membership-service interface: season
// lookup and membership checks, read-only for this module.
type MembershipRepository struct {
	dao MembershipDAO
}

func NewMembershipRepository(dao MembershipDAO) *MembershipRepository {
	return &MembershipRepository{
		dao: dao,
	}
}

func (r *MembershipRepository) contactDaoToDomain(c dao.Contact) domain.Contact {
	return domain.Contact{
		ID:               c.ID,
		Name:             c.Name,
		Kind:             domain.ContactKind(c.Kind),
		BillingContactID: c.BillingContactID,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (r *MembershipRepository) FindContactByID(ctx context.Context, id uint) (domain.Contact, error) {
	found, err := r.dao.FindContactByID(ctx, id)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("r.dao.FindContactByID -> %w", err)
	}

	return r.contactDaoToDomain(found), nil
}

func (r *MembershipRepository) FindMemberByContactID(ctx context.Context, contactID uint) (domain.Member, error) {
	found, err := r.dao.FindMemberByContactID(ctx, contactID)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindMemberByContactID -> %w", err)
	}

	return domain.Member{
		ID:        found.ID,
		ContactID: found.ContactID,
		CreatedAt: found.CreatedAt,
		UpdatedAt: found.UpdatedAt,
	}, nil
}

func (r *MembershipRepository) seasonDaoToDomain(s dao.Season) domain.Season {
	return domain.Season{
		ID:        s.ID,
		Name:      s.Name,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
	}
}

func (r *MembershipRepository) SeasonForDate(ctx context.Context, date time.Time) (domain.Season, error) {
	found, err := r.dao.FindSeasonByDate(ctx, date)
	if err != nil {
		return domain.Season{}, fmt.Errorf("r.dao.FindSeasonByDate -> %w", err)
	}

	return r.seasonDaoToDomain(found), nil
}

func (r *MembershipRepository) FindSeasonByID(ctx context.Context, id uint) (domain.Season, error) {
	found, err := r.dao.FindSeasonByID(ctx, id)
	if err != nil {
		return domain.Season{}, fmt.Errorf("r.dao.FindSeasonByID -> %w", err)
	}

	return r.seasonDaoToDomain(found), nil
}

func (r *MembershipRepository) HasActiveSubscription(ctx context.Context, memberID, seasonID uint) (bool, error) {
	has, err := r.dao.HasActiveSubscription(ctx, memberID, seasonID)
	if err != nil {
		return false, fmt.Errorf("r.dao.HasActiveSubscription -> %w", err)
	}

	return has, nil
}

func (r *MembershipRepository) FindAllActivities(ctx context.Context) ([]domain.Activity, error) {
	found, err := r.dao.FindAllActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllActivities -> %w", err)
	}

	activities := make([]domain.Activity, len(found))
	for i, a := range found {
		activities[i] = domain.Activity{
			ID:        a.ID,
			Name:      a.Name,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		}
	}

	return activities, nil
}

func (r *MembershipRepository) FindActivityByID(ctx context.Context, id uint) (domain.Activity, error) {
	found, err := r.dao.FindActivityByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("r.dao.FindActivityByID -> %w", err)
	}

	return domain.Activity{
		ID:        found.ID,
		Name:      found.Name,
		CreatedAt: found.CreatedAt,
		UpdatedAt: found.UpdatedAt,
	}, nil
}
