package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/clubevents-api/internal/audit"
	"github.com/vietanh2810/clubevents-api/internal/domain"
	"github.com/vietanh2810/clubevents-api/internal/settings"
)

func newTestParams() *settings.Params {
	return &settings.Params{
		ActivityScopingEnabled: true,
		SubDegreesEnabled:      true,
		DegreeLabel:            "Degree",
		SubDegreeLabel:         "Sub-degree",
		DefaultExamComment:     "Presented at the examination",
	}
}

func newTestEventService(store *fakeStore, params *settings.Params) *EventService {
	return NewEventService(store, params, audit.NewRegistry())
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses an event without an activity", func(t *testing.T) {
		svc := newTestEventService(newFakeStore(), newTestParams())

		_, err := svc.CreateEvent(ctx, domain.Event{Type: domain.EventTypeExamination})

		vErr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "no activity configured", vErr.Message)
	})

	t.Run("forces the building status", func(t *testing.T) {
		svc := newTestEventService(newFakeStore(), newTestParams())

		created, err := svc.CreateEvent(ctx, domain.Event{
			ActivityID: 1,
			Type:       domain.EventTypeExamination,
			Date:       day(2026, 3, 14),
			Status:     domain.EventStatusValid,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusBuilding, created.Status)
	})

	t.Run("normalizes the end date on save", func(t *testing.T) {
		svc := newTestEventService(newFakeStore(), newTestParams())
		end := day(2026, 3, 1)

		exam, err := svc.CreateEvent(ctx, domain.Event{
			ActivityID: 1,
			Type:       domain.EventTypeExamination,
			Date:       day(2026, 3, 14),
			EndDate:    &end,
		})
		require.NoError(t, err)
		assert.Nil(t, exam.EndDate)

		training, err := svc.CreateEvent(ctx, domain.Event{
			ActivityID: 1,
			Type:       domain.EventTypeTraining,
			Date:       day(2026, 3, 14),
			EndDate:    &end,
		})
		require.NoError(t, err)
		require.NotNil(t, training.EndDate)
		assert.Equal(t, day(2026, 3, 14), *training.EndDate)
	})
}

func TestEventService_UpdateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses a validated event", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{
			ActivityID: 1,
			Type:       domain.EventTypeExamination,
			Status:     domain.EventStatusValid,
			Date:       day(2026, 3, 14),
		})
		svc := newTestEventService(store, newTestParams())

		_, err := svc.UpdateEvent(ctx, domain.Event{ID: event.ID, ActivityID: 1, Date: day(2026, 4, 1)})

		vErr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "examination validated!", vErr.Message)
	})

	t.Run("the stored status survives whatever the caller sends", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{
			ActivityID: 1,
			Type:       domain.EventTypeTraining,
			Status:     domain.EventStatusBuilding,
			Date:       day(2026, 3, 14),
		})
		svc := newTestEventService(store, newTestParams())

		updated, err := svc.UpdateEvent(ctx, domain.Event{
			ID:         event.ID,
			ActivityID: 1,
			Type:       domain.EventTypeTraining,
			Date:       day(2026, 4, 1),
			Status:     domain.EventStatusValid,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusBuilding, updated.Status)
		require.NotNil(t, updated.EndDate)
		assert.Equal(t, day(2026, 4, 1), *updated.EndDate)
	})
}

func TestEventService_DeleteEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses a validated training", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{
			Type:   domain.EventTypeTraining,
			Status: domain.EventStatusValid,
		})
		svc := newTestEventService(store, newTestParams())

		err := svc.DeleteEvent(ctx, event.ID)

		vErr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "training validated!", vErr.Message)
	})

	t.Run("removes the roster and the generated bills", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{
			Type:   domain.EventTypeExamination,
			Status: domain.EventStatusBuilding,
		})
		bill, err := store.Billing().CreateBill(ctx, domain.Bill{
			Type:   domain.BillTypeStandard,
			Status: domain.BillStatusBuilding,
		})
		require.NoError(t, err)
		store.seedOrganizer(domain.Organizer{EventID: event.ID, ContactID: 1})
		store.seedParticipant(domain.Participant{EventID: event.ID, ContactID: 2, BillID: &bill.ID})

		svc := newTestEventService(store, newTestParams())

		require.NoError(t, svc.DeleteEvent(ctx, event.ID))

		_, err = store.Events().FindByID(ctx, event.ID)
		assert.ErrorIs(t, err, ErrEventNotFound)
		_, err = store.Billing().FindBillByID(ctx, bill.ID)
		assert.ErrorIs(t, err, ErrBillNotFound)
		assert.Empty(t, store.organizers)
		assert.Empty(t, store.participants)
	})

	t.Run("deleting the event unlinks its degree records", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{
			Type:   domain.EventTypeExamination,
			Status: domain.EventStatusBuilding,
		})
		record := store.seedRecord(domain.DegreeRecord{
			MemberID:      1,
			DegreeLevelID: 1,
			EventID:       &event.ID,
		})
		svc := newTestEventService(store, newTestParams())

		require.NoError(t, svc.DeleteEvent(ctx, event.ID))

		kept, err := store.Degrees().FindRecordByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Nil(t, kept.EventID)
	})
}

func TestEventService_CheckValidity(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	event := store.seedEvent(domain.Event{
		Type:   domain.EventTypeExamination,
		Status: domain.EventStatusBuilding,
	})
	store.seedOrganizer(domain.Organizer{EventID: event.ID, ContactID: 1})
	svc := newTestEventService(store, newTestParams())

	message, err := svc.CheckValidity(ctx, event.ID)

	require.NoError(t, err)
	assert.Equal(t, "no responsible", message)
}

func TestEventService_SetResponsible(t *testing.T) {
	ctx := context.Background()

	responsibles := func(store *fakeStore, eventID uint) []uint {
		var ids []uint
		organizers, _ := store.Events().FindOrganizersByEventID(ctx, eventID)
		for _, o := range organizers {
			if o.IsResponsible {
				ids = append(ids, o.ID)
			}
		}
		return ids
	}

	t.Run("exactly one responsible after the call", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{Status: domain.EventStatusBuilding})
		first := store.seedOrganizer(domain.Organizer{EventID: event.ID, ContactID: 1, IsResponsible: true})
		second := store.seedOrganizer(domain.Organizer{EventID: event.ID, ContactID: 2})
		svc := newTestEventService(store, newTestParams())

		require.NoError(t, svc.SetResponsible(ctx, second.ID))

		assert.Equal(t, []uint{second.ID}, responsibles(store, event.ID))

		demoted, err := store.Events().FindOrganizerByID(ctx, first.ID)
		require.NoError(t, err)
		assert.False(t, demoted.IsResponsible)
	})

	t.Run("idempotent on the current responsible", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{Status: domain.EventStatusBuilding})
		organizer := store.seedOrganizer(domain.Organizer{EventID: event.ID, ContactID: 1, IsResponsible: true})
		store.seedOrganizer(domain.Organizer{EventID: event.ID, ContactID: 2})
		svc := newTestEventService(store, newTestParams())

		require.NoError(t, svc.SetResponsible(ctx, organizer.ID))
		require.NoError(t, svc.SetResponsible(ctx, organizer.ID))

		assert.Equal(t, []uint{organizer.ID}, responsibles(store, event.ID))
	})

	t.Run("refused on a validated event", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{
			Type:   domain.EventTypeExamination,
			Status: domain.EventStatusValid,
		})
		responsible := store.seedOrganizer(domain.Organizer{EventID: event.ID, ContactID: 1, IsResponsible: true})
		other := store.seedOrganizer(domain.Organizer{EventID: event.ID, ContactID: 2})
		svc := newTestEventService(store, newTestParams())

		err := svc.SetResponsible(ctx, other.ID)

		vErr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "examination validated!", vErr.Message)
		assert.Equal(t, []uint{responsible.ID}, responsibles(store, event.ID))
	})

	t.Run("unknown organizer", func(t *testing.T) {
		svc := newTestEventService(newFakeStore(), newTestParams())

		err := svc.SetResponsible(ctx, 99)

		assert.ErrorIs(t, err, ErrOrganizerNotFound)
	})
}

func TestEventService_AddOrganizer(t *testing.T) {
	ctx := context.Background()

	t.Run("refused on a validated event", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{
			Type:   domain.EventTypeExamination,
			Status: domain.EventStatusValid,
		})
		svc := newTestEventService(store, newTestParams())

		_, err := svc.AddOrganizer(ctx, domain.Organizer{EventID: event.ID, ContactID: 1})

		vErr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "examination validated!", vErr.Message)
	})

	t.Run("added on a building event", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{Status: domain.EventStatusBuilding})
		svc := newTestEventService(store, newTestParams())

		created, err := svc.AddOrganizer(ctx, domain.Organizer{EventID: event.ID, ContactID: 1})

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
	})
}

func TestEventService_AddParticipant(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds the comment template on examinations", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{
			Type:   domain.EventTypeExamination,
			Status: domain.EventStatusBuilding,
		})
		svc := newTestEventService(store, newTestParams())

		created, err := svc.AddParticipant(ctx, domain.Participant{EventID: event.ID, ContactID: 1})

		require.NoError(t, err)
		assert.Equal(t, "Presented at the examination", created.Comment)
	})

	t.Run("an explicit comment is kept", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{
			Type:   domain.EventTypeExamination,
			Status: domain.EventStatusBuilding,
		})
		svc := newTestEventService(store, newTestParams())

		created, err := svc.AddParticipant(ctx, domain.Participant{
			EventID:   event.ID,
			ContactID: 1,
			Comment:   "second attempt",
		})

		require.NoError(t, err)
		assert.Equal(t, "second attempt", created.Comment)
	})

	t.Run("trainings get no comment template", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{
			Type:   domain.EventTypeTraining,
			Status: domain.EventStatusBuilding,
		})
		svc := newTestEventService(store, newTestParams())

		created, err := svc.AddParticipant(ctx, domain.Participant{EventID: event.ID, ContactID: 1})

		require.NoError(t, err)
		assert.Equal(t, "", created.Comment)
	})

	t.Run("defaults the member article for subscribed members", func(t *testing.T) {
		store := newFakeStore()
		memberArticle := store.seedArticle(domain.Article{Designation: "Member fee", Price: 20})
		nonMemberArticle := store.seedArticle(domain.Article{Designation: "Guest fee", Price: 35})
		event := store.seedEvent(domain.Event{
			Type:               domain.EventTypeExamination,
			Status:             domain.EventStatusBuilding,
			Date:               day(2026, 3, 14),
			MemberArticleID:    &memberArticle.ID,
			NonMemberArticleID: &nonMemberArticle.ID,
		})
		contact := store.seedContact(domain.Contact{Name: "Alex", Kind: domain.ContactKindIndividual})
		member := store.seedMember(domain.Member{ContactID: contact.ID})
		season := store.seedSeason(domain.Season{
			StartDate: day(2025, 9, 1),
			EndDate:   day(2026, 8, 31),
		})
		store.seedSubscription(member.ID, season.ID)
		svc := newTestEventService(store, newTestParams())

		created, err := svc.AddParticipant(ctx, domain.Participant{EventID: event.ID, ContactID: contact.ID})

		require.NoError(t, err)
		require.NotNil(t, created.ArticleID)
		assert.Equal(t, memberArticle.ID, *created.ArticleID)
	})

	t.Run("defaults the non-member article otherwise", func(t *testing.T) {
		store := newFakeStore()
		memberArticle := store.seedArticle(domain.Article{Designation: "Member fee", Price: 20})
		nonMemberArticle := store.seedArticle(domain.Article{Designation: "Guest fee", Price: 35})
		event := store.seedEvent(domain.Event{
			Type:               domain.EventTypeExamination,
			Status:             domain.EventStatusBuilding,
			Date:               day(2026, 3, 14),
			MemberArticleID:    &memberArticle.ID,
			NonMemberArticleID: &nonMemberArticle.ID,
		})
		contact := store.seedContact(domain.Contact{Name: "Sam", Kind: domain.ContactKindIndividual})
		svc := newTestEventService(store, newTestParams())

		created, err := svc.AddParticipant(ctx, domain.Participant{EventID: event.ID, ContactID: contact.ID})

		require.NoError(t, err)
		require.NotNil(t, created.ArticleID)
		assert.Equal(t, nonMemberArticle.ID, *created.ArticleID)
	})

	t.Run("an explicit article is never overridden", func(t *testing.T) {
		store := newFakeStore()
		article := store.seedArticle(domain.Article{Designation: "Special", Price: 10})
		defaultArticle := store.seedArticle(domain.Article{Designation: "Guest fee", Price: 35})
		event := store.seedEvent(domain.Event{
			Type:               domain.EventTypeTraining,
			Status:             domain.EventStatusBuilding,
			NonMemberArticleID: &defaultArticle.ID,
		})
		svc := newTestEventService(store, newTestParams())

		created, err := svc.AddParticipant(ctx, domain.Participant{
			EventID:   event.ID,
			ContactID: 1,
			ArticleID: &article.ID,
		})

		require.NoError(t, err)
		require.NotNil(t, created.ArticleID)
		assert.Equal(t, article.ID, *created.ArticleID)
	})
}

func TestEventService_UpdateParticipant(t *testing.T) {
	ctx := context.Background()

	t.Run("event link and bill link are preserved", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{Status: domain.EventStatusBuilding})
		billID := uintPtr(77)
		participant := store.seedParticipant(domain.Participant{
			EventID:   event.ID,
			ContactID: 1,
			BillID:    billID,
		})
		svc := newTestEventService(store, newTestParams())

		updated, err := svc.UpdateParticipant(ctx, domain.Participant{
			ID:        participant.ID,
			ContactID: 1,
			Comment:   "changed",
		})

		require.NoError(t, err)
		assert.Equal(t, event.ID, updated.EventID)
		assert.Equal(t, billID, updated.BillID)
		assert.Equal(t, "changed", updated.Comment)
	})

	t.Run("refused on a validated event", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{
			Type:   domain.EventTypeTraining,
			Status: domain.EventStatusValid,
		})
		participant := store.seedParticipant(domain.Participant{EventID: event.ID, ContactID: 1})
		svc := newTestEventService(store, newTestParams())

		_, err := svc.UpdateParticipant(ctx, domain.Participant{ID: participant.ID, ContactID: 1})

		vErr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "training validated!", vErr.Message)
	})
}

func TestEventService_RemoveParticipant(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the linked bill", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{Status: domain.EventStatusBuilding})
		bill, err := store.Billing().CreateBill(ctx, domain.Bill{
			Type:   domain.BillTypeStandard,
			Status: domain.BillStatusBuilding,
		})
		require.NoError(t, err)
		participant := store.seedParticipant(domain.Participant{
			EventID:   event.ID,
			ContactID: 1,
			BillID:    &bill.ID,
		})
		svc := newTestEventService(store, newTestParams())

		require.NoError(t, svc.RemoveParticipant(ctx, participant.ID))

		_, err = store.Events().FindParticipantByID(ctx, participant.ID)
		assert.ErrorIs(t, err, ErrParticipantNotFound)
		_, err = store.Billing().FindBillByID(ctx, bill.ID)
		assert.ErrorIs(t, err, ErrBillNotFound)
	})

	t.Run("refused on a validated event", func(t *testing.T) {
		store := newFakeStore()
		event := store.seedEvent(domain.Event{
			Type:   domain.EventTypeExamination,
			Status: domain.EventStatusValid,
		})
		participant := store.seedParticipant(domain.Participant{EventID: event.ID, ContactID: 1})
		svc := newTestEventService(store, newTestParams())

		err := svc.RemoveParticipant(ctx, participant.ID)

		vErr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "examination validated!", vErr.Message)
	})
}
