package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func TestEvent_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		event   Event
		wantEnd *time.Time
	}{
		{
			name: "examination drops its end date",
			event: Event{
				Type:    EventTypeExamination,
				Date:    date(2026, 3, 14),
				EndDate: datePtr(2026, 3, 20),
			},
			wantEnd: nil,
		},
		{
			name: "training without an end date gets the start date",
			event: Event{
				Type: EventTypeTraining,
				Date: date(2026, 3, 14),
			},
			wantEnd: datePtr(2026, 3, 14),
		},
		{
			name: "training ending before it starts is clamped",
			event: Event{
				Type:    EventTypeTraining,
				Date:    date(2026, 3, 14),
				EndDate: datePtr(2026, 3, 1),
			},
			wantEnd: datePtr(2026, 3, 14),
		},
		{
			name: "valid training end date is kept",
			event: Event{
				Type:    EventTypeTraining,
				Date:    date(2026, 3, 14),
				EndDate: datePtr(2026, 3, 20),
			},
			wantEnd: datePtr(2026, 3, 20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.event.Normalize()

			assert.Equal(t, tt.wantEnd, tt.event.EndDate)
		})
	}
}

func TestEvent_CheckValidity(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{
			name: "already validated wins over everything else",
			event: Event{
				Type:   EventTypeExamination,
				Status: EventStatusValid,
			},
			want: "examination already validated",
		},
		{
			name: "validated training uses the training label",
			event: Event{
				Type:   EventTypeTraining,
				Status: EventStatusValid,
			},
			want: "training already validated",
		},
		{
			name: "no responsible organizer",
			event: Event{
				Type:   EventTypeExamination,
				Status: EventStatusBuilding,
				Organizers: []Organizer{
					{ContactID: 1},
					{ContactID: 2},
				},
				Participants: []Participant{{ContactID: 3}},
			},
			want: "no responsible",
		},
		{
			name: "missing responsible is reported before the empty roster",
			event: Event{
				Type:   EventTypeExamination,
				Status: EventStatusBuilding,
			},
			want: "no responsible",
		},
		{
			name: "no participant",
			event: Event{
				Type:   EventTypeExamination,
				Status: EventStatusBuilding,
				Organizers: []Organizer{
					{ContactID: 1, IsResponsible: true},
				},
			},
			want: "no participant",
		},
		{
			name: "ready to validate",
			event: Event{
				Type:   EventTypeExamination,
				Status: EventStatusBuilding,
				Organizers: []Organizer{
					{ContactID: 1, IsResponsible: true},
				},
				Participants: []Participant{{ContactID: 3}},
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.CheckValidity())
		})
	}
}

func TestEvent_Validate(t *testing.T) {
	t.Run("blocked event keeps its status", func(t *testing.T) {
		event := Event{
			Type:   EventTypeExamination,
			Status: EventStatusBuilding,
		}

		err := event.Validate()

		vErr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "no responsible", vErr.Message)
		assert.Equal(t, EventStatusBuilding, event.Status)
	})

	t.Run("ready event moves to valid", func(t *testing.T) {
		event := Event{
			Type:         EventTypeTraining,
			Status:       EventStatusBuilding,
			Organizers:   []Organizer{{ContactID: 1, IsResponsible: true}},
			Participants: []Participant{{ContactID: 2}},
		}

		err := event.Validate()

		require.NoError(t, err)
		assert.Equal(t, EventStatusValid, event.Status)
	})

	t.Run("validating twice fails on the guard", func(t *testing.T) {
		event := Event{
			Type:         EventTypeExamination,
			Status:       EventStatusBuilding,
			Organizers:   []Organizer{{ContactID: 1, IsResponsible: true}},
			Participants: []Participant{{ContactID: 2}},
		}

		require.NoError(t, event.Validate())

		err := event.Validate()

		vErr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, vErr.Message, "not allowed")
		assert.Equal(t, EventStatusValid, event.Status)
	})
}

func TestEvent_CanDelete(t *testing.T) {
	t.Run("building event may be deleted", func(t *testing.T) {
		event := Event{Type: EventTypeExamination, Status: EventStatusBuilding}

		assert.NoError(t, event.CanDelete())
	})

	t.Run("validated examination is refused", func(t *testing.T) {
		event := Event{Type: EventTypeExamination, Status: EventStatusValid}

		err := event.CanDelete()

		vErr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "examination validated!", vErr.Message)
	})

	t.Run("validated training is refused with its own label", func(t *testing.T) {
		event := Event{Type: EventTypeTraining, Status: EventStatusValid}

		err := event.CanDelete()

		vErr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "training validated!", vErr.Message)
	})
}

func TestEventStatus_Transition(t *testing.T) {
	t.Run("guard runs before any state changes", func(t *testing.T) {
		guardCalled := false

		got, err := EventStatusBuilding.Transition(EventStatusValid, func() string {
			guardCalled = true
			return "blocked"
		})

		require.Error(t, err)
		assert.True(t, guardCalled)
		assert.Equal(t, EventStatusBuilding, got)
	})

	t.Run("unknown transition is refused without consulting the guard", func(t *testing.T) {
		got, err := EventStatusValid.Transition(EventStatusBuilding, func() string {
			t.Fatal("guard must not run for an unknown transition")
			return ""
		})

		require.Error(t, err)
		assert.Equal(t, EventStatusValid, got)
	})
}
