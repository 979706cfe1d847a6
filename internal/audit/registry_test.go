package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	reg.Register("event", "date", "comment")
	reg.Register("event", "status")
	reg.Register("organizer", "is_responsible")

	assert.Equal(t, []string{"date", "comment", "status"}, reg.TrackedFields("event"))
	assert.Equal(t, []string{"event", "organizer"}, reg.Models())
	assert.Empty(t, reg.TrackedFields("participant"))
}

func TestRegistry_Changed(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	reg := NewRegistry()
	reg.Register("event", "date", "status")

	t.Run("only tracked fields are emitted", func(t *testing.T) {
		reg.Changed("event", 7, "date", "comment")

		entries := logs.TakeAll()
		assert.Len(t, entries, 1)
		assert.Equal(t, "audit", entries[0].Message)
	})

	t.Run("nothing tracked, nothing logged", func(t *testing.T) {
		reg.Changed("event", 7, "comment")
		reg.Changed("unknown", 7, "date")

		assert.Empty(t, logs.TakeAll())
	})
}
