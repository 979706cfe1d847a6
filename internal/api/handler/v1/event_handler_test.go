package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/clubevents-api/internal/domain"
	"github.com/vietanh2810/clubevents-api/internal/service"
)

type stubEventService struct {
	EventService

	createEvent func(ctx context.Context, event domain.Event) (domain.Event, error)
	getEvent    func(ctx context.Context, id uint) (domain.Event, error)
	validate    func(ctx context.Context, eventID uint, results []domain.ParticipantResult) (domain.Event, error)
}

func (s *stubEventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	return s.createEvent(ctx, event)
}

func (s *stubEventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	return s.getEvent(ctx, id)
}

func (s *stubEventService) Validate(ctx context.Context, eventID uint, results []domain.ParticipantResult) (domain.Event, error) {
	return s.validate(ctx, eventID, results)
}

func newTestRouter(svc EventService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewEventHandler(svc)
	router.POST("/api/v1/events", handler.HandleCreateEvent)
	router.GET("/api/v1/events/:eventID", handler.HandleGetEvent)
	router.POST("/api/v1/events/:eventID/validate", handler.HandleValidateEvent)

	return router
}

func TestEventHandler_HandleCreateEvent(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		svc := &stubEventService{
			createEvent: func(ctx context.Context, event domain.Event) (domain.Event, error) {
				event.ID = 1
				return event, nil
			},
		}
		router := newTestRouter(svc)

		body := `{"activity_id":1,"date":"14/03/2026","type":"examination"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(body))

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		router := newTestRouter(&stubEventService{})

		body := `{"activity_id":1,"date":"2026-03-14","type":"examination"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(body))

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown type fails validation", func(t *testing.T) {
		router := newTestRouter(&stubEventService{})

		body := `{"activity_id":1,"date":"14/03/2026","type":"party"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(body))

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEventHandler_HandleGetEvent(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &stubEventService{
			getEvent: func(ctx context.Context, id uint) (domain.Event, error) {
				return domain.Event{}, service.ErrEventNotFound
			},
		}
		router := newTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/events/7", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "event not found")
	})

	t.Run("bad id", func(t *testing.T) {
		router := newTestRouter(&stubEventService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/events/seven", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEventHandler_HandleValidateEvent(t *testing.T) {
	t.Run("a blocked transition renders 422 with the reason", func(t *testing.T) {
		svc := &stubEventService{
			validate: func(ctx context.Context, eventID uint, results []domain.ParticipantResult) (domain.Event, error) {
				return domain.Event{}, domain.NewValidationError("no responsible")
			},
		}
		router := newTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/events/7/validate", strings.NewReader(`{"results":[]}`))

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "no responsible")
	})

	t.Run("results are forwarded", func(t *testing.T) {
		var got []domain.ParticipantResult
		svc := &stubEventService{
			validate: func(ctx context.Context, eventID uint, results []domain.ParticipantResult) (domain.Event, error) {
				got = results
				return domain.Event{ID: eventID, Status: domain.EventStatusValid}, nil
			},
		}
		router := newTestRouter(svc)

		body := `{"results":[{"participant_id":3,"degree_level_id":5,"sub_degree_level_id":2}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/events/7/validate", strings.NewReader(body))

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, got, 1)
		assert.Equal(t, uint(3), got[0].ParticipantID)
		assert.Equal(t, uint(5), got[0].DegreeLevelID)
		assert.Equal(t, uint(2), got[0].SubDegreeLevelID)
		assert.Nil(t, got[0].Comment)
	})
}
