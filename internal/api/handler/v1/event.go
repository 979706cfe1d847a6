package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/clubevents-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/clubevents-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/clubevents-api/internal/domain"
	"github.com/vietanh2810/clubevents-api/internal/service"
)

const dateLayout = "02/01/2006"

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
	GetEvents(ctx context.Context) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	CheckValidity(ctx context.Context, id uint) (string, error)
	Validate(ctx context.Context, eventID uint, results []domain.ParticipantResult) (domain.Event, error)
	AddOrganizer(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error)
	RemoveOrganizer(ctx context.Context, organizerID uint) error
	SetResponsible(ctx context.Context, organizerID uint) error
	AddParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	UpdateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	RemoveParticipant(ctx context.Context, participantID uint) error
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

func pathID(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %v (%v)", name, raw)
	}

	return uint(id), nil
}

func parseEventDates(date, endDate string) (time.Time, *time.Time, error) {
	start, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("invalid date (%v), expected DD/MM/YYYY", date)
	}

	if endDate == "" {
		return start, nil, nil
	}

	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("invalid end_date (%v), expected DD/MM/YYYY", endDate)
	}

	return start, &end, nil
}

// HandleCreateEvent godoc
// @Summary      Create a new event
// @Description  Creates an examination or training in the building state.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateEventRequest  true  "Event details"
// @Success      201    {object}  domain.Event
// @Failure      400    {object}  response.Err
// @Failure      422    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /events [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var input request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	date, endDate, err := parseEventDates(input.Date, input.EndDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), domain.Event{
		ActivityID:         input.ActivityID,
		Date:               date,
		EndDate:            endDate,
		Comment:            input.Comment,
		Type:               domain.EventType(input.Type),
		MemberArticleID:    input.MemberArticleID,
		NonMemberArticleID: input.NonMemberArticleID,
		CostCenterID:       input.CostCenterID,
	})
	if err != nil {
		if vErr, ok := domain.AsValidationError(err); ok {
			response.RenderErr(ctx, response.ErrUnprocessable(vErr))
			return
		}

		err = fmt.Errorf("HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleGetEvents godoc
// @Summary      List all events
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      500  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleGetEvents(ctx *gin.Context) {
	events, err := h.svc.GetEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetEvents -> h.svc.GetEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get an event
// @Description  Retrieves an event with its organizers and participants.
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	eventID, err := pathID(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Description  Updates an event that is still in the building state.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                         true  "event ID"
// @Param        input    body      request.UpdateEventRequest  true  "Event details"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [put]
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	eventID, err := pathID(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.UpdateEventRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	date, endDate, err := parseEventDates(input.Date, input.EndDate)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.UpdateEvent(ctx.Request.Context(), domain.Event{
		ID:                 eventID,
		ActivityID:         input.ActivityID,
		Date:               date,
		EndDate:            endDate,
		Comment:            input.Comment,
		Type:               domain.EventType(input.Type),
		MemberArticleID:    input.MemberArticleID,
		NonMemberArticleID: input.NonMemberArticleID,
		CostCenterID:       input.CostCenterID,
	})
	if err != nil {
		if vErr, ok := domain.AsValidationError(err); ok {
			response.RenderErr(ctx, response.ErrUnprocessable(vErr))
			return
		}
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Description  Deletes an event together with its roster and generated bills. Validated events are refused.
// @Tags         events
// @Produce      json
// @Param        eventID  path  int  true  "event ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID} [delete]
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	eventID, err := pathID(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteEvent(ctx.Request.Context(), eventID); err != nil {
		if vErr, ok := domain.AsValidationError(err); ok {
			response.RenderErr(ctx, response.ErrUnprocessable(vErr))
			return
		}
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCheckValidity godoc
// @Summary      Check whether an event can be validated
// @Description  Returns the blocking reason, or an empty message when the event is ready.
// @Tags         events
// @Produce      json
// @Param        eventID  path  int  true  "event ID"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/check-validity [get]
func (h *EventHandler) HandleCheckValidity(ctx *gin.Context) {
	eventID, err := pathID(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	message, err := h.svc.CheckValidity(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("HandleCheckValidity -> h.svc.CheckValidity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"valid":   message == "",
		"message": message,
	})
}

// HandleValidateEvent godoc
// @Summary      Validate an event
// @Description  Records the submitted results, generates the bills and moves the event to the valid state.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                           true  "event ID"
// @Param        input    body      request.ValidateEventRequest  true  "Participant results"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/validate [post]
func (h *EventHandler) HandleValidateEvent(ctx *gin.Context) {
	eventID, err := pathID(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.ValidateEventRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	results := make([]domain.ParticipantResult, 0, len(input.Results))
	for _, r := range input.Results {
		results = append(results, domain.ParticipantResult{
			ParticipantID:    r.ParticipantID,
			DegreeLevelID:    r.DegreeLevelID,
			SubDegreeLevelID: r.SubDegreeLevelID,
			Comment:          r.Comment,
		})
	}

	event, err := h.svc.Validate(ctx.Request.Context(), eventID, results)
	if err != nil {
		if vErr, ok := domain.AsValidationError(err); ok {
			response.RenderErr(ctx, response.ErrUnprocessable(vErr))
			return
		}
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("HandleValidateEvent -> h.svc.Validate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleAddOrganizer godoc
// @Summary      Add an organizer to an event
// @Tags         organizers
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                             true  "event ID"
// @Param        input    body      request.CreateOrganizerRequest  true  "Organizer details"
// @Success      201      {object}  domain.Organizer
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/organizers [post]
func (h *EventHandler) HandleAddOrganizer(ctx *gin.Context) {
	eventID, err := pathID(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.CreateOrganizerRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	organizer, err := h.svc.AddOrganizer(ctx.Request.Context(), domain.Organizer{
		EventID:       eventID,
		ContactID:     input.ContactID,
		IsResponsible: input.IsResponsible,
	})
	if err != nil {
		if vErr, ok := domain.AsValidationError(err); ok {
			response.RenderErr(ctx, response.ErrUnprocessable(vErr))
			return
		}
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("HandleAddOrganizer -> h.svc.AddOrganizer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, organizer)
}

// HandleRemoveOrganizer godoc
// @Summary      Remove an organizer from an event
// @Tags         organizers
// @Produce      json
// @Param        eventID      path  int  true  "event ID"
// @Param        organizerID  path  int  true  "organizer ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/organizers/{organizerID} [delete]
func (h *EventHandler) HandleRemoveOrganizer(ctx *gin.Context) {
	organizerID, err := pathID(ctx, "organizerID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.RemoveOrganizer(ctx.Request.Context(), organizerID); err != nil {
		if vErr, ok := domain.AsValidationError(err); ok {
			response.RenderErr(ctx, response.ErrUnprocessable(vErr))
			return
		}
		if errors.Is(err, service.ErrOrganizerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organizer", "ID", organizerID))
			return
		}
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "organizerID", organizerID))
			return
		}

		err = fmt.Errorf("HandleRemoveOrganizer -> h.svc.RemoveOrganizer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleSetResponsible godoc
// @Summary      Mark an organizer as the responsible one
// @Description  Makes the organizer the single responsible organizer of its event.
// @Tags         organizers
// @Produce      json
// @Param        eventID      path  int  true  "event ID"
// @Param        organizerID  path  int  true  "organizer ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/organizers/{organizerID}/responsible [put]
func (h *EventHandler) HandleSetResponsible(ctx *gin.Context) {
	organizerID, err := pathID(ctx, "organizerID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.SetResponsible(ctx.Request.Context(), organizerID); err != nil {
		if vErr, ok := domain.AsValidationError(err); ok {
			response.RenderErr(ctx, response.ErrUnprocessable(vErr))
			return
		}
		if errors.Is(err, service.ErrOrganizerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("organizer", "ID", organizerID))
			return
		}
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "organizerID", organizerID))
			return
		}

		err = fmt.Errorf("HandleSetResponsible -> h.svc.SetResponsible -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleAddParticipant godoc
// @Summary      Add a participant to an event
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                               true  "event ID"
// @Param        input    body      request.CreateParticipantRequest  true  "Participant details"
// @Success      201      {object}  domain.Participant
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/participants [post]
func (h *EventHandler) HandleAddParticipant(ctx *gin.Context) {
	eventID, err := pathID(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.CreateParticipantRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.svc.AddParticipant(ctx.Request.Context(), domain.Participant{
		EventID:   eventID,
		ContactID: input.ContactID,
		Comment:   input.Comment,
		ArticleID: input.ArticleID,
		Discount:  input.Discount,
	})
	if err != nil {
		if vErr, ok := domain.AsValidationError(err); ok {
			response.RenderErr(ctx, response.ErrUnprocessable(vErr))
			return
		}
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("HandleAddParticipant -> h.svc.AddParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, participant)
}

// HandleUpdateParticipant godoc
// @Summary      Update a participant
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        eventID        path      int                               true  "event ID"
// @Param        participantID  path      int                               true  "participant ID"
// @Param        input          body      request.UpdateParticipantRequest  true  "Participant details"
// @Success      200            {object}  domain.Participant
// @Failure      400            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      422            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /events/{eventID}/participants/{participantID} [put]
func (h *EventHandler) HandleUpdateParticipant(ctx *gin.Context) {
	participantID, err := pathID(ctx, "participantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.UpdateParticipantRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.svc.UpdateParticipant(ctx.Request.Context(), domain.Participant{
		ID:        participantID,
		ContactID: input.ContactID,
		Comment:   input.Comment,
		ArticleID: input.ArticleID,
		Discount:  input.Discount,
	})
	if err != nil {
		if vErr, ok := domain.AsValidationError(err); ok {
			response.RenderErr(ctx, response.ErrUnprocessable(vErr))
			return
		}
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", participantID))
			return
		}
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "participantID", participantID))
			return
		}

		err = fmt.Errorf("HandleUpdateParticipant -> h.svc.UpdateParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participant)
}

// HandleRemoveParticipant godoc
// @Summary      Remove a participant from an event
// @Description  Removes the participant and deletes the building bill it was linked to, if any.
// @Tags         participants
// @Produce      json
// @Param        eventID        path  int  true  "event ID"
// @Param        participantID  path  int  true  "participant ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/participants/{participantID} [delete]
func (h *EventHandler) HandleRemoveParticipant(ctx *gin.Context) {
	participantID, err := pathID(ctx, "participantID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.RemoveParticipant(ctx.Request.Context(), participantID); err != nil {
		if vErr, ok := domain.AsValidationError(err); ok {
			response.RenderErr(ctx, response.ErrUnprocessable(vErr))
			return
		}
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", participantID))
			return
		}
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "participantID", participantID))
			return
		}

		err = fmt.Errorf("HandleRemoveParticipant -> h.svc.RemoveParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
