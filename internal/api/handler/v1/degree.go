package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/clubevents-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/clubevents-api/internal/domain"
	"github.com/vietanh2810/clubevents-api/internal/service"
)

type DegreeService interface {
	GetMemberDegrees(ctx context.Context, memberID uint) ([]domain.DegreeRecord, error)
	DeleteRecord(ctx context.Context, recordID uint) error
}

type DegreeHandler struct {
	svc DegreeService
}

func NewDegreeHandler(svc DegreeService) *DegreeHandler {
	return &DegreeHandler{
		svc: svc,
	}
}

// HandleGetMemberDegrees godoc
// @Summary      List a member's degree records
// @Description  Ordered by descending degree level, then by descending sub-degree level.
// @Tags         degrees
// @Produce      json
// @Param        memberID  path      int  true  "member ID"
// @Success      200       {array}   domain.DegreeRecord
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /members/{memberID}/degrees [get]
func (h *DegreeHandler) HandleGetMemberDegrees(ctx *gin.Context) {
	memberID, err := pathID(ctx, "memberID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	records, err := h.svc.GetMemberDegrees(ctx.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "ID", memberID))
			return
		}

		err = fmt.Errorf("HandleGetMemberDegrees -> h.svc.GetMemberDegrees -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// HandleDeleteDegreeRecord godoc
// @Summary      Delete a degree record
// @Description  Refused while the record still belongs to an existing validated event.
// @Tags         degrees
// @Produce      json
// @Param        recordID  path  int  true  "degree record ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /degree-records/{recordID} [delete]
func (h *DegreeHandler) HandleDeleteDegreeRecord(ctx *gin.Context) {
	recordID, err := pathID(ctx, "recordID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteRecord(ctx.Request.Context(), recordID); err != nil {
		if vErr, ok := domain.AsValidationError(err); ok {
			response.RenderErr(ctx, response.ErrUnprocessable(vErr))
			return
		}
		if errors.Is(err, service.ErrDegreeRecordNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("degree record", "ID", recordID))
			return
		}

		err = fmt.Errorf("HandleDeleteDegreeRecord -> h.svc.DeleteRecord -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
