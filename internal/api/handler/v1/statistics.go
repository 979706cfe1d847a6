package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/clubevents-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/clubevents-api/internal/service"
)

type StatisticsService interface {
	GetStatistics(ctx context.Context, seasonID uint) ([]service.ActivityStatistics, error)
}

type StatisticsHandler struct {
	svc StatisticsService
}

func NewStatisticsHandler(svc StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{
		svc: svc,
	}
}

// HandleGetStatistics godoc
// @Summary      Degree statistics for a season
// @Description  Counts the degrees achieved within the season, grouped per activity when activity scoping is enabled.
// @Tags         statistics
// @Produce      json
// @Param        seasonID  query     int  true  "season ID"
// @Success      200       {array}   service.ActivityStatistics
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /statistics [get]
func (h *StatisticsHandler) HandleGetStatistics(ctx *gin.Context) {
	raw := ctx.Query("seasonID")

	seasonID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || seasonID == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid seasonID (%v)", raw)))
		return
	}

	stats, err := h.svc.GetStatistics(ctx.Request.Context(), uint(seasonID))
	if err != nil {
		if errors.Is(err, service.ErrSeasonNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("season", "ID", seasonID))
			return
		}

		err = fmt.Errorf("HandleGetStatistics -> h.svc.GetStatistics -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
