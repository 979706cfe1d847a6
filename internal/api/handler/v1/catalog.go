package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/clubevents-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/clubevents-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/clubevents-api/internal/domain"
	"github.com/vietanh2810/clubevents-api/internal/service"
)

type CatalogService interface {
	CreateDegreeLevel(ctx context.Context, level domain.DegreeLevel) (domain.DegreeLevel, error)
	GetDegreeLevels(ctx context.Context) ([]domain.DegreeLevel, error)
	UpdateDegreeLevel(ctx context.Context, level domain.DegreeLevel) (domain.DegreeLevel, error)
	DeleteDegreeLevel(ctx context.Context, id uint) error
	CreateSubDegreeLevel(ctx context.Context, level domain.SubDegreeLevel) (domain.SubDegreeLevel, error)
	GetSubDegreeLevels(ctx context.Context) ([]domain.SubDegreeLevel, error)
	UpdateSubDegreeLevel(ctx context.Context, level domain.SubDegreeLevel) (domain.SubDegreeLevel, error)
	DeleteSubDegreeLevel(ctx context.Context, id uint) error
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

// HandleCreateDegreeLevel godoc
// @Summary      Create a degree level
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateDegreeLevelRequest  true  "Degree level details"
// @Success      201    {object}  domain.DegreeLevel
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /degree-levels [post]
func (h *CatalogHandler) HandleCreateDegreeLevel(ctx *gin.Context) {
	var input request.CreateDegreeLevelRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	level, err := h.svc.CreateDegreeLevel(ctx.Request.Context(), domain.DegreeLevel{
		Name:       input.Name,
		Level:      input.Level,
		ActivityID: input.ActivityID,
	})
	if err != nil {
		if errors.Is(err, service.ErrDegreeLevelExists) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleCreateDegreeLevel -> h.svc.CreateDegreeLevel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, level)
}

// HandleGetDegreeLevels godoc
// @Summary      List degree levels
// @Description  Ordered by activity, then by descending level.
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.DegreeLevel
// @Failure      500  {object}  response.Err
// @Router       /degree-levels [get]
func (h *CatalogHandler) HandleGetDegreeLevels(ctx *gin.Context) {
	levels, err := h.svc.GetDegreeLevels(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetDegreeLevels -> h.svc.GetDegreeLevels -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, levels)
}

// HandleUpdateDegreeLevel godoc
// @Summary      Update a degree level
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        degreeLevelID  path      int                               true  "degree level ID"
// @Param        input          body      request.UpdateDegreeLevelRequest  true  "Degree level details"
// @Success      200            {object}  domain.DegreeLevel
// @Failure      400            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /degree-levels/{degreeLevelID} [put]
func (h *CatalogHandler) HandleUpdateDegreeLevel(ctx *gin.Context) {
	degreeLevelID, err := pathID(ctx, "degreeLevelID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.UpdateDegreeLevelRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	level, err := h.svc.UpdateDegreeLevel(ctx.Request.Context(), domain.DegreeLevel{
		ID:         degreeLevelID,
		Name:       input.Name,
		Level:      input.Level,
		ActivityID: input.ActivityID,
	})
	if err != nil {
		if errors.Is(err, service.ErrDegreeLevelNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("degree level", "ID", degreeLevelID))
			return
		}
		if errors.Is(err, service.ErrDegreeLevelExists) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleUpdateDegreeLevel -> h.svc.UpdateDegreeLevel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, level)
}

// HandleDeleteDegreeLevel godoc
// @Summary      Delete a degree level
// @Tags         catalog
// @Produce      json
// @Param        degreeLevelID  path  int  true  "degree level ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /degree-levels/{degreeLevelID} [delete]
func (h *CatalogHandler) HandleDeleteDegreeLevel(ctx *gin.Context) {
	degreeLevelID, err := pathID(ctx, "degreeLevelID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteDegreeLevel(ctx.Request.Context(), degreeLevelID); err != nil {
		if errors.Is(err, service.ErrDegreeLevelNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("degree level", "ID", degreeLevelID))
			return
		}

		err = fmt.Errorf("HandleDeleteDegreeLevel -> h.svc.DeleteDegreeLevel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateSubDegreeLevel godoc
// @Summary      Create a sub-degree level
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateSubDegreeLevelRequest  true  "Sub-degree level details"
// @Success      201    {object}  domain.SubDegreeLevel
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /sub-degree-levels [post]
func (h *CatalogHandler) HandleCreateSubDegreeLevel(ctx *gin.Context) {
	var input request.CreateSubDegreeLevelRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	level, err := h.svc.CreateSubDegreeLevel(ctx.Request.Context(), domain.SubDegreeLevel{
		Name:  input.Name,
		Level: input.Level,
	})
	if err != nil {
		if errors.Is(err, service.ErrSubDegreeLevelExists) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleCreateSubDegreeLevel -> h.svc.CreateSubDegreeLevel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, level)
}

// HandleGetSubDegreeLevels godoc
// @Summary      List sub-degree levels
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.SubDegreeLevel
// @Failure      500  {object}  response.Err
// @Router       /sub-degree-levels [get]
func (h *CatalogHandler) HandleGetSubDegreeLevels(ctx *gin.Context) {
	levels, err := h.svc.GetSubDegreeLevels(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetSubDegreeLevels -> h.svc.GetSubDegreeLevels -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, levels)
}

// HandleUpdateSubDegreeLevel godoc
// @Summary      Update a sub-degree level
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        subDegreeLevelID  path      int                                  true  "sub-degree level ID"
// @Param        input             body      request.UpdateSubDegreeLevelRequest  true  "Sub-degree level details"
// @Success      200               {object}  domain.SubDegreeLevel
// @Failure      400               {object}  response.Err
// @Failure      404               {object}  response.Err
// @Failure      500               {object}  response.Err
// @Router       /sub-degree-levels/{subDegreeLevelID} [put]
func (h *CatalogHandler) HandleUpdateSubDegreeLevel(ctx *gin.Context) {
	subDegreeLevelID, err := pathID(ctx, "subDegreeLevelID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var input request.UpdateSubDegreeLevelRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	level, err := h.svc.UpdateSubDegreeLevel(ctx.Request.Context(), domain.SubDegreeLevel{
		ID:    subDegreeLevelID,
		Name:  input.Name,
		Level: input.Level,
	})
	if err != nil {
		if errors.Is(err, service.ErrSubDegreeLevelNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sub-degree level", "ID", subDegreeLevelID))
			return
		}
		if errors.Is(err, service.ErrSubDegreeLevelExists) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleUpdateSubDegreeLevel -> h.svc.UpdateSubDegreeLevel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, level)
}

// HandleDeleteSubDegreeLevel godoc
// @Summary      Delete a sub-degree level
// @Tags         catalog
// @Produce      json
// @Param        subDegreeLevelID  path  int  true  "sub-degree level ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sub-degree-levels/{subDegreeLevelID} [delete]
func (h *CatalogHandler) HandleDeleteSubDegreeLevel(ctx *gin.Context) {
	subDegreeLevelID, err := pathID(ctx, "subDegreeLevelID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteSubDegreeLevel(ctx.Request.Context(), subDegreeLevelID); err != nil {
		if errors.Is(err, service.ErrSubDegreeLevelNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sub-degree level", "ID", subDegreeLevelID))
			return
		}

		err = fmt.Errorf("HandleDeleteSubDegreeLevel -> h.svc.DeleteSubDegreeLevel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
