package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"swimset/swim-app/internal/domain"
	"swimset/swim-app/internal/service"
)

// ExportHandler serves rendered workout sheets.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(es service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: es}
}

type CreateExportRequest struct {
	View domain.SheetView `json:"view" binding:"required,oneof=coach swimmer"`
}

type ExportResponse struct {
	ID          string           `json:"id"`
	WorkoutID   string           `json:"workoutId"`
	View        domain.SheetView `json:"view"`
	ContentType string           `json:"contentType"`
	Size        int64            `json:"size"`
	CreatedAt   time.Time        `json:"createdAt"`
	DownloadURL string           `json:"downloadUrl,omitempty"`
	ExpiresAt   *time.Time       `json:"expiresAt,omitempty"`
}

// CreateExport godoc
// @Summary Render a workout sheet and store it
// @Tags Exports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workout ID"
// @Param body body CreateExportRequest true "Sheet view"
// @Success 201 {object} ExportResponse
// @Router /workouts/{id}/exports [post]
func (h *ExportHandler) CreateExport(c *gin.Context) {
	coachID, ok := coachIDFromContext(c)
	if !ok {
		return
	}
	workoutID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req CreateExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	created, err := h.exportService.CreateExport(c.Request.Context(), coachID, workoutID, req.View)
	if err != nil {
		handleWorkoutError(c, err, "create export")
		return
	}
	c.JSON(http.StatusCreated, mapExportURLToResponse(created))
}

// ListExports godoc
// @Summary List the sheets rendered for a workout
// @Tags Exports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workout ID"
// @Success 200 {array} ExportResponse
// @Router /workouts/{id}/exports [get]
func (h *ExportHandler) ListExports(c *gin.Context) {
	coachID, ok := coachIDFromContext(c)
	if !ok {
		return
	}
	workoutID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	exports, err := h.exportService.ListExports(c.Request.Context(), coachID, workoutID)
	if err != nil {
		handleWorkoutError(c, err, "list exports")
		return
	}
	resp := make([]ExportResponse, 0, len(exports))
	for i := range exports {
		resp = append(resp, mapExportToResponse(&exports[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetExport godoc
// @Summary Get a fresh download URL for a stored sheet
// @Tags Exports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Export ID"
// @Success 200 {object} ExportResponse
// @Router /exports/{id} [get]
func (h *ExportHandler) GetExport(c *gin.Context) {
	coachID, ok := coachIDFromContext(c)
	if !ok {
		return
	}
	exportID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	signed, err := h.exportService.GetExportURL(c.Request.Context(), coachID, exportID)
	if err != nil {
		handleWorkoutError(c, err, "get export")
		return
	}
	c.JSON(http.StatusOK, mapExportURLToResponse(signed))
}

func mapExportToResponse(e *domain.Export) ExportResponse {
	return ExportResponse{
		ID:          e.ID.Hex(),
		WorkoutID:   e.WorkoutID.Hex(),
		View:        e.View,
		ContentType: e.ContentType,
		Size:        e.Size,
		CreatedAt:   e.CreatedAt,
	}
}

func mapExportURLToResponse(u *service.ExportURL) ExportResponse {
	resp := mapExportToResponse(u.Export)
	resp.DownloadURL = u.DownloadURL
	expires := u.ExpiresAt
	resp.ExpiresAt = &expires
	return resp
}
