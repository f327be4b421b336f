package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"swimset/swim-app/internal/domain"
	"swimset/swim-app/internal/service"
	"swimset/swim-app/internal/swimdsl"
)

// WorkoutHandler serves interpretation and the coach's saved workouts.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(ws service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: ws}
}

type InterpretRequest struct {
	Text string `json:"text"`
}

type SaveWorkoutRequest struct {
	Title  string `json:"title" binding:"max=120"`
	Source string `json:"source" binding:"required"`
}

// WorkoutResponse is a stored workout plus, on single-item reads, its interpretation.
type WorkoutResponse struct {
	ID                     string                      `json:"id"`
	Title                  string                      `json:"title"`
	Source                 string                      `json:"source,omitempty"`
	PoolLengthMeters       *int                        `json:"poolLengthMeters,omitempty"`
	PlannedDurationMinutes *int                        `json:"plannedDurationMinutes,omitempty"`
	Focus                  string                      `json:"focus,omitempty"`
	Profile                string                      `json:"profile,omitempty"`
	TotalDistanceMeters    int                         `json:"totalDistanceMeters"`
	EstimatedMinutes       *float64                    `json:"estimatedMinutes,omitempty"`
	ErrorCount             int                         `json:"errorCount"`
	CreatedAt              time.Time                   `json:"createdAt"`
	UpdatedAt              time.Time                   `json:"updatedAt"`
	Interpretation         *swimdsl.InterpretedWorkout `json:"interpretation,omitempty"`
}

// Interpret godoc
// @Summary Interpret a shorthand workout document
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body InterpretRequest true "Shorthand text"
// @Success 200 {object} swimdsl.InterpretedWorkout
// @Router /interpret [post]
func (h *WorkoutHandler) Interpret(c *gin.Context) {
	var req InterpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.workoutService.Interpret(req.Text))
}

// CreateWorkout godoc
// @Summary Save a shorthand workout (Coach only)
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body SaveWorkoutRequest true "Workout"
// @Success 201 {object} WorkoutResponse
// @Router /workouts [post]
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	coachID, ok := coachIDFromContext(c)
	if !ok {
		return
	}
	var req SaveWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	workout, interpreted, err := h.workoutService.CreateWorkout(c.Request.Context(), coachID, req.Title, req.Source)
	if err != nil {
		handleWorkoutError(c, err, "create workout")
		return
	}
	c.JSON(http.StatusCreated, mapWorkoutToResponse(workout, interpreted))
}

// ListWorkouts godoc
// @Summary List the coach's workouts
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} WorkoutResponse
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	coachID, ok := coachIDFromContext(c)
	if !ok {
		return
	}
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), coachID)
	if err != nil {
		handleWorkoutError(c, err, "list workouts")
		return
	}

	resp := make([]WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		resp = append(resp, mapWorkoutToResponse(&workouts[i], nil))
	}
	c.JSON(http.StatusOK, resp)
}

// GetWorkout godoc
// @Summary Get a workout with its interpretation
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workout ID"
// @Success 200 {object} WorkoutResponse
// @Router /workouts/{id} [get]
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	coachID, ok := coachIDFromContext(c)
	if !ok {
		return
	}
	workoutID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	workout, interpreted, err := h.workoutService.GetWorkout(c.Request.Context(), coachID, workoutID)
	if err != nil {
		handleWorkoutError(c, err, "get workout")
		return
	}
	c.JSON(http.StatusOK, mapWorkoutToResponse(workout, interpreted))
}

// UpdateWorkout godoc
// @Summary Replace a workout's title and text
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workout ID"
// @Param workout body SaveWorkoutRequest true "Workout"
// @Success 200 {object} WorkoutResponse
// @Router /workouts/{id} [put]
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	coachID, ok := coachIDFromContext(c)
	if !ok {
		return
	}
	workoutID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req SaveWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	workout, interpreted, err := h.workoutService.UpdateWorkout(c.Request.Context(), coachID, workoutID, req.Title, req.Source)
	if err != nil {
		handleWorkoutError(c, err, "update workout")
		return
	}
	c.JSON(http.StatusOK, mapWorkoutToResponse(workout, interpreted))
}

// DeleteWorkout godoc
// @Summary Delete a workout
// @Tags Workouts
// @Security BearerAuth
// @Param id path string true "Workout ID"
// @Success 204
// @Router /workouts/{id} [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	coachID, ok := coachIDFromContext(c)
	if !ok {
		return
	}
	workoutID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), coachID, workoutID); err != nil {
		handleWorkoutError(c, err, "delete workout")
		return
	}
	c.Status(http.StatusNoContent)
}

func handleWorkoutError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrWorkoutNotFound), errors.Is(err, service.ErrExportNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrWorkoutAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrValidationFailed), errors.Is(err, service.ErrInvalidView),
		errors.Is(err, service.ErrInvalidConstraints):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("ERROR: Failed to %s: %v", action, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to "+action)
	}
}

// coachIDFromContext parses the caller ID from the token; on failure it has already aborted.
func coachIDFromContext(c *gin.Context) (primitive.ObjectID, bool) {
	userIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return primitive.NilObjectID, false
	}
	coachID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid user ID in token")
		return primitive.NilObjectID, false
	}
	return coachID, true
}

func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}

func mapWorkoutToResponse(w *domain.Workout, interpreted *swimdsl.InterpretedWorkout) WorkoutResponse {
	return WorkoutResponse{
		ID:                     w.ID.Hex(),
		Title:                  w.Title,
		Source:                 w.Source,
		PoolLengthMeters:       w.PoolLengthMeters,
		PlannedDurationMinutes: w.PlannedDurationMinutes,
		Focus:                  w.Focus,
		Profile:                w.Profile,
		TotalDistanceMeters:    w.TotalDistanceMeters,
		EstimatedMinutes:       w.EstimatedMinutes,
		ErrorCount:             w.ErrorCount,
		CreatedAt:              w.CreatedAt,
		UpdatedAt:              w.UpdatedAt,
		Interpretation:         interpreted,
	}
}
