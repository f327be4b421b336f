package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swimset/swim-app/internal/domain"
	"swimset/swim-app/internal/generator"
	"swimset/swim-app/internal/service"
	"swimset/swim-app/internal/swimdsl"
)

// GenerateHandler serves workout generation.
type GenerateHandler struct {
	generatorService service.GeneratorService
	workoutService   service.WorkoutService
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(gs service.GeneratorService, ws service.WorkoutService) *GenerateHandler {
	return &GenerateHandler{generatorService: gs, workoutService: ws}
}

type GenerateRequest struct {
	PoolLengthMeters      int     `json:"poolLengthMeters" binding:"required,gt=0"`
	TargetDistanceMeters  *int    `json:"targetDistanceMeters" binding:"omitempty,gt=0"`
	TargetDurationMinutes *int    `json:"targetDurationMinutes" binding:"omitempty,gt=0"`
	Focus                 string  `json:"focus" binding:"required,oneof=aerobic threshold sprint technique"`
	Profile               string  `json:"profile" binding:"required,oneof=novice intermediate elite"`
	Title                 *string `json:"title" binding:"omitempty,max=120"`
	// Save stores the generated workout for the calling coach.
	Save bool `json:"save"`
}

type GenerateResponse struct {
	Text           string                      `json:"text"`
	Interpretation *swimdsl.InterpretedWorkout `json:"interpretation"`
	Workout        *WorkoutResponse            `json:"workout,omitempty"`
}

// Generate godoc
// @Summary Generate a shorthand workout from constraints
// @Tags Generator
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param constraints body GenerateRequest true "Generation constraints"
// @Success 200 {object} GenerateResponse
// @Success 201 {object} GenerateResponse "When save is true"
// @Failure 400 {object} gin.H
// @Router /generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	if req.Save {
		role, err := getUserRoleFromContext(c)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
		if role != domain.RoleCoach {
			abortWithError(c, http.StatusForbidden, "Only coaches can save workouts")
			return
		}
	}

	generated, err := h.generatorService.Generate(c.Request.Context(), generator.Constraints{
		PoolLengthMeters:      req.PoolLengthMeters,
		TargetDistanceMeters:  req.TargetDistanceMeters,
		TargetDurationMinutes: req.TargetDurationMinutes,
		Focus:                 generator.Focus(req.Focus),
		Profile:               generator.Profile(req.Profile),
		Title:                 req.Title,
	})
	if err != nil {
		handleWorkoutError(c, err, "generate workout")
		return
	}

	resp := GenerateResponse{Text: generated.Text, Interpretation: generated.Workout}
	if !req.Save {
		c.JSON(http.StatusOK, resp)
		return
	}

	coachID, ok := coachIDFromContext(c)
	if !ok {
		return
	}
	workout, _, err := h.workoutService.CreateWorkout(c.Request.Context(), coachID, "", generated.Text)
	if err != nil {
		handleWorkoutError(c, err, "save generated workout")
		return
	}
	saved := mapWorkoutToResponse(workout, nil)
	resp.Workout = &saved
	c.JSON(http.StatusCreated, resp)
}
