package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// --- DTOs ---

type CreateWorkoutRequest struct {
	Name        string `json:"name" binding:"required"`
	Exercise    string `json:"exercise" binding:"required"`
	Duration    int    `json:"duration" binding:"required,gt=0"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
}

type WorkoutResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Exercise    string    `json:"exercise"`
	Duration    int       `json:"duration"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	TrainerID   uint      `json:"trainer_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func MapWorkoutToResponse(workout *domain.Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:          workout.ID,
		Name:        workout.Name,
		Exercise:    workout.Exercise,
		Duration:    workout.Duration,
		Type:        workout.Type,
		Description: workout.Description,
		TrainerID:   workout.TrainerID,
		CreatedAt:   workout.CreatedAt,
	}
}

// --- Workout Handler ---

type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// CreateWorkout handles workout creation by a trainer.
// POST /api/v1/workouts
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	workout, err := h.workoutService.CreateWorkout(
		c.Request.Context(), user.ID,
		req.Name, req.Exercise, req.Duration, req.Type, req.Description,
	)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Workout created successfully",
		"workout": MapWorkoutToResponse(workout),
	})
}

// ListWorkouts returns workouts scoped by the caller's role. Trainers
// see only their own, trainees see the whole catalog.
// GET /api/v1/workouts
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), user)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	responses := make([]WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		responses = append(responses, MapWorkoutToResponse(&workouts[i]))
	}

	c.JSON(http.StatusOK, gin.H{"workouts": responses})
}

// GetWorkout returns a single workout by ID.
// GET /api/v1/workouts/:workout_id
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workoutID, ok := parseIDParam(c, "workout_id")
	if !ok {
		return
	}

	workout, err := h.workoutService.GetWorkout(c.Request.Context(), workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"workout": MapWorkoutToResponse(workout)})
}
