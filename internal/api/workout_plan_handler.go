package api

import (
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// --- DTOs ---

type CreateWorkoutPlanRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type AddWorkoutToPlanRequest struct {
	WorkoutID uint `json:"workout_id" binding:"required"`
	Order     int  `json:"order" binding:"required"`
}

type AssignPlanRequest struct {
	GroupID uint `json:"group_id" binding:"required"`
}

// PlanWorkoutResponse is one slot in the ordered workout list of a plan.
type PlanWorkoutResponse struct {
	Workout WorkoutResponse `json:"workout"`
	Order   int             `json:"order"`
}

type WorkoutPlanResponse struct {
	ID          uint                  `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	TrainerID   uint                  `json:"trainer_id"`
	Workouts    []PlanWorkoutResponse `json:"workouts"`
	GroupsCount int64                 `json:"groups_count"`
	CreatedAt   time.Time             `json:"created_at"`
}

func MapPlanDetailToResponse(detail *service.PlanDetail) WorkoutPlanResponse {
	workouts := make([]PlanWorkoutResponse, 0, len(detail.Workouts))
	for i := range detail.Workouts {
		edge := &detail.Workouts[i]
		workouts = append(workouts, PlanWorkoutResponse{
			Workout: MapWorkoutToResponse(&edge.Workout),
			Order:   edge.Order,
		})
	}
	return WorkoutPlanResponse{
		ID:          detail.Plan.ID,
		Name:        detail.Plan.Name,
		Description: detail.Plan.Description,
		TrainerID:   detail.Plan.TrainerID,
		Workouts:    workouts,
		GroupsCount: detail.GroupsCount,
		CreatedAt:   detail.Plan.CreatedAt,
	}
}

// --- Workout Plan Handler ---

type WorkoutPlanHandler struct {
	planService service.WorkoutPlanService
}

func NewWorkoutPlanHandler(planService service.WorkoutPlanService) *WorkoutPlanHandler {
	return &WorkoutPlanHandler{planService: planService}
}

// CreatePlan handles workout plan creation by a trainer.
// POST /api/v1/workout-plans
func (h *WorkoutPlanHandler) CreatePlan(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req CreateWorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	detail, err := h.planService.CreatePlan(c.Request.Context(), user.ID, req.Name, req.Description)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Workout plan created successfully",
		"workout_plan": MapPlanDetailToResponse(detail),
	})
}

// ListPlans returns the plans visible to the caller. Trainers see the
// plans they own; trainees see the plans assigned to their groups.
// GET /api/v1/workout-plans
func (h *WorkoutPlanHandler) ListPlans(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	details, err := h.planService.ListPlans(c.Request.Context(), user)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	responses := make([]WorkoutPlanResponse, 0, len(details))
	for i := range details {
		responses = append(responses, MapPlanDetailToResponse(&details[i]))
	}

	c.JSON(http.StatusOK, gin.H{"workout_plans": responses})
}

// GetPlan returns a single plan if the caller may see it.
// GET /api/v1/workout-plans/:plan_id
func (h *WorkoutPlanHandler) GetPlan(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	planID, ok := parseIDParam(c, "plan_id")
	if !ok {
		return
	}

	detail, err := h.planService.GetPlan(c.Request.Context(), user, planID)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workout_plan": MapPlanDetailToResponse(detail)})
}

// AddWorkout appends a workout to a plan the trainer owns.
// POST /api/v1/workout-plans/:plan_id/workouts
func (h *WorkoutPlanHandler) AddWorkout(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	planID, ok := parseIDParam(c, "plan_id")
	if !ok {
		return
	}

	var req AddWorkoutToPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	detail, err := h.planService.AddWorkout(c.Request.Context(), user.ID, planID, req.WorkoutID, req.Order)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Workout added to plan successfully",
		"workout_plan": MapPlanDetailToResponse(detail),
	})
}

// AssignToGroup assigns a plan to a group. Both must be owned by the
// calling trainer. Repeating an assignment is a no-op.
// POST /api/v1/workout-plans/:plan_id/assign
func (h *WorkoutPlanHandler) AssignToGroup(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	planID, ok := parseIDParam(c, "plan_id")
	if !ok {
		return
	}

	var req AssignPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	detail, err := h.planService.AssignToGroup(c.Request.Context(), user.ID, planID, req.GroupID)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Workout plan assigned to group successfully",
		"workout_plan": MapPlanDetailToResponse(detail),
	})
}

// handlePlanError maps plan service errors to HTTP responses.
func (h *WorkoutPlanHandler) handlePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlanNotFound):
		abortWithError(c, http.StatusNotFound, "Workout plan not found")
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, "Workout not found")
	case errors.Is(err, service.ErrGroupNotFound):
		abortWithError(c, http.StatusNotFound, "Group not found")
	case errors.Is(err, service.ErrAccessDenied):
		abortWithError(c, http.StatusUnauthorized, msgUnauthorizedRole)
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
