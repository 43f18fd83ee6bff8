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

type LogProgressRequest struct {
	WorkoutID uint    `json:"workout_id" binding:"required"`
	Value     float64 `json:"value" binding:"required"`
	Date      string  `json:"date"`
	Notes     string  `json:"notes"`
}

type ProgressResponse struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"user_id"`
	WorkoutID uint            `json:"workout_id"`
	Value     float64         `json:"value"`
	Date      string          `json:"date"`
	Notes     string          `json:"notes"`
	Workout   WorkoutResponse `json:"workout"`
	CreatedAt time.Time       `json:"created_at"`
}

func MapProgressToResponse(entry *domain.Progress) ProgressResponse {
	return ProgressResponse{
		ID:        entry.ID,
		UserID:    entry.UserID,
		WorkoutID: entry.WorkoutID,
		Value:     entry.Value,
		Date:      entry.Date.Format("2006-01-02"),
		Notes:     entry.Notes,
		Workout:   MapWorkoutToResponse(&entry.Workout),
		CreatedAt: entry.CreatedAt,
	}
}

// --- Progress Handler ---

type ProgressHandler struct {
	progressService service.ProgressService
}

func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// LogProgress records a progress entry for the calling trainee.
// POST /api/v1/progress
func (h *ProgressHandler) LogProgress(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req LogProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date format. Use ISO format (YYYY-MM-DD).")
			return
		}
		date = &parsed
	}

	entry, err := h.progressService.LogProgress(c.Request.Context(), user.ID, req.WorkoutID, req.Value, date, req.Notes)
	if err != nil {
		h.handleProgressError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Progress logged successfully",
		"progress": MapProgressToResponse(entry),
	})
}

// ListProgress returns entries scoped by role. Trainees see their own
// entries, trainers see those of the trainees in their groups.
// GET /api/v1/progress
func (h *ProgressHandler) ListProgress(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	entries, err := h.progressService.ListProgress(c.Request.Context(), user)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress_entries": mapProgressList(entries)})
}

// ListOwnProgress returns only the caller's own entries, regardless of
// role.
// GET /api/v1/progress/user
func (h *ProgressHandler) ListOwnProgress(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	entries, err := h.progressService.ListOwnProgress(c.Request.Context(), user.ID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress_entries": mapProgressList(entries)})
}

// GetProgress returns a single entry if the caller may see it.
// GET /api/v1/progress/:progress_id
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	progressID, ok := parseIDParam(c, "progress_id")
	if !ok {
		return
	}

	entry, err := h.progressService.GetProgress(c.Request.Context(), user, progressID)
	if err != nil {
		h.handleProgressError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": MapProgressToResponse(entry)})
}

func mapProgressList(entries []domain.Progress) []ProgressResponse {
	responses := make([]ProgressResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, MapProgressToResponse(&entries[i]))
	}
	return responses
}

// handleProgressError maps progress service errors to HTTP responses.
func (h *ProgressHandler) handleProgressError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProgressNotFound):
		abortWithError(c, http.StatusNotFound, "Progress not found")
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, "Workout not found")
	case errors.Is(err, service.ErrAccessDenied):
		abortWithError(c, http.StatusUnauthorized, msgUnauthorizedRole)
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
