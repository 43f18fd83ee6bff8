package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// --- DTOs ---

type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type JoinGroupRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

type GroupResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	InviteCode   string    `json:"invite_code"`
	TrainerID    uint      `json:"trainer_id"`
	MembersCount int64     `json:"members_count"`
	CreatedAt    time.Time `json:"created_at"`
}

func MapGroupToResponse(group *domain.Group, membersCount int64) GroupResponse {
	return GroupResponse{
		ID:           group.ID,
		Name:         group.Name,
		Description:  group.Description,
		InviteCode:   group.InviteCode,
		TrainerID:    group.TrainerID,
		MembersCount: membersCount,
		CreatedAt:    group.CreatedAt,
	}
}

// --- Group Handler ---

type GroupHandler struct {
	groupService service.GroupService
}

func NewGroupHandler(groupService service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// CreateGroup handles group creation by a trainer.
// POST /api/v1/groups
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	group, membersCount, err := h.groupService.CreateGroup(c.Request.Context(), user.ID, req.Name, req.Description)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Group created successfully",
		"group":   MapGroupToResponse(group, membersCount),
	})
}

// JoinGroup lets a trainee join a group by invite code.
// POST /api/v1/groups/join
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	group, membersCount, err := h.groupService.JoinGroup(c.Request.Context(), user.ID, req.InviteCode)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Joined group successfully",
		"group":   MapGroupToResponse(group, membersCount),
	})
}

// RegenerateInvite rotates the invite code of a group the trainer owns.
// POST /api/v1/groups/:group_id/invite
func (h *GroupHandler) RegenerateInvite(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	groupID, ok := parseIDParam(c, "group_id")
	if !ok {
		return
	}

	code, err := h.groupService.RegenerateInvite(c.Request.Context(), user.ID, groupID)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Invite created successfully",
		"invite_code": code,
	})
}

// GetMembers lists the members of a group visible to the caller.
// GET /api/v1/groups/:group_id/members
func (h *GroupHandler) GetMembers(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	groupID, ok := parseIDParam(c, "group_id")
	if !ok {
		return
	}

	members, err := h.groupService.GetMembers(c.Request.Context(), user, groupID)
	if err != nil {
		h.handleGroupError(c, err)
		return
	}

	responses := make([]UserResponse, 0, len(members))
	for i := range members {
		responses = append(responses, MapUserToResponse(&members[i]))
	}

	c.JSON(http.StatusOK, gin.H{"members": responses})
}

// handleGroupError maps group service errors to HTTP responses.
func (h *GroupHandler) handleGroupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGroupNotFound):
		abortWithError(c, http.StatusNotFound, "Group not found")
	case errors.Is(err, service.ErrAlreadyMember):
		abortWithError(c, http.StatusConflict, "User is already a member of this group")
	case errors.Is(err, service.ErrAccessDenied):
		abortWithError(c, http.StatusUnauthorized, msgUnauthorizedRole)
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// parseIDParam reads an integer path parameter, responding with 400 on
// malformed input.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return 0, false
	}
	return uint(id), true
}
