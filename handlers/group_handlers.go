package handlers

import (
	"splitledger/middleware"
	"splitledger/models"
	"splitledger/utils"

	"github.com/gin-gonic/gin"
)

// CreateGroup handles POST /groups
func (h *Handlers) CreateGroup(c *gin.Context) {
	var request models.CreateGroupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	group, err := h.GroupService.CreateGroup(request.Name, request.Description, middleware.CurrentUser(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, group)
}

// ListGroups handles GET /groups
func (h *Handlers) ListGroups(c *gin.Context) {
	groups, err := h.GroupService.ListGroups(middleware.CurrentUser(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, groups)
}

// GetGroup handles GET /groups/:id
func (h *Handlers) GetGroup(c *gin.Context) {
	group, err := h.GroupService.GetGroup(c.Param("id"), middleware.CurrentUser(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, group)
}

// UpdateGroup handles PATCH /groups/:id
func (h *Handlers) UpdateGroup(c *gin.Context) {
	var request models.UpdateGroupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	group, err := h.GroupService.UpdateGroup(c.Param("id"), middleware.CurrentUser(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, group)
}

// DeleteGroup handles DELETE /groups/:id (soft delete)
func (h *Handlers) DeleteGroup(c *gin.Context) {
	if err := h.GroupService.DeleteGroup(c.Param("id"), middleware.CurrentUser(c)); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"deleted": true})
}

// AddMember handles POST /groups/:id/members
func (h *Handlers) AddMember(c *gin.Context) {
	var request models.AddMemberRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	group, err := h.GroupService.AddMember(c.Param("id"), middleware.CurrentUser(c), request.UserID, request.Role)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, group)
}

// RemoveMember handles DELETE /groups/:id/members/:userId
func (h *Handlers) RemoveMember(c *gin.Context) {
	group, err := h.GroupService.RemoveMember(c.Param("id"), middleware.CurrentUser(c), c.Param("userId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, group)
}
