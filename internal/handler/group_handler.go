package handler

import (
	"net/http"
	"strconv"

	"yatube-api/internal/service"
	"yatube-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	groupService *service.GroupService
}

func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// List returns all communities
func (h *GroupHandler) List(c *gin.Context) {
	groups, err := h.groupService.List()
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}
	utils.SuccessResponse(c, groups)
}

// Get returns a single community
func (h *GroupHandler) Get(c *gin.Context) {
	raw := c.Param("group_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid group ID")
		return
	}

	group, err := h.groupService.Get(uint(id))
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}
	utils.SuccessResponse(c, group)
}
