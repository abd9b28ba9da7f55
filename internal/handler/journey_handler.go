package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rastechno/internal/service"
)

type milestoneRequest struct {
	Year         string `json:"year" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder *int   `json:"display_order"`
}

func (r milestoneRequest) toInput() service.MilestoneInput {
	return service.MilestoneInput{
		Year:         r.Year,
		Title:        r.Title,
		Description:  r.Description,
		Icon:         r.Icon,
		IsActive:     r.IsActive,
		DisplayOrder: r.DisplayOrder,
	}
}

// ListMilestones 获取全部发展历程列表，后台管理视角
func (a *API) ListMilestones(c *gin.Context) {
	items, err := a.journey.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取发展历程失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"milestones": items})
}

// CreateMilestone 创建新里程碑
func (a *API) CreateMilestone(c *gin.Context) {
	var req milestoneRequest
	if !bindJSON(c, &req, "年份和标题不能为空") {
		return
	}

	item, err := a.journey.Create(req.toInput())
	if err != nil {
		a.handleMilestoneError(c, err, "创建里程碑失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "里程碑创建成功", "milestone": item})
}

// UpdateMilestone 更新里程碑
func (a *API) UpdateMilestone(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的里程碑ID")
		return
	}

	var req milestoneRequest
	if !bindJSON(c, &req, "年份和标题不能为空") {
		return
	}

	item, err := a.journey.Update(id, req.toInput())
	if err != nil {
		a.handleMilestoneError(c, err, "更新里程碑失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "里程碑更新成功", "milestone": item})
}

// DeleteMilestone 删除里程碑
func (a *API) DeleteMilestone(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的里程碑ID")
		return
	}

	if err := a.journey.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "删除里程碑失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "里程碑删除成功"})
}

// ToggleMilestoneActive 切换里程碑的启用状态
func (a *API) ToggleMilestoneActive(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的里程碑ID")
		return
	}

	var req activeToggleRequest
	if !bindJSON(c, &req, "启用状态不能为空") {
		return
	}

	item, err := a.journey.SetActive(id, *req.IsActive)
	if err != nil {
		a.handleMilestoneError(c, err, "切换里程碑状态失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "里程碑状态已更新", "milestone": item})
}

// ReorderMilestones 按提交顺序重排里程碑
func (a *API) ReorderMilestones(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "排序列表不能为空") {
		return
	}

	if err := a.journey.Reorder(req.IDs); err != nil {
		respondError(c, http.StatusInternalServerError, "里程碑排序失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "里程碑排序成功"})
}

func (a *API) handleMilestoneError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrMilestoneNotFound):
		respondError(c, http.StatusNotFound, "里程碑不存在")
	case errors.Is(err, service.ErrMilestoneInvalidInput):
		respondError(c, http.StatusBadRequest, "里程碑数据不完整")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
