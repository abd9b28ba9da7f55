package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rastechno/internal/service"
)

type serviceItemRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Icon         string   `json:"icon"`
	Color        string   `json:"color"`
	Features     []string `json:"features"`
	IsActive     *bool    `json:"is_active"`
	DisplayOrder *int     `json:"display_order"`
}

func (r serviceItemRequest) toInput() service.ServiceItemInput {
	return service.ServiceItemInput{
		Title:        r.Title,
		Description:  r.Description,
		Icon:         r.Icon,
		Color:        r.Color,
		Features:     r.Features,
		IsActive:     r.IsActive,
		DisplayOrder: r.DisplayOrder,
	}
}

// ListServiceItems 获取全部服务项列表，后台管理视角
func (a *API) ListServiceItems(c *gin.Context) {
	items, err := a.services.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取服务列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": items})
}

// CreateServiceItem 创建新服务项
func (a *API) CreateServiceItem(c *gin.Context) {
	var req serviceItemRequest
	if !bindJSON(c, &req, "服务标题和描述不能为空") {
		return
	}

	item, err := a.services.Create(req.toInput())
	if err != nil {
		a.handleServiceItemError(c, err, "创建服务失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "服务创建成功", "service": item})
}

// UpdateServiceItem 更新服务项
func (a *API) UpdateServiceItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的服务ID")
		return
	}

	var req serviceItemRequest
	if !bindJSON(c, &req, "服务标题和描述不能为空") {
		return
	}

	item, err := a.services.Update(id, req.toInput())
	if err != nil {
		a.handleServiceItemError(c, err, "更新服务失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "服务更新成功", "service": item})
}

// DeleteServiceItem 删除服务项
func (a *API) DeleteServiceItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的服务ID")
		return
	}

	if err := a.services.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "删除服务失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "服务删除成功"})
}

// ToggleServiceItemActive 切换服务项的启用状态
func (a *API) ToggleServiceItemActive(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的服务ID")
		return
	}

	var req activeToggleRequest
	if !bindJSON(c, &req, "启用状态不能为空") {
		return
	}

	item, err := a.services.SetActive(id, *req.IsActive)
	if err != nil {
		a.handleServiceItemError(c, err, "切换服务状态失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "服务状态已更新", "service": item})
}

// ReorderServiceItems 按提交顺序重排服务项
func (a *API) ReorderServiceItems(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "排序列表不能为空") {
		return
	}

	if err := a.services.Reorder(req.IDs); err != nil {
		respondError(c, http.StatusInternalServerError, "服务排序失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "服务排序成功"})
}

func (a *API) handleServiceItemError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrServiceItemNotFound):
		respondError(c, http.StatusNotFound, "服务不存在")
	case errors.Is(err, service.ErrServiceItemInvalidInput):
		respondError(c, http.StatusBadRequest, "服务数据不完整")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
