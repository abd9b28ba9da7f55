package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rastechno/internal/service"
)

type clientRequest struct {
	Name         string `json:"name" binding:"required"`
	LogoURL      string `json:"logo_url"`
	WebsiteURL   string `json:"website_url"`
	Description  string `json:"description"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder *int   `json:"display_order"`
}

func (r clientRequest) toInput() service.ClientInput {
	return service.ClientInput{
		Name:         r.Name,
		LogoURL:      r.LogoURL,
		WebsiteURL:   r.WebsiteURL,
		Description:  r.Description,
		IsActive:     r.IsActive,
		DisplayOrder: r.DisplayOrder,
	}
}

// ListClients 获取全部合作客户列表，后台管理视角
func (a *API) ListClients(c *gin.Context) {
	items, err := a.clients.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取客户列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": items})
}

// CreateClient 创建新合作客户
func (a *API) CreateClient(c *gin.Context) {
	var req clientRequest
	if !bindJSON(c, &req, "客户名称不能为空") {
		return
	}

	item, err := a.clients.Create(req.toInput())
	if err != nil {
		a.handleClientError(c, err, "创建客户失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "客户创建成功", "client": item})
}

// UpdateClient 更新合作客户
func (a *API) UpdateClient(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的客户ID")
		return
	}

	var req clientRequest
	if !bindJSON(c, &req, "客户名称不能为空") {
		return
	}

	item, err := a.clients.Update(id, req.toInput())
	if err != nil {
		a.handleClientError(c, err, "更新客户失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "客户更新成功", "client": item})
}

// DeleteClient 删除合作客户
func (a *API) DeleteClient(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的客户ID")
		return
	}

	if err := a.clients.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "删除客户失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "客户删除成功"})
}

// ToggleClientActive 切换合作客户的启用状态
func (a *API) ToggleClientActive(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的客户ID")
		return
	}

	var req activeToggleRequest
	if !bindJSON(c, &req, "启用状态不能为空") {
		return
	}

	item, err := a.clients.SetActive(id, *req.IsActive)
	if err != nil {
		a.handleClientError(c, err, "切换客户状态失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "客户状态已更新", "client": item})
}

// ReorderClients 按提交顺序重排合作客户
func (a *API) ReorderClients(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "排序列表不能为空") {
		return
	}

	if err := a.clients.Reorder(req.IDs); err != nil {
		respondError(c, http.StatusInternalServerError, "客户排序失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "客户排序成功"})
}

func (a *API) handleClientError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrClientNotFound):
		respondError(c, http.StatusNotFound, "客户不存在")
	case errors.Is(err, service.ErrClientInvalidInput):
		respondError(c, http.StatusBadRequest, "客户数据不完整")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
