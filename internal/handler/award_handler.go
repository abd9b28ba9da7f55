package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rastechno/internal/service"
)

type awardRequest struct {
	Title        string     `json:"title" binding:"required"`
	Issuer       string     `json:"issuer"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"image_url"`
	DateReceived *time.Time `json:"date_received"`
	IsActive     *bool      `json:"is_active"`
	DisplayOrder *int       `json:"display_order"`
}

func (r awardRequest) toInput() service.AwardInput {
	return service.AwardInput{
		Title:        r.Title,
		Issuer:       r.Issuer,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		DateReceived: r.DateReceived,
		IsActive:     r.IsActive,
		DisplayOrder: r.DisplayOrder,
	}
}

// ListAwards 获取全部奖项列表，后台管理视角
func (a *API) ListAwards(c *gin.Context) {
	items, err := a.awards.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取奖项列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"awards": items})
}

// CreateAward 创建新奖项
func (a *API) CreateAward(c *gin.Context) {
	var req awardRequest
	if !bindJSON(c, &req, "奖项名称不能为空") {
		return
	}

	item, err := a.awards.Create(req.toInput())
	if err != nil {
		a.handleAwardError(c, err, "创建奖项失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "奖项创建成功", "award": item})
}

// UpdateAward 更新奖项
func (a *API) UpdateAward(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的奖项ID")
		return
	}

	var req awardRequest
	if !bindJSON(c, &req, "奖项名称不能为空") {
		return
	}

	item, err := a.awards.Update(id, req.toInput())
	if err != nil {
		a.handleAwardError(c, err, "更新奖项失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "奖项更新成功", "award": item})
}

// DeleteAward 删除奖项
func (a *API) DeleteAward(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的奖项ID")
		return
	}

	if err := a.awards.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "删除奖项失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "奖项删除成功"})
}

// ToggleAwardActive 切换奖项的展示状态
func (a *API) ToggleAwardActive(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的奖项ID")
		return
	}

	var req activeToggleRequest
	if !bindJSON(c, &req, "展示状态不能为空") {
		return
	}

	item, err := a.awards.SetActive(id, *req.IsActive)
	if err != nil {
		a.handleAwardError(c, err, "切换奖项状态失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "奖项状态已更新", "award": item})
}

// ReorderAwards 按提交顺序重排奖项
func (a *API) ReorderAwards(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "排序列表不能为空") {
		return
	}

	if err := a.awards.Reorder(req.IDs); err != nil {
		respondError(c, http.StatusInternalServerError, "奖项排序失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "奖项排序成功"})
}

func (a *API) handleAwardError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrAwardNotFound):
		respondError(c, http.StatusNotFound, "奖项不存在")
	case errors.Is(err, service.ErrAwardInvalidInput):
		respondError(c, http.StatusBadRequest, "奖项数据不完整")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
