package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rastechno/internal/service"
)

type testimonialRequest struct {
	ClientName     string `json:"client_name" binding:"required"`
	ClientPosition string `json:"client_position"`
	ClientCompany  string `json:"client_company"`
	ClientImage    string `json:"client_image"`
	Content        string `json:"content" binding:"required"`
	Rating         *int   `json:"rating"`
	IsPublished    *bool  `json:"is_published"`
	DisplayOrder   *int   `json:"display_order"`
}

func (r testimonialRequest) toInput() service.TestimonialInput {
	return service.TestimonialInput{
		ClientName:     r.ClientName,
		ClientPosition: r.ClientPosition,
		ClientCompany:  r.ClientCompany,
		ClientImage:    r.ClientImage,
		Content:        r.Content,
		Rating:         r.Rating,
		IsPublished:    r.IsPublished,
		DisplayOrder:   r.DisplayOrder,
	}
}

// ListTestimonials 获取全部客户评价列表，后台管理视角
func (a *API) ListTestimonials(c *gin.Context) {
	items, err := a.testimonials.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取评价列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": items})
}

// CreateTestimonial 创建新客户评价
func (a *API) CreateTestimonial(c *gin.Context) {
	var req testimonialRequest
	if !bindJSON(c, &req, "客户姓名和评价内容不能为空") {
		return
	}

	item, err := a.testimonials.Create(req.toInput())
	if err != nil {
		a.handleTestimonialError(c, err, "创建评价失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "评价创建成功", "testimonial": item})
}

// UpdateTestimonial 更新客户评价
func (a *API) UpdateTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的评价ID")
		return
	}

	var req testimonialRequest
	if !bindJSON(c, &req, "客户姓名和评价内容不能为空") {
		return
	}

	item, err := a.testimonials.Update(id, req.toInput())
	if err != nil {
		a.handleTestimonialError(c, err, "更新评价失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "评价更新成功", "testimonial": item})
}

// DeleteTestimonial 删除客户评价
func (a *API) DeleteTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的评价ID")
		return
	}

	if err := a.testimonials.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "删除评价失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "评价删除成功"})
}

// ToggleTestimonialPublished 切换客户评价的发布状态
func (a *API) ToggleTestimonialPublished(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的评价ID")
		return
	}

	var req publishToggleRequest
	if !bindJSON(c, &req, "发布状态不能为空") {
		return
	}

	item, err := a.testimonials.SetPublished(id, *req.IsPublished)
	if err != nil {
		a.handleTestimonialError(c, err, "切换评价状态失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "评价状态已更新", "testimonial": item})
}

// ReorderTestimonials 按提交顺序重排客户评价
func (a *API) ReorderTestimonials(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "排序列表不能为空") {
		return
	}

	if err := a.testimonials.Reorder(req.IDs); err != nil {
		respondError(c, http.StatusInternalServerError, "评价排序失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "评价排序成功"})
}

func (a *API) handleTestimonialError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrTestimonialNotFound):
		respondError(c, http.StatusNotFound, "评价不存在")
	case errors.Is(err, service.ErrTestimonialInvalidInput):
		respondError(c, http.StatusBadRequest, "评价数据不完整")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
