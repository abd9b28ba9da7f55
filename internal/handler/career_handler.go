package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rastechno/internal/service"
)

type jobPostRequest struct {
	Title          string     `json:"title" binding:"required"`
	Department     string     `json:"department"`
	Location       string     `json:"location"`
	EmploymentType string     `json:"employment_type"`
	Description    string     `json:"description" binding:"required"`
	Requirements   []string   `json:"requirements"`
	Benefits       []string   `json:"benefits"`
	SalaryRange    string     `json:"salary_range"`
	IsActive       *bool      `json:"is_active"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

func (r jobPostRequest) toInput() service.JobPostInput {
	return service.JobPostInput{
		Title:          r.Title,
		Department:     r.Department,
		Location:       r.Location,
		EmploymentType: r.EmploymentType,
		Description:    r.Description,
		Requirements:   r.Requirements,
		Benefits:       r.Benefits,
		SalaryRange:    r.SalaryRange,
		IsActive:       r.IsActive,
		ExpiresAt:      r.ExpiresAt,
	}
}

type applicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListJobPosts 获取全部招聘信息，后台管理视角
func (a *API) ListJobPosts(c *gin.Context) {
	items, err := a.careers.ListJobPosts()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取招聘列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"job_posts": items})
}

// CreateJobPost 发布新职位
func (a *API) CreateJobPost(c *gin.Context) {
	var req jobPostRequest
	if !bindJSON(c, &req, "职位名称和描述不能为空") {
		return
	}

	item, err := a.careers.CreateJobPost(req.toInput())
	if err != nil {
		a.handleJobPostError(c, err, "发布职位失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "职位发布成功", "job_post": item})
}

// UpdateJobPost 更新职位
func (a *API) UpdateJobPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的职位ID")
		return
	}

	var req jobPostRequest
	if !bindJSON(c, &req, "职位名称和描述不能为空") {
		return
	}

	item, err := a.careers.UpdateJobPost(id, req.toInput())
	if err != nil {
		a.handleJobPostError(c, err, "更新职位失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "职位更新成功", "job_post": item})
}

// DeleteJobPost 删除职位
func (a *API) DeleteJobPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的职位ID")
		return
	}

	if err := a.careers.DeleteJobPost(id); err != nil {
		respondError(c, http.StatusInternalServerError, "删除职位失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "职位删除成功"})
}

// ToggleJobPostActive 切换职位的上架状态
func (a *API) ToggleJobPostActive(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的职位ID")
		return
	}

	var req activeToggleRequest
	if !bindJSON(c, &req, "上架状态不能为空") {
		return
	}

	item, err := a.careers.SetJobPostActive(id, *req.IsActive)
	if err != nil {
		a.handleJobPostError(c, err, "切换职位状态失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "职位状态已更新", "job_post": item})
}

// ListApplications 获取全部应聘记录，后台管理视角
func (a *API) ListApplications(c *gin.Context) {
	items, err := a.careers.ListApplications()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取应聘列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": items})
}

// UpdateApplicationStatus 更新应聘记录的处理状态
func (a *API) UpdateApplicationStatus(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的应聘ID")
		return
	}

	var req applicationStatusRequest
	if !bindJSON(c, &req, "处理状态不能为空") {
		return
	}

	item, err := a.careers.UpdateApplicationStatus(id, req.Status)
	if err != nil {
		a.handleApplicationError(c, err, "更新应聘状态失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "应聘状态已更新", "application": item})
}

// ToggleApplicationRead 标记应聘记录的已读状态
func (a *API) ToggleApplicationRead(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的应聘ID")
		return
	}

	var req readToggleRequest
	if !bindJSON(c, &req, "已读状态不能为空") {
		return
	}

	item, err := a.careers.SetApplicationRead(id, *req.IsRead)
	if err != nil {
		a.handleApplicationError(c, err, "标记应聘记录失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "应聘记录已更新", "application": item})
}

// DeleteApplication 删除应聘记录
func (a *API) DeleteApplication(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的应聘ID")
		return
	}

	if err := a.careers.DeleteApplication(id); err != nil {
		respondError(c, http.StatusInternalServerError, "删除应聘记录失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "应聘记录删除成功"})
}

func (a *API) handleJobPostError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrJobPostNotFound):
		respondError(c, http.StatusNotFound, "职位不存在")
	case errors.Is(err, service.ErrJobPostInvalidInput):
		respondError(c, http.StatusBadRequest, "职位数据不完整")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}

func (a *API) handleApplicationError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrApplicationNotFound):
		respondError(c, http.StatusNotFound, "应聘记录不存在")
	case errors.Is(err, service.ErrApplicationInvalidInput):
		respondError(c, http.StatusBadRequest, "应聘数据不完整")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
