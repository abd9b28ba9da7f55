package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rastechno/internal/service"
)

type projectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	Tags         []string `json:"tags"`
	IsPublished  *bool    `json:"is_published"`
	DisplayOrder *int     `json:"display_order"`
}

func (r projectRequest) toInput() service.ProjectInput {
	return service.ProjectInput{
		Title:        r.Title,
		Category:     r.Category,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Tags:         r.Tags,
		IsPublished:  r.IsPublished,
		DisplayOrder: r.DisplayOrder,
	}
}

// ListProjects 获取全部项目列表，后台管理视角
func (a *API) ListProjects(c *gin.Context) {
	items, err := a.projects.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取项目列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": items})
}

// GetProject 获取单个项目
func (a *API) GetProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	item, err := a.projects.Get(id)
	if err != nil {
		a.handleProjectError(c, err, "获取项目失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": item})
}

// CreateProject 创建新项目
func (a *API) CreateProject(c *gin.Context) {
	var req projectRequest
	if !bindJSON(c, &req, "项目标题和分类不能为空") {
		return
	}

	item, err := a.projects.Create(req.toInput())
	if err != nil {
		a.handleProjectError(c, err, "创建项目失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "项目创建成功", "project": item})
}

// UpdateProject 更新项目
func (a *API) UpdateProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var req projectRequest
	if !bindJSON(c, &req, "项目标题和分类不能为空") {
		return
	}

	item, err := a.projects.Update(id, req.toInput())
	if err != nil {
		a.handleProjectError(c, err, "更新项目失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "项目更新成功", "project": item})
}

// DeleteProject 删除项目
func (a *API) DeleteProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	if err := a.projects.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "删除项目失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "项目删除成功"})
}

// ToggleProjectPublished 切换项目的发布状态
func (a *API) ToggleProjectPublished(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var req publishToggleRequest
	if !bindJSON(c, &req, "发布状态不能为空") {
		return
	}

	item, err := a.projects.SetPublished(id, *req.IsPublished)
	if err != nil {
		a.handleProjectError(c, err, "切换项目状态失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "项目状态已更新", "project": item})
}

// ReorderProjects 按提交顺序重排项目
func (a *API) ReorderProjects(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req, "排序列表不能为空") {
		return
	}

	if err := a.projects.Reorder(req.IDs); err != nil {
		respondError(c, http.StatusInternalServerError, "项目排序失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "项目排序成功"})
}

func (a *API) handleProjectError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		respondError(c, http.StatusNotFound, "项目不存在")
	case errors.Is(err, service.ErrProjectInvalidInput):
		respondError(c, http.StatusBadRequest, "项目数据不完整")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
