package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rastechno/internal/service"
)

type blogRequest struct {
	Title       string   `json:"title" binding:"required"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content" binding:"required"`
	CoverImage  string   `json:"cover_image"`
	Author      string   `json:"author"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	IsPublished *bool    `json:"is_published"`
}

func (r blogRequest) toInput() service.BlogInput {
	return service.BlogInput{
		Title:       r.Title,
		Slug:        r.Slug,
		Excerpt:     r.Excerpt,
		Content:     r.Content,
		CoverImage:  r.CoverImage,
		Author:      r.Author,
		Category:    r.Category,
		Tags:        r.Tags,
		IsPublished: r.IsPublished,
	}
}

// ListBlogs 获取全部文章列表，后台管理视角
func (a *API) ListBlogs(c *gin.Context) {
	items, err := a.blogs.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取文章列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": items})
}

// GetBlog 获取单篇文章，后台编辑视角
func (a *API) GetBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的文章ID")
		return
	}

	item, err := a.blogs.Get(id)
	if err != nil {
		a.handleBlogError(c, err, "获取文章失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"blog": item})
}

// CreateBlog 创建新文章
func (a *API) CreateBlog(c *gin.Context) {
	var req blogRequest
	if !bindJSON(c, &req, "文章标题和正文不能为空") {
		return
	}

	item, err := a.blogs.Create(req.toInput())
	if err != nil {
		a.handleBlogError(c, err, "创建文章失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "文章创建成功", "blog": item})
}

// UpdateBlog 更新文章
func (a *API) UpdateBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的文章ID")
		return
	}

	var req blogRequest
	if !bindJSON(c, &req, "文章标题和正文不能为空") {
		return
	}

	item, err := a.blogs.Update(id, req.toInput())
	if err != nil {
		a.handleBlogError(c, err, "更新文章失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "文章更新成功", "blog": item})
}

// DeleteBlog 删除文章
func (a *API) DeleteBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的文章ID")
		return
	}

	if err := a.blogs.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "删除文章失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "文章删除成功"})
}

// ToggleBlogPublished 切换文章的发布状态
func (a *API) ToggleBlogPublished(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的文章ID")
		return
	}

	var req publishToggleRequest
	if !bindJSON(c, &req, "发布状态不能为空") {
		return
	}

	item, err := a.blogs.SetPublished(id, *req.IsPublished)
	if err != nil {
		a.handleBlogError(c, err, "切换文章状态失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "文章状态已更新", "blog": item})
}

func (a *API) handleBlogError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrBlogNotFound):
		respondError(c, http.StatusNotFound, "文章不存在")
	case errors.Is(err, service.ErrBlogSlugTaken):
		respondError(c, http.StatusBadRequest, "文章链接已被占用")
	case errors.Is(err, service.ErrBlogInvalidInput):
		respondError(c, http.StatusBadRequest, "文章数据不完整")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
