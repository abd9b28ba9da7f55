package handler

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rastechno/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown 将 Markdown 渲染为净化后的 HTML
func renderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return ""
	}
	return sanitizer.Sanitize(buf.String())
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Company string `json:"company"`
	Service string `json:"service"`
	Message string `json:"message" binding:"required"`
}

type applicationRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone"`
	LinkedinURL     string `json:"linkedin_url"`
	ResumeURL       string `json:"resume_url"`
	CoverLetter     string `json:"cover_letter"`
	CurrentCompany  string `json:"current_company"`
	ExperienceYears *int   `json:"experience_years"`
}

// GetHome 返回首页聚合数据。隐藏的区块直接从响应中省略，
// 前端无需重复判断显隐。
func (a *API) GetHome(c *gin.Context) {
	visibility, err := a.settings.SectionVisibility()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取首页数据失败")
		return
	}

	sections := gin.H{}

	if visibility.IsVisible("portfolio") {
		if items, err := a.projects.ListPublished(); err == nil {
			sections["portfolio"] = items
		}
	}
	if visibility.IsVisible("services") {
		if items, err := a.services.ListActive(); err == nil {
			sections["services"] = items
		}
	}
	if visibility.IsVisible("clients") {
		if items, err := a.clients.ListActive(); err == nil {
			sections["clients"] = items
		}
		if items, err := a.testimonials.ListPublished(); err == nil {
			sections["testimonials"] = items
		}
	}
	if visibility.IsVisible("journey") {
		if items, err := a.journey.ListActive(); err == nil {
			sections["journey"] = items
		}
	}
	if visibility.IsVisible("awards") {
		if items, err := a.awards.ListActive(); err == nil {
			sections["awards"] = items
		}
	}
	if visibility.IsVisible("blog") {
		if items, err := a.blogs.ListPublished(); err == nil {
			sections["blog"] = items
		}
	}

	// 文案区块与数据区块分开下发，footer 不受显隐控制
	content := gin.H{}
	for _, key := range service.ContentSectionKeys {
		if key != "footer" && !visibility.IsVisible(key) {
			continue
		}
		if fields, err := a.settings.SectionContent(key); err == nil && len(fields) > 0 {
			content[key] = fields
		}
	}

	theme, _ := a.settings.Theme()
	links, _ := a.settings.SocialLinks()
	images, _ := a.settings.Images()

	c.JSON(http.StatusOK, gin.H{
		"visibility":   visibility,
		"sections":     sections,
		"content":      content,
		"theme":        theme,
		"social_links": links,
		"images":       images,
	})
}

// PublicProjects 返回已发布的项目列表
func (a *API) PublicProjects(c *gin.Context) {
	if a.sectionHidden(c, "portfolio") {
		return
	}
	items, err := a.projects.ListPublished()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取项目列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": items})
}

// PublicServices 返回启用中的服务列表
func (a *API) PublicServices(c *gin.Context) {
	if a.sectionHidden(c, "services") {
		return
	}
	items, err := a.services.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取服务列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": items})
}

// PublicTestimonials 返回已发布的客户评价
func (a *API) PublicTestimonials(c *gin.Context) {
	items, err := a.testimonials.ListPublished()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取评价列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": items})
}

// PublicClients 返回启用中的合作客户
func (a *API) PublicClients(c *gin.Context) {
	if a.sectionHidden(c, "clients") {
		return
	}
	items, err := a.clients.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取客户列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": items})
}

// PublicJourney 返回启用中的发展历程
func (a *API) PublicJourney(c *gin.Context) {
	if a.sectionHidden(c, "journey") {
		return
	}
	items, err := a.journey.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取发展历程失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"milestones": items})
}

// PublicAwards 返回启用中的奖项
func (a *API) PublicAwards(c *gin.Context) {
	if a.sectionHidden(c, "awards") {
		return
	}
	items, err := a.awards.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取奖项列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"awards": items})
}

// PublicBlogs 返回已发布的文章列表，正文不随列表下发
func (a *API) PublicBlogs(c *gin.Context) {
	if a.sectionHidden(c, "blog") {
		return
	}
	items, err := a.blogs.ListPublished()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取文章列表失败")
		return
	}

	response := make([]gin.H, 0, len(items))
	for _, item := range items {
		response = append(response, gin.H{
			"id":           item.ID,
			"title":        item.Title,
			"slug":         item.Slug,
			"excerpt":      item.Excerpt,
			"cover_image":  item.CoverImage,
			"author":       item.Author,
			"category":     item.Category,
			"tags":         item.Tags,
			"published_at": item.PublishedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"blogs": response})
}

// PublicBlogBySlug 返回单篇已发布文章，正文渲染为 HTML
func (a *API) PublicBlogBySlug(c *gin.Context) {
	item, err := a.blogs.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			respondError(c, http.StatusNotFound, "文章不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "获取文章失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"blog": gin.H{
			"id":           item.ID,
			"title":        item.Title,
			"slug":         item.Slug,
			"excerpt":      item.Excerpt,
			"content":      item.Content,
			"content_html": renderMarkdown(item.Content),
			"cover_image":  item.CoverImage,
			"author":       item.Author,
			"category":     item.Category,
			"tags":         item.Tags,
			"published_at": item.PublishedAt,
		},
	})
}

// PublicCareers 返回上架且未过期的职位
func (a *API) PublicCareers(c *gin.Context) {
	items, err := a.careers.ListActiveJobPosts()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取职位列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"job_posts": items})
}

// PublicPolicy 返回政策文档（隐私政策、服务条款、Cookie 政策）
func (a *API) PublicPolicy(c *gin.Context) {
	policy, err := a.settings.Policy(c.Param("key"))
	if err != nil {
		a.handleSettingError(c, err, "获取政策文档失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"policy": gin.H{
			"title":        policy.Title,
			"content":      policy.Content,
			"content_html": renderMarkdown(policy.Content),
		},
	})
}

// SubmitContact 记录前台联系表单提交
func (a *API) SubmitContact(c *gin.Context) {
	var req contactRequest
	if !bindJSON(c, &req, "姓名、邮箱和留言内容不能为空") {
		return
	}

	item, err := a.contacts.Create(service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Service: req.Service,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrMessageInvalidInput) {
			respondError(c, http.StatusBadRequest, "留言数据不完整")
			return
		}
		respondError(c, http.StatusInternalServerError, "提交留言失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "留言提交成功", "contact_message": item})
}

// SubmitApplication 记录前台应聘提交，支持附带简历文件
func (a *API) SubmitApplication(c *gin.Context) {
	jobPostID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的职位ID")
		return
	}

	input := service.ApplicationInput{JobPostID: jobPostID}

	if file, err := c.FormFile("resume"); err == nil {
		url, saveErr := a.saveResume(c, file)
		if saveErr != nil {
			respondError(c, http.StatusBadRequest, "简历上传失败")
			return
		}
		input.Name = c.PostForm("name")
		input.Email = c.PostForm("email")
		input.Phone = c.PostForm("phone")
		input.LinkedinURL = c.PostForm("linkedin_url")
		input.CoverLetter = c.PostForm("cover_letter")
		input.CurrentCompany = c.PostForm("current_company")
		input.ResumeURL = url
		if years := c.PostForm("experience_years"); years != "" {
			if parsed, err := strconv.Atoi(years); err == nil {
				input.ExperienceYears = &parsed
			}
		}
	} else {
		var req applicationRequest
		if !bindJSON(c, &req, "姓名和邮箱不能为空") {
			return
		}
		input.Name = req.Name
		input.Email = req.Email
		input.Phone = req.Phone
		input.LinkedinURL = req.LinkedinURL
		input.ResumeURL = req.ResumeURL
		input.CoverLetter = req.CoverLetter
		input.CurrentCompany = req.CurrentCompany
		input.ExperienceYears = req.ExperienceYears
	}

	item, err := a.careers.CreateApplication(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJobPostNotFound):
			respondError(c, http.StatusNotFound, "职位不存在")
		case errors.Is(err, service.ErrApplicationInvalidInput):
			respondError(c, http.StatusBadRequest, "应聘数据不完整")
		default:
			respondError(c, http.StatusInternalServerError, "提交应聘失败")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "应聘提交成功", "application": item})
}

// sectionHidden 在区块被后台隐藏时返回 404 并终止请求
func (a *API) sectionHidden(c *gin.Context, key string) bool {
	visibility, err := a.settings.SectionVisibility()
	if err != nil {
		return false
	}
	if visibility.IsVisible(key) {
		return false
	}
	respondError(c, http.StatusNotFound, "该内容暂未开放")
	return true
}
