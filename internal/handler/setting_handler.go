package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rastechno/internal/service"
)

type visibilityRequest struct {
	Sections map[string]bool `json:"sections" binding:"required"`
}

type sectionToggleRequest struct {
	Visible *bool `json:"visible" binding:"required"`
}

type sectionContentRequest struct {
	Content map[string]string `json:"content" binding:"required"`
}

type policyRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type imagesRequest struct {
	Images map[string]string `json:"images" binding:"required"`
}

// ListSiteSettings 获取全部站点设置，后台管理视角
func (a *API) ListSiteSettings(c *gin.Context) {
	settings, err := a.settings.All()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取站点设置失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// GetSectionVisibility 获取区块显隐映射
func (a *API) GetSectionVisibility(c *gin.Context) {
	visibility, err := a.settings.SectionVisibility()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取区块配置失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": visibility})
}

// SaveSectionVisibility 整体保存区块显隐映射
func (a *API) SaveSectionVisibility(c *gin.Context) {
	var req visibilityRequest
	if !bindJSON(c, &req, "区块配置不能为空") {
		return
	}

	if err := a.settings.SaveSectionVisibility(req.Sections); err != nil {
		a.handleSettingError(c, err, "保存区块配置失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "区块配置已保存"})
}

// ToggleSectionVisible 切换单个区块的显隐
func (a *API) ToggleSectionVisible(c *gin.Context) {
	key := c.Param("key")

	var req sectionToggleRequest
	if !bindJSON(c, &req, "显隐状态不能为空") {
		return
	}

	visibility, err := a.settings.SetSectionVisible(key, *req.Visible)
	if err != nil {
		a.handleSettingError(c, err, "切换区块显隐失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "区块显隐已更新", "sections": visibility})
}

// GetTheme 获取主题配置
func (a *API) GetTheme(c *gin.Context) {
	theme, err := a.settings.Theme()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取主题配置失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// SaveTheme 保存主题配置
func (a *API) SaveTheme(c *gin.Context) {
	var theme service.ThemeSettings
	if !bindJSON(c, &theme, "主题配置格式错误") {
		return
	}

	if err := a.settings.SaveTheme(theme); err != nil {
		a.handleSettingError(c, err, "保存主题配置失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "主题配置已保存", "theme": theme})
}

// GetSocialLinks 获取社交媒体链接
func (a *API) GetSocialLinks(c *gin.Context) {
	links, err := a.settings.SocialLinks()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取社交链接失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"social_links": links})
}

// SaveSocialLinks 保存社交媒体链接
func (a *API) SaveSocialLinks(c *gin.Context) {
	var links service.SocialLinks
	if !bindJSON(c, &links, "社交链接格式错误") {
		return
	}

	if err := a.settings.SaveSocialLinks(links); err != nil {
		a.handleSettingError(c, err, "保存社交链接失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "社交链接已保存", "social_links": links})
}

// GetSectionContent 获取区块文案
func (a *API) GetSectionContent(c *gin.Context) {
	key := c.Param("key")

	content, err := a.settings.SectionContent(key)
	if err != nil {
		a.handleSettingError(c, err, "获取区块文案失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": key, "content": content})
}

// SaveSectionContent 保存区块文案
func (a *API) SaveSectionContent(c *gin.Context) {
	key := c.Param("key")

	var req sectionContentRequest
	if !bindJSON(c, &req, "区块文案不能为空") {
		return
	}

	if err := a.settings.SaveSectionContent(key, req.Content); err != nil {
		a.handleSettingError(c, err, "保存区块文案失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "区块文案已保存"})
}

// GetPolicy 获取政策文档
func (a *API) GetPolicy(c *gin.Context) {
	key := c.Param("key")

	policy, err := a.settings.Policy(key)
	if err != nil {
		a.handleSettingError(c, err, "获取政策文档失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"policy": policy})
}

// SavePolicy 保存政策文档
func (a *API) SavePolicy(c *gin.Context) {
	key := c.Param("key")

	var req policyRequest
	if !bindJSON(c, &req, "政策标题和正文不能为空") {
		return
	}

	policy := service.PolicyContent{Title: req.Title, Content: req.Content}
	if err := a.settings.SavePolicy(key, policy); err != nil {
		a.handleSettingError(c, err, "保存政策文档失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "政策文档已保存"})
}

// GetSiteImages 获取站点图片槽位
func (a *API) GetSiteImages(c *gin.Context) {
	images, err := a.settings.Images()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取站点图片失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": images})
}

// SaveSiteImages 保存站点图片槽位
func (a *API) SaveSiteImages(c *gin.Context) {
	var req imagesRequest
	if !bindJSON(c, &req, "图片配置不能为空") {
		return
	}

	if err := a.settings.SaveImages(req.Images); err != nil {
		a.handleSettingError(c, err, "保存站点图片失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "站点图片已保存"})
}

func (a *API) handleSettingError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrUnknownSectionKey):
		respondError(c, http.StatusBadRequest, "未知的区块标识")
	case errors.Is(err, service.ErrSettingInvalid):
		respondError(c, http.StatusBadRequest, "设置数据格式错误")
	case errors.Is(err, service.ErrSettingNotFound):
		respondError(c, http.StatusNotFound, "设置不存在")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
