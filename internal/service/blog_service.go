package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rastechno/internal/cache"
	"github.com/rastechno/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	// ErrBlogNotFound 在指定的文章不存在时返回
	ErrBlogNotFound = errors.New("blog not found")
	// ErrBlogInvalidInput 在输入数据不完整时返回
	ErrBlogInvalidInput = errors.New("invalid blog input")
	// ErrBlogSlugTaken 在 slug 已被其他文章占用时返回
	ErrBlogSlugTaken = errors.New("blog slug already taken")
)

const blogResource = "blogs"

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)

// BlogService 负责维护博客文章
// 文章以 Markdown 存储，slug 作为公开访问路径

type BlogService struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewBlogService 构造 BlogService
func NewBlogService(gdb *gorm.DB, c *cache.Cache) *BlogService {
	return &BlogService{db: gdb, cache: c}
}

// BlogInput 描述创建或更新文章时可设置的字段
// Slug 为空时根据标题自动生成

type BlogInput struct {
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	CoverImage  string
	Author      string
	Category    string
	Tags        []string
	IsPublished *bool
}

// ListAll 返回全部文章，后台视角按创建时间倒序。
func (s *BlogService) ListAll() ([]db.Blog, error) {
	ctx := context.Background()

	var items []db.Blog
	if s.cache.GetJSON(ctx, blogResource, "all", &items) {
		return items, nil
	}

	if err := s.db.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}

	s.cache.SetJSON(ctx, blogResource, "all", items)
	return items, nil
}

// ListPublished 返回已发布的文章，按发布时间倒序，供前台 blog 区块使用。
func (s *BlogService) ListPublished() ([]db.Blog, error) {
	ctx := context.Background()

	var items []db.Blog
	if s.cache.GetJSON(ctx, blogResource, "published", &items) {
		return items, nil
	}

	if err := s.db.Where("is_published = ?", true).
		Order("published_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list published blogs: %w", err)
	}

	s.cache.SetJSON(ctx, blogResource, "published", items)
	return items, nil
}

// Get 根据主键获取文章
func (s *BlogService) Get(id uint) (*db.Blog, error) {
	var item db.Blog
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return &item, nil
}

// GetPublishedBySlug 根据 slug 获取已发布的文章，供前台详情页使用。
func (s *BlogService) GetPublishedBySlug(slug string) (*db.Blog, error) {
	var item db.Blog
	err := s.db.Where("slug = ? AND is_published = ?", strings.TrimSpace(slug), true).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("get blog by slug: %w", err)
	}
	return &item, nil
}

// Create 新建文章，发布状态默认为草稿
func (s *BlogService) Create(input BlogInput) (*db.Blog, error) {
	if err := validateBlogInput(input); err != nil {
		return nil, err
	}

	slug := resolveSlug(input.Slug, input.Title)
	if err := s.ensureSlugAvailable(slug, 0); err != nil {
		return nil, err
	}

	author := strings.TrimSpace(input.Author)
	if author == "" {
		author = "RaS Techno"
	}

	item := db.Blog{
		Title:      strings.TrimSpace(input.Title),
		Slug:       slug,
		Excerpt:    strings.TrimSpace(input.Excerpt),
		Content:    input.Content,
		CoverImage: strings.TrimSpace(input.CoverImage),
		Author:     author,
		Category:   strings.TrimSpace(input.Category),
		Tags:       datatypes.JSONSlice[string](normalizeTags(input.Tags)),
	}

	if input.IsPublished != nil && *input.IsPublished {
		item.IsPublished = true
		now := time.Now()
		item.PublishedAt = &now
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}

	s.cache.Invalidate(context.Background(), blogResource)
	return &item, nil
}

// Update 更新指定文章，首次发布时写入发布时间
func (s *BlogService) Update(id uint, input BlogInput) (*db.Blog, error) {
	if err := validateBlogInput(input); err != nil {
		return nil, err
	}

	var item db.Blog
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}

	slug := resolveSlug(input.Slug, input.Title)
	if err := s.ensureSlugAvailable(slug, item.ID); err != nil {
		return nil, err
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Slug = slug
	item.Excerpt = strings.TrimSpace(input.Excerpt)
	item.Content = input.Content
	item.CoverImage = strings.TrimSpace(input.CoverImage)
	item.Category = strings.TrimSpace(input.Category)
	item.Tags = datatypes.JSONSlice[string](normalizeTags(input.Tags))

	if author := strings.TrimSpace(input.Author); author != "" {
		item.Author = author
	}

	if input.IsPublished != nil {
		item.IsPublished = *input.IsPublished
		if item.IsPublished && item.PublishedAt == nil {
			now := time.Now()
			item.PublishedAt = &now
		}
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}

	s.cache.Invalidate(context.Background(), blogResource)
	return &item, nil
}

// Delete 删除指定文章，目标不存在时同样视为成功
func (s *BlogService) Delete(id uint) error {
	if err := s.db.Delete(&db.Blog{}, id).Error; err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	s.cache.Invalidate(context.Background(), blogResource)
	return nil
}

// SetPublished 切换发布状态，首次发布时写入发布时间
func (s *BlogService) SetPublished(id uint, published bool) (*db.Blog, error) {
	var item db.Blog
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}

	item.IsPublished = published
	if published && item.PublishedAt == nil {
		now := time.Now()
		item.PublishedAt = &now
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("toggle blog: %w", err)
	}

	s.cache.Invalidate(context.Background(), blogResource)
	return &item, nil
}

func (s *BlogService) ensureSlugAvailable(slug string, selfID uint) error {
	var count int64
	query := s.db.Model(&db.Blog{}).Where("slug = ?", slug)
	if selfID != 0 {
		query = query.Where("id <> ?", selfID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("check blog slug: %w", err)
	}
	if count > 0 {
		return ErrBlogSlugTaken
	}
	return nil
}

// resolveSlug 优先使用显式 slug，否则根据标题生成。
func resolveSlug(slug, title string) string {
	source := strings.TrimSpace(slug)
	if source == "" {
		source = strings.TrimSpace(title)
	}
	source = strings.ToLower(source)
	source = strings.ReplaceAll(source, " ", "-")
	source = slugInvalidChars.ReplaceAllString(source, "")
	return strings.Trim(source, "-")
}

func validateBlogInput(input BlogInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrBlogInvalidInput)
	}
	if strings.TrimSpace(input.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrBlogInvalidInput)
	}
	if resolveSlug(input.Slug, input.Title) == "" {
		return fmt.Errorf("%w: slug is required", ErrBlogInvalidInput)
	}
	return nil
}
