package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rastechno/internal/cache"
	"github.com/rastechno/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	// ErrProjectNotFound 在指定的项目不存在时返回
	ErrProjectNotFound = errors.New("project not found")
	// ErrProjectInvalidInput 在输入数据不完整时返回
	ErrProjectInvalidInput = errors.New("invalid project input")
)

const projectResource = "projects"

// ProjectService 负责维护作品集项目
// 提供排序、发布开关与增删改查能力，与 handler 解耦

type ProjectService struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewProjectService 构造 ProjectService
func NewProjectService(gdb *gorm.DB, c *cache.Cache) *ProjectService {
	return &ProjectService{db: gdb, cache: c}
}

// ProjectInput 描述创建或更新项目时可设置的字段
// IsPublished/DisplayOrder 使用指针判断是否显式传入

type ProjectInput struct {
	Title        string
	Category     string
	Description  string
	ImageURL     string
	Tags         []string
	IsPublished  *bool
	DisplayOrder *int
}

// ListAll 返回全部项目，按排序值升序、id 升序。
func (s *ProjectService) ListAll() ([]db.Project, error) {
	ctx := context.Background()

	var items []db.Project
	if s.cache.GetJSON(ctx, projectResource, "all", &items) {
		return items, nil
	}

	if err := s.db.Order(displayOrderAsc).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	s.cache.SetJSON(ctx, projectResource, "all", items)
	return items, nil
}

// ListPublished 返回已发布的项目，供前台 portfolio 区块使用。
func (s *ProjectService) ListPublished() ([]db.Project, error) {
	ctx := context.Background()

	var items []db.Project
	if s.cache.GetJSON(ctx, projectResource, "published", &items) {
		return items, nil
	}

	if err := s.db.Where("is_published = ?", true).Order(displayOrderAsc).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list published projects: %w", err)
	}

	s.cache.SetJSON(ctx, projectResource, "published", items)
	return items, nil
}

// Get 根据主键获取项目
func (s *ProjectService) Get(id uint) (*db.Project, error) {
	var item db.Project
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &item, nil
}

// Create 新建项目，未指定排序时自动追加到末尾
func (s *ProjectService) Create(input ProjectInput) (*db.Project, error) {
	if err := validateProjectInput(input); err != nil {
		return nil, err
	}

	order, err := s.resolveOrder(input.DisplayOrder)
	if err != nil {
		return nil, err
	}

	published := true
	if input.IsPublished != nil {
		published = *input.IsPublished
	}

	item := db.Project{
		Title:        strings.TrimSpace(input.Title),
		Category:     strings.TrimSpace(input.Category),
		Description:  strings.TrimSpace(input.Description),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		Tags:         datatypes.JSONSlice[string](normalizeTags(input.Tags)),
		IsPublished:  published,
		DisplayOrder: order,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.cache.Invalidate(context.Background(), projectResource)
	return &item, nil
}

// Update 更新指定项目
func (s *ProjectService) Update(id uint, input ProjectInput) (*db.Project, error) {
	if err := validateProjectInput(input); err != nil {
		return nil, err
	}

	var item db.Project
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Category = strings.TrimSpace(input.Category)
	item.Description = strings.TrimSpace(input.Description)
	item.ImageURL = strings.TrimSpace(input.ImageURL)
	item.Tags = datatypes.JSONSlice[string](normalizeTags(input.Tags))

	if input.IsPublished != nil {
		item.IsPublished = *input.IsPublished
	}
	if input.DisplayOrder != nil {
		item.DisplayOrder = *input.DisplayOrder
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.cache.Invalidate(context.Background(), projectResource)
	return &item, nil
}

// Delete 删除指定项目，目标不存在时同样视为成功
func (s *ProjectService) Delete(id uint) error {
	if err := s.db.Delete(&db.Project{}, id).Error; err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	s.cache.Invalidate(context.Background(), projectResource)
	return nil
}

// SetPublished 仅切换发布状态，不影响排序与其余字段
func (s *ProjectService) SetPublished(id uint, published bool) (*db.Project, error) {
	var item db.Project
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	if err := s.db.Model(&item).Update("is_published", published).Error; err != nil {
		return nil, fmt.Errorf("toggle project: %w", err)
	}
	item.IsPublished = published

	s.cache.Invalidate(context.Background(), projectResource)
	return &item, nil
}

// Reorder 按给定顺序重排排序字段
func (s *ProjectService) Reorder(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return applyDisplayOrder(tx, &db.Project{}, ids)
	})
	if err != nil {
		return fmt.Errorf("reorder projects: %w", err)
	}

	s.cache.Invalidate(context.Background(), projectResource)
	return nil
}

func (s *ProjectService) resolveOrder(orderPtr *int) (int, error) {
	if orderPtr != nil {
		return *orderPtr, nil
	}

	order, err := nextDisplayOrder(s.db, &db.Project{})
	if err != nil {
		return 0, fmt.Errorf("resolve project order: %w", err)
	}
	return order, nil
}

func validateProjectInput(input ProjectInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrProjectInvalidInput)
	}
	if strings.TrimSpace(input.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrProjectInvalidInput)
	}
	return nil
}

func normalizeTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned
}
