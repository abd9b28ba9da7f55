package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rastechno/internal/cache"
	"github.com/rastechno/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrAwardNotFound 在指定的奖项不存在时返回
	ErrAwardNotFound = errors.New("award not found")
	// ErrAwardInvalidInput 在输入数据不完整时返回
	ErrAwardInvalidInput = errors.New("invalid award input")
)

const awardResource = "awards"

// AwardService 负责维护奖项与认证。
type AwardService struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewAwardService 构造 AwardService
func NewAwardService(gdb *gorm.DB, c *cache.Cache) *AwardService {
	return &AwardService{db: gdb, cache: c}
}

// AwardInput 描述创建或更新奖项时可设置的字段
type AwardInput struct {
	Title        string
	Issuer       string
	Description  string
	ImageURL     string
	DateReceived *time.Time
	IsActive     *bool
	DisplayOrder *int
}

// ListAll 返回全部奖项，按排序值升序、id 升序。
func (s *AwardService) ListAll() ([]db.Award, error) {
	ctx := context.Background()

	var items []db.Award
	if s.cache.GetJSON(ctx, awardResource, "all", &items) {
		return items, nil
	}

	if err := s.db.Order(displayOrderAsc).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list awards: %w", err)
	}

	s.cache.SetJSON(ctx, awardResource, "all", items)
	return items, nil
}

// ListActive 返回启用中的奖项，供前台 awards 区块使用。
func (s *AwardService) ListActive() ([]db.Award, error) {
	ctx := context.Background()

	var items []db.Award
	if s.cache.GetJSON(ctx, awardResource, "active", &items) {
		return items, nil
	}

	if err := s.db.Where("is_active = ?", true).Order(displayOrderAsc).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list active awards: %w", err)
	}

	s.cache.SetJSON(ctx, awardResource, "active", items)
	return items, nil
}

// Get 根据主键获取奖项
func (s *AwardService) Get(id uint) (*db.Award, error) {
	var item db.Award
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAwardNotFound
		}
		return nil, fmt.Errorf("get award: %w", err)
	}
	return &item, nil
}

// Create 新建奖项，未指定排序时自动追加到末尾
func (s *AwardService) Create(input AwardInput) (*db.Award, error) {
	if err := validateAwardInput(input); err != nil {
		return nil, err
	}

	order := 0
	if input.DisplayOrder != nil {
		order = *input.DisplayOrder
	} else {
		next, err := nextDisplayOrder(s.db, &db.Award{})
		if err != nil {
			return nil, fmt.Errorf("resolve award order: %w", err)
		}
		order = next
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	item := db.Award{
		Title:        strings.TrimSpace(input.Title),
		Issuer:       strings.TrimSpace(input.Issuer),
		Description:  strings.TrimSpace(input.Description),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		DateReceived: input.DateReceived,
		IsActive:     active,
		DisplayOrder: order,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create award: %w", err)
	}

	s.cache.Invalidate(context.Background(), awardResource)
	return &item, nil
}

// Update 更新指定奖项
func (s *AwardService) Update(id uint, input AwardInput) (*db.Award, error) {
	if err := validateAwardInput(input); err != nil {
		return nil, err
	}

	var item db.Award
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAwardNotFound
		}
		return nil, fmt.Errorf("find award: %w", err)
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Issuer = strings.TrimSpace(input.Issuer)
	item.Description = strings.TrimSpace(input.Description)
	item.ImageURL = strings.TrimSpace(input.ImageURL)
	item.DateReceived = input.DateReceived

	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if input.DisplayOrder != nil {
		item.DisplayOrder = *input.DisplayOrder
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update award: %w", err)
	}

	s.cache.Invalidate(context.Background(), awardResource)
	return &item, nil
}

// Delete 删除指定奖项，目标不存在时同样视为成功
func (s *AwardService) Delete(id uint) error {
	if err := s.db.Delete(&db.Award{}, id).Error; err != nil {
		return fmt.Errorf("delete award: %w", err)
	}
	s.cache.Invalidate(context.Background(), awardResource)
	return nil
}

// SetActive 仅切换启用状态，不影响排序与其余字段
func (s *AwardService) SetActive(id uint, active bool) (*db.Award, error) {
	var item db.Award
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAwardNotFound
		}
		return nil, fmt.Errorf("find award: %w", err)
	}

	if err := s.db.Model(&item).Update("is_active", active).Error; err != nil {
		return nil, fmt.Errorf("toggle award: %w", err)
	}
	item.IsActive = active

	s.cache.Invalidate(context.Background(), awardResource)
	return &item, nil
}

// Reorder 按给定顺序重排排序字段
func (s *AwardService) Reorder(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return applyDisplayOrder(tx, &db.Award{}, ids)
	})
	if err != nil {
		return fmt.Errorf("reorder awards: %w", err)
	}

	s.cache.Invalidate(context.Background(), awardResource)
	return nil
}

func validateAwardInput(input AwardInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrAwardInvalidInput)
	}
	return nil
}
