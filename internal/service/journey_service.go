package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rastechno/internal/cache"
	"github.com/rastechno/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrMilestoneNotFound 在指定的里程碑不存在时返回
	ErrMilestoneNotFound = errors.New("journey milestone not found")
	// ErrMilestoneInvalidInput 在输入数据不完整时返回
	ErrMilestoneInvalidInput = errors.New("invalid journey milestone input")
)

const journeyResource = "journey_milestones"

// JourneyService 负责维护发展历程时间轴。
type JourneyService struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewJourneyService 构造 JourneyService
func NewJourneyService(gdb *gorm.DB, c *cache.Cache) *JourneyService {
	return &JourneyService{db: gdb, cache: c}
}

// MilestoneInput 描述创建或更新里程碑时可设置的字段
type MilestoneInput struct {
	Year         string
	Title        string
	Description  string
	Icon         string
	IsActive     *bool
	DisplayOrder *int
}

// ListAll 返回全部里程碑，按排序值升序、id 升序。
func (s *JourneyService) ListAll() ([]db.JourneyMilestone, error) {
	ctx := context.Background()

	var items []db.JourneyMilestone
	if s.cache.GetJSON(ctx, journeyResource, "all", &items) {
		return items, nil
	}

	if err := s.db.Order(displayOrderAsc).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list journey milestones: %w", err)
	}

	s.cache.SetJSON(ctx, journeyResource, "all", items)
	return items, nil
}

// ListActive 返回启用中的里程碑，供前台 journey 区块使用。
func (s *JourneyService) ListActive() ([]db.JourneyMilestone, error) {
	ctx := context.Background()

	var items []db.JourneyMilestone
	if s.cache.GetJSON(ctx, journeyResource, "active", &items) {
		return items, nil
	}

	if err := s.db.Where("is_active = ?", true).Order(displayOrderAsc).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list active journey milestones: %w", err)
	}

	s.cache.SetJSON(ctx, journeyResource, "active", items)
	return items, nil
}

// Get 根据主键获取里程碑
func (s *JourneyService) Get(id uint) (*db.JourneyMilestone, error) {
	var item db.JourneyMilestone
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("get journey milestone: %w", err)
	}
	return &item, nil
}

// Create 新建里程碑，未指定排序时自动追加到末尾
func (s *JourneyService) Create(input MilestoneInput) (*db.JourneyMilestone, error) {
	if err := validateMilestoneInput(input); err != nil {
		return nil, err
	}

	order := 0
	if input.DisplayOrder != nil {
		order = *input.DisplayOrder
	} else {
		next, err := nextDisplayOrder(s.db, &db.JourneyMilestone{})
		if err != nil {
			return nil, fmt.Errorf("resolve journey milestone order: %w", err)
		}
		order = next
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	item := db.JourneyMilestone{
		Year:         strings.TrimSpace(input.Year),
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Icon:         strings.TrimSpace(input.Icon),
		IsActive:     active,
		DisplayOrder: order,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create journey milestone: %w", err)
	}

	s.cache.Invalidate(context.Background(), journeyResource)
	return &item, nil
}

// Update 更新指定里程碑
func (s *JourneyService) Update(id uint, input MilestoneInput) (*db.JourneyMilestone, error) {
	if err := validateMilestoneInput(input); err != nil {
		return nil, err
	}

	var item db.JourneyMilestone
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("find journey milestone: %w", err)
	}

	item.Year = strings.TrimSpace(input.Year)
	item.Title = strings.TrimSpace(input.Title)
	item.Description = strings.TrimSpace(input.Description)
	item.Icon = strings.TrimSpace(input.Icon)

	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if input.DisplayOrder != nil {
		item.DisplayOrder = *input.DisplayOrder
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update journey milestone: %w", err)
	}

	s.cache.Invalidate(context.Background(), journeyResource)
	return &item, nil
}

// Delete 删除指定里程碑，目标不存在时同样视为成功
func (s *JourneyService) Delete(id uint) error {
	if err := s.db.Delete(&db.JourneyMilestone{}, id).Error; err != nil {
		return fmt.Errorf("delete journey milestone: %w", err)
	}
	s.cache.Invalidate(context.Background(), journeyResource)
	return nil
}

// SetActive 仅切换启用状态，不影响排序与其余字段
func (s *JourneyService) SetActive(id uint, active bool) (*db.JourneyMilestone, error) {
	var item db.JourneyMilestone
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("find journey milestone: %w", err)
	}

	if err := s.db.Model(&item).Update("is_active", active).Error; err != nil {
		return nil, fmt.Errorf("toggle journey milestone: %w", err)
	}
	item.IsActive = active

	s.cache.Invalidate(context.Background(), journeyResource)
	return &item, nil
}

// Reorder 按给定顺序重排排序字段
func (s *JourneyService) Reorder(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return applyDisplayOrder(tx, &db.JourneyMilestone{}, ids)
	})
	if err != nil {
		return fmt.Errorf("reorder journey milestones: %w", err)
	}

	s.cache.Invalidate(context.Background(), journeyResource)
	return nil
}

func validateMilestoneInput(input MilestoneInput) error {
	if strings.TrimSpace(input.Year) == "" {
		return fmt.Errorf("%w: year is required", ErrMilestoneInvalidInput)
	}
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrMilestoneInvalidInput)
	}
	return nil
}
