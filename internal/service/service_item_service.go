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
	// ErrServiceItemNotFound 在指定的服务条目不存在时返回
	ErrServiceItemNotFound = errors.New("service item not found")
	// ErrServiceItemInvalidInput 在输入数据不完整时返回
	ErrServiceItemInvalidInput = errors.New("invalid service item input")
)

const serviceItemResource = "services"

// ServiceItemService 负责维护前台 services 区块展示的服务能力列表。
type ServiceItemService struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewServiceItemService 构造 ServiceItemService
func NewServiceItemService(gdb *gorm.DB, c *cache.Cache) *ServiceItemService {
	return &ServiceItemService{db: gdb, cache: c}
}

// ServiceItemInput 描述创建或更新服务条目时可设置的字段
type ServiceItemInput struct {
	Title        string
	Description  string
	Icon         string
	Color        string
	Features     []string
	IsActive     *bool
	DisplayOrder *int
}

// ListAll 返回全部服务条目，按排序值升序、id 升序。
func (s *ServiceItemService) ListAll() ([]db.ServiceItem, error) {
	ctx := context.Background()

	var items []db.ServiceItem
	if s.cache.GetJSON(ctx, serviceItemResource, "all", &items) {
		return items, nil
	}

	if err := s.db.Order(displayOrderAsc).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list service items: %w", err)
	}

	s.cache.SetJSON(ctx, serviceItemResource, "all", items)
	return items, nil
}

// ListActive 返回启用中的服务条目，供前台使用。
func (s *ServiceItemService) ListActive() ([]db.ServiceItem, error) {
	ctx := context.Background()

	var items []db.ServiceItem
	if s.cache.GetJSON(ctx, serviceItemResource, "active", &items) {
		return items, nil
	}

	if err := s.db.Where("is_active = ?", true).Order(displayOrderAsc).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list active service items: %w", err)
	}

	s.cache.SetJSON(ctx, serviceItemResource, "active", items)
	return items, nil
}

// Get 根据主键获取服务条目
func (s *ServiceItemService) Get(id uint) (*db.ServiceItem, error) {
	var item db.ServiceItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceItemNotFound
		}
		return nil, fmt.Errorf("get service item: %w", err)
	}
	return &item, nil
}

// Create 新建服务条目，未指定排序时自动追加到末尾
func (s *ServiceItemService) Create(input ServiceItemInput) (*db.ServiceItem, error) {
	if err := validateServiceItemInput(input); err != nil {
		return nil, err
	}

	order := 0
	if input.DisplayOrder != nil {
		order = *input.DisplayOrder
	} else {
		next, err := nextDisplayOrder(s.db, &db.ServiceItem{})
		if err != nil {
			return nil, fmt.Errorf("resolve service item order: %w", err)
		}
		order = next
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	item := db.ServiceItem{
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Icon:         strings.TrimSpace(input.Icon),
		Color:        strings.TrimSpace(input.Color),
		Features:     datatypes.JSONSlice[string](normalizeTags(input.Features)),
		IsActive:     active,
		DisplayOrder: order,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create service item: %w", err)
	}

	s.cache.Invalidate(context.Background(), serviceItemResource)
	return &item, nil
}

// Update 更新指定服务条目
func (s *ServiceItemService) Update(id uint, input ServiceItemInput) (*db.ServiceItem, error) {
	if err := validateServiceItemInput(input); err != nil {
		return nil, err
	}

	var item db.ServiceItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceItemNotFound
		}
		return nil, fmt.Errorf("find service item: %w", err)
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Description = strings.TrimSpace(input.Description)
	item.Icon = strings.TrimSpace(input.Icon)
	item.Color = strings.TrimSpace(input.Color)
	item.Features = datatypes.JSONSlice[string](normalizeTags(input.Features))

	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if input.DisplayOrder != nil {
		item.DisplayOrder = *input.DisplayOrder
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update service item: %w", err)
	}

	s.cache.Invalidate(context.Background(), serviceItemResource)
	return &item, nil
}

// Delete 删除指定服务条目，目标不存在时同样视为成功
func (s *ServiceItemService) Delete(id uint) error {
	if err := s.db.Delete(&db.ServiceItem{}, id).Error; err != nil {
		return fmt.Errorf("delete service item: %w", err)
	}
	s.cache.Invalidate(context.Background(), serviceItemResource)
	return nil
}

// SetActive 仅切换启用状态，不影响排序与其余字段
func (s *ServiceItemService) SetActive(id uint, active bool) (*db.ServiceItem, error) {
	var item db.ServiceItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceItemNotFound
		}
		return nil, fmt.Errorf("find service item: %w", err)
	}

	if err := s.db.Model(&item).Update("is_active", active).Error; err != nil {
		return nil, fmt.Errorf("toggle service item: %w", err)
	}
	item.IsActive = active

	s.cache.Invalidate(context.Background(), serviceItemResource)
	return &item, nil
}

// Reorder 按给定顺序重排排序字段
func (s *ServiceItemService) Reorder(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return applyDisplayOrder(tx, &db.ServiceItem{}, ids)
	})
	if err != nil {
		return fmt.Errorf("reorder service items: %w", err)
	}

	s.cache.Invalidate(context.Background(), serviceItemResource)
	return nil
}

func validateServiceItemInput(input ServiceItemInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrServiceItemInvalidInput)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrServiceItemInvalidInput)
	}
	return nil
}
