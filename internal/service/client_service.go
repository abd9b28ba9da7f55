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
	// ErrClientNotFound 在指定的客户不存在时返回
	ErrClientNotFound = errors.New("client not found")
	// ErrClientInvalidInput 在输入数据不完整时返回
	ErrClientInvalidInput = errors.New("invalid client input")
)

const clientResource = "clients"

// ClientService 负责维护合作客户的品牌展示。
type ClientService struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewClientService 构造 ClientService
func NewClientService(gdb *gorm.DB, c *cache.Cache) *ClientService {
	return &ClientService{db: gdb, cache: c}
}

// ClientInput 描述创建或更新客户时可设置的字段
type ClientInput struct {
	Name         string
	LogoURL      string
	WebsiteURL   string
	Description  string
	IsActive     *bool
	DisplayOrder *int
}

// ListAll 返回全部客户，按排序值升序、id 升序。
func (s *ClientService) ListAll() ([]db.Client, error) {
	ctx := context.Background()

	var items []db.Client
	if s.cache.GetJSON(ctx, clientResource, "all", &items) {
		return items, nil
	}

	if err := s.db.Order(displayOrderAsc).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	s.cache.SetJSON(ctx, clientResource, "all", items)
	return items, nil
}

// ListActive 返回启用中的客户，供前台 clients 区块使用。
func (s *ClientService) ListActive() ([]db.Client, error) {
	ctx := context.Background()

	var items []db.Client
	if s.cache.GetJSON(ctx, clientResource, "active", &items) {
		return items, nil
	}

	if err := s.db.Where("is_active = ?", true).Order(displayOrderAsc).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list active clients: %w", err)
	}

	s.cache.SetJSON(ctx, clientResource, "active", items)
	return items, nil
}

// Get 根据主键获取客户
func (s *ClientService) Get(id uint) (*db.Client, error) {
	var item db.Client
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &item, nil
}

// Create 新建客户，未指定排序时自动追加到末尾
func (s *ClientService) Create(input ClientInput) (*db.Client, error) {
	if err := validateClientInput(input); err != nil {
		return nil, err
	}

	order := 0
	if input.DisplayOrder != nil {
		order = *input.DisplayOrder
	} else {
		next, err := nextDisplayOrder(s.db, &db.Client{})
		if err != nil {
			return nil, fmt.Errorf("resolve client order: %w", err)
		}
		order = next
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	item := db.Client{
		Name:         strings.TrimSpace(input.Name),
		LogoURL:      strings.TrimSpace(input.LogoURL),
		WebsiteURL:   strings.TrimSpace(input.WebsiteURL),
		Description:  strings.TrimSpace(input.Description),
		IsActive:     active,
		DisplayOrder: order,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	s.cache.Invalidate(context.Background(), clientResource)
	return &item, nil
}

// Update 更新指定客户
func (s *ClientService) Update(id uint, input ClientInput) (*db.Client, error) {
	if err := validateClientInput(input); err != nil {
		return nil, err
	}

	var item db.Client
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}

	item.Name = strings.TrimSpace(input.Name)
	item.LogoURL = strings.TrimSpace(input.LogoURL)
	item.WebsiteURL = strings.TrimSpace(input.WebsiteURL)
	item.Description = strings.TrimSpace(input.Description)

	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if input.DisplayOrder != nil {
		item.DisplayOrder = *input.DisplayOrder
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}

	s.cache.Invalidate(context.Background(), clientResource)
	return &item, nil
}

// Delete 删除指定客户，目标不存在时同样视为成功
func (s *ClientService) Delete(id uint) error {
	if err := s.db.Delete(&db.Client{}, id).Error; err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	s.cache.Invalidate(context.Background(), clientResource)
	return nil
}

// SetActive 仅切换启用状态，不影响排序与其余字段
func (s *ClientService) SetActive(id uint, active bool) (*db.Client, error) {
	var item db.Client
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}

	if err := s.db.Model(&item).Update("is_active", active).Error; err != nil {
		return nil, fmt.Errorf("toggle client: %w", err)
	}
	item.IsActive = active

	s.cache.Invalidate(context.Background(), clientResource)
	return &item, nil
}

// Reorder 按给定顺序重排排序字段
func (s *ClientService) Reorder(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return applyDisplayOrder(tx, &db.Client{}, ids)
	})
	if err != nil {
		return fmt.Errorf("reorder clients: %w", err)
	}

	s.cache.Invalidate(context.Background(), clientResource)
	return nil
}

func validateClientInput(input ClientInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrClientInvalidInput)
	}
	return nil
}
