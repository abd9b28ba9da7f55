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
	// ErrTestimonialNotFound 在指定的客户评价不存在时返回
	ErrTestimonialNotFound = errors.New("testimonial not found")
	// ErrTestimonialInvalidInput 在输入数据不完整时返回
	ErrTestimonialInvalidInput = errors.New("invalid testimonial input")
)

const testimonialResource = "testimonials"

// TestimonialService 负责维护客户评价。
type TestimonialService struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewTestimonialService 构造 TestimonialService
func NewTestimonialService(gdb *gorm.DB, c *cache.Cache) *TestimonialService {
	return &TestimonialService{db: gdb, cache: c}
}

// TestimonialInput 描述创建或更新客户评价时可设置的字段
type TestimonialInput struct {
	ClientName     string
	ClientPosition string
	ClientCompany  string
	ClientImage    string
	Content        string
	Rating         *int
	IsPublished    *bool
	DisplayOrder   *int
}

// ListAll 返回全部客户评价，按排序值升序、id 升序。
func (s *TestimonialService) ListAll() ([]db.Testimonial, error) {
	ctx := context.Background()

	var items []db.Testimonial
	if s.cache.GetJSON(ctx, testimonialResource, "all", &items) {
		return items, nil
	}

	if err := s.db.Order(displayOrderAsc).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}

	s.cache.SetJSON(ctx, testimonialResource, "all", items)
	return items, nil
}

// ListPublished 返回已发布的客户评价，供前台使用。
func (s *TestimonialService) ListPublished() ([]db.Testimonial, error) {
	ctx := context.Background()

	var items []db.Testimonial
	if s.cache.GetJSON(ctx, testimonialResource, "published", &items) {
		return items, nil
	}

	if err := s.db.Where("is_published = ?", true).Order(displayOrderAsc).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list published testimonials: %w", err)
	}

	s.cache.SetJSON(ctx, testimonialResource, "published", items)
	return items, nil
}

// Get 根据主键获取客户评价
func (s *TestimonialService) Get(id uint) (*db.Testimonial, error) {
	var item db.Testimonial
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("get testimonial: %w", err)
	}
	return &item, nil
}

// Create 新建客户评价，未指定排序时自动追加到末尾
func (s *TestimonialService) Create(input TestimonialInput) (*db.Testimonial, error) {
	if err := validateTestimonialInput(input); err != nil {
		return nil, err
	}

	order := 0
	if input.DisplayOrder != nil {
		order = *input.DisplayOrder
	} else {
		next, err := nextDisplayOrder(s.db, &db.Testimonial{})
		if err != nil {
			return nil, fmt.Errorf("resolve testimonial order: %w", err)
		}
		order = next
	}

	published := true
	if input.IsPublished != nil {
		published = *input.IsPublished
	}

	item := db.Testimonial{
		ClientName:     strings.TrimSpace(input.ClientName),
		ClientPosition: strings.TrimSpace(input.ClientPosition),
		ClientCompany:  strings.TrimSpace(input.ClientCompany),
		ClientImage:    strings.TrimSpace(input.ClientImage),
		Content:        strings.TrimSpace(input.Content),
		Rating:         input.Rating,
		IsPublished:    published,
		DisplayOrder:   order,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}

	s.cache.Invalidate(context.Background(), testimonialResource)
	return &item, nil
}

// Update 更新指定客户评价
func (s *TestimonialService) Update(id uint, input TestimonialInput) (*db.Testimonial, error) {
	if err := validateTestimonialInput(input); err != nil {
		return nil, err
	}

	var item db.Testimonial
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("find testimonial: %w", err)
	}

	item.ClientName = strings.TrimSpace(input.ClientName)
	item.ClientPosition = strings.TrimSpace(input.ClientPosition)
	item.ClientCompany = strings.TrimSpace(input.ClientCompany)
	item.ClientImage = strings.TrimSpace(input.ClientImage)
	item.Content = strings.TrimSpace(input.Content)
	item.Rating = input.Rating

	if input.IsPublished != nil {
		item.IsPublished = *input.IsPublished
	}
	if input.DisplayOrder != nil {
		item.DisplayOrder = *input.DisplayOrder
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update testimonial: %w", err)
	}

	s.cache.Invalidate(context.Background(), testimonialResource)
	return &item, nil
}

// Delete 删除指定客户评价，目标不存在时同样视为成功
func (s *TestimonialService) Delete(id uint) error {
	if err := s.db.Delete(&db.Testimonial{}, id).Error; err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	s.cache.Invalidate(context.Background(), testimonialResource)
	return nil
}

// SetPublished 仅切换发布状态，不影响排序与其余字段
func (s *TestimonialService) SetPublished(id uint, published bool) (*db.Testimonial, error) {
	var item db.Testimonial
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("find testimonial: %w", err)
	}

	if err := s.db.Model(&item).Update("is_published", published).Error; err != nil {
		return nil, fmt.Errorf("toggle testimonial: %w", err)
	}
	item.IsPublished = published

	s.cache.Invalidate(context.Background(), testimonialResource)
	return &item, nil
}

// Reorder 按给定顺序重排排序字段
func (s *TestimonialService) Reorder(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return applyDisplayOrder(tx, &db.Testimonial{}, ids)
	})
	if err != nil {
		return fmt.Errorf("reorder testimonials: %w", err)
	}

	s.cache.Invalidate(context.Background(), testimonialResource)
	return nil
}

func validateTestimonialInput(input TestimonialInput) error {
	if strings.TrimSpace(input.ClientName) == "" {
		return fmt.Errorf("%w: client name is required", ErrTestimonialInvalidInput)
	}
	if strings.TrimSpace(input.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrTestimonialInvalidInput)
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrTestimonialInvalidInput)
	}
	return nil
}
