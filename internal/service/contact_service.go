package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rastechno/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrMessageNotFound 在指定的留言不存在时返回
	ErrMessageNotFound = errors.New("contact message not found")
	// ErrMessageInvalidInput 在输入数据不完整时返回
	ErrMessageInvalidInput = errors.New("invalid contact message input")
)

// ContactService 负责联系表单留言的收取与后台处理。
type ContactService struct {
	db *gorm.DB
}

// NewContactService 构造 ContactService
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// ContactInput 描述前台联系表单提交的字段
type ContactInput struct {
	Name    string
	Email   string
	Company string
	Service string
	Message string
}

// List 返回全部留言，按提交时间倒序。
func (s *ContactService) List() ([]db.ContactMessage, error) {
	var items []db.ContactMessage
	if err := s.db.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return items, nil
}

// Create 记录一条前台留言
func (s *ContactService) Create(input ContactInput) (*db.ContactMessage, error) {
	if err := validateContactInput(input); err != nil {
		return nil, err
	}

	item := db.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Company: strings.TrimSpace(input.Company),
		Service: strings.TrimSpace(input.Service),
		Message: strings.TrimSpace(input.Message),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return &item, nil
}

// SetRead 标记留言的已读状态
func (s *ContactService) SetRead(id uint, read bool) (*db.ContactMessage, error) {
	var item db.ContactMessage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("find contact message: %w", err)
	}

	if err := s.db.Model(&item).Update("is_read", read).Error; err != nil {
		return nil, fmt.Errorf("mark contact message: %w", err)
	}
	item.IsRead = read
	return &item, nil
}

// Delete 删除指定留言，目标不存在时同样视为成功
func (s *ContactService) Delete(id uint) error {
	if err := s.db.Delete(&db.ContactMessage{}, id).Error; err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	return nil
}

func validateContactInput(input ContactInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrMessageInvalidInput)
	}
	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrMessageInvalidInput)
	}
	if strings.TrimSpace(input.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrMessageInvalidInput)
	}
	return nil
}
