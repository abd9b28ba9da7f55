package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rastechno/internal/cache"
	"github.com/rastechno/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	// ErrJobPostNotFound 在指定的招聘信息不存在时返回
	ErrJobPostNotFound = errors.New("job post not found")
	// ErrJobPostInvalidInput 在输入数据不完整时返回
	ErrJobPostInvalidInput = errors.New("invalid job post input")
	// ErrApplicationNotFound 在指定的应聘记录不存在时返回
	ErrApplicationNotFound = errors.New("job application not found")
	// ErrApplicationInvalidInput 在输入数据不完整时返回
	ErrApplicationInvalidInput = errors.New("invalid job application input")
)

const (
	jobPostResource     = "job_posts"
	applicationResource = "job_applications"
)

// CareerService 负责招聘信息与应聘记录。
type CareerService struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewCareerService 构造 CareerService
func NewCareerService(gdb *gorm.DB, c *cache.Cache) *CareerService {
	return &CareerService{db: gdb, cache: c}
}

// JobPostInput 描述创建或更新招聘信息时可设置的字段
type JobPostInput struct {
	Title          string
	Department     string
	Location       string
	EmploymentType string
	Description    string
	Requirements   []string
	Benefits       []string
	SalaryRange    string
	IsActive       *bool
	ExpiresAt      *time.Time
}

// ApplicationInput 描述公开提交应聘时可设置的字段
type ApplicationInput struct {
	JobPostID       uint
	Name            string
	Email           string
	Phone           string
	LinkedinURL     string
	ResumeURL       string
	CoverLetter     string
	CurrentCompany  string
	ExperienceYears *int
}

// ListJobPosts 返回全部招聘信息，按发布时间倒序。
func (s *CareerService) ListJobPosts() ([]db.JobPost, error) {
	ctx := context.Background()

	var items []db.JobPost
	if s.cache.GetJSON(ctx, jobPostResource, "all", &items) {
		return items, nil
	}

	if err := s.db.Order("posted_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list job posts: %w", err)
	}

	s.cache.SetJSON(ctx, jobPostResource, "all", items)
	return items, nil
}

// ListActiveJobPosts 返回启用且未过期的招聘信息，供前台招聘页使用。
func (s *CareerService) ListActiveJobPosts() ([]db.JobPost, error) {
	ctx := context.Background()

	var items []db.JobPost
	if s.cache.GetJSON(ctx, jobPostResource, "active", &items) {
		return filterExpired(items), nil
	}

	if err := s.db.Where("is_active = ?", true).
		Order("posted_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list active job posts: %w", err)
	}

	s.cache.SetJSON(ctx, jobPostResource, "active", items)
	return filterExpired(items), nil
}

// GetJobPost 根据主键获取招聘信息
func (s *CareerService) GetJobPost(id uint) (*db.JobPost, error) {
	var item db.JobPost
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostNotFound
		}
		return nil, fmt.Errorf("get job post: %w", err)
	}
	return &item, nil
}

// CreateJobPost 新建招聘信息，发布时间取当前时刻
func (s *CareerService) CreateJobPost(input JobPostInput) (*db.JobPost, error) {
	if err := validateJobPostInput(input); err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	item := db.JobPost{
		Title:          strings.TrimSpace(input.Title),
		Department:     strings.TrimSpace(input.Department),
		Location:       strings.TrimSpace(input.Location),
		EmploymentType: strings.TrimSpace(input.EmploymentType),
		Description:    strings.TrimSpace(input.Description),
		Requirements:   datatypes.JSONSlice[string](normalizeTags(input.Requirements)),
		Benefits:       datatypes.JSONSlice[string](normalizeTags(input.Benefits)),
		SalaryRange:    strings.TrimSpace(input.SalaryRange),
		IsActive:       active,
		PostedAt:       time.Now(),
		ExpiresAt:      input.ExpiresAt,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create job post: %w", err)
	}

	s.cache.Invalidate(context.Background(), jobPostResource)
	return &item, nil
}

// UpdateJobPost 更新指定招聘信息
func (s *CareerService) UpdateJobPost(id uint, input JobPostInput) (*db.JobPost, error) {
	if err := validateJobPostInput(input); err != nil {
		return nil, err
	}

	var item db.JobPost
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostNotFound
		}
		return nil, fmt.Errorf("find job post: %w", err)
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Department = strings.TrimSpace(input.Department)
	item.Location = strings.TrimSpace(input.Location)
	item.EmploymentType = strings.TrimSpace(input.EmploymentType)
	item.Description = strings.TrimSpace(input.Description)
	item.Requirements = datatypes.JSONSlice[string](normalizeTags(input.Requirements))
	item.Benefits = datatypes.JSONSlice[string](normalizeTags(input.Benefits))
	item.SalaryRange = strings.TrimSpace(input.SalaryRange)
	item.ExpiresAt = input.ExpiresAt

	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update job post: %w", err)
	}

	s.cache.Invalidate(context.Background(), jobPostResource)
	return &item, nil
}

// DeleteJobPost 删除指定招聘信息。应聘记录保留，仅失去职位关联。
func (s *CareerService) DeleteJobPost(id uint) error {
	if err := s.db.Delete(&db.JobPost{}, id).Error; err != nil {
		return fmt.Errorf("delete job post: %w", err)
	}
	s.cache.Invalidate(context.Background(), jobPostResource)
	return nil
}

// SetJobPostActive 仅切换招聘信息的启用状态
func (s *CareerService) SetJobPostActive(id uint, active bool) (*db.JobPost, error) {
	var item db.JobPost
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostNotFound
		}
		return nil, fmt.Errorf("find job post: %w", err)
	}

	if err := s.db.Model(&item).Update("is_active", active).Error; err != nil {
		return nil, fmt.Errorf("toggle job post: %w", err)
	}
	item.IsActive = active

	s.cache.Invalidate(context.Background(), jobPostResource)
	return &item, nil
}

// ListApplications 返回全部应聘记录，按提交时间倒序，并预载职位信息。
func (s *CareerService) ListApplications() ([]db.JobApplication, error) {
	var items []db.JobApplication
	if err := s.db.Preload("JobPost").
		Order("created_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	return items, nil
}

// CreateApplication 记录一次公开提交的应聘。目标职位必须存在且启用。
func (s *CareerService) CreateApplication(input ApplicationInput) (*db.JobApplication, error) {
	if err := validateApplicationInput(input); err != nil {
		return nil, err
	}

	var post db.JobPost
	if err := s.db.First(&post, input.JobPostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostNotFound
		}
		return nil, fmt.Errorf("find job post: %w", err)
	}

	item := db.JobApplication{
		JobPostID:       post.ID,
		Name:            strings.TrimSpace(input.Name),
		Email:           strings.TrimSpace(input.Email),
		Phone:           strings.TrimSpace(input.Phone),
		LinkedinURL:     strings.TrimSpace(input.LinkedinURL),
		ResumeURL:       strings.TrimSpace(input.ResumeURL),
		CoverLetter:     strings.TrimSpace(input.CoverLetter),
		CurrentCompany:  strings.TrimSpace(input.CurrentCompany),
		ExperienceYears: input.ExperienceYears,
		Status:          db.ApplicationStatusPending,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create job application: %w", err)
	}

	s.cache.Invalidate(context.Background(), applicationResource)
	return &item, nil
}

// UpdateApplicationStatus 更新应聘记录的处理状态
func (s *CareerService) UpdateApplicationStatus(id uint, status string) (*db.JobApplication, error) {
	status = strings.TrimSpace(strings.ToLower(status))
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", ErrApplicationInvalidInput)
	}

	var item db.JobApplication
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find job application: %w", err)
	}

	if err := s.db.Model(&item).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update job application status: %w", err)
	}
	item.Status = status

	return &item, nil
}

// SetApplicationRead 标记应聘记录的已读状态
func (s *CareerService) SetApplicationRead(id uint, read bool) (*db.JobApplication, error) {
	var item db.JobApplication
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find job application: %w", err)
	}

	if err := s.db.Model(&item).Update("is_read", read).Error; err != nil {
		return nil, fmt.Errorf("mark job application: %w", err)
	}
	item.IsRead = read

	return &item, nil
}

// DeleteApplication 删除指定应聘记录，目标不存在时同样视为成功
func (s *CareerService) DeleteApplication(id uint) error {
	if err := s.db.Delete(&db.JobApplication{}, id).Error; err != nil {
		return fmt.Errorf("delete job application: %w", err)
	}
	return nil
}

// filterExpired 过滤掉已过截止时间的职位。缓存按写入时刻存储，过期判断在读取时进行。
func filterExpired(items []db.JobPost) []db.JobPost {
	now := time.Now()
	result := make([]db.JobPost, 0, len(items))
	for _, item := range items {
		if item.ExpiresAt != nil && item.ExpiresAt.Before(now) {
			continue
		}
		result = append(result, item)
	}
	return result
}

func validateJobPostInput(input JobPostInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrJobPostInvalidInput)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrJobPostInvalidInput)
	}
	return nil
}

func validateApplicationInput(input ApplicationInput) error {
	if input.JobPostID == 0 {
		return fmt.Errorf("%w: job post is required", ErrApplicationInvalidInput)
	}
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrApplicationInvalidInput)
	}
	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrApplicationInvalidInput)
	}
	return nil
}
