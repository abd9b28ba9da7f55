package service

import (
	"errors"
	"testing"
	"time"

	"github.com/rastechno/internal/db"
)

func setupCareerService(t *testing.T) (*CareerService, func()) {
	t.Helper()
	gdb, cleanup := openTestDB(t, &db.JobPost{}, &db.JobApplication{})
	return NewCareerService(gdb, nil), cleanup
}

func TestListActiveJobPostsFiltersExpired(t *testing.T) {
	svc, cleanup := setupCareerService(t)
	defer cleanup()

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(24 * time.Hour)

	if _, err := svc.CreateJobPost(JobPostInput{Title: "expired", Description: "d", ExpiresAt: &past}); err != nil {
		t.Fatalf("CreateJobPost returned error: %v", err)
	}
	if _, err := svc.CreateJobPost(JobPostInput{Title: "open", Description: "d", ExpiresAt: &future}); err != nil {
		t.Fatalf("CreateJobPost returned error: %v", err)
	}
	if _, err := svc.CreateJobPost(JobPostInput{Title: "evergreen", Description: "d"}); err != nil {
		t.Fatalf("CreateJobPost returned error: %v", err)
	}
	if _, err := svc.CreateJobPost(JobPostInput{Title: "paused", Description: "d", IsActive: boolPtr(false)}); err != nil {
		t.Fatalf("CreateJobPost returned error: %v", err)
	}

	items, err := svc.ListActiveJobPosts()
	if err != nil {
		t.Fatalf("ListActiveJobPosts returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 open positions, got %d", len(items))
	}
	for _, item := range items {
		if item.Title == "expired" || item.Title == "paused" {
			t.Fatalf("expected %s to be filtered out", item.Title)
		}
	}
}

func TestCreateApplicationRequiresExistingJobPost(t *testing.T) {
	svc, cleanup := setupCareerService(t)
	defer cleanup()

	_, err := svc.CreateApplication(ApplicationInput{JobPostID: 99, Name: "张三", Email: "zhang@example.com"})
	if !errors.Is(err, ErrJobPostNotFound) {
		t.Fatalf("expected ErrJobPostNotFound, got %v", err)
	}
}

func TestCreateApplicationDefaultsToPending(t *testing.T) {
	svc, cleanup := setupCareerService(t)
	defer cleanup()

	post, err := svc.CreateJobPost(JobPostInput{Title: "Go 工程师", Description: "d"})
	if err != nil {
		t.Fatalf("CreateJobPost returned error: %v", err)
	}

	app, err := svc.CreateApplication(ApplicationInput{
		JobPostID: post.ID,
		Name:      "李四",
		Email:     "li@example.com",
	})
	if err != nil {
		t.Fatalf("CreateApplication returned error: %v", err)
	}
	if app.Status != db.ApplicationStatusPending {
		t.Fatalf("expected pending status, got %s", app.Status)
	}
	if app.IsRead {
		t.Fatal("expected new application to be unread")
	}
}

func TestCreateApplicationValidatesEmail(t *testing.T) {
	svc, cleanup := setupCareerService(t)
	defer cleanup()

	post, err := svc.CreateJobPost(JobPostInput{Title: "job", Description: "d"})
	if err != nil {
		t.Fatalf("CreateJobPost returned error: %v", err)
	}

	_, err = svc.CreateApplication(ApplicationInput{JobPostID: post.ID, Name: "王五", Email: "not-an-email"})
	if !errors.Is(err, ErrApplicationInvalidInput) {
		t.Fatalf("expected ErrApplicationInvalidInput, got %v", err)
	}
}

func TestUpdateApplicationStatusNormalizesValue(t *testing.T) {
	svc, cleanup := setupCareerService(t)
	defer cleanup()

	post, err := svc.CreateJobPost(JobPostInput{Title: "job", Description: "d"})
	if err != nil {
		t.Fatalf("CreateJobPost returned error: %v", err)
	}
	app, err := svc.CreateApplication(ApplicationInput{JobPostID: post.ID, Name: "a", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("CreateApplication returned error: %v", err)
	}

	updated, err := svc.UpdateApplicationStatus(app.ID, "  Reviewing ")
	if err != nil {
		t.Fatalf("UpdateApplicationStatus returned error: %v", err)
	}
	if updated.Status != db.ApplicationStatusReviewing {
		t.Fatalf("expected normalized status, got %s", updated.Status)
	}
}

func TestDeleteJobPostKeepsApplications(t *testing.T) {
	svc, cleanup := setupCareerService(t)
	defer cleanup()

	post, err := svc.CreateJobPost(JobPostInput{Title: "job", Description: "d"})
	if err != nil {
		t.Fatalf("CreateJobPost returned error: %v", err)
	}
	app, err := svc.CreateApplication(ApplicationInput{JobPostID: post.ID, Name: "a", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("CreateApplication returned error: %v", err)
	}

	if err := svc.DeleteJobPost(post.ID); err != nil {
		t.Fatalf("DeleteJobPost returned error: %v", err)
	}

	var survivor db.JobApplication
	if err := svc.db.First(&survivor, app.ID).Error; err != nil {
		t.Fatalf("expected application to survive job post deletion: %v", err)
	}
}
