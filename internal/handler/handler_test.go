package handler

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rastechno/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestAPI(t *testing.T) (*API, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.User{},
		&db.Project{},
		&db.ServiceItem{},
		&db.Testimonial{},
		&db.Blog{},
		&db.Client{},
		&db.JourneyMilestone{},
		&db.Award{},
		&db.JobPost{},
		&db.JobApplication{},
		&db.ContactMessage{},
		&db.SiteSetting{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	api := NewAPI(gdb, nil, nil)

	return api, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
