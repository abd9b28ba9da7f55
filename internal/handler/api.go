package handler

import (
	"github.com/rastechno/internal/cache"
	"github.com/rastechno/internal/service"
	"github.com/rastechno/internal/storage"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	projects     *service.ProjectService
	services     *service.ServiceItemService
	testimonials *service.TestimonialService
	blogs        *service.BlogService
	clients      *service.ClientService
	journey      *service.JourneyService
	awards       *service.AwardService
	careers      *service.CareerService
	contacts     *service.ContactService
	settings     *service.SiteSettingService
	users        *service.UserService
	store        storage.Storage
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, c *cache.Cache, store storage.Storage) *API {
	return &API{
		db:           gdb,
		projects:     service.NewProjectService(gdb, c),
		services:     service.NewServiceItemService(gdb, c),
		testimonials: service.NewTestimonialService(gdb, c),
		blogs:        service.NewBlogService(gdb, c),
		clients:      service.NewClientService(gdb, c),
		journey:      service.NewJourneyService(gdb, c),
		awards:       service.NewAwardService(gdb, c),
		careers:      service.NewCareerService(gdb, c),
		contacts:     service.NewContactService(gdb),
		settings:     service.NewSiteSettingService(gdb, c),
		users:        service.NewUserService(gdb),
		store:        store,
	}
}

// DB exposes the underlying gorm instance for bootstrap paths.
func (a *API) DB() *gorm.DB {
	return a.db
}

// Users exposes the user service for startup account provisioning.
func (a *API) Users() *service.UserService {
	return a.users
}
