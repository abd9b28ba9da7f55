package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rastechno/internal/config"
	"github.com/rastechno/internal/handler"
	"github.com/rastechno/internal/metrics"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(cfg *config.AppConfig, api *handler.API) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("rastechno_session", store))
	r.Use(metrics.GinMiddleware())

	// 本地存储后端时由进程直接提供上传文件
	if cfg.MinIO.Endpoint == "" {
		r.Static(cfg.UploadURLPath, cfg.UploadDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 前台公开路由
	pub := r.Group("/api")
	{
		pub.GET("/home", api.GetHome)
		pub.GET("/projects", api.PublicProjects)
		pub.GET("/services", api.PublicServices)
		pub.GET("/testimonials", api.PublicTestimonials)
		pub.GET("/clients", api.PublicClients)
		pub.GET("/journey", api.PublicJourney)
		pub.GET("/awards", api.PublicAwards)
		pub.GET("/blogs", api.PublicBlogs)
		pub.GET("/blogs/:slug", api.PublicBlogBySlug)
		pub.GET("/careers", api.PublicCareers)
		pub.POST("/careers/:id/apply", api.SubmitApplication)
		pub.GET("/policies/:key", api.PublicPolicy)
		pub.POST("/contact", api.SubmitContact)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/me", api.CurrentUser)
			auth.POST("/password", api.ChangePassword)

			auth.GET("/projects", api.ListProjects)
			auth.GET("/projects/:id", api.GetProject)
			auth.POST("/projects", api.CreateProject)
			auth.PUT("/projects/:id", api.UpdateProject)
			auth.DELETE("/projects/:id", api.DeleteProject)
			auth.PATCH("/projects/:id/publish", api.ToggleProjectPublished)
			auth.PUT("/projects/reorder", api.ReorderProjects)

			auth.GET("/services", api.ListServiceItems)
			auth.POST("/services", api.CreateServiceItem)
			auth.PUT("/services/:id", api.UpdateServiceItem)
			auth.DELETE("/services/:id", api.DeleteServiceItem)
			auth.PATCH("/services/:id/active", api.ToggleServiceItemActive)
			auth.PUT("/services/reorder", api.ReorderServiceItems)

			auth.GET("/testimonials", api.ListTestimonials)
			auth.POST("/testimonials", api.CreateTestimonial)
			auth.PUT("/testimonials/:id", api.UpdateTestimonial)
			auth.DELETE("/testimonials/:id", api.DeleteTestimonial)
			auth.PATCH("/testimonials/:id/publish", api.ToggleTestimonialPublished)
			auth.PUT("/testimonials/reorder", api.ReorderTestimonials)

			auth.GET("/clients", api.ListClients)
			auth.POST("/clients", api.CreateClient)
			auth.PUT("/clients/:id", api.UpdateClient)
			auth.DELETE("/clients/:id", api.DeleteClient)
			auth.PATCH("/clients/:id/active", api.ToggleClientActive)
			auth.PUT("/clients/reorder", api.ReorderClients)

			auth.GET("/journey", api.ListMilestones)
			auth.POST("/journey", api.CreateMilestone)
			auth.PUT("/journey/:id", api.UpdateMilestone)
			auth.DELETE("/journey/:id", api.DeleteMilestone)
			auth.PATCH("/journey/:id/active", api.ToggleMilestoneActive)
			auth.PUT("/journey/reorder", api.ReorderMilestones)

			auth.GET("/awards", api.ListAwards)
			auth.POST("/awards", api.CreateAward)
			auth.PUT("/awards/:id", api.UpdateAward)
			auth.DELETE("/awards/:id", api.DeleteAward)
			auth.PATCH("/awards/:id/active", api.ToggleAwardActive)
			auth.PUT("/awards/reorder", api.ReorderAwards)

			auth.GET("/blogs", api.ListBlogs)
			auth.GET("/blogs/:id", api.GetBlog)
			auth.POST("/blogs", api.CreateBlog)
			auth.PUT("/blogs/:id", api.UpdateBlog)
			auth.DELETE("/blogs/:id", api.DeleteBlog)
			auth.PATCH("/blogs/:id/publish", api.ToggleBlogPublished)

			auth.GET("/careers", api.ListJobPosts)
			auth.POST("/careers", api.CreateJobPost)
			auth.PUT("/careers/:id", api.UpdateJobPost)
			auth.DELETE("/careers/:id", api.DeleteJobPost)
			auth.PATCH("/careers/:id/active", api.ToggleJobPostActive)

			auth.GET("/applications", api.ListApplications)
			auth.PATCH("/applications/:id/status", api.UpdateApplicationStatus)
			auth.PATCH("/applications/:id/read", api.ToggleApplicationRead)
			auth.DELETE("/applications/:id", api.DeleteApplication)

			auth.GET("/messages", api.ListContactMessages)
			auth.PATCH("/messages/:id/read", api.ToggleContactMessageRead)
			auth.DELETE("/messages/:id", api.DeleteContactMessage)

			auth.GET("/settings", api.ListSiteSettings)
			auth.GET("/settings/visibility", api.GetSectionVisibility)
			auth.PUT("/settings/visibility", api.SaveSectionVisibility)
			auth.PATCH("/settings/visibility/:key", api.ToggleSectionVisible)
			auth.GET("/settings/theme", api.GetTheme)
			auth.PUT("/settings/theme", api.SaveTheme)
			auth.GET("/settings/social-links", api.GetSocialLinks)
			auth.PUT("/settings/social-links", api.SaveSocialLinks)
			auth.GET("/settings/sections/:key", api.GetSectionContent)
			auth.PUT("/settings/sections/:key", api.SaveSectionContent)
			auth.GET("/settings/policies/:key", api.GetPolicy)
			auth.PUT("/settings/policies/:key", api.SavePolicy)
			auth.GET("/settings/images", api.GetSiteImages)
			auth.PUT("/settings/images", api.SaveSiteImages)

			auth.POST("/upload", api.UploadImage)
		}
	}

	return r
}
