package main

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/maheshrc27/linkedin-studio/internal/api/handlers"
	"github.com/maheshrc27/linkedin-studio/internal/api/middleware"
	"github.com/maheshrc27/linkedin-studio/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routeServices struct {
	auth      service.AuthService
	user      service.UserService
	settings  service.SettingsService
	apiKeys   service.ApiKeyService
	platform  service.PlatformService
	linkedin  service.LinkedInService
	pillars   service.PillarService
	posts     service.PostService
	media     service.MediaService
	comments  service.CommentService
	templates service.TemplateService
	creator   service.CreatorService
	leads     service.LeadService
	events    service.EventService
	analytics service.AnalyticsService
}

func registerRoutes(app *fiber.App, db *sql.DB, authMiddleware *middleware.AuthMiddleware, s routeServices) {
	app.Get("/health", handlers.NewHealthHandler(db).Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	auth := handlers.NewAuthHandler(*cfg, s.auth)
	app.Get("/login", auth.Login)
	app.Get("/login/callback", auth.LoginCallbackHandler)
	app.Get("/logout", auth.Logout)

	platform := handlers.NewPlatformHandler(s.platform, s.linkedin, *cfg)
	app.Get("/auth/:platform", platform.AddSocialAccount)
	app.Get("/auth/:platform/callback", platform.CallbackHandler)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	user := handlers.NewUserHandler(s.user)
	api.Get("/user/info", user.GetUserInfo)
	api.Delete("/user", user.RemoveUser)

	settings := handlers.NewSettingsHandler(s.settings)
	api.Get("/settings/info", settings.GetSettingsInfo)
	api.Post("/settings/update", settings.UpdateSettings)

	apiKeys := handlers.NewApiKeyHandler(s.apiKeys)
	api.Post("/api_key/new", apiKeys.CreateApiKey)
	api.Get("/api_key/list", apiKeys.ListKeys)
	api.Post("/api_key/remove", apiKeys.RemoveAPIKey)

	api.Get("/accounts", platform.ListSocialAccounts)
	api.Post("/accounts/remove", platform.DeleteSocialAccount)

	content := api.Group("/content")

	pillars := handlers.NewPillarHandler(s.pillars)
	content.Post("/pillars", pillars.CreatePillar)
	content.Get("/pillars", pillars.ListPillars)
	content.Get("/pillars/:id", pillars.GetPillar)
	content.Put("/pillars/:id", pillars.UpdatePillar)
	content.Delete("/pillars/:id", pillars.RemovePillar)

	posts := handlers.NewPostHandler(s.posts, s.media)
	content.Post("/posts", posts.CreatePost)
	content.Get("/posts", posts.ListPosts)
	content.Get("/posts/:id", posts.GetPost)
	content.Put("/posts/:id", posts.UpdatePost)
	content.Delete("/posts/:id", posts.RemovePost)
	content.Post("/posts/:id/schedule", posts.SchedulePost)
	content.Post("/posts/:id/publish", posts.PublishPost)
	content.Put("/posts/:id/metrics", posts.UpdateMetrics)

	content.Post("/media", posts.UploadMedia)
	content.Get("/media", posts.ListMedia)
	content.Delete("/media/:id", posts.RemoveMedia)

	engagement := handlers.NewEngagementHandler(s.comments, s.templates)
	content.Post("/comments", engagement.CreateComment)
	content.Get("/comments", engagement.ListComments)
	content.Get("/comments/:id", engagement.GetComment)
	content.Put("/comments/:id", engagement.UpdateComment)
	content.Delete("/comments/:id", engagement.RemoveComment)

	content.Post("/templates", engagement.CreateTemplate)
	content.Get("/templates", engagement.ListTemplates)
	content.Get("/templates/:id", engagement.GetTemplate)
	content.Put("/templates/:id", engagement.UpdateTemplate)
	content.Delete("/templates/:id", engagement.RemoveTemplate)

	ai := api.Group("/ai")
	creator := handlers.NewCreatorHandler(s.creator)
	ai.Post("/projects", creator.CreateProject)
	ai.Get("/projects", creator.ListProjects)
	ai.Get("/projects/:id", creator.GetProject)
	ai.Put("/projects/:id", creator.UpdateProject)
	ai.Delete("/projects/:id", creator.RemoveProject)

	ai.Post("/projects/:id/sessions", creator.CreateSession)
	ai.Get("/projects/:id/sessions", creator.ListSessions)
	ai.Get("/sessions/:id", creator.GetSession)
	ai.Delete("/sessions/:id", creator.RemoveSession)
	ai.Post("/sessions/:id/generate", creator.Generate)
	ai.Post("/sessions/:id/assets", creator.GenerateAssets)

	ai.Put("/versions/:id", creator.UpdateVersion)
	ai.Post("/versions/:id/select", creator.SelectVersion)
	ai.Post("/versions/:id/convert", creator.ConvertVersion)

	ai.Delete("/assets/:id", creator.RemoveAsset)

	business := api.Group("/business")
	biz := handlers.NewBusinessHandler(s.leads, s.events)
	business.Post("/leads", biz.CreateLead)
	business.Get("/leads", biz.ListLeads)
	business.Get("/leads/:id", biz.GetLead)
	business.Put("/leads/:id", biz.UpdateLead)
	business.Delete("/leads/:id", biz.RemoveLead)

	business.Post("/events", biz.CreateEvent)
	business.Get("/events", biz.ListEvents)
	business.Get("/events/:id", biz.GetEvent)
	business.Put("/events/:id", biz.UpdateEvent)
	business.Delete("/events/:id", biz.RemoveEvent)

	analytics := handlers.NewAnalyticsHandler(s.analytics)
	api.Get("/analytics/overview", analytics.Overview)
	api.Get("/analytics/pillars", analytics.Pillars)
}
