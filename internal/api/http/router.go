package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/press-service/internal/access"
	"github.com/spec-kit/press-service/internal/api/http/handlers"
	"github.com/spec-kit/press-service/internal/auth"
	"github.com/spec-kit/press-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Profile        *handlers.ProfileHandler
	Articles       *handlers.ArticlesHandler
	Staff          *handlers.StaffHandler
	Store          *handlers.StoreHandler
	Site           *handlers.SiteHandler
	Careers        *handlers.CareersHandler
	AuthMiddleware *auth.Middleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Public reads carry no auth; the /me,
// /writer and /admin groups are each gated on their guarded surface.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics.Registry(), promhttp.HandlerOpts{})))

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	app.Get("/articles", cfg.Articles.List)
	app.Get("/articles/:id", cfg.Articles.Get)
	app.Get("/articles/:id/related", cfg.Articles.Related)

	app.Get("/staff", cfg.Staff.List)
	app.Get("/staff/:slug", cfg.Staff.Get)

	app.Get("/products", cfg.Store.List)
	app.Get("/videos", cfg.Site.ListVideos)
	app.Get("/pages", cfg.Site.ListPages)
	app.Get("/pages/:slug", cfg.Site.GetPage)

	app.Get("/careers/jobs", cfg.Careers.ListJobs)
	app.Post("/careers/jobs/:id/applications", cfg.Careers.Apply)

	me := app.Group("/me", cfg.AuthMiddleware.Handle, auth.RequireSurface(access.SurfaceOwnProfile))
	me.Get("/", cfg.Profile.Me)
	me.Put("/preferences", cfg.Profile.UpdatePreferences)
	me.Post("/password", cfg.Profile.ChangePassword)

	writer := app.Group("/writer", cfg.AuthMiddleware.Handle, auth.RequireSurface(access.SurfaceWriterTools))
	writer.Post("/articles", cfg.Articles.Save)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireSurface(access.SurfaceAdminDashboard))
	admin.Post("/articles", cfg.Articles.Save)
	admin.Delete("/articles/:id", cfg.Articles.Delete)

	admin.Get("/staff", cfg.Staff.AdminList)
	admin.Post("/staff", cfg.Staff.Save)
	admin.Delete("/staff/:slug", cfg.Staff.Delete)

	admin.Post("/products", cfg.Store.Save)
	admin.Delete("/products/:id", cfg.Store.Delete)

	admin.Post("/videos", cfg.Site.SaveVideo)
	admin.Delete("/videos/:id", cfg.Site.DeleteVideo)
	admin.Post("/pages", cfg.Site.SavePage)

	admin.Post("/jobs", cfg.Careers.SaveJob)
	admin.Delete("/jobs/:id", cfg.Careers.DeleteJob)
	admin.Get("/applications", cfg.Careers.ListApplications)
	admin.Put("/applications/:id/status", cfg.Careers.UpdateApplicationStatus)
}
