package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/skillswap/backend/api/handler"
)

type Handlers struct {
	Auth      *apiHandler.AuthHandler
	Directory *apiHandler.DirectoryHandler
	Profile   *apiHandler.ProfileHandler
	Swap      *apiHandler.SwapHandler
	Review    *apiHandler.ReviewHandler
	Admin     *apiHandler.AdminHandler
	Health    *apiHandler.HealthHandler
}

type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

func New(handlers Handlers, session, optionalSession, admin Middleware) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/signup", handlers.Auth.Signup)
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/logout", session(handlers.Auth.Logout))

	// Directory routes, open to anonymous browsing
	r.GET("/api/v1/users", optionalSession(handlers.Directory.List))
	r.GET("/api/v1/users/{id}", optionalSession(handlers.Directory.GetUser))
	r.GET("/api/v1/users/{id}/reviews", optionalSession(handlers.Directory.GetUserReviews))

	// Protected routes
	r.GET("/api/v1/profile", session(handlers.Profile.GetProfile))
	r.PUT("/api/v1/profile", session(handlers.Profile.UpdateProfile))

	r.POST("/api/v1/swaps", session(handlers.Swap.Propose))
	r.GET("/api/v1/swaps", session(handlers.Swap.List))
	r.GET("/api/v1/swaps/summary", session(handlers.Swap.Summary))
	r.POST("/api/v1/swaps/{id}/respond", session(handlers.Swap.Respond))
	r.POST("/api/v1/swaps/{id}/complete", session(handlers.Swap.Complete))
	r.DELETE("/api/v1/swaps/{id}", session(handlers.Swap.Cancel))

	r.POST("/api/v1/reviews", session(handlers.Review.Submit))

	// Admin routes
	r.GET("/api/v1/admin/report", session(admin(handlers.Admin.Report)))
	r.POST("/api/v1/admin/users/{id}/ban", session(admin(handlers.Admin.BanUser)))
	r.DELETE("/api/v1/admin/users/{id}", session(admin(handlers.Admin.DeleteUser)))

	return r
}
