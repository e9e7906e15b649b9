// Package api assembles the HTTP surface: routing, middleware, error mapping,
// and the Prometheus scrape endpoint.
package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bizgenie/bizgenie-api/docs"
	"github.com/bizgenie/bizgenie-api/internal/api/handler"
	"github.com/bizgenie/bizgenie-api/internal/api/middleware"
	"github.com/bizgenie/bizgenie-api/internal/core/domain"
	"github.com/bizgenie/bizgenie-api/internal/core/liveview"
	"github.com/bizgenie/bizgenie-api/internal/core/ports"
	"github.com/bizgenie/bizgenie-api/internal/core/service"
	"github.com/bizgenie/bizgenie-api/internal/core/session"
	bizmongo "github.com/bizgenie/bizgenie-api/internal/infrastructure/db/mongo"
	bizredis "github.com/bizgenie/bizgenie-api/internal/infrastructure/db/redis"
)

// Dependencies carries everything the router needs to assemble the service
// graph. Transport-agnostic pieces (feed, hub, generator, stores) are built by
// the caller so they can be shared with background workers.
type Dependencies struct {
	DB        *mongo.Database
	Redis     *redis.Client
	Feed      *session.Feed
	Hub       *liveview.Hub
	Generator ports.Generator
	FileStore ports.FileStore
	Notifier  ports.LeadNotifier
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bizgenie"))

	// --- Repositories ---
	identityRepo := bizmongo.NewIdentityRepository(deps.DB)
	leadRepo := bizmongo.NewLeadRepository(deps.DB)
	contentRepo := bizmongo.NewContentRepository(deps.DB)
	businessRepo := bizmongo.NewBusinessRepository(deps.DB)
	revocations := bizredis.NewRevocationStore(deps.Redis)

	// --- Services ---
	authService := service.NewAuthService(identityRepo, revocations, deps.Feed, deps.JWTSecret, deps.TokenTTL)
	leadService := service.NewLeadService(leadRepo, identityRepo, deps.Notifier, deps.Hub, deps.Logger)
	contentService := service.NewContentService(contentRepo, deps.Hub, deps.Logger)
	businessService := service.NewBusinessService(businessRepo, deps.FileStore, deps.Logger)
	teamService := service.NewTeamService(identityRepo, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	leadHandler := handler.NewLeadHandler(leadService)
	contentHandler := handler.NewContentHandler(contentService)
	generationHandler := handler.NewGenerationHandler(deps.Generator)
	businessHandler := handler.NewBusinessHandler(businessService)
	teamHandler := handler.NewTeamHandler(teamService)
	viewHandler := handler.NewViewHandler(businessService)
	streamHandler := handler.NewStreamHandler(deps.Feed, deps.Hub, leadService, contentService)

	authMW := middleware.Auth(deps.JWTSecret, revocations)
	adminOnly := middleware.RBAC(domain.RoleBusinessAdmin)
	platformOnly := middleware.RBAC(domain.RolePlatformAdmin)
	tenantRoles := middleware.RBAC(domain.RoleBusinessAdmin, domain.RoleAgent)

	// --- Public surface ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated surface ---
	v1 := e.Group("/v1", authMW)

	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/session/stream", streamHandler.Session)

	v1.GET("/views/current", viewHandler.Current)
	v1.GET("/views/tabs", viewHandler.Tabs)

	v1.GET("/leads", leadHandler.List)
	v1.GET("/leads/stream", streamHandler.Leads)
	v1.POST("/leads", leadHandler.Create, tenantRoles)
	v1.PATCH("/leads/:id/status", leadHandler.UpdateStatus, tenantRoles)
	v1.PATCH("/leads/:id/assign", leadHandler.Assign, adminOnly)

	v1.GET("/content", contentHandler.List)
	v1.GET("/content/stream", streamHandler.Content)
	v1.POST("/content", contentHandler.Save, tenantRoles)
	v1.PATCH("/content/:id/status", contentHandler.UpdateStatus, adminOnly)

	gen := v1.Group("/generate", tenantRoles)
	gen.POST("/text", generationHandler.Text)
	gen.POST("/image", generationHandler.Image)
	gen.POST("/audio", generationHandler.Audio)
	gen.POST("/video", generationHandler.Video)

	v1.POST("/business/onboarding", businessHandler.CompleteOnboarding, adminOnly)
	v1.GET("/business/profile", businessHandler.Profile, tenantRoles)
	v1.GET("/business/files", businessHandler.ListFiles, tenantRoles)
	v1.POST("/business/files", businessHandler.UploadFile, adminOnly)
	v1.DELETE("/business/files", businessHandler.RemoveFile, adminOnly)

	v1.GET("/team", teamHandler.Roster, tenantRoles)
	v1.POST("/team/invite", teamHandler.Invite, adminOnly)

	v1.GET("/admin/businesses", businessHandler.ListSummaries, platformOnly)

	return e
}
