package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	assetusecases "mangedesk/internal/application/asset/usecases"
	dashboardusecases "mangedesk/internal/application/dashboard/usecases"
	ticketusecases "mangedesk/internal/application/ticket/usecases"
	userusecases "mangedesk/internal/application/user/usecases"
	"mangedesk/internal/infrastructure/auth"
	"mangedesk/internal/infrastructure/config"
	"mangedesk/internal/infrastructure/email"
	"mangedesk/internal/infrastructure/ratelimit"
	"mangedesk/internal/infrastructure/repository"
	"mangedesk/internal/infrastructure/storage"
	"mangedesk/internal/infrastructure/token"
	assethandler "mangedesk/internal/interfaces/http/handlers/asset"
	dashboardhandler "mangedesk/internal/interfaces/http/handlers/dashboard"
	tickethandler "mangedesk/internal/interfaces/http/handlers/ticket"
	userhandler "mangedesk/internal/interfaces/http/handlers/user"
	"mangedesk/internal/interfaces/http/middleware"
	"mangedesk/internal/shared/db"
	"mangedesk/internal/shared/logger"
	"mangedesk/internal/shared/services/markdown"
	"mangedesk/internal/shared/utils"
)

// authRouteLimit caps login, registration and reset-mail attempts per IP.
var authRouteLimit = ratelimit.RateLimitConfig{
	RequestsPerMinute: 10,
	RequestsPerHour:   100,
	RequestsPerDay:    500,
}

type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	ticketHandler    *tickethandler.Handler
	assetHandler     *assethandler.Handler
	dashboardHandler *dashboardhandler.Handler
	userHandler      *userhandler.Handler

	authMiddleware *middleware.AuthMiddleware
	rateLimiter    ratelimit.RateLimiter
}

// NewRouter wires repositories, use cases and handlers over the shared
// database and redis connections.
func NewRouter(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client) *Router {
	log := logger.NewLogger()

	txManager := db.NewTransactionManager(gormDB)
	markdownSvc := markdown.NewService()
	fileStore := storage.NewFileStore(cfg.Storage.Root)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	resetTokens := token.NewResetTokenStore(redisClient, time.Duration(cfg.Auth.Token.ResetExpiresMinutes)*time.Minute)
	mailer := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Email.BaseURL,
	})

	ticketRepo := repository.NewTicketRepository(gormDB)
	historyRepo := repository.NewTicketHistoryRepository(gormDB)
	commentRepo := repository.NewTicketCommentRepository(gormDB)
	attachmentRepo := repository.NewTicketAttachmentRepository(gormDB)
	assetRepo := repository.NewAssetRepository(gormDB)
	assetHistoryRepo := repository.NewAssetHistoryRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	ticketHandler := tickethandler.NewHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, historyRepo, commentRepo, attachmentRepo, markdownSvc, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
		ticketusecases.NewUpdateTicketUseCase(ticketRepo, log),
		ticketusecases.NewChangeStatusUseCase(ticketRepo, historyRepo, txManager, log).WithNotifier(mailer, userRepo),
		ticketusecases.NewDeleteTicketUseCase(ticketRepo, txManager, log),
		ticketusecases.NewBulkDeleteTicketsUseCase(ticketRepo, txManager, log),
		ticketusecases.NewAssignResponsiblesUseCase(ticketRepo, userRepo, log),
		ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, markdownSvc, log),
		ticketusecases.NewAddAttachmentUseCase(ticketRepo, attachmentRepo, log),
		ticketusecases.NewExportTicketsUseCase(ticketRepo, log),
		fileStore,
	)

	assetHandler := assethandler.NewHandler(
		assetusecases.NewCreateAssetUseCase(assetRepo, assetHistoryRepo, txManager, log),
		assetusecases.NewGetAssetUseCase(assetRepo, assetHistoryRepo, log),
		assetusecases.NewListAssetsUseCase(assetRepo, log),
		assetusecases.NewUpdateAssetUseCase(assetRepo, assetHistoryRepo, txManager, log),
		assetusecases.NewDeleteAssetUseCase(assetRepo, txManager, log),
		assetusecases.NewRecordMovementUseCase(assetRepo, assetHistoryRepo, log),
	)

	dashboardHandler := dashboardhandler.NewHandler(
		dashboardusecases.NewGetDashboardUseCase(ticketRepo, log),
	)

	userHandler := userhandler.NewHandler(
		userusecases.NewRegisterUserUseCase(userRepo, hasher, log),
		userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log),
		userusecases.NewRequestPasswordResetUseCase(userRepo, resetTokens, mailer, log),
		userusecases.NewResetPasswordUseCase(userRepo, resetTokens, hasher, log),
		userusecases.NewGetUserUseCase(userRepo, log),
		userusecases.NewListUsersUseCase(userRepo, log),
		userusecases.NewDeleteUserUseCase(userRepo, txManager, log),
	)

	gin.SetMode(cfg.Server.Mode)

	return &Router{
		engine:           gin.New(),
		cfg:              cfg,
		logger:           log,
		ticketHandler:    ticketHandler,
		assetHandler:     assetHandler,
		dashboardHandler: dashboardHandler,
		userHandler:      userHandler,
		authMiddleware:   middleware.NewAuthMiddleware(jwtService, log),
		rateLimiter:      ratelimit.NewRedisRateLimiter(redisClient),
	}
}

// SetupRoutes configures middleware and all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.Logging(r.logger))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "ok", nil)
	})

	r.engine.Static("/uploads", r.cfg.Storage.Root)

	r.setupAuthRoutes()
	r.setupTicketRoutes()
	r.setupAssetRoutes()
	r.setupDashboardRoutes()
	r.setupUserRoutes()
}

func (r *Router) setupAuthRoutes() {
	limit := middleware.RateLimit(r.rateLimiter, authRouteLimit, r.logger)

	authGroup := r.engine.Group("/auth")
	{
		authGroup.POST("/register", limit, r.userHandler.Register)
		authGroup.POST("/login", limit, r.userHandler.Login)
		authGroup.POST("/forgot-password", limit, r.userHandler.RequestPasswordReset)
		authGroup.POST("/reset-password", limit, r.userHandler.ResetPassword)
	}
}

func (r *Router) setupTicketRoutes() {
	tickets := r.engine.Group("/tickets")
	tickets.Use(r.authMiddleware.OptionalAuth())
	{
		tickets.GET("", r.ticketHandler.List)
		tickets.GET("/export", r.ticketHandler.Export)
		tickets.GET("/:id", r.ticketHandler.Get)
	}

	authed := r.engine.Group("/tickets")
	authed.Use(r.authMiddleware.RequireAuth())
	{
		authed.POST("", r.ticketHandler.Create)
		authed.PUT("/:id", r.ticketHandler.Update)
		authed.PATCH("/:id/status", r.ticketHandler.ChangeStatus)
		authed.DELETE("/:id", r.ticketHandler.Delete)
		authed.POST("/bulk-delete", r.ticketHandler.BulkDelete)
		authed.POST("/:id/responsibles", r.ticketHandler.AssignResponsibles)
		authed.POST("/:id/comments", r.ticketHandler.AddComment)
		authed.POST("/:id/attachments", r.ticketHandler.AddAttachment)
	}
}

func (r *Router) setupAssetRoutes() {
	assets := r.engine.Group("/assets")
	assets.Use(r.authMiddleware.OptionalAuth())
	{
		assets.GET("", r.assetHandler.List)
		assets.GET("/:id", r.assetHandler.Get)
		assets.GET("/code/:code", r.assetHandler.GetByCode)
	}

	authed := r.engine.Group("/assets")
	authed.Use(r.authMiddleware.RequireAuth())
	{
		authed.POST("", r.assetHandler.Create)
		authed.PUT("/:id", r.assetHandler.Update)
		authed.DELETE("/:id", r.assetHandler.Delete)
		authed.POST("/:id/movements", r.assetHandler.RecordMovement)
	}
}

func (r *Router) setupDashboardRoutes() {
	r.engine.GET("/dashboard", r.authMiddleware.OptionalAuth(), r.dashboardHandler.Get)
}

func (r *Router) setupUserRoutes() {
	users := r.engine.Group("/users")
	users.Use(r.authMiddleware.RequireAuth())
	{
		users.GET("", r.userHandler.List)
		users.GET("/:id", r.userHandler.Get)
		users.DELETE("/:id", r.userHandler.Delete)
	}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
