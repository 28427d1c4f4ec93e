package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
)

// Router assembles the gin engine from the handlers and middleware.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	authMiddleware *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimitMiddleware

	authHandler      *handlers.AuthHandler
	magicLinkHandler *handlers.MagicLinkHandler
	userHandler      *handlers.UserHandler
	ticketHandler    *handlers.TicketHandler
	replyHandler     *handlers.ReplyHandler
	dashboardHandler *handlers.DashboardHandler
	noticeHandler    *handlers.NoticeHandler
}

func NewRouter(
	cfg *config.Config,
	log logger.Interface,
	authMiddleware *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	authHandler *handlers.AuthHandler,
	magicLinkHandler *handlers.MagicLinkHandler,
	userHandler *handlers.UserHandler,
	ticketHandler *handlers.TicketHandler,
	replyHandler *handlers.ReplyHandler,
	dashboardHandler *handlers.DashboardHandler,
	noticeHandler *handlers.NoticeHandler,
) *Router {
	return &Router{
		engine:           gin.New(),
		cfg:              cfg,
		logger:           log,
		authMiddleware:   authMiddleware,
		rateLimit:        rateLimit,
		authHandler:      authHandler,
		magicLinkHandler: magicLinkHandler,
		userHandler:      userHandler,
		ticketHandler:    ticketHandler,
		replyHandler:     replyHandler,
		dashboardHandler: dashboardHandler,
		noticeHandler:    noticeHandler,
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// uploaded attachments are served straight from disk
	r.engine.Static(r.cfg.Upload.BaseURL, r.cfg.Upload.Dir)

	api := r.engine.Group("/api")

	r.setupAuthRoutes(api)
	r.setupUserRoutes(api)
	r.setupTicketRoutes(api)
	r.setupDashboardRoutes(api)
	r.setupNoticeRoutes(api)
}

func (r *Router) setupAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")

	auth.POST("/register", r.authHandler.Register)
	auth.POST("/login", r.authHandler.Login)

	auth.GET("/open", r.magicLinkHandler.Open)
	auth.POST("/request-access", r.rateLimit.Limit("request-access"), r.magicLinkHandler.RequestAccess)
	auth.POST("/request-login-link", r.rateLimit.Limit("request-login-link"), r.magicLinkHandler.RequestLoginLink)
	auth.POST("/login-with-link", r.rateLimit.Limit("login-with-link"), r.magicLinkHandler.LoginWithLink)

	adminRequests := auth.Group("/admin/requests")
	adminRequests.Use(r.authMiddleware.RequireAuth(), r.authMiddleware.RequireAdmin())
	{
		adminRequests.GET("", r.magicLinkHandler.ListRequests)
		adminRequests.POST("/:id/approve", r.magicLinkHandler.ApproveRequest)
		adminRequests.POST("/:id/reject", r.magicLinkHandler.RejectRequest)
	}
}

func (r *Router) setupUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	users.Use(r.authMiddleware.RequireAuth())

	team := users.Group("")
	team.Use(r.authMiddleware.RequireTeam())
	{
		team.GET("/customers", r.userHandler.ListCustomers)
		team.GET("/team", r.userHandler.ListTeamMembers)
		team.GET("/assignees", r.userHandler.ListAssignees)
	}

	admin := users.Group("")
	admin.Use(r.authMiddleware.RequireAdmin())
	{
		admin.POST("/team", r.userHandler.CreateTeamMember)
		admin.PATCH("/:id/approve", r.userHandler.SetApproval)
	}

	users.PUT("/profile", r.userHandler.UpdateProfile)
	users.DELETE("/me", r.userHandler.DeleteMe)
}

func (r *Router) setupTicketRoutes(api *gin.RouterGroup) {
	tickets := api.Group("/tickets")
	tickets.Use(r.authMiddleware.RequireAuth())

	tickets.POST("", r.ticketHandler.Create)
	tickets.GET("/my", r.ticketHandler.ListMine)
	tickets.GET("/my/unread-counts", r.ticketHandler.MyUnreadCounts)
	tickets.GET("/:id", r.ticketHandler.Get)
	tickets.POST("/:id/read", r.ticketHandler.MarkRead)

	tickets.POST("/:id/replies", r.replyHandler.AddReply)
	tickets.PUT("/:id/replies/:replyId", r.replyHandler.EditReply)
	tickets.DELETE("/:id/replies/:replyId", r.replyHandler.DeleteReply)
	tickets.DELETE("/files/reply/:fileId", r.replyHandler.DeleteReplyFile)

	team := tickets.Group("")
	team.Use(r.authMiddleware.RequireTeam())
	{
		team.GET("", r.ticketHandler.ListAll)
		team.GET("/admin/unread-counts", r.ticketHandler.AdminUnreadCounts)
		team.PUT("/:id/assignee", r.ticketHandler.Assign)
		team.PATCH("/:id/status", r.ticketHandler.SetStatus)
		team.DELETE("/files/ticket/:fileId", r.ticketHandler.DeleteTicketFile)
	}
}

func (r *Router) setupDashboardRoutes(api *gin.RouterGroup) {
	dashboard := api.Group("/dashboard")
	dashboard.Use(r.authMiddleware.RequireAuth(), r.authMiddleware.RequireAdmin())
	{
		dashboard.GET("/stats", r.dashboardHandler.GetStats)
		dashboard.GET("/stats/trends", r.dashboardHandler.GetTrends)
		dashboard.POST("/auto-close", r.dashboardHandler.AutoClose)
	}
}

func (r *Router) setupNoticeRoutes(api *gin.RouterGroup) {
	notices := api.Group("/notices")

	notices.GET("", r.noticeHandler.List)
	notices.GET("/:id", r.noticeHandler.Get)

	admin := notices.Group("")
	admin.Use(r.authMiddleware.RequireAuth(), r.authMiddleware.RequireAdmin())
	{
		admin.POST("", r.noticeHandler.Create)
		admin.PUT("/:id", r.noticeHandler.Update)
		admin.DELETE("/:id", r.noticeHandler.Delete)
	}
}
