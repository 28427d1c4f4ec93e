package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	accessrequestUC "helpdesk/internal/application/accessrequest/usecases"
	dashboardUC "helpdesk/internal/application/dashboard/usecases"
	noticeUC "helpdesk/internal/application/notice/usecases"
	ticketUC "helpdesk/internal/application/ticket/usecases"
	userUC "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/blob"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/scheduler"
	httpRouter "helpdesk/internal/interfaces/http"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the helpdesk HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database auto-migration on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ginMode := mapEnvToGinMode(env)
	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, ginMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env, "auto-migrate", autoMigrate)

	gin.SetMode(ginMode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			log.Warnw("auto-migration is enabled in production environment")
		}
		if err := migration.AutoMigrate(database.Get()); err != nil {
			log.Fatalw("auto-migration failed", "error", err)
		}
		log.Infow("auto-migration completed")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	blobStore, err := blob.NewLocalStore(cfg.Upload.Dir, cfg.Upload.BaseURL)
	if err != nil {
		log.Fatalw("failed to initialize upload store", "error", err)
	}

	notifier := email.NewSMTPNotifier(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		FrontendURL: cfg.Server.FrontendURL,
	})

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpHours)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	markdownService := markdown.NewService()

	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	requestRepo := repository.NewAccessRequestRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	replyRepo := repository.NewReplyRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	readRepo := repository.NewTicketReadRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	registerUseCase := userUC.NewRegisterUseCase(userRepo, hasher, log)
	loginUseCase := userUC.NewLoginUseCase(userRepo, hasher, jwtService, log)
	createTeamMemberUseCase := userUC.NewCreateTeamMemberUseCase(userRepo, hasher, log)
	setApprovalUseCase := userUC.NewSetApprovalUseCase(userRepo, notifier, log)
	updateProfileUseCase := userUC.NewUpdateProfileUseCase(userRepo, log)
	deleteAccountUseCase := userUC.NewDeleteAccountUseCase(userRepo, log)
	listUsersUseCase := userUC.NewListUsersUseCase(userRepo, log)

	requestAccessUseCase := accessrequestUC.NewRequestAccessUseCase(requestRepo, userRepo, notifier, log)
	approveRequestUseCase := accessrequestUC.NewApproveRequestUseCase(
		requestRepo,
		userRepo,
		notifier,
		auth.GenerateMagicToken,
		log,
		cfg.Auth.MagicLink.ApprovalExpiryYears,
		cfg.Server.FrontendURL,
	)
	rejectRequestUseCase := accessrequestUC.NewRejectRequestUseCase(requestRepo, notifier, log)
	requestLoginLinkUseCase := accessrequestUC.NewRequestLoginLinkUseCase(
		requestRepo,
		notifier,
		auth.GenerateMagicToken,
		log,
		cfg.Auth.MagicLink.LoginExpiryMinutes,
		cfg.Server.FrontendURL,
	)
	redeemMagicLinkUseCase := accessrequestUC.NewRedeemMagicLinkUseCase(
		requestRepo,
		userRepo,
		jwtService,
		log,
		cfg.Auth.MagicLink.SingleUse,
	)
	listRequestsUseCase := accessrequestUC.NewListRequestsUseCase(requestRepo, log)

	createTicketUseCase := ticketUC.NewCreateTicketUseCase(ticketRepo, attachmentRepo, userRepo, blobStore, notifier, log)
	getTicketUseCase := ticketUC.NewGetTicketUseCase(ticketRepo, replyRepo, attachmentRepo, userRepo, log)
	listTicketsUseCase := ticketUC.NewListTicketsUseCase(ticketRepo, log)
	assignTicketUseCase := ticketUC.NewAssignTicketUseCase(ticketRepo, log)
	changeStatusUseCase := ticketUC.NewChangeStatusUseCase(ticketRepo, notifier, log)
	markReadUseCase := ticketUC.NewMarkReadUseCase(ticketRepo, readRepo, log)
	unreadCountsUseCase := ticketUC.NewUnreadCountsUseCase(readRepo, log)
	addReplyUseCase := ticketUC.NewAddReplyUseCase(ticketRepo, replyRepo, attachmentRepo, blobStore, log)
	editReplyUseCase := ticketUC.NewEditReplyUseCase(replyRepo, log)
	deleteReplyUseCase := ticketUC.NewDeleteReplyUseCase(replyRepo, attachmentRepo, blobStore, log)
	deleteReplyFileUseCase := ticketUC.NewDeleteReplyFileUseCase(replyRepo, attachmentRepo, blobStore, log)
	deleteTicketFileUseCase := ticketUC.NewDeleteTicketFileUseCase(attachmentRepo, blobStore, log)
	autoCloseUseCase := ticketUC.NewAutoCloseUseCase(ticketRepo, replyRepo, notifier, log, cfg.Scheduler.AutoCloseAfterDay)

	getStatsUseCase := dashboardUC.NewGetStatsUseCase(statsRepo, statsRepo, log)
	getTrendUseCase := dashboardUC.NewGetTrendUseCase(statsRepo, log)

	createNoticeUseCase := noticeUC.NewCreateNoticeUseCase(noticeRepo, log)
	updateNoticeUseCase := noticeUC.NewUpdateNoticeUseCase(noticeRepo, log)
	deleteNoticeUseCase := noticeUC.NewDeleteNoticeUseCase(noticeRepo, log)
	getNoticeUseCase := noticeUC.NewGetNoticeUseCase(noticeRepo, markdownService, log)
	listNoticesUseCase := noticeUC.NewListNoticesUseCase(noticeRepo, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(
		ratelimit.NewRedisRateLimiter(redisClient),
		ratelimit.RateLimitConfig{RequestsPerMinute: 5, RequestsPerHour: 20},
		log,
	)

	authHandler := handlers.NewAuthHandler(registerUseCase, loginUseCase, log)
	magicLinkHandler := handlers.NewMagicLinkHandler(
		requestAccessUseCase,
		approveRequestUseCase,
		rejectRequestUseCase,
		requestLoginLinkUseCase,
		redeemMagicLinkUseCase,
		listRequestsUseCase,
		cfg.Server.FrontendURL,
		log,
	)
	userHandler := handlers.NewUserHandler(
		createTeamMemberUseCase,
		setApprovalUseCase,
		updateProfileUseCase,
		deleteAccountUseCase,
		listUsersUseCase,
		log,
	)
	ticketHandler := handlers.NewTicketHandler(
		createTicketUseCase,
		getTicketUseCase,
		listTicketsUseCase,
		assignTicketUseCase,
		changeStatusUseCase,
		markReadUseCase,
		unreadCountsUseCase,
		deleteTicketFileUseCase,
		log,
	)
	replyHandler := handlers.NewReplyHandler(
		addReplyUseCase,
		editReplyUseCase,
		deleteReplyUseCase,
		deleteReplyFileUseCase,
		log,
	)
	dashboardHandler := handlers.NewDashboardHandler(getStatsUseCase, getTrendUseCase, autoCloseUseCase, log)
	noticeHandler := handlers.NewNoticeHandler(
		createNoticeUseCase,
		updateNoticeUseCase,
		deleteNoticeUseCase,
		getNoticeUseCase,
		listNoticesUseCase,
		log,
	)

	router := httpRouter.NewRouter(
		cfg,
		log,
		authMiddleware,
		rateLimitMiddleware,
		authHandler,
		magicLinkHandler,
		userHandler,
		ticketHandler,
		replyHandler,
		dashboardHandler,
		noticeHandler,
	)
	router.SetupRoutes()

	if cfg.Scheduler.AutoCloseEnabled {
		schedulerManager, err := scheduler.NewSchedulerManager(log)
		if err != nil {
			log.Fatalw("failed to initialize scheduler", "error", err)
		}
		if err := schedulerManager.RegisterAutoCloseJob(autoCloseUseCase, cfg.Scheduler.IntervalHours); err != nil {
			log.Fatalw("failed to register auto-close job", "error", err)
		}
		schedulerManager.Start()
		defer func() {
			if err := schedulerManager.Stop(); err != nil {
				log.Errorw("failed to stop scheduler", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", ginMode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
