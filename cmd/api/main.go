package main

// @title AgencyDesk API
// @version 1.0
// @description Agency operations backend: clients, leads, requirements, submissions and files.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/agencydesk/agencydesk/docs" // Swagger docs (generated)

	"github.com/agencydesk/agencydesk/config"
	"github.com/agencydesk/agencydesk/pkg/api/handlers"
	custommw "github.com/agencydesk/agencydesk/pkg/api/middleware"
	"github.com/agencydesk/agencydesk/pkg/auth"
	"github.com/agencydesk/agencydesk/pkg/cache"
	"github.com/agencydesk/agencydesk/pkg/clients"
	"github.com/agencydesk/agencydesk/pkg/database"
	"github.com/agencydesk/agencydesk/pkg/email"
	"github.com/agencydesk/agencydesk/pkg/export"
	"github.com/agencydesk/agencydesk/pkg/feedback"
	"github.com/agencydesk/agencydesk/pkg/files"
	"github.com/agencydesk/agencydesk/pkg/jobs"
	"github.com/agencydesk/agencydesk/pkg/leadimport"
	"github.com/agencydesk/agencydesk/pkg/leads"
	"github.com/agencydesk/agencydesk/pkg/metrics"
	custommiddleware "github.com/agencydesk/agencydesk/pkg/middleware"
	"github.com/agencydesk/agencydesk/pkg/notify"
	"github.com/agencydesk/agencydesk/pkg/queries"
	"github.com/agencydesk/agencydesk/pkg/storage"
	"github.com/agencydesk/agencydesk/pkg/submissions"
	"github.com/agencydesk/agencydesk/pkg/tasks"
	"github.com/agencydesk/agencydesk/pkg/users"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClientWithPool(cfg.DatabaseURL, database.DefaultPoolConfig())
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Feed the connection pool gauge
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			prometheusMetrics.UpdateDBConnections(float64(db.Stats().OpenConnections))
		}
	}()

	// Initialize JWT blacklist
	tokenBlacklist := auth.NewTokenBlacklist(redisClient)

	// Initialize email service
	emailService := email.NewService(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.FrontendURL,
		cfg.SendGridAPIKey,
	)

	// Magic-link webhook notifier (optional)
	webhookService := notify.NewWebhookService(cfg.MagicLinkWebhookURL)

	// Initialize S3 storage for file uploads
	ctx := context.Background()
	s3Service, err := storage.NewS3Service(ctx, cfg.AWSRegion, cfg.AWSEndpointURL,
		cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, cfg.S3Bucket)
	if err != nil {
		log.Fatalf("❌ Failed to initialize S3 storage: %v", err)
	}
	log.Printf("✅ S3 storage initialized (bucket: %s)", cfg.S3Bucket)

	// Initialize services
	clientService := clients.NewService(db.Ent)
	leadService := leads.NewService(db.Ent)
	importService := leadimport.NewCSVImportService(db.Ent)
	exportService := export.NewService(leadService)
	taskService := tasks.NewService(db.Ent)
	queryService := queries.NewService(db.Ent)
	submissionService := submissions.NewService(db.Ent, emailService)
	feedbackService := feedback.NewService(db.Ent)
	fileService := files.NewService(db.Ent, s3Service)
	userService := users.NewService(db.Ent)
	log.Printf("✅ Services initialized")

	// Initialize cron manager for housekeeping jobs
	cronManager := jobs.NewCronManager(db.Ent, fileService, cfg.FileRetentionDays, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg, tokenBlacklist, emailService, webhookService, prometheusMetrics)
	clientHandler := handlers.NewClientHandler(clientService)
	leadHandler := handlers.NewLeadHandler(leadService, importService, exportService, prometheusMetrics)
	taskHandler := handlers.NewTaskHandler(taskService, prometheusMetrics)
	queryHandler := handlers.NewQueryHandler(queryService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService, prometheusMetrics)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	fileHandler := handlers.NewFileHandler(fileService, prometheusMetrics)
	userHandler := handlers.NewUserHandler(userService)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)      // 5 req/min for login
	magicLinkRateLimiter := custommiddleware.NewRateLimiter(3, 1) // 3 req/min for magic links

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.FrontendURL)))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())

	// Global rate limiting
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 routes
	v1 := e.Group("/api/v1")

	tokenManager := auth.NewManager(cfg.JWTSecret, cfg.JWTExpirationHours)
	jwtRequired := custommw.JWTMiddlewareWithBlacklist(tokenManager, tokenBlacklist, db.Ent)

	// Authentication routes (public)
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/client-access", authHandler.ClientAccess, authRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/magic-link", authHandler.RequestMagicLink, magicLinkRateLimiter.RateLimitMiddleware())
		authRoutes.GET("/magic-link/:token", authHandler.VerifyMagicLink)
		authRoutes.POST("/set-password", authHandler.SetPassword, authRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/logout", authHandler.Logout, jwtRequired)
		authRoutes.GET("/me", authHandler.Me, jwtRequired)
	}

	// Protected routes (require JWT with blacklist validation)
	protected := v1.Group("")
	protected.Use(jwtRequired)
	{
		// Client registry (staff only; create/delete restricted to admins)
		clientsGroup := protected.Group("/clients")
		clientsGroup.Use(custommiddleware.RequireStaff(db.Ent))
		{
			clientsGroup.POST("", clientHandler.Create, custommiddleware.RequireAdmin(db.Ent))
			clientsGroup.GET("", clientHandler.List)
			clientsGroup.GET("/:id", clientHandler.Get)
			clientsGroup.PATCH("/:id", clientHandler.Update)
			clientsGroup.DELETE("/:id", clientHandler.Delete, custommiddleware.RequireAdmin(db.Ent))
		}

		// Lead pipeline (staff only; assignment, import and export are admin operations)
		leadsGroup := protected.Group("/leads")
		leadsGroup.Use(custommiddleware.RequireStaff(db.Ent))
		{
			leadsGroup.POST("", leadHandler.Create)
			leadsGroup.GET("", leadHandler.List)
			leadsGroup.GET("/export", leadHandler.Export, custommiddleware.RequireAdmin(db.Ent))
			leadsGroup.POST("/import", leadHandler.Import, custommiddleware.RequireAdmin(db.Ent))
			leadsGroup.POST("/assign", leadHandler.Assign, custommiddleware.RequireAdmin(db.Ent))
			leadsGroup.GET("/:id", leadHandler.Get)
			leadsGroup.PATCH("/:id/status", leadHandler.UpdateStatus, custommiddleware.RequireAdmin(db.Ent))
			leadsGroup.PATCH("/:id/assignment-status", leadHandler.UpdateAssignmentStatus)
			leadsGroup.POST("/:id/activities", leadHandler.LogActivity)
			leadsGroup.GET("/:id/timeline", leadHandler.Timeline)
			leadsGroup.POST("/:id/notes", leadHandler.AddNote)
			leadsGroup.GET("/:id/notes", leadHandler.ListNotes)
		}

		// Requirement / task tree (staff only)
		requirementsGroup := protected.Group("/requirements")
		requirementsGroup.Use(custommiddleware.RequireStaff(db.Ent))
		{
			requirementsGroup.POST("", taskHandler.CreateRequirement)
			requirementsGroup.GET("", taskHandler.ListRequirements)
			requirementsGroup.GET("/:id", taskHandler.GetRequirement)
			requirementsGroup.PATCH("/:id", taskHandler.UpdateRequirement)
		}

		tasksGroup := protected.Group("/tasks")
		tasksGroup.Use(custommiddleware.RequireStaff(db.Ent))
		{
			tasksGroup.POST("", taskHandler.AddTask)
			tasksGroup.GET("", taskHandler.ListTasks)
			tasksGroup.GET("/:id", taskHandler.GetTask)
			tasksGroup.PATCH("/:id", taskHandler.UpdateTask)
			tasksGroup.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
			tasksGroup.POST("/:id/subtasks", taskHandler.AddSubtask)
			tasksGroup.PATCH("/:id/subtasks/:subtask_id", taskHandler.ToggleSubtask)
			tasksGroup.DELETE("/:id/subtasks/:subtask_id", taskHandler.RemoveSubtask)
			tasksGroup.POST("/:id/assign", taskHandler.AssignTask, custommiddleware.RequireAdmin(db.Ent))
			tasksGroup.POST("/:id/request-assignment", taskHandler.RequestAssignment)
		}

		// Query threads (all authenticated users, clients included)
		queriesGroup := protected.Group("/queries")
		{
			queriesGroup.POST("", queryHandler.Create)
			queriesGroup.GET("", queryHandler.List)
			queriesGroup.GET("/:id", queryHandler.Get)
			queriesGroup.PATCH("/:id/status", queryHandler.SetStatus)
			queriesGroup.POST("/:id/messages", queryHandler.SendMessage)
			queriesGroup.GET("/:id/messages", queryHandler.ListMessages)
			queriesGroup.PATCH("/:id/messages/:message_id", queryHandler.EditMessage)
		}

		// Submission workflow (review authz enforced in the service layer)
		submissionsGroup := protected.Group("/submissions")
		{
			submissionsGroup.POST("", submissionHandler.Create, custommiddleware.RequireStaff(db.Ent))
			submissionsGroup.GET("", submissionHandler.List)
			submissionsGroup.GET("/:id", submissionHandler.Get)
			submissionsGroup.POST("/:id/start-review", submissionHandler.StartReview)
			submissionsGroup.POST("/:id/review", submissionHandler.Review)
			submissionsGroup.PATCH("/:id/changes/:change_id", submissionHandler.ToggleChange)
		}

		// Feedback
		feedbackGroup := protected.Group("/feedback")
		{
			feedbackGroup.POST("", feedbackHandler.Create)
			feedbackGroup.GET("", feedbackHandler.List)
			feedbackGroup.GET("/:id", feedbackHandler.Get)
			feedbackGroup.GET("/summary/:client_id", feedbackHandler.Summary)
		}

		// File registry
		filesGroup := protected.Group("/files")
		{
			filesGroup.POST("/upload-url", fileHandler.UploadURL)
			filesGroup.POST("", fileHandler.Register)
			filesGroup.GET("", fileHandler.List)
			filesGroup.GET("/:id", fileHandler.Get)
			filesGroup.POST("/:id/copy", fileHandler.Copy)
			filesGroup.DELETE("/:id", fileHandler.Delete)
		}

		// Admin routes (require admin role)
		adminGroup := protected.Group("/admin")
		adminGroup.Use(custommiddleware.RequireAdmin(db.Ent))
		{
			adminGroup.POST("/users", userHandler.Create)
			adminGroup.GET("/users", userHandler.List)
			adminGroup.GET("/users/:id", userHandler.Get)
			adminGroup.PATCH("/users/:id", userHandler.Update)
			adminGroup.DELETE("/users/:id", userHandler.Delete)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 AgencyDesk API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("🔒 Auth endpoints: login (5/min), magic-link (3/min)")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
