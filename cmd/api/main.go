package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"budgetwise/internal/config"
	"budgetwise/internal/database"
	"budgetwise/internal/handlers"
	"budgetwise/internal/logger"
	"budgetwise/internal/middleware"
	"budgetwise/internal/notify"
	"budgetwise/internal/services"
	"budgetwise/internal/snapshot"
	"budgetwise/internal/store"
	"budgetwise/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "budgetwise/internal/docs" // Import swagger docs
)

// @title           BudgetWise API
// @version         1.0
// @description     BudgetWise is a personal finance application for tracking transactions, managing monthly and custom budgets, and keeping both consistent as the ledger changes.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize snapshot database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Load the last snapshot into the in-memory store. A corrupt snapshot
	// aborts startup rather than silently starting empty.
	st := store.New()
	snapStore := snapshot.NewStore(dbManager.DB(), appConfig.SnapshotStorageKey)
	state, found, err := snapStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	st.Replace(state)
	if found {
		log.Infow("snapshot restored",
			"transactions", len(state.Transactions),
			"customBudgets", len(state.CustomBudgets),
		)
	}

	saver := snapshot.NewSaver(snapStore, st.State, appConfig.SnapshotDebounce)
	st.SetOnMutate(saver.MarkDirty)
	defer saver.Flush()

	// Register custom request validators
	validator.Register()

	// Initialize services. The HTTP surface auto-confirms destructive
	// operations; interactive confirmation belongs to a UI shell.
	confirmer := services.AutoConfirmer{}
	transactionService := services.NewTransactionService(st, confirmer)
	budgetService := services.NewBudgetService(st, confirmer)
	monthlyService := services.NewMonthlyService(st)
	transferService := services.NewTransferService(st)
	rolloverService := services.NewRolloverService(st, confirmer)
	recurringService := services.NewRecurringService(st)
	reminderService := services.NewReminderService(st, notify.LogScheduler{})
	featureService := services.NewFeatureService()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler()
	transactionHandler := handlers.NewTransactionHandler(transactionService, recurringService, featureService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, monthlyService, featureService)
	transferHandler := handlers.NewTransferHandler(transferService)
	rolloverHandler := handlers.NewRolloverHandler(rolloverService, featureService)
	exportHandler := handlers.NewExportHandler(st, featureService)
	reminderHandler := handlers.NewReminderHandler(reminderService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
	transactions.POST("/recurring/process", transactionHandler.ProcessRecurring)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.POST("/custom", budgetHandler.CreateCustomBudget)
	budgets.GET("/custom", budgetHandler.GetCustomBudgets)
	budgets.GET("/custom/:id", budgetHandler.GetCustomBudget)
	budgets.PUT("/custom/:id", budgetHandler.UpdateCustomBudget)
	budgets.DELETE("/custom/:id", budgetHandler.DeleteCustomBudget)
	budgets.POST("/custom/:id/pause", budgetHandler.PauseBudget)
	budgets.POST("/custom/:id/resume", budgetHandler.ResumeBudget)
	budgets.POST("/custom/:id/lock", budgetHandler.LockBudget)
	budgets.POST("/custom/:id/unlock", budgetHandler.UnlockBudget)
	budgets.POST("/custom/:id/archive", budgetHandler.ArchiveBudget)
	budgets.PUT("/monthly", budgetHandler.SetMonthlyLimit)
	budgets.GET("/monthly", budgetHandler.GetMonthlyLimits)
	budgets.GET("/monthly/summary", budgetHandler.GetMonthlySummary)
	budgets.DELETE("/monthly/:category", budgetHandler.DeleteMonthlyLimit)

	// Transfer routes
	transfers := protected.Group("/transfers")
	transfers.POST("", transferHandler.CreateTransfer)
	transfers.GET("", transferHandler.GetTransfers)

	// Rollover routes
	rollovers := protected.Group("/rollovers")
	rollovers.POST("/relationships", rolloverHandler.CreateRelationship)
	rollovers.GET("/relationships", rolloverHandler.GetRelationships)
	rollovers.DELETE("/relationships/:id", rolloverHandler.DeleteRelationship)
	rollovers.POST("/process", rolloverHandler.ProcessRollovers)

	// Export route
	protected.GET("/export", exportHandler.Export)

	// Reminder routes
	reminders := protected.Group("/reminders")
	reminders.POST("", reminderHandler.CreateReminder)
	reminders.GET("", reminderHandler.GetReminders)
	reminders.DELETE("/:id", reminderHandler.DeleteReminder)

	// Flush the pending snapshot on SIGINT/SIGTERM before exiting.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info("Shutting down, flushing snapshot")
		saver.Flush()
		logger.Sync()
		os.Exit(0)
	}()

	log.Infof("Starting BudgetWise backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
