package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/chinmay655/Managment-for-library/internal/adapters/smtp"
	portsrepo "github.com/chinmay655/Managment-for-library/internal/core/ports/repositories"
	"github.com/chinmay655/Managment-for-library/internal/core/services"
	"github.com/chinmay655/Managment-for-library/internal/dto"
	"github.com/chinmay655/Managment-for-library/internal/handlers"
	"github.com/chinmay655/Managment-for-library/internal/middleware"
	"github.com/chinmay655/Managment-for-library/internal/platform/config"
	"github.com/chinmay655/Managment-for-library/internal/repositories/memory"
	"github.com/chinmay655/Managment-for-library/internal/repositories/sqlite"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// User accounts live in SQLite; the library state itself is in-memory.
	userRepo, err := sqlite.NewUserRepository(cfg.UsersDBPath)
	if err != nil {
		logger.Error("Failed to open users database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := userRepo.Close(); cerr != nil {
			logger.Error("Error closing users database", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Users database opened", slog.String("path", cfg.UsersDBPath))

	repos := portsrepo.RepositoryProvider{
		CatalogRepo:    memory.NewCatalogRepository(),
		MemberRepo:     memory.NewMemberRepository(),
		AttendanceRepo: memory.NewAttendanceRepository(),
		TransactionLog: memory.NewTransactionRepository(),
		UserRepo:       userRepo,
	}
	container := services.NewServiceContainer(repos)

	if err := container.User.EnsureInitialAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Error("Failed to ensure initial admin user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.SMTPHost != "" {
		mailer := smtp.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPSender)
		services.AttachNotifications(container, mailer, cfg.LibraryName)
		logger.Info("Email notifications enabled", slog.String("host", cfg.SMTPHost))
	} else {
		logger.Info("SMTP_HOST not set, email notifications disabled")
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register custom request validations (membership types etc.)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidations(v); err != nil {
			logger.Error("Failed to register custom validations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
