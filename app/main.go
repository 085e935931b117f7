package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/awptimizer/medium-api/internal/blogservice"
	"github.com/awptimizer/medium-api/internal/common"
	"github.com/awptimizer/medium-api/internal/tokenservice"
	"github.com/awptimizer/medium-api/internal/userservice"
)

type application struct {
	config       *Config
	logger       *slog.Logger
	validate     *validator.Validate
	tokenService *tokenservice.TokenService
	userService  *userservice.UserService
	blogService  *blogservice.BlogService
}

func main() {
	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the database
	db, err := common.NewDB(cfg.DatabaseURL, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	// Apply pending migrations when a source is configured
	if cfg.MigrationsURL != "" {
		err = common.MigrateDB(cfg.MigrationsURL, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Initialize the services
	app := &application{
		config:       cfg,
		logger:       logger,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		tokenService: tokenservice.New(cfg.JWTSecret),
		userService:  userservice.NewUserService(db),
		blogService:  blogservice.NewBlogService(db),
	}

	// Start the HTTP server
	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
