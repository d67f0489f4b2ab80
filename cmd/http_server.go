package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bootesnull/hrportal/internal"
	"github.com/bootesnull/hrportal/internal/attendance"
	attendancePostgres "github.com/bootesnull/hrportal/internal/attendance/postgres"
	"github.com/bootesnull/hrportal/internal/auth"
	authPostgres "github.com/bootesnull/hrportal/internal/auth/postgres"
	"github.com/bootesnull/hrportal/internal/leave"
	leavePostgres "github.com/bootesnull/hrportal/internal/leave/postgres"
	"github.com/bootesnull/hrportal/internal/rbac"
	rbacPostgres "github.com/bootesnull/hrportal/internal/rbac/postgres"
	"github.com/bootesnull/hrportal/internal/transport"
	"github.com/bootesnull/hrportal/internal/transport/rest"
	"github.com/bootesnull/hrportal/internal/user"
	userPostgres "github.com/bootesnull/hrportal/internal/user/postgres"
	"github.com/bootesnull/hrportal/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := internal.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	lg := deps.Logger
	cfg := deps.Config

	tokenGenerator := auth.NewJWTTokenGenerator(
		cfg.Security.JWTAccessSecret,
		cfg.Security.JWTRefreshSecret,
		cfg.Security.AccessTokenDuration,
		cfg.Security.RefreshTokenDuration,
	)

	authRepo := authPostgres.NewRepository(deps.GormDB)
	authService := auth.NewService(authRepo, tokenGenerator, cfg.Security.BCryptCost)
	authHandler := auth.NewHandler(authService)

	baseHandler := transport.NewBaseHandler(lg)

	userRepo := userPostgres.NewUserRepository(deps.GormDB)
	rbacRepo := rbacPostgres.NewRBACRepository(deps.GormDB)
	rbacService := rbac.NewService(rbacRepo, userRepo, lg)
	rbacHandler := rbac.NewHandler(baseHandler, rbacService)

	authz := auth.NewRBACAuthorization(rbacService, lg)

	userService := user.NewService(userRepo, lg)
	userHandler := user.NewHandler(baseHandler, userService, rbacService)

	leaveRepo := leavePostgres.NewLeaveRepository(deps.GormDB)
	leaveService := leave.NewService(leaveRepo, lg)
	leaveHandler := leave.NewHandler(baseHandler, leaveService, cfg.Upload)

	attendanceRepo := attendancePostgres.NewAttendanceRepository(deps.GormDB)
	attendanceService := attendance.NewService(attendanceRepo, lg)
	attendanceHandler := attendance.NewHandler(baseHandler, attendanceService)

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		authHandler,
		authz,
		rbacHandler,
		userHandler,
		leaveHandler,
		attendanceHandler,
		cfg.Upload.DocumentDir,
		lg,
	)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm over db connection: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
