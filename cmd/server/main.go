package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-restaurant-service/config"
	"github.com/fekuna/omnipos-restaurant-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-restaurant-service/pkg/logger"

	authRepoPkg "github.com/fekuna/omnipos-restaurant-service/internal/auth/repository"
	authUCPkg "github.com/fekuna/omnipos-restaurant-service/internal/auth/usecase"

	menuRepoPkg "github.com/fekuna/omnipos-restaurant-service/internal/menu/repository"
	menuUCPkg "github.com/fekuna/omnipos-restaurant-service/internal/menu/usecase"

	invRepoPkg "github.com/fekuna/omnipos-restaurant-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-restaurant-service/internal/inventory/usecase"

	tableRepoPkg "github.com/fekuna/omnipos-restaurant-service/internal/table/repository"
	tableUCPkg "github.com/fekuna/omnipos-restaurant-service/internal/table/usecase"

	orderRepoPkg "github.com/fekuna/omnipos-restaurant-service/internal/order/repository"
	orderUCPkg "github.com/fekuna/omnipos-restaurant-service/internal/order/usecase"

	stateUCPkg "github.com/fekuna/omnipos-restaurant-service/internal/state/usecase"
	"github.com/fekuna/omnipos-restaurant-service/internal/ws"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	authRepo := authRepoPkg.NewPGRepository(db)
	menuRepo := menuRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)
	tableRepo := tableRepoPkg.NewPGRepository(db)
	orderRepo := orderRepoPkg.NewPGRepository(db)

	// 5. Initialize UseCases
	authUC := authUCPkg.NewAuthUseCase(authRepo, appLogger)
	menuUC := menuUCPkg.NewMenuUseCase(menuRepo, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, appLogger)
	tableUC := tableUCPkg.NewTableUseCase(tableRepo, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, tableRepo, appLogger)
	stateUC := stateUCPkg.NewStateUseCase(menuRepo, invRepo, tableRepo, orderRepo, appLogger)

	// 6. Start the broadcast hub
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := ws.NewHub(stateUC, appLogger)
	go hub.Run(ctx)

	wsHandler := ws.NewHandler(hub, authUC, menuUC, invUC, orderUC, tableUC, appLogger)

	// 7. HTTP router: websocket endpoint, health check, terminal assets
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/ws", ws.ServeWS(hub, wsHandler, appLogger))
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/*", http.FileServer(http.Dir(cfg.Server.StaticDir)))

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
	cancel()
	appLogger.Info("Server stopped")
}
