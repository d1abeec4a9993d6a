package main

import (
	"SWJTUCTF/config"
	"SWJTUCTF/database"
	"SWJTUCTF/routes"
	"SWJTUCTF/services"
	"SWJTUCTF/stores"
	"SWJTUCTF/utils"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	seed, err := loadSeed(cfg, logger)
	if err != nil {
		return err
	}

	users := stores.NewUserStore(cfg.Auth.BcryptCost)
	for i, u := range seed.Users {
		if i < len(seed.UserPasswords) {
			_, err = users.Add(u, seed.UserPasswords[i])
		} else {
			_, err = users.Put(u)
		}
		if err != nil {
			return err
		}
	}
	contests := stores.NewContestStore(seed.Contests)
	teams := stores.NewTeamStore(seed.Teams, nil)
	challenges := stores.NewChallengeStore(seed.Challenges)

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = database.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		logger.Info("redis connection established", zap.String("addr", cfg.Redis.Addr))
	}
	cache := services.NewContestCache(rdb, cfg.Redis.CacheTTL, logger)

	var launcher services.ContainerLauncher = services.NewMockLauncher(cfg.Container.Host)
	if cfg.Container.DockerEnabled {
		docker, err := services.NewDockerLauncher(ctx, services.DockerOptions{
			Host:             cfg.Container.Host,
			PullImages:       cfg.Container.PullImages,
			RegistryUser:     cfg.Container.RegistryUser,
			RegistryPassword: cfg.Container.RegistryPassword,
			RegistryServer:   cfg.Container.RegistryServer,
		}, logger)
		if err != nil {
			return err
		}
		defer docker.Close()
		launcher = docker
	}
	containers := services.NewContainerService(challenges, launcher, cfg.Container.TTL, cfg.Container.FlagPrefix, logger)
	go containers.Run(ctx, cfg.Container.ReapInterval)

	gin.SetMode(cfg.Server.GinMode)
	router := routes.SetupRouter(routes.Deps{
		Contests:   contests,
		Teams:      teams,
		Challenges: challenges,
		Users:      users,
		Containers: containers,
		Cache:      cache,
		JWTSecret:  []byte(cfg.Auth.JWTSecret),
		TokenTTL:   cfg.Auth.JWTTTL,
		Logger:     logger,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

// loadSeed 配置了 DB_DSN 时从 MySQL 读取初始数据，否则使用内置数据
func loadSeed(cfg *config.Config, logger *zap.Logger) (services.Seed, error) {
	if cfg.Database.DSN == "" {
		logger.Info("DB_DSN not set, using built-in seed data")
		return services.MockSeed(), nil
	}

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return services.Seed{}, err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("close database failed", zap.Error(err))
		}
	}()
	logger.Info("database connection established")

	if err := database.MigrateTables(db); err != nil {
		return services.Seed{}, err
	}
	return services.LoadSeed(db, logger)
}
