package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adaptivekitchen/studio-site/blog/application"
	"github.com/adaptivekitchen/studio-site/blog/domain"
	"github.com/adaptivekitchen/studio-site/blog/persistence"
	"github.com/adaptivekitchen/studio-site/internal/config"
	"github.com/adaptivekitchen/studio-site/internal/middleware"
	"github.com/adaptivekitchen/studio-site/internal/rest"
	"github.com/adaptivekitchen/studio-site/marketing"
	"github.com/adaptivekitchen/studio-site/shared/db/sqlite"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.Load()

	store, cleanup := newStore(cfg)
	if cleanup != nil {
		defer cleanup()
	}

	var serviceOpts []application.Option
	if !cfg.StaticFallback {
		serviceOpts = append(serviceOpts, application.WithStrictReads())
	}
	postService := application.NewPostService(store, serviceOpts...)

	imageStore := persistence.NewDiskImageStore(cfg.UploadDir)

	var sink marketing.SignupSink
	if cfg.SheetsWebhookURL != "" {
		sink = marketing.NewSheetsClient(cfg.SheetsWebhookURL)
	} else {
		sink = marketing.NewFileSink(cfg.SignupLogPath)
	}

	router := gin.New()
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))
	router.Use(cors.New(corsConfig(cfg)))
	router.Static("/uploads", cfg.UploadDir)

	rest.RegisterRoutes(
		router,
		rest.NewPostsHandler(postService),
		rest.NewSubscribeHandler(sink),
		rest.NewUploadHandler(imageStore, cfg.MaxUploadBytes),
		cfg.AdminToken,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.StoreBackend).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}

// newStore builds the PostStore selected by configuration, along with a
// cleanup function for backends that hold connections.
func newStore(cfg config.Config) (domain.PostStore, func()) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid REDIS_URL")
		}
		client := redis.NewClient(opts)
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to redis")
		}
		return persistence.NewRedisStore(client), func() {
			if err := client.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close redis client")
			}
		}

	case config.BackendSQLite:
		database := sqlite.NewSQLiteDB(&sqlite.SQLiteConfig{Path: cfg.SQLitePath})
		if err := database.Connect(); err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		return persistence.NewSQLiteStore(database.DB()), func() {
			if err := database.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close database")
			}
		}

	case config.BackendMemory:
		return persistence.NewMemoryStore(), nil

	default:
		return persistence.NewFileStore(cfg.DataFile), nil
	}
}

func corsConfig(cfg config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}

	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return corsCfg
}
