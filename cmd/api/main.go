package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	v1 "github.com/maxHolsch/Deliberator/cmd/api/router/v1"
	cacheAdapter "github.com/maxHolsch/Deliberator/internal/infrastructure/cache/adapter"
	"github.com/maxHolsch/Deliberator/internal/infrastructure/database"
	"github.com/maxHolsch/Deliberator/internal/infrastructure/logging"
	queueAdapter "github.com/maxHolsch/Deliberator/internal/infrastructure/queue/adapter"
	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/analysis"
	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/task"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found or could not be loaded", "err", err)
	}

	logging.Init(slog.LevelInfo, os.Getenv("LOG_FORMAT"))
	log := logging.New("api")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to the database on startup
	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := database.NewPoolFromEnv(connectCtx)
	if err != nil {
		log.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	cache, err := cacheAdapter.NewRedisAdapter()
	if err != nil {
		log.Error("failed to connect to redis", "err", err)
		os.Exit(1)
	}
	defer cache.Close()

	qClient, err := queueAdapter.NewAsynqClientFromEnv()
	if err != nil {
		log.Error("failed to create queue client", "err", err)
		os.Exit(1)
	}
	defer qClient.Close()

	gen, err := analysis.NewOpenAIGeneratorFromEnv()
	if err != nil {
		log.Error("failed to create text generator", "err", err)
		os.Exit(1)
	}

	// Run the pipeline worker alongside the API so consolidation tasks are
	// picked up without a separate process.
	qServer, err := queueAdapter.NewAsynqServer()
	if err != nil {
		log.Error("failed to create queue server", "err", err)
		os.Exit(1)
	}
	task.RegisterConsolidateTask(qServer, pool, gen)
	go func() {
		if err := qServer.Run(ctx); err != nil {
			log.Error("queue server stopped", "err", err)
		}
	}()

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	v1.RegisterRoutes(r, pool, cache, qClient)

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}

	log.Info("listening", "addr", addr)
	// Start HTTP server (blocks until shutdown)
	if err := r.Run(addr); err != nil {
		log.Error("http server stopped", "err", err)
		os.Exit(1)
	}
}
