package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/maxHolsch/Deliberator/internal/infrastructure/cache/port"
	qport "github.com/maxHolsch/Deliberator/internal/infrastructure/queue/port"
	httpHandler "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/presentation/http"
)

// RegisterRoutes mounts all version 1 API routes under /api/v1
func RegisterRoutes(r *gin.Engine, pool *pgxpool.Pool, cache cacheport.Cache, q qport.Client) {
	v1 := r.Group("/api/v1")
	// Pass the DB connection, cache and queue client down to the HTTP layer
	httpHandler.RegisterRoutes(v1, pool, cache, q)
}
