package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "github.com/maxHolsch/Deliberator/internal/infrastructure/cache/port"
	qport "github.com/maxHolsch/Deliberator/internal/infrastructure/queue/port"
	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/task"
	repoAdapter "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/adapter"
	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/presentation/controller"
)

// RegisterRoutes registers deliberation HTTP endpoints under the given
// router group. It constructs per-endpoint controllers and binds them
// directly to routes.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, cache cacheport.Cache, q qport.Client) {
	repo := repoAdapter.NewPgDeliberationRepository(pool)
	trigger := task.NewEnqueuer(q)

	g.POST("/dialogue", controller.NewCreateDialogueController(repo).Handle())
	g.POST("/dialogue/join", controller.NewJoinDialogueController(repo).Handle())
	g.GET("/dialogue/:code", controller.NewDialogueStateController(repo, cache).Handle())
	g.POST("/dialogue/:code/start", controller.NewStartDialogueController(repo).Handle())
	g.DELETE("/dialogue/:code", controller.NewCancelDialogueController(repo).Handle())
	g.POST("/dialogue/:code/response", controller.NewSubmitResponseController(repo, trigger).Handle())
	g.GET("/dialogue/:code/arguments", controller.NewListArgumentsController(repo).Handle())
	g.POST("/dialogue/:code/ratings", controller.NewRateArgumentsController(repo).Handle())
	g.GET("/dialogue/:code/results", controller.NewResultsController(repo).Handle())
}
