package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cacheport "github.com/maxHolsch/Deliberator/internal/infrastructure/cache/port"
	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/usecase"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// DialogueStateController serves the polling endpoint that waiting rooms and
// rating pages observe for state transitions.
type DialogueStateController struct {
	Repo  repository.DeliberationRepository
	Cache cacheport.Cache
}

func NewDialogueStateController(repo repository.DeliberationRepository, cache cacheport.Cache) *DialogueStateController {
	return &DialogueStateController{Repo: repo, Cache: cache}
}

func (h *DialogueStateController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")

		uc := usecase.NewGetDialogueStateUseCase(h.Repo, h.Cache)
		st, err := uc.Execute(c.Request.Context(), code)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, st)
	}
}
