package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/usecase"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// ResultsController serves the ranked top arguments of a dialogue.
// An empty list is a valid outcome (fewer than three participants, or no
// rated arguments).
type ResultsController struct {
	Repo repository.DeliberationRepository
}

func NewResultsController(repo repository.DeliberationRepository) *ResultsController {
	return &ResultsController{Repo: repo}
}

func (h *ResultsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")

		uc := usecase.NewGetResultsUseCase(h.Repo)
		top, err := uc.Execute(c.Request.Context(), code)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"top_arguments": toArgumentDTOs(top)})
	}
}
