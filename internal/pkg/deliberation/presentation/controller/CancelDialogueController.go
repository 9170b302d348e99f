package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/usecase"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// CancelDialogueController lets the host delete a dialogue before it starts.
type CancelDialogueController struct {
	Repo repository.DeliberationRepository
}

func NewCancelDialogueController(repo repository.DeliberationRepository) *CancelDialogueController {
	return &CancelDialogueController{Repo: repo}
}

func (h *CancelDialogueController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		userID, ok := requireUserID(c, c.Query("user_id"))
		if !ok {
			return
		}

		uc := usecase.NewCancelDialogueUseCase(h.Repo)
		if err := uc.Execute(c.Request.Context(), usecase.CancelDialogueInput{
			Code:   code,
			UserID: userID,
		}); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
	}
}
