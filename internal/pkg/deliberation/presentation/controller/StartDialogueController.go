package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/usecase"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// StartDialogueController lets the host open the response-collection phase.
type StartDialogueController struct {
	Repo repository.DeliberationRepository
}

func NewStartDialogueController(repo repository.DeliberationRepository) *StartDialogueController {
	return &StartDialogueController{Repo: repo}
}

type startDialogueRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func (h *StartDialogueController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		var req startDialogueRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		userID, ok := requireUserID(c, req.UserID)
		if !ok {
			return
		}

		uc := usecase.NewStartDialogueUseCase(h.Repo)
		if err := uc.Execute(c.Request.Context(), usecase.StartDialogueInput{
			Code:   code,
			UserID: userID,
		}); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "started"})
	}
}
