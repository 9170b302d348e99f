package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/usecase"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// JoinDialogueController handles the join-by-code endpoint.
type JoinDialogueController struct {
	Repo repository.DeliberationRepository
}

func NewJoinDialogueController(repo repository.DeliberationRepository) *JoinDialogueController {
	return &JoinDialogueController{Repo: repo}
}

type joinDialogueRequest struct {
	Code   string `json:"code" binding:"required"`
	UserID string `json:"user_id" binding:"required"`
}

func (h *JoinDialogueController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req joinDialogueRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		userID, ok := requireUserID(c, req.UserID)
		if !ok {
			return
		}

		uc := usecase.NewJoinDialogueUseCase(h.Repo)
		p, err := uc.Execute(c.Request.Context(), usecase.JoinDialogueInput{
			Code:   req.Code,
			UserID: userID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"participant_id": p.ID,
			"dialogue_id":    p.DialogueID,
			"is_host":        p.IsHost,
		})
	}
}
