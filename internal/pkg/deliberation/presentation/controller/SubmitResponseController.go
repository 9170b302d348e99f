package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/usecase"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// SubmitResponseController accepts a participant's free-text response. If
// this response is the last one expected, consolidation is kicked off in the
// background and the reply says so.
type SubmitResponseController struct {
	Repo    repository.DeliberationRepository
	Trigger usecase.ConsolidationTrigger
}

func NewSubmitResponseController(repo repository.DeliberationRepository, trigger usecase.ConsolidationTrigger) *SubmitResponseController {
	return &SubmitResponseController{Repo: repo, Trigger: trigger}
}

type submitResponseRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

func (h *SubmitResponseController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		var req submitResponseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		userID, ok := requireUserID(c, req.UserID)
		if !ok {
			return
		}

		uc := usecase.NewSubmitResponseUseCase(h.Repo, h.Trigger)
		resp, triggered, err := uc.Execute(c.Request.Context(), usecase.SubmitResponseInput{
			Code:   code,
			UserID: userID,
			Text:   req.Text,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"response_id":             resp.ID,
			"consolidation_triggered": triggered,
		})
	}
}
