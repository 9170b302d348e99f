package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/usecase"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// CreateDialogueController handles the create-dialogue endpoint only (one controller per endpoint)
type CreateDialogueController struct {
	Repo repository.DeliberationRepository
}

func NewCreateDialogueController(repo repository.DeliberationRepository) *CreateDialogueController {
	return &CreateDialogueController{Repo: repo}
}

type createDialogueRequest struct {
	HostUserID       string  `json:"host_user_id" binding:"required"`
	TopicPrompt      string  `json:"topic_prompt" binding:"required"`
	Hours            int     `json:"hours"`
	Minutes          int     `json:"minutes"`
	RelevantInfoText *string `json:"relevant_info_text"`
	RelevantInfoFile *string `json:"relevant_info_file"`
}

func (h *CreateDialogueController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createDialogueRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		hostID, ok := requireUserID(c, req.HostUserID)
		if !ok {
			return
		}

		uc := usecase.NewCreateDialogueUseCase(h.Repo)
		d, err := uc.Execute(c.Request.Context(), usecase.CreateDialogueInput{
			HostUserID:       hostID,
			TopicPrompt:      req.TopicPrompt,
			Hours:            req.Hours,
			Minutes:          req.Minutes,
			RelevantInfoText: req.RelevantInfoText,
			RelevantInfoFile: req.RelevantInfoFile,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"dialogue_id":        d.ID,
			"code":               d.Code,
			"status":             d.Status,
			"time_limit_minutes": d.TimeLimitMinutes,
		})
	}
}
