package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/usecase"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// RateArgumentsController accepts one participant's rating batch.
type RateArgumentsController struct {
	Repo repository.DeliberationRepository
}

func NewRateArgumentsController(repo repository.DeliberationRepository) *RateArgumentsController {
	return &RateArgumentsController{Repo: repo}
}

type ratingEntry struct {
	ArgumentID     string `json:"argument_id" binding:"required"`
	AgreementScore int    `json:"agreement_score" binding:"required"`
	ValidityScore  int    `json:"validity_score" binding:"required"`
}

type rateArgumentsRequest struct {
	UserID  string        `json:"user_id" binding:"required"`
	Ratings []ratingEntry `json:"ratings" binding:"required"`
}

func (h *RateArgumentsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		var req rateArgumentsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		userID, ok := requireUserID(c, req.UserID)
		if !ok {
			return
		}

		ratings := make([]usecase.ArgumentRating, 0, len(req.Ratings))
		for _, r := range req.Ratings {
			ratings = append(ratings, usecase.ArgumentRating{
				ArgumentID:     r.ArgumentID,
				AgreementScore: r.AgreementScore,
				ValidityScore:  r.ValidityScore,
			})
		}

		uc := usecase.NewRateArgumentsUseCase(h.Repo)
		if err := uc.Execute(c.Request.Context(), usecase.RateArgumentsInput{
			Code:    code,
			UserID:  userID,
			Ratings: ratings,
		}); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"status": "rated"})
	}
}
