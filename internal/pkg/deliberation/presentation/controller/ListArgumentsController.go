package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/usecase"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// ListArgumentsController returns the merged arguments of a dialogue so the
// rating page can render them.
type ListArgumentsController struct {
	Repo repository.DeliberationRepository
}

func NewListArgumentsController(repo repository.DeliberationRepository) *ListArgumentsController {
	return &ListArgumentsController{Repo: repo}
}

type argumentDTO struct {
	ID         string `json:"id"`
	MergedText string `json:"merged_text"`
}

func toArgumentDTOs(args []delib.Argument) []argumentDTO {
	out := make([]argumentDTO, 0, len(args))
	for _, a := range args {
		out = append(out, argumentDTO{ID: a.ID, MergedText: a.MergedText})
	}
	return out
}

func (h *ListArgumentsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		userID, ok := requireUserID(c, c.Query("user_id"))
		if !ok {
			return
		}

		uc := usecase.NewListArgumentsUseCase(h.Repo)
		args, err := uc.Execute(c.Request.Context(), usecase.ListArgumentsInput{
			Code:   code,
			UserID: userID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"arguments": toArgumentDTOs(args)})
	}
}
