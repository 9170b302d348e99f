package usecase

import (
	"context"
	"fmt"

	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/analysis"
	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// GetResultsUseCase materializes a dialogue's arguments, ratings and
// participant count and ranks the top arguments. Ranking itself is pure;
// this use case only feeds it.
type GetResultsUseCase struct {
	Repo repository.DeliberationRepository
}

func NewGetResultsUseCase(repo repository.DeliberationRepository) *GetResultsUseCase {
	return &GetResultsUseCase{Repo: repo}
}

func (uc *GetResultsUseCase) Execute(ctx context.Context, code string) ([]delib.Argument, error) {
	d, err := uc.Repo.GetDialogueByCode(ctx, code)
	if err != nil {
		return nil, wrapRepoErr(err)
	}

	arguments, err := uc.Repo.GetArgumentsByDialogue(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	ratings, err := uc.Repo.GetRatingsByDialogue(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	participants, err := uc.Repo.CountParticipants(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return analysis.Rank(arguments, ratings, participants), nil
}
