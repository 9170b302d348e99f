package usecase

import (
	"context"
	"fmt"

	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// ListArgumentsInput identifies the dialogue and the requesting participant.
type ListArgumentsInput struct {
	Code   string
	UserID string
}

// ListArgumentsUseCase returns a dialogue's merged arguments for rating.
// Only participants may read them. An empty list is valid: consolidation can
// legitimately produce zero arguments.
type ListArgumentsUseCase struct {
	Repo repository.DeliberationRepository
}

func NewListArgumentsUseCase(repo repository.DeliberationRepository) *ListArgumentsUseCase {
	return &ListArgumentsUseCase{Repo: repo}
}

func (uc *ListArgumentsUseCase) Execute(ctx context.Context, in ListArgumentsInput) ([]delib.Argument, error) {
	d, err := uc.Repo.GetDialogueByCode(ctx, in.Code)
	if err != nil {
		return nil, wrapRepoErr(err)
	}
	if _, err := uc.Repo.GetParticipant(ctx, d.ID, in.UserID); err != nil {
		return nil, wrapRepoErr(err)
	}
	arguments, err := uc.Repo.GetArgumentsByDialogue(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return arguments, nil
}
