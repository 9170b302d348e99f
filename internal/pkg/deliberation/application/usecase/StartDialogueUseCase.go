package usecase

import (
	"context"
	"fmt"

	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// StartDialogueInput identifies the dialogue and the user asking to start it.
type StartDialogueInput struct {
	Code   string
	UserID string
}

// StartDialogueUseCase moves a dialogue from waiting to collecting. Only the
// host may start it, and only once.
type StartDialogueUseCase struct {
	Repo repository.DeliberationRepository
}

func NewStartDialogueUseCase(repo repository.DeliberationRepository) *StartDialogueUseCase {
	return &StartDialogueUseCase{Repo: repo}
}

func (uc *StartDialogueUseCase) Execute(ctx context.Context, in StartDialogueInput) error {
	d, err := uc.Repo.GetDialogueByCode(ctx, in.Code)
	if err != nil {
		return wrapRepoErr(err)
	}
	if d.HostUserID != in.UserID {
		return delib.ErrNotHost
	}
	if !d.CanStart() {
		return delib.ErrDialogueNotOpen
	}

	won, err := uc.Repo.UpdateDialogueStatus(ctx, d.ID, delib.StatusWaiting, delib.StatusCollecting)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !won {
		// someone else already moved it; starting twice is not an error
		return nil
	}
	return nil
}
