package usecase

import (
	"context"

	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// CancelDialogueInput identifies the dialogue and the user asking to cancel.
type CancelDialogueInput struct {
	Code   string
	UserID string
}

// CancelDialogueUseCase deletes a dialogue before it starts. Only the host
// may cancel, and only while the dialogue is still waiting.
type CancelDialogueUseCase struct {
	Repo repository.DeliberationRepository
}

func NewCancelDialogueUseCase(repo repository.DeliberationRepository) *CancelDialogueUseCase {
	return &CancelDialogueUseCase{Repo: repo}
}

func (uc *CancelDialogueUseCase) Execute(ctx context.Context, in CancelDialogueInput) error {
	d, err := uc.Repo.GetDialogueByCode(ctx, in.Code)
	if err != nil {
		return wrapRepoErr(err)
	}
	if d.HostUserID != in.UserID {
		return delib.ErrNotHost
	}
	if !d.CanCancel() {
		return delib.ErrDialogueNotOpen
	}
	return wrapRepoErr(uc.Repo.DeleteDialogue(ctx, d.ID))
}
