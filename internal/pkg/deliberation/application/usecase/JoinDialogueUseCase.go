package usecase

import (
	"context"
	"fmt"

	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// JoinDialogueInput identifies who wants to join which dialogue.
type JoinDialogueInput struct {
	Code   string
	UserID string
}

// JoinDialogueUseCase attaches a user to a dialogue by its join code.
// Joining is idempotent: re-joining returns the existing membership.
type JoinDialogueUseCase struct {
	Repo repository.DeliberationRepository
}

func NewJoinDialogueUseCase(repo repository.DeliberationRepository) *JoinDialogueUseCase {
	return &JoinDialogueUseCase{Repo: repo}
}

func (uc *JoinDialogueUseCase) Execute(ctx context.Context, in JoinDialogueInput) (*delib.Participant, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", delib.ErrValidation)
	}
	if !delib.ValidCode(in.Code) {
		return nil, fmt.Errorf("%w: code must be a %d-digit number", delib.ErrValidation, delib.CodeLength)
	}

	d, err := uc.Repo.GetDialogueByCode(ctx, in.Code)
	if err != nil {
		return nil, wrapRepoErr(err)
	}

	p, err := uc.Repo.AddParticipant(ctx, delib.Participant{
		DialogueID: d.ID,
		UserID:     in.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return p, nil
}
