package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// codeAttempts bounds the collision-check loop so a nearly full code space
// surfaces an error instead of spinning.
const codeAttempts = 100

// CreateDialogueInput carries the data needed to open a new dialogue.
// Time budget is given as hours+minutes and stored in minutes.
type CreateDialogueInput struct {
	HostUserID       string
	TopicPrompt      string
	Hours            int
	Minutes          int
	RelevantInfoText *string
	RelevantInfoFile *string
}

// CreateDialogueUseCase creates a dialogue with a fresh unique join code and
// registers the host as its first participant.
type CreateDialogueUseCase struct {
	Repo repository.DeliberationRepository
}

func NewCreateDialogueUseCase(repo repository.DeliberationRepository) *CreateDialogueUseCase {
	return &CreateDialogueUseCase{Repo: repo}
}

func (uc *CreateDialogueUseCase) Execute(ctx context.Context, in CreateDialogueInput) (*delib.Dialogue, error) {
	if in.Hours < 0 || in.Minutes < 0 || in.Minutes > 59 {
		return nil, fmt.Errorf("%w: time limit hours must be >= 0 and minutes in [0,59]", delib.ErrValidation)
	}

	code, err := uc.generateUniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	d, err := delib.NewDialogue(delib.Dialogue{
		HostUserID:       in.HostUserID,
		Code:             code,
		TimeLimitMinutes: in.Hours*60 + in.Minutes,
		TopicPrompt:      in.TopicPrompt,
		RelevantInfoText: in.RelevantInfoText,
		RelevantInfoFile: in.RelevantInfoFile,
	})
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.CreateDialogue(ctx, *d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	d.ID = id

	// The host is a participant too
	if _, err := uc.Repo.AddParticipant(ctx, delib.Participant{
		DialogueID: id,
		UserID:     in.HostUserID,
		IsHost:     true,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return d, nil
}

// generateUniqueCode draws random fixed-length numeric codes until one is
// free among non-deleted dialogues.
func (uc *CreateDialogueUseCase) generateUniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		var b strings.Builder
		for j := 0; j < delib.CodeLength; j++ {
			b.WriteByte(byte('0' + rand.Intn(10)))
		}
		code := b.String()

		inUse, err := uc.Repo.DialogueCodeInUse(ctx, code)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		if !inUse {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not allocate a free dialogue code after %d attempts", codeAttempts)
}
