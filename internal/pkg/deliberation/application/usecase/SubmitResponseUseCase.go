package usecase

import (
	"context"
	"fmt"
	"log/slog"

	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// ConsolidationTrigger starts the consolidation pipeline for a dialogue.
// It is called at most once per dialogue: the caller must have won the
// collecting -> consolidating transition first.
type ConsolidationTrigger interface {
	TriggerConsolidation(ctx context.Context, dialogueID string) error
}

// SubmitResponseInput carries one participant's free-text entry.
type SubmitResponseInput struct {
	Code   string
	UserID string
	Text   string
}

// SubmitResponseUseCase stores a response and, when the last expected
// response arrives, triggers consolidation exactly once.
//
// Two submitters can race on the "all responses in" check; both may observe
// equal counts. The compare-and-set status transition serializes them: only
// the caller that wins collecting -> consolidating invokes the trigger, so
// the pipeline never runs twice no matter the arrival order.
type SubmitResponseUseCase struct {
	Repo    repository.DeliberationRepository
	Trigger ConsolidationTrigger
	Log     *slog.Logger
}

func NewSubmitResponseUseCase(repo repository.DeliberationRepository, trigger ConsolidationTrigger) *SubmitResponseUseCase {
	return &SubmitResponseUseCase{Repo: repo, Trigger: trigger, Log: slog.Default()}
}

// Execute validates and stores the response, then runs the check-and-trigger
// step. It returns the stored response and whether this call won the trigger.
func (uc *SubmitResponseUseCase) Execute(ctx context.Context, in SubmitResponseInput) (*delib.Response, bool, error) {
	d, err := uc.Repo.GetDialogueByCode(ctx, in.Code)
	if err != nil {
		return nil, false, wrapRepoErr(err)
	}
	if !d.AcceptingResponses() {
		return nil, false, delib.ErrDialogueNotOpen
	}

	p, err := uc.Repo.GetParticipant(ctx, d.ID, in.UserID)
	if err != nil {
		return nil, false, wrapRepoErr(err)
	}

	resp, err := delib.NewResponse(delib.Response{
		ParticipantID: p.ID,
		DialogueID:    d.ID,
		Text:          in.Text,
	})
	if err != nil {
		return nil, false, err
	}

	id, err := uc.Repo.CreateResponse(ctx, *resp)
	if err != nil {
		return nil, false, wrapRepoErr(err)
	}
	resp.ID = id

	won, err := uc.checkAndTrigger(ctx, d.ID)
	if err != nil {
		return resp, won, err
	}
	return resp, won, nil
}

func (uc *SubmitResponseUseCase) checkAndTrigger(ctx context.Context, dialogueID string) (bool, error) {
	responses, err := uc.Repo.CountResponses(ctx, dialogueID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	participants, err := uc.Repo.CountParticipants(ctx, dialogueID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !delib.ReadyForConsolidation(responses, participants) {
		return false, nil
	}

	won, err := uc.Repo.UpdateDialogueStatus(ctx, dialogueID, delib.StatusCollecting, delib.StatusConsolidating)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !won {
		// another submitter got there first
		return false, nil
	}

	uc.Log.Info("all responses in, starting consolidation",
		"dialogue_id", dialogueID, "participants", participants)

	if uc.Trigger == nil {
		return true, nil
	}
	if err := uc.Trigger.TriggerConsolidation(ctx, dialogueID); err != nil {
		// the status already moved; the pipeline can be re-kicked safely
		// because processing is idempotent
		return true, fmt.Errorf("trigger consolidation: %w", err)
	}
	return true, nil
}
