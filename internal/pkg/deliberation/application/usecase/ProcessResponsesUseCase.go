package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/analysis"
	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// ProcessResponsesUseCase runs the analysis pipeline for one dialogue:
// extract a (position, justification) pair per response, consolidate the
// pairs into merged arguments, persist them, and mark the dialogue
// consolidated.
//
// The whole use case is safe to re-run. Extraction results are written
// per-response, exactly once, so a run that fails partway leaves the
// remaining responses un-enriched and a retry extracts only those. The
// merged set is written atomically; a dialogue that already has arguments
// only needs its status transition finished.
type ProcessResponsesUseCase struct {
	Repo         repository.DeliberationRepository
	Extractor    *analysis.Extractor
	Consolidator *analysis.Consolidator
	Log          *slog.Logger
}

func NewProcessResponsesUseCase(repo repository.DeliberationRepository, gen analysis.TextGenerator) *ProcessResponsesUseCase {
	return &ProcessResponsesUseCase{
		Repo:         repo,
		Extractor:    analysis.NewExtractor(gen),
		Consolidator: analysis.NewConsolidator(gen),
		Log:          slog.Default(),
	}
}

func (uc *ProcessResponsesUseCase) Execute(ctx context.Context, dialogueID string) error {
	d, err := uc.Repo.GetDialogueByID(ctx, dialogueID)
	if err != nil {
		return wrapRepoErr(err)
	}

	// Idempotent guard: a second trigger for a dialogue that already has
	// merged arguments must not append a duplicate set.
	if err := uc.guardNotConsolidated(ctx, d); err != nil {
		if errors.Is(err, delib.ErrDuplicateTrigger) {
			uc.Log.Info("consolidation already done, skipping", "dialogue_id", dialogueID)
			return nil
		}
		return err
	}

	responses, err := uc.Repo.GetResponsesByDialogue(ctx, dialogueID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	pairs := make([]analysis.Pair, 0, len(responses))
	for _, resp := range responses {
		if resp.Extracted() {
			pairs = append(pairs, analysis.Pair{
				Position:      *resp.Position,
				Justification: *resp.Justification,
			})
			continue
		}
		pair, err := uc.Extractor.Extract(ctx, resp.Text)
		if err != nil {
			// leave this and the remaining responses un-enriched; the
			// caller's retry policy re-runs exactly the affected ones
			return fmt.Errorf("extract response %s: %w", resp.ID, err)
		}
		if err := uc.Repo.SetResponseAnalysis(ctx, resp.ID, pair.Position, pair.Justification); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		pairs = append(pairs, pair)
	}

	merged, err := uc.Consolidator.Consolidate(ctx, pairs)
	if err != nil {
		return fmt.Errorf("consolidate dialogue %s: %w", dialogueID, err)
	}

	now := time.Now().UTC()
	arguments := make([]delib.Argument, 0, len(merged))
	for i, text := range merged {
		arguments = append(arguments, delib.Argument{
			DialogueID: dialogueID,
			MergedText: text,
			// a strictly increasing created_at keeps the merge order stable
			// under the repository's (created_at, id) sort
			CreatedAt: now.Add(time.Duration(i) * time.Microsecond),
		})
	}
	if err := uc.Repo.ReplaceArguments(ctx, dialogueID, arguments); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if _, err := uc.Repo.UpdateDialogueStatus(ctx, dialogueID, delib.StatusConsolidating, delib.StatusConsolidated); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	uc.Log.Info("consolidation finished",
		"dialogue_id", dialogueID, "responses", len(responses), "arguments", len(merged))
	return nil
}

// guardNotConsolidated returns ErrDuplicateTrigger when the pipeline already
// produced arguments for this dialogue.
func (uc *ProcessResponsesUseCase) guardNotConsolidated(ctx context.Context, d *delib.Dialogue) error {
	if d.Status == delib.StatusConsolidated {
		return delib.ErrDuplicateTrigger
	}
	n, err := uc.Repo.CountArguments(ctx, d.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if n > 0 {
		// Arguments are written as one atomic set, so their presence means
		// the pipeline finished and only the status flip is outstanding.
		// Finish it here instead of leaving the dialogue stuck.
		if _, err := uc.Repo.UpdateDialogueStatus(ctx, d.ID, delib.StatusConsolidating, delib.StatusConsolidated); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return delib.ErrDuplicateTrigger
	}
	return nil
}
