package usecase

import (
	"context"
	"fmt"

	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// ArgumentRating is one (argument, scores) entry in a rating batch.
type ArgumentRating struct {
	ArgumentID     string
	AgreementScore int
	ValidityScore  int
}

// RateArgumentsInput carries one participant's ratings for a dialogue's
// merged arguments.
type RateArgumentsInput struct {
	Code    string
	UserID  string
	Ratings []ArgumentRating
}

// RateArgumentsUseCase stores a participant's ratings. Every rating is
// validated against the score bounds and against the dialogue's argument
// set before anything is written, and the batch is persisted atomically;
// a duplicate rating for any argument rejects the whole batch.
type RateArgumentsUseCase struct {
	Repo repository.DeliberationRepository
}

func NewRateArgumentsUseCase(repo repository.DeliberationRepository) *RateArgumentsUseCase {
	return &RateArgumentsUseCase{Repo: repo}
}

func (uc *RateArgumentsUseCase) Execute(ctx context.Context, in RateArgumentsInput) error {
	if len(in.Ratings) == 0 {
		return fmt.Errorf("%w: at least one rating is required", delib.ErrValidation)
	}

	d, err := uc.Repo.GetDialogueByCode(ctx, in.Code)
	if err != nil {
		return wrapRepoErr(err)
	}

	p, err := uc.Repo.GetParticipant(ctx, d.ID, in.UserID)
	if err != nil {
		return wrapRepoErr(err)
	}

	arguments, err := uc.Repo.GetArgumentsByDialogue(ctx, d.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	known := make(map[string]bool, len(arguments))
	for _, a := range arguments {
		known[a.ID] = true
	}

	// Validate the whole batch before writing anything
	validated := make([]delib.Rating, 0, len(in.Ratings))
	for _, ar := range in.Ratings {
		if !known[ar.ArgumentID] {
			return fmt.Errorf("%w: argument %s", delib.ErrNotFound, ar.ArgumentID)
		}
		r, err := delib.NewRating(delib.Rating{
			ParticipantID:  p.ID,
			ArgumentID:     ar.ArgumentID,
			AgreementScore: ar.AgreementScore,
			ValidityScore:  ar.ValidityScore,
		})
		if err != nil {
			return err
		}
		validated = append(validated, *r)
	}

	// One atomic write: a duplicate anywhere in the batch rejects it whole,
	// with no rows persisted
	if err := uc.Repo.CreateRatings(ctx, validated); err != nil {
		return wrapRepoErr(err)
	}
	return nil
}
