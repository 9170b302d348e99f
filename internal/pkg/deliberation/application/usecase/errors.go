package usecase

import (
	"errors"
	"fmt"

	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
)

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = fmt.Errorf("deliberation use case persistence error")

// wrapRepoErr passes domain errors through untouched and wraps everything
// else as a persistence failure.
func wrapRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, delib.ErrNotFound),
		errors.Is(err, delib.ErrNotParticipant),
		errors.Is(err, delib.ErrDuplicateResponse),
		errors.Is(err, delib.ErrDuplicateRating),
		errors.Is(err, delib.ErrDuplicateTrigger):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
}
