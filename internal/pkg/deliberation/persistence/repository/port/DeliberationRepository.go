package repository

import (
	"context"

	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
)

// DeliberationRepository defines persistence operations for the deliberation
// domain. The core needs only code lookup, per-dialogue counts, keyed or
// batch inserts, and read-all-by-dialogue queries. All inserts that back
// multi-writer paths (participants, responses, ratings) are keyed so that
// duplicate logical records cannot be created.
type DeliberationRepository interface {
	CreateDialogue(ctx context.Context, d delib.Dialogue) (string, error)
	GetDialogueByCode(ctx context.Context, code string) (*delib.Dialogue, error)
	GetDialogueByID(ctx context.Context, id string) (*delib.Dialogue, error)
	// DialogueCodeInUse reports whether code is taken by a non-deleted dialogue.
	DialogueCodeInUse(ctx context.Context, code string) (bool, error)
	// UpdateDialogueStatus performs an atomic compare-and-set transition and
	// reports whether this caller won it. Losing is not an error.
	UpdateDialogueStatus(ctx context.Context, id string, from, to delib.DialogueStatus) (bool, error)
	DeleteDialogue(ctx context.Context, id string) error

	// AddParticipant is idempotent: re-joining returns the existing membership.
	AddParticipant(ctx context.Context, p delib.Participant) (*delib.Participant, error)
	GetParticipant(ctx context.Context, dialogueID, userID string) (*delib.Participant, error)
	CountParticipants(ctx context.Context, dialogueID string) (int, error)

	// CreateResponse returns ErrDuplicateResponse if the participant already
	// submitted one for this dialogue.
	CreateResponse(ctx context.Context, r delib.Response) (string, error)
	CountResponses(ctx context.Context, dialogueID string) (int, error)
	GetResponsesByDialogue(ctx context.Context, dialogueID string) ([]delib.Response, error)
	// SetResponseAnalysis writes the extracted fields for one response.
	// The fields are written at most once per response.
	SetResponseAnalysis(ctx context.Context, responseID, position, justification string) error

	// ReplaceArguments swaps the dialogue's argument set in one transaction:
	// either the full new set is stored or the previous rows survive intact.
	// No reader ever observes a partially written set.
	ReplaceArguments(ctx context.Context, dialogueID string, arguments []delib.Argument) error
	GetArgumentsByDialogue(ctx context.Context, dialogueID string) ([]delib.Argument, error)
	CountArguments(ctx context.Context, dialogueID string) (int, error)

	// CreateRatings stores a batch in one transaction. If any entry would
	// duplicate an existing rating the whole batch is rejected with
	// ErrDuplicateRating and no row is written.
	CreateRatings(ctx context.Context, ratings []delib.Rating) error
	GetRatingsByDialogue(ctx context.Context, dialogueID string) ([]delib.Rating, error)
}
