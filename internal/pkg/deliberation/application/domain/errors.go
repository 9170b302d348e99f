package deliberation

import "errors"

// Domain-level errors for deliberation behaviors
var (
	ErrNotFound          = errors.New("deliberation: not found")
	ErrValidation        = errors.New("deliberation: validation failed")
	ErrNotParticipant    = errors.New("deliberation: user is not a participant in the dialogue")
	ErrNotHost           = errors.New("deliberation: user is not the host of the dialogue")
	ErrDialogueNotOpen   = errors.New("deliberation: dialogue is not accepting this action in its current state")
	ErrDuplicateResponse = errors.New("deliberation: participant already submitted a response")
	ErrDuplicateRating   = errors.New("deliberation: participant already rated this argument")
	ErrDuplicateTrigger  = errors.New("deliberation: consolidation already ran for this dialogue")
)
