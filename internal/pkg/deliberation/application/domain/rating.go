package deliberation

import (
	"fmt"
	"time"
)

// Score bounds for both rating dimensions, inclusive.
const (
	MinScore = 1
	MaxScore = 5
)

// Rating is one participant's two bounded scores for one merged argument.
// Primary key: (ParticipantID, ArgumentID); a participant rates an argument
// at most once and duplicates are rejected at insert.
type Rating struct {
	ID             string    `db:"id"`
	ParticipantID  string    `db:"participant_id"`
	ArgumentID     string    `db:"argument_id"`
	AgreementScore int       `db:"agreement_score"`
	ValidityScore  int       `db:"validity_score"`
	CreatedAt      time.Time `db:"created_at"`
}

// NewRating validates score bounds before persistence.
func NewRating(r Rating) (*Rating, error) {
	if r.ParticipantID == "" || r.ArgumentID == "" {
		return nil, fmt.Errorf("%w: participant id and argument id are required", ErrValidation)
	}
	if r.AgreementScore < MinScore || r.AgreementScore > MaxScore {
		return nil, fmt.Errorf("%w: agreement score %d out of range [%d,%d]",
			ErrValidation, r.AgreementScore, MinScore, MaxScore)
	}
	if r.ValidityScore < MinScore || r.ValidityScore > MaxScore {
		return nil, fmt.Errorf("%w: validity score %d out of range [%d,%d]",
			ErrValidation, r.ValidityScore, MinScore, MaxScore)
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return &r, nil
}
