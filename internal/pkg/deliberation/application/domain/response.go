package deliberation

import (
	"fmt"
	"strings"
	"time"
)

// Word-count bounds for a response, inclusive.
const (
	MinResponseWords = 60
	MaxResponseWords = 200
)

// Response is one participant's raw free-text entry for a dialogue.
// Position and Justification stay nil until extraction runs; they are set
// exactly once, so a failed pipeline run leaves them nil and a retry can
// re-extract only the affected rows.
type Response struct {
	ID            string    `db:"id"`
	ParticipantID string    `db:"participant_id"`
	DialogueID    string    `db:"dialogue_id"`
	Text          string    `db:"text"`
	Position      *string   `db:"position"`
	Justification *string   `db:"justification"`
	CreatedAt     time.Time `db:"created_at"`
}

// NewResponse validates a response before persistence.
func NewResponse(r Response) (*Response, error) {
	if r.ParticipantID == "" || r.DialogueID == "" {
		return nil, fmt.Errorf("%w: participant id and dialogue id are required", ErrValidation)
	}
	n := WordCount(r.Text)
	if n < MinResponseWords || n > MaxResponseWords {
		return nil, fmt.Errorf("%w: response must be between %d and %d words, got %d",
			ErrValidation, MinResponseWords, MaxResponseWords, n)
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return &r, nil
}

// Extracted reports whether the analysis fields have been written.
func (r *Response) Extracted() bool {
	return r != nil && r.Position != nil && r.Justification != nil
}

// WordCount counts whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
