package deliberation

import "time"

// Argument is one merged argument synthesized from a dialogue's responses.
// Immutable after creation. There is no back-reference to the source
// responses; provenance was deliberately left out of the minimal model.
type Argument struct {
	ID         string    `db:"id"`
	DialogueID string    `db:"dialogue_id"`
	MergedText string    `db:"merged_text"`
	CreatedAt  time.Time `db:"created_at"`
}
