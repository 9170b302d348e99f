package deliberation

// Participant captures one user's membership in exactly one dialogue.
// Primary key: (DialogueID, UserID). Joining is idempotent; rows are never
// mutated after creation.
type Participant struct {
	ID         string `db:"id"`
	DialogueID string `db:"dialogue_id"`
	UserID     string `db:"user_id"`
	IsHost     bool   `db:"is_host"`
}
