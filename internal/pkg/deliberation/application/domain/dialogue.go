package deliberation

import (
	"fmt"
	"strings"
	"time"
)

// DialogueStatus is the lifecycle state of a dialogue.
//
// waiting      host created the dialogue, participants are joining
// collecting   host started it, responses are being collected
// consolidating  the last response arrived and the pipeline is running
// consolidated merged arguments exist; rating and results are available
//
// The collecting -> consolidating transition must be won atomically by
// exactly one submitter (see repository UpdateDialogueStatus).
type DialogueStatus string

const (
	StatusWaiting       DialogueStatus = "waiting"
	StatusCollecting    DialogueStatus = "collecting"
	StatusConsolidating DialogueStatus = "consolidating"
	StatusConsolidated  DialogueStatus = "consolidated"
)

// CodeLength is the length of the numeric join code.
const CodeLength = 3

// Dialogue is one deliberation instance, identified by a short join code
// that is unique among non-deleted dialogues. Topic and supporting material
// are immutable after creation.
type Dialogue struct {
	ID               string         `db:"id"`
	HostUserID       string         `db:"host_user_id"`
	Code             string         `db:"code"`
	TimeLimitMinutes int            `db:"time_limit_minutes"`
	TopicPrompt      string         `db:"topic_prompt"`
	RelevantInfoText *string        `db:"relevant_info_text"`
	RelevantInfoFile *string        `db:"relevant_info_file"`
	Status           DialogueStatus `db:"status"`
	CreatedAt        time.Time      `db:"created_at"`
}

// NewDialogue validates and normalizes a dialogue before persistence.
func NewDialogue(d Dialogue) (*Dialogue, error) {
	if d.HostUserID == "" {
		return nil, fmt.Errorf("%w: host user id is required", ErrValidation)
	}
	d.TopicPrompt = strings.TrimSpace(d.TopicPrompt)
	if d.TopicPrompt == "" {
		return nil, fmt.Errorf("%w: topic prompt is required", ErrValidation)
	}
	if d.TimeLimitMinutes < 0 {
		return nil, fmt.Errorf("%w: time limit must not be negative", ErrValidation)
	}
	if d.Status == "" {
		d.Status = StatusWaiting
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	return &d, nil
}

// ValidCode tells whether code is a well-formed join code: fixed length,
// digits only.
func ValidCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CanStart reports whether the host may start the dialogue.
func (d *Dialogue) CanStart() bool {
	return d != nil && d.Status == StatusWaiting
}

// CanCancel reports whether the host may still cancel (pre-start only).
func (d *Dialogue) CanCancel() bool {
	return d != nil && d.Status == StatusWaiting
}

// AcceptingResponses reports whether responses may be submitted.
func (d *Dialogue) AcceptingResponses() bool {
	return d != nil && d.Status == StatusCollecting
}

// ReadyForConsolidation is the trigger condition: every participant has
// submitted and there is at least one participant.
func ReadyForConsolidation(responseCount, participantCount int) bool {
	return participantCount > 0 && responseCount == participantCount
}
