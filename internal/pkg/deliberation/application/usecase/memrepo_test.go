package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// memRepo is an in-memory DeliberationRepository for use case tests. The
// mutex makes the compare-and-set transition atomic the same way the SQL
// UPDATE ... WHERE status = $from is.
type memRepo struct {
	mu           sync.Mutex
	dialogues    map[string]*delib.Dialogue
	participants []delib.Participant
	responses    []delib.Response
	arguments    []delib.Argument
	ratings      []delib.Rating
}

var _ repository.DeliberationRepository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{dialogues: map[string]*delib.Dialogue{}}
}

func (m *memRepo) CreateDialogue(ctx context.Context, d delib.Dialogue) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.ID = uuid.NewString()
	m.dialogues[d.ID] = &d
	return d.ID, nil
}

func (m *memRepo) GetDialogueByCode(ctx context.Context, code string) (*delib.Dialogue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.dialogues {
		if d.Code == code {
			cp := *d
			return &cp, nil
		}
	}
	return nil, delib.ErrNotFound
}

func (m *memRepo) GetDialogueByID(ctx context.Context, id string) (*delib.Dialogue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.dialogues[id]
	if !ok {
		return nil, delib.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *memRepo) DialogueCodeInUse(ctx context.Context, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.dialogues {
		if d.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) UpdateDialogueStatus(ctx context.Context, id string, from, to delib.DialogueStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.dialogues[id]
	if !ok || d.Status != from {
		return false, nil
	}
	d.Status = to
	return true, nil
}

func (m *memRepo) DeleteDialogue(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dialogues[id]; !ok {
		return delib.ErrNotFound
	}
	delete(m.dialogues, id)
	return nil
}

func (m *memRepo) AddParticipant(ctx context.Context, p delib.Participant) (*delib.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.participants {
		if existing.DialogueID == p.DialogueID && existing.UserID == p.UserID {
			cp := existing
			return &cp, nil
		}
	}
	p.ID = uuid.NewString()
	m.participants = append(m.participants, p)
	cp := p
	return &cp, nil
}

func (m *memRepo) GetParticipant(ctx context.Context, dialogueID, userID string) (*delib.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.participants {
		if p.DialogueID == dialogueID && p.UserID == userID {
			cp := p
			return &cp, nil
		}
	}
	return nil, delib.ErrNotParticipant
}

func (m *memRepo) CountParticipants(ctx context.Context, dialogueID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.participants {
		if p.DialogueID == dialogueID {
			n++
		}
	}
	return n, nil
}

func (m *memRepo) CreateResponse(ctx context.Context, r delib.Response) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.responses {
		if existing.ParticipantID == r.ParticipantID && existing.DialogueID == r.DialogueID {
			return "", delib.ErrDuplicateResponse
		}
	}
	r.ID = uuid.NewString()
	m.responses = append(m.responses, r)
	return r.ID, nil
}

func (m *memRepo) CountResponses(ctx context.Context, dialogueID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.responses {
		if r.DialogueID == dialogueID {
			n++
		}
	}
	return n, nil
}

func (m *memRepo) GetResponsesByDialogue(ctx context.Context, dialogueID string) ([]delib.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []delib.Response
	for _, r := range m.responses {
		if r.DialogueID == dialogueID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepo) SetResponseAnalysis(ctx context.Context, responseID, position, justification string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.responses {
		if m.responses[i].ID == responseID && m.responses[i].Position == nil {
			p, j := position, justification
			m.responses[i].Position = &p
			m.responses[i].Justification = &j
			return nil
		}
	}
	return delib.ErrNotFound
}

func (m *memRepo) ReplaceArguments(ctx context.Context, dialogueID string, arguments []delib.Argument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.arguments[:0]
	for _, a := range m.arguments {
		if a.DialogueID != dialogueID {
			kept = append(kept, a)
		}
	}
	m.arguments = kept
	for _, a := range arguments {
		a.ID = uuid.NewString()
		a.DialogueID = dialogueID
		m.arguments = append(m.arguments, a)
	}
	return nil
}

func (m *memRepo) GetArgumentsByDialogue(ctx context.Context, dialogueID string) ([]delib.Argument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []delib.Argument
	for _, a := range m.arguments {
		if a.DialogueID == dialogueID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memRepo) CountArguments(ctx context.Context, dialogueID string) (int, error) {
	args, _ := m.GetArgumentsByDialogue(ctx, dialogueID)
	return len(args), nil
}

func (m *memRepo) CreateRatings(ctx context.Context, ratings []delib.Rating) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := map[[2]string]bool{}
	for _, existing := range m.ratings {
		seen[[2]string{existing.ParticipantID, existing.ArgumentID}] = true
	}
	for _, r := range ratings {
		key := [2]string{r.ParticipantID, r.ArgumentID}
		if seen[key] {
			return delib.ErrDuplicateRating
		}
		seen[key] = true
	}
	for _, r := range ratings {
		r.ID = uuid.NewString()
		m.ratings = append(m.ratings, r)
	}
	return nil
}

func (m *memRepo) GetRatingsByDialogue(ctx context.Context, dialogueID string) ([]delib.Rating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	argIDs := map[string]bool{}
	for _, a := range m.arguments {
		if a.DialogueID == dialogueID {
			argIDs[a.ID] = true
		}
	}
	var out []delib.Rating
	for _, r := range m.ratings {
		if argIDs[r.ArgumentID] {
			out = append(out, r)
		}
	}
	return out, nil
}
