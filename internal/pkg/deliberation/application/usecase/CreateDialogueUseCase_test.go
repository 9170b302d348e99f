package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
)

func TestCreateDialogue_HostBecomesParticipant(t *testing.T) {
	repo := newMemRepo()
	uc := NewCreateDialogueUseCase(repo)
	ctx := context.Background()
	host := uuid.NewString()

	d, err := uc.Execute(ctx, CreateDialogueInput{
		HostUserID:  host,
		TopicPrompt: "Should the city pedestrianize downtown?",
		Hours:       1,
		Minutes:     30,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !delib.ValidCode(d.Code) {
		t.Errorf("code %q is not a valid join code", d.Code)
	}
	if d.TimeLimitMinutes != 90 {
		t.Errorf("TimeLimitMinutes = %d, want 90", d.TimeLimitMinutes)
	}
	if d.Status != delib.StatusWaiting {
		t.Errorf("Status = %q, want %q", d.Status, delib.StatusWaiting)
	}

	p, err := repo.GetParticipant(ctx, d.ID, host)
	if err != nil {
		t.Fatalf("host not registered as participant: %v", err)
	}
	if !p.IsHost {
		t.Error("host participant missing is_host flag")
	}
}

func TestCreateDialogue_CodesAreUniqueAmongActive(t *testing.T) {
	repo := newMemRepo()
	uc := NewCreateDialogueUseCase(repo)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		d, err := uc.Execute(ctx, CreateDialogueInput{
			HostUserID:  uuid.NewString(),
			TopicPrompt: "topic",
		})
		if err != nil {
			t.Fatalf("Execute %d failed: %v", i, err)
		}
		if seen[d.Code] {
			t.Fatalf("code %q allocated twice among active dialogues", d.Code)
		}
		seen[d.Code] = true
	}
}

func TestCreateDialogue_CodeFreedByDeletion(t *testing.T) {
	repo := newMemRepo()
	uc := NewCreateDialogueUseCase(repo)
	ctx := context.Background()

	// exhaust nothing, just verify a deleted dialogue's code can come back
	d, err := uc.Execute(ctx, CreateDialogueInput{HostUserID: uuid.NewString(), TopicPrompt: "t"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if err := repo.DeleteDialogue(ctx, d.ID); err != nil {
		t.Fatalf("DeleteDialogue failed: %v", err)
	}
	inUse, err := repo.DialogueCodeInUse(ctx, d.Code)
	if err != nil {
		t.Fatalf("DialogueCodeInUse failed: %v", err)
	}
	if inUse {
		t.Error("deleted dialogue still holds its code")
	}
}

func TestCreateDialogue_RejectsBadTimeLimit(t *testing.T) {
	uc := NewCreateDialogueUseCase(newMemRepo())
	_, err := uc.Execute(context.Background(), CreateDialogueInput{
		HostUserID:  uuid.NewString(),
		TopicPrompt: "t",
		Minutes:     75,
	})
	if !errors.Is(err, delib.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestJoinDialogue_Idempotent(t *testing.T) {
	repo := newMemRepo()
	create := NewCreateDialogueUseCase(repo)
	join := NewJoinDialogueUseCase(repo)
	ctx := context.Background()

	d, err := create.Execute(ctx, CreateDialogueInput{HostUserID: uuid.NewString(), TopicPrompt: "t"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	user := uuid.NewString()
	p1, err := join.Execute(ctx, JoinDialogueInput{Code: d.Code, UserID: user})
	if err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	p2, err := join.Execute(ctx, JoinDialogueInput{Code: d.Code, UserID: user})
	if err != nil {
		t.Fatalf("re-join failed: %v", err)
	}
	if p1.ID != p2.ID {
		t.Errorf("re-join created a new membership: %s != %s", p1.ID, p2.ID)
	}

	n, _ := repo.CountParticipants(ctx, d.ID)
	if n != 2 { // host + user
		t.Errorf("participant count = %d, want 2", n)
	}
}

func TestJoinDialogue_UnknownCode(t *testing.T) {
	join := NewJoinDialogueUseCase(newMemRepo())
	_, err := join.Execute(context.Background(), JoinDialogueInput{Code: "404", UserID: uuid.NewString()})
	if !errors.Is(err, delib.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestStartDialogue_OnlyHost(t *testing.T) {
	repo := newMemRepo()
	create := NewCreateDialogueUseCase(repo)
	start := NewStartDialogueUseCase(repo)
	ctx := context.Background()

	host := uuid.NewString()
	d, _ := create.Execute(ctx, CreateDialogueInput{HostUserID: host, TopicPrompt: "t"})

	if err := start.Execute(ctx, StartDialogueInput{Code: d.Code, UserID: uuid.NewString()}); !errors.Is(err, delib.ErrNotHost) {
		t.Fatalf("non-host start: err = %v, want ErrNotHost", err)
	}
	if err := start.Execute(ctx, StartDialogueInput{Code: d.Code, UserID: host}); err != nil {
		t.Fatalf("host start failed: %v", err)
	}
	got, _ := repo.GetDialogueByID(ctx, d.ID)
	if got.Status != delib.StatusCollecting {
		t.Errorf("status = %q, want %q", got.Status, delib.StatusCollecting)
	}
}

func TestCancelDialogue_OnlyPreStart(t *testing.T) {
	repo := newMemRepo()
	create := NewCreateDialogueUseCase(repo)
	start := NewStartDialogueUseCase(repo)
	cancel := NewCancelDialogueUseCase(repo)
	ctx := context.Background()

	host := uuid.NewString()
	d, _ := create.Execute(ctx, CreateDialogueInput{HostUserID: host, TopicPrompt: "t"})
	if err := start.Execute(ctx, StartDialogueInput{Code: d.Code, UserID: host}); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	err := cancel.Execute(ctx, CancelDialogueInput{Code: d.Code, UserID: host})
	if !errors.Is(err, delib.ErrDialogueNotOpen) {
		t.Fatalf("post-start cancel: err = %v, want ErrDialogueNotOpen", err)
	}
}
