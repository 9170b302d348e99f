package deliberation

import (
	"errors"
	"strings"
	"testing"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestNewResponse_WordCountBounds(t *testing.T) {
	cases := []struct {
		name  string
		words int
		ok    bool
	}{
		{"below minimum", MinResponseWords - 1, false},
		{"at minimum", MinResponseWords, true},
		{"at maximum", MaxResponseWords, true},
		{"above maximum", MaxResponseWords + 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewResponse(Response{
				ParticipantID: "p1",
				DialogueID:    "d1",
				Text:          words(tc.words),
			})
			if tc.ok && err != nil {
				t.Fatalf("NewResponse(%d words) failed: %v", tc.words, err)
			}
			if !tc.ok && !errors.Is(err, ErrValidation) {
				t.Fatalf("NewResponse(%d words) err = %v, want ErrValidation", tc.words, err)
			}
		})
	}
}

func TestNewRating_ScoreBounds(t *testing.T) {
	cases := []struct {
		name                string
		agreement, validity int
		ok                  bool
	}{
		{"both in range", 1, 5, true},
		{"agreement too low", 0, 3, false},
		{"agreement too high", 6, 3, false},
		{"validity too low", 3, 0, false},
		{"validity too high", 3, 6, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRating(Rating{
				ParticipantID:  "p1",
				ArgumentID:     "a1",
				AgreementScore: tc.agreement,
				ValidityScore:  tc.validity,
			})
			if tc.ok && err != nil {
				t.Fatalf("NewRating failed: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestValidCode(t *testing.T) {
	for code, want := range map[string]bool{
		"123":  true,
		"007":  true,
		"12":   false,
		"1234": false,
		"12a":  false,
		"":     false,
	} {
		if got := ValidCode(code); got != want {
			t.Errorf("ValidCode(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestReadyForConsolidation(t *testing.T) {
	cases := []struct {
		responses, participants int
		want                    bool
	}{
		{0, 0, false},
		{0, 3, false},
		{2, 3, false},
		{3, 3, true},
		{1, 1, true},
	}
	for _, tc := range cases {
		if got := ReadyForConsolidation(tc.responses, tc.participants); got != tc.want {
			t.Errorf("ReadyForConsolidation(%d, %d) = %v, want %v",
				tc.responses, tc.participants, got, tc.want)
		}
	}
}

func TestNewDialogue_Validation(t *testing.T) {
	if _, err := NewDialogue(Dialogue{HostUserID: "h", TopicPrompt: "  "}); !errors.Is(err, ErrValidation) {
		t.Errorf("blank topic: err = %v, want ErrValidation", err)
	}
	d, err := NewDialogue(Dialogue{HostUserID: "h", TopicPrompt: "Should we ban cars?"})
	if err != nil {
		t.Fatalf("NewDialogue failed: %v", err)
	}
	if d.Status != StatusWaiting {
		t.Errorf("Status = %q, want %q", d.Status, StatusWaiting)
	}
	if !d.CanStart() || !d.CanCancel() || d.AcceptingResponses() {
		t.Errorf("fresh dialogue state checks wrong: %+v", d)
	}
}
