package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func staticGenerator(out string) TextGenerator {
	return GeneratorFunc(func(ctx context.Context, prompt string, maxTokens int) (string, error) {
		return out, nil
	})
}

func TestExtract_BothLabels(t *testing.T) {
	e := NewExtractor(staticGenerator(
		"Position: Remote work should stay.\nJustification: Productivity went up."))

	pair, err := e.Extract(context.Background(), "some response text")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if pair.Position != "Remote work should stay." {
		t.Errorf("Position = %q", pair.Position)
	}
	if pair.Justification != "Productivity went up." {
		t.Errorf("Justification = %q", pair.Justification)
	}
}

func TestExtract_MissingJustification(t *testing.T) {
	e := NewExtractor(staticGenerator("Position: Taxes are too high."))

	pair, err := e.Extract(context.Background(), "text")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if pair.Position != "Taxes are too high." {
		t.Errorf("Position = %q", pair.Position)
	}
	if pair.Justification != "" {
		t.Errorf("Justification = %q, want empty string for missing label", pair.Justification)
	}
}

func TestExtract_UnlabeledLinesIgnored(t *testing.T) {
	e := NewExtractor(staticGenerator(
		"Here is my analysis:\nPosition: A\nSome filler commentary.\nJustification: B\nThanks!"))

	pair, err := e.Extract(context.Background(), "text")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if pair.Position != "A" || pair.Justification != "B" {
		t.Errorf("pair = %+v, want Position A and Justification B", pair)
	}
}

func TestExtract_NoLabelsAtAll(t *testing.T) {
	e := NewExtractor(staticGenerator("completely freeform reply"))

	pair, err := e.Extract(context.Background(), "text")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if pair.Position != "" || pair.Justification != "" {
		t.Errorf("pair = %+v, want both fields empty", pair)
	}
}

func TestExtract_GeneratorFailure(t *testing.T) {
	boom := errors.New("provider down")
	e := NewExtractor(GeneratorFunc(func(ctx context.Context, prompt string, maxTokens int) (string, error) {
		return "", boom
	}))

	_, err := e.Extract(context.Background(), "text")
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("err = %v, want ErrExtraction", err)
	}
}

func TestExtract_PromptContainsText(t *testing.T) {
	var gotPrompt string
	e := NewExtractor(GeneratorFunc(func(ctx context.Context, prompt string, maxTokens int) (string, error) {
		gotPrompt = prompt
		if maxTokens != extractMaxTokens {
			t.Errorf("maxTokens = %d, want %d", maxTokens, extractMaxTokens)
		}
		return "Position: x", nil
	}))

	if _, err := e.Extract(context.Background(), "the submitted response"); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !strings.Contains(gotPrompt, "the submitted response") {
		t.Errorf("prompt does not contain the response text:\n%s", gotPrompt)
	}
}
