package analysis

import (
	"context"
	"fmt"
	"strings"
)

const (
	positionLabel      = "Position:"
	justificationLabel = "Justification:"

	extractMaxTokens = 150
)

// Pair is the structured result of extracting one response.
type Pair struct {
	Position      string
	Justification string
}

// Extractor turns raw free text into a (position, justification) pair with
// a single text-generation call. Callers guarantee non-empty, word-count
// bounded input.
type Extractor struct {
	gen TextGenerator
}

func NewExtractor(gen TextGenerator) *Extractor {
	return &Extractor{gen: gen}
}

// Extract issues one generation call and parses the labeled two-field reply.
// A missing label yields an empty field, not an error; unlabeled lines are
// ignored. Provider failure wraps ErrExtraction.
func (e *Extractor) Extract(ctx context.Context, text string) (Pair, error) {
	prompt := fmt.Sprintf(`Please extract the main position and justification from the following text:

"%s"

Provide the position and justification separately in the format:
Position: ...
Justification: ...`, text)

	out, err := e.gen.Generate(ctx, prompt, extractMaxTokens)
	if err != nil {
		return Pair{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	return parsePair(out), nil
}

// parsePair scans output lines for the two literal label prefixes.
func parsePair(out string) Pair {
	var p Pair
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, positionLabel):
			p.Position = strings.TrimSpace(strings.TrimPrefix(line, positionLabel))
		case strings.HasPrefix(line, justificationLabel):
			p.Justification = strings.TrimSpace(strings.TrimPrefix(line, justificationLabel))
		}
	}
	return p
}
