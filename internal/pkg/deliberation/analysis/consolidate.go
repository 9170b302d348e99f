package analysis

import (
	"context"
	"fmt"
	"strings"
)

const consolidateMaxTokens = 500

// Consolidator merges many (position, justification) pairs into a smaller
// set of argument texts. Grouping is delegated to the injected TextGenerator
// rather than a deterministic clustering algorithm, so output order and
// grouping may vary between runs with identical input; callers must not
// assume stable ordering.
type Consolidator struct {
	gen TextGenerator
}

func NewConsolidator(gen TextGenerator) *Consolidator {
	return &Consolidator{gen: gen}
}

// Consolidate serializes all pairs into a single grouping prompt and splits
// the reply on blank-line boundaries. An empty input returns an empty result
// without calling the generator. A reply that parses to zero non-empty
// segments returns an empty result; that is a reachable terminal state, not
// an error. Provider failure wraps ErrExtraction.
func (c *Consolidator) Consolidate(ctx context.Context, pairs []Pair) ([]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	serialized := make([]string, 0, len(pairs))
	for _, p := range pairs {
		serialized = append(serialized,
			fmt.Sprintf("%s %s\n%s %s", positionLabel, p.Position, justificationLabel, p.Justification))
	}

	prompt := fmt.Sprintf(`Please group the following positions and justifications into major arguments, merging similar ones:

%s

Provide a list of merged arguments.`, strings.Join(serialized, "\n\n"))

	out, err := c.gen.Generate(ctx, prompt, consolidateMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	return splitArguments(out), nil
}

// splitArguments breaks generator output into argument texts on blank-line
// boundaries, dropping whitespace-only segments.
func splitArguments(out string) []string {
	out = strings.ReplaceAll(out, "\r\n", "\n")
	var args []string
	for _, seg := range strings.Split(out, "\n\n") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		args = append(args, seg)
	}
	return args
}
