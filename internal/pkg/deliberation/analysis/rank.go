package analysis

import (
	"sort"

	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
)

// Rank orders a dialogue's merged arguments by aggregated rating and returns
// the top subset. It is a pure function over its inputs.
//
// Arguments with zero ratings are excluded from scoring entirely; they never
// receive a default score. For each scored argument,
// score = (mean agreement + mean validity) / 2 with real-valued division.
// The sort is stable and descending by score, so equal scores keep the
// original enumeration order of arguments. The result holds the top
// participantCount/3 arguments (integer division); with fewer than three
// participants the result is empty, which is a valid outcome.
func Rank(arguments []delib.Argument, ratings []delib.Rating, participantCount int) []delib.Argument {
	byArgument := make(map[string][]delib.Rating, len(arguments))
	for _, r := range ratings {
		byArgument[r.ArgumentID] = append(byArgument[r.ArgumentID], r)
	}

	type scored struct {
		arg   delib.Argument
		score float64
	}
	scoredArgs := make([]scored, 0, len(arguments))
	for _, arg := range arguments {
		rs := byArgument[arg.ID]
		if len(rs) == 0 {
			continue
		}
		var agreement, validity float64
		for _, r := range rs {
			agreement += float64(r.AgreementScore)
			validity += float64(r.ValidityScore)
		}
		n := float64(len(rs))
		scoredArgs = append(scoredArgs, scored{
			arg:   arg,
			score: (agreement/n + validity/n) / 2,
		})
	}

	sort.SliceStable(scoredArgs, func(i, j int) bool {
		return scoredArgs[i].score > scoredArgs[j].score
	})

	topN := participantCount / 3
	if topN > len(scoredArgs) {
		topN = len(scoredArgs)
	}
	if topN <= 0 {
		return []delib.Argument{}
	}

	top := make([]delib.Argument, 0, topN)
	for _, s := range scoredArgs[:topN] {
		top = append(top, s.arg)
	}
	return top
}
