package media

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/kritika-companion/server/internal/companion/model"
)

// Score rates a candidate's relevance to the query: +2 per query term also
// present in the title's term set, +1 per query term in the description's
// term set, +3 once if any query term appears as a substring of the title.
// A short but exact title match should usually outrank a long but loosely
// related one.
func Score(query string, candidate model.MediaCandidate) int {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return 0
	}

	title := strings.ToLower(candidate.Title)
	titleTerms := termSet(title)
	descTerms := termSet(strings.ToLower(candidate.Description))

	score := 0
	for _, term := range terms {
		if titleTerms[term] {
			score += 2
		}
		if descTerms[term] {
			score++
		}
	}
	for _, term := range terms {
		if strings.Contains(title, term) {
			score += 3
			break
		}
	}
	return score
}

// Rank returns the candidates scored and sorted by descending relevance.
// The sort is stable, so ties keep the provider-reported order.
func Rank(query string, candidates []model.MediaCandidate) []model.MediaCandidate {
	ranked := make([]model.MediaCandidate, len(candidates))
	copy(ranked, candidates)
	for i := range ranked {
		ranked[i].Score = Score(query, ranked[i])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func queryTerms(query string) []string {
	return lo.Uniq(strings.Fields(strings.ToLower(query)))
}

func termSet(text string) map[string]bool {
	fields := strings.Fields(text)
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
