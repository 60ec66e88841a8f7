package adalex

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/amirrezaask/adalex/lexers"
)

type ScoredItem[T any] struct {
	Item  T
	Score int
}

// FindKinds ranks token kinds against query by name and by spelling, best
// match first. Lower scores are closer matches; kinds that do not match at
// all are left out.
func FindKinds(query string) []ScoredItem[lexers.Kind] {
	var items []ScoredItem[lexers.Kind]
	for _, k := range lexers.AllKinds() {
		score := fuzzy.RankMatchNormalizedFold(query, k.String())
		if spelling, ok := k.Spelling(); ok {
			if s := fuzzy.RankMatchNormalizedFold(query, spelling); s >= 0 && (score < 0 || s < score) {
				score = s
			}
		}
		if score < 0 {
			continue
		}
		items = append(items, ScoredItem[lexers.Kind]{Item: k, Score: score})
	}

	sortme(items, func(t1 ScoredItem[lexers.Kind], t2 ScoredItem[lexers.Kind]) bool {
		if t1.Score != t2.Score {
			return t1.Score < t2.Score
		}
		return t1.Item < t2.Item
	})
	return items
}
