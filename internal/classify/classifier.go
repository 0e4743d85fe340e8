package classify

import (
	"strings"

	"github.com/scanvault/scanvault/constants"
)

// Classify scores text against every type in table-declared order and
// returns the label with the strictly highest score. Scoring is plain
// substring containment over the lowercased text; each keyword counts
// at most once no matter how often it occurs. Ties keep the earlier
// type because only a strictly greater score replaces the current best.
// Empty text, or text matching nothing, yields constants.TypeOther.
// Pure function: no side effects, deterministic for equal inputs.
func Classify(text string, table *RuleTable) string {
	if strings.TrimSpace(text) == "" {
		return constants.TypeOther
	}
	norm := strings.ToLower(text)

	best := constants.TypeOther
	bestScore := 0
	for _, rule := range table.Rules() {
		score := 0
		for _, kw := range rule.Keywords {
			if strings.Contains(norm, strings.ToLower(kw.Phrase)) {
				score += kw.Weight
			}
		}
		if score > bestScore {
			bestScore = score
			best = rule.Type
		}
	}
	return best
}
