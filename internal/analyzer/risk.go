package analyzer

import (
	"math"
	"strings"
)

// CalculateRiskLevel scores a clause on a 1-5 scale for the given category.
// The base level is 1. Each severity level's trigger keywords are checked as
// case-insensitive substrings; the highest matched level wins, so a level-5
// keyword raises the score to 5 even when no lower-level keyword is present.
// Longer clauses get a length penalty on top: more than 200 words adds a full
// level, more than 100 words adds half a level. Halves round up. The result
// never exceeds 5.
func CalculateRiskLevel(clauseText string, cat Category) int {
	lower := strings.ToLower(clauseText)

	level := 1.0
	if def := categoryByID(cat); def != nil {
		for lvl := 2; lvl <= 5; lvl++ {
			for _, kw := range def.severity[lvl] {
				if strings.Contains(lower, kw) {
					if float64(lvl) > level {
						level = float64(lvl)
					}
					break
				}
			}
		}
	}

	words := len(strings.Fields(clauseText))
	if words > 200 {
		level = math.Min(5, level+1)
	} else if words > 100 {
		level = math.Min(5, level+0.5)
	}

	// Round half up: 1.5 scores 2, never 1.
	return int(math.Floor(level + 0.5))
}

func categoryByID(cat Category) *categoryDef {
	for i := range riskCategories {
		if riskCategories[i].cat == cat {
			return &riskCategories[i]
		}
	}
	return nil
}
