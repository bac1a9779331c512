// Package analyzer is the rule-based contract analysis engine. It flags risky
// clauses against a fixed category registry, generates a keyword-driven
// summary, and answers free-text questions about a contract, all through
// local pattern matching with no network calls and no model inference.
//
// Every entry point is a pure function of its input and the static
// registries, so concurrent analyses are safe without locking.
package analyzer

import (
	"regexp"
	"strings"
)

// MinDocumentLength is the threshold below which a document is considered too
// short to be a contract and pattern matching is skipped entirely.
const MinDocumentLength = 100

const (
	tooShortSummary = "The provided document appears to be too short for analysis."
	noSummary       = "Unable to generate summary due to insufficient content."
)

// RiskyClause is one flagged clause. At most one is produced per category per
// document; the first matching pattern and its first match win.
type RiskyClause struct {
	Category    string `json:"category"`
	Text        string `json:"text"`
	Explanation string `json:"explanation"`
	Simplified  string `json:"simplified"`
	RiskLevel   int    `json:"risk_level"`
}

// AnalysisResult is the full risk report for one document. Clauses appear in
// category registry order; callers that want display order sort by RiskLevel
// descending.
type AnalysisResult struct {
	RiskyClauses    []RiskyClause `json:"risky_clauses"`
	ContractSummary []string      `json:"contract_summary"`
}

var crTabReplacer = strings.NewReplacer("\r", " ", "\t", " ")

// AnalyzeContract runs risk detection and summary extraction over the raw
// document text. It is total: any input string yields a well-formed result.
func AnalyzeContract(text string) *AnalysisResult {
	result := &AnalysisResult{
		RiskyClauses:    []RiskyClause{},
		ContractSummary: []string{},
	}

	if len(text) < MinDocumentLength {
		result.ContractSummary = append(result.ContractSummary, tooShortSummary)
		return result
	}

	normalized := crTabReplacer.Replace(text)

	for _, def := range riskCategories {
		for _, pattern := range def.patterns {
			loc := pattern.FindStringIndex(normalized)
			if loc == nil {
				continue
			}

			clause := ExtractClauseContext(normalized, loc[0], loc[1], DefaultMaxClauseLength)
			result.RiskyClauses = append(result.RiskyClauses, RiskyClause{
				Category:    def.cat.String(),
				Text:        clause,
				Explanation: def.explanation,
				Simplified:  def.simplified,
				RiskLevel:   CalculateRiskLevel(clause, def.cat),
			})
			// One clause per category: stop at the first pattern that hits.
			break
		}
	}

	if points := ExtractSummaryPoints(normalized, DefaultMaxSummaryPoints); len(points) > 0 {
		result.ContractSummary = points
	} else {
		result.ContractSummary = []string{noSummary}
	}

	return result
}

const complexClauseAdvice = "This is a complex legal clause that may have important implications for your rights and obligations. Consider seeking legal advice for a complete understanding."

// legaleseSubstitutions rewrite common terms of art into plain language for
// short clauses that match no known category.
var legaleseSubstitutions = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)shall`), "will"},
	{regexp.MustCompile(`(?i)herein`), "in this document"},
	{regexp.MustCompile(`(?i)hereto`), "to this document"},
	{regexp.MustCompile(`(?i)hereby`), "by this document"},
	{regexp.MustCompile(`(?i)hereinafter`), "from now on"},
	{regexp.MustCompile(`(?i)therein`), "in that"},
	{regexp.MustCompile(`(?i)therefrom`), "from that"},
	{regexp.MustCompile(`(?i)thereto`), "to that"},
	{regexp.MustCompile(`(?i)aforementioned`), "previously mentioned"},
}

// GetSimpleExplanation returns a plain-language reading of a legal clause.
// If the clause matches a known risk category, the category's static
// simplification is returned. Long unrecognized clauses get generic advice;
// short ones get a word-for-word legalese substitution.
func GetSimpleExplanation(text string) string {
	for _, def := range riskCategories {
		for _, pattern := range def.patterns {
			if pattern.MatchString(text) {
				if def.simplified != "" {
					return def.simplified
				}
				break
			}
		}
	}

	if len(strings.Fields(text)) > 100 {
		return complexClauseAdvice
	}

	for _, sub := range legaleseSubstitutions {
		text = sub.re.ReplaceAllString(text, sub.replacement)
	}
	return "This clause means: " + text
}
