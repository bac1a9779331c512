package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const autoRenewalClause = "This Agreement shall automatically renew for successive one year terms unless either party provides 30 days written notice of non-renewal."

func TestAnalyzeContract_TooShort(t *testing.T) {
	result := AnalyzeContract("too short to be a contract")

	assert.Empty(t, result.RiskyClauses)
	require.Len(t, result.ContractSummary, 1)
	assert.Contains(t, result.ContractSummary[0], "too short")
}

func TestAnalyzeContract_AutoRenewal(t *testing.T) {
	text := autoRenewalClause + "\n\n" + autoRenewalClause
	require.Greater(t, len(text), MinDocumentLength)

	result := AnalyzeContract(text)

	var found *RiskyClause
	for i := range result.RiskyClauses {
		if result.RiskyClauses[i].Category == "Auto-renewal" {
			found = &result.RiskyClauses[i]
			break
		}
	}
	require.NotNil(t, found, "expected an Auto-renewal clause")
	assert.GreaterOrEqual(t, found.RiskLevel, 3)
	assert.Contains(t, found.Text, "automatically renew")
	assert.NotEmpty(t, found.Explanation)
	assert.NotEmpty(t, found.Simplified)
}

func TestAnalyzeContract_OneClausePerCategory(t *testing.T) {
	// Two separate paragraphs both trigger Auto-renewal; only the first
	// match may be reported.
	text := autoRenewalClause + "\n\n" +
		"The subscription will automatically renew each quarter unless cancelled in writing.\n\n" +
		autoRenewalClause

	result := AnalyzeContract(text)

	counts := make(map[string]int)
	for _, clause := range result.RiskyClauses {
		counts[clause.Category]++
	}
	for category, n := range counts {
		assert.Equal(t, 1, n, "category %s reported %d times", category, n)
	}
}

func TestAnalyzeContract_NoMatches(t *testing.T) {
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 5)

	result := AnalyzeContract(text)

	assert.Empty(t, result.RiskyClauses)
	require.Len(t, result.ContractSummary, 1)
	assert.Contains(t, result.ContractSummary[0], "Unable to generate summary")
}

func TestAnalyzeContract_Idempotent(t *testing.T) {
	text := autoRenewalClause + "\n\nEither party may terminate this Agreement upon 60 days written notice."

	first := AnalyzeContract(text)
	second := AnalyzeContract(text)

	assert.Equal(t, first, second)
}

func TestAnalyzeContract_NormalizesWhitespace(t *testing.T) {
	withCR := strings.ReplaceAll(autoRenewalClause, " ", "\r") + "\n\n" + autoRenewalClause

	result := AnalyzeContract(withCR)

	// Carriage returns collapse to spaces before matching, so detection
	// still works.
	var categories []string
	for _, c := range result.RiskyClauses {
		categories = append(categories, c.Category)
	}
	assert.Contains(t, categories, "Auto-renewal")
}

func TestGetSimpleExplanation_Indemnification(t *testing.T) {
	text := "The Contractor shall indemnify and hold harmless the Client from all claims arising hereunder."

	explanation := GetSimpleExplanation(text)

	assert.Equal(t, "You must pay for any legal problems the other party faces because of your actions, including their lawyer fees and any damages.", explanation)
}

func TestGetSimpleExplanation_LongUnknownClause(t *testing.T) {
	text := strings.Repeat("whereas the aforementioned recital stands alone ", 30)

	explanation := GetSimpleExplanation(text)

	assert.Contains(t, explanation, "complex legal clause")
}

func TestGetSimpleExplanation_Substitutions(t *testing.T) {
	explanation := GetSimpleExplanation("The vendor shall deliver the goods herein described.")

	assert.True(t, strings.HasPrefix(explanation, "This clause means: "))
	assert.Contains(t, explanation, "will deliver")
	assert.Contains(t, explanation, "in this document")
	assert.NotContains(t, explanation, "shall")
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Auto-renewal", CategoryAutoRenewal.String())
	assert.Equal(t, "Assignment", CategoryAssignment.String())
	assert.Equal(t, "Unknown", Category(-1).String())
}

func TestRegistryShape(t *testing.T) {
	require.Len(t, riskCategories, int(numCategories))
	for _, def := range riskCategories {
		assert.NotEmpty(t, def.patterns, "%s has no patterns", def.cat)
		assert.NotEmpty(t, def.explanation, "%s has no explanation", def.cat)
		assert.NotEmpty(t, def.simplified, "%s has no simplification", def.cat)
	}
}
