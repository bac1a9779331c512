package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractClauseContext_ParagraphBoundaries(t *testing.T) {
	text := "First paragraph of the agreement.\n\nThe tenant shall pay a late fee on overdue rent.\n\nLast paragraph."
	start := strings.Index(text, "late fee")
	require.Positive(t, start)
	end := start + len("late fee")

	clause := ExtractClauseContext(text, start, end, DefaultMaxClauseLength)

	assert.Equal(t, "The tenant shall pay a late fee on overdue rent.", clause)
}

func TestExtractClauseContext_SentenceFallback(t *testing.T) {
	// No blank lines or newlines, and the document is longer than the cap,
	// so the sentence separator has to bound the clause.
	text := strings.Repeat("alpha ", 60) + "sets context. " +
		"The match lives in this sentence. " +
		strings.Repeat("omega ", 60) + "closes."
	require.Greater(t, len(text), DefaultMaxClauseLength)
	start := strings.Index(text, "match")
	end := start + len("match")

	clause := ExtractClauseContext(text, start, end, DefaultMaxClauseLength)

	assert.Contains(t, clause, "match")
	assert.NotContains(t, clause, "alpha")
	assert.NotContains(t, clause, "omega")
}

func TestExtractClauseContext_ContainsMatch(t *testing.T) {
	text := "alpha beta gamma delta epsilon zeta eta theta"
	for _, word := range []string{"alpha", "delta", "theta"} {
		start := strings.Index(text, word)
		end := start + len(word)

		clause := ExtractClauseContext(text, start, end, DefaultMaxClauseLength)
		assert.Contains(t, clause, word)
	}
}

func TestExtractClauseContext_WindowFallback(t *testing.T) {
	// One giant run with no separators at all forces the symmetric window.
	text := strings.Repeat("x", 1000) + "NEEDLE" + strings.Repeat("y", 1000)
	start := strings.Index(text, "NEEDLE")
	end := start + len("NEEDLE")

	clause := ExtractClauseContext(text, start, end, 500)

	assert.Contains(t, clause, "NEEDLE")
	assert.LessOrEqual(t, len(clause), 500+len("NEEDLE"))
}

func TestExtractClauseContext_DocumentEdges(t *testing.T) {
	text := "only one short clause without separators"

	full := ExtractClauseContext(text, 0, len(text), DefaultMaxClauseLength)
	assert.Equal(t, text, full)

	head := ExtractClauseContext(text, 0, 4, DefaultMaxClauseLength)
	assert.Contains(t, head, "only")

	tail := ExtractClauseContext(text, len(text)-4, len(text), DefaultMaxClauseLength)
	assert.Contains(t, tail, "tors")
}

func TestExtractClauseContext_ZeroMaxLengthUsesDefault(t *testing.T) {
	text := "Short clause; another clause follows here."
	clause := ExtractClauseContext(text, 0, 5, 0)
	assert.NotEmpty(t, clause)
	assert.Contains(t, clause, "Short")
}
