package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContract = `The term of this Agreement is 12 months from the Effective Date.

Client shall pay a monthly fee of $1,500.00 for the services rendered under this Agreement.

Either party may terminate this Agreement upon 60 days written notice to the other party.

This Agreement shall automatically renew for successive one year periods unless cancelled.

Any dispute arising under this Agreement shall be settled by binding arbitration in New York.`

func TestExtractSummaryPoints_AllTopics(t *testing.T) {
	points := ExtractSummaryPoints(sampleContract, DefaultMaxSummaryPoints)

	require.Len(t, points, 5)
	assert.Equal(t, []string{
		"Contract term is 12 months.",
		"Payment of $1,500.00 due monthly.",
		"Termination requires 60 days notice.",
		"Contract renews automatically unless cancelled.",
		"Disputes must be resolved through arbitration.",
	}, points)
}

func TestExtractSummaryPoints_MaxPoints(t *testing.T) {
	points := ExtractSummaryPoints(sampleContract, 3)

	require.Len(t, points, 3)
	assert.Equal(t, "Contract term is 12 months.", points[0])
}

func TestExtractSummaryPoints_SkipsShortParagraphs(t *testing.T) {
	text := "Term.\n\nFee.\n\nDone."
	points := ExtractSummaryPoints(text, DefaultMaxSummaryPoints)
	assert.Empty(t, points)
}

func TestExtractSummaryPoints_NoTopicHits(t *testing.T) {
	text := strings.Repeat("Nothing here speaks about obligations of any kind. ", 3)
	points := ExtractSummaryPoints(text, DefaultMaxSummaryPoints)
	assert.Empty(t, points)
}

func TestExtractSummaryPoints_TiesKeepFirstParagraph(t *testing.T) {
	text := "Renewal is set for 2 years as agreed by both sides here.\n\n" +
		"Renewal shall be automatic for the following cycle as well."

	points := ExtractSummaryPoints(text, DefaultMaxSummaryPoints)

	require.Len(t, points, 1)
	// Both paragraphs score identically for the renewal topic; the first
	// encountered wins.
	assert.Equal(t, "Contract may renew for 2 years.", points[0])
}

func TestSummarizeParagraph_Generic(t *testing.T) {
	assert.Equal(t, "Contract specifies payment obligations and terms.",
		summarizeParagraph("Payments happen as the parties agree from time to time.", TopicPaymentTerms))
	assert.Equal(t, "Contract may be terminated without cause.",
		summarizeParagraph("Either side may terminate at will and without cause.", TopicTermination))
	assert.Equal(t, "Contract governed by laws of Delaware.",
		summarizeParagraph("This Agreement is governed by the laws of Delaware", TopicDispute))
}

func TestSummarizeParagraph_DateRange(t *testing.T) {
	got := summarizeParagraph("The engagement runs from January 2026 until December 2026.", TopicTermDuration)
	assert.Equal(t, "Contract period runs from January 2026 to December 2026.", got)
}
