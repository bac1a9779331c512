package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const qaContract = `This Services Agreement is entered into by the parties below.

Either party may terminate this agreement upon 60 days written notice to the other party.

The total fee shall be $5,000.00 payable in equal installments.

"Confidential Information" means any information disclosed by either party in connection with this Agreement.`

func TestAnswerQuestion_TerminationNotice(t *testing.T) {
	answer := AnswerQuestion("What is the notice period for termination?", qaContract)

	assert.Contains(t, answer, "60 days")
	assert.Contains(t, answer, "notice period")
}

func TestAnswerQuestion_Payment(t *testing.T) {
	answer := AnswerQuestion("How much do I pay?", qaContract)

	assert.Contains(t, answer, "payment details")
	assert.Contains(t, answer, "$5,000.00")
}

func TestAnswerQuestion_TopicDefault(t *testing.T) {
	doc := "The sky above the port was the color of television.\n\nA second plain paragraph."

	answer := AnswerQuestion("Can I cancel this contract?", doc)

	assert.Equal(t, "The contract mentions termination provisions, but specific details about notice periods or conditions are not clearly stated.", answer)
}

func TestAnswerQuestion_GenericFallback(t *testing.T) {
	answer := AnswerQuestion("Is this a good deal?", qaContract)
	assert.Equal(t, genericAnswer, answer)
}

func TestAnswerQuestion_EmptyInputs(t *testing.T) {
	assert.Equal(t, genericAnswer, AnswerQuestion("", ""))
	assert.Equal(t, genericAnswer, AnswerQuestion("???", "some contract text"))
}

func TestAnswerQuestion_Definition(t *testing.T) {
	answer := AnswerQuestion("What is the meaning of confidential information?", qaContract)

	assert.Contains(t, answer, "The contract defines 'confidential information'")
	assert.Contains(t, strings.ToLower(answer), "confidential information")
}

func TestAnswerQuestion_DefinitionNotFound(t *testing.T) {
	answer := AnswerQuestion("What is the meaning of force majeure?", "No definitions live in this document at all.")
	assert.Equal(t, genericAnswer, answer)
}

func TestAnswerQuestion_DensityPrefersFocusedParagraph(t *testing.T) {
	focused := "Termination notice: 30 days."
	diluted := "This very long paragraph mentions termination once somewhere in a sea of words about many other topics entirely unrelated to the matter such as weather, logistics, scheduling, catering and the like, diluting its keyword density far below the focused clause."
	doc := diluted + "\n\n" + focused

	answer := AnswerQuestion("How do I terminate?", doc)

	assert.Contains(t, answer, "30 days")
}

func TestAnswerQuestion_BestParagraphQuoteFallback(t *testing.T) {
	// Topic matches and a paragraph is retrieved, but no extraction
	// pattern fires, so the answer quotes the paragraph.
	doc := "Cancellation rights may be described elsewhere in the master services arrangement between the parties."

	answer := AnswerQuestion("Can I cancel?", doc)

	assert.Contains(t, answer, "Cancellation rights")
}
