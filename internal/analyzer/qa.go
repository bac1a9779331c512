package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// QuestionTopic identifies one of the fixed question categories a free-text
// question can be routed to. The numeric order is the trigger priority order.
type QuestionTopic int

const (
	QuestionTermination QuestionTopic = iota
	QuestionPayment
	QuestionRenewal
	QuestionLiability
	QuestionDispute
)

// genericAnswer is the final fallback when no stage of the pipeline produces
// a more specific answer.
const genericAnswer = "The contract doesn't provide specific information about this question."

type questionTopicDef struct {
	topic         QuestionTopic
	trigger       *regexp.Regexp
	keywords      []string
	extract       []*regexp.Regexp
	defaultAnswer string
}

// questionTopics maps a question to the extraction logic for its topic.
// Triggers are tested against the lower-cased question in order; the first
// match wins. Keywords drive paragraph retrieval (substring hits weighted by
// density), extract patterns pull the specific fact out of the best paragraph.
var questionTopics = []questionTopicDef{
	{
		topic:    QuestionTermination,
		trigger:  regexp.MustCompile(`(terminat|cancel|end)`),
		keywords: []string{"terminat", "cancel", "end", "notic", "period"},
		extract: []*regexp.Regexp{
			reICompile(`(?:terminat|cancel|end)(?:ion|ing)?[\s\w]{1,100}(\d+)[\s-]*(day|week|month|year)`),
			reICompile(`(?:termin|cancel|end)(?:ate|ation)?(?:.*?)(?:with|after|upon)[\s\w]{1,50}(\d+)[\s-]*(day|week|month|year)`),
			reICompile(`(?:notice|period)[\s\w]{1,50}(?:terminat|cancel|end)[\s\w]{1,50}(\d+)[\s-]*(day|week|month|year)`),
		},
		defaultAnswer: "The contract mentions termination provisions, but specific details about notice periods or conditions are not clearly stated.",
	},
	{
		topic:    QuestionPayment,
		trigger:  regexp.MustCompile(`(payment|fee|cost|price|pay)`),
		keywords: []string{"payment", "fee", "cost", "price", "pay", "amount", "rate"},
		extract: []*regexp.Regexp{
			reICompile(`(?:payment|fee|cost|price)[\s\w]{1,50}\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
			reICompile(`\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)[\s\w]{1,50}(?:payment|fee|cost|price)`),
			reICompile(`(?:payment|fee|cost|price)[\s\w]{1,50}(\d+)(?:\.\d+)?[\s\w]{1,10}(?:percent|%)`),
		},
		defaultAnswer: "The contract mentions payment terms, but specific amounts or payment schedules are not clearly defined.",
	},
	{
		topic:    QuestionRenewal,
		trigger:  regexp.MustCompile(`(renew|extension|extend)`),
		keywords: []string{"renew", "extension", "extend", "continu", "prolong"},
		extract: []*regexp.Regexp{
			reICompile(`(?:auto|automatic)(?:ally)?[\s\w]{1,50}(?:renew|extend|continu)(?:ed|al)?`),
			reICompile(`(?:renew|extend|continu)(?:ed|al)?[\s\w]{1,50}(?:auto|automatic)(?:ally)?`),
			reICompile(`(?:renew|extend|continu)(?:ed|al)?[\s\w]{1,50}(?:for|by|of)[\s\w]{1,20}(\d+)[\s-]*(day|week|month|year)`),
		},
		defaultAnswer: "The contract mentions renewal provisions, but specific terms or conditions are not clearly stated.",
	},
	{
		topic:    QuestionLiability,
		trigger:  regexp.MustCompile(`(liability|responsible|damage)`),
		keywords: []string{"liability", "responsible", "damage", "compensat", "harmless"},
		extract: []*regexp.Regexp{
			reICompile(`(?:limit|cap)[\s\w]{1,50}(?:liability|damages?)[\s\w]{1,50}\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
			reICompile(`(?:not|no)[\s\w]{1,30}(?:liable|responsible)[\s\w]{1,50}(?:for|in case of|in event of)`),
			reICompile(`(?:liability|damage)[\s\w]{1,50}(?:limit|cap|exclude|waive)`),
		},
		defaultAnswer: "The contract addresses liability provisions, but specific limitations or conditions are not clearly defined.",
	},
	{
		topic:    QuestionDispute,
		trigger:  regexp.MustCompile(`(dispute|disagree|conflict|arbitration|court)`),
		keywords: []string{"dispute", "disagree", "conflict", "arbitration", "mediation", "court", "lawsuit"},
		extract: []*regexp.Regexp{
			reICompile(`(?:dispute|disagree|conflict)[\s\w]{1,50}(?:resolve|settle)[\s\w]{1,50}(?:by|through|via)[\s\w]{1,20}(arbitration|mediation|court|litigation)`),
			reICompile(`(?:arbitration|mediation|court|litigation)[\s\w]{1,50}(?:in|of|at)[\s\w]{1,20}([A-Z][a-z]+(?:\s[A-Z][a-z]+)*)`),
			reICompile(`(?:govern|interpret)[\s\w]{1,50}(?:laws?|statutes?)[\s\w]{1,20}(?:of|in)[\s\w]{1,20}([A-Z][a-z]+(?:\s[A-Z][a-z]+)*)`),
		},
		defaultAnswer: "The contract includes dispute resolution provisions, but specific methods or jurisdiction may not be clearly defined.",
	},
}

// AnswerQuestion answers a free-text question from the contract text. The
// pipeline is classify, retrieve, extract, format: the question is routed to
// a topic by trigger pattern, the densest keyword paragraph is retrieved, and
// the topic's extraction patterns pull out the specific fact. Each stage falls
// through to the next stage's default; the function never fails.
func AnswerQuestion(question, contractText string) string {
	questionLower := strings.ToLower(question)

	for _, def := range questionTopics {
		if !def.trigger.MatchString(questionLower) {
			continue
		}

		type scoredParagraph struct {
			score float64
			text  string
		}
		var relevant []scoredParagraph
		for _, para := range blankLineRe.Split(contractText, -1) {
			lower := strings.ToLower(para)
			hits := 0
			for _, kw := range def.keywords {
				if strings.Contains(lower, kw) {
					hits++
				}
			}
			if hits == 0 {
				continue
			}
			// Keyword density, so a focused clause beats a long recital
			// that happens to mention the topic once.
			score := float64(hits) / float64(len(strings.Fields(para))+1) * 1000
			relevant = append(relevant, scoredParagraph{score: score, text: para})
		}

		if len(relevant) == 0 {
			return def.defaultAnswer
		}

		sort.SliceStable(relevant, func(i, j int) bool {
			return relevant[i].score > relevant[j].score
		})
		best := relevant[0].text

		for _, pattern := range def.extract {
			m := pattern.FindStringSubmatch(best)
			if m == nil {
				continue
			}
			return formatTopicAnswer(def.topic, m, best)
		}

		return fmt.Sprintf("Based on the contract: '%s...'", snippet(best, 200))
	}

	if answer := answerDefinitionQuestion(questionLower, contractText); answer != "" {
		return answer
	}

	return genericAnswer
}

// formatTopicAnswer renders the templated answer for a matched extraction
// pattern, using the capture groups when the pattern provides them.
func formatTopicAnswer(topic QuestionTopic, m []string, best string) string {
	lower := strings.ToLower(best)

	switch topic {
	case QuestionTermination:
		if len(m) >= 3 && m[1] != "" && m[2] != "" {
			return fmt.Sprintf("According to the contract, termination requires a notice period of %s %ss.", m[1], m[2])
		}
		return fmt.Sprintf("The contract allows for termination. Relevant clause: '%s...'", snippet(best, 100))

	case QuestionPayment:
		if strings.Contains(best, "$") {
			return fmt.Sprintf("The contract mentions payment details: '%s...'", snippet(best, 150))
		}
		return fmt.Sprintf("The contract includes payment terms. Relevant information: '%s...'", snippet(best, 150))

	case QuestionRenewal:
		if strings.Contains(lower, "auto") {
			return fmt.Sprintf("The contract includes automatic renewal provisions. Relevant clause: '%s...'", snippet(best, 150))
		}
		return fmt.Sprintf("The contract addresses renewal terms. Relevant information: '%s...'", snippet(best, 150))

	case QuestionLiability:
		if strings.Contains(lower, "not") || strings.Contains(lower, "no") {
			return fmt.Sprintf("The contract contains liability limitations. Relevant clause: '%s...'", snippet(best, 150))
		}
		return fmt.Sprintf("The contract addresses liability. Relevant information: '%s...'", snippet(best, 150))

	case QuestionDispute:
		if strings.Contains(lower, "arbitration") {
			return fmt.Sprintf("Disputes under this contract are resolved through arbitration. Relevant clause: '%s...'", snippet(best, 150))
		}
		return fmt.Sprintf("The contract specifies dispute resolution procedures. Relevant clause: '%s...'", snippet(best, 150))
	}

	return fmt.Sprintf("Based on the contract: '%s...'", snippet(best, 200))
}

var definitionQuestionRes = []*regexp.Regexp{
	regexp.MustCompile(`what (?:is|are) (?:the )?(?:meaning of |definition of )?["']?([a-z\s]+)["']?`),
	regexp.MustCompile(`define ["']?([a-z\s]+)["']?`),
	regexp.MustCompile(`meaning of ["']?([a-z\s]+)["']?`),
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// answerDefinitionQuestion handles "what is X" / "define X" questions by
// isolating the queried term and searching the contract for definition
// phrasing. Returns "" when the question is not definition-style or no
// definition is found.
func answerDefinitionQuestion(questionLower, contractText string) string {
	if !strings.Contains(questionLower, "what is") &&
		!strings.Contains(questionLower, "what are") &&
		!strings.Contains(questionLower, "define") &&
		!strings.Contains(questionLower, "meaning of") {
		return ""
	}

	var term string
	for _, re := range definitionQuestionRes {
		if m := re.FindStringSubmatch(questionLower); m != nil {
			term = strings.TrimSpace(m[1])
			break
		}
	}
	if term == "" {
		return ""
	}

	textLower := strings.ToLower(contractText)
	quoted := regexp.QuoteMeta(term)
	definitionPatterns := []string{
		`["']?` + quoted + `["']?[\s\w]{1,30}means`,
		`["']?` + quoted + `["']?[\s\w]{1,30}shall mean`,
		`["']?` + quoted + `["']?[\s\w]{1,30}defined as`,
		`["']?` + quoted + `["']?[\s\w]{1,10}["']?[\s\w]{1,30}is defined`,
		`"[^"]*` + quoted + `[^"]*"`,
	}

	for _, pattern := range definitionPatterns {
		loc := reICompile(pattern).FindStringIndex(textLower)
		if loc == nil {
			continue
		}

		start := loc[0] - 50
		if start < 0 {
			start = 0
		}
		end := loc[1] + 200
		if end > len(contractText) {
			end = len(contractText)
		}

		definition := whitespaceRe.ReplaceAllString(contractText[start:end], " ")
		if len(definition) > 300 {
			definition = definition[:297] + "..."
		}
		return fmt.Sprintf("The contract defines '%s' as follows: '%s'", term, definition)
	}

	return ""
}

// snippet returns at most n leading bytes of s.
func snippet(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
