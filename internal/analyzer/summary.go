package analyzer

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultMaxSummaryPoints caps the generated summary, one point per topic.
const DefaultMaxSummaryPoints = 5

// SummaryTopic identifies one of the fixed high-level contract aspects the
// summarizer reports on. The numeric order is the output order.
type SummaryTopic int

const (
	TopicTermDuration SummaryTopic = iota
	TopicPaymentTerms
	TopicTermination
	TopicRenewal
	TopicDispute

	numSummaryTopics
)

var summaryTopicNames = [numSummaryTopics]string{
	TopicTermDuration: "Term and duration",
	TopicPaymentTerms: "Payment terms",
	TopicTermination:  "Termination conditions",
	TopicRenewal:      "Renewal terms",
	TopicDispute:      "Dispute resolution",
}

func (t SummaryTopic) String() string {
	if t < 0 || t >= numSummaryTopics {
		return "Unknown"
	}
	return summaryTopicNames[t]
}

type summaryTopicDef struct {
	topic    SummaryTopic
	keywords []*regexp.Regexp
}

// stemPattern matches a keyword stem at a word boundary, so "terminat" counts
// "terminate", "termination" and "terminating" but not "exterminate".
func stemPattern(stem string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(stem))
}

func stemPatterns(stems ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(stems))
	for i, s := range stems {
		patterns[i] = stemPattern(s)
	}
	return patterns
}

var summaryTopics = []summaryTopicDef{
	{TopicTermDuration, stemPatterns("term", "duration", "period", "effective date", "commencement", "expiration", "termination date")},
	{TopicPaymentTerms, stemPatterns("payment", "fee", "price", "rate", "compensation", "invoice", "billing", "cost", "expense", "paid", "reimburse")},
	{TopicTermination, stemPatterns("terminat", "cancel", "end", "cease", "discontinue", "expir", "wind up", "withdraw", "notice period")},
	{TopicRenewal, stemPatterns("renew", "extension", "continue", "prolong", "extend", "subsequent term", "successive term")},
	{TopicDispute, stemPatterns("dispute", "arbitration", "mediation", "lawsuit", "litigation", "court", "jurisdiction", "venue", "governing law", "legal")},
}

var blankLineRe = regexp.MustCompile(`\n\s*\n`)

// minSummaryParagraph discards fragments (headings, page numbers) that cannot
// carry a summary point.
const minSummaryParagraph = 40

// ExtractSummaryPoints segments the text into blank-line-delimited paragraphs,
// scores each against every summary topic's keyword set, and emits one
// templated sentence per topic from that topic's best-scoring paragraph.
// Topics appear in fixed registry order; the result holds at most maxPoints
// entries.
func ExtractSummaryPoints(text string, maxPoints int) []string {
	if maxPoints <= 0 {
		maxPoints = DefaultMaxSummaryPoints
	}

	type scoredParagraph struct {
		score int
		text  string
	}
	best := make(map[SummaryTopic]scoredParagraph, numSummaryTopics)

	for _, para := range blankLineRe.Split(text, -1) {
		trimmed := strings.TrimSpace(para)
		if len(trimmed) < minSummaryParagraph {
			continue
		}
		lower := strings.ToLower(para)

		for _, def := range summaryTopics {
			score := 0
			for _, kw := range def.keywords {
				score += len(kw.FindAllString(lower, -1)) * 2
			}
			if score == 0 {
				continue
			}
			// Strictly greater keeps the earliest paragraph on ties.
			if current, ok := best[def.topic]; !ok || score > current.score {
				best[def.topic] = scoredParagraph{score: score, text: trimmed}
			}
		}
	}

	var points []string
	for _, def := range summaryTopics {
		winner, ok := best[def.topic]
		if !ok {
			continue
		}
		if summary := summarizeParagraph(winner.text, def.topic); summary != "" {
			points = append(points, summary)
		}
	}

	if len(points) > maxPoints {
		points = points[:maxPoints]
	}
	return points
}

var (
	termLengthRe   = regexp.MustCompile(`(?i)(\d+)[\s-]*(day|week|month|year|annual)`)
	dateRangeRe    = regexp.MustCompile(`(?i)from\s*(.*?)\s*(?:to|until|through)\s*(.*?)(?:\.|\n|$)`)
	payFrequencyRe = regexp.MustCompile(`(?i)(monthly|weekly|quarterly|annual|yearly)`)
	payAmountRe    = regexp.MustCompile(`\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)
	noticePeriodRe = regexp.MustCompile(`(?i)(\d+)[\s-]*(day|week|month).*?notice`)
	withoutCauseRe = regexp.MustCompile(`(?i)terminat.*without cause`)
	forCauseRe     = regexp.MustCompile(`(?i)terminat.*for cause`)
	autoRenewRe    = regexp.MustCompile(`(?i)auto(matic)?.*?renew`)
	renewAutoRe    = regexp.MustCompile(`(?i)renew.*?auto(matic)?`)
	renewTermRe    = regexp.MustCompile(`(?i)renew.*?(\d+)[\s-]*(day|week|month|year)`)
	arbitrationRe  = regexp.MustCompile(`(?i)arbitrat`)
	jurisdictionRe = regexp.MustCompile(`(?i)jurisdiction of\s*([^\.]+)`)
	governingLawRe = regexp.MustCompile(`(?i)govern.*laws?\s*of\s*([^\.]+)`)
)

// summarizeParagraph turns the winning paragraph for a topic into one concise
// templated sentence using topic-specific extraction rules, falling back to a
// generic statement naming the topic.
func summarizeParagraph(paragraph string, topic SummaryTopic) string {
	// Bound the text scanned for details, breaking at a sentence end when
	// one exists in the first 300 bytes.
	if len(paragraph) > 300 {
		if idx := strings.LastIndex(paragraph[:300], "."); idx >= 0 {
			paragraph = paragraph[:idx+1]
		} else {
			paragraph = paragraph[:300]
		}
	}

	switch topic {
	case TopicTermDuration:
		if m := termLengthRe.FindStringSubmatch(paragraph); m != nil {
			return fmt.Sprintf("Contract term is %s %ss.", m[1], m[2])
		}
		if m := dateRangeRe.FindStringSubmatch(paragraph); m != nil {
			return fmt.Sprintf("Contract period runs from %s to %s.", m[1], m[2])
		}
		return "Contract includes term and duration provisions."

	case TopicPaymentTerms:
		freq := payFrequencyRe.FindStringSubmatch(paragraph)
		amount := payAmountRe.FindStringSubmatch(paragraph)
		switch {
		case freq != nil && amount != nil:
			return fmt.Sprintf("Payment of %s due %s.", amount[0], freq[1])
		case amount != nil:
			return fmt.Sprintf("Payment amount specified as %s.", amount[0])
		case freq != nil:
			return fmt.Sprintf("Payments due %s.", freq[1])
		}
		return "Contract specifies payment obligations and terms."

	case TopicTermination:
		if m := noticePeriodRe.FindStringSubmatch(paragraph); m != nil {
			return fmt.Sprintf("Termination requires %s %ss notice.", m[1], m[2])
		}
		if withoutCauseRe.MatchString(paragraph) {
			return "Contract may be terminated without cause."
		}
		if forCauseRe.MatchString(paragraph) {
			return "Contract may be terminated for cause only."
		}
		return "Contract includes termination provisions and conditions."

	case TopicRenewal:
		if autoRenewRe.MatchString(paragraph) || renewAutoRe.MatchString(paragraph) {
			return "Contract renews automatically unless cancelled."
		}
		if m := renewTermRe.FindStringSubmatch(paragraph); m != nil {
			return fmt.Sprintf("Contract may renew for %s %ss.", m[1], m[2])
		}
		return "Contract includes renewal terms and conditions."

	case TopicDispute:
		if arbitrationRe.MatchString(paragraph) {
			return "Disputes must be resolved through arbitration."
		}
		if m := jurisdictionRe.FindStringSubmatch(paragraph); m != nil {
			return fmt.Sprintf("Disputes governed by jurisdiction of %s.", m[1])
		}
		if m := governingLawRe.FindStringSubmatch(paragraph); m != nil {
			return fmt.Sprintf("Contract governed by laws of %s.", m[1])
		}
		return "Contract specifies dispute resolution procedures."
	}

	return fmt.Sprintf("Contract includes provisions regarding %s.", strings.ToLower(topic.String()))
}
