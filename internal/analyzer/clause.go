package analyzer

import "strings"

// DefaultMaxClauseLength bounds the extracted clause context.
const DefaultMaxClauseLength = 500

// clauseSeparators in priority order: paragraph break first, then line break,
// sentence end, semicolon.
var clauseSeparators = []string{"\n\n", "\n", ". ", ";"}

// ExtractClauseContext expands the match at text[start:end] to the enclosing
// logical clause. It tries each separator in priority order and returns the
// first bounded span that fits within maxLength. If every separator yields an
// over-length span it falls back to a symmetric window of maxLength/2 bytes on
// each side of the match. The result always contains the matched substring.
// Indices must satisfy 0 <= start <= end <= len(text).
func ExtractClauseContext(text string, start, end, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxClauseLength
	}

	for _, sep := range clauseSeparators {
		clauseStart := strings.LastIndex(text[:start], sep)
		if clauseStart == -1 {
			clauseStart = 0
		} else {
			clauseStart += len(sep)
		}

		clauseEnd := strings.Index(text[end:], sep)
		if clauseEnd == -1 {
			clauseEnd = len(text) - end
		}

		clause := text[clauseStart : end+clauseEnd]
		if len(clause) <= maxLength {
			return strings.TrimSpace(clause)
		}
	}

	// All separators produced over-length spans; take a window around the
	// match instead.
	preStart := start - maxLength/2
	if preStart < 0 {
		preStart = 0
	}
	postEnd := end + maxLength/2
	if postEnd > len(text) {
		postEnd = len(text)
	}
	return strings.TrimSpace(text[preStart:start] + text[start:end] + text[end:postEnd])
}
