package workers

import (
	"fmt"
	"regexp"
)

// ToolDef describes one tool a worker exposes through the gateway and the
// MCP server.
type ToolDef struct {
	Name        string
	Description string
}

var idCleanRe = regexp.MustCompile(`[^a-zA-Z0-9]`)

// generateContractID builds a contract ID from an input hint and a
// caller-supplied sequence number.
func generateContractID(input string, seq int64) string {
	cleaned := idCleanRe.ReplaceAllString(input, "")
	if len(cleaned) > 20 {
		cleaned = cleaned[:20]
	}
	return fmt.Sprintf("contract_%s_%d", cleaned, seq)
}
