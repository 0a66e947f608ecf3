// Package llm - util.go provides shared utilities for model response processing.
package llm

import "strings"

// Sanitize removes markdown code fence wrappers from model output. Models
// often wrap responses in ```json ... ``` blocks even when instructed not to.
// Sanitize is idempotent and never alters content that is not fenced.
func Sanitize(raw string) string {
	text := strings.TrimSpace(raw)

	// Peel fence layers until the text is no longer fenced; a single pass
	// would leave double-wrapped output fenced, breaking idempotence.
	for {
		stripped, ok := stripFence(text)
		if !ok {
			return text
		}
		text = stripped
	}
}

// stripFence removes one layer of ``` fencing. It reports false when the
// text is not wrapped in a complete leading+trailing fence pair.
func stripFence(text string) (string, bool) {
	if len(text) < 6 || !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") {
		return text, false
	}

	body := strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")

	// Drop a language tag ("json", "markdown", ...) on the opening fence line.
	if idx := strings.Index(body, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(body[:idx])
		if firstLine != "" && len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[") {
			body = body[idx+1:]
		}
	}

	return strings.TrimSpace(body), true
}
