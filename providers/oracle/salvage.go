package oracle

import "strings"

// salvageSpan extracts the greedy brace-delimited span from content: first
// '{' to last '}'. This is deliberately not nested-balance aware; when the
// text contains multiple top-level objects the span covers all of them and
// the subsequent parse decides whether it holds together.
func salvageSpan(content string) (string, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return content[start : end+1], true
}
