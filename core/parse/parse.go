package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// Strict parses content as a complete JSON document (object, array, or
// scalar) and returns the decoded value. Trailing non-whitespace after the
// document is an error, as is empty input.
func Strict(content string) (any, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, fmt.Errorf("empty input")
	}

	var value any
	if err := json.Unmarshal([]byte(trimmed), &value); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return value, nil
}

// Repaired attempts to fix malformed JSON offline using jsonrepair and then
// parses the repaired text. It handles the usual LLM damage: single quotes,
// unquoted keys, trailing commas, markdown code fences. If repair itself
// fails, or the repaired text still does not parse, an error is returned.
func Repaired(content string) (any, error) {
	fixed, err := jsonrepair.JSONRepair(content)
	if err != nil {
		return nil, fmt.Errorf("repair failed: %w", err)
	}

	value, err := Strict(fixed)
	if err != nil {
		return nil, fmt.Errorf("repaired text is not valid JSON: %w", err)
	}
	return value, nil
}
