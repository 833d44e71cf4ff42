package llmprovider

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fenceRe         = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	trailingCommaRe = regexp.MustCompile(`,\s*([\]}])`)
)

// CleanJSON strips markdown code fences and surrounding prose that models
// often wrap around JSON output.
func CleanJSON(text string) string {
	if matches := fenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

// DecodeJSON cleans a model response and unmarshals it into v. On a parse
// failure it makes one more attempt with trailing commas stripped, then
// gives up. Malformed output beyond that is a hard failure for the caller.
func DecodeJSON(text string, v any) error {
	cleaned := CleanJSON(text)
	err := json.Unmarshal([]byte(cleaned), v)
	if err == nil {
		return nil
	}

	repaired := trailingCommaRe.ReplaceAllString(cleaned, "$1")
	if repaired != cleaned {
		if rerr := json.Unmarshal([]byte(repaired), v); rerr == nil {
			return nil
		}
	}
	return err
}
