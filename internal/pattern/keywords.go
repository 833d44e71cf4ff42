package pattern

import "strings"

// maxKeywords caps how many keywords a pattern carries.
const maxKeywords = 5

// stopWords are never treated as keywords.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "about": true, "into": true, "over": true,
	"after": true, "before": true, "some": true, "then": true, "than": true,
	"have": true, "will": true, "need": true, "needs": true, "todo": true,
	"task": true, "tasks": true, "today": true, "tomorrow": true,
}

// ExtractKeywords tokenizes title and description, strips punctuation, drops
// stop words and words of length <= 3, and keeps the first five unique
// survivors in first-occurrence order.
func ExtractKeywords(title, description string) []string {
	text := strings.ToLower(title + " " + description)

	var sb strings.Builder
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}

	seen := make(map[string]bool)
	var keywords []string
	for _, word := range strings.Fields(sb.String()) {
		if len(word) <= 3 || stopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}
