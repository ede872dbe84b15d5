package scoring

import (
	"sort"
	"strings"
)

// maxKeywords caps the display keyword list.
const maxKeywords = 10

// Keywords pulls up to 10 distinct salient words from text: lowercased,
// length >= 4, stop words removed, deduplicated before the cap is applied,
// returned sorted alphabetically. This feeds the UI only, never the score.
func Keywords(text string) []string {
	seen := make(map[string]struct{})
	keywords := make([]string, 0, maxKeywords)

	for _, w := range longWordRe.FindAllString(strings.ToLower(text), -1) {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if _, stop := keywordStopWords[w]; stop {
			continue
		}
		keywords = append(keywords, w)
		if len(keywords) == maxKeywords {
			break
		}
	}

	sort.Strings(keywords)
	return keywords
}
