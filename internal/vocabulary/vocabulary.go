// Package vocabulary holds the categorized skill term database and the
// extractor that matches those terms against free text. The vocabulary is
// plain data (TOML) so it can be extended without touching extraction logic.
package vocabulary

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed vocabulary.toml
var defaultTOML string

// file mirrors the on-disk TOML layout.
type file struct {
	Skills map[string][]string `toml:"skills"`
}

type pattern struct {
	term string
	re   *regexp.Regexp
}

// Vocabulary is the immutable skill database. Build it once at startup and
// share it read-only; Extract is safe for concurrent use.
type Vocabulary struct {
	categories map[string][]string
	patterns   []pattern
}

// Default parses the embedded vocabulary shipped with the binary.
func Default() (*Vocabulary, error) {
	var f file
	if _, err := toml.Decode(defaultTOML, &f); err != nil {
		return nil, fmt.Errorf("failed to parse embedded vocabulary: %w", err)
	}
	return build(f.Skills)
}

// LoadFile reads a vocabulary from an external TOML file, replacing the
// embedded default entirely.
func LoadFile(path string) (*Vocabulary, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("failed to load vocabulary from %s: %w", path, err)
	}
	if len(f.Skills) == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no [skills] categories", path)
	}
	return build(f.Skills)
}

func build(categories map[string][]string) (*Vocabulary, error) {
	v := &Vocabulary{categories: make(map[string][]string, len(categories))}

	seen := make(map[string]bool)
	for name, terms := range categories {
		normalized := make([]string, 0, len(terms))
		for _, term := range terms {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" {
				continue
			}
			normalized = append(normalized, term)
			if seen[term] {
				continue
			}
			seen[term] = true

			re, err := compileTerm(term)
			if err != nil {
				return nil, fmt.Errorf("invalid vocabulary term %q: %w", term, err)
			}
			v.patterns = append(v.patterns, pattern{term: term, re: re})
		}
		v.categories[name] = normalized
	}
	return v, nil
}

// compileTerm builds a whole-word/whole-phrase matcher for a single term.
// Boundaries are spelled out as "edge or non-word character" instead of \b:
// terms ending in symbols ("c++", "c#") have no word character for \b to
// anchor on, so a bare \b would silently never match them.
func compileTerm(term string) (*regexp.Regexp, error) {
	return regexp.Compile(`(^|[^a-z0-9_])` + regexp.QuoteMeta(term) + `([^a-z0-9_]|$)`)
}

// Extract returns the sorted, deduplicated vocabulary terms that occur in
// text. Matching is case-insensitive and whole-word only, so "java" is not
// found inside "javascript".
func (v *Vocabulary) Extract(text string) []string {
	found := []string{}
	if strings.TrimSpace(text) == "" {
		return found
	}

	lower := strings.ToLower(text)
	for _, p := range v.patterns {
		if p.re.MatchString(lower) {
			found = append(found, p.term)
		}
	}
	sort.Strings(found)
	return found
}

// Category is one named group of skill terms.
type Category struct {
	Name  string
	Terms []string
}

// Categories returns the vocabulary grouped by category name, sorted for a
// stable response shape.
func (v *Vocabulary) Categories() []Category {
	names := make([]string, 0, len(v.categories))
	for name := range v.categories {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Category, 0, len(names))
	for _, name := range names {
		terms := make([]string, len(v.categories[name]))
		copy(terms, v.categories[name])
		out = append(out, Category{Name: name, Terms: terms})
	}
	return out
}

// Size reports the total number of terms across all categories.
func (v *Vocabulary) Size() int {
	return len(v.patterns)
}
