package scoring

import (
	"fmt"
	"strings"
)

// Advisory lines. Wording is part of the contract with the frontend, which
// pattern-matches the praise line to pick an icon.
const (
	suggestionNoSkills = "No technical skills found in your resume. Add more skill keywords from the job description."
	suggestionFewer    = "Your resume appears to have fewer technical skills than the job description requires."
	suggestionClosing  = "Ensure your resume uses the same terminology as the job description (ATS systems are keyword-based)."
)

// minStrongMatches is the matched-skill count below which the resume is
// flagged as having fewer skills than the job requires.
const minStrongMatches = 5

// maxListedMissing caps how many missing skills the advisory line names.
const maxListedMissing = 5

// Suggestions turns the matched and missing skill sets into advisory text.
// The rules fire in a fixed order and the output is a pure function of the
// inputs; the closing terminology line is always present.
func Suggestions(matched, missing []string) []string {
	suggestions := make([]string, 0, 4)

	if len(matched) == 0 {
		suggestions = append(suggestions, suggestionNoSkills)
	}

	if len(missing) > 0 {
		top := missing
		if len(top) > maxListedMissing {
			top = top[:maxListedMissing]
		}
		suggestions = append(suggestions,
			"Consider developing or highlighting these skills: "+strings.Join(top, ", "))
	}

	if len(matched) < minStrongMatches {
		suggestions = append(suggestions, suggestionFewer)
	} else {
		suggestions = append(suggestions,
			fmt.Sprintf("Great! You have %d matching skills. Highlight these prominently in your resume.", len(matched)))
	}

	suggestions = append(suggestions, suggestionClosing)
	return suggestions
}
