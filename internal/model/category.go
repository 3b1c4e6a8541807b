package model

import "strings"

// Categories is the fixed label set every expense is filed under. The AI
// categorizer is constrained to this list; anything it cannot place lands
// in Other.
var Categories = []string{
	"Food", "Transportation", "Entertainment", "Shopping",
	"Bills", "Healthcare", "Education", "Other",
}

// DefaultCategory is the bucket for unclassifiable expenses.
const DefaultCategory = "Other"

// CategoryPrompt renders the label set for embedding in an LLM prompt.
func CategoryPrompt() string {
	return strings.Join(Categories, ", ")
}

// IsKnownCategory reports whether label is one of the fixed set.
func IsKnownCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}
