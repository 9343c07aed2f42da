package classifier

import "strings"

var (
	billingKeywords   = []string{"bill", "payment", "refund"}
	accountKeywords   = []string{"password", "login", "access"}
	technicalKeywords = []string{"crash", "error", "bug", "not working"}
	criticalKeywords  = []string{"urgent", "critical", "blocking"}
	highKeywords      = []string{"important"}
)

// Fallback classifies description with case-insensitive substring rules.
// Category rules are checked in order and the first hit wins; a technical
// match raises the default priority to medium. Priority keywords are then
// applied on top.
func Fallback(description string) Result {
	text := strings.ToLower(description)

	result := Result{
		SuggestedCategory: CategoryGeneral,
		SuggestedPriority: PriorityLow,
	}

	switch {
	case containsAny(text, billingKeywords):
		result.SuggestedCategory = CategoryBilling
	case containsAny(text, accountKeywords):
		result.SuggestedCategory = CategoryAccount
	case containsAny(text, technicalKeywords):
		result.SuggestedCategory = CategoryTechnical
		result.SuggestedPriority = PriorityMedium
	}

	switch {
	case containsAny(text, criticalKeywords):
		result.SuggestedPriority = PriorityCritical
	case containsAny(text, highKeywords):
		result.SuggestedPriority = PriorityHigh
	}

	return result
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
