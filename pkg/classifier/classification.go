// Package classifier suggests a category and priority for a support ticket
// description. Configured LLM providers are tried one after another and a
// keyword rule set answers when none of them succeeds, so Classify always
// returns a result.
package classifier

// Category is the suggested ticket category.
type Category string

const (
	CategoryBilling   Category = "billing"
	CategoryTechnical Category = "technical"
	CategoryAccount   Category = "account"
	CategoryGeneral   Category = "general"
)

// Categories lists every category in prompt order.
var Categories = []Category{CategoryBilling, CategoryTechnical, CategoryAccount, CategoryGeneral}

func (c Category) Valid() bool {
	switch c {
	case CategoryBilling, CategoryTechnical, CategoryAccount, CategoryGeneral:
		return true
	}
	return false
}

// Priority is the suggested ticket priority.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Priorities lists every priority in prompt order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Result is the classification returned to callers and serialized verbatim
// as the HTTP response body.
type Result struct {
	SuggestedCategory Category `json:"suggested_category"`
	SuggestedPriority Priority `json:"suggested_priority"`
}

// Valid reports whether both fields belong to their enumerations.
func (r Result) Valid() bool {
	return r.SuggestedCategory.Valid() && r.SuggestedPriority.Valid()
}
