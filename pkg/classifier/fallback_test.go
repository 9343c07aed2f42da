package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallback(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    Result
	}{
		{
			name:        "billing keywords",
			description: "My payment failed, please refund",
			expected:    Result{SuggestedCategory: CategoryBilling, SuggestedPriority: PriorityLow},
		},
		{
			name:        "technical with urgent override",
			description: "The app keeps crashing, this is urgent",
			expected:    Result{SuggestedCategory: CategoryTechnical, SuggestedPriority: PriorityCritical},
		},
		{
			name:        "no keyword match",
			description: "Please tell me about your service",
			expected:    Result{SuggestedCategory: CategoryGeneral, SuggestedPriority: PriorityLow},
		},
		{
			name:        "technical defaults to medium",
			description: "Export button is not working",
			expected:    Result{SuggestedCategory: CategoryTechnical, SuggestedPriority: PriorityMedium},
		},
		{
			name:        "account with important",
			description: "Important: I cannot reset my PASSWORD",
			expected:    Result{SuggestedCategory: CategoryAccount, SuggestedPriority: PriorityHigh},
		},
		{
			name:        "billing wins over technical",
			description: "Error on my bill",
			expected:    Result{SuggestedCategory: CategoryBilling, SuggestedPriority: PriorityLow},
		},
		{
			name:        "account wins over technical",
			description: "login error",
			expected:    Result{SuggestedCategory: CategoryAccount, SuggestedPriority: PriorityLow},
		},
		{
			name:        "substring match without tokenization",
			description: "Where is the billing portal?",
			expected:    Result{SuggestedCategory: CategoryBilling, SuggestedPriority: PriorityLow},
		},
		{
			name:        "critical beats important",
			description: "Important and blocking bug",
			expected:    Result{SuggestedCategory: CategoryTechnical, SuggestedPriority: PriorityCritical},
		},
		{
			name:        "priority keyword on general ticket",
			description: "This is critical, call me",
			expected:    Result{SuggestedCategory: CategoryGeneral, SuggestedPriority: PriorityCritical},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Fallback(tt.description)
			assert.Equal(t, tt.expected, result)
			assert.True(t, result.Valid())
		})
	}
}
