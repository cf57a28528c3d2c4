package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessQueryIntents(t *testing.T) {
	service := NewQueryService()

	tests := []struct {
		name     string
		query    string
		contains string
	}{
		{"help intent", "show me the help please", "Available commands"},
		{"receipt intent", "I need a payment receipt", "Receipt generated"},
		{"policy intent", "tell me about policy details", "financial protection"},
		{"claim intent", "what is my claim status", "requests for payment"},
		{"pdf intent", "can I download a document", "PDF generated"},
		{"unknown intent", "what is the weather today", "insurance-related questions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, service.ProcessQuery(tt.query), tt.contains)
		})
	}
}

func TestProcessQueryMatchesWholeTokensOnly(t *testing.T) {
	service := NewQueryService()

	// "helpful" must not trigger the help intent.
	response := service.ProcessQuery("be helpful about my insurance")
	assert.Contains(t, response, "insurance-related questions")
}
