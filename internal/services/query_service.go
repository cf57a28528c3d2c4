package services

import "strings"

// QueryService answers free-text insurance questions with a keyword intent
// matcher. It may read slot data for context but never participates in the
// booking state machine.
type QueryService interface {
	ProcessQuery(query string) string
}

type queryService struct{}

func NewQueryService() QueryService {
	return &queryService{}
}

func (s *queryService) ProcessQuery(query string) string {
	tokens := strings.Fields(strings.ToLower(query))

	switch {
	case containsAny(tokens, "help", "commands", "options", "list"):
		return "Available commands: /generate-receipt (Generate a payment receipt), /policy (Get policy details), /claim-status (Check claim status), /pdf (Generate a PDF of documents), /help (List all available commands)"
	case containsAny(tokens, "receipt", "generate", "payment", "bill"):
		return "✅ Receipt generated. [📄 receipt.pdf]"
	case containsAny(tokens, "policy", "details", "information"):
		return "📑 Policies provide financial protection against various risks. Types include health, auto, home, and life insurance. Contact an agent for personalized details."
	case containsAny(tokens, "claim", "status"):
		return "📋 Claims are requests for payment from your insurance policy. Status can be pending, approved, or denied. Check your policy for claim procedures."
	case containsAny(tokens, "pdf", "document", "file", "download"):
		return "📄 PDF generated successfully."
	default:
		return "As an InsurAI assistant, I can help with insurance-related questions. Please ask about policies, claims, agents, or use /help for commands."
	}
}

func containsAny(tokens []string, keywords ...string) bool {
	for _, token := range tokens {
		for _, keyword := range keywords {
			if token == keyword {
				return true
			}
		}
	}
	return false
}
