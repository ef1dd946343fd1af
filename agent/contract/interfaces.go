package contract

import "context"

// TextGenerator is the only text-generation boundary in the repository.
// Implementations range from the rule-based scripted generator used in demos
// and tests to a real chat model reached over OpenRouter.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, shape *OutputShape) (string, error)
}

// CallGateway confirms availability of a resource with its listed contact.
// The simulated gate flips a coin; a real telephony integration slots in
// behind the same method without touching matching or formatting logic.
type CallGateway interface {
	Confirm(ctx context.Context, resourceName string, contact string) (CallOutcome, error)
}
