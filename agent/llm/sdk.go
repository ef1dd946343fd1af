package llm

import (
	"context"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"

	contractx "github.com/emiliomantilla/AIgent007/agent/contract"
)

// SDKGenerator reaches OpenRouter with the raw OpenAI SDK client instead of
// the eino graph pipeline. Both transports satisfy the same contract.
type SDKGenerator struct {
	client       *openaisdk.Client
	model        string
	systemPrompt string
}

func NewSDKGenerator(client *openaisdk.Client, model string, systemPrompt string) *SDKGenerator {
	return &SDKGenerator{
		client:       client,
		model:        strings.TrimSpace(model),
		systemPrompt: systemPrompt,
	}
}

func (g *SDKGenerator) Generate(ctx context.Context, prompt string, shape *contractx.OutputShape) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("%w: sdk client is nil", contractx.ErrValidation)
	}

	completion, err := g.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(g.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(g.systemPrompt),
			openaisdk.UserMessage(withShapeHint(prompt, shape)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: chat completion: %v", contractx.ErrModelInvoke, err)
	}
	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: empty completion", contractx.ErrSchemaViolation)
	}
	return completion.Choices[0].Message.Content, nil
}
