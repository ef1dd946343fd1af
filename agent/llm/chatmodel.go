package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/emiliomantilla/AIgent007/agent/contract"
)

type chatModelGenerator struct {
	runner compose.Runnable[map[string]any, *schema.Message]
}

// FromChatModel adapts an eino chat model (e.g. one built by pkg/openrouter)
// to the TextGenerator contract through a compiled prompt->model graph.
func FromChatModel(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
) (contractx.TextGenerator, error) {
	template := einoprompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("{input}"),
	)

	graph := compose.NewGraph[map[string]any, *schema.Message]()
	if err := graph.AddChatTemplateNode("prompt", template); err != nil {
		return nil, fmt.Errorf("add generate prompt node: %w", err)
	}
	if err := graph.AddChatModelNode("model", chatModel); err != nil {
		return nil, fmt.Errorf("add generate model node: %w", err)
	}
	if err := graph.AddEdge(compose.START, "prompt"); err != nil {
		return nil, fmt.Errorf("add generate edge start->prompt: %w", err)
	}
	if err := graph.AddEdge("prompt", "model"); err != nil {
		return nil, fmt.Errorf("add generate edge prompt->model: %w", err)
	}
	if err := graph.AddEdge("model", compose.END); err != nil {
		return nil, fmt.Errorf("add generate edge model->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("llm.generate_graph"))
	if err != nil {
		return nil, fmt.Errorf("%w: compile generate graph: %v", contractx.ErrModelInvoke, err)
	}

	return &chatModelGenerator{runner: runner}, nil
}

func (g *chatModelGenerator) Generate(ctx context.Context, prompt string, shape *contractx.OutputShape) (string, error) {
	msg, err := g.runner.Invoke(ctx, map[string]any{
		"input": withShapeHint(prompt, shape),
	})
	if err != nil {
		return "", fmt.Errorf("%w: generate invoke: %v", contractx.ErrModelInvoke, err)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return "", fmt.Errorf("%w: empty model response", contractx.ErrSchemaViolation)
	}
	return msg.Content, nil
}

// withShapeHint appends the desired output shape to the prompt. The shape is
// a steering hint, not an enforced schema.
func withShapeHint(prompt string, shape *contractx.OutputShape) string {
	if shape == nil || len(shape.Fields) == 0 {
		return prompt
	}
	hint, err := json.Marshal(shape)
	if err != nil {
		return prompt
	}
	return prompt + "\n\nShape the JSON response as: " + string(hint)
}
