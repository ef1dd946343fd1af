package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/emiliomantilla/AIgent007/agent/contract"
)

type GraphInput struct {
	Query string
}

type GraphState struct {
	Query string

	RawResponse string
	ParseFailed bool
	Envelope    contractx.IntentEnvelope

	Candidates []candidate
}

// candidate is one matched resource on its way into the reply.
type candidate struct {
	Name              string
	Contact           string
	Line              string
	NeedsConfirmation bool
	ConfirmNote       string
}

func (e *Executor) compileExecuteGraph(
	ctx context.Context,
) (compose.Runnable[GraphInput, contractx.ExecutionResult], error) {
	graph := compose.NewGraph[GraphInput, contractx.ExecutionResult]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in GraphInput) (*GraphState, error) {
			query := strings.TrimSpace(in.Query)
			if query == "" {
				return nil, ErrEmptyQuery
			}
			return &GraphState{Query: query}, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("understand",
		compose.InvokableLambda(func(ctx context.Context, in *GraphState) (*GraphState, error) {
			return e.understand(ctx, in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node understand: %w", err)
	}

	if err := graph.AddLambdaNode("parse_intent",
		compose.InvokableLambda(func(ctx context.Context, in *GraphState) (*GraphState, error) {
			return e.parseIntent(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node parse_intent: %w", err)
	}

	if err := graph.AddLambdaNode("reject_unparsed",
		compose.InvokableLambda(func(ctx context.Context, in *GraphState) (contractx.ExecutionResult, error) {
			return contractx.ExecutionResult{
				Status:  contractx.StatusError,
				Message: couldNotUnderstand,
			}, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node reject_unparsed: %w", err)
	}

	if err := graph.AddLambdaNode("dispatch_matcher",
		compose.InvokableLambda(func(ctx context.Context, in *GraphState) (*GraphState, error) {
			return e.dispatchMatcher(ctx, in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node dispatch_matcher: %w", err)
	}

	if err := graph.AddLambdaNode("confirm_candidates",
		compose.InvokableLambda(func(ctx context.Context, in *GraphState) (*GraphState, error) {
			return e.confirmCandidates(ctx, in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node confirm_candidates: %w", err)
	}

	if err := graph.AddLambdaNode("format_reply",
		compose.InvokableLambda(func(ctx context.Context, in *GraphState) (contractx.ExecutionResult, error) {
			return formatReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node format_reply: %w", err)
	}

	if err := graph.AddLambdaNode("passthrough",
		compose.InvokableLambda(func(ctx context.Context, in *GraphState) (contractx.ExecutionResult, error) {
			return passthroughReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node passthrough: %w", err)
	}

	branch := compose.NewGraphBranch(
		func(ctx context.Context, in *GraphState) (string, error) {
			if in == nil {
				return "", fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
			}
			if in.ParseFailed {
				return "reject_unparsed", nil
			}
			switch in.Envelope.Intent {
			case contractx.KindShelterRequest, contractx.KindJobRequest, contractx.KindUpskillRequest:
				return "dispatch_matcher", nil
			default:
				return "passthrough", nil
			}
		},
		map[string]bool{
			"reject_unparsed":  true,
			"dispatch_matcher": true,
			"passthrough":      true,
		},
	)

	if err := graph.AddBranch("parse_intent", branch); err != nil {
		return nil, fmt.Errorf("add intent branch: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "understand"},
		{"understand", "parse_intent"},
		{"dispatch_matcher", "confirm_candidates"},
		{"confirm_candidates", "format_reply"},
		{"reject_unparsed", compose.END},
		{"format_reply", compose.END},
		{"passthrough", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("executor.execute_request"))
	if err != nil {
		return nil, fmt.Errorf("compile executor graph: %w", err)
	}
	return runner, nil
}
