package executor

import (
	"encoding/json"
	"fmt"
	"strings"

	contractx "github.com/emiliomantilla/AIgent007/agent/contract"
)

func formatReply(in *GraphState) (contractx.ExecutionResult, error) {
	if in == nil {
		return contractx.ExecutionResult{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	if len(in.Candidates) == 0 {
		return contractx.ExecutionResult{
			Status:  contractx.StatusSuccess,
			Message: emptyMatchMessage(in.Envelope.Intent),
		}, nil
	}

	lines := []string{matchHeader(in.Envelope.Intent)}
	names := make([]string, 0, len(in.Candidates))
	for _, cand := range in.Candidates {
		names = append(names, cand.Name)
		lines = append(lines, cand.Line)
		if cand.ConfirmNote != "" {
			lines = append(lines, "  "+cand.ConfirmNote)
		}
	}

	return contractx.ExecutionResult{
		Status:               contractx.StatusSuccess,
		Message:              strings.Join(lines, "\n"),
		RecommendedResources: names,
	}, nil
}

// passthroughReply surfaces the generator's own text for general queries:
// the canned reply when the envelope carries one, the raw response otherwise.
func passthroughReply(in *GraphState) (contractx.ExecutionResult, error) {
	if in == nil {
		return contractx.ExecutionResult{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	message := strings.TrimSpace(in.RawResponse)
	if len(in.Envelope.Details) > 0 {
		var details contractx.GeneralDetails
		if err := json.Unmarshal(in.Envelope.Details, &details); err == nil && strings.TrimSpace(details.Reply) != "" {
			message = strings.TrimSpace(details.Reply)
		}
	}

	return contractx.ExecutionResult{
		Status:  contractx.StatusSuccess,
		Message: message,
	}, nil
}

func matchHeader(kind contractx.RequestKind) string {
	switch kind {
	case contractx.KindShelterRequest:
		return "Here are shelters that can take you in tonight:"
	case contractx.KindJobRequest:
		return "Here are job openings that fit your skills:"
	case contractx.KindUpskillRequest:
		return "Here are courses that match your interest:"
	default:
		return "Here is what I found:"
	}
}

func emptyMatchMessage(kind contractx.RequestKind) string {
	switch kind {
	case contractx.KindShelterRequest:
		return "Sorry, I couldn't find any shelters matching your needs right now."
	case contractx.KindJobRequest:
		return "Sorry, I couldn't find any job openings matching your skills right now."
	case contractx.KindUpskillRequest:
		return "Sorry, I couldn't find any courses matching your interest right now."
	default:
		return "Sorry, I couldn't find anything matching your request right now."
	}
}
