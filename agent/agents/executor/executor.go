package executor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"

	catalogx "github.com/emiliomantilla/AIgent007/agent/catalog"
	contractx "github.com/emiliomantilla/AIgent007/agent/contract"
	matchx "github.com/emiliomantilla/AIgent007/agent/match"
	promptx "github.com/emiliomantilla/AIgent007/agent/prompt"
)

var ErrEmptyQuery = errors.New("query is empty")

// couldNotUnderstand is the single terminal user-facing failure message: the
// generator's reply did not parse as an intent envelope. No retry.
const couldNotUnderstand = "Could not understand your request. Please try again."

var intakeShape = &contractx.OutputShape{
	Name: "intent_envelope",
	Fields: map[string]string{
		"intent":  "string",
		"details": "object",
	},
}

// Executor turns one free-text aid request into a formatted recommendation:
// understand via the text-generation collaborator, match against the catalog,
// confirm availability per candidate (shelter and job only), format a reply.
// Each call is an independent request/response; there is no session state.
type Executor struct {
	gen    contractx.TextGenerator
	calls  contractx.CallGateway
	source catalogx.Source

	prompts     promptx.PromptSet
	graphRunner compose.Runnable[GraphInput, contractx.ExecutionResult]
}

func New(
	gen contractx.TextGenerator,
	calls contractx.CallGateway,
	source catalogx.Source,
) (*Executor, error) {
	if gen == nil {
		return nil, errors.New("text generator is required")
	}
	if calls == nil {
		return nil, errors.New("call gateway is required")
	}
	if source == nil {
		return nil, errors.New("catalog source is required")
	}

	e := &Executor{
		gen:     gen,
		calls:   calls,
		source:  source,
		prompts: promptx.LoadPromptSet(),
	}

	graphRunner, err := e.compileExecuteGraph(context.Background())
	if err != nil {
		return nil, err
	}
	e.graphRunner = graphRunner

	return e, nil
}

// Execute handles a single request. A malformed collaborator response is a
// terminal error result, not an error return; matcher misses surface as
// per-category "couldn't find any" messages.
func (e *Executor) Execute(ctx context.Context, query string) (contractx.ExecutionResult, error) {
	return e.graphRunner.Invoke(ctx, GraphInput{Query: query})
}

func (e *Executor) understand(ctx context.Context, in *GraphState) (*GraphState, error) {
	raw, err := e.gen.Generate(ctx, e.prompts.RenderIntake(in.Query), intakeShape)
	if err != nil {
		return nil, err
	}
	in.RawResponse = raw
	return in, nil
}

func (e *Executor) parseIntent(in *GraphState) (*GraphState, error) {
	var envelope contractx.IntentEnvelope
	if err := json.Unmarshal([]byte(strings.TrimSpace(in.RawResponse)), &envelope); err != nil {
		log.Warn().Err(err).Msg("generator response did not parse as intent envelope")
		in.ParseFailed = true
		return in, nil
	}
	in.Envelope = envelope
	return in, nil
}

func (e *Executor) dispatchMatcher(ctx context.Context, in *GraphState) (*GraphState, error) {
	switch in.Envelope.Intent {
	case contractx.KindShelterRequest:
		return e.matchShelter(ctx, in)
	case contractx.KindJobRequest:
		return e.matchJobs(ctx, in)
	case contractx.KindUpskillRequest:
		return e.matchUpskilling(ctx, in)
	default:
		return nil, fmt.Errorf("%w: no matcher for intent=%q", contractx.ErrValidation, in.Envelope.Intent)
	}
}

func (e *Executor) matchShelter(ctx context.Context, in *GraphState) (*GraphState, error) {
	var details contractx.ShelterDetails
	if err := decodeDetails(in.Envelope.Details, &details); err != nil {
		return nil, err
	}

	matched, err := matchx.Shelter(ctx, e.source, matchx.ShelterPreferences{
		Location:    details.Location,
		PetFriendly: details.PetFriendly,
		BedsNeeded:  details.BedsNeeded,
	})
	if err != nil {
		return nil, err
	}

	for _, p := range matched {
		in.Candidates = append(in.Candidates, candidate{
			Name:    p.Name,
			Contact: p.Contact,
			Line: fmt.Sprintf("- %s (%s): %d beds available. Contact: %s",
				p.Name, p.Location, p.BedsAvailable, p.Contact),
			NeedsConfirmation: true,
		})
	}
	return in, nil
}

func (e *Executor) matchJobs(ctx context.Context, in *GraphState) (*GraphState, error) {
	var details contractx.JobDetails
	if err := decodeDetails(in.Envelope.Details, &details); err != nil {
		return nil, err
	}

	matched, err := matchx.Jobs(ctx, e.source, matchx.JobPreferences{
		JobType: details.JobType,
		Skills:  details.Skills,
	})
	if err != nil {
		return nil, err
	}

	for _, j := range matched {
		in.Candidates = append(in.Candidates, candidate{
			Name:    j.Title,
			Contact: j.Contact,
			Line: fmt.Sprintf("- %s (%s, %s). Contact: %s",
				j.Title, j.Location, j.Type, j.Contact),
			NeedsConfirmation: true,
		})
	}
	return in, nil
}

func (e *Executor) matchUpskilling(ctx context.Context, in *GraphState) (*GraphState, error) {
	var details contractx.UpskillDetails
	if err := decodeDetails(in.Envelope.Details, &details); err != nil {
		return nil, err
	}

	matched, err := matchx.Upskilling(ctx, e.source, matchx.UpskillPreferences{
		Interest:       details.Interest,
		TimeCommitment: details.TimeCommitment,
	})
	if err != nil {
		return nil, err
	}

	for _, c := range matched {
		in.Candidates = append(in.Candidates, candidate{
			Name: c.Name,
			Line: fmt.Sprintf("- %s (%s, cost: %.0f). Skills gained: %s",
				c.Name, c.Duration, c.Cost, strings.Join(c.SkillsGained, ", ")),
		})
	}
	return in, nil
}

func (e *Executor) confirmCandidates(ctx context.Context, in *GraphState) (*GraphState, error) {
	for i := range in.Candidates {
		cand := &in.Candidates[i]
		if !cand.NeedsConfirmation {
			continue
		}
		outcome, err := e.calls.Confirm(ctx, cand.Name, cand.Contact)
		if err != nil {
			return nil, err
		}
		cand.ConfirmNote = outcome.Message
	}
	return in, nil
}

func decodeDetails(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode intent details: %v", contractx.ErrSchemaViolation, err)
	}
	return nil
}
