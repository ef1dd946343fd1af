package llm

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/emiliomantilla/AIgent007/agent/contract"
)

// Canned intent envelopes the scripted generator replies with. These are
// fixed payloads: a shelter request always comes back pet_friendly=false and
// beds_needed=1 no matter what the query says about pets or group size.
const (
	scriptedShelterResponse = `{"intent":"shelter_request","details":{"location":"any","pet_friendly":false,"beds_needed":1}}`
	scriptedJobResponse     = `{"intent":"job_request","details":{"job_type":"any","skills":["communication","retail"]}}`
	scriptedUpskillResponse = `{"intent":"upskill_request","details":{"interest":"IT","time_commitment":"flexible"}}`
	scriptedGeneralResponse = `{"intent":"general_query","details":{"reply":"Thanks for reaching out. Could you share a bit more about what you need - shelter, food, medical help, work, or training?"}}`
)

// ScriptedGenerator is the rule-based stand-in for a real language model:
// substring matching over the request text, canned JSON out. The output
// shape descriptor is accepted and ignored.
type ScriptedGenerator struct{}

func NewScripted() *ScriptedGenerator {
	return &ScriptedGenerator{}
}

func (s *ScriptedGenerator) Generate(_ context.Context, prompt string, _ *contractx.OutputShape) (string, error) {
	request := requestPortion(prompt)

	var resp string
	switch {
	case strings.Contains(request, "shelter"):
		resp = scriptedShelterResponse
	case strings.Contains(request, "job"):
		resp = scriptedJobResponse
	case strings.Contains(request, "upskill"), strings.Contains(request, "course"):
		resp = scriptedUpskillResponse
	default:
		resp = scriptedGeneralResponse
	}

	log.Debug().Str("request", request).Msg("scripted generator matched request")
	return resp, nil
}

// requestPortion isolates the user's request from the surrounding intake
// instruction, which itself names every intent keyword.
func requestPortion(prompt string) string {
	lower := strings.ToLower(prompt)
	if idx := strings.LastIndex(lower, "request:"); idx >= 0 {
		return strings.TrimSpace(lower[idx+len("request:"):])
	}
	return strings.TrimSpace(lower)
}
