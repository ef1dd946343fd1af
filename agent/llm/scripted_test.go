package llm

import (
	"context"
	"encoding/json"
	"testing"

	contractx "github.com/emiliomantilla/AIgent007/agent/contract"
	promptx "github.com/emiliomantilla/AIgent007/agent/prompt"
)

func generate(t *testing.T, query string) contractx.IntentEnvelope {
	t.Helper()

	prompts := promptx.LoadPromptSet()
	raw, err := NewScripted().Generate(context.Background(), prompts.RenderIntake(query), nil)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var envelope contractx.IntentEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		t.Fatalf("scripted response is not valid JSON: %v\n%s", err, raw)
	}
	return envelope
}

func TestScriptedShelterRequest(t *testing.T) {
	t.Parallel()

	envelope := generate(t, "I need a shelter, preferably in the North, and I have a small dog")
	if envelope.Intent != contractx.KindShelterRequest {
		t.Fatalf("intent = %s, want %s", envelope.Intent, contractx.KindShelterRequest)
	}

	var details contractx.ShelterDetails
	if err := json.Unmarshal(envelope.Details, &details); err != nil {
		t.Fatalf("decode details: %v", err)
	}
	// The canned payload ignores the query's pet mention on purpose.
	if details.Location != "any" || details.PetFriendly || details.BedsNeeded != 1 {
		t.Fatalf("unexpected shelter details: %+v", details)
	}
}

func TestScriptedJobRequest(t *testing.T) {
	t.Parallel()

	envelope := generate(t, "help me find a job")
	if envelope.Intent != contractx.KindJobRequest {
		t.Fatalf("intent = %s, want %s", envelope.Intent, contractx.KindJobRequest)
	}

	var details contractx.JobDetails
	if err := json.Unmarshal(envelope.Details, &details); err != nil {
		t.Fatalf("decode details: %v", err)
	}
	if details.JobType != "any" || len(details.Skills) != 2 {
		t.Fatalf("unexpected job details: %+v", details)
	}
}

func TestScriptedUpskillRequest(t *testing.T) {
	t.Parallel()

	for _, query := range []string{"I want to upskill", "any course for me?"} {
		envelope := generate(t, query)
		if envelope.Intent != contractx.KindUpskillRequest {
			t.Fatalf("intent for %q = %s, want %s", query, envelope.Intent, contractx.KindUpskillRequest)
		}
	}

	envelope := generate(t, "I want to upskill")
	var details contractx.UpskillDetails
	if err := json.Unmarshal(envelope.Details, &details); err != nil {
		t.Fatalf("decode details: %v", err)
	}
	if details.Interest != "IT" || details.TimeCommitment != "flexible" {
		t.Fatalf("unexpected upskill details: %+v", details)
	}
}

func TestScriptedGeneralQuery(t *testing.T) {
	t.Parallel()

	envelope := generate(t, "hello there")
	if envelope.Intent != contractx.KindGeneralQuery {
		t.Fatalf("intent = %s, want %s", envelope.Intent, contractx.KindGeneralQuery)
	}

	var details contractx.GeneralDetails
	if err := json.Unmarshal(envelope.Details, &details); err != nil {
		t.Fatalf("decode details: %v", err)
	}
	if details.Reply == "" {
		t.Fatal("expected a non-empty canned reply")
	}
}

// The intake instruction itself names every intent keyword; only the request
// portion after the final "Request:" line may drive the match.
func TestRequestPortionIgnoresInstruction(t *testing.T) {
	t.Parallel()

	prompts := promptx.LoadPromptSet()
	rendered := prompts.RenderIntake("hello there")
	if got := requestPortion(rendered); got != "hello there" {
		t.Fatalf("requestPortion() = %q, want %q", got, "hello there")
	}

	envelope := generate(t, "hello there")
	if envelope.Intent != contractx.KindGeneralQuery {
		t.Fatalf("instruction keywords leaked into matching: intent = %s", envelope.Intent)
	}
}

func TestRequestPortionBarePrompt(t *testing.T) {
	t.Parallel()

	if got := requestPortion("  I Need A Shelter  "); got != "i need a shelter" {
		t.Fatalf("requestPortion() = %q", got)
	}
}
