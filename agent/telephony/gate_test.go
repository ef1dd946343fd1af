package telephony

import (
	"context"
	"math/rand"
	"strings"
	"testing"
)

func TestConfirmSuccess(t *testing.T) {
	t.Parallel()

	gate := NewSimulatedGate(WithFlip(func() bool { return true }))
	outcome, err := gate.Confirm(context.Background(), "Community Shelter A", "555-0101")
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if !outcome.Success {
		t.Fatal("expected success outcome")
	}
	if !strings.Contains(outcome.Message, "Community Shelter A") {
		t.Fatalf("message must name the resource: %q", outcome.Message)
	}
	if !strings.Contains(outcome.Message, "555-0101") {
		t.Fatalf("message must include the contact: %q", outcome.Message)
	}
}

func TestConfirmFailure(t *testing.T) {
	t.Parallel()

	gate := NewSimulatedGate(WithFlip(func() bool { return false }))
	outcome, err := gate.Confirm(context.Background(), "Northside Hostel", "555-0102")
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if outcome.Success {
		t.Fatal("expected failure outcome")
	}
	if !strings.Contains(outcome.Message, "Could not confirm availability") {
		t.Fatalf("unexpected failure message: %q", outcome.Message)
	}
	if !strings.Contains(outcome.Message, "Northside Hostel") {
		t.Fatalf("message must name the resource: %q", outcome.Message)
	}
}

func TestConfirmWithSeededRandIsDeterministic(t *testing.T) {
	t.Parallel()

	first := NewSimulatedGate(WithRand(rand.New(rand.NewSource(7))))
	second := NewSimulatedGate(WithRand(rand.New(rand.NewSource(7))))

	for i := 0; i < 10; i++ {
		a, err := first.Confirm(context.Background(), "X", "555")
		if err != nil {
			t.Fatalf("Confirm() error = %v", err)
		}
		b, err := second.Confirm(context.Background(), "X", "555")
		if err != nil {
			t.Fatalf("Confirm() error = %v", err)
		}
		if a.Success != b.Success {
			t.Fatalf("call %d diverged: %v vs %v", i, a.Success, b.Success)
		}
	}
}
