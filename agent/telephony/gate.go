// Package telephony holds the availability-confirmation stand-in. Real
// telephony lives behind the same contract.CallGateway interface (see
// pkg/callgate), so swapping it in never touches matching or formatting.
package telephony

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	contractx "github.com/emiliomantilla/AIgent007/agent/contract"
)

// SimulatedGate fakes a confirmation phone call: a coin flip decides the
// outcome. The flip is injectable so tests can force both branches.
type SimulatedGate struct {
	flip func() bool
}

type GateOption func(*SimulatedGate)

// WithFlip replaces the outcome source, e.g. with a deterministic one.
func WithFlip(flip func() bool) GateOption {
	return func(g *SimulatedGate) {
		if flip != nil {
			g.flip = flip
		}
	}
}

// WithRand draws outcomes from the given source.
func WithRand(rng *rand.Rand) GateOption {
	return func(g *SimulatedGate) {
		if rng != nil {
			g.flip = func() bool { return rng.Intn(2) == 0 }
		}
	}
}

func NewSimulatedGate(opts ...GateOption) *SimulatedGate {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := &SimulatedGate{
		flip: func() bool { return rng.Intn(2) == 0 },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Confirm pretends to call the resource's contact and reports whether the
// callee confirmed availability.
func (g *SimulatedGate) Confirm(_ context.Context, resourceName string, contact string) (contractx.CallOutcome, error) {
	log.Debug().
		Str("resource", resourceName).
		Str("contact", contact).
		Msg("simulating availability-confirmation call")

	if g.flip() {
		return contractx.CallOutcome{
			Success: true,
			Message: fmt.Sprintf("Called %s (%s): availability confirmed.", resourceName, contact),
		}, nil
	}
	return contractx.CallOutcome{
		Success: false,
		Message: fmt.Sprintf("Could not confirm availability for %s right now.", resourceName),
	}, nil
}
