package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/emiliomantilla/AIgent007/agent/contract"
	openrouterx "github.com/emiliomantilla/AIgent007/pkg/openrouter"
)

// NewGenerator returns the configured text-generation collaborator: the
// scripted stand-in when no API key is set, otherwise an OpenRouter-backed
// generator over the selected transport.
func NewGenerator(ctx context.Context, cfg Config, systemPrompt string) (contractx.TextGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if !cfg.HasAPIKey() {
		log.Info().Msg("no llm api key configured, using scripted generator")
		return NewScripted(), nil
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Transport)) {
	case "", TransportGraph:
		orCfg := cfg.OpenRouter()
		chatModel, err := orCfg.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: create chat model: %v", contractx.ErrModelInvoke, err)
		}
		return FromChatModel(ctx, chatModel, systemPrompt)
	case TransportSDK:
		client := openrouterx.NewClient(cfg.OpenRouter())
		if client == nil {
			return nil, fmt.Errorf("%w: openrouter client requires an api key", contractx.ErrValidation)
		}
		return NewSDKGenerator(client, cfg.Model, systemPrompt), nil
	default:
		return nil, fmt.Errorf("%w: unsupported llm transport=%q", contractx.ErrValidation, cfg.Transport)
	}
}
