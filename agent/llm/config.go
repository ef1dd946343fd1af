package llm

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/emiliomantilla/AIgent007/agent/contract"
	openrouterx "github.com/emiliomantilla/AIgent007/pkg/openrouter"
)

const (
	// TransportGraph drives the chat model through a compiled eino graph.
	TransportGraph = "graph"
	// TransportSDK talks to OpenRouter with the raw OpenAI SDK client.
	TransportSDK = "sdk"
)

// Config selects and configures the executor's text-generation collaborator.
// With no API key the scripted generator is used, which keeps the demo and
// the tests fully offline.
type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" default:"google/gemini-2.5-flash"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.2"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	SiteURL            string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName           string        `envconfig:"SITE_NAME" split_words:"true"`
	Transport          string        `envconfig:"TRANSPORT" split_words:"true" default:"graph"`
}

func (c Config) HasAPIKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

func (c Config) Validate() error {
	if !c.HasAPIKey() {
		return nil
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: model is required when an api key is set", contractx.ErrValidation)
	}
	switch strings.ToLower(strings.TrimSpace(c.Transport)) {
	case "", TransportGraph, TransportSDK:
		return nil
	default:
		return fmt.Errorf("%w: unsupported llm transport=%q", contractx.ErrValidation, c.Transport)
	}
}

// OpenRouter maps this config onto the OpenRouter client config.
func (c Config) OpenRouter() openrouterx.Config {
	maxCompletionToken := c.MaxCompletionToken
	return openrouterx.Config{
		BaseURL:            strings.TrimSpace(c.BaseURL),
		APIKey:             strings.TrimSpace(c.APIKey),
		Model:              strings.TrimSpace(c.Model),
		MaxCompletionToken: &maxCompletionToken,
		Temperature:        c.Temperature,
		Timeout:            c.Timeout,
		SiteURL:            strings.TrimSpace(c.SiteURL),
		SiteName:           strings.TrimSpace(c.SiteName),
	}
}
