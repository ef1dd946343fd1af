package callgate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	contractx "github.com/emiliomantilla/AIgent007/agent/contract"
)

const (
	confirmPath          = "/v1/confirm"
	maxResponseSizeBytes = 1 << 20
)

type Config struct {
	URL     string        `split_words:"true" required:"true"`
	Token   string        `split_words:"true" required:"true"`
	Timeout time.Duration `split_words:"true" default:"10s"`
}

// Client reaches a telephony gateway that places real availability-
// confirmation calls. It satisfies the same contract as the simulated gate.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ contractx.CallGateway = (*Client)(nil)

type confirmRequest struct {
	ResourceName string `json:"resource_name"`
	Contact      string `json:"contact"`
}

type confirmResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.URL)
	if baseURL == "" {
		return nil, errors.New("callgate url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid callgate url: %w", err)
	}

	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, errors.New("callgate token is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func MustNew(cfg Config) *Client {
	client, err := NewClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// Confirm asks the gateway to place one confirmation call and reports the
// outcome. A gateway-side failure to reach the callee is a regular outcome,
// not an error; errors are reserved for transport problems.
func (c *Client) Confirm(ctx context.Context, resourceName string, contact string) (contractx.CallOutcome, error) {
	if strings.TrimSpace(resourceName) == "" {
		return contractx.CallOutcome{}, errors.New("resource name is empty")
	}

	body, err := json.Marshal(confirmRequest{
		ResourceName: resourceName,
		Contact:      contact,
	})
	if err != nil {
		return contractx.CallOutcome{}, fmt.Errorf("marshal confirm request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+confirmPath, bytes.NewReader(body))
	if err != nil {
		return contractx.CallOutcome{}, fmt.Errorf("build confirm request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return contractx.CallOutcome{}, fmt.Errorf("execute confirm request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return contractx.CallOutcome{}, fmt.Errorf("read confirm response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return contractx.CallOutcome{}, fmt.Errorf("callgate http status=%d body=%s", resp.StatusCode, string(raw))
	}

	var parsed confirmResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return contractx.CallOutcome{}, fmt.Errorf("decode confirm response: %w", err)
	}
	if parsed.Error != "" {
		return contractx.CallOutcome{}, errors.New(parsed.Error)
	}

	return contractx.CallOutcome{
		Success: parsed.Success,
		Message: parsed.Message,
	}, nil
}
