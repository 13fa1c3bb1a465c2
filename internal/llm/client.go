package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the provider is configured and reachable.
	Available(ctx context.Context) bool
}

// NewClient returns the client for cfg.Provider.
func NewClient(cfg LLMConfig, observer Observer) LLMClient {
	if cfg.Provider == ProviderOllama {
		return NewOllamaClient(cfg, observer)
	}
	return NewGeminiClient(cfg, observer)
}

// call is a single provider round trip with resolved parameters.
type call struct {
	system      string
	prompt      string
	temperature float64
	maxTokens   int
}

type roundTripper func(ctx context.Context, c call) (text, model string, err error)

// baseClient holds what every provider shares: the HTTP client, retry
// policy and observer reporting.
type baseClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

func newBaseClient(cfg LLMConfig, observer Observer) baseClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return baseClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (b *baseClient) generate(ctx context.Context, req GenerateRequest, rt roundTripper) (*GenerateResponse, error) {
	start := time.Now()
	parent := ctx

	taskCfg := b.cfg.Tasks[req.Task]
	c := call{
		system:      req.SystemPrompt,
		prompt:      req.UserPrompt,
		temperature: taskCfg.Temperature,
		maxTokens:   taskCfg.MaxTokens,
	}
	if req.Temperature != nil {
		c.temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		c.maxTokens = *req.MaxTokens
	}

	var lastErr error
	attempts := 1 + b.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		text, model, err := b.attempt(ctx, req.Task, c, rt)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			b.observer.OnCallComplete(LLMCallEvent{
				Task:      req.Task,
				Model:     b.cfg.Model,
				LatencyMs: latency,
				Success:   true,
			})
			if model == "" {
				model = b.cfg.Model
			}
			return &GenerateResponse{Text: text, Model: model, LatencyMs: latency}, nil
		}
		lastErr = err

		// A cancelled caller or a request that can never succeed is final.
		if parent.Err() != nil || errors.Is(err, ErrMissingCredential) {
			break
		}
	}

	err := classify(parent, lastErr)
	b.observer.OnCallComplete(LLMCallEvent{
		Task:      req.Task,
		Model:     b.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return nil, err
}

// attempt runs one round trip under the per-task timeout.
func (b *baseClient) attempt(ctx context.Context, task TaskType, c call, rt roundTripper) (string, string, error) {
	timeoutMs := b.cfg.TaskTimeout(task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	text, model, err := rt(ctx, c)
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		return "", "", ErrTimeout
	}
	return text, model, err
}

func classify(parent context.Context, err error) error {
	switch {
	case parent.Err() == context.Canceled:
		return context.Canceled
	case parent.Err() != nil, errors.Is(err, ErrTimeout):
		return ErrTimeout
	case errors.Is(err, ErrMissingCredential):
		return ErrMissingCredential
	case isConnectionError(err):
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %w", ErrRetryExhausted, err)
}

// postJSON sends body as JSON and decodes a 2xx reply into out.
func (b *baseClient) postJSON(ctx context.Context, url string, headers map[string]string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := b.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d: %s", ErrUpstreamStatus, httpResp.StatusCode, truncate(string(respBody), 200))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrInvalidOutput, err)
	}
	return nil
}

// probe reports whether a GET on url answers 200 within two seconds.
func (b *baseClient) probe(ctx context.Context, url string, headers map[string]string) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	case errors.Is(err, ErrMissingCredential):
		return "MISSING_CREDENTIAL"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrUpstreamStatus):
		return "UPSTREAM_STATUS"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
