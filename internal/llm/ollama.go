package llm

import (
	"context"
)

// ollamaClient implements LLMClient using the Ollama HTTP API.
type ollamaClient struct {
	baseClient
}

// NewOllamaClient creates an LLMClient that talks to a local Ollama instance.
func NewOllamaClient(cfg LLMConfig, observer Observer) LLMClient {
	return &ollamaClient{baseClient: newBaseClient(cfg, observer)}
}

// ollamaRequest is the JSON body sent to POST /api/generate.
type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaResponse is the JSON body returned by POST /api/generate (non-streaming).
type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return c.generate(ctx, req, c.roundTrip)
}

func (c *ollamaClient) roundTrip(ctx context.Context, in call) (string, string, error) {
	body := ollamaRequest{
		Model:  c.cfg.Model,
		System: in.system,
		Prompt: in.prompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: in.temperature,
			NumPredict:  in.maxTokens,
		},
	}

	var resp ollamaResponse
	if err := c.postJSON(ctx, c.cfg.Endpoint+"/api/generate", nil, body, &resp); err != nil {
		return "", "", err
	}
	return resp.Response, resp.Model, nil
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	return c.probe(ctx, c.cfg.Endpoint+"/api/tags", nil)
}
