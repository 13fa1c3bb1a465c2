package llm

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

const geminiKeyHeader = "x-goog-api-key"

// geminiClient implements LLMClient against the Gemini generateContent API.
type geminiClient struct {
	baseClient
}

// NewGeminiClient creates an LLMClient for Google's Gemini API. Calls fail
// with ErrMissingCredential when cfg.APIKey is empty.
func NewGeminiClient(cfg LLMConfig, observer Observer) LLMClient {
	return &geminiClient{baseClient: newBaseClient(cfg, observer)}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// geminiRequest is the JSON body sent to POST .../models/{model}:generateContent.
type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason"`
}

type geminiResponse struct {
	Candidates   []geminiCandidate `json:"candidates"`
	ModelVersion string            `json:"modelVersion"`
}

// text joins the parts of the first candidate. No candidates yields "".
func (r geminiResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return c.generate(ctx, req, c.roundTrip)
}

func (c *geminiClient) roundTrip(ctx context.Context, in call) (string, string, error) {
	if c.cfg.APIKey == "" {
		return "", "", ErrMissingCredential
	}

	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: in.prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     in.temperature,
			MaxOutputTokens: in.maxTokens,
		},
	}
	if in.system != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: in.system}}}
	}

	var resp geminiResponse
	if err := c.postJSON(ctx, c.modelURL()+":generateContent", c.headers(), body, &resp); err != nil {
		return "", "", err
	}
	return resp.text(), resp.ModelVersion, nil
}

func (c *geminiClient) Available(ctx context.Context) bool {
	if c.cfg.APIKey == "" {
		return false
	}
	return c.probe(ctx, c.modelURL(), c.headers())
}

func (c *geminiClient) modelURL() string {
	return fmt.Sprintf("%s/v1beta/models/%s", c.cfg.Endpoint, url.PathEscape(c.cfg.Model))
}

func (c *geminiClient) headers() map[string]string {
	return map[string]string{geminiKeyHeader: c.cfg.APIKey}
}
