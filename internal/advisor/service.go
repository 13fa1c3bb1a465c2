// Package advisor asks a text-generation provider for editorial advice on
// an estimated timeline and tracks the lifecycle of that request.
package advisor

import (
	"context"
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/llm"
)

// Request carries the plan to advise on. All three parts are required.
type Request struct {
	Project *domain.ProjectConfig     `json:"project" validate:"required"`
	Team    *domain.TeamConfig        `json:"team" validate:"required"`
	Results *domain.CalculationResult `json:"results" validate:"required"`
}

// Validate reports ErrMissingData when any part is absent.
func (r Request) Validate() error {
	if r.Project == nil || r.Team == nil || r.Results == nil {
		return ErrMissingData
	}
	return nil
}

// AdviceService produces sanitised HTML advice for a plan.
type AdviceService interface {
	Advise(ctx context.Context, req Request) (string, error)
}

type adviceService struct {
	client llm.LLMClient
}

// NewAdviceService creates an AdviceService backed by an LLM client.
func NewAdviceService(client llm.LLMClient) AdviceService {
	return &adviceService{client: client}
}

func (s *adviceService) Advise(ctx context.Context, req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAdvice,
		SystemPrompt: adviceSystemPrompt,
		UserPrompt:   BuildPrompt(*req.Project, *req.Team, *req.Results),
	})
	if err != nil {
		return "", &Error{Kind: Classify(err), Err: err}
	}

	advice := SanitizeHTML(llm.StripCodeFences(resp.Text))
	if strings.TrimSpace(PlainText(advice)) == "" {
		return EmptyAdvice, nil
	}
	return advice, nil
}
