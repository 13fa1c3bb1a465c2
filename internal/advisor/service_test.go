package advisor

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/folio/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	text string
	err  error
	last llm.GenerateRequest
	hits int
}

func (f *fakeClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.hits++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.text, Model: "fake"}, nil
}

func (f *fakeClient) Available(context.Context) bool { return true }

func validRequest() Request {
	project, team, result := scenarioA()
	return Request{Project: &project, Team: &team, Results: &result}
}

func TestAdvise_ReturnsSanitisedHTML(t *testing.T) {
	client := &fakeClient{text: "```html\n<ul><li onclick=\"x\">Hire a designer</li></ul>\n```"}
	svc := NewAdviceService(client)

	advice, err := svc.Advise(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "<ul><li>Hire a designer</li></ul>", advice)
	assert.Equal(t, llm.TaskAdvice, client.last.Task)
	assert.Contains(t, client.last.SystemPrompt, "<ul>")
	assert.Contains(t, client.last.UserPrompt, "Mathematics")
}

func TestAdvise_EmptyOutputUsesFallbackText(t *testing.T) {
	for _, text := range []string{"", "   ", "```\n```", "<ul></ul>"} {
		svc := NewAdviceService(&fakeClient{text: text})

		advice, err := svc.Advise(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, EmptyAdvice, advice, "input %q", text)
	}
}

func TestAdvise_MissingDataSkipsProvider(t *testing.T) {
	client := &fakeClient{text: "x"}
	svc := NewAdviceService(client)

	req := validRequest()
	req.Results = nil
	_, err := svc.Advise(context.Background(), req)

	assert.ErrorIs(t, err, ErrMissingData)
	assert.Equal(t, 0, client.hits)
}

func TestAdvise_ClassifiesProviderFailures(t *testing.T) {
	tests := []struct {
		err  error
		kind FailureKind
	}{
		{llm.ErrMissingCredential, FailureCredential},
		{fmt.Errorf("%w: %w", llm.ErrRetryExhausted, llm.ErrUpstreamStatus), FailureUpstream},
		{llm.ErrUnavailable, FailureTransport},
		{llm.ErrTimeout, FailureTransport},
		{context.Canceled, FailureCanceled},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			svc := NewAdviceService(&fakeClient{err: tt.err})

			_, err := svc.Advise(context.Background(), validRequest())

			var ae *Error
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, tt.kind, ae.Kind)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, GenericErrorMessage, UserMessage(err))
		})
	}
}

func TestUserMessage_MissingData(t *testing.T) {
	assert.Equal(t, "Missing required data in request body.", UserMessage(ErrMissingData))
}
