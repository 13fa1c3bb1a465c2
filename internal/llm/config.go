package llm

import (
	"os"
	"strconv"
	"strings"
)

// Provider selects the text-generation backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskAdvice TaskType = "advice"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Provider   Provider
	APIKey     string
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig targeting Gemini with no retries.
// The API key must come from the environment.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Provider:   ProviderGemini,
		LogCalls:   false,
		Endpoint:   DefaultEndpoint(ProviderGemini),
		Model:      DefaultModel(ProviderGemini),
		TimeoutMs:  20000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskAdvice: {Temperature: 0.4, MaxTokens: 1024, TimeoutMs: 20000},
		},
	}
}

// DefaultEndpoint returns the base URL used for a provider when
// FOLIO_LLM_ENDPOINT is unset.
func DefaultEndpoint(p Provider) string {
	if p == ProviderOllama {
		return "http://localhost:11434"
	}
	return "https://generativelanguage.googleapis.com"
}

// DefaultModel returns the model used for a provider when FOLIO_LLM_MODEL is unset.
func DefaultModel(p Provider) string {
	if p == ProviderOllama {
		return "llama3.2"
	}
	return "gemini-2.5-flash"
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("FOLIO_LLM_PROVIDER"); v != "" {
		if p, ok := ParseProvider(v); ok {
			cfg.Provider = p
			cfg.Endpoint = DefaultEndpoint(p)
			cfg.Model = DefaultModel(p)
		}
	}
	cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	if v := os.Getenv("FOLIO_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("FOLIO_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FOLIO_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("FOLIO_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("FOLIO_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("FOLIO_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskAdvice, "FOLIO_LLM_ADVICE_TIMEOUT_MS")

	return cfg
}

// ParseProvider accepts a provider name in any case.
func ParseProvider(s string) (Provider, bool) {
	switch Provider(strings.ToLower(strings.TrimSpace(s))) {
	case ProviderGemini:
		return ProviderGemini, true
	case ProviderOllama:
		return ProviderOllama, true
	}
	return "", false
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
