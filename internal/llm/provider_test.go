package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "course-gen")
	if p := PurposeFrom(ctx); p != "course-gen" {
		t.Fatalf("expected 'course-gen', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "gemini without key",
			cfg:     Config{Provider: "gemini"},
			wantErr: true,
		},
		{
			name:    "openrouter with key",
			cfg:     Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or"}},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if id := RequestIDFrom(ctx); id != "" {
		t.Fatalf("expected empty request ID, got %q", id)
	}
	ctx = WithRequestID(ctx, "abc")
	if id := RequestIDFrom(ctx); id != "abc" {
		t.Fatalf("expected 'abc', got %q", id)
	}
}

func TestConfigFromLookup(t *testing.T) {
	values := map[string]string{
		KeyProvider:        "anthropic",
		KeyAnthropicAPIKey: "sk-ant",
		KeyAnthropicModel:  "claude-haiku",
		KeyTimeout:         "45s",
		KeyRetryAttempts:   "5",
	}
	cfg, err := ConfigFromLookup(func(k string) string { return values[k] })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "anthropic" || cfg.Anthropic.APIKey != "sk-ant" || cfg.Anthropic.Model != "claude-haiku" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Timeout != 45*time.Second {
		t.Fatalf("timeout = %s, want 45s", cfg.Timeout)
	}
	if cfg.Retry.MaxAttempts != 5 {
		t.Fatalf("retry attempts = %d, want 5", cfg.Retry.MaxAttempts)
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Fatalf("unset keys should keep defaults, got gemini model %q", cfg.Gemini.Model)
	}
}

func TestConfigFromLookup_Defaults(t *testing.T) {
	cfg, err := ConfigFromLookup(func(string) string { return "" })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("default provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Timeout != 3*time.Minute {
		t.Fatalf("default timeout = %s", cfg.Timeout)
	}
}

func TestConfigFromLookup_BadValues(t *testing.T) {
	for key, val := range map[string]string{KeyTimeout: "soon", KeyRetryAttempts: "0"} {
		_, err := ConfigFromLookup(func(k string) string {
			if k == key {
				return val
			}
			return ""
		})
		if err == nil {
			t.Fatalf("%s=%q: expected error", key, val)
		}
	}
}

func TestEnvName(t *testing.T) {
	if got := EnvName(KeyGeminiAPIKey); got != "AULA_GEMINI_API_KEY" {
		t.Fatalf("EnvName = %q", got)
	}
	if got := EnvName(KeyProvider); got != "AULA_LLM_PROVIDER" {
		t.Fatalf("EnvName = %q", got)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("AULA_LLM_PROVIDER", "openai")
	t.Setenv("AULA_OPENAI_API_KEY", "sk-env")
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-env" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	if _, ok := DiscoverConfig(DefaultConfig()); ok {
		t.Fatal("expected no discovery without keys")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-a")
	t.Setenv("OPENAI_API_KEY", "sk-o")
	cfg, ok := DiscoverConfig(DefaultConfig())
	if !ok {
		t.Fatal("expected discovery")
	}
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-o" {
		t.Fatalf("expected openai to win over anthropic, got %+v", cfg)
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}

func TestNewProvider_MissingKey(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "gemini"}, nil, nil)
	if err == nil {
		t.Fatal("expected error for gemini without key")
	}
}
