package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/aula/internal/logger"
	"github.com/abhisek/aula/internal/store"
)

// blockingProvider waits for its context to end.
type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestWithTimeout_Expires(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 20*time.Millisecond)
	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatal("timeout did not fire")
	}
	if p.ModelID() != "blocking" {
		t.Fatalf("ModelID = %q", p.ModelID())
	}
}

func TestWithTimeout_ZeroIsPassthrough(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Fatal("expected the inner provider back for a zero timeout")
	}
}

func openTestRepo(t *testing.T) store.EventRepo {
	t.Helper()
	s, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.EventRepo()
}

func TestWithLogging_RecordsSuccess(t *testing.T) {
	repo := openTestRepo(t)
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.FromZap(zap.New(core))

	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"title":"Go"}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})
	p := WithLogging(mock, "mock", repo, log)

	ctx := WithRequestID(WithPurpose(context.Background(), "course-gen"), "req-1")
	if _, err := p.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "Go"}}}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.RequestID != "req-1" || e.Purpose != "course-gen" || e.Provider != "mock" || !e.Success {
		t.Fatalf("unexpected event: %+v", e)
	}
	if e.InputTokens != 12 || e.OutputTokens != 34 {
		t.Fatalf("unexpected usage: in=%d out=%d", e.InputTokens, e.OutputTokens)
	}
	if e.ResponseBody != `{"title":"Go"}` {
		t.Fatalf("response body = %q", e.ResponseBody)
	}

	if logs.FilterMessage("llm request").Len() != 1 {
		t.Fatalf("expected one info log line, got %v", logs.All())
	}
}

func TestWithLogging_RecordsFailure(t *testing.T) {
	repo := openTestRepo(t)
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.FromZap(zap.New(core))

	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("boom")}})
	p := WithLogging(mock, "mock", repo, log)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 || events[0].Success || events[0].ErrorMessage == "" {
		t.Fatalf("expected one failed event, got %+v", events)
	}
	if logs.FilterMessage("llm request failed").Len() != 1 {
		t.Fatalf("expected a warn log line, got %v", logs.All())
	}
}

func TestWithLogging_NilRepoAndLogger(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "mock", nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
}

func TestSerializeRequest(t *testing.T) {
	out := serializeRequest(Request{
		System:   "be brief",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
		Schema:   &Schema{Name: "course", Definition: map[string]any{"type": "object"}},
	})
	for _, want := range []string{"[system]\nbe brief", "[user]\nhello", "[schema: course]"} {
		if !strings.Contains(out, want) {
			t.Errorf("serialized request missing %q:\n%s", want, out)
		}
	}
}

func TestCheckResponse(t *testing.T) {
	schema := testSchema()

	t.Run("fenced content is accepted", func(t *testing.T) {
		raw := json.RawMessage("```json\n{\"name\":\"Ana\",\"age\":9}\n```")
		got, err := checkResponse(schema, raw, StopEnd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != `{"name":"Ana","age":9}` {
			t.Fatalf("content = %s", got)
		}
	})

	t.Run("invalid content", func(t *testing.T) {
		_, err := checkResponse(schema, json.RawMessage(`{"name":"Ana"}`), StopEnd)
		var invErr *ErrInvalidResponse
		if !errors.As(err, &invErr) {
			t.Fatalf("expected ErrInvalidResponse, got %v", err)
		}
	})

	t.Run("truncated content", func(t *testing.T) {
		_, err := checkResponse(schema, json.RawMessage(`{"name":"An`), StopMaxTokens)
		var maxErr *ErrMaxTokensExceeded
		if !errors.As(err, &maxErr) {
			t.Fatalf("expected ErrMaxTokensExceeded, got %v", err)
		}
	})

	t.Run("valid content at the limit", func(t *testing.T) {
		if _, err := checkResponse(schema, json.RawMessage(`{"name":"Ana","age":9}`), StopMaxTokens); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no schema", func(t *testing.T) {
		got, err := checkResponse(nil, json.RawMessage("plain"), StopEnd)
		if err != nil || string(got) != "plain" {
			t.Fatalf("got %q, %v", got, err)
		}
	})
}
