package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"llm-personal-assistant/internal/intent"
	"llm-personal-assistant/internal/model"
	"llm-personal-assistant/internal/prompt"
	"llm-personal-assistant/internal/prompt/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type fakePromptRepo struct {
	prompts   map[string]model.Prompt
	responses []model.PromptResponse
	createErr error
}

func newFakePromptRepo(prompts ...model.Prompt) *fakePromptRepo {
	f := &fakePromptRepo{prompts: map[string]model.Prompt{}}
	for _, p := range prompts {
		f.prompts[p.ID] = p
	}
	return f
}

func (f *fakePromptRepo) Seed(ctx context.Context) error { return nil }

func (f *fakePromptRepo) GetPrompt(ctx context.Context, id string) (model.Prompt, error) {
	p, ok := f.prompts[id]
	if !ok {
		return model.Prompt{}, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakePromptRepo) ListByCadence(ctx context.Context, cadence model.Cadence) ([]model.Prompt, error) {
	var out []model.Prompt
	for _, p := range f.prompts {
		if p.Cadence == cadence {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePromptRepo) CreateResponse(ctx context.Context, resp model.PromptResponse) (model.PromptResponse, error) {
	if f.createErr != nil {
		return model.PromptResponse{}, f.createErr
	}
	resp.ID = "resp-1"
	f.responses = append(f.responses, resp)
	return resp, nil
}

func (f *fakePromptRepo) ListResponses(ctx context.Context, promptID string) ([]model.PromptResponse, error) {
	return f.responses, nil
}

type fakeAnalyzer struct {
	doc      intent.Document
	err      error
	question string
	text     string
}

func (f *fakeAnalyzer) Extract(ctx context.Context, question, responseText string) (intent.Document, error) {
	f.question = question
	f.text = responseText
	return f.doc, f.err
}

type fakeDispatcher struct {
	results []intent.ItemResult
	called  bool
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, doc intent.Document) []intent.ItemResult {
	f.called = true
	return f.results
}

var testPrompt = model.Prompt{
	ID:       "p-1",
	Question: "What are your main goals for today?",
	Cadence:  model.CadenceDaily,
}

func TestRespond(t *testing.T) {
	ctx := context.Background()

	t.Run("full pipeline", func(t *testing.T) {
		repo := newFakePromptRepo(testPrompt)
		analyzer := &fakeAnalyzer{doc: intent.Document{
			Tasks:  []json.RawMessage{json.RawMessage(`{"title":"x"}`)},
			Events: []json.RawMessage{},
		}}
		dispatcher := &fakeDispatcher{results: []intent.ItemResult{
			{Kind: intent.KindTask, Index: 0, Title: "x", Created: true},
		}}
		uc := New(&mockLogger{}, repo, analyzer, dispatcher).(*implUseCase)
		uc.now = func() time.Time { return time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC) }

		out, err := uc.Respond(ctx, prompt.RespondInput{PromptID: "p-1", Response: "finish the report"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response.ID == "" || out.Response.PromptID != "p-1" {
			t.Errorf("stored response = %+v", out.Response)
		}
		if len(out.Results) != 1 || !out.Results[0].Created {
			t.Errorf("results = %+v", out.Results)
		}
		if analyzer.question != testPrompt.Question {
			t.Errorf("analyzer got question %q", analyzer.question)
		}
		if len(repo.responses) != 1 {
			t.Errorf("expected one stored response, got %d", len(repo.responses))
		}
	})

	t.Run("per-item failures do not fail the call", func(t *testing.T) {
		repo := newFakePromptRepo(testPrompt)
		dispatcher := &fakeDispatcher{results: []intent.ItemResult{
			{Kind: intent.KindEvent, Index: 0, Reason: intent.ReasonUnresolvableStartTime},
		}}
		uc := New(&mockLogger{}, repo, &fakeAnalyzer{}, dispatcher)

		out, err := uc.Respond(ctx, prompt.RespondInput{PromptID: "p-1", Response: "vague plans"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Results) != 1 || out.Results[0].Created {
			t.Errorf("results = %+v", out.Results)
		}
	})

	t.Run("unknown prompt", func(t *testing.T) {
		uc := New(&mockLogger{}, newFakePromptRepo(), &fakeAnalyzer{}, &fakeDispatcher{})

		_, err := uc.Respond(ctx, prompt.RespondInput{PromptID: "ghost", Response: "hi"})
		if !errors.Is(err, prompt.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("blank response rejected before any writes", func(t *testing.T) {
		repo := newFakePromptRepo(testPrompt)
		uc := New(&mockLogger{}, repo, &fakeAnalyzer{}, &fakeDispatcher{})

		_, err := uc.Respond(ctx, prompt.RespondInput{PromptID: "p-1", Response: "  "})
		if !errors.Is(err, prompt.ErrEmptyResponse) {
			t.Fatalf("expected ErrEmptyResponse, got %v", err)
		}
		if len(repo.responses) != 0 {
			t.Errorf("response should not be stored")
		}
	})

	t.Run("extraction failure is terminal but the answer is kept", func(t *testing.T) {
		repo := newFakePromptRepo(testPrompt)
		analyzer := &fakeAnalyzer{err: intent.ErrServiceUnavailable}
		dispatcher := &fakeDispatcher{}
		uc := New(&mockLogger{}, repo, analyzer, dispatcher)

		_, err := uc.Respond(ctx, prompt.RespondInput{PromptID: "p-1", Response: "plans"})
		if !errors.Is(err, intent.ErrServiceUnavailable) {
			t.Fatalf("expected ErrServiceUnavailable, got %v", err)
		}
		if dispatcher.called {
			t.Errorf("dispatch must not run without a document")
		}
		if len(repo.responses) != 1 {
			t.Errorf("the raw answer should survive an extraction failure")
		}
	})
}

func TestListByCadence(t *testing.T) {
	ctx := context.Background()
	uc := New(&mockLogger{}, newFakePromptRepo(testPrompt), &fakeAnalyzer{}, &fakeDispatcher{})

	t.Run("valid cadence", func(t *testing.T) {
		prompts, err := uc.ListByCadence(ctx, model.CadenceDaily)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(prompts) != 1 {
			t.Errorf("got %d prompts, want 1", len(prompts))
		}
	})

	t.Run("invalid cadence", func(t *testing.T) {
		_, err := uc.ListByCadence(ctx, model.Cadence("hourly"))
		if !errors.Is(err, prompt.ErrInvalidCadence) {
			t.Fatalf("expected ErrInvalidCadence, got %v", err)
		}
	})
}
