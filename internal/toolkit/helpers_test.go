package toolkit

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// fakeKV is an in-memory domain.KVRepository.
type fakeKV struct {
	mu     sync.Mutex
	values map[string]any
	lists  map[string][]any
	getErr error
	setErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]any{}, lists: map[string][]any{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (any, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	value, found := f.values[key]
	return value, found, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, found := f.values[key]
	delete(f.values, key)
	_, foundList := f.lists[key]
	delete(f.lists, key)
	return found || foundList, nil
}

func (f *fakeKV) ListAppend(_ context.Context, key string, items ...any) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[key] = append(f.lists[key], items...)
	return len(f.lists[key]), nil
}

func (f *fakeKV) ListRange(_ context.Context, key string, start, stop int) ([]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.lists[key]
	n := len(list)
	if n == 0 {
		return nil, nil
	}
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop {
		return nil, nil
	}
	return append([]any(nil), list[start:stop+1]...), nil
}

func (f *fakeKV) ListLength(_ context.Context, key string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.lists[key]), nil
}

func (f *fakeKV) Keys(_ context.Context, _ string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.values))
	for key := range f.values {
		keys = append(keys, key)
	}
	return keys, nil
}

// fakeClock is a fixed domain.CurrentTimeProvider.
type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time { return c.now }

// fakePlugin assembles tools under one unit.
type fakePlugin struct {
	unit    string
	tools   []domain.Tool
	listErr error
	panics  bool
}

func (p fakePlugin) Unit() string { return p.unit }

func (p fakePlugin) Tools() ([]domain.Tool, error) {
	if p.panics {
		panic("broken plugin")
	}
	return p.tools, p.listErr
}

// fakeTool is a configurable test tool covering every capability.
type fakeTool struct {
	name      string
	auto      bool
	oneTime   bool
	params    map[string]any
	uiFeature *domain.UIFeature

	callResult string
	callErr    error
	callPanics bool
	calls      int

	chunks    []domain.ResponseChunk
	streaming bool

	hasCondition  bool
	condVisible   bool
	condErr       error
	condPanics    bool
	condCalls     int

	hasCleanup    bool
	cleanupCalls  int
	cleanupErr    error
	cleanupPanics bool

	status    string
	hasStatus bool

	handlers map[string]domain.UIHandler
}

func (t *fakeTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Schema: domain.ToolSchema{
			Name:        t.name,
			Description: "test tool " + t.name,
			Parameters:  t.params,
		},
		AutoTool:  t.auto,
		OneTime:   t.oneTime,
		UIFeature: t.uiFeature,
	}
}

func (t *fakeTool) StatusMessage() string { return "⏳ " + t.name }

// callableTool adds Call on top of fakeTool.
type callableTool struct{ *fakeTool }

func (t callableTool) Call(_ context.Context, _ domain.ToolCall, _ domain.ToolMetadata) (string, error) {
	t.calls++
	if t.callPanics {
		panic("tool exploded")
	}
	if t.callErr != nil {
		return "", t.callErr
	}
	if t.callResult == "" {
		return t.name + " ran", nil
	}
	return t.callResult, nil
}

// streamingTool adds Stream on top of fakeTool.
type streamingTool struct{ *fakeTool }

func (t streamingTool) Stream(_ context.Context, _ domain.ToolCall, _ domain.ToolMetadata) (*domain.ChunkStream, error) {
	t.calls++
	if t.callErr != nil {
		return nil, t.callErr
	}
	stream := domain.NewChunkStream(len(t.chunks))
	go func() {
		defer stream.Finish()
		for _, chunk := range t.chunks {
			if stream.Emit(context.Background(), chunk) != nil {
				return
			}
		}
	}()
	return stream, nil
}

// conditionalTool adds Condition on top of callableTool.
type conditionalTool struct{ callableTool }

func (t conditionalTool) Condition(_ context.Context) (bool, error) {
	t.condCalls++
	if t.condPanics {
		panic("condition exploded")
	}
	return t.condVisible, t.condErr
}

// cleanupTool adds Cleanup on top of callableTool.
type cleanupTool struct{ callableTool }

func (t cleanupTool) Cleanup(_ context.Context) error {
	t.cleanupCalls++
	if t.cleanupPanics {
		panic("cleanup exploded")
	}
	return t.cleanupErr
}

// reportingTool adds ReportStatus on top of callableTool.
type reportingTool struct{ callableTool }

func (t reportingTool) ReportStatus(_ context.Context, _ uuid.UUID) (string, error) {
	if !t.hasStatus {
		return "", fmt.Errorf("no status")
	}
	return t.status, nil
}

// uiTool adds UIHandlers on top of callableTool.
type uiTool struct{ callableTool }

func (t uiTool) UIHandlers() map[string]domain.UIHandler { return t.handlers }

// collectingSink records routed output for assertions.
type collectingSink struct {
	assistantDeltas []string
	systemStarts    int
	systemDeltas    []string
	systemMessages  []string
	contexts        []string
	failAfter       int
	events          int
}

func (s *collectingSink) bump() error {
	s.events++
	if s.failAfter > 0 && s.events > s.failAfter {
		return fmt.Errorf("client gone")
	}
	return nil
}

func (s *collectingSink) AssistantDelta(_ context.Context, text string) error {
	s.assistantDeltas = append(s.assistantDeltas, text)
	return s.bump()
}

func (s *collectingSink) SystemMessageStart(_ context.Context) error {
	s.systemStarts++
	return s.bump()
}

func (s *collectingSink) SystemDelta(_ context.Context, text string) error {
	s.systemDeltas = append(s.systemDeltas, text)
	return s.bump()
}

func (s *collectingSink) SystemMessageComplete(_ context.Context, content string) error {
	s.systemMessages = append(s.systemMessages, content)
	return s.bump()
}

func (s *collectingSink) ContextComplete(_ context.Context, content string) error {
	s.contexts = append(s.contexts, content)
	return s.bump()
}

// staticVisibility is a fixed domain.VisibilityReader.
type staticVisibility struct {
	hidden map[string]bool
}

func (v staticVisibility) Visible(id string) bool {
	return !v.hidden[id]
}

func (v staticVisibility) State(id string) domain.ConditionState {
	if v.hidden[id] {
		return domain.ConditionState_Hidden
	}
	return domain.ConditionState_Visible
}
