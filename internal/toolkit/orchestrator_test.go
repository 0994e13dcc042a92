package toolkit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
)

func newTestOrchestrator(t *testing.T, plugins ...domain.Plugin) (*Orchestrator, *ToolManager) {
	t.Helper()
	manager := discoverTest(t, newFakeKV(), nil, plugins...)
	visibility := staticVisibility{}
	orchestrator := NewOrchestrator(
		testLogger(),
		manager,
		visibility,
		NewChunkRouter(testLogger()),
		NewCleanupScheduler(testLogger(), manager),
		fakeClock{now: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)},
	)
	return orchestrator, manager
}

func decodeToolError(t *testing.T, message domain.AssistantMessage) map[string]string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(message.Content), &payload))
	return payload
}

func TestOrchestrator_RunAutoToolsInRegistrationOrder(t *testing.T) {
	first := &fakeTool{name: "heartbeat", auto: true, callResult: "beat"}
	failing := &fakeTool{name: "flaky", auto: true, callErr: assert.AnError}
	second := &fakeTool{name: "census", auto: true, callResult: "ok"}
	plain := &fakeTool{name: "ping"}

	orchestrator, _ := newTestOrchestrator(t,
		fakePlugin{unit: "alpha", tools: []domain.Tool{
			callableTool{first},
			callableTool{failing},
			callableTool{plain},
		}},
		fakePlugin{unit: "beta", tools: []domain.Tool{callableTool{second}}},
	)
	turn := orchestrator.BeginTurn(uuid.New(), "test-model")

	results := orchestrator.RunAutoTools(context.Background(), turn)

	require.Len(t, results, 3)
	assert.Equal(t, "alpha.heartbeat", results[0].ToolID)
	assert.Equal(t, "beat", results[0].Content)
	assert.Equal(t, "alpha.flaky", results[1].ToolID)
	assert.Contains(t, results[1].Content, "error")
	assert.Equal(t, "beta.census", results[2].ToolID)
	assert.Zero(t, plain.calls)
}

func TestOrchestrator_RunAutoToolsSkipsDisabled(t *testing.T) {
	auto := &fakeTool{name: "heartbeat", auto: true}
	orchestrator, manager := newTestOrchestrator(t,
		fakePlugin{unit: "alpha", tools: []domain.Tool{callableTool{auto}}},
	)
	_, err := manager.SetEnabled(context.Background(), "alpha.heartbeat", false)
	require.NoError(t, err)

	results := orchestrator.RunAutoTools(context.Background(), orchestrator.BeginTurn(uuid.New(), "m"))

	assert.Empty(t, results)
	assert.Zero(t, auto.calls)
}

func TestOrchestrator_ExecuteScalarTool(t *testing.T) {
	tool := &fakeTool{name: "ping", callResult: "pong"}
	orchestrator, _ := newTestOrchestrator(t,
		fakePlugin{unit: "alpha", tools: []domain.Tool{callableTool{tool}}},
	)
	turn := orchestrator.BeginTurn(uuid.New(), "test-model")

	message, err := orchestrator.Execute(context.Background(), turn, domain.ToolCall{ID: "c1", Name: "ping"}, &collectingSink{})

	require.NoError(t, err)
	assert.Equal(t, domain.ChatRole_Tool, message.Role)
	assert.Equal(t, "pong", message.Content)
	require.NotNil(t, message.ToolCallID)
	assert.Equal(t, "c1", *message.ToolCallID)
	assert.Equal(t, []string{"alpha.ping"}, orchestrator.ExecutedTools(turn))
}

func TestOrchestrator_ExecuteRejectsUnavailableTools(t *testing.T) {
	tool := &fakeTool{name: "ping"}
	orchestrator, manager := newTestOrchestrator(t,
		fakePlugin{unit: "alpha", tools: []domain.Tool{callableTool{tool}}},
	)

	t.Run("unknown tool", func(t *testing.T) {
		turn := orchestrator.BeginTurn(uuid.New(), "m")
		message, err := orchestrator.Execute(context.Background(), turn, domain.ToolCall{ID: "c1", Name: "missing"}, &collectingSink{})
		require.NoError(t, err)
		assert.Equal(t, "tool_unavailable", decodeToolError(t, message)["error"])
		assert.Empty(t, orchestrator.ExecutedTools(turn))
	})

	t.Run("disabled tool", func(t *testing.T) {
		_, err := manager.SetEnabled(context.Background(), "alpha.ping", false)
		require.NoError(t, err)
		defer func() {
			_, err := manager.SetEnabled(context.Background(), "alpha.ping", true)
			require.NoError(t, err)
		}()

		turn := orchestrator.BeginTurn(uuid.New(), "m")
		message, err := orchestrator.Execute(context.Background(), turn, domain.ToolCall{ID: "c2", Name: "ping"}, &collectingSink{})
		require.NoError(t, err)
		assert.Equal(t, "tool_unavailable", decodeToolError(t, message)["error"])
		assert.Zero(t, tool.calls)
	})
}

func TestOrchestrator_ExecuteRejectsHiddenTool(t *testing.T) {
	tool := &fakeTool{name: "gated"}
	manager := discoverTest(t, newFakeKV(), nil,
		fakePlugin{unit: "alpha", tools: []domain.Tool{callableTool{tool}}},
	)
	orchestrator := NewOrchestrator(
		testLogger(),
		manager,
		staticVisibility{hidden: map[string]bool{"alpha.gated": true}},
		NewChunkRouter(testLogger()),
		NewCleanupScheduler(testLogger(), manager),
		fakeClock{now: time.Now()},
	)

	message, err := orchestrator.Execute(context.Background(), orchestrator.BeginTurn(uuid.New(), "m"), domain.ToolCall{ID: "c1", Name: "gated"}, &collectingSink{})

	require.NoError(t, err)
	assert.Equal(t, "tool_unavailable", decodeToolError(t, message)["error"])
	assert.Zero(t, tool.calls)
}

func TestOrchestrator_OneTimeToolExhaustsWithinTurn(t *testing.T) {
	tool := &fakeTool{name: "once", oneTime: true, callResult: "done"}
	orchestrator, _ := newTestOrchestrator(t,
		fakePlugin{unit: "alpha", tools: []domain.Tool{callableTool{tool}}},
	)
	turn := orchestrator.BeginTurn(uuid.New(), "m")

	first, err := orchestrator.Execute(context.Background(), turn, domain.ToolCall{ID: "c1", Name: "once"}, &collectingSink{})
	require.NoError(t, err)
	assert.Equal(t, "done", first.Content)

	second, err := orchestrator.Execute(context.Background(), turn, domain.ToolCall{ID: "c2", Name: "once"}, &collectingSink{})
	require.NoError(t, err)
	assert.Equal(t, "tool_exhausted", decodeToolError(t, second)["error"])
	assert.Equal(t, 1, tool.calls)

	// A new turn resets the constraint.
	nextTurn := orchestrator.BeginTurn(uuid.New(), "m")
	third, err := orchestrator.Execute(context.Background(), nextTurn, domain.ToolCall{ID: "c3", Name: "once"}, &collectingSink{})
	require.NoError(t, err)
	assert.Equal(t, "done", third.Content)
	assert.Equal(t, 2, tool.calls)
}

func TestOrchestrator_AvailableToolsOmitsUsedOneTimeAndAuto(t *testing.T) {
	orchestrator, _ := newTestOrchestrator(t,
		fakePlugin{unit: "alpha", tools: []domain.Tool{
			callableTool{&fakeTool{name: "heartbeat", auto: true}},
			callableTool{&fakeTool{name: "ping"}},
			callableTool{&fakeTool{name: "once", oneTime: true}},
		}},
	)
	turn := orchestrator.BeginTurn(uuid.New(), "m")

	names := func() []string {
		var res []string
		for _, schema := range orchestrator.AvailableTools(turn) {
			res = append(res, schema.Name)
		}
		return res
	}

	assert.Equal(t, []string{"ping", "once"}, names())

	_, err := orchestrator.Execute(context.Background(), turn, domain.ToolCall{ID: "c1", Name: "once"}, &collectingSink{})
	require.NoError(t, err)

	assert.Equal(t, []string{"ping"}, names())
}

func TestOrchestrator_ExecutionFailuresBecomeErrorResults(t *testing.T) {
	tests := []struct {
		name string
		tool *fakeTool
	}{
		{name: "tool error", tool: &fakeTool{name: "bad", callErr: assert.AnError}},
		{name: "tool panic", tool: &fakeTool{name: "bad", callPanics: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orchestrator, _ := newTestOrchestrator(t,
				fakePlugin{unit: "alpha", tools: []domain.Tool{callableTool{tt.tool}}},
			)
			turn := orchestrator.BeginTurn(uuid.New(), "m")

			message, err := orchestrator.Execute(context.Background(), turn, domain.ToolCall{ID: "c1", Name: "bad"}, &collectingSink{})

			require.NoError(t, err)
			assert.Equal(t, "execution_error", decodeToolError(t, message)["error"])
			// The failed tool still gets cleanup scheduled.
			assert.Equal(t, []string{"alpha.bad"}, orchestrator.ExecutedTools(turn))
		})
	}
}

func TestOrchestrator_StreamingToolRoutesChunks(t *testing.T) {
	tool := &fakeTool{name: "story", chunks: []domain.ResponseChunk{
		domain.AssistantChunk("A"),
		domain.ContextChunk("B"),
		domain.AssistantChunk("C"),
	}}
	orchestrator, _ := newTestOrchestrator(t,
		fakePlugin{unit: "alpha", tools: []domain.Tool{streamingTool{tool}}},
	)
	turn := orchestrator.BeginTurn(uuid.New(), "m")
	sink := &collectingSink{}

	message, err := orchestrator.Execute(context.Background(), turn, domain.ToolCall{ID: "c1", Name: "story"}, sink)

	require.NoError(t, err)
	assert.Equal(t, "B\nAC", message.Content)
	assert.Equal(t, []string{"A", "C"}, sink.assistantDeltas)
}

func TestOrchestrator_InvalidArgumentsRejectedBeforeExecution(t *testing.T) {
	tool := &fakeTool{name: "strict", params: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"value": map[string]any{"type": "integer"},
		},
		"required": []any{"value"},
	}}
	orchestrator, _ := newTestOrchestrator(t,
		fakePlugin{unit: "alpha", tools: []domain.Tool{callableTool{tool}}},
	)
	turn := orchestrator.BeginTurn(uuid.New(), "m")

	message, err := orchestrator.Execute(context.Background(), turn, domain.ToolCall{ID: "c1", Name: "strict", Arguments: `{"value":"nope"}`}, &collectingSink{})

	require.NoError(t, err)
	assert.Equal(t, "invalid_arguments", decodeToolError(t, message)["error"])
	assert.Zero(t, tool.calls)
	assert.Empty(t, orchestrator.ExecutedTools(turn))
}

func TestOrchestrator_FinishTurnRunsCleanupExactlyOnce(t *testing.T) {
	tool := &fakeTool{name: "tidy", callErr: assert.AnError}
	orchestrator, _ := newTestOrchestrator(t,
		fakePlugin{unit: "alpha", tools: []domain.Tool{cleanupTool{callableTool{tool}}}},
	)
	turn := orchestrator.BeginTurn(uuid.New(), "m")

	_, err := orchestrator.Execute(context.Background(), turn, domain.ToolCall{ID: "c1", Name: "tidy"}, &collectingSink{})
	require.NoError(t, err)

	orchestrator.FinishTurn(context.Background(), turn)
	orchestrator.FinishTurn(context.Background(), turn)

	assert.Equal(t, 1, tool.cleanupCalls)
}

func TestOrchestrator_CleanupRunsAfterCancellation(t *testing.T) {
	tool := &fakeTool{name: "tidy", callResult: "ok"}
	orchestrator, _ := newTestOrchestrator(t,
		fakePlugin{unit: "alpha", tools: []domain.Tool{cleanupTool{callableTool{tool}}}},
	)
	turn := orchestrator.BeginTurn(uuid.New(), "m")

	ctx, cancel := context.WithCancel(context.Background())
	_, err := orchestrator.Execute(ctx, turn, domain.ToolCall{ID: "c1", Name: "tidy"}, &collectingSink{})
	require.NoError(t, err)
	cancel()

	orchestrator.FinishTurn(ctx, turn)

	assert.Equal(t, 1, tool.cleanupCalls)
}

func TestOrchestrator_StatusMessage(t *testing.T) {
	orchestrator, _ := newTestOrchestrator(t,
		fakePlugin{unit: "alpha", tools: []domain.Tool{callableTool{&fakeTool{name: "ping"}}}},
	)

	assert.Equal(t, "⏳ ping", orchestrator.StatusMessage("ping"))
	assert.Equal(t, "⏳ Processing request...", orchestrator.StatusMessage("missing"))
}
