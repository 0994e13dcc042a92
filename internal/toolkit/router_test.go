package toolkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
)

func routeChunks(t *testing.T, sink *collectingSink, chunks ...domain.ResponseChunk) (RouteResult, error) {
	t.Helper()
	stream := domain.NewChunkStream(len(chunks))
	for _, chunk := range chunks {
		require.NoError(t, stream.Emit(context.Background(), chunk))
	}
	stream.Finish()
	return NewChunkRouter(testLogger()).Route(context.Background(), stream, sink)
}

func TestChunkRouter_AssistantAndContextChannels(t *testing.T) {
	sink := &collectingSink{}
	result, err := routeChunks(t, sink,
		domain.AssistantChunk("A"),
		domain.ContextChunk("B"),
		domain.AssistantChunk("C"),
	)

	require.NoError(t, err)
	assert.Equal(t, "AC", result.Assistant)
	assert.Equal(t, "B", result.Context)
	assert.Empty(t, result.SystemMessages)
	assert.Equal(t, []string{"A", "C"}, sink.assistantDeltas)
	assert.Equal(t, []string{"B"}, sink.contexts)
	assert.Zero(t, sink.systemStarts)
}

func TestChunkRouter_ConsecutiveSystemChunksCoalesce(t *testing.T) {
	sink := &collectingSink{}
	result, err := routeChunks(t, sink,
		domain.SystemChunk("one "),
		domain.SystemChunk("message"),
		domain.AssistantChunk("x"),
		domain.SystemChunk("another"),
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"one message", "another"}, result.SystemMessages)
	assert.Equal(t, 2, sink.systemStarts)
	assert.Equal(t, []string{"one message", "another"}, sink.systemMessages)
	assert.Equal(t, "x", result.Assistant)
}

func TestChunkRouter_EmissionOrderPreserved(t *testing.T) {
	sink := &collectingSink{}
	_, err := routeChunks(t, sink,
		domain.AssistantChunk("1"),
		domain.SystemChunk("2"),
		domain.AssistantChunk("3"),
	)

	require.NoError(t, err)
	// System must flush before the following assistant delta.
	assert.Equal(t, []string{"1", "3"}, sink.assistantDeltas)
	assert.Equal(t, []string{"2"}, sink.systemMessages)
}

func TestChunkRouter_SinkFailureClosesStream(t *testing.T) {
	stream := domain.NewChunkStream(0)
	teardowns := 0
	stream.OnClose(func() { teardowns++ })

	go func() {
		for i := 0; i < 10; i++ {
			if stream.Emit(context.Background(), domain.AssistantChunk("x")) != nil {
				return
			}
		}
		stream.Finish()
	}()

	sink := &collectingSink{failAfter: 2}
	result, err := NewChunkRouter(testLogger()).Route(context.Background(), stream, sink)

	require.Error(t, err)
	// Content flushed before the abort is retained.
	assert.Equal(t, "xxx", result.Assistant)
	assert.Equal(t, 1, teardowns)
}

func TestChunkRouter_CancellationRetainsPartialContent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stream := domain.NewChunkStream(0)
	teardowns := 0
	stream.OnClose(func() { teardowns++ })

	go func() {
		_ = stream.Emit(context.Background(), domain.AssistantChunk("a"))
		_ = stream.Emit(context.Background(), domain.AssistantChunk("b"))
		// Simulate a slow tool: the client cancels while it produces nothing.
		cancel()
	}()

	sink := &collectingSink{}
	result, err := NewChunkRouter(testLogger()).Route(ctx, stream, sink)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "ab", result.Assistant)
	assert.Equal(t, 1, teardowns)
}

func TestRouteResult_ToolResult(t *testing.T) {
	tests := []struct {
		name   string
		result RouteResult
		want   string
	}{
		{name: "context and assistant", result: RouteResult{Assistant: "A", Context: "B"}, want: "B\nA"},
		{name: "assistant only", result: RouteResult{Assistant: "A"}, want: "A"},
		{name: "empty", result: RouteResult{}, want: "(no content produced)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.ToolResult())
		})
	}
}
