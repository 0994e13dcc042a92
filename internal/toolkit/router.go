package toolkit

import (
	"context"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
)

// ChunkSink receives routed chunks in emission order. Implementations flush
// to the client stream; any error aborts routing.
type ChunkSink interface {
	// AssistantDelta flushes one assistant content increment.
	AssistantDelta(ctx context.Context, text string) error
	// SystemMessageStart announces a new standalone system message.
	SystemMessageStart(ctx context.Context) error
	// SystemDelta flushes one increment of the current system message.
	SystemDelta(ctx context.Context, text string) error
	// SystemMessageComplete closes the current system message with its full content.
	SystemMessageComplete(ctx context.Context, content string) error
	// ContextComplete delivers the accumulated hidden context at end of
	// stream. It is not called for empty context or on abort.
	ContextComplete(ctx context.Context, content string) error
}

// RouteResult is the accumulated outcome of one routed stream.
type RouteResult struct {
	// Assistant is the concatenated assistant-destination content.
	Assistant string
	// Context is the concatenated hidden context content.
	Context string
	// SystemMessages are the coalesced standalone system messages, in order.
	SystemMessages []string
}

// ToolResult composes the result text handed back to the model for a
// streamed invocation.
func (r RouteResult) ToolResult() string {
	parts := make([]string, 0, 2)
	if r.Context != "" {
		parts = append(parts, r.Context)
	}
	if r.Assistant != "" {
		parts = append(parts, r.Assistant)
	}
	if len(parts) == 0 {
		return "(no content produced)"
	}
	return strings.Join(parts, "\n")
}

// ChunkRouter distributes a tool's chunk stream across the three
// conversational channels. Consecutive system chunks coalesce into one
// message until a non-system chunk or end of stream; context chunks
// accumulate silently into one hidden message.
type ChunkRouter struct {
	logger *log.Logger
}

// NewChunkRouter creates a chunk router.
func NewChunkRouter(logger *log.Logger) *ChunkRouter {
	return &ChunkRouter{logger: logger}
}

// Route consumes the stream until end of stream, sink failure, or ctx
// cancellation. On early exit it closes the stream so the producer's
// teardown runs, and returns whatever content was already routed along with
// the abort error.
func (r *ChunkRouter) Route(ctx context.Context, stream *domain.ChunkStream, sink ChunkSink) (RouteResult, error) {
	var (
		result        RouteResult
		assistant     strings.Builder
		contextBuf    strings.Builder
		system        strings.Builder
		systemStarted bool
	)

	finishResult := func() RouteResult {
		result.Assistant = assistant.String()
		result.Context = contextBuf.String()
		return result
	}

	abort := func(err error) (RouteResult, error) {
		stream.Close()
		return finishResult(), err
	}

	flushSystem := func() error {
		if !systemStarted {
			return nil
		}
		content := system.String()
		result.SystemMessages = append(result.SystemMessages, content)
		system.Reset()
		systemStarted = false
		return sink.SystemMessageComplete(ctx, content)
	}

	for {
		chunk, ok, err := stream.Next(ctx)
		if err != nil {
			return abort(err)
		}
		if !ok {
			if err := flushSystem(); err != nil {
				return abort(err)
			}
			if contextBuf.Len() > 0 {
				if err := sink.ContextComplete(ctx, contextBuf.String()); err != nil {
					return abort(err)
				}
			}
			return finishResult(), nil
		}

		if chunk.Destination != domain.ChunkDestination_System {
			if err := flushSystem(); err != nil {
				return abort(err)
			}
		}

		switch chunk.Destination {
		case domain.ChunkDestination_Assistant:
			assistant.WriteString(chunk.Text)
			if err := sink.AssistantDelta(ctx, chunk.Text); err != nil {
				return abort(err)
			}
		case domain.ChunkDestination_Context:
			contextBuf.WriteString(chunk.Text)
		case domain.ChunkDestination_System:
			if !systemStarted {
				systemStarted = true
				if err := sink.SystemMessageStart(ctx); err != nil {
					return abort(err)
				}
			}
			system.WriteString(chunk.Text)
			if err := sink.SystemDelta(ctx, chunk.Text); err != nil {
				return abort(err)
			}
		default:
			r.logger.Printf("toolkit: dropping chunk with unknown destination %q", chunk.Destination)
		}
	}
}
