package domain

import (
	"context"
	"sync"
)

// ChunkDestination routes a response chunk to its consumer.
type ChunkDestination string

const (
	// ChunkDestination_Assistant appends to the visible assistant message.
	ChunkDestination_Assistant ChunkDestination = "assistant"
	// ChunkDestination_System renders as a standalone system notice.
	ChunkDestination_System ChunkDestination = "system"
	// ChunkDestination_Context accumulates into one hidden tool message.
	ChunkDestination_Context ChunkDestination = "context"
)

// ResponseChunk is one unit of streamed tool output.
type ResponseChunk struct {
	Destination ChunkDestination
	Text        string
}

// AssistantChunk builds an assistant-destination chunk.
func AssistantChunk(text string) ResponseChunk {
	return ResponseChunk{Destination: ChunkDestination_Assistant, Text: text}
}

// SystemChunk builds a system-destination chunk.
func SystemChunk(text string) ResponseChunk {
	return ResponseChunk{Destination: ChunkDestination_System, Text: text}
}

// ContextChunk builds a context-destination chunk.
func ContextChunk(text string) ResponseChunk {
	return ResponseChunk{Destination: ChunkDestination_Context, Text: text}
}

// ChunkStream carries response chunks from a streaming tool to the chunk
// router. The producer calls Emit then Finish; the consumer calls Next until
// it returns false, or Close to abandon the stream early. Close unblocks the
// producer and runs any registered teardown exactly once.
type ChunkStream struct {
	ch        chan ResponseChunk
	done      chan struct{}
	closeOnce sync.Once
	finOnce   sync.Once

	mu      sync.Mutex
	onClose []func()
}

// NewChunkStream creates a stream with the given channel buffer size.
func NewChunkStream(buffer int) *ChunkStream {
	return &ChunkStream{
		ch:   make(chan ResponseChunk, buffer),
		done: make(chan struct{}),
	}
}

// OnClose registers a teardown function invoked once the stream is closed or
// fully drained.
func (s *ChunkStream) OnClose(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onClose = append(s.onClose, fn)
}

// Emit sends one chunk to the consumer. It returns the context error when
// ctx is done, or ErrStreamClosed when the consumer closed the stream.
func (s *ChunkStream) Emit(ctx context.Context, chunk ResponseChunk) error {
	select {
	case <-s.done:
		return ErrStreamClosed
	default:
	}
	select {
	case s.ch <- chunk:
		return nil
	case <-s.done:
		return ErrStreamClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Finish signals end of stream. The producer must not Emit afterwards.
func (s *ChunkStream) Finish() {
	s.finOnce.Do(func() {
		close(s.ch)
	})
}

// Next returns the next chunk. ok is false once the stream is finished or
// closed. It returns the context error when ctx is done first.
func (s *ChunkStream) Next(ctx context.Context) (chunk ResponseChunk, ok bool, err error) {
	select {
	case c, open := <-s.ch:
		if !open {
			s.runTeardown()
			return ResponseChunk{}, false, nil
		}
		return c, true, nil
	case <-s.done:
		return ResponseChunk{}, false, nil
	case <-ctx.Done():
		return ResponseChunk{}, false, ctx.Err()
	}
}

// Close abandons the stream from the consumer side, unblocking the producer
// and running teardown functions.
func (s *ChunkStream) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.runTeardown()
	})
}

func (s *ChunkStream) runTeardown() {
	s.mu.Lock()
	fns := s.onClose
	s.onClose = nil
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
