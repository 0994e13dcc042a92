package plugins

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/stretchr/testify/require"
)

// drainChunks reads a stream to completion and returns the emitted chunks.
func drainChunks(t *testing.T, stream *domain.ChunkStream) []domain.ResponseChunk {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var chunks []domain.ResponseChunk
	for {
		chunk, ok, err := stream.Next(ctx)
		require.NoError(t, err)
		if !ok {
			return chunks
		}
		chunks = append(chunks, chunk)
	}
}

func singleTool(t *testing.T, plugin domain.Plugin) domain.Tool {
	t.Helper()
	tools, err := plugin.Tools()
	require.NoError(t, err)
	require.Len(t, tools, 1)
	return tools[0]
}
