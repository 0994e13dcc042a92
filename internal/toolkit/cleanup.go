package toolkit

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
)

// CleanupScheduler runs post-turn cleanup hooks. Hook failures are logged and
// never surface to the turn.
type CleanupScheduler struct {
	logger   *log.Logger
	registry *ToolManager
}

// NewCleanupScheduler creates a cleanup scheduler.
func NewCleanupScheduler(logger *log.Logger, registry *ToolManager) *CleanupScheduler {
	return &CleanupScheduler{logger: logger, registry: registry}
}

// Run invokes the cleanup hook of every executed tool that declares one,
// each exactly once, independent of the others' failures.
func (s *CleanupScheduler) Run(ctx context.Context, executedToolIDs []string) {
	for _, id := range executedToolIDs {
		registered, found := s.registry.Get(id)
		if !found {
			continue
		}
		hook, ok := registered.Tool.(domain.CleanupHook)
		if !ok {
			continue
		}
		if err := runCleanupHook(ctx, hook); err != nil {
			s.logger.Printf("toolkit: cleanup for %q failed: %v", id, err)
		}
	}
}

func runCleanupHook(ctx context.Context, hook domain.CleanupHook) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cleanup panicked: %v", r)
		}
	}()
	return hook.Cleanup(ctx)
}
