package workers

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/toolkit"
)

// ToolConditionWatcher hosts the condition evaluator's polling loop.
type ToolConditionWatcher struct {
	Evaluator *toolkit.ConditionEvaluator `resolve:""`
}

// Run keeps tool visibility states fresh until the context is done.
func (w ToolConditionWatcher) Run(ctx context.Context) error {
	return w.Evaluator.Run(ctx)
}

// IsReady reports whether the first evaluation pass has completed.
func (w ToolConditionWatcher) IsReady(ctx context.Context) error {
	return w.Evaluator.IsReady(ctx)
}
