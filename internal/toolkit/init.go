package toolkit

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
)

// InitToolkit discovers the plugin registry and wires the tool engine:
// registry, condition evaluator, chunk router, cleanup scheduler, UI
// dispatcher, feature lister, status dashboard, and orchestrator.
//
// The condition evaluator is registered both as domain.VisibilityReader and
// under its concrete type so the application can host its Run loop.
type InitToolkit struct {
	Logger       *log.Logger                `resolve:""`
	KV           domain.KVStore             `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Plugins      []domain.Plugin            `resolve:""`
	Notifier     FeatureNotifier            `resolve:""`

	ConditionIntervalMS int `config:"TOOL_CONDITION_INTERVAL_MS" default:"1000"`
}

// Initialize builds and registers the tool engine services.
func (i InitToolkit) Initialize(ctx context.Context) (context.Context, error) {
	registry, err := Discover(ctx, i.Logger, i.KV, i.Notifier, i.Plugins...)
	if err != nil {
		return ctx, err
	}

	evaluator := NewConditionEvaluator(i.Logger, registry, i.Notifier, time.Duration(i.ConditionIntervalMS)*time.Millisecond)
	router := NewChunkRouter(i.Logger)
	cleanup := NewCleanupScheduler(i.Logger, registry)

	depend.Register(registry)
	depend.Register[domain.ToolRegistry](registry)
	depend.Register(evaluator)
	depend.Register[domain.VisibilityReader](evaluator)
	depend.Register(router)
	depend.Register(cleanup)
	depend.Register(NewUIDispatcher(i.Logger, registry, evaluator))
	depend.Register(NewFeatureLister(registry, evaluator))
	depend.Register(NewStatusDashboard(i.Logger, registry, evaluator))
	depend.Register(NewOrchestrator(i.Logger, registry, evaluator, router, cleanup, i.TimeProvider))
	return ctx, nil
}
