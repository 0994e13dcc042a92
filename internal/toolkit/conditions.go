package toolkit

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
)

const (
	// DefaultConditionInterval is the fixed re-evaluation cadence.
	DefaultConditionInterval = time.Second
	// defaultConditionTimeout bounds one predicate invocation.
	defaultConditionTimeout = 5 * time.Second
)

type conditionEntry struct {
	state       domain.ConditionState
	lastChecked time.Time
}

// ConditionEvaluator is the background poller owning the per-tool visibility
// cache. It is hosted as a worker; readers get point-in-time snapshots via
// Visible/State and never block on a predicate.
type ConditionEvaluator struct {
	logger   *log.Logger
	registry *ToolManager
	notify   FeatureNotifier
	interval time.Duration
	timeout  time.Duration

	mu    sync.RWMutex
	cache map[string]conditionEntry
	ready bool
}

// NewConditionEvaluator creates an evaluator polling at the given interval.
// A non-positive interval falls back to DefaultConditionInterval.
func NewConditionEvaluator(logger *log.Logger, registry *ToolManager, notify FeatureNotifier, interval time.Duration) *ConditionEvaluator {
	if interval <= 0 {
		interval = DefaultConditionInterval
	}
	if notify == nil {
		notify = func(context.Context, string) {}
	}
	return &ConditionEvaluator{
		logger:   logger,
		registry: registry,
		notify:   notify,
		interval: interval,
		timeout:  defaultConditionTimeout,
		cache:    map[string]conditionEntry{},
	}
}

// Run evaluates all conditions once, then keeps re-evaluating at the fixed
// interval until ctx is done.
func (e *ConditionEvaluator) Run(ctx context.Context) error {
	e.evaluateAll(ctx)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			e.evaluateAll(ctx)
		}
	}
}

// IsReady reports whether the first evaluation pass has completed.
func (e *ConditionEvaluator) IsReady(_ context.Context) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.ready {
		return fmt.Errorf("condition evaluator has not completed its first pass")
	}
	return nil
}

func (e *ConditionEvaluator) evaluateAll(ctx context.Context) {
	changed := false
	now := time.Now()

	for _, registered := range e.registry.List() {
		conditional, ok := registered.Tool.(domain.Conditional)
		if !ok {
			continue
		}
		next := e.evaluateOne(ctx, registered.ID, conditional)

		e.mu.Lock()
		prev := e.cache[registered.ID].state
		e.cache[registered.ID] = conditionEntry{state: next, lastChecked: now}
		e.mu.Unlock()

		if prev != next {
			changed = true
		}
	}

	e.mu.Lock()
	e.ready = true
	e.mu.Unlock()

	if changed {
		e.notify(ctx, "condition_changed")
	}
}

// evaluateOne invokes one predicate fail-closed: any error, panic, or timeout
// hides the tool until a later tick succeeds.
func (e *ConditionEvaluator) evaluateOne(ctx context.Context, id string, tool domain.Conditional) domain.ConditionState {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	visible, err := func() (visible bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("condition panicked: %v", r)
			}
		}()
		return tool.Condition(ctx)
	}()
	if err != nil {
		e.logger.Printf("toolkit: condition for %q failed, hiding: %v", id, err)
		return domain.ConditionState_Hidden
	}
	if visible {
		return domain.ConditionState_Visible
	}
	return domain.ConditionState_Hidden
}

// Visible reports whether the tool with the given ID is currently visible.
// Tools without a condition are always visible; conditional tools whose
// predicate has not yet succeeded are hidden.
func (e *ConditionEvaluator) Visible(id string) bool {
	registered, found := e.registry.Get(id)
	if !found {
		return false
	}
	if _, conditional := registered.Tool.(domain.Conditional); !conditional {
		return true
	}
	return e.State(id) == domain.ConditionState_Visible
}

// State returns the raw cached condition state for the given tool ID.
func (e *ConditionEvaluator) State(id string) domain.ConditionState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	entry, found := e.cache[id]
	if !found {
		return domain.ConditionState_Unknown
	}
	return entry.state
}
