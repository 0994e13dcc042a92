package toolkit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/telemetry"
)

// Orchestrator coordinates tool execution for one conversation turn: auto
// tools before the model call, eligibility and one-time enforcement for
// model-requested calls, chunk routing for streamed output, and cleanup once
// the turn finalizes.
type Orchestrator struct {
	logger       *log.Logger
	registry     *ToolManager
	visibility   domain.VisibilityReader
	router       *ChunkRouter
	cleanup      *CleanupScheduler
	timeProvider domain.CurrentTimeProvider
}

// NewOrchestrator creates an orchestrator over the given owned services.
func NewOrchestrator(
	logger *log.Logger,
	registry *ToolManager,
	visibility domain.VisibilityReader,
	router *ChunkRouter,
	cleanup *CleanupScheduler,
	timeProvider domain.CurrentTimeProvider,
) *Orchestrator {
	return &Orchestrator{
		logger:       logger,
		registry:     registry,
		visibility:   visibility,
		router:       router,
		cleanup:      cleanup,
		timeProvider: timeProvider,
	}
}

// Turn is the per-turn execution state. It is owned by one goroutine; the
// finalize guard is the only concurrency-safe member.
type Turn struct {
	conversationID uuid.UUID
	model          string

	executedOrder []string
	executedSet   map[string]struct{}
	callCount     int
	finalizeOnce  sync.Once
}

// BeginTurn starts per-turn state for one conversation turn.
func (o *Orchestrator) BeginTurn(conversationID uuid.UUID, model string) *Turn {
	return &Turn{
		conversationID: conversationID,
		model:          model,
		executedSet:    map[string]struct{}{},
	}
}

// AutoToolResult is one auto tool's contribution to pre-model context.
type AutoToolResult struct {
	ToolID  string
	Content string
}

// RunAutoTools executes every enabled, visible auto tool sequentially in
// registration order. A failing auto tool contributes an error-text result
// and never blocks the rest.
func (o *Orchestrator) RunAutoTools(ctx context.Context, turn *Turn) []AutoToolResult {
	ctx, span := telemetry.Start(ctx)
	defer span.End()

	var results []AutoToolResult
	for _, registered := range o.registry.List() {
		if !registered.Tool.Definition().AutoTool {
			continue
		}
		if !registered.Enabled || !o.visibility.Visible(registered.ID) {
			continue
		}
		callable, ok := registered.Tool.(domain.Callable)
		if !ok {
			continue
		}

		o.markExecuted(turn, registered.ID)
		meta := o.buildMetadata(turn)
		turn.callCount++

		content, err := invokeCallable(ctx, callable, domain.ToolCall{Name: registered.ID}, meta)
		if err != nil {
			o.logger.Printf("toolkit: auto tool %q failed: %v", registered.ID, err)
			content = fmt.Sprintf("error: %v", err)
		}
		results = append(results, AutoToolResult{ToolID: registered.ID, Content: content})
	}
	return results
}

// AvailableTools returns the schemas offered to the model for the remainder
// of the turn: enabled, visible, executable tools, excluding auto tools and
// one-time tools already used this turn.
func (o *Orchestrator) AvailableTools(turn *Turn) []domain.ToolSchema {
	var schemas []domain.ToolSchema
	for _, registered := range o.registry.List() {
		definition := registered.Tool.Definition()
		if definition.AutoTool {
			continue
		}
		if !registered.Enabled || !o.visibility.Visible(registered.ID) {
			continue
		}
		if !isExecutable(registered.Tool) {
			continue
		}
		if definition.OneTime {
			if _, used := turn.executedSet[registered.ID]; used {
				continue
			}
		}
		schemas = append(schemas, definition.Schema)
	}
	return schemas
}

// Execute runs one model-requested tool call. Eligibility failures and tool
// errors degrade to an error-text tool result; the returned error is non-nil
// only for aborts (cancellation, client gone) that must end the turn.
func (o *Orchestrator) Execute(ctx context.Context, turn *Turn, call domain.ToolCall, sink ChunkSink) (domain.AssistantMessage, error) {
	ctx, span := telemetry.Start(ctx)
	defer span.End()

	registered, found := o.registry.FindByName(call.Name)
	if !found || !registered.Enabled || !o.visibility.Visible(registered.ID) {
		err := domain.NewToolUnavailableErr(fmt.Sprintf("tool %q is not available", call.Name))
		telemetry.RecordErrorAndStatus(span, err)
		return toolErrorMessage(call, "tool_unavailable", err.Error()), nil
	}

	definition := registered.Tool.Definition()
	if definition.OneTime {
		if _, used := turn.executedSet[registered.ID]; used {
			err := domain.NewToolExhaustedErr(fmt.Sprintf("tool %q was already used in this response", call.Name))
			telemetry.RecordErrorAndStatus(span, err)
			return toolErrorMessage(call, "tool_exhausted", err.Error()), nil
		}
	}

	if err := o.registry.ValidateArguments(registered.ID, call.Arguments); err != nil {
		return toolErrorMessage(call, "invalid_arguments", err.Error()), nil
	}

	o.markExecuted(turn, registered.ID)
	meta := o.buildMetadata(turn)
	turn.callCount++

	switch tool := registered.Tool.(type) {
	case domain.Streamer:
		return o.executeStreamer(ctx, registered.ID, tool, call, meta, sink)
	case domain.Callable:
		content, err := invokeCallable(ctx, tool, call, meta)
		if err != nil {
			if ctx.Err() != nil {
				return domain.AssistantMessage{}, ctx.Err()
			}
			o.logger.Printf("toolkit: tool %q failed: %v", registered.ID, err)
			execErr := domain.NewExecutionErr(err.Error())
			telemetry.RecordErrorAndStatus(span, execErr)
			return toolErrorMessage(call, "execution_error", execErr.Error()), nil
		}
		return toolResultMessage(call, content), nil
	default:
		return toolErrorMessage(call, "tool_unavailable", fmt.Sprintf("tool %q has no executable behavior", call.Name)), nil
	}
}

func (o *Orchestrator) executeStreamer(ctx context.Context, toolID string, tool domain.Streamer, call domain.ToolCall, meta domain.ToolMetadata, sink ChunkSink) (domain.AssistantMessage, error) {
	stream, err := invokeStreamer(ctx, tool, call, meta)
	if err != nil {
		if ctx.Err() != nil {
			return domain.AssistantMessage{}, ctx.Err()
		}
		o.logger.Printf("toolkit: tool %q failed to open stream: %v", toolID, err)
		return toolErrorMessage(call, "execution_error", err.Error()), nil
	}

	result, err := o.router.Route(ctx, stream, sink)
	if err != nil {
		// Partial content was already flushed; the abort propagates so the
		// turn stops consuming model output, while cleanup still runs.
		return domain.AssistantMessage{}, err
	}
	return toolResultMessage(call, result.ToolResult()), nil
}

// StatusMessage returns a friendly status message for the given tool call name.
func (o *Orchestrator) StatusMessage(name string) string {
	if registered, found := o.registry.FindByName(name); found {
		if msg := registered.Tool.StatusMessage(); msg != "" {
			return msg
		}
	}
	return "⏳ Processing request..."
}

// FinishTurn hands the executed-set to the cleanup scheduler exactly once.
// It runs detached from the turn's cancellation so hooks fire even after a
// client abort.
func (o *Orchestrator) FinishTurn(ctx context.Context, turn *Turn) {
	turn.finalizeOnce.Do(func() {
		o.cleanup.Run(context.WithoutCancel(ctx), turn.executedOrder)
	})
}

// ExecutedTools returns the IDs invoked this turn, in first-invocation order.
func (o *Orchestrator) ExecutedTools(turn *Turn) []string {
	return append([]string(nil), turn.executedOrder...)
}

func (o *Orchestrator) markExecuted(turn *Turn, id string) {
	if _, seen := turn.executedSet[id]; !seen {
		turn.executedSet[id] = struct{}{}
		turn.executedOrder = append(turn.executedOrder, id)
	}
}

func (o *Orchestrator) buildMetadata(turn *Turn) domain.ToolMetadata {
	return domain.ToolMetadata{
		ConversationID: turn.conversationID,
		Timestamp:      o.timeProvider.Now().UTC().Format(time.RFC3339),
		Model:          turn.model,
		ToolCallCount:  turn.callCount,
	}
}

func isExecutable(tool domain.Tool) bool {
	switch tool.(type) {
	case domain.Callable, domain.Streamer:
		return true
	default:
		return false
	}
}

func invokeCallable(ctx context.Context, tool domain.Callable, call domain.ToolCall, meta domain.ToolMetadata) (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool panicked: %v", r)
		}
	}()
	return tool.Call(ctx, call, meta)
}

func invokeStreamer(ctx context.Context, tool domain.Streamer, call domain.ToolCall, meta domain.ToolMetadata) (stream *domain.ChunkStream, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool panicked: %v", r)
		}
	}()
	return tool.Stream(ctx, call, meta)
}

func toolResultMessage(call domain.ToolCall, content string) domain.AssistantMessage {
	return domain.AssistantMessage{
		Role:       domain.ChatRole_Tool,
		ToolCallID: &call.ID,
		Content:    content,
	}
}

func toolErrorMessage(call domain.ToolCall, code, details string) domain.AssistantMessage {
	payload, _ := json.Marshal(map[string]string{"error": code, "details": details})
	return domain.AssistantMessage{
		Role:       domain.ChatRole_Tool,
		ToolCallID: &call.ID,
		Content:    string(payload),
	}
}
