package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/toolkit"
)

// SubmitUIAction defines the use case for dispatching a user interaction with
// rendered tool UI to the owning tool's handler
type SubmitUIAction interface {
	Execute(ctx context.Context, handlerID string, params map[string]any, conversationID uuid.UUID) domain.UIHandlerResponse
}

// SubmitUIActionImpl implements the SubmitUIAction use case
type SubmitUIActionImpl struct {
	dispatcher   *toolkit.UIDispatcher
	timeProvider domain.CurrentTimeProvider
}

// NewSubmitUIActionImpl creates a new SubmitUIActionImpl instance
func NewSubmitUIActionImpl(dispatcher *toolkit.UIDispatcher, timeProvider domain.CurrentTimeProvider) *SubmitUIActionImpl {
	return &SubmitUIActionImpl{
		dispatcher:   dispatcher,
		timeProvider: timeProvider,
	}
}

// Execute dispatches one UI action. Handler failures come back as
// unsuccessful responses, never as errors.
func (uc *SubmitUIActionImpl) Execute(ctx context.Context, handlerID string, params map[string]any, conversationID uuid.UUID) domain.UIHandlerResponse {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	meta := domain.ToolMetadata{
		ConversationID: conversationID,
		Timestamp:      uc.timeProvider.Now().UTC().Format(time.RFC3339),
	}
	return uc.dispatcher.Submit(spanCtx, handlerID, params, meta)
}

// InitSubmitUIAction is the initializer for the SubmitUIAction use case
type InitSubmitUIAction struct {
	Dispatcher   *toolkit.UIDispatcher      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the SubmitUIAction use case in the dependency container
func (i InitSubmitUIAction) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SubmitUIAction](NewSubmitUIActionImpl(i.Dispatcher, i.TimeProvider))
	return ctx, nil
}
