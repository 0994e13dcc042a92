package toolkit

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/telemetry"
)

// UIDispatcher resolves and invokes tool UI handlers. It only proxies: handler
// directives pass through verbatim, and every failure mode degrades to a
// {success:false} response instead of an error.
type UIDispatcher struct {
	logger     *log.Logger
	registry   *ToolManager
	visibility domain.VisibilityReader
}

// NewUIDispatcher creates a UI dispatcher.
func NewUIDispatcher(logger *log.Logger, registry *ToolManager, visibility domain.VisibilityReader) *UIDispatcher {
	return &UIDispatcher{logger: logger, registry: registry, visibility: visibility}
}

// Submit resolves handlerID across enabled, visible tools in registration
// order and invokes the first match.
func (d *UIDispatcher) Submit(ctx context.Context, handlerID string, params map[string]any, meta domain.ToolMetadata) domain.UIHandlerResponse {
	ctx, span := telemetry.Start(ctx)
	defer span.End()

	handler, toolID, found := d.resolve(handlerID)
	if !found {
		return domain.UIHandlerResponse{
			Success: false,
			Error:   fmt.Sprintf("unknown UI handler %q", handlerID),
		}
	}

	response, err := invokeUIHandler(ctx, handler, params, meta)
	if err != nil {
		d.logger.Printf("toolkit: ui handler %q of %q failed: %v", handlerID, toolID, err)
		return domain.UIHandlerResponse{Success: false, Error: err.Error()}
	}
	return response
}

// resolve finds the first enabled, visible tool exposing the handler.
func (d *UIDispatcher) resolve(handlerID string) (domain.UIHandler, string, bool) {
	for _, registered := range d.registry.List() {
		if !registered.Enabled || !d.visibility.Visible(registered.ID) {
			continue
		}
		provider, ok := registered.Tool.(domain.UIProvider)
		if !ok {
			continue
		}
		if handler, found := provider.UIHandlers()[handlerID]; found {
			return handler, registered.ID, true
		}
	}
	return nil, "", false
}

func invokeUIHandler(ctx context.Context, handler domain.UIHandler, params map[string]any, meta domain.ToolMetadata) (response domain.UIHandlerResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ui handler panicked: %v", r)
		}
	}()
	return handler(ctx, params, meta)
}
