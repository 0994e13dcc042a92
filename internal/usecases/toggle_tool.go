package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/telemetry"
)

// ToggleTool defines the use case for enabling or disabling tools
type ToggleTool interface {
	// Execute toggles one tool by registry ID.
	Execute(ctx context.Context, toolID string, enabled bool) error
	// ExecuteUnit toggles every tool of one defining unit.
	ExecuteUnit(ctx context.Context, unit string, enabled bool) error
}

// ToggleToolImpl implements the ToggleTool use case
type ToggleToolImpl struct {
	registry domain.ToolRegistry
}

// NewToggleToolImpl creates a new ToggleToolImpl instance
func NewToggleToolImpl(registry domain.ToolRegistry) *ToggleToolImpl {
	return &ToggleToolImpl{
		registry: registry,
	}
}

// Execute toggles one tool by registry ID.
func (uc *ToggleToolImpl) Execute(ctx context.Context, toolID string, enabled bool) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	found, err := uc.registry.SetEnabled(spanCtx, toolID, enabled)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("tool with ID %s not found", toolID))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// ExecuteUnit toggles every tool of one defining unit.
func (uc *ToggleToolImpl) ExecuteUnit(ctx context.Context, unit string, enabled bool) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	found, err := uc.registry.SetUnitEnabled(spanCtx, unit, enabled)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("tool unit %s not found", unit))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// InitToggleTool is the initializer for the ToggleTool use case
type InitToggleTool struct {
	Registry domain.ToolRegistry `resolve:""`
}

// Initialize registers the ToggleTool use case in the dependency container
func (i InitToggleTool) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ToggleTool](NewToggleToolImpl(i.Registry))
	return ctx, nil
}
