package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/telemetry"
)

// ToolListing is the client-facing view of one registered tool.
type ToolListing struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Unit        string            `json:"module"`
	Enabled     bool              `json:"enabled"`
	AutoTool    bool              `json:"auto_tool"`
	OneTime     bool              `json:"one_time"`
	Condition   *bool             `json:"condition"`
	Parameters  map[string]any    `json:"parameters"`
	UIFeature   *domain.UIFeature `json:"ui_feature,omitempty"`
}

// ToolUnitListing aggregates the listings of one defining unit.
type ToolUnitListing struct {
	Name         string        `json:"module"`
	EnabledCount int           `json:"enabled_count"`
	TotalCount   int           `json:"total_count"`
	AllEnabled   bool          `json:"all_enabled"`
	Tools        []ToolListing `json:"tools"`
}

// ListTools defines the use case for listing registered tools
type ListTools interface {
	// Query returns all registered tools in registration order.
	Query(ctx context.Context) []ToolListing
	// QueryByUnit returns per-unit aggregates with their tools.
	QueryByUnit(ctx context.Context) []ToolUnitListing
}

// ListToolsImpl implements the ListTools use case
type ListToolsImpl struct {
	registry   domain.ToolRegistry
	visibility domain.VisibilityReader
}

// NewListToolsImpl creates a new ListToolsImpl instance
func NewListToolsImpl(registry domain.ToolRegistry, visibility domain.VisibilityReader) *ListToolsImpl {
	return &ListToolsImpl{
		registry:   registry,
		visibility: visibility,
	}
}

// Query returns all registered tools in registration order.
func (uc *ListToolsImpl) Query(ctx context.Context) []ToolListing {
	_, span := telemetry.Start(ctx)
	defer span.End()

	registered := uc.registry.List()
	listings := make([]ToolListing, 0, len(registered))
	for _, tool := range registered {
		listings = append(listings, uc.buildListing(tool))
	}
	return listings
}

// QueryByUnit returns per-unit aggregates with their tools.
func (uc *ListToolsImpl) QueryByUnit(ctx context.Context) []ToolUnitListing {
	_, span := telemetry.Start(ctx)
	defer span.End()

	grouped := uc.registry.GroupByUnit()
	units := make([]ToolUnitListing, 0, len(grouped))
	for _, unit := range grouped {
		listing := ToolUnitListing{
			Name:         unit.Name,
			EnabledCount: unit.EnabledCount,
			TotalCount:   unit.TotalCount,
			AllEnabled:   unit.AllEnabled,
			Tools:        make([]ToolListing, 0, len(unit.Tools)),
		}
		for _, tool := range unit.Tools {
			listing.Tools = append(listing.Tools, uc.buildListing(tool))
		}
		units = append(units, listing)
	}
	return units
}

func (uc *ListToolsImpl) buildListing(tool domain.RegisteredTool) ToolListing {
	definition := tool.Tool.Definition()
	listing := ToolListing{
		ID:          tool.ID,
		Name:        definition.Schema.Name,
		Description: definition.Schema.Description,
		Unit:        tool.Unit,
		Enabled:     tool.Enabled,
		AutoTool:    definition.AutoTool,
		OneTime:     definition.OneTime,
		Parameters:  definition.Schema.Parameters,
		UIFeature:   definition.UIFeature,
	}

	// Condition is null for unconditional tools and for conditional tools
	// that have not been evaluated yet.
	if _, conditional := tool.Tool.(domain.Conditional); conditional {
		switch uc.visibility.State(tool.ID) {
		case domain.ConditionState_Visible:
			visible := true
			listing.Condition = &visible
		case domain.ConditionState_Hidden:
			visible := false
			listing.Condition = &visible
		}
	}
	return listing
}

// InitListTools is the initializer for the ListTools use case
type InitListTools struct {
	Registry   domain.ToolRegistry     `resolve:""`
	Visibility domain.VisibilityReader `resolve:""`
}

// Initialize registers the ListTools use case in the dependency container
func (i InitListTools) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTools](NewListToolsImpl(i.Registry, i.Visibility))
	return ctx, nil
}
