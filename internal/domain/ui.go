package domain

import "context"

// UIFeatureType selects how the frontend renders a tool feature.
type UIFeatureType string

const (
	UIFeatureType_Widget     UIFeatureType = "widget"
	UIFeatureType_UIV1       UIFeatureType = "ui_v1"
	UIFeatureType_BadgePanel UIFeatureType = "badge_panel"
)

// UIFeature is the declarative UI surface a tool contributes when enabled
// and visible.
type UIFeature struct {
	ID           string         `json:"id"`
	Label        string         `json:"label,omitempty"`
	Icon         string         `json:"icon,omitempty"`
	Type         UIFeatureType  `json:"type"`
	KVKey        string         `json:"kv_key,omitempty"`
	WidgetConfig map[string]any `json:"widget_config,omitempty"`
	Layout       *UILayout      `json:"layout,omitempty"`
	SourceToolID string         `json:"source_tool_id,omitempty"`
}

// UILayout is the declarative component tree of a ui_v1 feature.
type UILayout struct {
	Type       string        `json:"type"`
	Size       string        `json:"size,omitempty"`
	Title      string        `json:"title,omitempty"`
	Components []UIComponent `json:"components,omitempty"`
}

// UIComponent is one element of a UI layout.
type UIComponent struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Props      map[string]any    `json:"props,omitempty"`
	DataSource map[string]any    `json:"data_source,omitempty"`
	Actions    []UIAction        `json:"actions,omitempty"`
	Bindings   map[string]string `json:"bindings,omitempty"`
}

// UIAction wires a component trigger to a tool UI handler.
type UIAction struct {
	Type    string            `json:"type"`
	Trigger string            `json:"trigger,omitempty"`
	Handler string            `json:"handler,omitempty"`
	Params  map[string]string `json:"params,omitempty"`
}

// UIHandler handles one named action submitted from a tool UI surface.
type UIHandler func(ctx context.Context, params map[string]any, meta ToolMetadata) (UIHandlerResponse, error)

// UIHandlerResponse is the result returned to the frontend for one UI action.
// The directive fields pass through to the caller untouched.
type UIHandlerResponse struct {
	Success           bool     `json:"success"`
	Message           string   `json:"message,omitempty"`
	Error             string   `json:"error,omitempty"`
	ClearInputs       []string `json:"clear_inputs,omitempty"`
	RefreshComponents []string `json:"refresh_components,omitempty"`
	CloseModal        bool     `json:"close_modal,omitempty"`
}
