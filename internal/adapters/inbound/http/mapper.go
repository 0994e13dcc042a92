package http

import (
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/common"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/usecases"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toError(err error) gen.ErrorResp {
	errResp := gen.ErrorResp{}
	switch e := err.(type) {
	case *domain.ValidationErr:
		errResp.Error.Code = gen.BADREQUEST
		errResp.Error.Message = e.Error()
	case *domain.NotFoundErr:
		errResp.Error.Code = gen.NOTFOUND
		errResp.Error.Message = e.Error()
	default:
		errResp.Error.Code = gen.INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toConversation(c domain.Conversation) gen.Conversation {
	return gen.Conversation{
		Id:            openapi_types.UUID(c.ID),
		Title:         c.Title,
		TitleSource:   string(c.TitleSource),
		LastMessageAt: c.LastMessageAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toChatMessage(msg domain.ChatMessage) gen.ChatMessage {
	return gen.ChatMessage{
		Id:        msg.ID,
		Role:      gen.ChatMessageRole(msg.ChatRole),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func toTool(t usecases.ToolListing) gen.Tool {
	tool := gen.Tool{
		Id:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Module:      t.Unit,
		Enabled:     t.Enabled,
		AutoTool:    t.AutoTool,
		OneTime:     t.OneTime,
		Condition:   t.Condition,
	}
	if t.Parameters != nil {
		tool.Parameters = &t.Parameters
	}
	if t.UIFeature != nil {
		tool.UiFeature = common.Ptr(toUIFeature(*t.UIFeature))
	}
	return tool
}

func toUIFeature(f domain.UIFeature) gen.UIFeature {
	feature := gen.UIFeature{
		Id:   f.ID,
		Type: gen.UIFeatureType(f.Type),
	}
	if f.Label != "" {
		feature.Label = common.Ptr(f.Label)
	}
	if f.Icon != "" {
		feature.Icon = common.Ptr(f.Icon)
	}
	if f.KVKey != "" {
		feature.KvKey = common.Ptr(f.KVKey)
	}
	if f.WidgetConfig != nil {
		feature.WidgetConfig = &f.WidgetConfig
	}
	if f.Layout != nil {
		feature.Layout = common.Ptr(toUILayout(*f.Layout))
	}
	if f.SourceToolID != "" {
		feature.SourceToolId = common.Ptr(f.SourceToolID)
	}
	return feature
}

func toUILayout(l domain.UILayout) gen.UILayout {
	layout := gen.UILayout{Type: l.Type}
	if l.Size != "" {
		layout.Size = common.Ptr(l.Size)
	}
	if l.Title != "" {
		layout.Title = common.Ptr(l.Title)
	}
	if len(l.Components) > 0 {
		components := make([]gen.UIComponent, len(l.Components))
		for i, c := range l.Components {
			components[i] = toUIComponent(c)
		}
		layout.Components = &components
	}
	return layout
}

func toUIComponent(c domain.UIComponent) gen.UIComponent {
	component := gen.UIComponent{
		Id:   c.ID,
		Type: c.Type,
	}
	if c.Props != nil {
		component.Props = &c.Props
	}
	if c.DataSource != nil {
		component.DataSource = &c.DataSource
	}
	if c.Bindings != nil {
		component.Bindings = &c.Bindings
	}
	if len(c.Actions) > 0 {
		actions := make([]gen.UIAction, len(c.Actions))
		for i, a := range c.Actions {
			actions[i] = toUIAction(a)
		}
		component.Actions = &actions
	}
	return component
}

func toUIAction(a domain.UIAction) gen.UIAction {
	action := gen.UIAction{Type: a.Type}
	if a.Trigger != "" {
		action.Trigger = common.Ptr(a.Trigger)
	}
	if a.Handler != "" {
		action.Handler = common.Ptr(a.Handler)
	}
	if a.Params != nil {
		action.Params = &a.Params
	}
	return action
}

func toUIHandlerResult(r domain.UIHandlerResponse) gen.UIHandlerResult {
	result := gen.UIHandlerResult{Success: r.Success}
	if r.Message != "" {
		result.Message = common.Ptr(r.Message)
	}
	if r.Error != "" {
		result.Error = common.Ptr(r.Error)
	}
	if len(r.ClearInputs) > 0 {
		result.ClearInputs = &r.ClearInputs
	}
	if len(r.RefreshComponents) > 0 {
		result.RefreshComponents = &r.RefreshComponents
	}
	if r.CloseModal {
		result.CloseModal = common.Ptr(true)
	}
	return result
}
