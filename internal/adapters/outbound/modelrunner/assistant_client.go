package modelrunner

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// AssistantClient adapts DRMAPIClient to the domain assistant interfaces.
type AssistantClient struct {
	client DRMAPIClient
}

// NewAssistantClientAdapter creates a new adapter.
func NewAssistantClientAdapter(client DRMAPIClient) AssistantClient {
	return AssistantClient{client: client}
}

// RunTurn implements domain.Assistant. Tool calls arrive as streamed
// fragments; they are assembled here and reported after the stream ends so
// the caller always sees complete argument payloads.
func (a AssistantClient) RunTurn(ctx context.Context, req domain.AssistantTurnRequest, onEvent domain.AssistantEventCallback) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := validateTurnRequest(req); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	adapterReq := toChatRequest(req)

	meta := domain.AssistantTurnStarted{
		UserMessageID:      uuid.New(),
		AssistantMessageID: uuid.New(),
	}
	if err := onEvent(domain.AssistantEventType_TurnStarted, meta); err != nil {
		return err
	}

	var (
		toolCalls []*domain.ToolCall
		usage     domain.AssistantUsage
	)

	err := a.client.ChatStream(spanCtx, adapterReq, func(chunk StreamChunk) error {
		for _, choice := range chunk.Choices {
			if choice.Delta.Content != "" {
				if err := onEvent(domain.AssistantEventType_MessageDelta, domain.AssistantMessageDelta{Text: choice.Delta.Content}); err != nil {
					return err
				}
			}
			for _, tc := range choice.Delta.ToolCalls {
				if tc.ID != "" {
					toolCalls = append(toolCalls, &domain.ToolCall{
						ID:        tc.ID,
						Name:      tc.Function.Name,
						Arguments: tc.Function.Arguments,
					})
					continue
				}
				if tc.Index >= 0 && tc.Index < len(toolCalls) {
					toolCalls[tc.Index].Arguments += tc.Function.Arguments
				}
			}
		}

		if chunk.Usage != nil {
			usage.PromptTokens = chunk.Usage.PromptTokens
			usage.CompletionTokens = chunk.Usage.CompletionTokens
			usage.TotalTokens = chunk.Usage.TotalTokens
		}

		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	for _, call := range toolCalls {
		if err := onEvent(domain.AssistantEventType_ToolRequested, *call); err != nil {
			return err
		}
	}

	return onEvent(domain.AssistantEventType_TurnCompleted, domain.AssistantTurnCompleted{
		AssistantMessageID: meta.AssistantMessageID.String(),
		CompletedAt:        time.Now().UTC().Format(time.RFC3339),
		Usage:              usage,
	})
}

// RunTurnSync implements domain.Assistant.
func (a AssistantClient) RunTurnSync(ctx context.Context, req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := validateTurnRequest(req); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResponse{}, err
	}

	adapterReq := toChatRequest(req)
	resp, err := a.client.Chat(spanCtx, adapterReq)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AssistantTurnResponse{}, err
	}
	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResponse{}, err
	}

	res := domain.AssistantTurnResponse{Content: resp.Choices[0].Message.Content}
	if resp.Usage != nil {
		res.Usage = domain.AssistantUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return res, nil
}

// ListAssistantModels implements domain.AssistantModelCatalog. Embedding
// models never serve chat turns and are filtered out.
func (a AssistantClient) ListAssistantModels(ctx context.Context) ([]domain.AssistantModelInfo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := a.client.AvailableModels(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	models := make([]domain.AssistantModelInfo, 0, len(resp.Data))
	for _, m := range resp.Data {
		if strings.Contains(m.ID, "embed") {
			continue
		}
		models = append(models, domain.AssistantModelInfo{
			Name:              strings.TrimPrefix(m.ID, "docker.io/ai/"),
			SupportsStreaming: true,
			SupportsTools:     true,
		})
	}
	return models, nil
}

func validateTurnRequest(req domain.AssistantTurnRequest) error {
	if req.Model == "" {
		return domain.NewValidationErr("model is required")
	}
	if len(req.Messages) == 0 {
		return domain.NewValidationErr("messages are required")
	}
	return nil
}

func toChatRequest(req domain.AssistantTurnRequest) ChatRequest {
	adapterReq := ChatRequest{
		Model:            req.Model,
		Temperature:      req.Temperature,
		Stream:           req.Stream,
		MaxTokens:        req.MaxTokens,
		TopP:             req.TopP,
		FrequencyPenalty: req.FrequencyPenalty,
		Messages:         make([]ChatMessage, len(req.Messages)),
		Tools:            make([]Tool, len(req.AvailableTools)),
	}

	if req.Stream {
		adapterReq.StreamOptions = &StreamOptions{IncludeUsage: true}
	}

	for i, msg := range req.Messages {
		adpMsg := ChatMessage{
			Role:       string(msg.Role),
			ToolCallID: msg.ToolCallID,
			Content:    msg.Content,
		}
		for _, toolCall := range msg.ToolCalls {
			adpMsg.ToolCalls = append(adpMsg.ToolCalls, ToolCall{
				ID:   toolCall.ID,
				Type: "function",
				Function: ToolCallFunction{
					Name:      toolCall.Name,
					Arguments: toolCall.Arguments,
				},
			})
		}
		adapterReq.Messages[i] = adpMsg
	}

	for i, schema := range req.AvailableTools {
		adapterReq.Tools[i] = Tool{
			Type: "function",
			Function: ToolFunc{
				Description: schema.Description,
				Name:        schema.Name,
				Parameters:  schema.Parameters,
			},
		}
	}

	return adapterReq
}

// InitAssistantClient initializes the assistant client dependency.
type InitAssistantClient struct {
	HttpClient *http.Client `resolve:""`
	ModelHost  string       `config:"LLM_MODEL_HOST"`
}

// Initialize registers assistant/model interfaces.
func (i InitAssistantClient) Initialize(ctx context.Context) (context.Context, error) {
	adapter := NewAssistantClientAdapter(NewDRMAPIClient(i.ModelHost, "", i.HttpClient))
	depend.Register[domain.Assistant](adapter)
	depend.Register[domain.AssistantModelCatalog](adapter)
	return ctx, nil
}
