package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/usecases"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// List chat messages of a conversation, oldest first
// (GET /api/conversations/{conversation_id}/messages)
func (api ChatPadServer) ListChatMessages(w http.ResponseWriter, r *http.Request, conversationId openapi_types.UUID, params gen.ListChatMessagesParams) {
	messages, hasMore, err := api.ListChatMessagesUseCase.Query(r.Context(), conversationId, params.Page, params.PageSize)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := gen.ChatHistoryResp{
		ConversationId: conversationId,
		Messages:       []gen.ChatMessage{},
		Page:           params.Page,
	}
	if hasMore {
		nextPage := params.Page + 1
		resp.NextPage = &nextPage
	}
	if params.Page > 1 {
		prevPage := params.Page - 1
		resp.PreviousPage = &prevPage
	}

	for _, msg := range messages {
		resp.Messages = append(resp.Messages, toChatMessage(msg))
	}

	respondJSON(w, http.StatusOK, resp)
}

// Run one assistant turn and stream typed Server-Sent Events
// (POST /api/chat/stream)
func (api ChatPadServer) StreamChat(w http.ResponseWriter, r *http.Request) {
	req := gen.StreamChatJSONRequestBody{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, gen.ErrorResp{
			Error: gen.Error{
				Code:    gen.BADREQUEST,
				Message: "invalid request body",
			},
		})
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, gen.ErrorResp{
			Error: gen.Error{
				Code:    gen.INTERNALERROR,
				Message: "streaming not supported",
			},
		})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	emit := func(eventType domain.ChatStreamEventType, data any) error {
		dataBytes, err := json.Marshal(data)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "event: %s\n", eventType)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "data: %s\n\n", string(dataBytes))
		if err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	var opts []usecases.StreamChatOption
	if req.ConversationId != nil {
		opts = append(opts, usecases.WithConversationID(uuid.UUID(*req.ConversationId)))
	}

	err := api.StreamChatUseCase.Execute(r.Context(), req.Message, req.Model, emit, opts...)
	if err != nil {
		api.Logger.Printf("StreamChat: error during streaming: %v", err)
		// The stream is already open; report the failure as a terminal event.
		_ = emit(domain.ChatStreamEvent_Error, toError(err))
	}
}

// List models available for assistant turns
// (GET /api/models)
func (api ChatPadServer) ListAvailableModels(w http.ResponseWriter, r *http.Request) {
	models, err := api.ListAvailableModelsUseCase.Query(r.Context())
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := gen.ModelListResp{Models: []gen.ModelInfo{}}
	for _, m := range models {
		resp.Models = append(resp.Models, gen.ModelInfo{
			Name:              m.Name,
			SupportsStreaming: m.SupportsStreaming,
			SupportsTools:     m.SupportsTools,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}
