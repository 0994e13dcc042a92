package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/adapters/inbound/http/gen"
	"github.com/google/uuid"
)

// List all registered tools in registration order
// (GET /api/tools)
func (api ChatPadServer) ListTools(w http.ResponseWriter, r *http.Request) {
	listings := api.ListToolsUseCase.Query(r.Context())

	resp := gen.ToolListResp{Tools: []gen.Tool{}}
	for _, listing := range listings {
		resp.Tools = append(resp.Tools, toTool(listing))
	}

	respondJSON(w, http.StatusOK, resp)
}

// List tools grouped by defining unit with enabled counts
// (GET /api/tools/by-unit)
func (api ChatPadServer) ListToolUnits(w http.ResponseWriter, r *http.Request) {
	units := api.ListToolsUseCase.QueryByUnit(r.Context())

	resp := gen.ToolUnitListResp{Units: []gen.ToolUnitGroup{}}
	for _, unit := range units {
		group := gen.ToolUnitGroup{
			Module:       unit.Name,
			EnabledCount: unit.EnabledCount,
			TotalCount:   unit.TotalCount,
			AllEnabled:   unit.AllEnabled,
			Tools:        []gen.Tool{},
		}
		for _, listing := range unit.Tools {
			group.Tools = append(group.Tools, toTool(listing))
		}
		resp.Units = append(resp.Units, group)
	}

	respondJSON(w, http.StatusOK, resp)
}

// List UI features of tools that are enabled and visible
// (GET /api/tools/features)
func (api ChatPadServer) ListToolFeatures(w http.ResponseWriter, r *http.Request) {
	features := api.ListToolFeaturesUseCase.Query(r.Context())

	resp := gen.FeatureListResp{Features: []gen.UIFeature{}}
	for _, feature := range features {
		resp.Features = append(resp.Features, toUIFeature(feature))
	}

	respondJSON(w, http.StatusOK, resp)
}

// Enable or disable one tool
// (POST /api/tools/{tool_id}/toggle)
func (api ChatPadServer) ToggleTool(w http.ResponseWriter, r *http.Request, toolId string) {
	req := gen.ToggleToolJSONRequestBody{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, gen.ErrorResp{
			Error: gen.Error{
				Code:    gen.BADREQUEST,
				Message: "invalid request body",
			},
		})
		return
	}

	if err := api.ToggleToolUseCase.Execute(r.Context(), toolId, req.Enabled); err != nil {
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Enable or disable every tool of one unit
// (POST /api/tools/unit/{unit}/toggle)
func (api ChatPadServer) ToggleToolUnit(w http.ResponseWriter, r *http.Request, unit string) {
	req := gen.ToggleToolUnitJSONRequestBody{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, gen.ErrorResp{
			Error: gen.Error{
				Code:    gen.BADREQUEST,
				Message: "invalid request body",
			},
		})
		return
	}

	if err := api.ToggleToolUseCase.ExecuteUnit(r.Context(), unit, req.Enabled); err != nil {
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Submit a UI action to a tool handler
// (POST /api/tool_submit)
func (api ChatPadServer) SubmitToolAction(w http.ResponseWriter, r *http.Request) {
	req := gen.SubmitToolActionJSONRequestBody{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, gen.ErrorResp{
			Error: gen.Error{
				Code:    gen.BADREQUEST,
				Message: "invalid request body",
			},
		})
		return
	}

	params := map[string]any{}
	if req.Params != nil {
		params = *req.Params
	}
	conversationID := uuid.Nil
	if req.ConversationId != nil {
		conversationID = uuid.UUID(*req.ConversationId)
	}

	// Handler failures come back in the response body, never as HTTP errors.
	result := api.SubmitUIActionUseCase.Execute(r.Context(), req.Handler, params, conversationID)

	respondJSON(w, http.StatusOK, gen.ToolSubmitResp{
		Success: result.Success,
		Result:  toUIHandlerResult(result),
	})
}
