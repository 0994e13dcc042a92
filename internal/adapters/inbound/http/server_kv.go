package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/adapters/inbound/http/gen"
)

// Read a key/value entry
// (GET /api/kv/{key})
func (api ChatPadServer) GetKVEntry(w http.ResponseWriter, r *http.Request, key string) {
	resp := gen.KVEntryResp{Key: key}

	value, found, err := api.KVStore.Get(r.Context(), key)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	if found {
		resp.Found = true
		resp.Value = &value
	} else {
		// A key can also hold a list; expose it as its full range plus length.
		length, err := api.KVStore.ListLength(r.Context(), key)
		if err != nil {
			respondError(w, toError(err))
			return
		}
		if length > 0 {
			items, err := api.KVStore.ListRange(r.Context(), key, 0, -1)
			if err != nil {
				respondError(w, toError(err))
				return
			}
			var value any = items
			resp.Found = true
			resp.Value = &value
			resp.Length = &length
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

// Store a scalar or JSON value under a key
// (PUT /api/kv/{key})
func (api ChatPadServer) PutKVEntry(w http.ResponseWriter, r *http.Request, key string) {
	req := gen.PutKVEntryJSONRequestBody{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, gen.ErrorResp{
			Error: gen.Error{
				Code:    gen.BADREQUEST,
				Message: "invalid request body",
			},
		})
		return
	}

	if err := api.KVStore.Set(r.Context(), key, req.Value); err != nil {
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
