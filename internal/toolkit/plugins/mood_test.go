package plugins

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetMoodTool_Call(t *testing.T) {
	tests := map[string]struct {
		arguments      string
		setupKV        func(*domain.MockKVStore)
		expectedResult string
		expectedError  string
	}{
		"set-mood-success": {
			arguments: `{"mood":"happy"}`,
			setupKV: func(m *domain.MockKVStore) {
				m.EXPECT().Set(mock.Anything, MoodKVKey, "happy").Return(nil)
			},
			expectedResult: "mood set to happy",
		},
		"set-mood-normalizes-case-and-spaces": {
			arguments: `{"mood":"  Excited "}`,
			setupKV: func(m *domain.MockKVStore) {
				m.EXPECT().Set(mock.Anything, MoodKVKey, "excited").Return(nil)
			},
			expectedResult: "mood set to excited",
		},
		"set-mood-unknown": {
			arguments:     `{"mood":"grumpy"}`,
			setupKV:       func(m *domain.MockKVStore) {},
			expectedError: `unknown mood "grumpy"`,
		},
		"set-mood-invalid-json": {
			arguments:     `not-json`,
			setupKV:       func(m *domain.MockKVStore) {},
			expectedError: "invalid arguments",
		},
		"set-mood-unknown-field": {
			arguments:     `{"mood":"happy","vibe":"good"}`,
			setupKV:       func(m *domain.MockKVStore) {},
			expectedError: "invalid arguments",
		},
		"set-mood-kv-failure": {
			arguments: `{"mood":"happy"}`,
			setupKV: func(m *domain.MockKVStore) {
				m.EXPECT().Set(mock.Anything, MoodKVKey, "happy").Return(assert.AnError)
			},
			expectedError: assert.AnError.Error(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			kv := domain.NewMockKVStore(t)
			tt.setupKV(kv)

			tool := singleTool(t, NewMoodPlugin(kv))
			definition := tool.Definition()
			assert.Equal(t, "set_mood", definition.Schema.Name)
			assert.True(t, definition.OneTime)
			require.NotNil(t, definition.UIFeature)
			assert.Equal(t, MoodKVKey, definition.UIFeature.KVKey)

			callable, ok := tool.(domain.Callable)
			require.True(t, ok)

			result, err := callable.Call(context.Background(), domain.ToolCall{
				Name:      "set_mood",
				Arguments: tt.arguments,
			}, domain.ToolMetadata{})

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestSetMoodTool_ReportStatus(t *testing.T) {
	tests := map[string]struct {
		setupKV        func(*domain.MockKVStore)
		expectedStatus string
		expectedError  bool
	}{
		"mood-present": {
			setupKV: func(m *domain.MockKVStore) {
				m.EXPECT().Get(mock.Anything, MoodKVKey).Return("playful", true, nil)
			},
			expectedStatus: "mood: playful",
		},
		"mood-absent-defaults-to-neutral": {
			setupKV: func(m *domain.MockKVStore) {
				m.EXPECT().Get(mock.Anything, MoodKVKey).Return(nil, false, nil)
			},
			expectedStatus: "mood: neutral",
		},
		"kv-failure": {
			setupKV: func(m *domain.MockKVStore) {
				m.EXPECT().Get(mock.Anything, MoodKVKey).Return(nil, false, assert.AnError)
			},
			expectedError: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			kv := domain.NewMockKVStore(t)
			tt.setupKV(kv)

			reporter, ok := singleTool(t, NewMoodPlugin(kv)).(domain.StatusReporter)
			require.True(t, ok)

			status, err := reporter.ReportStatus(context.Background(), uuid.Nil)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, status)
		})
	}
}

func TestSetMoodTool_UIHandlers(t *testing.T) {
	tests := map[string]struct {
		handler      string
		params       map[string]any
		setupKV      func(*domain.MockKVStore)
		validateResp func(t *testing.T, resp domain.UIHandlerResponse)
	}{
		"set-handler-success": {
			handler: "mood.set",
			params:  map[string]any{"mood": "Thoughtful"},
			setupKV: func(m *domain.MockKVStore) {
				m.EXPECT().Set(mock.Anything, MoodKVKey, "thoughtful").Return(nil)
			},
			validateResp: func(t *testing.T, resp domain.UIHandlerResponse) {
				assert.True(t, resp.Success)
				assert.Equal(t, "Mood updated", resp.Message)
				assert.Equal(t, []string{"mood_badge"}, resp.RefreshComponents)
			},
		},
		"set-handler-unknown-mood": {
			handler: "mood.set",
			params:  map[string]any{"mood": "grumpy"},
			setupKV: func(m *domain.MockKVStore) {},
			validateResp: func(t *testing.T, resp domain.UIHandlerResponse) {
				assert.False(t, resp.Success)
				assert.Contains(t, resp.Error, "unknown mood")
			},
		},
		"set-handler-missing-param": {
			handler: "mood.set",
			params:  map[string]any{},
			setupKV: func(m *domain.MockKVStore) {},
			validateResp: func(t *testing.T, resp domain.UIHandlerResponse) {
				assert.False(t, resp.Success)
			},
		},
		"clear-handler-success": {
			handler: "mood.clear",
			params:  map[string]any{},
			setupKV: func(m *domain.MockKVStore) {
				m.EXPECT().Delete(mock.Anything, MoodKVKey).Return(true, nil)
			},
			validateResp: func(t *testing.T, resp domain.UIHandlerResponse) {
				assert.True(t, resp.Success)
				assert.True(t, resp.CloseModal)
				assert.Equal(t, []string{"mood_badge"}, resp.RefreshComponents)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			kv := domain.NewMockKVStore(t)
			tt.setupKV(kv)

			provider, ok := singleTool(t, NewMoodPlugin(kv)).(domain.UIProvider)
			require.True(t, ok)

			handlers := provider.UIHandlers()
			handler, found := handlers[tt.handler]
			require.True(t, found)

			resp, err := handler(context.Background(), tt.params, domain.ToolMetadata{})
			assert.NoError(t, err)
			tt.validateResp(t, resp)
		})
	}
}
