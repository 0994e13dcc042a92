package plugins

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/toolkit"
)

// MoodKVKey stores the assistant's current mood.
const MoodKVKey = "current_mood"

var knownMoods = []string{"neutral", "happy", "excited", "thoughtful", "concerned", "playful"}

// MoodPlugin declares the mood unit: a one-time mood setter with a badge
// panel and UI handlers to set or clear the mood from the frontend.
type MoodPlugin struct {
	kv domain.KVStore
}

// NewMoodPlugin creates the mood plugin.
func NewMoodPlugin(kv domain.KVStore) MoodPlugin {
	return MoodPlugin{kv: kv}
}

// Unit returns the unit name used as the tool ID prefix.
func (p MoodPlugin) Unit() string { return "mood" }

// Tools returns the tool definitions declared by this unit.
func (p MoodPlugin) Tools() ([]domain.Tool, error) {
	return []domain.Tool{setMoodTool{kv: p.kv}}, nil
}

type setMoodTool struct {
	kv domain.KVStore
}

type setMoodArgs struct {
	Mood      string `json:"mood" jsonschema:"title=Mood,description=The mood to adopt. One of: neutral happy excited thoughtful concerned playful.,required"`
	Intensity int    `json:"intensity,omitempty" jsonschema:"title=Intensity,description=Optional intensity from 1 to 5."`
}

// StatusMessage returns a status message about the tool execution.
func (t setMoodTool) StatusMessage() string {
	return "🎭 Adjusting mood..."
}

// Definition returns the tool definition for setMoodTool.
func (t setMoodTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Schema: domain.ToolSchema{
			Name:        "set_mood",
			Description: "Set the assistant's current mood. Call when the emotional tone of the conversation shifts.",
			Parameters:  toolkit.ParameterSchemaFor(&setMoodArgs{}),
		},
		OneTime: true,
		UIFeature: &domain.UIFeature{
			ID:    "mood_badge",
			Label: "Mood",
			Icon:  "theater-masks",
			Type:  domain.UIFeatureType_BadgePanel,
			KVKey: MoodKVKey,
		},
	}
}

// Call executes setMoodTool.
func (t setMoodTool) Call(ctx context.Context, call domain.ToolCall, _ domain.ToolMetadata) (string, error) {
	var args setMoodArgs
	if err := toolkit.UnmarshalToolInput(call.Arguments, &args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	mood := strings.ToLower(strings.TrimSpace(args.Mood))
	if !isKnownMood(mood) {
		return "", fmt.Errorf("unknown mood %q, expected one of %s", args.Mood, strings.Join(knownMoods, ", "))
	}
	if err := t.kv.Set(ctx, MoodKVKey, mood); err != nil {
		return "", err
	}
	return fmt.Sprintf("mood set to %s", mood), nil
}

// ReportStatus contributes the current mood to the status dashboard.
func (t setMoodTool) ReportStatus(ctx context.Context, _ uuid.UUID) (string, error) {
	value, found, err := t.kv.Get(ctx, MoodKVKey)
	if err != nil {
		return "", err
	}
	if !found {
		return "mood: neutral", nil
	}
	return fmt.Sprintf("mood: %v", value), nil
}

// UIHandlers exposes the mood badge actions.
func (t setMoodTool) UIHandlers() map[string]domain.UIHandler {
	return map[string]domain.UIHandler{
		"mood.set":   t.handleSet,
		"mood.clear": t.handleClear,
	}
}

func (t setMoodTool) handleSet(ctx context.Context, params map[string]any, _ domain.ToolMetadata) (domain.UIHandlerResponse, error) {
	mood, _ := params["mood"].(string)
	mood = strings.ToLower(strings.TrimSpace(mood))
	if !isKnownMood(mood) {
		return domain.UIHandlerResponse{Success: false, Error: fmt.Sprintf("unknown mood %q", mood)}, nil
	}
	if err := t.kv.Set(ctx, MoodKVKey, mood); err != nil {
		return domain.UIHandlerResponse{}, err
	}
	return domain.UIHandlerResponse{
		Success:           true,
		Message:           "Mood updated",
		RefreshComponents: []string{"mood_badge"},
	}, nil
}

func (t setMoodTool) handleClear(ctx context.Context, _ map[string]any, _ domain.ToolMetadata) (domain.UIHandlerResponse, error) {
	if _, err := t.kv.Delete(ctx, MoodKVKey); err != nil {
		return domain.UIHandlerResponse{}, err
	}
	return domain.UIHandlerResponse{
		Success:           true,
		Message:           "Mood cleared",
		RefreshComponents: []string{"mood_badge"},
		CloseModal:        true,
	}, nil
}

func isKnownMood(mood string) bool {
	for _, known := range knownMoods {
		if mood == known {
			return true
		}
	}
	return false
}
