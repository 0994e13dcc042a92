package usecases

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/toolkit"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func discoverTestRegistry(t *testing.T, plugins ...domain.Plugin) *toolkit.ToolManager {
	t.Helper()

	kv := domain.NewMockKVRepository(t)
	kv.EXPECT().Get(mock.Anything, toolkit.EnabledToolsKey).Return(nil, false, nil).Maybe()
	kv.EXPECT().Set(mock.Anything, toolkit.EnabledToolsKey, mock.Anything).Return(nil).Maybe()

	registry, err := toolkit.Discover(
		context.Background(),
		log.New(io.Discard, "", 0),
		kv,
		nil,
		plugins...,
	)
	assert.NoError(t, err)
	return registry
}

func TestListToolFeaturesImpl_Query(t *testing.T) {
	moodFeature := &domain.UIFeature{ID: "mood-widget", Type: domain.UIFeatureType_Widget, KVKey: "mood"}
	reminderFeature := &domain.UIFeature{ID: "reminder-panel", Type: domain.UIFeatureType_BadgePanel}

	registry := discoverTestRegistry(t,
		stubPlugin{unit: "mood", tools: []domain.Tool{
			stubTool{def: domain.ToolDefinition{
				Schema:    domain.ToolSchema{Name: "set_mood", Description: "Sets the mood"},
				UIFeature: moodFeature,
			}},
		}},
		stubPlugin{unit: "reminder", tools: []domain.Tool{
			stubTool{def: domain.ToolDefinition{
				Schema:    domain.ToolSchema{Name: "set_reminder", Description: "Stores a reminder"},
				UIFeature: reminderFeature,
			}},
			stubTool{def: domain.ToolDefinition{
				Schema: domain.ToolSchema{Name: "list_reminders", Description: "Lists reminders"},
			}},
		}},
	)

	t.Run("lists-features-of-enabled-visible-tools", func(t *testing.T) {
		ltf := NewListToolFeaturesImpl(toolkit.NewFeatureLister(registry, fakeVisibility{}))

		got := ltf.Query(context.Background())

		assert.Len(t, got, 2)
		assert.Equal(t, "mood-widget", got[0].ID)
		assert.Equal(t, "mood.set_mood", got[0].SourceToolID)
		assert.Equal(t, "reminder-panel", got[1].ID)
		assert.Equal(t, "reminder.set_reminder", got[1].SourceToolID)
	})

	t.Run("hidden-tool-feature-is-dropped", func(t *testing.T) {
		visibility := fakeVisibility{states: map[string]domain.ConditionState{
			"mood.set_mood": domain.ConditionState_Hidden,
		}}
		ltf := NewListToolFeaturesImpl(toolkit.NewFeatureLister(registry, visibility))

		got := ltf.Query(context.Background())

		assert.Len(t, got, 1)
		assert.Equal(t, "reminder-panel", got[0].ID)
	})

	t.Run("disabled-tool-feature-is-dropped", func(t *testing.T) {
		found, err := registry.SetEnabled(context.Background(), "reminder.set_reminder", false)
		assert.NoError(t, err)
		assert.True(t, found)

		ltf := NewListToolFeaturesImpl(toolkit.NewFeatureLister(registry, fakeVisibility{}))

		got := ltf.Query(context.Background())

		assert.Len(t, got, 1)
		assert.Equal(t, "mood-widget", got[0].ID)
	})
}

func TestInitListToolFeatures_Initialize(t *testing.T) {
	registry := discoverTestRegistry(t)

	i := InitListToolFeatures{Features: toolkit.NewFeatureLister(registry, fakeVisibility{})}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	ltf, err := depend.Resolve[ListToolFeatures]()
	assert.NoError(t, err)
	assert.NotNil(t, ltf)
}
