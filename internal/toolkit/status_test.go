package toolkit

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
)

func TestStatusDashboard_Render(t *testing.T) {
	manager := discoverTest(t, newFakeKV(), nil,
		fakePlugin{unit: "alpha", tools: []domain.Tool{
			reportingTool{callableTool{&fakeTool{name: "mood", hasStatus: true, status: "mood: happy"}}},
			reportingTool{callableTool{&fakeTool{name: "silent", hasStatus: true, status: ""}}},
			reportingTool{callableTool{&fakeTool{name: "broken"}}},
			callableTool{&fakeTool{name: "plain"}},
		}},
	)
	dashboard := NewStatusDashboard(testLogger(), manager, staticVisibility{})

	rendered := dashboard.Render(context.Background(), uuid.New())

	assert.Contains(t, rendered, "STATUS_DASHBOARD:")
	assert.Contains(t, rendered, "alpha.mood")
	assert.Contains(t, rendered, "mood: happy")
	assert.NotContains(t, rendered, "alpha.broken")
	assert.NotContains(t, rendered, "alpha.silent")
}

func TestStatusDashboard_EmptyWhenNoReporters(t *testing.T) {
	manager := discoverTest(t, newFakeKV(), nil,
		fakePlugin{unit: "alpha", tools: []domain.Tool{callableTool{&fakeTool{name: "plain"}}}},
	)
	dashboard := NewStatusDashboard(testLogger(), manager, staticVisibility{})

	assert.Empty(t, dashboard.Render(context.Background(), uuid.New()))
}

func TestFeatureLister_ListsVisibleFeaturesWithSource(t *testing.T) {
	manager := discoverTest(t, newFakeKV(), nil,
		fakePlugin{unit: "alpha", tools: []domain.Tool{
			callableTool{&fakeTool{name: "mood", uiFeature: &domain.UIFeature{
				ID:    "mood_badge",
				Type:  domain.UIFeatureType_BadgePanel,
				KVKey: "current_mood",
			}}},
			callableTool{&fakeTool{name: "gated", uiFeature: &domain.UIFeature{
				ID:   "gated_panel",
				Type: domain.UIFeatureType_UIV1,
			}}},
			callableTool{&fakeTool{name: "plain"}},
		}},
	)
	lister := NewFeatureLister(manager, staticVisibility{hidden: map[string]bool{"alpha.gated": true}})

	features := lister.List()

	assert.Len(t, features, 1)
	assert.Equal(t, "mood_badge", features[0].ID)
	assert.Equal(t, "alpha.mood", features[0].SourceToolID)
}
