package toolkit

import (
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
)

// FeatureLister exposes the currently effective tool UI features: those of
// enabled, visible tools, in registration order.
type FeatureLister struct {
	registry   *ToolManager
	visibility domain.VisibilityReader
}

// NewFeatureLister creates a feature lister.
func NewFeatureLister(registry *ToolManager, visibility domain.VisibilityReader) *FeatureLister {
	return &FeatureLister{registry: registry, visibility: visibility}
}

// List returns the visible feature descriptors with their source tool IDs.
func (l *FeatureLister) List() []domain.UIFeature {
	var features []domain.UIFeature
	for _, registered := range l.registry.List() {
		if !registered.Enabled || !l.visibility.Visible(registered.ID) {
			continue
		}
		definition := registered.Tool.Definition()
		if definition.UIFeature == nil {
			continue
		}
		feature := *definition.UIFeature
		feature.SourceToolID = registered.ID
		features = append(features, feature)
	}
	return features
}
