package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/toolkit"
)

// ListToolFeatures defines the use case for listing currently-visible UI features
type ListToolFeatures interface {
	// Query returns the UI features of all enabled, visible tools.
	Query(ctx context.Context) []domain.UIFeature
}

// ListToolFeaturesImpl implements the ListToolFeatures use case
type ListToolFeaturesImpl struct {
	features *toolkit.FeatureLister
}

// NewListToolFeaturesImpl creates a new ListToolFeaturesImpl instance
func NewListToolFeaturesImpl(features *toolkit.FeatureLister) *ListToolFeaturesImpl {
	return &ListToolFeaturesImpl{
		features: features,
	}
}

// Query returns the UI features of all enabled, visible tools.
func (uc *ListToolFeaturesImpl) Query(ctx context.Context) []domain.UIFeature {
	_, span := telemetry.Start(ctx)
	defer span.End()

	return uc.features.List()
}

// InitListToolFeatures is the initializer for the ListToolFeatures use case
type InitListToolFeatures struct {
	Features *toolkit.FeatureLister `resolve:""`
}

// Initialize registers the ListToolFeatures use case in the dependency container
func (i InitListToolFeatures) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListToolFeatures](NewListToolFeaturesImpl(i.Features))
	return ctx, nil
}
