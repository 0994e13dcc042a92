package plugins

import (
	"context"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
)

// InitPlugins registers the built-in plugin units consumed by the tool
// registry at discovery time.
type InitPlugins struct {
	KV           domain.KVStore             `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	HttpClient   *http.Client               `resolve:""`

	CurrencyRatesURL string `config:"CURRENCY_RATES_URL" default:""`
}

// Initialize registers the built-in plugins in the dependency container.
func (i InitPlugins) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register([]domain.Plugin{
		NewMoodPlugin(i.KV),
		NewGuidancePlugin(),
		NewThinkingPlugin(i.KV),
		NewNarratePlugin(),
		NewCurrencyPlugin(i.CurrencyRatesURL, i.HttpClient),
		NewReminderPlugin(i.KV, i.TimeProvider),
	})
	return ctx, nil
}
