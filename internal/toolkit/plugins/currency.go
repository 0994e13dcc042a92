package plugins

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/toolkit"
)

// CurrencyPlugin declares the currency unit: a conditional converter backed
// by a frankfurter-compatible exchange rate API. The tool stays hidden until
// a rates endpoint is configured.
type CurrencyPlugin struct {
	ratesURL string
	http     *http.Client
}

// NewCurrencyPlugin creates the currency plugin. ratesURL may be empty, in
// which case the tool never becomes visible.
func NewCurrencyPlugin(ratesURL string, httpClient *http.Client) CurrencyPlugin {
	return CurrencyPlugin{ratesURL: ratesURL, http: httpClient}
}

// Unit returns the unit name used as the tool ID prefix.
func (p CurrencyPlugin) Unit() string { return "currency" }

// Tools returns the tool definitions declared by this unit.
func (p CurrencyPlugin) Tools() ([]domain.Tool, error) {
	return []domain.Tool{convertCurrencyTool{ratesURL: p.ratesURL, http: p.http}}, nil
}

type convertCurrencyTool struct {
	ratesURL string
	http     *http.Client
}

type convertCurrencyArgs struct {
	Amount float64 `json:"amount" jsonschema:"title=Amount,description=The amount to convert.,required"`
	From   string  `json:"from" jsonschema:"title=From,description=ISO 4217 source currency code.,required"`
	To     string  `json:"to" jsonschema:"title=To,description=ISO 4217 target currency code.,required"`
}

// StatusMessage returns a status message about the tool execution.
func (t convertCurrencyTool) StatusMessage() string {
	return "💱 Converting currency..."
}

// Definition returns the tool definition for convertCurrencyTool.
func (t convertCurrencyTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Schema: domain.ToolSchema{
			Name:        "convert_currency",
			Description: "Convert an amount between two currencies using current exchange rates.",
			Parameters:  toolkit.ParameterSchemaFor(&convertCurrencyArgs{}),
		},
	}
}

// Condition hides the tool while no rates endpoint is configured.
func (t convertCurrencyTool) Condition(_ context.Context) (bool, error) {
	return t.ratesURL != "", nil
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Call executes convertCurrencyTool.
func (t convertCurrencyTool) Call(ctx context.Context, call domain.ToolCall, _ domain.ToolMetadata) (string, error) {
	var args convertCurrencyArgs
	if err := toolkit.UnmarshalToolInput(call.Arguments, &args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	from := strings.ToUpper(strings.TrimSpace(args.From))
	to := strings.ToUpper(strings.TrimSpace(args.To))
	if len(from) != 3 || len(to) != 3 {
		return "", fmt.Errorf("currency codes must be 3 letters, got %q and %q", args.From, args.To)
	}
	if from == to {
		return fmt.Sprintf("%.2f %s = %.2f %s", args.Amount, from, args.Amount, to), nil
	}

	rate, err := t.fetchRate(ctx, from, to)
	if err != nil {
		return "", err
	}
	converted := args.Amount * rate
	return fmt.Sprintf("%.2f %s = %.2f %s (rate %.6f)", args.Amount, from, converted, to, rate), nil
}

func (t convertCurrencyTool) fetchRate(ctx context.Context, from, to string) (float64, error) {
	endpoint := fmt.Sprintf("%s/latest?%s", strings.TrimRight(t.ratesURL, "/"), url.Values{
		"from": {from},
		"to":   {to},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}

	resp, err := t.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(body))
	}

	var rates ratesResponse
	if err := json.Unmarshal(body, &rates); err != nil {
		return 0, fmt.Errorf("unmarshal response: %w", err)
	}
	rate, found := rates.Rates[to]
	if !found {
		return 0, fmt.Errorf("no rate available for %s", to)
	}
	return rate, nil
}
