package toolkit

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/toon-format/toon-go"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
)

// StatusDashboard collects status lines from reporting tools and renders the
// dashboard section injected into model context before each generation cycle.
type StatusDashboard struct {
	logger     *log.Logger
	registry   *ToolManager
	visibility domain.VisibilityReader
}

// NewStatusDashboard creates a status dashboard collector.
func NewStatusDashboard(logger *log.Logger, registry *ToolManager, visibility domain.VisibilityReader) *StatusDashboard {
	return &StatusDashboard{logger: logger, registry: registry, visibility: visibility}
}

type toolStatusLine struct {
	Tool   string `json:"tool"`
	Status string `json:"status"`
}

// Render returns the dashboard section, or an empty string when no enabled,
// visible tool reports status. A failing reporter is skipped and logged.
func (d *StatusDashboard) Render(ctx context.Context, conversationID uuid.UUID) string {
	var lines []toolStatusLine
	for _, registered := range d.registry.List() {
		if !registered.Enabled || !d.visibility.Visible(registered.ID) {
			continue
		}
		reporter, ok := registered.Tool.(domain.StatusReporter)
		if !ok {
			continue
		}
		status, err := invokeStatusReporter(ctx, reporter, conversationID)
		if err != nil {
			d.logger.Printf("toolkit: status reporter %q failed: %v", registered.ID, err)
			continue
		}
		if status == "" {
			continue
		}
		lines = append(lines, toolStatusLine{Tool: registered.ID, Status: status})
	}
	if len(lines) == 0 {
		return ""
	}

	rendered, err := toon.MarshalString(lines, toon.WithLengthMarkers(true))
	if err != nil {
		d.logger.Printf("toolkit: failed to render status dashboard: %v", err)
		return ""
	}
	return "STATUS_DASHBOARD:\n" + rendered
}

func invokeStatusReporter(ctx context.Context, reporter domain.StatusReporter, conversationID uuid.UUID) (status string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("status reporter panicked: %v", r)
		}
	}()
	return reporter.ReportStatus(ctx, conversationID)
}
