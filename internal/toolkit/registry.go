package toolkit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
)

// EnabledToolsKey is the key/value entry holding the persisted enabled set.
const EnabledToolsKey = "enabled_tools"

// FeatureNotifier is invoked whenever the effective tool feature set changes.
type FeatureNotifier func(ctx context.Context, reason string)

// ToolManager is the tool registry built once at startup by Discover. Tool
// definitions are immutable after discovery; only the enabled bit changes at
// runtime, guarded by mu.
type ToolManager struct {
	logger *log.Logger
	kv     domain.KVRepository
	notify FeatureNotifier

	mu      sync.RWMutex
	tools   map[string]*managedTool
	order   []string
	units   []string
	byUnit  map[string][]string
	schemas map[string]*compiledSchema
}

type managedTool struct {
	id      string
	unit    string
	enabled bool
	tool    domain.Tool
}

// Discover builds the registry from the given plugin units. A unit whose
// Tools call fails or panics is logged and skipped without aborting the rest.
// A duplicate tool ID aborts discovery with an error.
func Discover(ctx context.Context, logger *log.Logger, kv domain.KVRepository, notify FeatureNotifier, plugins ...domain.Plugin) (*ToolManager, error) {
	if notify == nil {
		notify = func(context.Context, string) {}
	}
	m := &ToolManager{
		logger:  logger,
		kv:      kv,
		notify:  notify,
		tools:   map[string]*managedTool{},
		byUnit:  map[string][]string{},
		schemas: map[string]*compiledSchema{},
	}

	for _, plugin := range plugins {
		unit := plugin.Unit()
		tools, err := listPluginTools(plugin)
		if err != nil {
			logger.Printf("toolkit: skipping unit %q: %v", unit, err)
			continue
		}
		if _, seen := m.byUnit[unit]; !seen {
			m.units = append(m.units, unit)
		}
		for _, tool := range tools {
			id := unit + "." + tool.Definition().Schema.Name
			if _, exists := m.tools[id]; exists {
				return nil, fmt.Errorf("toolkit: duplicate tool id %q", id)
			}
			schema, err := compileToolSchema(tool.Definition().Schema)
			if err != nil {
				logger.Printf("toolkit: skipping tool %q: invalid parameter schema: %v", id, err)
				continue
			}
			m.tools[id] = &managedTool{id: id, unit: unit, enabled: true, tool: tool}
			m.order = append(m.order, id)
			m.byUnit[unit] = append(m.byUnit[unit], id)
			m.schemas[id] = schema
		}
	}

	if err := m.restoreEnabledSet(ctx); err != nil {
		logger.Printf("toolkit: could not restore enabled set, all tools enabled: %v", err)
	}

	return m, nil
}

// listPluginTools calls plugin.Tools with panic containment.
func listPluginTools(plugin domain.Plugin) (tools []domain.Tool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("plugin panicked: %v", r)
		}
	}()
	return plugin.Tools()
}

// restoreEnabledSet applies the persisted enabled set. When no set was ever
// persisted, every tool stays enabled.
func (m *ToolManager) restoreEnabledSet(ctx context.Context) error {
	value, found, err := m.kv.Get(ctx, EnabledToolsKey)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var enabledIDs []string
	if err := json.Unmarshal(raw, &enabledIDs); err != nil {
		return fmt.Errorf("malformed enabled set: %w", err)
	}
	enabled := make(map[string]struct{}, len(enabledIDs))
	for _, id := range enabledIDs {
		enabled[id] = struct{}{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, tool := range m.tools {
		_, on := enabled[id]
		tool.enabled = on
	}
	return nil
}

// persistEnabledSet writes the current enabled set. Caller holds mu.
func (m *ToolManager) persistEnabledSet(ctx context.Context) {
	enabled := make([]string, 0, len(m.order))
	for _, id := range m.order {
		if m.tools[id].enabled {
			enabled = append(enabled, id)
		}
	}
	if err := m.kv.Set(ctx, EnabledToolsKey, enabled); err != nil {
		m.logger.Printf("toolkit: failed to persist enabled set: %v", err)
	}
}

// Get returns the tool registered under the given ID.
func (m *ToolManager) Get(id string) (domain.RegisteredTool, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tool, found := m.tools[id]
	if !found {
		return domain.RegisteredTool{}, false
	}
	return tool.snapshot(), true
}

// FindByName resolves a model-facing schema name to a registered tool, in
// discovery order. Full IDs also resolve.
func (m *ToolManager) FindByName(name string) (domain.RegisteredTool, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if tool, found := m.tools[name]; found {
		return tool.snapshot(), true
	}
	for _, id := range m.order {
		if m.tools[id].tool.Definition().Schema.Name == name {
			return m.tools[id].snapshot(), true
		}
	}
	return domain.RegisteredTool{}, false
}

// List returns all registered tools in discovery order.
func (m *ToolManager) List() []domain.RegisteredTool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.RegisteredTool, 0, len(m.order))
	for _, id := range m.order {
		res = append(res, m.tools[id].snapshot())
	}
	return res
}

// SetEnabled enables or disables one tool. Returns false when the ID is unknown.
func (m *ToolManager) SetEnabled(ctx context.Context, id string, enabled bool) (bool, error) {
	m.mu.Lock()
	tool, found := m.tools[id]
	if !found {
		m.mu.Unlock()
		return false, nil
	}
	changed := tool.enabled != enabled
	tool.enabled = enabled
	if changed {
		m.persistEnabledSet(ctx)
	}
	m.mu.Unlock()

	if changed {
		m.notify(ctx, "tool_toggled")
	}
	return true, nil
}

// SetUnitEnabled enables or disables every tool of one unit.
func (m *ToolManager) SetUnitEnabled(ctx context.Context, unit string, enabled bool) (bool, error) {
	m.mu.Lock()
	ids, found := m.byUnit[unit]
	if !found {
		m.mu.Unlock()
		return false, nil
	}
	changed := false
	for _, id := range ids {
		if m.tools[id].enabled != enabled {
			m.tools[id].enabled = enabled
			changed = true
		}
	}
	if changed {
		m.persistEnabledSet(ctx)
	}
	m.mu.Unlock()

	if changed {
		m.notify(ctx, "unit_toggled")
	}
	return true, nil
}

// GroupByUnit returns per-unit aggregates in discovery order.
func (m *ToolManager) GroupByUnit() []domain.ToolUnit {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.ToolUnit, 0, len(m.units))
	for _, unit := range m.units {
		group := domain.ToolUnit{Name: unit}
		for _, id := range m.byUnit[unit] {
			snapshot := m.tools[id].snapshot()
			group.Tools = append(group.Tools, snapshot)
			group.TotalCount++
			if snapshot.Enabled {
				group.EnabledCount++
			}
		}
		group.AllEnabled = group.TotalCount > 0 && group.EnabledCount == group.TotalCount
		group.AnyEnabled = group.EnabledCount > 0
		res = append(res, group)
	}
	return res
}

// ValidateArguments checks model-supplied JSON arguments against the tool's
// compiled parameter schema.
func (m *ToolManager) ValidateArguments(id string, arguments string) error {
	m.mu.RLock()
	schema := m.schemas[id]
	m.mu.RUnlock()
	if schema == nil {
		return nil
	}
	return schema.Validate(arguments)
}

func (t *managedTool) snapshot() domain.RegisteredTool {
	return domain.RegisteredTool{
		ID:      t.id,
		Unit:    t.unit,
		Enabled: t.enabled,
		Tool:    t.tool,
	}
}
