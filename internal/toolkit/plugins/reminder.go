package plugins

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/toolkit"
)

// RemindersKVKey holds the persisted reminder list.
const RemindersKVKey = "reminders"

// ReminderPlugin declares the reminder unit: a setter callable by the model
// and an auto tool that surfaces due reminders as context before every turn.
type ReminderPlugin struct {
	kv           domain.KVStore
	timeProvider domain.CurrentTimeProvider
}

// NewReminderPlugin creates the reminder plugin.
func NewReminderPlugin(kv domain.KVStore, timeProvider domain.CurrentTimeProvider) ReminderPlugin {
	return ReminderPlugin{kv: kv, timeProvider: timeProvider}
}

// Unit returns the unit name used as the tool ID prefix.
func (p ReminderPlugin) Unit() string { return "reminder" }

// Tools returns the tool definitions declared by this unit.
func (p ReminderPlugin) Tools() ([]domain.Tool, error) {
	return []domain.Tool{
		setReminderTool{kv: p.kv, timeProvider: p.timeProvider},
		checkRemindersTool{kv: p.kv, timeProvider: p.timeProvider},
	}, nil
}

type reminderEntry struct {
	Text string    `json:"text"`
	Due  time.Time `json:"due"`
}

type setReminderTool struct {
	kv           domain.KVStore
	timeProvider domain.CurrentTimeProvider
}

type setReminderArgs struct {
	Text string `json:"text" jsonschema:"title=Text,description=What to remind the user about.,required"`
	When string `json:"when" jsonschema:"title=When,description=When the reminder is due. Accepts dates like 2026-09-01 or phrases like tomorrow or next friday or in 3 days.,required"`
}

// StatusMessage returns a status message about the tool execution.
func (t setReminderTool) StatusMessage() string {
	return "⏰ Setting a reminder..."
}

// Definition returns the tool definition for setReminderTool.
func (t setReminderTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Schema: domain.ToolSchema{
			Name:        "set_reminder",
			Description: "Save a reminder for the user. Due reminders are surfaced automatically at the start of later turns.",
			Parameters:  toolkit.ParameterSchemaFor(&setReminderArgs{}),
		},
	}
}

// Call executes setReminderTool.
func (t setReminderTool) Call(ctx context.Context, call domain.ToolCall, _ domain.ToolMetadata) (string, error) {
	var args setReminderArgs
	if err := toolkit.UnmarshalToolInput(call.Arguments, &args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	text := strings.TrimSpace(args.Text)
	if text == "" {
		return "", fmt.Errorf("reminder text cannot be empty")
	}

	now := t.timeProvider.Now()
	due, found := domain.ExtractTimeFromText(args.When, now, now.Location())
	if !found {
		return "", fmt.Errorf("could not understand %q as a date", args.When)
	}

	raw, err := json.Marshal(reminderEntry{Text: text, Due: due})
	if err != nil {
		return "", err
	}
	if _, err := t.kv.ListAppend(ctx, RemindersKVKey, string(raw)); err != nil {
		return "", err
	}
	return fmt.Sprintf("reminder saved for %s", due.Format("2006-01-02")), nil
}

// ReportStatus contributes the pending reminder count to the status dashboard.
func (t setReminderTool) ReportStatus(ctx context.Context, _ uuid.UUID) (string, error) {
	count, err := t.kv.ListLength(ctx, RemindersKVKey)
	if err != nil {
		return "", err
	}
	if count == 0 {
		return "", nil
	}
	return fmt.Sprintf("%d pending reminder(s)", count), nil
}

type checkRemindersTool struct {
	kv           domain.KVStore
	timeProvider domain.CurrentTimeProvider
}

// StatusMessage returns a status message about the tool execution.
func (t checkRemindersTool) StatusMessage() string {
	return "⏰ Checking reminders..."
}

// Definition returns the tool definition for checkRemindersTool.
func (t checkRemindersTool) Definition() domain.ToolDefinition {
	return domain.ToolDefinition{
		Schema: domain.ToolSchema{
			Name:        "check_reminders",
			Description: "List reminders that are currently due.",
		},
		AutoTool: true,
	}
}

// Call executes checkRemindersTool.
func (t checkRemindersTool) Call(ctx context.Context, _ domain.ToolCall, _ domain.ToolMetadata) (string, error) {
	items, err := t.kv.ListRange(ctx, RemindersKVKey, 0, -1)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "no pending reminders", nil
	}

	now := t.timeProvider.Now()
	var due []string
	for _, item := range items {
		raw, ok := item.(string)
		if !ok {
			continue
		}
		var entry reminderEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			continue
		}
		if !entry.Due.After(now) {
			due = append(due, fmt.Sprintf("- %s (due %s)", entry.Text, entry.Due.Format("2006-01-02")))
		}
	}
	if len(due) == 0 {
		return "no reminders due yet", nil
	}
	return "DUE REMINDERS:\n" + strings.Join(due, "\n"), nil
}
