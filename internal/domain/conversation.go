package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ConversationTitleSource string

const (
	ConversationTitleSource_User ConversationTitleSource = "user"
	ConversationTitleSource_LLM  ConversationTitleSource = "llm"
	ConversationTitleSource_Auto ConversationTitleSource = "auto"
)

// Conversation represents a chat conversation, which can have multiple messages and a title.
type Conversation struct {
	ID            uuid.UUID
	Title         string
	TitleSource   ConversationTitleSource
	LastMessageAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks if the conversation has valid data.
func (c Conversation) Validate() error {
	if c.Title == "" {
		return NewValidationErr("conversation title cannot be empty")
	}
	if c.TitleSource != ConversationTitleSource_User &&
		c.TitleSource != ConversationTitleSource_LLM &&
		c.TitleSource != ConversationTitleSource_Auto {
		return NewValidationErr(fmt.Sprintf("invalid conversation title source: %s", c.TitleSource))
	}
	return nil
}

// ConversationTitleApplyStatus is the outcome of applying an LLM-generated title.
type ConversationTitleApplyStatus string

const (
	ConversationTitleApplyStatus_Updated            ConversationTitleApplyStatus = "updated"
	ConversationTitleApplyStatus_SkippedNotEligible ConversationTitleApplyStatus = "skipped_not_eligible"
	ConversationTitleApplyStatus_SkippedEmpty       ConversationTitleApplyStatus = "skipped_empty"
	ConversationTitleApplyStatus_SkippedUnchanged   ConversationTitleApplyStatus = "skipped_unchanged"
)

// CanBeLLMRetitled reports whether the conversation still carries its
// heuristic auto title. User-chosen and already-generated titles are final.
func (c Conversation) CanBeLLMRetitled() bool {
	return c.TitleSource == ConversationTitleSource_Auto
}

// ApplyUserTitle sets an explicit user-chosen title.
func (c *Conversation) ApplyUserTitle(title string) error {
	candidate := *c
	candidate.Title = strings.TrimSpace(title)
	candidate.TitleSource = ConversationTitleSource_User
	if err := candidate.Validate(); err != nil {
		return err
	}
	*c = candidate
	return nil
}

const maxConversationTitleRunes = 72

// ApplyLLMGeneratedTitle sanitizes a model-generated title and applies it
// when the conversation is still auto-titled and the result is usable.
func (c *Conversation) ApplyLLMGeneratedTitle(rawTitle string) ConversationTitleApplyStatus {
	if !c.CanBeLLMRetitled() {
		return ConversationTitleApplyStatus_SkippedNotEligible
	}

	title := sanitizeGeneratedTitle(rawTitle)
	if title == "" || strings.EqualFold(title, "New Conversation") {
		return ConversationTitleApplyStatus_SkippedEmpty
	}
	if strings.EqualFold(title, c.Title) {
		return ConversationTitleApplyStatus_SkippedUnchanged
	}

	c.Title = title
	c.TitleSource = ConversationTitleSource_LLM
	return ConversationTitleApplyStatus_Updated
}

// sanitizeGeneratedTitle strips quoting, markdown emphasis and list prefixes
// the model tends to wrap titles in, and clamps the result to one short line.
func sanitizeGeneratedTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if strings.ContainsRune(title, '\n') {
		return ""
	}
	title = strings.Trim(title, `"'`)
	title = strings.TrimPrefix(title, "- ")
	title = strings.TrimPrefix(title, "* ")
	title = strings.ReplaceAll(title, "**", "")
	title = strings.Trim(title, "#` ")
	title = strings.TrimRight(title, "!?.,:; ")
	title = strings.Join(strings.Fields(title), " ")

	runes := []rune(title)
	if len(runes) > maxConversationTitleRunes {
		title = string(runes[:maxConversationTitleRunes])
		if idx := strings.LastIndexByte(title, ' '); idx > 0 {
			title = title[:idx]
		}
	}
	return strings.TrimSpace(title)
}

// ConversationRepository defines the interface for managing conversations.
type ConversationRepository interface {
	// CreateConversation creates a new conversation with the given title and returns it.
	CreateConversation(context.Context, string, ConversationTitleSource) (Conversation, error)
	// GetConversation returns the conversation with the given ID, a boolean indicating if it was found, and an error if any.
	GetConversation(context.Context, uuid.UUID) (Conversation, bool, error)
	// UpdateConversation updates the conversation with the given ID.
	UpdateConversation(context.Context, Conversation) error
	// ListConversations returns a list of conversations with pagination support ordered by last message time descending.
	ListConversations(ctx context.Context, page int, pageSize int) ([]Conversation, bool, error)
	// DeleteConversation deletes the conversation with the given ID.
	DeleteConversation(context.Context, uuid.UUID) error
}

// GenerateAutoConversationTitle generates a conversation title based on the user's initial message.
func GenerateAutoConversationTitle(userMessage string) string {
	// Simple heuristic: use the first 5 words of the user's message as the title, or "New Conversation" if empty.
	words := strings.Fields(userMessage)
	if len(words) == 0 {
		return "New Conversation"
	}
	if len(words) <= 5 {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:5], " ") + "..."
}
