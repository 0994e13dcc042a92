package usecases

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.yaml.in/yaml/v3"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/common"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/telemetry"
)

const (
	// Inspect only a small recent window; this runs frequently.
	MAX_CHAT_MESSAGES_FOR_TITLE = 20

	// Keep generation deterministic.
	CHAT_TITLE_MAX_TOKENS  = 32
	CHAT_TITLE_TEMPERATURE = 0.2
	CHAT_TITLE_TOP_P       = 0.7

	MAX_PROMPT_MESSAGE_CHARS = 220
)

//go:embed prompts/conversation-title.yml
var conversationTitlePrompt embed.FS

// GenerateConversationTitle defines the interface for generating an LLM title for auto-named conversations.
type GenerateConversationTitle interface {
	// Execute tries to generate and persist a better title for the given conversation event.
	Execute(ctx context.Context, event domain.ChatMessageEvent) error
}

// GenerateConversationTitleImpl is the implementation of GenerateConversationTitle.
type GenerateConversationTitleImpl struct {
	conversationRepo domain.ConversationRepository
	chatMessageRepo  domain.ChatMessageRepository
	timeProvider     domain.CurrentTimeProvider
	assistant        domain.Assistant
	model            string
}

// NewGenerateConversationTitleImpl creates a new instance of GenerateConversationTitleImpl.
func NewGenerateConversationTitleImpl(
	conversationRepo domain.ConversationRepository,
	chatMessageRepo domain.ChatMessageRepository,
	timeProvider domain.CurrentTimeProvider,
	assistant domain.Assistant,
	model string,
) GenerateConversationTitleImpl {
	return GenerateConversationTitleImpl{
		conversationRepo: conversationRepo,
		chatMessageRepo:  chatMessageRepo,
		timeProvider:     timeProvider,
		assistant:        assistant,
		model:            model,
	}
}

// Execute tries to update only auto-named conversations with an LLM-generated title.
func (gct GenerateConversationTitleImpl) Execute(ctx context.Context, event domain.ChatMessageEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if event.Type != domain.EventType_CHAT_MESSAGE_SENT {
		return domain.NewValidationErr("invalid event type for conversation title generation")
	}
	if event.ConversationID == uuid.Nil {
		return domain.NewValidationErr("conversation id cannot be empty")
	}
	// Retitle at most once per assistant turn, never on plumbing messages.
	if event.ChatRole != domain.ChatRole_Assistant {
		return nil
	}

	conversation, found, err := gct.conversationRepo.GetConversation(spanCtx, event.ConversationID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to get conversation: %w", err)
	}
	if !found {
		// Conversation could have been deleted between event publish and worker processing.
		return nil
	}

	if !conversation.CanBeLLMRetitled() {
		return nil
	}

	messages, _, err := gct.chatMessageRepo.ListChatMessages(spanCtx, event.ConversationID, 1, MAX_CHAT_MESSAGES_FOR_TITLE)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to list chat messages: %w", err)
	}

	promptMessages, err := gct.buildPromptMessages(conversation.Title, messages)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to build title prompt: %w", err)
	}

	resp, err := gct.assistant.RunTurnSync(spanCtx, domain.AssistantTurnRequest{
		Model:       gct.model,
		Messages:    promptMessages,
		Stream:      false,
		MaxTokens:   common.Ptr(CHAT_TITLE_MAX_TOKENS),
		Temperature: common.Ptr(CHAT_TITLE_TEMPERATURE),
		TopP:        common.Ptr(CHAT_TITLE_TOP_P),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to generate conversation title: %w", err)
	}

	RecordLLMTokensUsed(spanCtx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	applyStatus := conversation.ApplyLLMGeneratedTitle(resp.Content)
	if applyStatus != domain.ConversationTitleApplyStatus_Updated {
		span.AddEvent("Generated title skipped", trace.WithAttributes(
			attribute.String("apply_status", string(applyStatus)),
			attribute.String("generated_title_raw", strings.TrimSpace(resp.Content)),
			attribute.String("current_title", conversation.Title),
		))
		return nil
	}
	conversation.UpdatedAt = gct.timeProvider.Now()

	if err := gct.conversationRepo.UpdateConversation(spanCtx, conversation); telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to update conversation title: %w", err)
	}

	return nil
}

// buildPromptMessages loads the prompt template and injects the current title and recent messages.
func (gct GenerateConversationTitleImpl) buildPromptMessages(
	currentTitle string,
	messages []domain.ChatMessage,
) ([]domain.AssistantMessage, error) {
	file, err := conversationTitlePrompt.Open("prompts/conversation-title.yml")
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck

	prompt := []domain.AssistantMessage{}
	if err := yaml.NewDecoder(file).Decode(&prompt); err != nil {
		return nil, err
	}

	formattedMessages := formatMessagesForConversationTitle(messages)
	for i, msg := range prompt {
		if strings.Contains(msg.Content, "%[") {
			prompt[i].Content = fmt.Sprintf(msg.Content, currentTitle, formattedMessages)
		}
	}

	return prompt, nil
}

// formatMessagesForConversationTitle prepares a concise transcript of recent messages for the LLM prompt.
func formatMessagesForConversationTitle(messages []domain.ChatMessage) string {
	lines := make([]string, 0, len(messages))
	for _, message := range messages {
		if message.ChatRole != domain.ChatRole_User && message.ChatRole != domain.ChatRole_Assistant {
			continue
		}
		content := strings.Join(strings.Fields(message.Content), " ")
		if content == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", message.ChatRole, clampRunes(content, MAX_PROMPT_MESSAGE_CHARS)))
	}

	if len(lines) == 0 {
		return "No messages."
	}

	return strings.Join(lines, "\n")
}

// clampRunes safely truncates a string to a maximum number of runes.
func clampRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// InitGenerateConversationTitle is the initializer for the GenerateConversationTitle use case
type InitGenerateConversationTitle struct {
	ConversationRepo domain.ConversationRepository `resolve:""`
	ChatMessageRepo  domain.ChatMessageRepository  `resolve:""`
	TimeProvider     domain.CurrentTimeProvider    `resolve:""`
	Assistant        domain.Assistant              `resolve:""`
	Model            string                        `config:"ASSISTANT_TITLE_MODEL" default:"ai/smollm2:360M-Q4_K_M"`
}

// Initialize registers the GenerateConversationTitle use case in the dependency container
func (i InitGenerateConversationTitle) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GenerateConversationTitle](NewGenerateConversationTitleImpl(
		i.ConversationRepo,
		i.ChatMessageRepo,
		i.TimeProvider,
		i.Assistant,
		i.Model,
	))
	return ctx, nil
}
