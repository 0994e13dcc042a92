package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/toolkit"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/toolkit/plugins"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/usecases"
)

// NewChatPadApp creates and returns a new instance of the ChatPad application.
func NewChatPadApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitConversationRepository{},
			&postgres.InitChatMessageRepository{},
			&postgres.InitKVRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&modelrunner.InitAssistantClient{},

			&usecases.InitFeatureNotifier{},
			&usecases.InitKVStore{},
			&plugins.InitPlugins{},
			&toolkit.InitToolkit{},

			&usecases.InitListTools{},
			&usecases.InitToggleTool{},
			&usecases.InitListToolFeatures{},
			&usecases.InitSubmitUIAction{},
			&usecases.InitGenerateConversationTitle{},
			&usecases.InitListConversations{},
			&usecases.InitUpdateConversation{},
			&usecases.InitListChatMessages{},
			&usecases.InitDeleteConversation{},
			&usecases.InitStreamChat{},
			&usecases.InitListAvailableModels{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.ChatPadServer{},
			&workers.ToolConditionWatcher{},
			&workers.ConversationTitleGenerator{},
			&workers.MessageRelay{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
