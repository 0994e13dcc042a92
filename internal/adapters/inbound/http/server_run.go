package http

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/usecases"
	"github.com/rs/cors"
)

var _ gen.ServerInterface = (*ChatPadServer)(nil)

// ChatPadServer is the REST API and UI HTTP server for the ChatPad application.
type ChatPadServer struct {
	Port                       int                          `config:"HTTP_PORT" default:"8080"`
	Logger                     *log.Logger                  `resolve:""`
	ListConversationsUseCase   usecases.ListConversations   `resolve:""`
	UpdateConversationUseCase  usecases.UpdateConversation  `resolve:""`
	DeleteConversationUseCase  usecases.DeleteConversation  `resolve:""`
	ListChatMessagesUseCase    usecases.ListChatMessages    `resolve:""`
	ListAvailableModelsUseCase usecases.ListAvailableModels `resolve:""`
	StreamChatUseCase          usecases.StreamChat          `resolve:""`
	ListToolsUseCase           usecases.ListTools           `resolve:""`
	ToggleToolUseCase          usecases.ToggleTool          `resolve:""`
	ListToolFeaturesUseCase    usecases.ListToolFeatures    `resolve:""`
	SubmitUIActionUseCase      usecases.SubmitUIAction      `resolve:""`
	KVStore                    domain.KVStore               `resolve:""`
}

//go:embed webappdist/*
var embedFS embed.FS

// Run starts the HTTP server for the ChatPadServer.
func (api ChatPadServer) Run(ctx context.Context) error {

	mux := http.NewServeMux()

	// Serve webapp static files
	sub, err := fs.Sub(embedFS, "webappdist")
	if err != nil {
		return fmt.Errorf("failed to create sub filesystem for webapp: %w", err)
	}
	mux.Handle("/", http.FileServerFS(sub))

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	// Create the OpenAPI handler with telemetry middleware
	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			telemetry.Middleware("chatpad-api"),
		},
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("ChatPadServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("ChatPadServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("ChatPadServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the ChatPadServer is ready by performing a health check.
func (api ChatPadServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
