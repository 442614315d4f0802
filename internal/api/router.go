package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)       // Basic request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.SetHeader("Content-Type", "application/json"))

		// Public routes
		r.Get("/health", apiHandler.HealthHandler)
		r.Get("/corpus", apiHandler.CorpusHandler)
		r.Post("/query", apiHandler.QueryHandler)
		r.Post("/chats", apiHandler.CreateChatHandler)

		// Chat session routes
		r.Route("/chat", func(r chi.Router) {
			r.Use(apiHandler.ChatAuthMiddleware)

			r.Get("/", apiHandler.GetChatDetailsHandler)
			r.Get("/context", apiHandler.GetContextHandler)
			r.Put("/context", apiHandler.UpdateContextHandler)
			r.Post("/folders/{folderID}/toggle", apiHandler.ToggleFolderHandler)
			r.Post("/files/{fileID}/toggle", apiHandler.ToggleFileHandler)
			r.Delete("/selection", apiHandler.ClearSelectionHandler)
			r.Post("/messages", apiHandler.PostMessageHandler)
			r.Post("/messages/{messageID}/feedback", apiHandler.MessageFeedbackHandler)
		})
	})

	return r
}
