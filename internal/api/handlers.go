package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/711pranjal/Egnyte-TrustLens/internal/auth"
	"github.com/711pranjal/Egnyte-TrustLens/internal/core"
	"github.com/711pranjal/Egnyte-TrustLens/internal/corpus"
	"github.com/711pranjal/Egnyte-TrustLens/internal/logger"
	"github.com/711pranjal/Egnyte-TrustLens/internal/store"
)

type contextKey string

const chatIDKey contextKey = "chatID"

type APIHandler struct {
	chatService *core.ChatService
	responder   *core.ResponseService
	corpus      *corpus.Corpus
	tokens      *auth.TokenIssuer
	log         logger.ILogger
}

func NewAPIHandler(cs *core.ChatService, rs *core.ResponseService, c *corpus.Corpus, tokens *auth.TokenIssuer, log logger.ILogger) *APIHandler {
	return &APIHandler{chatService: cs, responder: rs, corpus: c, tokens: tokens, log: log}
}

func chatIDFrom(r *http.Request) string {
	id, _ := r.Context().Value(chatIDKey).(string)
	return id
}

// ChatAuthMiddleware admits requests carrying a valid chat session token and
// puts the chat ID in the request context.
func (h *APIHandler) ChatAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header is required", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		chatID, err := h.tokens.Validate(tokenString)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), chatIDKey, chatID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"files":  h.corpus.Len(),
	})
}

func (h *APIHandler) CorpusHandler(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]interface{}{
		"root":  h.corpus.Root(),
		"files": h.corpus.Len(),
	})
}

// QueryHandler answers a single question without a chat.
func (h *APIHandler) QueryHandler(w http.ResponseWriter, r *http.Request) {
	var req core.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		http.Error(w, "Query cannot be empty", http.StatusBadRequest)
		return
	}
	if req.Scope == "" {
		req.Scope = core.ScopeGlobal
	}
	if _, err := core.ParseScope(string(req.Scope)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	json.NewEncoder(w).Encode(h.responder.Generate(req))
}

type CreateChatResponse struct {
	Chat     *store.Chat    `json:"chat"`
	Token    string         `json:"token"`
	Messages []core.Message `json:"messages"`
}

func (h *APIHandler) CreateChatHandler(w http.ResponseWriter, r *http.Request) {
	chat, messages, err := h.chatService.CreateChat()
	if err != nil {
		h.log.Error("api", "failed to create chat", map[string]interface{}{"error": err.Error()})
		http.Error(w, "Failed to create chat", http.StatusInternalServerError)
		return
	}

	token, err := h.tokens.Issue(chat.ID)
	if err != nil {
		h.log.Error("api", "failed to issue token", map[string]interface{}{"chat_id": chat.ID, "error": err.Error()})
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateChatResponse{Chat: chat, Token: token, Messages: messages})
}

type GetChatDetailsResponse struct {
	Chat     *store.Chat       `json:"chat"`
	Context  core.QueryContext `json:"context"`
	Messages []core.Message    `json:"messages"`
}

func (h *APIHandler) GetChatDetailsHandler(w http.ResponseWriter, r *http.Request) {
	chatID := chatIDFrom(r)

	chat, messages, err := h.chatService.GetChatDetails(chatID)
	if err != nil {
		h.writeServiceError(w, "Failed to get chat details", chatID, err)
		return
	}
	qc, err := h.chatService.Context(chatID)
	if err != nil {
		h.writeServiceError(w, "Failed to get chat context", chatID, err)
		return
	}

	json.NewEncoder(w).Encode(GetChatDetailsResponse{Chat: chat, Context: qc, Messages: messages})
}

func (h *APIHandler) GetContextHandler(w http.ResponseWriter, r *http.Request) {
	chatID := chatIDFrom(r)

	qc, err := h.chatService.Context(chatID)
	if err != nil {
		h.writeServiceError(w, "Failed to get chat context", chatID, err)
		return
	}
	json.NewEncoder(w).Encode(qc)
}

type UpdateContextRequest struct {
	Scope string `json:"scope"`
}

func (h *APIHandler) UpdateContextHandler(w http.ResponseWriter, r *http.Request) {
	chatID := chatIDFrom(r)

	var req UpdateContextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	scope, err := core.ParseScope(req.Scope)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.updateContext(w, chatID, func(qc *core.QueryContext) { qc.SetScope(scope) })
}

func (h *APIHandler) ToggleFolderHandler(w http.ResponseWriter, r *http.Request) {
	folderID := chi.URLParam(r, "folderID")
	if _, ok := h.corpus.Folder(folderID); !ok {
		http.Error(w, "Folder not found", http.StatusNotFound)
		return
	}
	h.updateContext(w, chatIDFrom(r), func(qc *core.QueryContext) { qc.ToggleFolder(folderID) })
}

func (h *APIHandler) ToggleFileHandler(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileID")
	if _, ok := h.corpus.File(fileID); !ok {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	h.updateContext(w, chatIDFrom(r), func(qc *core.QueryContext) { qc.ToggleFile(fileID) })
}

func (h *APIHandler) ClearSelectionHandler(w http.ResponseWriter, r *http.Request) {
	h.updateContext(w, chatIDFrom(r), func(qc *core.QueryContext) { qc.ClearSelection() })
}

func (h *APIHandler) updateContext(w http.ResponseWriter, chatID string, mutate func(*core.QueryContext)) {
	qc, err := h.chatService.UpdateContext(chatID, mutate)
	if err != nil {
		h.writeServiceError(w, "Failed to update chat context", chatID, err)
		return
	}
	json.NewEncoder(w).Encode(qc)
}

type PostMessageRequest struct {
	Content string `json:"content"`
}

type PostMessageResponse struct {
	UserMessage      *core.Message `json:"userMessage"`
	AssistantMessage *core.Message `json:"assistantMessage"`
}

func (h *APIHandler) PostMessageHandler(w http.ResponseWriter, r *http.Request) {
	chatID := chatIDFrom(r)

	var req PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	userMsg, answer, err := h.chatService.SubmitQuery(chatID, req.Content)
	if err != nil {
		if errors.Is(err, core.ErrEmptyQuery) {
			http.Error(w, "Message content cannot be empty", http.StatusBadRequest)
			return
		}
		h.writeServiceError(w, "Failed to post message", chatID, err)
		return
	}
	json.NewEncoder(w).Encode(PostMessageResponse{UserMessage: userMsg, AssistantMessage: answer})
}

type FeedbackRequest struct {
	Negative bool `json:"negative"`
}

func (h *APIHandler) MessageFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	chatID := chatIDFrom(r)
	messageID := chi.URLParam(r, "messageID")

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.chatService.SetMessageFeedback(chatID, messageID, req.Negative); err != nil {
		h.writeServiceError(w, "Failed to set feedback", chatID, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) writeServiceError(w http.ResponseWriter, message, chatID string, err error) {
	switch {
	case errors.Is(err, store.ErrChatNotFound):
		http.Error(w, "Chat not found", http.StatusNotFound)
	case errors.Is(err, store.ErrMessageNotFound):
		http.Error(w, "Message not found", http.StatusNotFound)
	default:
		h.log.Error("api", message, map[string]interface{}{"chat_id": chatID, "error": err.Error()})
		http.Error(w, message, http.StatusInternalServerError)
	}
}
