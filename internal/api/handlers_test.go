package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/711pranjal/Egnyte-TrustLens/internal/auth"
	"github.com/711pranjal/Egnyte-TrustLens/internal/confidence"
	"github.com/711pranjal/Egnyte-TrustLens/internal/core"
	"github.com/711pranjal/Egnyte-TrustLens/internal/corpus"
	"github.com/711pranjal/Egnyte-TrustLens/internal/logger"
	"github.com/711pranjal/Egnyte-TrustLens/internal/session"
	"github.com/711pranjal/Egnyte-TrustLens/internal/store"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	c := corpus.Default()
	resolver, err := core.NewScopeResolver(c, 32)
	require.NoError(t, err)
	responder := core.NewResponseService(c, resolver, core.DefaultKnowledge())

	db, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logger.NewNopLogger()
	chats := core.NewChatService(db, session.NewContextRepository(time.Hour, time.Minute), responder, log)
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)

	return NewRouter(NewAPIHandler(chats, responder, c, tokens, log))
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createChat(t *testing.T, h http.Handler) CreateChatResponse {
	t.Helper()
	rec := doRequest(t, h, http.MethodPost, "/api/chats", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[CreateChatResponse](t, rec)
}

func TestHealthAndCorpus(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok","files":17}`, rec.Body.String())

	rec = doRequest(t, h, http.MethodGet, "/api/corpus", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]interface{}](t, rec)
	root := body["root"].(map[string]interface{})
	assert.Equal(t, "root", root["id"])
	assert.Len(t, root["children"], 3)
}

func TestQueryHandler(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/api/query", "", map[string]interface{}{
		"query": "What's our NDA confidentiality period?",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	msg := decode[core.Message](t, rec)
	require.NotNil(t, msg.Confidence)
	assert.Equal(t, confidence.High, *msg.Confidence)
	assert.Equal(t, "All documents", msg.Scope)

	rec = doRequest(t, h, http.MethodPost, "/api/query", "", map[string]interface{}{
		"query": "What is Sarah Chen's React experience?", "scope": "folder", "currentFolder": "hr",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, confidence.Low, *decode[core.Message](t, rec).Confidence)

	rec = doRequest(t, h, http.MethodPost, "/api/query", "", map[string]interface{}{"query": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/query", "", map[string]interface{}{"query": "pto", "scope": "galaxy"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatRoutesRequireToken(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/chat", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/chat", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	foreign, err := auth.NewTokenIssuer("other-secret", time.Hour).Issue("chat")
	require.NoError(t, err)
	rec = doRequest(t, h, http.MethodGet, "/api/chat", foreign, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChatConversationFlow(t *testing.T) {
	h := newTestRouter(t)
	created := createChat(t, h)
	require.Len(t, created.Messages, 1)
	assert.True(t, created.Messages[0].IsWelcome)
	token := created.Token

	rec := doRequest(t, h, http.MethodPost, "/api/chat/folders/hr/toggle", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	qc := decode[core.QueryContext](t, rec)
	assert.Equal(t, core.ScopeFolder, qc.Scope)
	assert.Equal(t, "hr", qc.CurrentFolder)

	rec = doRequest(t, h, http.MethodPost, "/api/chat/messages", token, PostMessageRequest{Content: "What's our PTO policy?"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	posted := decode[PostMessageResponse](t, rec)
	assert.Equal(t, "What's our PTO policy?", posted.UserMessage.Content)
	assert.Equal(t, "HR Policies folder", posted.AssistantMessage.Scope)
	assert.Equal(t, confidence.High, *posted.AssistantMessage.Confidence)

	rec = doRequest(t, h, http.MethodPost, "/api/chat/messages/"+posted.AssistantMessage.ID+"/feedback", token, FeedbackRequest{Negative: true})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/chat", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	details := decode[GetChatDetailsResponse](t, rec)
	assert.Equal(t, created.Chat.ID, details.Chat.ID)
	assert.Equal(t, "hr", details.Context.CurrentFolder)
	require.Len(t, details.Messages, 3)
	assert.True(t, details.Messages[2].NegativeFeedback)
}

func TestChatSelectionRoutes(t *testing.T) {
	h := newTestRouter(t)
	token := createChat(t, h).Token

	rec := doRequest(t, h, http.MethodPost, "/api/chat/files/legal-1/toggle", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	qc := decode[core.QueryContext](t, rec)
	assert.Equal(t, core.ScopeSelected, qc.Scope)
	assert.Equal(t, []string{"legal-1"}, qc.SelectedFileIDs)

	rec = doRequest(t, h, http.MethodPost, "/api/chat/files/ghost/toggle", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = doRequest(t, h, http.MethodPost, "/api/chat/folders/ghost/toggle", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodDelete, "/api/chat/selection", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	qc = decode[core.QueryContext](t, rec)
	assert.Empty(t, qc.SelectedFileIDs)
	assert.Equal(t, core.ScopeGlobal, qc.Scope)

	rec = doRequest(t, h, http.MethodPut, "/api/chat/context", token, UpdateContextRequest{Scope: "selected"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/chat/messages", token, PostMessageRequest{Content: "Can I work from home?"})
	require.Equal(t, http.StatusOK, rec.Code)
	answer := decode[PostMessageResponse](t, rec).AssistantMessage
	assert.Equal(t, confidence.ReasonNoFiles, answer.ConfidenceReason)

	rec = doRequest(t, h, http.MethodGet, "/api/chat/context", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, core.ScopeSelected, decode[core.QueryContext](t, rec).Scope)
}

func TestChatValidationErrors(t *testing.T) {
	h := newTestRouter(t)
	token := createChat(t, h).Token

	rec := doRequest(t, h, http.MethodPut, "/api/chat/context", token, UpdateContextRequest{Scope: "everywhere"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/chat/messages", token, PostMessageRequest{Content: "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/chat/messages/welcome/feedback", token, FeedbackRequest{Negative: true})
	assert.Equal(t, http.StatusNoContent, rec.Code, "the welcome banner is an assistant message")

	rec = doRequest(t, h, http.MethodPost, "/api/chat/messages/nope/feedback", token, FeedbackRequest{Negative: true})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTokenForDeletedChat(t *testing.T) {
	h := newTestRouter(t)
	token, err := auth.NewTokenIssuer("test-secret", time.Hour).Issue("no-such-chat")
	require.NoError(t, err)

	rec := doRequest(t, h, http.MethodGet, "/api/chat", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
