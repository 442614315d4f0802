package core

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/711pranjal/Egnyte-TrustLens/internal/confidence"
	"github.com/711pranjal/Egnyte-TrustLens/internal/logger"
	"github.com/711pranjal/Egnyte-TrustLens/internal/store"
)

type memoryContexts struct {
	mu sync.Mutex
	m  map[string]QueryContext
}

func newMemoryContexts() *memoryContexts {
	return &memoryContexts{m: make(map[string]QueryContext)}
}

func (c *memoryContexts) Save(chatID string, qc QueryContext) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[chatID] = qc.Clone()
}

func (c *memoryContexts) Get(chatID string) (QueryContext, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	qc, ok := c.m[chatID]
	return qc.Clone(), ok
}

func (c *memoryContexts) Delete(chatID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, chatID)
}

func newTestChatService(t *testing.T) (*ChatService, *memoryContexts) {
	t.Helper()
	db, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	contexts := newMemoryContexts()
	s := NewChatService(db, contexts, newTestResponder(t), logger.NewNopLogger())
	s.newID = func() string { return "q" }
	return s, contexts
}

func TestChatService_CreateChat(t *testing.T) {
	s, contexts := newTestChatService(t)

	chat, messages, err := s.CreateChat()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].IsWelcome)
	assert.Nil(t, messages[0].Confidence)

	_, ok := contexts.Get(chat.ID)
	assert.True(t, ok)

	_, stored, err := s.GetChatDetails(chat.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "welcome", stored[0].ID)
	assert.Equal(t, messages[0].Answer, stored[0].Answer)
}

func TestChatService_SubmitQueryUsesChatContext(t *testing.T) {
	s, _ := newTestChatService(t)
	chat, _, err := s.CreateChat()
	require.NoError(t, err)

	_, err = s.UpdateContext(chat.ID, func(qc *QueryContext) { qc.ToggleFolder("hr") })
	require.NoError(t, err)

	userMsg, answer, err := s.SubmitQuery(chat.ID, "  What is Sarah Chen's React experience?  ")
	require.NoError(t, err)
	assert.Equal(t, "user-q", userMsg.ID)
	assert.Equal(t, "What is Sarah Chen's React experience?", userMsg.Content)
	assert.Equal(t, MessageUser, userMsg.Type)
	assert.Equal(t, confidence.Low, *answer.Confidence)
	assert.Equal(t, "HR Policies folder", answer.Scope)

	_, transcript, err := s.GetChatDetails(chat.ID)
	require.NoError(t, err)
	require.Len(t, transcript, 3)
	assert.Equal(t, []MessageType{MessageAssistant, MessageUser, MessageAssistant},
		[]MessageType{transcript[0].Type, transcript[1].Type, transcript[2].Type})
	assert.Equal(t, answer.ID, transcript[2].ID)
	assert.Equal(t, answer.Limitations, transcript[2].Limitations)
}

func TestChatService_SubmitQueryRejectsBlank(t *testing.T) {
	s, _ := newTestChatService(t)
	chat, _, err := s.CreateChat()
	require.NoError(t, err)

	_, _, err = s.SubmitQuery(chat.ID, " \n\t ")
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, transcript, err := s.GetChatDetails(chat.ID)
	require.NoError(t, err)
	assert.Len(t, transcript, 1)
}

func TestChatService_UnknownChat(t *testing.T) {
	s, _ := newTestChatService(t)

	_, _, err := s.SubmitQuery("missing", "hello")
	assert.ErrorIs(t, err, store.ErrChatNotFound)

	_, err = s.Context("missing")
	assert.ErrorIs(t, err, store.ErrChatNotFound)

	_, _, err = s.GetChatDetails("missing")
	assert.ErrorIs(t, err, store.ErrChatNotFound)
}

func TestChatService_ExpiredContextResets(t *testing.T) {
	s, contexts := newTestChatService(t)
	chat, _, err := s.CreateChat()
	require.NoError(t, err)

	_, err = s.UpdateContext(chat.ID, func(qc *QueryContext) { qc.ToggleFile("hr-1") })
	require.NoError(t, err)
	contexts.Delete(chat.ID)

	qc, err := s.Context(chat.ID)
	require.NoError(t, err)
	assert.Equal(t, NewQueryContext(), qc)
}

func TestChatService_SetMessageFeedback(t *testing.T) {
	s, _ := newTestChatService(t)
	chat, _, err := s.CreateChat()
	require.NoError(t, err)

	userMsg, answer, err := s.SubmitQuery(chat.ID, "Can I work from home?")
	require.NoError(t, err)

	require.NoError(t, s.SetMessageFeedback(chat.ID, answer.ID, true))
	assert.ErrorIs(t, s.SetMessageFeedback(chat.ID, userMsg.ID, true), store.ErrMessageNotFound)

	_, transcript, err := s.GetChatDetails(chat.ID)
	require.NoError(t, err)
	assert.True(t, transcript[2].NegativeFeedback)

	raw, err := json.Marshal(transcript[2])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"negativeFeedback":true`)
}

func TestChatService_ConcurrentToggles(t *testing.T) {
	s, _ := newTestChatService(t)
	chat, _, err := s.CreateChat()
	require.NoError(t, err)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.UpdateContext(chat.ID, func(qc *QueryContext) { qc.ToggleFile(fmt.Sprintf("file-%d", i)) })
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	qc, err := s.Context(chat.ID)
	require.NoError(t, err)
	assert.Len(t, qc.SelectedFileIDs, n)
	assert.Equal(t, ScopeSelected, qc.Scope)
}

func TestChatService_FailedSubmitLeavesNoHalfExchange(t *testing.T) {
	s, _ := newTestChatService(t)
	chat, _, err := s.CreateChat()
	require.NoError(t, err)

	_, _, err = s.SubmitQuery(chat.ID, "Can I work from home?")
	require.NoError(t, err)

	// The user message id repeats, so the second exchange cannot be stored.
	_, _, err = s.SubmitQuery(chat.ID, "What's our PTO policy?")
	require.Error(t, err)

	_, transcript, err := s.GetChatDetails(chat.ID)
	require.NoError(t, err)
	require.Len(t, transcript, 3)
	assert.Equal(t, "Can I work from home?", transcript[1].Content)
}

func TestChatService_GetChatDetailsReadsEveryPage(t *testing.T) {
	s, _ := newTestChatService(t)
	s.newID = sequentialIDs()
	s.pageSize = 2
	chat, _, err := s.CreateChat()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, _, err := s.SubmitQuery(chat.ID, fmt.Sprintf("question %d", i))
		require.NoError(t, err)
	}

	_, transcript, err := s.GetChatDetails(chat.ID)
	require.NoError(t, err)
	require.Len(t, transcript, 7)
	assert.Equal(t, "question 2", transcript[5].Content)
	assert.Equal(t, MessageAssistant, transcript[6].Type)
}

func TestChatService_StoredAnswerKeepsEmptyLimitations(t *testing.T) {
	s, _ := newTestChatService(t)
	chat, _, err := s.CreateChat()
	require.NoError(t, err)

	_, answer, err := s.SubmitQuery(chat.ID, "What's our NDA confidentiality period?")
	require.NoError(t, err)
	require.Empty(t, answer.Limitations)

	_, transcript, err := s.GetChatDetails(chat.ID)
	require.NoError(t, err)
	assert.NotNil(t, transcript[2].Limitations)
	assert.Empty(t, transcript[2].Limitations)
}
