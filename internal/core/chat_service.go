package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/711pranjal/Egnyte-TrustLens/internal/logger"
	"github.com/711pranjal/Egnyte-TrustLens/internal/store"
)

var ErrEmptyQuery = errors.New("query is empty")

const transcriptPageSize = 100

// TranscriptStore persists chats and their messages.
type TranscriptStore interface {
	CreateChat() (*store.Chat, error)
	GetChatByID(chatID string) (*store.Chat, error)
	CreateMessages(msgs ...*store.Message) error
	GetMessagesByChatID(chatID string, limit int, offset int) ([]store.Message, error)
	UpdateMessageFeedback(chatID, messageID string, negativeFeedback bool) error
}

// ContextStore holds each chat's live query context.
type ContextStore interface {
	Save(chatID string, qc QueryContext)
	Get(chatID string) (QueryContext, bool)
	Delete(chatID string)
}

// ChatService runs conversations: it keeps the transcript, tracks the search
// context and asks the response engine for answers.
type ChatService struct {
	transcripts TranscriptStore
	contexts    ContextStore
	responder   *ResponseService
	log         logger.ILogger
	newID       IDGenerator
	pageSize    int

	// contextMu serializes read-modify-write cycles on query contexts.
	contextMu sync.Mutex
}

func NewChatService(transcripts TranscriptStore, contexts ContextStore, responder *ResponseService, log logger.ILogger) *ChatService {
	return &ChatService{
		transcripts: transcripts,
		contexts:    contexts,
		responder:   responder,
		log:         log,
		newID:       uuid.NewString,
		pageSize:    transcriptPageSize,
	}
}

// CreateChat opens a chat with the default context and the welcome banner.
func (s *ChatService) CreateChat() (*store.Chat, []Message, error) {
	chat, err := s.transcripts.CreateChat()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create chat: %w", err)
	}

	welcome := WelcomeMessage(s.responder.now())
	if err := s.appendMessages(chat.ID, &welcome); err != nil {
		return nil, nil, err
	}
	s.contexts.Save(chat.ID, NewQueryContext())

	s.log.Info("chat", "chat created", map[string]interface{}{"chat_id": chat.ID})
	return chat, []Message{welcome}, nil
}

// GetChatDetails returns a chat and its whole transcript in order.
func (s *ChatService) GetChatDetails(chatID string) (*store.Chat, []Message, error) {
	chat, err := s.transcripts.GetChatByID(chatID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get chat: %w", err)
	}

	messages := []Message{}
	for offset := 0; ; offset += s.pageSize {
		rows, err := s.transcripts.GetMessagesByChatID(chatID, s.pageSize, offset)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get messages for chat: %w", err)
		}
		for _, row := range rows {
			var msg Message
			if err := json.Unmarshal(row.Payload, &msg); err != nil {
				return nil, nil, fmt.Errorf("failed to decode message %s: %w", row.ID, err)
			}
			msg.NegativeFeedback = row.NegativeFeedback
			messages = append(messages, msg)
		}
		if len(rows) < s.pageSize {
			break
		}
	}
	return chat, messages, nil
}

// Context returns the chat's query context. An expired or unknown context
// is reset to the default.
func (s *ChatService) Context(chatID string) (QueryContext, error) {
	s.contextMu.Lock()
	defer s.contextMu.Unlock()
	return s.loadContext(chatID)
}

func (s *ChatService) loadContext(chatID string) (QueryContext, error) {
	if _, err := s.transcripts.GetChatByID(chatID); err != nil {
		return QueryContext{}, fmt.Errorf("failed to get chat: %w", err)
	}
	if qc, ok := s.contexts.Get(chatID); ok {
		return qc, nil
	}
	qc := NewQueryContext()
	s.contexts.Save(chatID, qc)
	return qc, nil
}

// UpdateContext applies mutate to the chat's context and stores the result.
func (s *ChatService) UpdateContext(chatID string, mutate func(*QueryContext)) (QueryContext, error) {
	s.contextMu.Lock()
	qc, err := s.loadContext(chatID)
	if err != nil {
		s.contextMu.Unlock()
		return QueryContext{}, err
	}
	mutate(&qc)
	s.contexts.Save(chatID, qc)
	s.contextMu.Unlock()

	s.log.Debug("chat", "context updated", map[string]interface{}{
		"chat_id":  chatID,
		"scope":    qc.Scope,
		"folder":   qc.CurrentFolder,
		"selected": len(qc.SelectedFileIDs),
	})
	return qc, nil
}

// SubmitQuery answers the user's question in the chat's current context and
// records the question and the answer together. Both messages are returned.
func (s *ChatService) SubmitQuery(chatID, content string) (*Message, *Message, error) {
	query := strings.TrimSpace(content)
	if query == "" {
		return nil, nil, ErrEmptyQuery
	}

	qc, err := s.Context(chatID)
	if err != nil {
		return nil, nil, err
	}

	userMsg := &Message{
		ID:        "user-" + s.newID(),
		Type:      MessageUser,
		Content:   query,
		Timestamp: s.responder.now(),
	}
	answer := s.responder.Generate(qc.Request(query))
	if err := s.appendMessages(chatID, userMsg, answer); err != nil {
		return nil, nil, err
	}

	s.log.Info("chat", "query answered", map[string]interface{}{
		"chat_id":    chatID,
		"scope":      qc.Scope,
		"topic":      answer.QueryTopic,
		"confidence": answer.Confidence,
		"reason":     answer.ConfidenceReason,
	})
	return userMsg, answer, nil
}

// SetMessageFeedback flags or unflags an assistant answer as unhelpful.
func (s *ChatService) SetMessageFeedback(chatID, messageID string, negative bool) error {
	if err := s.transcripts.UpdateMessageFeedback(chatID, messageID, negative); err != nil {
		return err
	}
	s.log.Info("chat", "feedback recorded", map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
		"negative":   negative,
	})
	return nil
}

// appendMessages stores msgs atomically.
func (s *ChatService) appendMessages(chatID string, msgs ...*Message) error {
	rows := make([]*store.Message, 0, len(msgs))
	for _, msg := range msgs {
		payload, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
		rows = append(rows, &store.Message{
			ID:        msg.ID,
			ChatID:    chatID,
			Sender:    string(msg.Type),
			Payload:   payload,
			Timestamp: msg.Timestamp,
		})
	}

	if err := s.transcripts.CreateMessages(rows...); err != nil {
		s.log.Error("chat", "failed to store messages", map[string]interface{}{
			"chat_id": chatID,
			"count":   len(rows),
			"error":   err.Error(),
		})
		return fmt.Errorf("failed to store messages: %w", err)
	}
	return nil
}
