package core

import (
	"time"

	"github.com/711pranjal/Egnyte-TrustLens/internal/confidence"
)

type MessageType string

const (
	MessageUser      MessageType = "user"
	MessageAssistant MessageType = "assistant"
)

// NoSourceID marks the placeholder source used when nothing was cited.
const NoSourceID = "none"

type Source struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Relevance SourceRelevance `json:"relevance"`
	Summary   string          `json:"summary"`
}

// ResponseMetrics is the provenance funnel shown with an answer.
type ResponseMetrics struct {
	FilesInScope         int `json:"filesInScope"`
	FilesWithAccess      int `json:"filesWithAccess"`
	FilesReviewed        int `json:"filesReviewed"`
	FilesWithMatches     int `json:"filesWithMatches"`
	HighRelevanceCount   int `json:"highRelevanceCount"`
	MediumRelevanceCount int `json:"mediumRelevanceCount"`
}

// Message is one transcript entry. User messages carry Content; assistant
// messages carry the answer and its confidence report. A nil Confidence
// means the message was never evaluated (the welcome banner) and no
// confidence UI should be shown.
type Message struct {
	ID                string            `json:"id"`
	Type              MessageType       `json:"type"`
	Content           string            `json:"content,omitempty"`
	Answer            string            `json:"answer,omitempty"`
	Confidence        *confidence.Level `json:"confidence"`
	ConfidenceReason  string            `json:"confidenceReason,omitempty"`
	Scope             string            `json:"scope,omitempty"`
	QueryTopic        string            `json:"queryTopic,omitempty"`
	Metrics           *ResponseMetrics  `json:"metrics,omitempty"`
	Explanation       string            `json:"explanation,omitempty"`
	AnswerExplanation string            `json:"answerExplanation,omitempty"`
	Limitations       []string          `json:"limitations"`
	Sources           []Source          `json:"sources"`
	IsWelcome         bool              `json:"isWelcome,omitempty"`
	NegativeFeedback  bool              `json:"negativeFeedback,omitempty"`
	Timestamp         time.Time         `json:"timestamp"`
}

// HasRealSources is false when the only source is the "none" placeholder.
func (m *Message) HasRealSources() bool {
	if len(m.Sources) == 1 && m.Sources[0].ID == NoSourceID {
		return false
	}
	return len(m.Sources) > 0
}

const welcomeText = "👋 Hi! I'm your Document Copilot. Ask me anything about your files.\n\n" +
	"**Try these sample questions:**\n" +
	"• What is Sarah Chen's React experience?\n" +
	"• Which documents mention React migration?\n" +
	"• Is there enough info to summarize frontend skills?\n\n" +
	"**Demo tip:** Change the search scope (Global → Folder → Selected Files) to see how confidence levels change based on which files are searched!"

// WelcomeMessage is the static banner every chat opens with.
func WelcomeMessage(now time.Time) Message {
	return Message{
		ID:        "welcome",
		Type:      MessageAssistant,
		Answer:    welcomeText,
		IsWelcome: true,
		Timestamp: now,
	}
}

func noSources(name string) []Source {
	return []Source{{ID: NoSourceID, Name: name, Relevance: SourceNone}}
}
