package core

import (
	"time"

	"github.com/google/uuid"

	"github.com/711pranjal/Egnyte-TrustLens/internal/confidence"
	"github.com/711pranjal/Egnyte-TrustLens/internal/corpus"
)

const (
	// Share of in-scope files treated as unreadable, in percent. The curated
	// and generic paths use different values.
	sampleAccessHaircutPct  = 5
	genericAccessHaircutPct = 10

	sampleReviewFloor  = 5
	genericReviewExtra = 3

	MaxGenericSources = 4
)

// QueryRequest is everything the engine needs to answer one question.
type QueryRequest struct {
	Query           string   `json:"query"`
	Scope           Scope    `json:"scope"`
	CurrentFolder   string   `json:"currentFolder"`
	SelectedFileIDs []string `json:"selectedFileIds"`
}

type Clock func() time.Time

type IDGenerator func() string

type Option func(*ResponseService)

func WithClock(c Clock) Option { return func(s *ResponseService) { s.now = c } }

func WithIDGenerator(g IDGenerator) Option { return func(s *ResponseService) { s.newID = g } }

// ResponseService assembles assistant responses. It holds no mutable state,
// so one instance can serve concurrent requests.
type ResponseService struct {
	corpus    *corpus.Corpus
	resolver  *ScopeResolver
	knowledge *Knowledge
	now       Clock
	newID     IDGenerator
}

func NewResponseService(c *corpus.Corpus, resolver *ScopeResolver, k *Knowledge, opts ...Option) *ResponseService {
	s := &ResponseService{
		corpus:    c,
		resolver:  resolver,
		knowledge: k,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate answers req. It never fails: unknown folders, unmatched queries and
// empty scopes all degrade to a well-formed low-confidence response.
func (s *ResponseService) Generate(req QueryRequest) *Message {
	resolved := s.resolver.Resolve(req.Scope, req.CurrentFolder, req.SelectedFileIDs)
	if resolved.Empty() {
		return s.emptyScopeResponse(req.Scope, resolved.Label)
	}

	if q := s.knowledge.MatchQuestion(req.Query); q != nil {
		return s.sampleResponse(q, req, resolved)
	}
	return s.genericResponse(req, resolved)
}

func (s *ResponseService) newAssistantMessage() *Message {
	return &Message{ID: s.newID(), Type: MessageAssistant, Timestamp: s.now()}
}

func (s *ResponseService) emptyScopeResponse(scope Scope, label string) *Message {
	var answer, suggestion string
	switch scope {
	case ScopeSelected:
		answer = "I can't search any files because **none are selected**.\n\n" +
			"To get an answer, please:\n" +
			"• **Check the boxes** next to files in the sidebar, or\n" +
			"• **Switch to \"All Documents\"** scope to search everything"
		suggestion = "Select files from the sidebar first"
	case ScopeFolder:
		answer = "The current folder appears to be empty or not accessible.\n\n" +
			"Please:\n" +
			"• **Select a different folder** from the sidebar, or\n" +
			"• **Switch to \"All Documents\"** scope"
		suggestion = "Select a folder with files"
	default:
		answer = "No files are available to search.\n\n" +
			"Please check your file selection or scope settings."
		suggestion = "No files available"
	}

	level := confidence.Low
	msg := s.newAssistantMessage()
	msg.Answer = answer
	msg.Confidence = &level
	msg.ConfidenceReason = confidence.ReasonNoFiles
	msg.Scope = label
	msg.QueryTopic = "empty scope"
	msg.Metrics = &ResponseMetrics{}
	msg.Explanation = "Cannot provide an answer because there are no files in the current search scope."
	msg.Limitations = []string{
		"No files selected or accessible",
		suggestion,
		`💡 Try switching to "All Documents" scope`,
	}
	msg.Sources = noSources("No files to search")
	return msg
}

func (s *ResponseService) sampleResponse(q *SampleQuestion, req QueryRequest, resolved ResolvedScope) *Message {
	var sources []Source
	var highCount, mediumCount int
	for _, f := range resolved.Files {
		relevance, ok := ClassifyForQuestion(q, f)
		if !ok {
			continue
		}
		if q.IsHigh(f.ID) {
			highCount++
		}
		if q.IsMedium(f.ID) {
			mediumCount++
		}
		sources = append(sources, Source{ID: f.ID, Name: f.Name, Relevance: relevance, Summary: f.Content.Summary})
	}

	total := len(resolved.Files)
	withAccess := total - total*sampleAccessHaircutPct/100
	reviewed := min(withAccess, max(len(sources), min(sampleReviewFloor, total)))

	result := confidence.Compute(confidence.Metrics{
		FilesInScope:         total,
		FilesWithAccess:      withAccess,
		FilesReviewed:        reviewed,
		HighRelevanceCount:   highCount,
		MediumRelevanceCount: mediumCount,
	})
	answer := q.Answers.For(result.Level)

	msg := s.newAssistantMessage()
	msg.Answer = answer.Text
	msg.AnswerExplanation = answer.Explanation
	msg.Confidence = &result.Level
	msg.ConfidenceReason = result.Reason
	msg.Scope = resolved.Label
	msg.QueryTopic = q.Topic()
	msg.Metrics = &ResponseMetrics{
		FilesInScope:         total,
		FilesWithAccess:      withAccess,
		FilesReviewed:        reviewed,
		FilesWithMatches:     len(sources),
		HighRelevanceCount:   highCount,
		MediumRelevanceCount: mediumCount,
	}
	msg.Explanation = result.Explanation
	msg.Limitations = s.sampleLimitations(q, req, resolved, result.Details)
	msg.Sources = sources
	if len(msg.Sources) == 0 {
		msg.Sources = noSources("No matching files in scope")
	}
	return msg
}

func (s *ResponseService) genericResponse(req QueryRequest, resolved ResolvedScope) *Message {
	pattern := s.knowledge.MatchPattern(req.Query)
	topic, label := DefaultTopic, "general query"
	var queryTags []corpus.Tag
	if pattern != nil {
		topic, label = string(pattern.Topic), pattern.Label
		queryTags = pattern.Tags
	}

	scored := candidates(resolved.Files, queryTags)
	var highCount, mediumCount int
	for _, sf := range scored {
		switch sf.level {
		case corpus.RelevanceHigh:
			highCount++
		case corpus.RelevanceMedium:
			mediumCount++
		}
	}

	total := len(resolved.Files)
	withAccess := total - total*genericAccessHaircutPct/100
	reviewed := min(withAccess, len(scored)+min(genericReviewExtra, total))

	result := confidence.Compute(confidence.Metrics{
		FilesInScope:         total,
		FilesWithAccess:      withAccess,
		FilesReviewed:        reviewed,
		HighRelevanceCount:   highCount,
		MediumRelevanceCount: mediumCount,
	})
	answer := s.knowledge.Template(topic).For(result.Level)

	msg := s.newAssistantMessage()
	msg.Answer = answer.Text
	msg.AnswerExplanation = answer.Explanation
	msg.Confidence = &result.Level
	msg.ConfidenceReason = result.Reason
	msg.Scope = resolved.Label
	msg.QueryTopic = label
	msg.Metrics = &ResponseMetrics{
		FilesInScope:         total,
		FilesWithAccess:      withAccess,
		FilesReviewed:        reviewed,
		FilesWithMatches:     len(scored),
		HighRelevanceCount:   highCount,
		MediumRelevanceCount: mediumCount,
	}
	msg.Explanation = result.Explanation
	msg.Limitations = s.genericLimitations(req, resolved, result.Level, topic)
	msg.Sources = genericSources(scored)
	if len(msg.Sources) == 0 {
		msg.Sources = noSources("No matching files found")
	}
	return msg
}

// genericSources cites graded files, strongest first. Files graded none are
// counted as reviewed but never cited.
func genericSources(scored []scoredFile) []Source {
	ranked := make([]scoredFile, 0, len(scored))
	for _, sf := range scored {
		if sf.level != corpus.RelevanceNone {
			ranked = append(ranked, sf)
		}
	}
	sortByRelevance(ranked)
	if len(ranked) > MaxGenericSources {
		ranked = ranked[:MaxGenericSources]
	}

	sources := make([]Source, 0, len(ranked))
	for _, sf := range ranked {
		relevance := SourcePartial
		if sf.level == corpus.RelevanceHigh {
			relevance = SourceHigh
		}
		sources = append(sources, Source{ID: sf.file.ID, Name: sf.file.Name, Relevance: relevance, Summary: sf.file.Content.Summary})
	}
	return sources
}
