package core

import (
	"fmt"
	"strings"

	"github.com/711pranjal/Egnyte-TrustLens/internal/confidence"
	"github.com/711pranjal/Egnyte-TrustLens/internal/corpus"
)

// DefaultTopic keys the answer template used when no query pattern matches.
const DefaultTopic = "default"

// Answer is one hand-written answer variant.
type Answer struct {
	Text        string
	Explanation string
}

// AnswerSet holds one variant per confidence level. Having a field per level
// keeps a missing variant visible to Validate instead of a silent map miss.
type AnswerSet struct {
	High   Answer
	Medium Answer
	Low    Answer
}

// For picks the variant for level. Anything that is not high or medium gets
// the low variant.
func (a AnswerSet) For(level confidence.Level) Answer {
	switch level {
	case confidence.High:
		return a.High
	case confidence.Medium:
		return a.Medium
	}
	return a.Low
}

func (a AnswerSet) validate() error {
	for _, level := range confidence.Levels {
		if a.For(level).Text == "" {
			return fmt.Errorf("missing %s answer", level)
		}
	}
	return nil
}

// SampleQuestion is a curated question with hand-crafted answers. It takes
// precedence over generic topic matching.
type SampleQuestion struct {
	ID string
	// Patterns are case-insensitive substring triggers.
	Patterns []string
	// RequiredTags must be hinted at by the query through one of the tag's
	// keywords, unless empty.
	RequiredTags       []corpus.Tag
	Answers            AnswerSet
	RelevantFileIDs    []string
	HighRelevanceIDs   []string
	MediumRelevanceIDs []string
	// HomeFolder is where the relevant files live; SourcesLabel names them in
	// the folder hint.
	HomeFolder   string
	SourcesLabel string
}

// Topic is the label reported as the response's query topic.
func (q *SampleQuestion) Topic() string {
	return strings.Replace(q.ID, "_", " ", 1)
}

func (q *SampleQuestion) IsRelevant(fileID string) bool { return contains(q.RelevantFileIDs, fileID) }
func (q *SampleQuestion) IsHigh(fileID string) bool     { return contains(q.HighRelevanceIDs, fileID) }
func (q *SampleQuestion) IsMedium(fileID string) bool   { return contains(q.MediumRelevanceIDs, fileID) }

// QueryPattern maps query keywords onto content tags for generic questions.
type QueryPattern struct {
	Topic    corpus.Tag
	Label    string
	Keywords []string
	Tags     []corpus.Tag
}

// FolderHint says where content for a topic is normally filed.
type FolderHint struct {
	FolderID   string
	FolderName string
	Content    string
}

// Knowledge is the static rule set behind the copilot: curated questions,
// keyword patterns, answer templates and topic-to-folder hints. Slices are
// evaluated in declaration order, first match wins.
type Knowledge struct {
	SampleQuestions []SampleQuestion
	QueryPatterns   []QueryPattern
	AnswerTemplates map[string]AnswerSet
	TopicFolders    map[corpus.Tag]FolderHint
}

// Validate checks that every answer set is complete and the default
// template exists.
func (k *Knowledge) Validate() error {
	for _, q := range k.SampleQuestions {
		if len(q.Patterns) == 0 {
			return fmt.Errorf("sample question %q has no patterns", q.ID)
		}
		if err := q.Answers.validate(); err != nil {
			return fmt.Errorf("sample question %q: %w", q.ID, err)
		}
	}
	if _, ok := k.AnswerTemplates[DefaultTopic]; !ok {
		return fmt.Errorf("missing %q answer template", DefaultTopic)
	}
	for topic, set := range k.AnswerTemplates {
		if err := set.validate(); err != nil {
			return fmt.Errorf("answer template %q: %w", topic, err)
		}
	}
	return nil
}

// Template returns the answer set for topic, falling back to the default.
func (k *Knowledge) Template(topic string) AnswerSet {
	if set, ok := k.AnswerTemplates[topic]; ok {
		return set
	}
	return k.AnswerTemplates[DefaultTopic]
}

// KeywordsFor returns the keywords declared for tag's pattern, or the tag
// name itself when no pattern covers it.
func (k *Knowledge) KeywordsFor(tag corpus.Tag) []string {
	for _, p := range k.QueryPatterns {
		if p.Topic == tag {
			return p.Keywords
		}
	}
	return []string{string(tag)}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
