// Package confidence turns relevance-count aggregates into a confidence
// verdict. Rules are evaluated in a fixed priority order and the first match
// wins; the rules overlap, so the order is part of the contract.
package confidence

import "fmt"

// Level is the overall verdict on how trustworthy an answer is.
type Level string

const (
	Low    Level = "low"
	Medium Level = "medium"
	High   Level = "high"
)

// Levels lists every level from weakest to strongest.
var Levels = []Level{Low, Medium, High}

// Rank orders levels: low < medium < high. Unknown levels rank below low.
func (l Level) Rank() int {
	switch l {
	case Low:
		return 0
	case Medium:
		return 1
	case High:
		return 2
	}
	return -1
}

func (l Level) Valid() bool { return l.Rank() >= 0 }

func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown confidence level %q", s)
	}
	return l, nil
}

const (
	ReasonNoFiles          = "No files in search scope"
	ReasonNoRelevant       = "No relevant content found"
	ReasonMultipleSources  = "Multiple authoritative sources"
	ReasonCorroborated     = "Primary source with corroboration"
	ReasonSingleSource     = "Single source only"
	ReasonPartialMultiple  = "Partial information from multiple files"
	ReasonLimitedContent   = "Limited relevant content"
	ReasonInsufficientInfo = "Insufficient information"
)

// Metrics are the funnel counts the engine decides on.
type Metrics struct {
	FilesInScope         int `json:"filesInScope"`
	FilesWithAccess      int `json:"filesWithAccess"`
	FilesReviewed        int `json:"filesReviewed"`
	HighRelevanceCount   int `json:"highRelevanceCount"`
	MediumRelevanceCount int `json:"mediumRelevanceCount"`
}

// TotalRelevant is the number of high plus medium relevance files.
func (m Metrics) TotalRelevant() int {
	return m.HighRelevanceCount + m.MediumRelevanceCount
}

type Result struct {
	Level       Level    `json:"level"`
	Reason      string   `json:"reason"`
	Details     []string `json:"details"`
	Explanation string   `json:"explanation"`
}

type rule struct {
	match   func(m Metrics) bool
	level   Level
	reason  string
	details func(m Metrics) []string
}

var rules = []rule{
	{
		match:  func(m Metrics) bool { return m.FilesInScope == 0 },
		level:  Low,
		reason: ReasonNoFiles,
		details: func(Metrics) []string {
			return []string{"Select files or change scope to search documents"}
		},
	},
	{
		match:  func(m Metrics) bool { return m.TotalRelevant() == 0 },
		level:  Low,
		reason: ReasonNoRelevant,
		details: func(m Metrics) []string {
			return []string{
				fmt.Sprintf("Searched %d files", m.FilesReviewed),
				"None contained matching information",
				"Try a different scope or rephrase the question",
			}
		},
	},
	{
		match:  func(m Metrics) bool { return m.HighRelevanceCount >= 2 },
		level:  High,
		reason: ReasonMultipleSources,
		details: func(m Metrics) []string {
			return []string{
				fmt.Sprintf("Found %d files with direct answers", m.HighRelevanceCount),
				"Information is consistent across sources",
				"High reliability for this answer",
			}
		},
	},
	{
		match:  func(m Metrics) bool { return m.HighRelevanceCount == 1 && m.MediumRelevanceCount >= 1 },
		level:  High,
		reason: ReasonCorroborated,
		details: func(m Metrics) []string {
			return []string{
				"1 file with direct answer",
				fmt.Sprintf("%d supporting file(s)", m.MediumRelevanceCount),
				"Answer is well-supported",
			}
		},
	},
	{
		match:  func(m Metrics) bool { return m.HighRelevanceCount == 1 && m.MediumRelevanceCount == 0 },
		level:  Medium,
		reason: ReasonSingleSource,
		details: func(Metrics) []string {
			return []string{
				"1 file with relevant information",
				"No additional sources to verify",
				"Consider searching more files for confirmation",
			}
		},
	},
	{
		match:  func(m Metrics) bool { return m.HighRelevanceCount == 0 && m.MediumRelevanceCount >= 2 },
		level:  Medium,
		reason: ReasonPartialMultiple,
		details: func(m Metrics) []string {
			return []string{
				fmt.Sprintf("%d files with related content", m.MediumRelevanceCount),
				"No single authoritative source",
				"Answer synthesized from partial matches",
			}
		},
	},
	{
		match:  func(m Metrics) bool { return m.HighRelevanceCount == 0 && m.MediumRelevanceCount == 1 },
		level:  Medium,
		reason: ReasonLimitedContent,
		details: func(Metrics) []string {
			return []string{
				"1 file with partial information",
				"May not fully answer the question",
				"Consider expanding search scope",
			}
		},
	},
}

// fallback is only reached for inputs outside the non-negative domain.
var fallback = rule{
	level:  Low,
	reason: ReasonInsufficientInfo,
	details: func(Metrics) []string {
		return []string{"Could not find enough relevant content"}
	},
}

// Compute applies the rule table to m and synthesizes the explanation. It is
// a pure function of m.
func Compute(m Metrics) Result {
	selected := fallback
	for _, r := range rules {
		if r.match(m) {
			selected = r
			break
		}
	}

	return Result{
		Level:       selected.level,
		Reason:      selected.reason,
		Details:     selected.details(m),
		Explanation: Explain(selected.level, m),
	}
}

// FromFileCounts is the short form of Compute for callers that only know the
// relevance counts. For any scope with at least one file it agrees with
// Compute on the level.
func FromFileCounts(highCount, mediumCount int) Level {
	switch {
	case highCount >= 2:
		return High
	case highCount == 1 && mediumCount >= 1:
		return High
	case highCount == 1:
		return Medium
	case mediumCount >= 2:
		return Medium
	case mediumCount == 1:
		return Medium
	}
	return Low
}
