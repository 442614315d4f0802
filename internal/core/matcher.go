package core

import "strings"

// MatchQuestion returns the first sample question whose trigger pattern
// appears in the query and whose required context is present, or nil.
func (k *Knowledge) MatchQuestion(query string) *SampleQuestion {
	q := strings.ToLower(query)

	for i := range k.SampleQuestions {
		question := &k.SampleQuestions[i]
		if !containsAny(q, question.Patterns) {
			continue
		}
		if len(question.RequiredTags) == 0 {
			return question
		}
		for _, tag := range question.RequiredTags {
			if containsAny(q, k.KeywordsFor(tag)) {
				return question
			}
		}
	}
	return nil
}

// MatchPattern returns the first query pattern with a keyword in the query,
// or nil when the default topic applies.
func (k *Knowledge) MatchPattern(query string) *QueryPattern {
	q := strings.ToLower(query)

	for i := range k.QueryPatterns {
		if containsAny(q, k.QueryPatterns[i].Keywords) {
			return &k.QueryPatterns[i]
		}
	}
	return nil
}

func containsAny(lowered string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(lowered, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
