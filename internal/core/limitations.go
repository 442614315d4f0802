package core

import (
	"fmt"
	"strings"

	"github.com/711pranjal/Egnyte-TrustLens/internal/confidence"
	"github.com/711pranjal/Egnyte-TrustLens/internal/corpus"
)

const (
	limitSelectedOnly   = "Only selected files were searched"
	limitTryGlobal      = `💡 Try "All Documents" scope for better coverage`
	limitQueryMismatch  = "Query may not match available document content"
	limitMoreSources    = "Additional sources could improve confidence"
	limitMoreSelections = "Consider selecting more files for corroboration"

	maxSuggestedFiles = 2
)

func (s *ResponseService) folderLimit(folderID string) string {
	name := folderID
	if folder, ok := s.corpus.Folder(folderID); ok {
		name = folder.Name
	}
	return fmt.Sprintf("Search limited to \"%s\" folder only", name)
}

// sampleLimitations lists scope hints for a curated question, then the
// engine's rationale lines (all but the first) that no hint already covers.
func (s *ResponseService) sampleLimitations(q *SampleQuestion, req QueryRequest, resolved ResolvedScope, details []string) []string {
	var missingHigh []string
	for _, id := range q.HighRelevanceIDs {
		if !resolved.contains(id) {
			missingHigh = append(missingHigh, id)
		}
	}

	limitations := []string{}
	switch req.Scope {
	case ScopeFolder:
		limitations = append(limitations, s.folderLimit(req.CurrentFolder))
		if len(missingHigh) > 0 && q.HomeFolder != "" && req.CurrentFolder != q.HomeFolder {
			limitations = append(limitations,
				fmt.Sprintf("💡 %s are in the %s folder", q.SourcesLabel, s.corpus.FolderName(q.HomeFolder)))
		}
	case ScopeSelected:
		limitations = append(limitations, limitSelectedOnly)
		if len(missingHigh) > 0 {
			names := make([]string, 0, maxSuggestedFiles)
			for _, id := range missingHigh {
				if len(names) == maxSuggestedFiles {
					break
				}
				if f, ok := s.corpus.File(id); ok {
					names = append(names, f.Name)
				} else {
					names = append(names, id)
				}
			}
			limitations = append(limitations, "💡 Consider also selecting: "+strings.Join(names, ", "))
		}
	}

	if len(details) > 1 {
		for _, detail := range details[1:] {
			if !anyContains(limitations, detail) {
				limitations = append(limitations, detail)
			}
		}
	}
	return limitations
}

// genericLimitations suggests where a topic's content normally lives and adds
// advice for the confidence tier.
func (s *ResponseService) genericLimitations(req QueryRequest, resolved ResolvedScope, level confidence.Level, topic string) []string {
	hint, hasHint := s.knowledge.TopicFolders[corpus.Tag(topic)]

	limitations := []string{}
	switch req.Scope {
	case ScopeFolder:
		limitations = append(limitations, s.folderLimit(req.CurrentFolder))
		if hasHint && req.CurrentFolder != hint.FolderID {
			limitations = append(limitations, fmt.Sprintf("💡 %s are in the %s folder", capitalize(hint.Content), hint.FolderName))
		}
	case ScopeSelected:
		limitations = append(limitations, limitSelectedOnly)
		hasTopicFile := len(s.corpus.FilesByTag(corpus.Tag(topic), resolved.Files)) > 0
		switch {
		case !hasTopicFile && hasHint:
			limitations = append(limitations,
				fmt.Sprintf("💡 The selected files don't contain %s", hint.Content),
				fmt.Sprintf("Try selecting files from the %s folder", hint.FolderName))
		case len(resolved.Files) < 2:
			limitations = append(limitations, limitMoreSelections)
		}
	}

	switch level {
	case confidence.Low:
		if req.Scope != ScopeGlobal {
			limitations = append(limitations, limitTryGlobal)
		} else {
			limitations = append(limitations, limitQueryMismatch)
		}
	case confidence.Medium:
		limitations = append(limitations, limitMoreSources)
	}
	return limitations
}

func anyContains(lines []string, sub string) bool {
	for _, l := range lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
