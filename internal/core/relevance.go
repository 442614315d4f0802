package core

import (
	"sort"

	"github.com/711pranjal/Egnyte-TrustLens/internal/corpus"
)

// SourceRelevance is how a cited source is labelled to the reader.
type SourceRelevance string

const (
	SourceHigh    SourceRelevance = "high"
	SourcePartial SourceRelevance = "partial"
	SourceNone    SourceRelevance = "none"
)

// ClassifyForQuestion grades a file against a curated question. The second
// result is false when the file is not relevant to the question at all.
func ClassifyForQuestion(q *SampleQuestion, f *corpus.FileNode) (SourceRelevance, bool) {
	switch {
	case q.IsHigh(f.ID):
		return SourceHigh, true
	case q.IsRelevant(f.ID):
		return SourcePartial, true
	}
	return "", false
}

// ClassifyRelevance grades a file against the query tags using its relevance
// annotations: any high wins, then any medium, else none. Low annotations
// count as none.
func ClassifyRelevance(f *corpus.FileNode, queryTags []corpus.Tag) corpus.RelevanceLevel {
	sawMedium := false
	for _, tag := range queryTags {
		switch f.RelevanceFor(tag) {
		case corpus.RelevanceHigh:
			return corpus.RelevanceHigh
		case corpus.RelevanceMedium:
			sawMedium = true
		}
	}
	if sawMedium {
		return corpus.RelevanceMedium
	}
	return corpus.RelevanceNone
}

type scoredFile struct {
	file  *corpus.FileNode
	level corpus.RelevanceLevel
}

// candidates applies the tag gate: only files whose content tags intersect
// the query tags are graded.
func candidates(files []*corpus.FileNode, queryTags []corpus.Tag) []scoredFile {
	if len(queryTags) == 0 {
		return nil
	}
	var out []scoredFile
	for _, f := range files {
		if f.HasAnyTag(queryTags) {
			out = append(out, scoredFile{file: f, level: ClassifyRelevance(f, queryTags)})
		}
	}
	return out
}

var relevanceOrder = map[corpus.RelevanceLevel]int{
	corpus.RelevanceHigh:   0,
	corpus.RelevanceMedium: 1,
	corpus.RelevanceLow:    2,
	corpus.RelevanceNone:   3,
}

func sortByRelevance(files []scoredFile) {
	sort.SliceStable(files, func(i, j int) bool {
		return relevanceOrder[files[i].level] < relevanceOrder[files[j].level]
	})
}
