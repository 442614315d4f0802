package core

import (
	"fmt"
	"strings"

	"github.com/hashicorp/golang-lru/v2"

	"github.com/711pranjal/Egnyte-TrustLens/internal/corpus"
)

// Scope selects which files a query is answered against.
type Scope string

const (
	ScopeGlobal   Scope = "global"
	ScopeFolder   Scope = "folder"
	ScopeSelected Scope = "selected"
)

const (
	labelAllDocuments   = "All documents"
	labelSelectedFolder = "Selected folder"
	labelNoFiles        = "No files selected"
)

func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeGlobal, ScopeFolder, ScopeSelected:
		return Scope(s), nil
	}
	return "", fmt.Errorf("unknown scope %q", s)
}

// ResolvedScope is the concrete, ordered file list a query runs against.
type ResolvedScope struct {
	Files []*corpus.FileNode
	Label string
}

func (r ResolvedScope) Empty() bool { return len(r.Files) == 0 }

func (r ResolvedScope) contains(id string) bool {
	for _, f := range r.Files {
		if f.ID == id {
			return true
		}
	}
	return false
}

// ScopeResolver maps a scope and its context onto corpus files. Resolution is
// a pure function of its inputs and the immutable corpus, so results can be
// memoized.
type ScopeResolver struct {
	corpus *corpus.Corpus
	cache  *lru.Cache[string, ResolvedScope]
}

// NewScopeResolver builds a resolver over c. cacheSize <= 0 disables the
// resolution cache.
func NewScopeResolver(c *corpus.Corpus, cacheSize int) (*ScopeResolver, error) {
	r := &ScopeResolver{corpus: c}
	if cacheSize > 0 {
		cache, err := lru.New[string, ResolvedScope](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create scope cache: %w", err)
		}
		r.cache = cache
	}
	return r, nil
}

// Resolve returns the files in scope and a display label. An unresolvable
// folder or an empty selection yields an empty result, never an error.
func (r *ScopeResolver) Resolve(scope Scope, currentFolder string, selectedFileIDs []string) ResolvedScope {
	if r.cache == nil {
		return r.resolve(scope, currentFolder, selectedFileIDs)
	}

	key := cacheKey(scope, currentFolder, selectedFileIDs)
	if hit, ok := r.cache.Get(key); ok {
		return hit.clone()
	}
	resolved := r.resolve(scope, currentFolder, selectedFileIDs)
	r.cache.Add(key, resolved)
	return resolved.clone()
}

func (r *ScopeResolver) resolve(scope Scope, currentFolder string, selectedFileIDs []string) ResolvedScope {
	switch {
	case scope == ScopeGlobal:
		return ResolvedScope{Files: r.corpus.Files(), Label: labelAllDocuments}

	case scope == ScopeFolder && currentFolder != "":
		label := labelSelectedFolder
		if folder, ok := r.corpus.Folder(currentFolder); ok {
			label = folder.Name + " folder"
		}
		return ResolvedScope{Files: r.corpus.FilesInFolder(currentFolder), Label: label}

	case scope == ScopeSelected && len(selectedFileIDs) > 0:
		selected := make(map[string]struct{}, len(selectedFileIDs))
		for _, id := range selectedFileIDs {
			selected[id] = struct{}{}
		}
		var files []*corpus.FileNode
		for _, f := range r.corpus.Files() {
			if _, ok := selected[f.ID]; ok {
				files = append(files, f)
			}
		}
		return ResolvedScope{Files: files, Label: selectedLabel(len(selectedFileIDs))}
	}

	return ResolvedScope{Label: labelNoFiles}
}

func selectedLabel(n int) string {
	if n == 1 {
		return "1 selected file"
	}
	return fmt.Sprintf("%d selected files", n)
}

func (r ResolvedScope) clone() ResolvedScope {
	if r.Files == nil {
		return r
	}
	files := make([]*corpus.FileNode, len(r.Files))
	copy(files, r.Files)
	return ResolvedScope{Files: files, Label: r.Label}
}

func cacheKey(scope Scope, currentFolder string, selectedFileIDs []string) string {
	var b strings.Builder
	b.WriteString(string(scope))
	b.WriteByte(0)
	b.WriteString(currentFolder)
	for _, id := range selectedFileIDs {
		b.WriteByte(0)
		b.WriteString(id)
	}
	return b.String()
}
