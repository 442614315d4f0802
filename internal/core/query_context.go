package core

import "github.com/711pranjal/Egnyte-TrustLens/internal/corpus"

// QueryContext is a chat's current search context as driven by the sidebar:
// which scope is active, which folder is open and which files are ticked.
type QueryContext struct {
	Scope           Scope    `json:"scope"`
	PreviousScope   Scope    `json:"previousScope"`
	CurrentFolder   string   `json:"currentFolder"`
	SelectedFileIDs []string `json:"selectedFileIds"`
	ExpandedFolders []string `json:"expandedFolders"`
}

func NewQueryContext() QueryContext {
	return QueryContext{
		Scope:           ScopeGlobal,
		PreviousScope:   ScopeGlobal,
		CurrentFolder:   corpus.RootID,
		SelectedFileIDs: []string{},
		ExpandedFolders: []string{corpus.RootID},
	}
}

// Clone returns a deep copy.
func (c QueryContext) Clone() QueryContext {
	c.SelectedFileIDs = append([]string{}, c.SelectedFileIDs...)
	c.ExpandedFolders = append([]string{}, c.ExpandedFolders...)
	return c
}

// Request builds an engine request for query in this context.
func (c QueryContext) Request(query string) QueryRequest {
	return QueryRequest{
		Query:           query,
		Scope:           c.Scope,
		CurrentFolder:   c.CurrentFolder,
		SelectedFileIDs: append([]string{}, c.SelectedFileIDs...),
	}
}

// ToggleFolder expands or collapses a folder and makes it current. Opening
// any folder but the root switches to folder scope.
func (c *QueryContext) ToggleFolder(folderID string) {
	c.ExpandedFolders = toggle(c.ExpandedFolders, folderID)
	c.CurrentFolder = folderID

	if folderID != corpus.RootID {
		if c.Scope != ScopeSelected {
			c.PreviousScope = c.Scope
		}
		c.Scope = ScopeFolder
	}
}

// ToggleFile ticks or unticks a file. A non-empty selection switches to
// selected scope; clearing the last file reverts to the remembered scope.
func (c *QueryContext) ToggleFile(fileID string) {
	c.SelectedFileIDs = toggle(c.SelectedFileIDs, fileID)

	if len(c.SelectedFileIDs) > 0 {
		if c.Scope != ScopeSelected {
			c.PreviousScope = c.Scope
		}
		c.Scope = ScopeSelected
		return
	}
	c.Scope = c.PreviousScope
}

// SetScope applies a manual scope change. The selection is kept even when
// it is ignored by the new scope.
func (c *QueryContext) SetScope(scope Scope) {
	c.Scope = scope
	if scope != ScopeSelected {
		c.PreviousScope = scope
	}
}

func (c *QueryContext) ClearSelection() {
	c.SelectedFileIDs = []string{}
	c.Scope = c.PreviousScope
}

func toggle(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	return out
}
