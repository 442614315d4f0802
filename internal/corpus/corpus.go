// Package corpus holds the immutable document repository the copilot answers
// questions against: a tree of folders and files plus an id index built once
// at construction.
package corpus

import (
	"encoding/json"
	"fmt"
)

// Tag is a topic label used to gate file candidacy for a query.
type Tag string

const (
	TagReact        Tag = "react"
	TagPython       Tag = "python"
	TagExperience   Tag = "experience"
	TagEducation    Tag = "education"
	TagCompensation Tag = "compensation"
	TagNDA          Tag = "nda"
	TagRemote       Tag = "remote"
	TagPTO          Tag = "pto"
	TagBudget       Tag = "budget"
	TagInterview    Tag = "interview"
)

// RelevanceLevel grades how directly a file addresses a tag.
type RelevanceLevel string

const (
	RelevanceHigh   RelevanceLevel = "high"
	RelevanceMedium RelevanceLevel = "medium"
	RelevanceLow    RelevanceLevel = "low"
	RelevanceNone   RelevanceLevel = "none"
)

// RootID is the id of the corpus root folder.
const RootID = "root"

type MockContent struct {
	Summary   string                 `json:"summary"`
	Details   string                 `json:"details"`
	Relevance map[Tag]RelevanceLevel `json:"relevance"`
}

// Node is either a *FileNode or a *FolderNode.
type Node interface {
	NodeID() string
	NodeName() string
	isNode()
}

type FileNode struct {
	ID           string
	Name         string
	SizeLabel    string
	ModifiedDate string
	ContentTags  []Tag
	Content      MockContent
}

func (f *FileNode) NodeID() string   { return f.ID }
func (f *FileNode) NodeName() string { return f.Name }
func (*FileNode) isNode()            {}

// HasTag reports whether tag is one of the file's content tags.
func (f *FileNode) HasTag(tag Tag) bool {
	for _, t := range f.ContentTags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the file's content tags intersect tags.
func (f *FileNode) HasAnyTag(tags []Tag) bool {
	for _, t := range tags {
		if f.HasTag(t) {
			return true
		}
	}
	return false
}

// RelevanceFor returns the annotated relevance for tag. A missing annotation
// is none.
func (f *FileNode) RelevanceFor(tag Tag) RelevanceLevel {
	if level, ok := f.Content.Relevance[tag]; ok {
		return level
	}
	return RelevanceNone
}

func (f *FileNode) MarshalJSON() ([]byte, error) {
	tags := f.ContentTags
	if tags == nil {
		tags = []Tag{}
	}
	return json.Marshal(struct {
		ID          string      `json:"id"`
		Name        string      `json:"name"`
		Type        string      `json:"type"`
		Size        string      `json:"size"`
		Modified    string      `json:"modified"`
		ContentTags []Tag       `json:"contentTags"`
		MockContent MockContent `json:"mockContent"`
	}{f.ID, f.Name, "file", f.SizeLabel, f.ModifiedDate, tags, f.Content})
}

type FolderNode struct {
	ID       string
	Name     string
	Children []Node
}

func (f *FolderNode) NodeID() string   { return f.ID }
func (f *FolderNode) NodeName() string { return f.Name }
func (*FolderNode) isNode()            {}

// Files returns the folder's direct file children in declaration order.
func (f *FolderNode) Files() []*FileNode {
	var files []*FileNode
	for _, child := range f.Children {
		if file, ok := child.(*FileNode); ok {
			files = append(files, file)
		}
	}
	return files
}

func (f *FolderNode) MarshalJSON() ([]byte, error) {
	children := f.Children
	if children == nil {
		children = []Node{}
	}
	return json.Marshal(struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Type     string `json:"type"`
		Children []Node `json:"children"`
	}{f.ID, f.Name, "folder", children})
}

// Corpus is a read-only view over a folder tree. It is safe for concurrent
// use because nothing mutates it after New returns.
type Corpus struct {
	root  *FolderNode
	files []*FileNode
	byID  map[string]Node
}

// New indexes the tree rooted at root. Files and folders share one id space;
// a duplicate id is rejected.
func New(root *FolderNode) (*Corpus, error) {
	if root == nil {
		return nil, fmt.Errorf("corpus root is nil")
	}
	c := &Corpus{root: root, byID: make(map[string]Node)}
	if err := c.index(root); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew is like New but panics on an invalid tree. It is meant for
// compiled-in corpora.
func MustNew(root *FolderNode) *Corpus {
	c, err := New(root)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Corpus) index(node Node) error {
	id := node.NodeID()
	if _, exists := c.byID[id]; exists {
		return fmt.Errorf("duplicate corpus id %q", id)
	}
	c.byID[id] = node

	switch n := node.(type) {
	case *FileNode:
		c.files = append(c.files, n)
	case *FolderNode:
		for _, child := range n.Children {
			if err := c.index(child); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Corpus) Root() *FolderNode { return c.root }

// Files returns every file in depth-first order. The slice is a copy.
func (c *Corpus) Files() []*FileNode {
	out := make([]*FileNode, len(c.files))
	copy(out, c.files)
	return out
}

func (c *Corpus) Len() int { return len(c.files) }

func (c *Corpus) File(id string) (*FileNode, bool) {
	f, ok := c.byID[id].(*FileNode)
	return f, ok
}

func (c *Corpus) Folder(id string) (*FolderNode, bool) {
	f, ok := c.byID[id].(*FolderNode)
	return f, ok
}

// FolderName returns the folder's display name, or "Unknown".
func (c *Corpus) FolderName(id string) string {
	if f, ok := c.Folder(id); ok {
		return f.Name
	}
	return "Unknown"
}

// FilesInFolder returns the direct file children of the folder. An unknown id
// yields nil.
func (c *Corpus) FilesInFolder(id string) []*FileNode {
	folder, ok := c.Folder(id)
	if !ok {
		return nil
	}
	return folder.Files()
}

// FilesByTag filters files (all files when nil) down to those tagged with tag.
func (c *Corpus) FilesByTag(tag Tag, files []*FileNode) []*FileNode {
	if files == nil {
		files = c.files
	}
	var out []*FileNode
	for _, f := range files {
		if f.HasTag(tag) {
			out = append(out, f)
		}
	}
	return out
}
