package corpus

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileIDs(files []*FileNode) []string {
	ids := make([]string, 0, len(files))
	for _, f := range files {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestDefaultCorpus_DepthFirstOrder(t *testing.T) {
	c := Default()

	assert.Equal(t, 17, c.Len())
	assert.Equal(t, []string{
		"rec-1", "rec-2", "rec-3", "rec-4", "rec-5", "rec-6", "rec-7",
		"hr-1", "hr-2", "hr-3", "hr-4", "hr-5",
		"legal-1", "legal-2", "legal-3", "legal-4", "legal-5",
	}, fileIDs(c.Files()))
}

func TestCorpus_Lookups(t *testing.T) {
	c := Default()

	f, ok := c.File("rec-4")
	require.True(t, ok)
	assert.Equal(t, "Interview_Notes_Sarah_Chen_2024-01-22.docx", f.Name)

	_, ok = c.File("recruiting")
	assert.False(t, ok, "folder ids must not resolve as files")

	folder, ok := c.Folder("legal")
	require.True(t, ok)
	assert.Equal(t, "Legal & Compliance", folder.Name)

	assert.Equal(t, "HR Policies", c.FolderName("hr"))
	assert.Equal(t, "Unknown", c.FolderName("engineering"))
}

func TestCorpus_FilesInFolder(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"hr-1", "hr-2", "hr-3", "hr-4", "hr-5"}, fileIDs(c.FilesInFolder("hr")))
	assert.Empty(t, c.FilesInFolder("root"), "root has only folders as direct children")
	assert.Nil(t, c.FilesInFolder("missing"))
}

func TestCorpus_FilesByTag(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"legal-1", "legal-2", "legal-3", "legal-4"}, fileIDs(c.FilesByTag(TagNDA, nil)))

	subset := c.FilesInFolder("recruiting")
	assert.Equal(t, []string{"rec-4", "rec-5"}, fileIDs(c.FilesByTag(TagInterview, subset)))
}

func TestFileNode_RelevanceFor(t *testing.T) {
	c := Default()

	f, _ := c.File("rec-2")
	assert.Equal(t, RelevanceMedium, f.RelevanceFor(TagReact))
	assert.Equal(t, RelevanceHigh, f.RelevanceFor(TagPython))
	assert.Equal(t, RelevanceNone, f.RelevanceFor(TagNDA), "absent tag is none")

	orgChart, _ := c.File("hr-5")
	assert.Equal(t, RelevanceNone, orgChart.RelevanceFor(TagPTO))
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	root := &FolderNode{
		ID: RootID,
		Children: []Node{
			&FolderNode{ID: "a", Children: []Node{&FileNode{ID: "x"}}},
			&FileNode{ID: "a"},
		},
	}

	_, err := New(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate corpus id "a"`)

	_, err = New(nil)
	assert.Error(t, err)
}

func TestFolderNode_MarshalJSON(t *testing.T) {
	c := Default()
	folder, _ := c.Folder("hr")

	raw, err := json.Marshal(folder)
	require.NoError(t, err)

	var decoded struct {
		ID       string `json:"id"`
		Type     string `json:"type"`
		Children []struct {
			ID          string   `json:"id"`
			Type        string   `json:"type"`
			ContentTags []string `json:"contentTags"`
		} `json:"children"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "hr", decoded.ID)
	assert.Equal(t, "folder", decoded.Type)
	require.Len(t, decoded.Children, 5)
	assert.Equal(t, "file", decoded.Children[0].Type)
	assert.Equal(t, []string{"pto", "remote", "compensation"}, decoded.Children[0].ContentTags)
	assert.NotNil(t, decoded.Children[4].ContentTags)
}
