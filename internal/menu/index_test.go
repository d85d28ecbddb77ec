package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex_Lookups(t *testing.T) {
	idx := BuildIndex(deepPanels())

	require.Len(t, idx.Panels, 4)
	assert.Equal(t, "Share", idx.Panels["share"].Title)

	assert.Equal(t, map[PanelID]PanelID{
		"share":  "root",
		"export": "root",
		"link":   "share",
	}, idx.Parents)

	assert.Equal(t, map[int]PanelID{1: "share", 2: "export"}, idx.Children["root"])
	assert.Equal(t, map[int]PanelID{1: "link"}, idx.Children["share"])
	assert.Empty(t, idx.Children["link"])
	assert.NotNil(t, idx.Children["link"], "every panel gets a child map")
}

func TestBuildIndex_PanelWithoutItems(t *testing.T) {
	idx := BuildIndex([]Panel{{ID: "empty", Content: "nothing here"}})

	assert.Empty(t, idx.Children["empty"])
	assert.Empty(t, idx.Parents)
	_, ok := idx.Child("empty", 0)
	assert.False(t, ok)
}

func TestBuildIndex_LastParentWins(t *testing.T) {
	idx := BuildIndex([]Panel{
		{ID: "a", Items: []Item{{Name: "x", Panel: "shared"}}},
		{ID: "b", Items: []Item{{Name: "y", Panel: "shared"}}},
		{ID: "shared"},
	})

	parent, ok := idx.Parent("shared")
	require.True(t, ok)
	assert.Equal(t, PanelID("b"), parent)
}

func TestBuildIndex_DanglingReferenceAccepted(t *testing.T) {
	idx := BuildIndex([]Panel{{ID: "root", Items: []Item{{Name: "gone", Panel: "missing"}}}})

	child, ok := idx.Child("root", 0)
	require.True(t, ok)
	assert.Equal(t, PanelID("missing"), child)
	_, ok = idx.Panel("missing")
	assert.False(t, ok)
}

func TestBuildIndex_ZeroIDIsAReference(t *testing.T) {
	idx := BuildIndex([]Panel{
		{ID: IntPanelID(1), Items: []Item{{Name: "to zero", Panel: IntPanelID(0)}}},
		{ID: IntPanelID(0)},
	})

	child, ok := idx.Child("1", 0)
	require.True(t, ok)
	assert.Equal(t, PanelID("0"), child)
}

func TestBuildIndex_Idempotent(t *testing.T) {
	panels := deepPanels()
	first := BuildIndex(panels)
	second := BuildIndex(panels)

	assert.Equal(t, first.Parents, second.Parents)
	assert.Equal(t, first.Children, second.Children)
	assert.Equal(t, first.Panels, second.Panels)
}

func TestIndex_NilIsEmpty(t *testing.T) {
	var idx *Index

	_, ok := idx.Panel("root")
	assert.False(t, ok)
	assert.False(t, idx.HasParent("root"))
	_, ok = idx.Child("root", 0)
	assert.False(t, ok)
}

func TestPanelSet_VersionsAreUnique(t *testing.T) {
	a := NewPanelSet(deepPanels()...)
	b := NewPanelSet(deepPanels()...)

	assert.NotEqual(t, a.Version(), b.Version())
	assert.Equal(t, 4, a.Len())
	first, ok := a.First()
	require.True(t, ok)
	assert.Equal(t, PanelID("root"), first)

	var empty *PanelSet
	assert.Zero(t, empty.Len())
	_, ok = empty.First()
	assert.False(t, ok)
}

func TestPanelSet_CopiesOuterSlice(t *testing.T) {
	panels := deepPanels()
	set := NewPanelSet(panels...)
	panels[0] = Panel{ID: "replaced"}

	assert.Equal(t, PanelID("root"), set.Panels()[0].ID)
}
