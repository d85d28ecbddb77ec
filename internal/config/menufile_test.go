package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctxmenu/internal/menu"
)

const yamlMenu = `
initial_panel: 0
max_height: 5
panels:
  - id: 0
    title: Root
    items:
      - name: Open
        command: echo open
      - name: More
        panel: 1
  - id: 1
    title: More
    content: extra
    items:
      - name: Leaf
        disabled: true
`

const tomlMenu = `
initial_panel = 0
max_height = 5

[[panels]]
id = 0
title = "Root"

  [[panels.items]]
  name = "Open"
  command = "echo open"

  [[panels.items]]
  name = "More"
  panel = 1

[[panels]]
id = 1
title = "More"
content = "extra"

  [[panels.items]]
  name = "Leaf"
  disabled = true
`

const jsoncMenu = `{
  // panels may use numeric ids
  "initial_panel": 0,
  "max_height": 5,
  "panels": [
    {
      "id": 0,
      "title": "Root",
      "items": [
        {"name": "Open", "command": "echo open"},
        {"name": "More", "panel": 1},
      ],
    },
    {
      "id": 1,
      "title": "More",
      "content": "extra",
      "items": [{"name": "Leaf", "disabled": true}],
    },
  ],
}`

func expectedPanels() []menu.Panel {
	return []menu.Panel{
		{ID: "0", Title: "Root", Items: []menu.Item{
			{Name: "Open", Command: "echo open"},
			{Name: "More", Panel: "1"},
		}},
		{ID: "1", Title: "More", Content: "extra", Items: []menu.Item{
			{Name: "Leaf", Disabled: true},
		}},
	}
}

func TestParseMenu_FormatsAgree(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatYAML, yamlMenu},
		{FormatTOML, tomlMenu},
		{FormatJSONC, jsoncMenu},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			m, err := ParseMenu([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, menu.PanelID("0"), m.InitialPanel)
			assert.Equal(t, 5, m.MaximumHeight)
			assert.Equal(t, expectedPanels(), m.Panels)
			assert.NoError(t, m.Validate())
		})
	}
}

func TestParseMenu_DefaultsInitialPanelToFirst(t *testing.T) {
	m, err := ParseMenu([]byte("panels:\n  - id: main\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, menu.PanelID("main"), m.InitialPanel)
}

func TestParseMenu_Errors(t *testing.T) {
	_, err := ParseMenu([]byte("panels: []\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrNoPanels)

	_, err = ParseMenu([]byte(`{"panels":[{"id":1.5}]}`), FormatJSONC)
	assert.ErrorContains(t, err, "not a whole number")

	_, err = ParseMenu([]byte("panels: [\n"), FormatYAML)
	assert.Error(t, err)

	_, err = ParseMenu(nil, Format("xml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseMenu_DanglingReferenceIsNotAParseError(t *testing.T) {
	m, err := ParseMenu([]byte("panels:\n  - id: a\n    items:\n      - name: x\n        panel: missing\n"), FormatYAML)
	require.NoError(t, err)
	assert.ErrorContains(t, m.Validate(), `sub-panel "missing" does not exist`)
}

func TestLoadMenu(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(jsoncMenu), 0o644))

	m, err := LoadMenu(path)
	require.NoError(t, err)
	assert.Len(t, m.PanelSet().Panels(), 2)

	_, err = LoadMenu(filepath.Join(dir, "menu.ini"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadMenu(filepath.Join(dir, "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultMenu(t *testing.T) {
	m, err := DefaultMenu()
	require.NoError(t, err)
	assert.Equal(t, menu.PanelID("0"), m.InitialPanel)
	assert.NoError(t, m.Validate())
}
