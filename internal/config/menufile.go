package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"ctxmenu/internal/menu"
)

// Format is a menu definition file format.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
	FormatJSONC Format = "jsonc"
)

var (
	// ErrUnsupportedFormat is returned for file extensions no decoder handles.
	ErrUnsupportedFormat = errors.New("unsupported menu file format")
	// ErrNoPanels is returned for definitions without any panel.
	ErrNoPanels = errors.New("menu defines no panels")
)

// Menu is a decoded menu definition.
type Menu struct {
	Panels        []menu.Panel
	InitialPanel  menu.PanelID
	MaximumHeight int
}

// Validate reports dangling sub-panel references and other structural
// problems. The menu itself tolerates them; callers decide whether to fail.
func (m *Menu) Validate() error {
	return menu.Validate(m.Panels, m.InitialPanel)
}

// PanelSet returns the panels as a menu.PanelSet.
func (m *Menu) PanelSet() *menu.PanelSet {
	return menu.NewPanelSet(m.Panels...)
}

type menuFile struct {
	InitialPanel any         `yaml:"initial_panel" toml:"initial_panel" json:"initial_panel"`
	MaxHeight    int         `yaml:"max_height" toml:"max_height" json:"max_height"`
	Panels       []panelFile `yaml:"panels" toml:"panels" json:"panels"`
}

type panelFile struct {
	ID      any        `yaml:"id" toml:"id" json:"id"`
	Title   string     `yaml:"title" toml:"title" json:"title"`
	Width   int        `yaml:"width" toml:"width" json:"width"`
	Content string     `yaml:"content" toml:"content" json:"content"`
	Items   []itemFile `yaml:"items" toml:"items" json:"items"`
}

type itemFile struct {
	Name           string `yaml:"name" toml:"name" json:"name"`
	Key            string `yaml:"key" toml:"key" json:"key"`
	Icon           string `yaml:"icon" toml:"icon" json:"icon"`
	Panel          any    `yaml:"panel" toml:"panel" json:"panel"`
	Disabled       bool   `yaml:"disabled" toml:"disabled" json:"disabled"`
	ToolTipTitle   string `yaml:"tooltip_title" toml:"tooltip_title" json:"tooltip_title"`
	ToolTipContent string `yaml:"tooltip_content" toml:"tooltip_content" json:"tooltip_content"`
	Command        string `yaml:"command" toml:"command" json:"command"`
}

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json", ".jsonc":
		return FormatJSONC, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadMenu reads and decodes a menu definition file.
func LoadMenu(path string) (*Menu, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	m, err := ParseMenu(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseMenu decodes a menu definition. Panel ids may be strings or integers;
// integers are converted to their decimal form.
func ParseMenu(data []byte, format Format) (*Menu, error) {
	var f menuFile
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	case FormatJSONC:
		err = json.Unmarshal(jsonc.ToJSON(data), &f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s menu: %w", format, err)
	}
	if len(f.Panels) == 0 {
		return nil, ErrNoPanels
	}
	if f.MaxHeight < 0 {
		return nil, fmt.Errorf("max_height must not be negative, got %d", f.MaxHeight)
	}

	m := &Menu{
		Panels:        make([]menu.Panel, 0, len(f.Panels)),
		MaximumHeight: f.MaxHeight,
	}
	if m.InitialPanel, err = panelID(f.InitialPanel); err != nil {
		return nil, fmt.Errorf("initial_panel: %w", err)
	}
	for i, pf := range f.Panels {
		p, err := pf.toPanel()
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", i, err)
		}
		m.Panels = append(m.Panels, p)
	}
	if m.InitialPanel == "" {
		m.InitialPanel = m.Panels[0].ID
	}
	return m, nil
}

func (pf panelFile) toPanel() (menu.Panel, error) {
	id, err := panelID(pf.ID)
	if err != nil {
		return menu.Panel{}, fmt.Errorf("id: %w", err)
	}
	p := menu.Panel{
		ID:      id,
		Title:   pf.Title,
		Width:   pf.Width,
		Content: pf.Content,
		Items:   make([]menu.Item, 0, len(pf.Items)),
	}
	for i, it := range pf.Items {
		target, err := panelID(it.Panel)
		if err != nil {
			return menu.Panel{}, fmt.Errorf("item %d panel: %w", i, err)
		}
		p.Items = append(p.Items, menu.Item{
			Name:           it.Name,
			Key:            it.Key,
			Icon:           it.Icon,
			Panel:          target,
			Disabled:       it.Disabled,
			ToolTipTitle:   it.ToolTipTitle,
			ToolTipContent: it.ToolTipContent,
			Command:        it.Command,
		})
	}
	return p, nil
}

// panelID converts a decoded id to a PanelID. Whole numbers are formatted
// without a fraction so that 0 in JSON, YAML and TOML all become "0".
func panelID(v any) (menu.PanelID, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return menu.PanelID(val), nil
	case int:
		return menu.IntPanelID(val), nil
	case int64:
		return menu.PanelID(strconv.FormatInt(val, 10)), nil
	case uint64:
		return menu.PanelID(strconv.FormatUint(val, 10)), nil
	case float64:
		if val != math.Trunc(val) || math.IsInf(val, 0) {
			return "", fmt.Errorf("id %v is not a whole number", val)
		}
		return menu.PanelID(strconv.FormatFloat(val, 'f', 0, 64)), nil
	default:
		return "", fmt.Errorf("unsupported id type %T", v)
	}
}
