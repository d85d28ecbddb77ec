package config

import (
	_ "embed"
	"fmt"
)

//go:embed default_menu.yaml
var defaultMenu []byte

// DefaultMenu returns the built-in demo menu.
func DefaultMenu() (*Menu, error) {
	m, err := ParseMenu(defaultMenu, FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("built-in menu: %w", err)
	}
	return m, nil
}
