package menu

import (
	"errors"
	"fmt"
)

// ValidationError describes one inconsistency in a panel list.
type ValidationError struct {
	Panel   PanelID
	Item    int // -1 when the problem is not tied to an item
	Problem string
}

func (e *ValidationError) Error() string {
	if e.Item >= 0 {
		return fmt.Sprintf("panel %q item %d: %s", e.Panel, e.Item, e.Problem)
	}
	if e.Panel == "" {
		return e.Problem
	}
	return fmt.Sprintf("panel %q: %s", e.Panel, e.Problem)
}

// Validate checks panels for duplicate ids, dangling sub-panel references and
// a missing initial panel. Navigation never requires this; it exists for
// callers that want malformed menus surfaced once at load time. Returns nil or
// an errors.Join of *ValidationError values.
func Validate(panels []Panel, initial PanelID) error {
	var errs []error
	seen := make(map[PanelID]bool, len(panels))
	for _, p := range panels {
		if p.ID == "" {
			errs = append(errs, &ValidationError{Item: -1, Problem: "panel without id"})
			continue
		}
		if seen[p.ID] {
			errs = append(errs, &ValidationError{Panel: p.ID, Item: -1, Problem: "duplicate panel id"})
		}
		seen[p.ID] = true
	}
	for _, p := range panels {
		for i, item := range p.Items {
			if !item.HasPanel() {
				continue
			}
			if !seen[item.Panel] {
				errs = append(errs, &ValidationError{
					Panel:   p.ID,
					Item:    i,
					Problem: fmt.Sprintf("sub-panel %q does not exist", item.Panel),
				})
			}
			if item.Panel == p.ID {
				errs = append(errs, &ValidationError{Panel: p.ID, Item: i, Problem: "item opens its own panel"})
			}
		}
	}
	if initial != "" && !seen[initial] {
		errs = append(errs, &ValidationError{Item: -1, Problem: fmt.Sprintf("initial panel %q does not exist", initial)})
	}
	return errors.Join(errs...)
}
