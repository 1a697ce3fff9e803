package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"fader/internal/document"
)

// handleNavigation nudges the active layer by whole preview cells so every
// key press is visible.
func (m *model) handleNavigation(key string, speed int) (tea.Model, tea.Cmd) {
	l := m.doc.Active()
	if l == nil {
		return m, nil
	}
	var dx, dy int
	switch key {
	case "left", "shift+left":
		dx = -speed
	case "right", "shift+right":
		dx = speed
	case "up", "shift+up":
		dy = -speed
	case "down", "shift+down":
		dy = speed
	}
	cx, cy := m.view.cellsToCanvas(dx, dy)
	return m, m.push(document.NudgeLayerCmd{ID: l.ID, DX: cx, DY: cy})
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "shift+left", "shift+right", "shift+up", "shift+down":
		return fastSpeed
	default:
		return 1
	}
}
