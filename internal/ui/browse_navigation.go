package ui

import tea "github.com/charmbracelet/bubbletea"

// handleBrowseCursorMovement handles cursor movement navigation
func (m Model) handleBrowseCursorMovement(key string) (Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if m.cards.cursor < m.itemsLen()-1 {
			m.cards.cursor++
		}
	case "k", "up":
		if m.cards.cursor > 0 {
			m.cards.cursor--
		}
	}
	m.updateContent()
	m.ensureCursorVisible()
	return m, nil
}

// ensureCursorVisible scrolls the viewport so the cursor card is on screen.
// Cards taller than the viewport are aligned to their top.
func (m *Model) ensureCursorVisible() {
	if m.cards.cursor < 0 || m.cards.cursor >= len(m.spans) {
		return
	}
	span := m.spans[m.cards.cursor]
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height

	switch {
	case span.start < top:
		m.viewport.SetYOffset(span.start)
	case span.start+span.height > bottom:
		target := span.start + span.height - m.viewport.Height
		if target > span.start {
			target = span.start
		}
		m.viewport.SetYOffset(target)
	}
}
