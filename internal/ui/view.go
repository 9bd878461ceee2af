package ui

// ---------- View ----------
func (m Model) View() string {
	if m.width == 0 {
		return "loading…"
	}
	header, _ := m.renderHeader()
	footer, _ := m.renderFooterBar()
	return header + "\n" + m.viewport.View() + "\n" + footer
}
