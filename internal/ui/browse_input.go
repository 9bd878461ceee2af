package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleSearchInput handles search input mode
func (m Model) handleSearchInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// empty query closes the box, otherwise only clear it
		if m.search.searchInput.Value() == "" {
			m.closeSearch()
			return m, nil
		}
		m.search.searchInput.SetValue("")
		m.setQuery("")
		return m, nil
	case "enter":
		m.closeSearch()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	default:
		// live search: every keystroke re-filters
		var cmd tea.Cmd
		m.search.searchInput, cmd = m.search.searchInput.Update(msg)
		m.setQuery(m.search.searchInput.Value())
		return m, cmd
	}
}

func (m *Model) openSearch() tea.Cmd {
	m.search.searching = true
	return m.search.searchInput.Focus()
}

func (m *Model) closeSearch() {
	m.search.searching = false
	m.search.searchInput.Blur()
}

// setQuery re-filters when the query text actually changed.
func (m *Model) setQuery(q string) {
	if q == m.search.query {
		return
	}
	m.search.query = q
	m.applyFilter()
}

// clearSearch empties the search box and shows everything again.
func (m *Model) clearSearch() {
	m.search.searchInput.SetValue("")
	m.setQuery("")
}
