package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"keycards/internal/infra/logx"
)

// ---------- Update ----------
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()

	case darkModeLoadedMsg:
		if msg.err != nil {
			logx.Warnf("load dark mode: %v", msg.err)
			m.statusMsg = "Could not read preferences: " + msg.err.Error()
			return m, nil
		}
		if msg.on && !m.dark {
			m.dark = true
			m.updateContent()
		}

	case darkModeSavedMsg:
		if msg.err != nil {
			logx.Errorf("save dark mode=%v: %v", msg.on, msg.err)
			m.statusMsg = "Could not save dark mode: " + msg.err.Error()
		}

	case zoomClearMsg:
		if msg.epoch == m.image.epoch && m.image.ctrl != nil && m.image.ctrl.Clear(msg.token) {
			m.updateContent()
		}

	case scrollFrameMsg:
		cmd := m.stepScroll(msg.gen)
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			logx.Warnf("copy %q: %v", msg.keys, msg.err)
			m.statusMsg = "Copy failed: " + msg.err.Error()
		} else {
			m.statusMsg = fmt.Sprintf("Copied %s", msg.keys)
		}
	}

	return m, nil
}

// ---------- Handlers ----------

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.search.searching {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		return m.handleBrowseCursorMovement(msg.String())
	case key.Matches(msg, m.keys.Toggle):
		m.toggleCard(m.cards.cursor)
	case key.Matches(msg, m.keys.Collapse):
		m.collapseAll()
	case key.Matches(msg, m.keys.Search):
		cmd := m.openSearch()
		return m, cmd
	case key.Matches(msg, m.keys.ClearSearch):
		m.clearSearch()
	case key.Matches(msg, m.keys.NextOS):
		m.setOS(m.filter.osIndex + 1)
	case key.Matches(msg, m.keys.PrevOS):
		m.setOS(m.filter.osIndex - 1)
	case key.Matches(msg, m.keys.NextCat):
		m.setCategory(m.filter.categoryIndex + 1)
	case key.Matches(msg, m.keys.PrevCat):
		m.setCategory(m.filter.categoryIndex - 1)
	case key.Matches(msg, m.keys.ZoomIn), key.Matches(msg, m.keys.ZoomOut):
		if m.image.ctrl != nil {
			m.image.ctrl.Wheel(key.Matches(msg, m.keys.ZoomIn))
			m.updateContent()
		}
	case key.Matches(msg, m.keys.Dark):
		cmd := m.toggleDark()
		return m, cmd
	case key.Matches(msg, m.keys.Top):
		cmd := m.scrollToTop()
		return m, cmd
	case key.Matches(msg, m.keys.Copy):
		if m.itemsLen() > 0 {
			return m, copyKeysCmd(m.copyFn, m.itemAt(m.cards.cursor).Keys)
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}
	return m, nil
}
