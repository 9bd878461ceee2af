package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"keycards/internal/infra/logx"
)

// wheel ticks outside an image scroll the list by this many lines
const wheelLines = 3

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	inViewport := msg.Y >= headerHeight && msg.Y < m.footerTop()
	line := msg.Y - headerHeight + m.viewport.YOffset

	inImage := false
	if m.image.ctrl != nil && inViewport && m.cards.expanded < len(m.spans) {
		inImage = m.spans[m.cards.expanded].inImage(line, msg.X)
	}
	leaveCmd := m.trackImagePointer(inImage)
	if inImage {
		m.handleImageMouse(msg)
		return m, leaveCmd
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		if inViewport {
			m.scrollBy(-wheelLines)
		}
	case msg.Button == tea.MouseButtonWheelDown:
		if inViewport {
			m.scrollBy(wheelLines)
		}
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		cmd := m.handleClick(msg.X, msg.Y, inViewport, line)
		return m, tea.Batch(leaveCmd, cmd)
	case msg.Action == tea.MouseActionRelease:
		if m.image.ctrl != nil {
			m.image.ctrl.Release()
		}
	}
	return m, leaveCmd
}

// trackImagePointer follows the pointer across the image border. Leaving a
// zoomed image snaps it back and schedules the override clear.
func (m *Model) trackImagePointer(inside bool) tea.Cmd {
	c := m.image.ctrl
	if c == nil || inside == m.image.hovering {
		return nil
	}
	m.image.hovering = inside
	m.image.pressed = false
	var cmd tea.Cmd
	if !inside {
		if pending, token := c.Leave(); pending {
			cmd = zoomClearCmd(m.image.epoch, token)
		}
	}
	m.updateContent()
	return cmd
}

// handleImageMouse feeds a pointer event over the image to its controller.
// A press and release at rest with nothing in between counts as a click on
// the card and collapses it; every other event stays with the image.
func (m *Model) handleImageMouse(msg tea.MouseMsg) {
	c := m.image.ctrl
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.image.pressed = false
		c.Wheel(true)
	case msg.Button == tea.MouseButtonWheelDown:
		m.image.pressed = false
		c.Wheel(false)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.image.pressed = !c.Zoomed()
		c.Press(msg.X, msg.Y)
	case msg.Action == tea.MouseActionMotion:
		if !c.Dragging() {
			return
		}
		c.Move(msg.X, msg.Y)
	case msg.Action == tea.MouseActionRelease:
		click := m.image.pressed && !c.Zoomed()
		m.image.pressed = false
		c.Release()
		if click {
			m.toggleCard(m.cards.expanded)
			return
		}
	default:
		return
	}
	m.updateContent()
}

// handleClick toggles the card under the pointer. Any other click collapses
// every card first and then triggers whatever control sits there.
func (m *Model) handleClick(x, y int, inViewport bool, line int) tea.Cmd {
	if inViewport {
		for pos, span := range m.spans {
			if span.contains(line) {
				m.toggleCard(pos)
				return nil
			}
		}
	}
	m.collapseAll()

	var hits []hitRange
	if y < headerHeight {
		_, hits = m.renderHeader()
	} else if !inViewport {
		_, hits = m.renderFooterBar()
	}
	hit := hitAt(hits, x, y)
	if hit.kind != hitSearch && m.search.searching {
		m.closeSearch()
	}

	switch hit.kind {
	case hitOS:
		m.setOS(hit.value)
	case hitCategory:
		m.setCategory(m.filter.categoryIndex + 1)
	case hitSearch:
		return m.openSearch()
	case hitDark:
		return m.toggleDark()
	case hitTop:
		return m.scrollToTop()
	}
	return nil
}

// toggleDark flips the theme and persists the new value.
func (m *Model) toggleDark() tea.Cmd {
	m.dark = !m.dark
	logx.Debugf("dark mode %v", m.dark)
	m.updateContent()
	return saveDarkModeCmd(m.store, m.dark)
}
