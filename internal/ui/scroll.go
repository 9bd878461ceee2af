package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const scrollFPS = 60

type scrollFrameMsg struct{ gen uint64 }

func scrollFrameCmd(gen uint64) tea.Cmd {
	return tea.Tick(time.Second/scrollFPS, func(time.Time) tea.Msg { return scrollFrameMsg{gen: gen} })
}

// showTopButton reports whether the list is scrolled past the threshold.
func (m Model) showTopButton() bool {
	return m.viewport.YOffset > m.cfg.View.ScrollThreshold
}

// scrollToTop starts the animated scroll back to the first line.
func (m *Model) scrollToTop() tea.Cmd {
	if m.viewport.YOffset == 0 {
		return nil
	}
	already := m.scroll.animating
	m.scroll.animating = true
	m.scroll.pos = float64(m.viewport.YOffset)
	if already {
		return nil
	}
	m.scroll.vel = 0
	m.scroll.gen++
	return scrollFrameCmd(m.scroll.gen)
}

// stepScroll advances the spring by one frame.
func (m *Model) stepScroll(gen uint64) tea.Cmd {
	if !m.scroll.animating || gen != m.scroll.gen {
		return nil
	}
	m.scroll.pos, m.scroll.vel = m.scroll.spring.Update(m.scroll.pos, m.scroll.vel, 0)
	if math.Abs(m.scroll.pos) < 0.5 && math.Abs(m.scroll.vel) < 0.5 {
		m.scroll.animating = false
		m.scroll.pos, m.scroll.vel = 0, 0
		m.viewport.SetYOffset(0)
		return nil
	}
	m.viewport.SetYOffset(int(math.Round(m.scroll.pos)))
	return scrollFrameCmd(gen)
}

// stopScroll cancels a running animation; manual scrolling wins.
func (m *Model) stopScroll() {
	m.scroll.animating = false
	m.scroll.vel = 0
}

func (m *Model) scrollBy(n int) {
	m.stopScroll()
	m.viewport.SetYOffset(m.viewport.YOffset + n)
}
