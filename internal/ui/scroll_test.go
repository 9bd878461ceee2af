package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// scrolledModel returns a short terminal scrolled past the top-button threshold.
func scrolledModel(t *testing.T) Model {
	t.Helper()
	m := createTestModel(t, nil)
	m.cfg.View.ScrollThreshold = 2
	m = update(m, tea.WindowSizeMsg{Width: 80, Height: 12})
	for i := 0; i < 2; i++ {
		m = update(m, tea.MouseMsg{X: 1, Y: headerHeight, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	}
	if !m.showTopButton() {
		t.Fatalf("setup: expected top button at offset %d", m.viewport.YOffset)
	}
	return m
}

func runScroll(m Model) Model {
	for i := 0; i < 10*scrollFPS && m.scroll.animating; i++ {
		m = update(m, scrollFrameMsg{gen: m.scroll.gen})
	}
	return m
}

func TestTopButtonVisibility(t *testing.T) {
	m := createTestModel(t, nil)
	if m.showTopButton() || strings.Contains(m.View(), "↑ top") {
		t.Fatalf("top button must be hidden at offset 0")
	}
	m = scrolledModel(t)
	if !strings.Contains(m.View(), "↑ top") {
		t.Fatalf("expected top button in view")
	}
}

func TestScrollToTopKeyAnimates(t *testing.T) {
	m := scrolledModel(t)
	start := m.viewport.YOffset

	m, cmd := updateCmd(m, keyRunes("g"))
	if cmd == nil || !m.scroll.animating {
		t.Fatalf("expected animation to start")
	}
	m = update(m, scrollFrameMsg{gen: m.scroll.gen})
	if !m.scroll.animating || m.scroll.pos >= float64(start) || m.viewport.YOffset == 0 {
		t.Fatalf("expected a partial first frame, got pos %v from %d", m.scroll.pos, start)
	}

	m = runScroll(m)
	if m.scroll.animating || m.viewport.YOffset != 0 {
		t.Fatalf("expected animation to settle at 0, got offset %d", m.viewport.YOffset)
	}
	if m.showTopButton() {
		t.Fatalf("top button must hide at the top")
	}
}

func TestScrollToTopButtonClick(t *testing.T) {
	m := scrolledModel(t)
	_, hits := m.renderFooterBar()
	if len(hits) != 1 || hits[0].kind != hitTop {
		t.Fatalf("expected one top hit, got %+v", hits)
	}
	m, cmd := updateCmd(m, click(hits[0].startX, hits[0].row))
	if cmd == nil {
		t.Fatalf("expected frame cmd")
	}
	m = runScroll(m)
	if m.viewport.YOffset != 0 {
		t.Fatalf("expected offset 0, got %d", m.viewport.YOffset)
	}
}

func TestStaleScrollFramesAreDropped(t *testing.T) {
	m := scrolledModel(t)
	m, _ = updateCmd(m, keyRunes("g"))
	old := m.scroll.gen

	// manual scrolling cancels the animation
	m = update(m, tea.MouseMsg{X: 1, Y: headerHeight, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	offset := m.viewport.YOffset
	m, cmd := updateCmd(m, scrollFrameMsg{gen: old})
	if cmd != nil || m.viewport.YOffset != offset {
		t.Fatalf("cancelled animation must ignore its frames")
	}

	// a restart gets a new generation
	m, _ = updateCmd(m, keyRunes("g"))
	if m.scroll.gen == old {
		t.Fatalf("expected a new generation")
	}
	m, cmd = updateCmd(m, scrollFrameMsg{gen: old})
	if cmd != nil {
		t.Fatalf("old generation frame must not continue")
	}
}

func TestScrollToTopAtTopIsNoop(t *testing.T) {
	m := createTestModel(t, nil)
	if _, cmd := updateCmd(m, keyRunes("g")); cmd != nil {
		t.Fatalf("expected no animation at the top")
	}
}

func TestFilterChangeReturnsToTop(t *testing.T) {
	m := scrolledModel(t)
	m, _ = updateCmd(m, keyRunes("g"))

	for _, k := range []string{"o", "o", "o"} {
		m = update(m, keyRunes(k))
		if m.viewport.YOffset > m.spans[0].start {
			t.Fatalf("after %q: offset %d hides the first card at %d", k, m.viewport.YOffset, m.spans[0].start)
		}
		if m.scroll.animating {
			t.Fatalf("after %q: a filter change must cancel the scroll animation", k)
		}
	}
	if m.showTopButton() {
		t.Fatalf("top button must hide after a filter change")
	}
}
