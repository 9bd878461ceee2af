package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestClickTogglesCard(t *testing.T) {
	m := createTestModel(t, nil)

	m = update(m, click(5, cardScreenY(m, 1)))
	if m.cards.expanded != 1 || m.cards.cursor != 1 {
		t.Fatalf("expected card 1 expanded, got %d", m.cards.expanded)
	}
	m = update(m, click(5, cardScreenY(m, 3)))
	if m.cards.expanded != 3 {
		t.Fatalf("expected card 3 expanded, got %d", m.cards.expanded)
	}
	m = update(m, click(5, cardScreenY(m, 3)))
	if m.cards.expanded != -1 {
		t.Fatalf("expected collapse on second click, got %d", m.cards.expanded)
	}
}

func TestClickOutsideCardsCollapses(t *testing.T) {
	m := createTestModel(t, nil)
	cases := []struct {
		name string
		x, y int
	}{
		{"title", 1, 0},
		{"divider", 1, headerHeight - 1},
		{"gap below the last card", 1, m.footerTop() - 1},
		{"footer", 1, m.footerTop()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mm := update(m, click(5, cardScreenY(m, 0)))
			if mm.cards.expanded != 0 {
				t.Fatalf("setup: expected card 0 expanded")
			}
			mm = update(mm, click(tc.x, tc.y))
			if mm.cards.expanded != -1 {
				t.Fatalf("expected collapse, got %d", mm.cards.expanded)
			}
		})
	}
}

func TestHeaderControls(t *testing.T) {
	m := createTestModel(t, nil)
	_, hits := m.renderHeader()

	var linux, dark, category, search hitRange
	for _, h := range hits {
		switch {
		case h.kind == hitOS && h.value == 3:
			linux = h
		case h.kind == hitDark:
			dark = h
		case h.kind == hitCategory:
			category = h
		case h.kind == hitSearch:
			search = h
		}
	}

	m = update(m, click(linux.startX, linux.row))
	if m.currentFilter().OS != "linux" || m.itemsLen() != 1 {
		t.Fatalf("expected linux filter, got %q with %d cards", m.currentFilter().OS, m.itemsLen())
	}

	m = update(m, click(category.startX, category.row))
	if m.currentFilter().Category != "Browser" {
		t.Fatalf("expected Browser, got %q", m.currentFilter().Category)
	}

	m, cmd := updateCmd(m, click(dark.startX, dark.row))
	if !m.dark {
		t.Fatalf("expected dark toggle")
	}
	if cmd != nil {
		t.Fatalf("expected no save cmd without a store")
	}

	m = update(m, click(search.startX+1, search.row))
	if !m.search.searching {
		t.Fatalf("expected search focus")
	}
	m = update(m, click(1, 0))
	if m.search.searching {
		t.Fatalf("expected search to close on an outside click")
	}
}

func TestWheelOutsideImageScrollsList(t *testing.T) {
	m := createTestModel(t, nil)
	m = update(m, tea.WindowSizeMsg{Width: 80, Height: 12})
	m = update(m, tea.MouseMsg{X: 1, Y: headerHeight, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.viewport.YOffset != wheelLines {
		t.Fatalf("expected offset %d, got %d", wheelLines, m.viewport.YOffset)
	}
	m = update(m, tea.MouseMsg{X: 1, Y: headerHeight, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if m.viewport.YOffset != 0 {
		t.Fatalf("expected offset 0, got %d", m.viewport.YOffset)
	}
	// the header does not scroll the list
	m = update(m, tea.MouseMsg{X: 1, Y: 0, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if m.viewport.YOffset != 0 {
		t.Fatalf("expected offset 0, got %d", m.viewport.YOffset)
	}
}

// imagePoint returns screen coordinates inside the expanded image.
func imagePoint(m Model) (int, int) {
	s := m.spans[m.cards.expanded]
	return s.imgLeft + 2, headerHeight + s.imgTop - m.viewport.YOffset + 2
}

func TestImageZoomPanAndLeave(t *testing.T) {
	m := createTestModel(t, nil)
	m = update(m, click(5, cardScreenY(m, 2)))
	if m.image.ctrl == nil {
		t.Fatalf("expected zoom controller")
	}
	x, y := imagePoint(m)
	offset := m.viewport.YOffset

	// pressing an unzoomed image neither drags nor toggles the card
	m = update(m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.image.ctrl.Dragging() || m.cards.expanded != 2 {
		t.Fatalf("press at rest must be a no-op")
	}

	for i := 0; i < 3; i++ {
		m = update(m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	}
	c := m.image.ctrl
	if c.Scale != 1.3 {
		t.Fatalf("expected scale 1.3, got %v", c.Scale)
	}
	if m.viewport.YOffset != offset {
		t.Fatalf("wheel over the image must not scroll the list")
	}
	if !m.image.hovering || !c.Overridden() {
		t.Fatalf("expected hover with inline transform")
	}

	m = update(m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = update(m, tea.MouseMsg{X: x + 3, Y: y + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	m = update(m, tea.MouseMsg{X: x + 3, Y: y + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if c.X != 3 || c.Y != 1 || c.Dragging() {
		t.Fatalf("expected pan (3,1) after release, got (%v,%v) dragging=%v", c.X, c.Y, c.Dragging())
	}
	if m.cards.expanded != 2 {
		t.Fatalf("drag must not toggle the card")
	}

	// leaving snaps back at once and clears the override later
	m, cmd := updateCmd(m, tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonNone, Action: tea.MouseActionMotion})
	if c.Scale != 1 || c.X != 0 || c.Y != 0 {
		t.Fatalf("expected reset on leave, got %v (%v,%v)", c.Scale, c.X, c.Y)
	}
	if !c.Overridden() {
		t.Fatalf("reset transform must stay pinned until the clear")
	}
	if cmd == nil {
		t.Fatalf("expected deferred clear cmd")
	}
	m = update(m, cmd())
	if c.Overridden() || m.image.hovering {
		t.Fatalf("expected idle image after clear")
	}
}

func TestStaleZoomClearIsIgnored(t *testing.T) {
	m := createTestModel(t, nil)
	m = update(m, click(5, cardScreenY(m, 2)))
	x, y := imagePoint(m)

	m = update(m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	c := m.image.ctrl
	pending, token := c.Leave()
	if !pending {
		t.Fatalf("expected a pending clear for a zoomed image")
	}

	// zoomed again before the clear fired
	m = update(m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	m = update(m, zoomClearMsg{epoch: m.image.epoch, token: token})
	if !c.Overridden() || c.Scale != 1.1 {
		t.Fatalf("stale clear must not touch a re-zoomed image")
	}

	// a clear for a replaced controller is dropped too
	epoch := m.image.epoch
	m.toggleCard(2)
	m = update(m, zoomClearMsg{epoch: epoch, token: token})
	if m.image.ctrl != nil {
		t.Fatalf("expected no controller after collapse")
	}
}

func TestImageClickAtRestCollapsesCard(t *testing.T) {
	m := createTestModel(t, nil)
	m = update(m, click(5, cardScreenY(m, 2)))
	x, y := imagePoint(m)

	m = update(m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.cards.expanded != 2 {
		t.Fatalf("press alone must not collapse, got %d", m.cards.expanded)
	}
	m = update(m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if m.cards.expanded != -1 || m.image.ctrl != nil {
		t.Fatalf("expected click on the image to collapse the card, got %d", m.cards.expanded)
	}
}

func TestImageClickAfterZoomKeepsCard(t *testing.T) {
	m := createTestModel(t, nil)
	m = update(m, click(5, cardScreenY(m, 2)))
	x, y := imagePoint(m)

	// zoom in, pan, and zoom back out before releasing
	m = update(m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	m = update(m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = update(m, tea.MouseMsg{X: x + 1, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	m = update(m, tea.MouseMsg{X: x + 1, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if m.cards.expanded != 2 {
		t.Fatalf("panning must not collapse the card, got %d", m.cards.expanded)
	}

	// a press at rest followed by a wheel tick is not a click
	m = update(m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m = update(m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = update(m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	m = update(m, tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if m.cards.expanded != 2 {
		t.Fatalf("wheel between press and release must cancel the click, got %d", m.cards.expanded)
	}
}
