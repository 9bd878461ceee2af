package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"keycards/internal/catalog"
	"keycards/internal/imgview"
	"keycards/internal/infra/logx"
	"keycards/internal/zoom"
)

// toggleCard expands the card at pos, collapsing every other card, or
// collapses it when it is already expanded.
func (m *Model) toggleCard(pos int) {
	if pos < 0 || pos >= m.itemsLen() {
		return
	}
	if m.cards.expanded == pos {
		m.cards.expanded = -1
	} else {
		m.cards.expanded = pos
	}
	m.cards.cursor = pos
	m.resetImage()
	m.updateContent()
	m.ensureCursorVisible()
}

// collapseAll closes the expanded card, if any.
func (m *Model) collapseAll() {
	if m.cards.expanded < 0 {
		return
	}
	m.cards.expanded = -1
	m.resetImage()
	m.updateContent()
}

// resetImage installs a fresh zoom controller for the expanded card's image.
func (m *Model) resetImage() {
	m.image.epoch++
	m.image.hovering = false
	m.image.pressed = false
	m.image.ctrl = nil
	if m.cards.expanded >= 0 && m.itemAt(m.cards.expanded).HasImage() {
		m.image.ctrl = zoom.New()
	}
}

func (m *Model) updateContent() {
	t := m.theme()
	m.spans = make([]cardSpan, 0, m.itemsLen())

	if m.itemsLen() == 0 {
		msg := "No shortcuts match the current filters."
		if len(m.catalog.Shortcuts) == 0 {
			msg = "The catalog is empty."
		}
		m.viewport.SetContent(t.warn.Render(msg))
		return
	}

	blocks := make([]string, 0, m.itemsLen())
	line := 0
	for pos := range m.visibleIdx {
		block, span := m.renderCard(pos)
		span.start = line
		span.imgTop += line
		line += span.height
		blocks = append(blocks, block)
		m.spans = append(m.spans, span)
	}
	m.viewport.SetContent(strings.Join(blocks, "\n"))
}

func (m Model) cardInnerWidth() int {
	w := m.viewport.Width - 2 - detailColOffset
	if w < 10 {
		w = 10
	}
	return w
}

// renderCard renders one card and reports its layout relative to its own top.
func (m Model) renderCard(pos int) (string, cardSpan) {
	t := m.theme()
	s := m.itemAt(pos)
	inner := m.cardInnerWidth()
	expanded := pos == m.cards.expanded

	style := t.card
	switch {
	case expanded:
		style = t.cardExpanded
	case pos == m.cards.cursor:
		style = t.cardCursor
	}

	chevron := "▸"
	if expanded {
		chevron = "▾"
	}
	head := t.tag.Render(" "+s.Category+" ") + "  " + t.keys.Render(s.Keys)
	head = truncate.StringWithTail(head, uint(inner-2), "…")
	pad := inner - lipgloss.Width(head) - lipgloss.Width(chevron)
	if pad < 1 {
		pad = 1
	}
	head += strings.Repeat(" ", pad) + t.subtle.Render(chevron)

	desc := wrapText(catalog.Truncate(s.Description), inner)
	lines := []string{head, t.text.Render(desc)}

	var span cardSpan
	if expanded {
		lines = append(lines, "")
		detail, w, h, isImage := m.renderDetail(s, inner)
		lines = append(lines, detail)
		if isImage {
			span.hasImage = true
			span.imgTop = 1 + 1 + lipgloss.Height(desc) + 1
			span.imgLeft = detailColOffset
			span.imgW, span.imgH = w, h
		}
	}

	block := style.Width(m.viewport.Width - 2).Render(strings.Join(lines, "\n"))
	span.height = lipgloss.Height(block)
	return block, span
}

// renderDetail renders the detail panel: the image when the reference names
// one and it decodes, plain text otherwise.
func (m Model) renderDetail(s catalog.Shortcut, inner int) (string, int, int, bool) {
	t := m.theme()
	if s.HasImage() {
		w, h := m.cfg.View.ImageWidth, m.cfg.View.ImageHeight
		if w > inner {
			w = inner
		}
		v := imgview.View{Scale: 1}
		if c := m.image.ctrl; c != nil {
			v = imgview.View{Scale: c.Scale, X: c.X, Y: c.Y}
		}
		out, err := m.images.Render(s.Detailed, w, h, v)
		if err == nil {
			return out + "\n" + m.imageCaption(), w, h, true
		}
		logx.Warnf("image %s: %v", s.Detailed, err)
	}
	if strings.TrimSpace(s.Detailed) == "" {
		return t.subtle.Render("(no details)"), 0, 0, false
	}
	return t.text.Render(wrapText(s.Detailed, inner)), 0, 0, false
}

func (m Model) imageCaption() string {
	t := m.theme()
	c := m.image.ctrl
	switch {
	case c == nil:
		return ""
	case c.Overridden():
		hint := "scroll to zoom"
		switch c.Cursor() {
		case "grab":
			hint = "drag to pan"
		case "grabbing":
			hint = "panning"
		}
		return t.captionHover.Render(fmt.Sprintf("%.1fx  %s", c.Scale, hint))
	case m.image.hovering:
		return t.captionHover.Render("scroll to zoom")
	default:
		return t.caption.Render("scroll over the image to zoom")
	}
}

func wrapText(s string, width int) string {
	return wrap.String(wordwrap.String(s, width), width)
}
