package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type hitKind int

const (
	hitNone hitKind = iota
	hitOS
	hitCategory
	hitSearch
	hitDark
	hitTop
)

// hitRange is a clickable span on one screen row.
type hitRange struct {
	kind         hitKind
	row          int
	startX, endX int
	value        int
}

func (h hitRange) contains(x, y int) bool {
	return y == h.row && x >= h.startX && x < h.endX
}

func hitAt(hits []hitRange, x, y int) hitRange {
	for _, h := range hits {
		if h.contains(x, y) {
			return h
		}
	}
	return hitRange{}
}

// layout sizes the viewport between header and footer and re-renders.
func (m *Model) layout() {
	m.help.Width = m.width
	m.viewport.Width = m.width
	h := m.height - headerHeight - m.footerHeight()
	if h < 3 {
		h = 3
	}
	m.viewport.Height = h
	m.updateContent()
	m.ensureCursorVisible()
}

func (m Model) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

func (m Model) footerTop() int {
	return headerHeight + m.viewport.Height
}

// renderHeader renders the fixed rows above the list and the click targets
// on them, in screen coordinates.
func (m Model) renderHeader() (string, []hitRange) {
	t := m.theme()
	var hits []hitRange

	// row 0: title and dark-mode toggle
	title := t.title.Render("keycards")
	label := "[ dark mode: off ]"
	if m.dark {
		label = "[ dark mode: on ]"
	}
	dark := t.button.Render(label)
	tw, dw := lipgloss.Width(title), lipgloss.Width(dark)
	x := m.width - dw
	if x < tw+2 {
		x = tw + 2
	}
	row0 := title + strings.Repeat(" ", x-tw) + dark
	hits = append(hits, hitRange{kind: hitDark, row: 0, startX: x, endX: x + dw})

	// row 1: OS buttons
	var b strings.Builder
	const osLabel = "OS: "
	b.WriteString(t.subtle.Render(osLabel))
	x = lipgloss.Width(osLabel)
	for i, osv := range m.filter.oses {
		if i > 0 {
			b.WriteString(" ")
			x++
		}
		st := t.button
		if i == m.filter.osIndex {
			st = t.buttonActive
		}
		btn := st.Render(" " + osv + " ")
		w := lipgloss.Width(btn)
		hits = append(hits, hitRange{kind: hitOS, row: 1, startX: x, endX: x + w, value: i})
		b.WriteString(btn)
		x += w
	}
	row1 := b.String()

	// row 2: category selector and search box
	const catLabel, searchLabel = "Category: ", "   Search: "
	sel := t.button.Render("‹ " + m.filter.categories[m.filter.categoryIndex] + " ›")
	x = lipgloss.Width(catLabel)
	sw := lipgloss.Width(sel)
	hits = append(hits, hitRange{kind: hitCategory, row: 2, startX: x, endX: x + sw})
	x += sw
	var input string
	switch {
	case m.search.searching:
		input = m.search.searchInput.View()
	case m.search.query != "":
		input = m.search.query
	default:
		input = t.subtle.Render("press / to search")
	}
	end := m.width
	if end <= x {
		end = x + lipgloss.Width(searchLabel) + lipgloss.Width(input)
	}
	hits = append(hits, hitRange{kind: hitSearch, row: 2, startX: x, endX: end})
	row2 := t.subtle.Render(catLabel) + sel + t.subtle.Render(searchLabel) + input

	width := m.width
	if width < 1 {
		width = 1
	}
	row3 := t.divider.Render(strings.Repeat("─", width))

	return strings.Join([]string{row0, row1, row2, row3}, "\n"), hits
}

// renderFooterBar renders the status row, the scroll-to-top button and help.
func (m Model) renderFooterBar() (string, []hitRange) {
	t := m.theme()
	var hits []hitRange

	status := fmt.Sprintf("%d of %d shortcuts", m.itemsLen(), len(m.catalog.Shortcuts))
	if m.statusMsg != "" {
		status += "  |  " + m.statusMsg
	}
	row := t.subtle.Render(status)
	if m.showTopButton() {
		btn := t.buttonActive.Render(" ↑ top ")
		sw, bw := lipgloss.Width(row), lipgloss.Width(btn)
		x := m.width - bw
		if x < sw+1 {
			x = sw + 1
		}
		row += strings.Repeat(" ", x-sw) + btn
		hits = append(hits, hitRange{kind: hitTop, row: m.footerTop(), startX: x, endX: x + bw})
	}
	return row + "\n" + m.help.View(m.keys), hits
}
