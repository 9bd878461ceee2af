package ui

import (
	"keycards/internal/catalog"
	"keycards/internal/config"
	"keycards/internal/infra/logx"
)

func (m Model) currentFilter() catalog.Filter {
	return catalog.Filter{
		OS:       m.filter.oses[m.filter.osIndex],
		Category: m.filter.categories[m.filter.categoryIndex],
		Search:   m.search.query,
	}
}

// applyFilter recomputes the visible cards and re-renders the list from
// scratch. Every card starts collapsed and old zoom state is dropped.
func (m *Model) applyFilter() {
	f := m.currentFilter()
	if m.cfg.Search.Mode == config.SearchFuzzy {
		m.visibleIdx = catalog.ApplyFuzzy(m.catalog.Shortcuts, f, catalog.FuzzyConfig{
			MinCoverage: m.cfg.Search.Fuzzy.MinCoverage,
			MaxSpread:   m.cfg.Search.Fuzzy.MaxSpread,
		})
	} else {
		m.visibleIdx = catalog.Apply(m.catalog.Shortcuts, f)
	}
	logx.Debugf("filter os=%q category=%q search=%q: %d of %d", f.OS, f.Category, f.Search,
		len(m.visibleIdx), len(m.catalog.Shortcuts))

	m.cards.cursor = 0
	m.cards.expanded = -1
	m.resetImage()
	m.updateContent()
	m.stopScroll()
	m.viewport.GotoTop()
}

func (m *Model) setOS(i int) {
	n := len(m.filter.oses)
	m.filter.osIndex = ((i % n) + n) % n
	m.applyFilter()
}

func (m *Model) setCategory(i int) {
	n := len(m.filter.categories)
	m.filter.categoryIndex = ((i % n) + n) % n
	m.applyFilter()
}

func (m Model) itemsLen() int { return len(m.visibleIdx) }

func (m Model) itemAt(pos int) catalog.Shortcut {
	return m.catalog.Shortcuts[m.visibleIdx[pos]]
}
