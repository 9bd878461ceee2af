package ui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"keycards/internal/catalog"
	"keycards/internal/config"
	"keycards/internal/imgview"
	"keycards/internal/prefs"
)

// InitialModel builds the browser over cat. store may be nil, in which case
// the dark-mode flag lives only for this session.
func InitialModel(cat *catalog.Catalog, cfg config.Config, store prefs.Store) Model {
	m := Model{
		cfg:     cfg,
		catalog: cat,
		store:   store,
		copyFn:  clipboard.WriteAll,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	m.images = imgview.New(cat.Open)

	m.filter.oses = append([]string{catalog.All}, catalog.OSes(cat.Shortcuts)...)
	m.filter.categories = append([]string{catalog.All}, catalog.Categories(cat.Shortcuts)...)

	si := textinput.New()
	si.Placeholder = "description, details or keys…"
	si.Prompt = ""
	si.CharLimit = 200
	si.Width = 30
	m.search.searchInput = si

	m.viewport = viewport.New(80, 20)
	m.scroll.spring = harmonica.NewSpring(harmonica.FPS(scrollFPS), 6.0, 1.0)

	m.applyFilter()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.store == nil {
		return nil
	}
	return loadDarkModeCmd(m.store)
}
