package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"keycards/internal/prefs"
	"keycards/internal/zoom"
)

// ---------- Messages / Cmds ----------

type darkModeLoadedMsg struct {
	on  bool
	err error
}

type darkModeSavedMsg struct {
	on  bool
	err error
}

// zoomClearMsg fires ClearDelay after the pointer left a zoomed image.
type zoomClearMsg struct {
	epoch uint64
	token uint64
}

type copiedMsg struct {
	keys string
	err  error
}

const storeTimeout = 5 * time.Second

func loadDarkModeCmd(store prefs.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		on, err := prefs.LoadDarkMode(ctx, store)
		return darkModeLoadedMsg{on: on, err: err}
	}
}

func saveDarkModeCmd(store prefs.Store, on bool) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return darkModeSavedMsg{on: on, err: prefs.SaveDarkMode(ctx, store, on)}
	}
}

func zoomClearCmd(epoch, token uint64) tea.Cmd {
	return tea.Tick(zoom.ClearDelay, func(time.Time) tea.Msg {
		return zoomClearMsg{epoch: epoch, token: token}
	})
}

func copyKeysCmd(copyFn func(string) error, keys string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{keys: keys, err: copyFn(keys)}
	}
}
