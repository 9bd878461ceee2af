package ui

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"

	"keycards/internal/catalog"
	"keycards/internal/config"
	"keycards/internal/prefs"
)

const testCatalogYAML = `shortcuts:
  - os: mac
    category: Browser
    keys: Cmd+T
    description: Open new tab in browser window for current session
    detailed: Opens a new tab
  - os: windows
    category: Browser
    keys: Ctrl+T
    description: Open new tab
    detailed: Opens a new tab
  - os: mac
    category: System
    keys: Cmd+Shift+4
    description: Capture a region
    detailed: images/red.png
  - os: linux
    category: Editor
    keys: Ctrl+S
    description: Save file
    detailed: Writes the buffer to disk
  - os: windows
    category: System
    keys: Win+L
    description: Lock screen
`

func redPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	fsys := fstest.MapFS{
		"shortcuts.yaml": {Data: []byte(testCatalogYAML)},
		"images/red.png": {Data: redPNG(t)},
	}
	cat, err := catalog.LoadFS(fsys, "")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

// createTestModel returns a sized model over the test catalog.
func createTestModel(t *testing.T, store prefs.Store) Model {
	t.Helper()
	m := InitialModel(testCatalog(t), config.Default(), store)
	m.copyFn = func(string) error { return nil }
	return update(m, tea.WindowSizeMsg{Width: 80, Height: 40})
}

func update(m Model, msg tea.Msg) Model {
	nm, _ := m.Update(msg)
	return nm.(Model)
}

func updateCmd(m Model, msg tea.Msg) (Model, tea.Cmd) {
	nm, cmd := m.Update(msg)
	return nm.(Model), cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

// cardScreenY returns a screen row inside the card at pos.
func cardScreenY(m Model, pos int) int {
	return headerHeight + m.spans[pos].start + 1 - m.viewport.YOffset
}

// failingStore rejects every write.
type failingStore struct{ *prefs.MemoryStore }

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("disk full")
}
