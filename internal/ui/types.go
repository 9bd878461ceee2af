package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/harmonica"

	"keycards/internal/catalog"
	"keycards/internal/config"
	"keycards/internal/imgview"
	"keycards/internal/prefs"
	"keycards/internal/zoom"
)

// fixed chrome above the card list: title, OS buttons, category/search, divider
const headerHeight = 4

// columns between a card's left edge and its content: border and padding
const detailColOffset = 2

type FilterState struct {
	// OS buttons; oses[0] is always catalog.All
	oses    []string
	osIndex int

	// category selector; categories[0] is always catalog.All
	categories    []string
	categoryIndex int
}

type SearchState struct {
	searching   bool
	searchInput textinput.Model
	query       string // live value, not trimmed
}

type CardState struct {
	cursor   int // position in visibleIdx
	expanded int // position in visibleIdx, -1 when all collapsed
}

// ImageState is the zoom controller of the expanded card's image.
type ImageState struct {
	ctrl     *zoom.Controller
	hovering bool
	pressed  bool   // left press at rest, a release on the image collapses the card
	epoch    uint64 // bumped whenever ctrl is replaced
}

type ScrollState struct {
	animating bool
	gen       uint64 // frames from an older animation are dropped
	pos, vel  float64
	spring    harmonica.Spring
}

// cardSpan records where a rendered card sits inside the viewport content.
type cardSpan struct {
	start, height int

	// image rectangle in content coordinates, valid when hasImage
	hasImage   bool
	imgTop     int
	imgLeft    int
	imgW, imgH int
}

func (s cardSpan) contains(line int) bool {
	return line >= s.start && line < s.start+s.height
}

func (s cardSpan) inImage(line, col int) bool {
	return s.hasImage &&
		line >= s.imgTop && line < s.imgTop+s.imgH &&
		col >= s.imgLeft && col < s.imgLeft+s.imgW
}

type Model struct {
	cfg       config.Config
	catalog   *catalog.Catalog
	store     prefs.Store
	images    *imgview.Renderer
	copyFn    func(string) error
	statusMsg string

	width, height int
	dark          bool

	keys     keyMap
	help     help.Model
	viewport viewport.Model

	filter FilterState
	search SearchState

	visibleIdx []int // indices into catalog.Shortcuts
	cards      CardState
	image      ImageState
	spans      []cardSpan

	scroll ScrollState
}
