// Package imgview draws catalog images into the terminal as half-block cells.
package imgview

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Opener resolves an image reference.
type Opener func(ref string) (fs.File, error)

// Background fills frame pixels the image does not cover.
var Background = color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}

// Renderer decodes images on first use and keeps them for later frames.
type Renderer struct {
	open  Opener
	cache map[string]image.Image
}

func New(open Opener) *Renderer {
	return &Renderer{open: open, cache: make(map[string]image.Image)}
}

// Load returns the decoded image for ref.
func (r *Renderer) Load(ref string) (image.Image, error) {
	if img, ok := r.cache[ref]; ok {
		return img, nil
	}
	if r.open == nil {
		return nil, fmt.Errorf("open %s: %w", ref, fs.ErrNotExist)
	}
	f, err := r.open(ref)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", ref, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", ref, err)
	}
	r.cache[ref] = img
	return img, nil
}

// View is the transform applied to an image. X is measured in columns and
// Y in rows, the units mouse events arrive in.
type View struct {
	Scale float64
	X, Y  float64
}

// Render draws ref into cols x rows cells.
func (r *Renderer) Render(ref string, cols, rows int, v View) (string, error) {
	img, err := r.Load(ref)
	if err != nil {
		return "", err
	}
	return Cells(Frame(img, cols, rows*2, v.Scale, v.X, v.Y*2)), nil
}

// Frame samples src into a w x h pixel frame. The frame shows the image
// stretched to fit, then scaled by s around the centre and shifted by
// (tx, ty) frame pixels in the scaled space, like a CSS
// "scale(s) translate(tx, ty)" transform.
func Frame(src image.Image, w, h int, s, tx, ty float64) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	if w <= 0 || h <= 0 || src == nil {
		return dst
	}
	if s < 1 {
		s = 1
	}

	b := src.Bounds()
	kx := float64(b.Dx()) / float64(w)
	ky := float64(b.Dy()) / float64(h)
	cx, cy := float64(w)/2, float64(h)/2

	// visible window in source pixels
	x0 := (cx - cx/s - tx) * kx
	x1 := (cx + cx/s - tx) * kx
	y0 := (cy - cy/s - ty) * ky
	y1 := (cy + cy/s - ty) * ky

	sr := image.Rect(
		int(math.Floor(math.Max(x0, 0))),
		int(math.Floor(math.Max(y0, 0))),
		int(math.Ceil(math.Min(x1, float64(b.Dx())))),
		int(math.Ceil(math.Min(y1, float64(b.Dy())))),
	)
	if sr.Empty() {
		return dst
	}

	// map the integral source window back to frame pixels
	toDst := func(p, k, c, t float64) int {
		return int(math.Round(c + s*(p/k-c+t)))
	}
	dr := image.Rect(
		toDst(float64(sr.Min.X), kx, cx, tx),
		toDst(float64(sr.Min.Y), ky, cy, ty),
		toDst(float64(sr.Max.X), kx, cx, tx),
		toDst(float64(sr.Max.Y), ky, cy, ty),
	)
	if dr.Empty() {
		return dst
	}
	draw.ApproxBiLinear.Scale(dst, dr, src, sr.Add(b.Min), draw.Over, nil)
	return dst
}

// Cells packs two frame rows into one line of upper-half blocks.
func Cells(frame *image.RGBA) string {
	b := frame.Bounds()
	var out strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			out.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := frame.RGBAAt(x, y)
			bot := Background
			if y+1 < b.Max.Y {
				bot = frame.RGBAAt(x, y+1)
			}
			out.WriteString(lipgloss.NewStyle().
				Foreground(hex(top)).
				Background(hex(bot)).
				Render("▀"))
		}
	}
	return out.String()
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
