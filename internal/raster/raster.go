// Package raster turns card snapshots into images, with a blurred drop
// shadow standing in for the terminal's shade glyphs.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"cardpanel/internal/card"

	"github.com/charmbracelet/x/ansi"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrNoSnapshot is returned when there is nothing to draw.
var ErrNoSnapshot = errors.New("no snapshot")

// Cell size of basicfont.Face7x13.
const (
	CellWidth  = 7
	CellHeight = 13
)

// Options controls colors and the shadow offset.
type Options struct {
	Background   color.Color
	Foreground   color.Color
	ShadowColor  color.Color
	ShadowOffset image.Point
}

// DefaultOptions draws light text on a dark card with a shadow cast
// slightly downward.
func DefaultOptions() Options {
	return Options{
		Background:   color.NRGBA{R: 30, G: 30, B: 35, A: 255},
		Foreground:   color.NRGBA{R: 220, G: 220, B: 220, A: 255},
		ShadowColor:  color.Black,
		ShadowOffset: image.Pt(0, 3),
	}
}

// basicfont covers ASCII only
var asciiBorders = strings.NewReplacer(
	"╭", "+", "╮", "+", "╰", "+", "╯", "+",
	"┌", "+", "┐", "+", "└", "+", "┘", "+",
	"─", "-", "│", "|",
	"░", " ", "▒", " ", "▓", " ", "█", " ",
)

// Render draws the snapshot. The image is padded on every side by the
// shadow radius so the blur is not cut off, unless the snapshot clips to
// its bounds.
func Render(snap *card.Snapshot, opts Options) (*image.NRGBA, error) {
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	lines := strings.Split(asciiBorders.Replace(ansi.Strip(snap.Content)), "\n")
	cols := 0
	for _, l := range lines {
		cols = max(cols, len([]rune(l)))
	}
	if cols == 0 {
		return nil, fmt.Errorf("render snapshot %s: %w", snap.ID, card.ErrEmptyRegion)
	}
	cardW, cardH := cols*CellWidth, len(lines)*CellHeight

	pad := 0
	if !snap.ClipsToBounds {
		pad = int(math.Ceil(snap.Shadow.Radius)) + max(abs(opts.ShadowOffset.X), abs(opts.ShadowOffset.Y))
	}
	canvas := imaging.New(cardW+2*pad, cardH+2*pad, color.Transparent)
	origin := image.Pt(pad, pad)

	if !snap.ClipsToBounds && snap.Shadow.Opacity > 0 {
		shadow := imaging.New(canvas.Rect.Dx(), canvas.Rect.Dy(), color.Transparent)
		body := imaging.New(cardW, cardH, opts.ShadowColor)
		shadow = imaging.Paste(shadow, body, origin.Add(opts.ShadowOffset))
		if snap.Shadow.Radius > 0 {
			shadow = imaging.Blur(shadow, snap.Shadow.Radius/2)
		}
		canvas = imaging.Overlay(canvas, shadow, image.Pt(0, 0), snap.Shadow.Opacity)
	}

	face := imaging.New(cardW, cardH, opts.Background)
	d := &font.Drawer{
		Dst:  face,
		Src:  image.NewUniform(opts.Foreground),
		Face: basicfont.Face7x13,
	}
	for i, l := range lines {
		d.Dot = fixed.P(0, i*CellHeight+basicfont.Face7x13.Ascent)
		d.DrawString(l)
	}
	return imaging.Overlay(canvas, face, origin, 1), nil
}

// WritePNG saves an image; the format follows the path's extension.
func WritePNG(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
