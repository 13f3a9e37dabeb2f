// Package socialcard draws the og:image preview card shown when a docs page
// is shared on social platforms.
package socialcard

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	Width  = 1200
	Height = 630

	// The card is laid out on a small canvas with the 7x13 bitmap font and
	// scaled up, so all layout numbers below are in canvas pixels.
	scale        = 4
	canvasWidth  = Width / scale
	canvasHeight = (Height + scale - 1) / scale
	margin       = 16
	lineHeight   = 16
	maxLines     = 5
	bandHeight   = 28
)

// ErrEmptyTitle is returned when a card has no title to draw.
var ErrEmptyTitle = errors.New("socialcard: title is required")

// Card describes one social card.
type Card struct {
	Title      string
	SiteName   string
	Background color.RGBA
}

// Render draws c and writes it to w as PNG.
func Render(w io.Writer, c Card) error {
	img, err := Draw(c)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Bytes is Render into a byte slice.
func Bytes(c Card) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Draw lays out c and returns the full-size image.
func Draw(c Card) (*image.RGBA, error) {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	canvas := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: c.Background}, image.Point{}, draw.Src)

	band := image.Rect(0, canvasHeight-bandHeight, canvasWidth, canvasHeight)
	draw.Draw(canvas, band, &image.Uniform{C: shade(c.Background, 0.6)}, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.White,
		Face: face,
	}

	lines := Wrap(face, title, canvasWidth-2*margin, maxLines)
	y := margin + face.Ascent
	for _, line := range lines {
		d.Dot = fixed.P(margin, y)
		d.DrawString(line)
		y += lineHeight
	}

	if c.SiteName != "" {
		d.Dot = fixed.P(margin, canvasHeight-bandHeight/2+face.Ascent/2)
		d.DrawString(c.SiteName)
	}

	dst := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return dst, nil
}

// Wrap breaks text into at most maxLines lines no wider than width pixels
// in face. Words longer than a line are cut; overflow ends in "...".
func Wrap(face font.Face, text string, width, maxLines int) []string {
	fits := func(s string) bool {
		return font.MeasureString(face, s).Ceil() <= width
	}

	var lines []string
	var cur string
	for _, word := range strings.Fields(text) {
		for !fits(word) {
			cut := len(word) - 1
			for cut > 1 && !fits(word[:cut]) {
				cut--
			}
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		switch {
		case cur == "":
			cur = word
		case fits(cur + " " + word):
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}

	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := lines[maxLines-1]
		for last != "" && !fits(last+"...") {
			last = last[:len(last)-1]
		}
		lines[maxLines-1] = last + "..."
	}
	return lines
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
