package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionPad = 6

// StampCaption returns a copy of img with a caption strip appended below it.
// A blank caption returns img unchanged.
func StampCaption(img image.Image, text string) image.Image {
	text = strings.TrimSpace(text)
	if img == nil || text == "" {
		return img
	}
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()

	b := img.Bounds()
	dr := &font.Drawer{Face: face}
	lines := wrapCaption(dr, text, b.Dx()-2*captionPad)
	strip := len(lines)*lineHeight + 2*captionPad

	out := image.NewRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y+strip))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, b, img, b.Min, draw.Src)

	dr.Dst = out
	dr.Src = image.NewUniform(color.RGBA{R: 60, G: 60, B: 60, A: 255})
	y := b.Max.Y + captionPad + face.Metrics().Ascent.Ceil()
	for _, line := range lines {
		dr.Dot = fixed.Point26_6{X: fixed.I(b.Min.X + captionPad), Y: fixed.I(y)}
		dr.DrawString(line)
		y += lineHeight
	}
	return out
}

func wrapCaption(dr *font.Drawer, text string, width int) []string {
	words := strings.Fields(text)
	var lines []string
	var cur string
	for _, w := range words {
		next := w
		if cur != "" {
			next = cur + " " + w
		}
		if cur != "" && dr.MeasureString(next).Ceil() > width {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// RenderCaptionedPNG draws the figure as PNG with caption stamped below.
func (f *Figure) RenderCaptionedPNG(w io.Writer, caption string) error {
	var buf bytes.Buffer
	if err := f.Render(&buf, FormatPNG); err != nil {
		return err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return fmt.Errorf("decode %s: %w", f.Name, err)
	}
	return png.Encode(w, StampCaption(img, caption))
}
