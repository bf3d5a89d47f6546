package components

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // decoders for generated pictures
	_ "image/png"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/abhisek/sprouts/internal/content"
	"github.com/abhisek/sprouts/internal/ui/theme"
)

const halfBlock = "▀"

var (
	pictureMu    sync.Mutex
	pictureCache = map[string]string{}
)

// Picture renders a data URI image with half-block characters so it
// fits in cols x rows cells. A missing or unreadable image renders a
// placeholder with alt as its caption.
func Picture(uri, alt string, cols, rows int) string {
	size := min(cols, rows*2)
	if size < 2 {
		return alt
	}
	if uri == "" {
		return placeholder(alt, size)
	}

	key := fmt.Sprintf("%d:%s", size, uri)
	pictureMu.Lock()
	cached, ok := pictureCache[key]
	pictureMu.Unlock()
	if ok {
		return cached
	}

	img, err := decodePicture(uri)
	if err != nil {
		return placeholder(alt, size)
	}
	out := renderHalfBlocks(img, size, size/2)

	pictureMu.Lock()
	if len(pictureCache) > 64 {
		clear(pictureCache)
	}
	pictureCache[key] = out
	pictureMu.Unlock()
	return out
}

func decodePicture(uri string) (image.Image, error) {
	_, data, err := content.DecodeDataURI(uri)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode picture: %w", err)
	}
	return img, nil
}

// renderHalfBlocks scales img to cols x 2*rows pixels by box averaging
// and draws two pixels per cell.
func renderHalfBlocks(img image.Image, cols, rows int) string {
	b := img.Bounds()
	px := func(x, y int) colorful.Color {
		x0 := b.Min.X + x*b.Dx()/cols
		x1 := max(b.Min.X+(x+1)*b.Dx()/cols, x0+1)
		y0 := b.Min.Y + y*b.Dy()/(rows*2)
		y1 := max(b.Min.Y+(y+1)*b.Dy()/(rows*2), y0+1)
		return average(img, x0, x1, y0, y1)
	}

	var sb strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top, bottom := px(x, 2*y), px(x, 2*y+1)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex())).
				Render(halfBlock))
		}
		if y < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// average blends a pixel box in linear RGB. Transparent pixels count as
// the dark background.
func average(img image.Image, x0, x1, y0, y1 int) colorful.Color {
	bg, _ := colorful.Hex("#0F172A")
	var r, g, b float64
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				c = bg
			}
			lr, lg, lb := c.LinearRgb()
			r, g, b = r+lr, g+lg, b+lb
			n++
		}
	}
	if n == 0 {
		return bg
	}
	return colorful.LinearRgb(r/float64(n), g/float64(n), b/float64(n)).Clamped()
}

func placeholder(alt string, size int) string {
	return lipgloss.NewStyle().
		Width(size).
		Height(size/2).
		Align(lipgloss.Center, lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.TextDim).
		Render(alt)
}
