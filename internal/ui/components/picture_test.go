package components

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sprouts/internal/content"
)

func pngURI(t *testing.T, w, h int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return content.EncodeDataURI("image/png", buf.Bytes())
}

func TestPictureRendersHalfBlocks(t *testing.T) {
	uri := pngURI(t, 32, 32, color.RGBA{R: 255, A: 255})

	out := Picture(uri, "apple", 8, 8)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, 32, strings.Count(out, halfBlock))
}

func TestPictureCachesBySize(t *testing.T) {
	uri := pngURI(t, 8, 8, color.RGBA{B: 255, A: 255})

	first := Picture(uri, "ball", 4, 2)
	second := Picture(uri, "ball", 4, 2)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, Picture(uri, "ball", 6, 3))
}

func TestPicturePlaceholder(t *testing.T) {
	assert.Contains(t, Picture("", "kite", 10, 5), "kite")
	assert.Contains(t, Picture("data:image/png;base64,!!!", "kite", 10, 5), "kite")
	assert.Equal(t, "kite", Picture("", "kite", 1, 1))
}

func TestAverageTransparentIsBackground(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	c := average(img, 0, 2, 0, 2)
	assert.Equal(t, "#0f172a", c.Hex())
}
