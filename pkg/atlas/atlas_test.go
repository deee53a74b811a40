package atlas

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidTile(size int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func TestBuildStitchesTiles(t *testing.T) {
	a := New(16)
	a.Add("red", solidTile(16, red))
	a.Add("blue", solidTile(16, blue))
	sheet := a.Build()

	// Three slots (placeholder + two tiles) pack into a 2x2 grid.
	assert.Equal(t, 32, sheet.Bounds().Dx())
	assert.Equal(t, 32, sheet.Bounds().Dy())

	// Slot 0 is the placeholder, tiles follow in insertion order.
	assert.Equal(t, red, sheet.RGBAAt(16+8, 8))
	assert.Equal(t, blue, sheet.RGBAAt(8, 16+8))
}

func TestSpriteWindows(t *testing.T) {
	a := New(16)
	a.Add("red", solidTile(16, red))
	a.Add("blue", solidTile(16, blue))
	a.Build()

	redSprite := a.Sprite("red")
	require.NotNil(t, redSprite)
	assert.Equal(t, "red", redSprite.Name)
	assert.InDelta(t, 0.5, redSprite.U0, 1e-6)
	assert.InDelta(t, 0.0, redSprite.V0, 1e-6)
	assert.InDelta(t, 1.0, redSprite.U1, 1e-6)
	assert.InDelta(t, 0.5, redSprite.V1, 1e-6)

	u, v := redSprite.UV(0.5, 0.5)
	assert.InDelta(t, 0.75, u, 1e-6)
	assert.InDelta(t, 0.25, v, 1e-6)

	blueSprite := a.Sprite("blue")
	assert.NotEqual(t, *redSprite, *blueSprite)
}

func TestUnknownNameFallsBackToMissing(t *testing.T) {
	a := New(16)
	a.Add("red", solidTile(16, red))
	a.Build()

	s := a.Sprite("never_registered")
	require.NotNil(t, s)
	assert.Same(t, a.Missing(), s)
}

func TestMismatchedTileIsScaled(t *testing.T) {
	a := New(16)
	a.Add("small", solidTile(8, red))
	sheet := a.Build()

	// Two slots pack into a 2x1 grid; the scaled tile fills slot 1.
	assert.Equal(t, red, sheet.RGBAAt(16, 0))
	assert.Equal(t, red, sheet.RGBAAt(31, 15))
}

func TestDuplicateAddKeepsFirst(t *testing.T) {
	a := New(16)
	a.Add("tile", solidTile(16, red))
	a.Add("tile", solidTile(16, blue))
	sheet := a.Build()

	assert.Equal(t, red, sheet.RGBAAt(16+8, 8))
}

func TestMissingTilePattern(t *testing.T) {
	tile := MissingTile(16)
	magenta := color.RGBA{R: 248, B: 248, A: 255}
	black := color.RGBA{A: 255}

	assert.Equal(t, magenta, tile.RGBAAt(0, 0))
	assert.Equal(t, black, tile.RGBAAt(8, 0))
	assert.Equal(t, black, tile.RGBAAt(0, 8))
	assert.Equal(t, magenta, tile.RGBAAt(8, 8))
}
