// Package atlas stitches individual texture tiles into a single sprite
// sheet and resolves texture names to sprites on that sheet. Names that
// were never stitched resolve to a generated missing-texture
// placeholder instead of failing.
package atlas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Sprite is a named window on the stitched sheet. Coordinates are
// normalized to [0,1] over the full sheet.
type Sprite struct {
	Name           string
	U0, V0, U1, V1 float32
}

// UV maps sprite-local coordinates in [0,1] into sheet coordinates.
func (s *Sprite) UV(u, v float32) (float32, float32) {
	return s.U0 + u*(s.U1-s.U0), s.V0 + v*(s.V1-s.V0)
}

type entry struct {
	name string
	img  image.Image
}

// Atlas accumulates tiles and stitches them into a square-ish grid.
// Slot 0 always holds the missing-texture placeholder.
type Atlas struct {
	tile    int
	entries []entry
	index   map[string]int
	sprites map[string]*Sprite
	missing *Sprite
	sheet   *image.RGBA
}

// New creates an atlas with the given square tile size in pixels.
func New(tileSize int) *Atlas {
	return &Atlas{
		tile:    tileSize,
		index:   make(map[string]int),
		sprites: make(map[string]*Sprite),
	}
}

// Add registers a tile under name. Adding the same name twice keeps the
// first image. Tiles that do not match the atlas tile size are scaled
// with nearest-neighbor filtering at build time.
func (a *Atlas) Add(name string, img image.Image) {
	if _, ok := a.index[name]; ok {
		return
	}
	a.index[name] = len(a.entries)
	a.entries = append(a.entries, entry{name: name, img: img})
}

// AddFile decodes a PNG from disk and registers it under name.
func (a *Atlas) AddFile(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open texture file: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("could not decode texture %s: %w", path, err)
	}
	a.Add(name, img)
	return nil
}

// Build composites all registered tiles plus the placeholder into one
// sheet and computes every sprite's UV window. The returned image is
// the stitched sheet; Sprite lookups are valid afterwards.
func (a *Atlas) Build() *image.RGBA {
	count := len(a.entries) + 1 // slot 0 is the placeholder
	cols := int(math.Ceil(math.Sqrt(float64(count))))
	rows := (count + cols - 1) / cols

	sheet := image.NewRGBA(image.Rect(0, 0, cols*a.tile, rows*a.tile))
	a.blit(sheet, 0, MissingTile(a.tile))
	a.missing = a.spriteAt("missing", 0, cols, rows)

	for i, e := range a.entries {
		a.blit(sheet, i+1, e.img)
		a.sprites[e.name] = a.spriteAt(e.name, i+1, cols, rows)
	}
	a.sheet = sheet
	return sheet
}

// Sheet returns the stitched image, or nil before Build.
func (a *Atlas) Sheet() *image.RGBA {
	return a.sheet
}

// Sprite returns the sprite stitched under name, or the missing
// placeholder when the name is unknown. Valid after Build.
func (a *Atlas) Sprite(name string) *Sprite {
	if s, ok := a.sprites[name]; ok {
		return s
	}
	return a.missing
}

// Missing returns the placeholder sprite. Valid after Build.
func (a *Atlas) Missing() *Sprite {
	return a.missing
}

func (a *Atlas) blit(sheet *image.RGBA, slot int, img image.Image) {
	cols := sheet.Bounds().Dx() / a.tile
	x := (slot % cols) * a.tile
	y := (slot / cols) * a.tile
	dst := image.Rect(x, y, x+a.tile, y+a.tile)

	src := img.Bounds()
	if src.Dx() == a.tile && src.Dy() == a.tile {
		xdraw.Copy(sheet, dst.Min, img, src, xdraw.Src, nil)
		return
	}
	xdraw.NearestNeighbor.Scale(sheet, dst, img, src, xdraw.Src, nil)
}

func (a *Atlas) spriteAt(name string, slot, cols, rows int) *Sprite {
	x := slot % cols
	y := slot / cols
	return &Sprite{
		Name: name,
		U0:   float32(x) / float32(cols),
		V0:   float32(y) / float32(rows),
		U1:   float32(x+1) / float32(cols),
		V1:   float32(y+1) / float32(rows),
	}
}

var (
	missingMagenta = color.RGBA{R: 248, G: 0, B: 248, A: 255}
	missingBlack   = color.RGBA{A: 255}
)

// MissingTile generates the magenta/black checkerboard placeholder
// substituted for unresolved textures.
func MissingTile(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := size / 2
	if half == 0 {
		half = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/half+y/half)%2 == 0 {
				img.SetRGBA(x, y, missingMagenta)
			} else {
				img.SetRGBA(x, y, missingBlack)
			}
		}
	}
	return img
}
