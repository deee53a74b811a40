package blockmodel

import (
	"strings"
)

// referenceDepth caps symbolic reference chains ("#a" -> "#b" -> ...)
// so that self-referential tables terminate.
const referenceDepth = 10

// Context supplies model-level data to material collection and baking.
type Context interface {
	// Material resolves a texture reference, with or without its "#"
	// marker, to a concrete material. Unresolvable names yield the
	// missing material, never an error.
	Material(name string) Material
	// ModelName identifies the model in diagnostics.
	ModelName() string
	AmbientOcclusion() bool
	Gui3D() bool
	Transforms() map[string]Display
}

// ModelContext is a Context backed by a model's own texture table and
// its resolved parent chain.
type ModelContext struct {
	Model *Model
	// Gui3d is carried through to the baked result; block models are
	// typically rendered 3D in inventories.
	Gui3d bool
}

func (c ModelContext) Material(name string) Material {
	name = strings.TrimPrefix(name, "#")
	for i := 0; i < referenceDepth; i++ {
		ref, ok := c.Model.findTexture(name)
		if !ok {
			return MissingMaterial()
		}
		if !ref.Symbolic() {
			return ref.Material()
		}
		name = ref.Name()
	}
	return MissingMaterial()
}

func (c ModelContext) ModelName() string {
	return c.Model.Name
}

func (c ModelContext) AmbientOcclusion() bool {
	for doc := c.Model; doc != nil; doc = doc.parent.model {
		if doc.AmbientOcclusion != nil {
			return *doc.AmbientOcclusion
		}
	}
	return true
}

func (c ModelContext) Gui3D() bool {
	return c.Gui3d
}

func (c ModelContext) Transforms() map[string]Display {
	for doc := c.Model; doc != nil; doc = doc.parent.model {
		if len(doc.Display) > 0 {
			return doc.Display
		}
	}
	return nil
}
