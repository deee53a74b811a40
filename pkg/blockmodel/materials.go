package blockmodel

import (
	"voxmodel/pkg/geom"
)

// MissingTexture records one face reference that resolved to the
// missing-texture placeholder, paired with the model that used it.
type MissingTexture struct {
	Reference string
	Model     string
}

// MissingTextureSet is the caller-supplied side channel for
// missing-texture diagnostics.
type MissingTextureSet map[MissingTexture]struct{}

// MaterialSet is a deduplicated set of concrete materials.
type MaterialSet map[Material]struct{}

// CollectMaterials computes every concrete texture the given elements
// depend on, for preloading into the atlas. The context's "particle"
// texture is always included, even for an empty element list. Faces
// whose reference resolves to the missing texture add a diagnostic to
// report (when non-nil); collection itself never fails.
func CollectMaterials(ctx Context, elements []Element, report MissingTextureSet) MaterialSet {
	materials := MaterialSet{ctx.Material("particle"): {}}
	for _, elem := range elements {
		for _, dir := range geom.Directions {
			face, ok := elem.Faces[dir]
			if !ok {
				continue
			}
			material := ctx.Material(face.Texture)
			if material.Missing() && report != nil {
				report[MissingTexture{Reference: face.Texture, Model: ctx.ModelName()}] = struct{}{}
			}
			materials[material] = struct{}{}
		}
	}
	return materials
}

// Materials resolves the model's parent chain and reports the texture
// dependencies of its effective elements.
func (m *Model) Materials(ctx Context, getter Getter, report MissingTextureSet) (MaterialSet, error) {
	if err := m.ResolveParent(ctx, getter); err != nil {
		return nil, err
	}
	return CollectMaterials(ctx, m.Elements(), report), nil
}
