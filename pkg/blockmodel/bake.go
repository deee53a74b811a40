package blockmodel

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"voxmodel/pkg/atlas"
	"voxmodel/pkg/geom"
)

// BakeState is the spatial transform applied to a model while baking.
// Only the rotation component participates in cull-face remapping.
type BakeState struct {
	Rotation mgl32.Mat4
}

// IdentityState bakes the model as authored.
func IdentityState() BakeState {
	return BakeState{Rotation: mgl32.Ident4()}
}

// RotationYState rotates the model about the vertical axis by the
// given angle in degrees.
func RotationYState(degrees float32) BakeState {
	return BakeState{Rotation: mgl32.HomogRotate3DY(mgl32.DegToRad(degrees))}
}

// SpriteGetter resolves a concrete material to its renderable sprite.
type SpriteGetter func(Material) *atlas.Sprite

// BakeElements bakes an element list into renderable geometry. Face
// references are resolved through ctx, vertices through the face
// bakery, and cull directions are rotated by the state's rotation.
// bakeID identifies the bake in diagnostics, not geometry.
func BakeElements(ctx Context, elements []Element, state BakeState, overrides []Override, sprites SpriteGetter, bakeID Location) *BakedModel {
	particle := sprites(ctx.Material("particle"))
	builder := NewBuilder(ctx.AmbientOcclusion(), ctx.Gui3D(), true, ctx.Transforms(), overrides).Particle(particle)
	for i := range elements {
		bakeElement(builder, ctx, &elements[i], state, sprites, bakeID)
	}
	return builder.Build()
}

func bakeElement(builder *Builder, ctx Context, elem *Element, state BakeState, sprites SpriteGetter, bakeID Location) {
	for _, dir := range geom.Directions {
		face, ok := elem.Faces[dir]
		if !ok {
			continue
		}
		// The reference is normally "#"-prefixed; strip before lookup.
		name := strings.TrimPrefix(face.Texture, "#")
		sprite := sprites(ctx.Material(name))
		quad := BakeFace(elem, face, sprite, dir, state, bakeID)
		if face.Cull == nil {
			builder.AddUnculled(quad)
		} else {
			builder.AddCulled(geom.Rotate(state.Rotation, *face.Cull), quad)
		}
	}
}

// BakeDynamic is BakeElements with defaults for models built in code
// rather than loaded from a document: no overrides and a fixed
// synthetic bake location.
func BakeDynamic(ctx Context, elements []Element, state BakeState, sprites SpriteGetter) *BakedModel {
	return BakeElements(ctx, elements, state, nil, sprites, DynamicBakeLocation)
}

// Bake bakes the model's effective elements. Parent resolution must
// already have run, typically via a prior Materials call.
func (m *Model) Bake(ctx Context, state BakeState, overrides []Override, sprites SpriteGetter, bakeID Location) *BakedModel {
	return BakeElements(ctx, m.Elements(), state, overrides, sprites, bakeID)
}

// BakeDynamic bakes the model's effective elements with default
// parameters.
func (m *Model) BakeDynamic(ctx Context, state BakeState, sprites SpriteGetter) *BakedModel {
	return BakeDynamic(ctx, m.Elements(), state, sprites)
}
