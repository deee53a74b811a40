package blockmodel

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxmodel/pkg/atlas"
	"voxmodel/pkg/geom"
)

// Vertex is one corner of a baked quad. U and V are sheet coordinates
// on the sprite atlas.
type Vertex struct {
	Pos  mgl32.Vec3
	U, V float32
}

// BakedQuad is one pre-transformed, textured face ready for the
// rasterizer.
type BakedQuad struct {
	Vertices  [4]Vertex
	Direction geom.Direction
	Sprite    *atlas.Sprite
	Shade     bool
	TintIndex int
	// Source is the bake location, carried for diagnostics only.
	Source Location
}

// BakedModel is the immutable result of baking an element list.
type BakedModel struct {
	unculled   []BakedQuad
	culled     map[geom.Direction][]BakedQuad
	ao         bool
	gui3d      bool
	blockLight bool
	transforms map[string]Display
	overrides  []Override
	particle   *atlas.Sprite
}

// Quads returns the quads rendered when the neighbor in cull is not
// opaque; a nil cull returns the always-rendered quads.
func (m *BakedModel) Quads(cull *geom.Direction) []BakedQuad {
	if cull == nil {
		return m.unculled
	}
	return m.culled[*cull]
}

// QuadCount reports the total number of quads over all cull buckets.
func (m *BakedModel) QuadCount() int {
	n := len(m.unculled)
	for _, quads := range m.culled {
		n += len(quads)
	}
	return n
}

func (m *BakedModel) AmbientOcclusion() bool { return m.ao }

func (m *BakedModel) Gui3D() bool { return m.gui3d }

// UsesBlockLight is fixed true for this model kind.
func (m *BakedModel) UsesBlockLight() bool { return m.blockLight }

func (m *BakedModel) Transforms() map[string]Display { return m.transforms }

func (m *BakedModel) Overrides() []Override { return m.overrides }

// Particle returns the sprite used for particle and UI rendering.
func (m *BakedModel) Particle() *atlas.Sprite { return m.particle }

// Builder accumulates quads into a BakedModel. The built value is not
// mutated afterwards.
type Builder struct {
	model BakedModel
}

// NewBuilder starts a baked model with its rendering flags, display
// transforms and item overrides.
func NewBuilder(ao, gui3d, blockLight bool, transforms map[string]Display, overrides []Override) *Builder {
	return &Builder{model: BakedModel{
		culled:     make(map[geom.Direction][]BakedQuad),
		ao:         ao,
		gui3d:      gui3d,
		blockLight: blockLight,
		transforms: transforms,
		overrides:  overrides,
	}}
}

// Particle sets the particle sprite.
func (b *Builder) Particle(s *atlas.Sprite) *Builder {
	b.model.particle = s
	return b
}

// AddUnculled adds a quad that is always rendered.
func (b *Builder) AddUnculled(q BakedQuad) {
	b.model.unculled = append(b.model.unculled, q)
}

// AddCulled adds a quad hidden when the neighbor in cull is opaque.
func (b *Builder) AddCulled(cull geom.Direction, q BakedQuad) {
	b.model.culled[cull] = append(b.model.culled[cull], q)
}

// Build finalizes the baked model.
func (b *Builder) Build() *BakedModel {
	return &b.model
}
