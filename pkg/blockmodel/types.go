// Package blockmodel implements the block-geometry model core: parsing
// model documents, resolving parent chains and texture references, and
// baking cuboid elements into renderable quads.
package blockmodel

import (
	"voxmodel/pkg/geom"
)

// Material identifies a concrete texture on a named atlas sheet.
type Material struct {
	Atlas   Location
	Texture Location
}

// BlockMaterial places a texture on the block atlas.
func BlockMaterial(texture Location) Material {
	return Material{Atlas: BlockAtlasLocation, Texture: texture}
}

// MissingMaterial is the material substituted for unresolvable
// texture references.
func MissingMaterial() Material {
	return BlockMaterial(MissingTextureLocation)
}

// Missing reports whether m resolves to the missing-texture placeholder.
func (m Material) Missing() bool {
	return m.Texture == MissingTextureLocation
}

// TextureRef is a texture table entry: either a concrete material or a
// symbolic "#name" reference into another entry. The variant is decided
// once at parse time.
type TextureRef struct {
	material Material
	name     string
	symbolic bool
}

// ConcreteRef builds a resolved texture reference.
func ConcreteRef(m Material) TextureRef {
	return TextureRef{material: m}
}

// SymbolicRef builds a reference to another texture table entry by name
// (without the "#" marker).
func SymbolicRef(name string) TextureRef {
	return TextureRef{name: name, symbolic: true}
}

// Symbolic reports whether r refers to another table entry.
func (r TextureRef) Symbolic() bool {
	return r.symbolic
}

// Material returns the concrete material; only meaningful when the
// reference is not symbolic.
func (r TextureRef) Material() Material {
	return r.material
}

// Name returns the referenced entry name for symbolic references.
func (r TextureRef) Name() string {
	return r.name
}

// Face is one directional side of an element.
type Face struct {
	// Texture is the raw reference, usually "#name".
	Texture string
	// Cull is the direction in which the face is hidden when the
	// neighboring block there is opaque; nil means always rendered.
	Cull *geom.Direction
	// UV is the texture window in 0..16 units; nil uses the full tile.
	UV        *[4]float32
	Rotation  int
	TintIndex *int
}

// Rotation is an optional per-element rotation about an axis.
type Rotation struct {
	Origin  [3]float32 `json:"origin"`
	Angle   float32    `json:"angle"`
	Axis    string     `json:"axis"`
	Rescale bool       `json:"rescale"`
}

// Element is an immutable cuboid with up to six directional faces.
// Coordinates are in 0..16 model units.
type Element struct {
	From     [3]float32
	To       [3]float32
	Rotation *Rotation
	Shade    *bool
	Faces    map[geom.Direction]Face
}

// Display describes how the model is positioned in a named display
// context (gui, ground, ...).
type Display struct {
	Rotation    [3]float32 `json:"rotation"`
	Translation [3]float32 `json:"translation"`
	Scale       [3]float32 `json:"scale"`
}

// Override maps an item predicate to an alternative model.
type Override struct {
	Predicate map[string]float32 `json:"predicate"`
	Model     string             `json:"model"`
}

// parentSlot is the two-state parent link: a pending reference until
// resolution runs, then the resolved document. The missing-model
// sentinel is a valid resolved value.
type parentSlot struct {
	ref   *Location
	model *Model
}

func (s *parentSlot) resolved() bool {
	return s.model != nil
}

// Model is a parsed block-model document.
type Model struct {
	// Name identifies the model in diagnostics.
	Name string
	// AmbientOcclusion overrides the AO flag; nil inherits from the
	// parent chain and ultimately defaults to true.
	AmbientOcclusion *bool
	// Textures is the model's own texture table.
	Textures map[string]TextureRef
	// Parts are the model's own elements; when empty the resolved
	// parent's elements apply.
	Parts     []Element
	Display   map[string]Display
	Overrides []Override

	parent parentSlot
}

// NewModel builds a model document in code. parent may be nil for
// models without a parent reference.
func NewModel(name string, parent *Location, textures map[string]TextureRef, parts []Element) *Model {
	if textures == nil {
		textures = make(map[string]TextureRef)
	}
	m := &Model{Name: name, Textures: textures, Parts: parts}
	if parent != nil {
		ref := *parent
		m.parent.ref = &ref
	}
	return m
}

// ModelName implements Unbaked.
func (m *Model) ModelName() string {
	return m.Name
}

// ParentRef returns the current parent reference, nil when the model
// has none. Resolution rewrites it to MissingModelLocation when the
// original reference could not be resolved.
func (m *Model) ParentRef() *Location {
	return m.parent.ref
}

// Parent returns the resolved parent document, nil before resolution
// or when the model has no parent reference.
func (m *Model) Parent() *Model {
	return m.parent.model
}

// Elements returns the model's effective element list: its own parts
// when non-empty, else the resolved parent's effective elements.
func (m *Model) Elements() []Element {
	if len(m.Parts) == 0 && m.parent.model != nil {
		return m.parent.model.Elements()
	}
	return m.Parts
}

// findTexture looks up a texture table entry by name, consulting
// resolved parents when the model's own table has no entry.
func (m *Model) findTexture(name string) (TextureRef, bool) {
	for doc := m; doc != nil; doc = doc.parent.model {
		if ref, ok := doc.Textures[name]; ok {
			return ref, true
		}
	}
	return TextureRef{}, false
}

// Unbaked is what a document lookup yields. A registry may hold model
// kinds other than plain block models; the resolver verifies the kind
// at the lookup boundary.
type Unbaked interface {
	ModelName() string
}

// Getter supplies documents by location. A nil return means the
// document is absent.
type Getter func(Location) Unbaked
