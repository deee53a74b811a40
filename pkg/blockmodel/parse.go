package blockmodel

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"voxmodel/pkg/geom"
)

// ErrMalformedElements is returned when the "elements" field is
// neither a single element object nor an array of elements.
var ErrMalformedElements = errors.New("model elements must be an object or an array")

// Parse decodes a model document. name identifies the model in
// diagnostics. Absent fields default to no parent, empty textures and
// empty elements.
func Parse(data []byte, name string) (*Model, error) {
	var doc struct {
		Parent           string                `json:"parent"`
		AmbientOcclusion *bool                 `json:"ambientocclusion"`
		Textures         map[string]TextureRef `json:"textures"`
		Elements         elementList           `json:"elements"`
		Display          map[string]Display    `json:"display"`
		Overrides        []Override            `json:"overrides"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not unmarshal model json: %w", err)
	}

	var parent *Location
	if doc.Parent != "" {
		loc := ParseLocation(doc.Parent)
		parent = &loc
	}

	m := NewModel(name, parent, doc.Textures, doc.Elements)
	m.AmbientOcclusion = doc.AmbientOcclusion
	m.Display = doc.Display
	m.Overrides = doc.Overrides
	return m, nil
}

// UnmarshalJSON decides the reference variant once: "#name" entries
// are symbolic, anything else is a concrete block-atlas material.
func (r *TextureRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.HasPrefix(s, "#") {
		*r = SymbolicRef(strings.TrimPrefix(s, "#"))
		return nil
	}
	*r = ConcreteRef(BlockMaterial(ParseLocation(s)))
	return nil
}

// elementList accepts the "elements" field as either a single element
// object or an array of elements.
type elementList []Element

func (e *elementList) UnmarshalJSON(data []byte) error {
	switch firstByte(data) {
	case '[':
		var elems []Element
		if err := json.Unmarshal(data, &elems); err != nil {
			return err
		}
		*e = elems
		return nil
	case '{':
		var elem Element
		if err := json.Unmarshal(data, &elem); err != nil {
			return err
		}
		*e = elementList{elem}
		return nil
	}
	return ErrMalformedElements
}

func firstByte(data []byte) byte {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

type jsonFace struct {
	UV        *[4]float32 `json:"uv"`
	Texture   string      `json:"texture"`
	CullFace  string      `json:"cullface"`
	Rotation  int         `json:"rotation"`
	TintIndex *int        `json:"tintindex"`
}

// UnmarshalJSON converts direction-keyed face maps into the typed
// representation. Unknown face or cull direction names are errors.
func (e *Element) UnmarshalJSON(data []byte) error {
	var doc struct {
		From     [3]float32          `json:"from"`
		To       [3]float32          `json:"to"`
		Rotation *Rotation           `json:"rotation"`
		Shade    *bool               `json:"shade"`
		Faces    map[string]jsonFace `json:"faces"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	faces := make(map[geom.Direction]Face, len(doc.Faces))
	for name, jf := range doc.Faces {
		dir, ok := geom.ParseDirection(name)
		if !ok {
			return fmt.Errorf("unknown face direction %q", name)
		}
		face := Face{
			Texture:   jf.Texture,
			UV:        jf.UV,
			Rotation:  jf.Rotation,
			TintIndex: jf.TintIndex,
		}
		if jf.CullFace != "" {
			cull, ok := geom.ParseDirection(jf.CullFace)
			if !ok {
				return fmt.Errorf("unknown cull direction %q", jf.CullFace)
			}
			face.Cull = &cull
		}
		faces[dir] = face
	}

	e.From = doc.From
	e.To = doc.To
	e.Rotation = doc.Rotation
	e.Shade = doc.Shade
	e.Faces = faces
	return nil
}
