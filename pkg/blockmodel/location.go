package blockmodel

import "strings"

// DefaultNamespace is assumed when a location string has no prefix.
const DefaultNamespace = "voxel"

// Location identifies a model or texture resource as namespace:path.
type Location struct {
	Namespace string
	Path      string
}

// NewLocation builds a location from explicit parts.
func NewLocation(namespace, path string) Location {
	return Location{Namespace: namespace, Path: path}
}

// ParseLocation parses "namespace:path", defaulting the namespace when
// the separator is absent.
func ParseLocation(s string) Location {
	if ns, path, ok := strings.Cut(s, ":"); ok {
		return Location{Namespace: ns, Path: path}
	}
	return Location{Namespace: DefaultNamespace, Path: s}
}

func (l Location) String() string {
	return l.Namespace + ":" + l.Path
}

// IsZero reports whether l is the zero location.
func (l Location) IsZero() bool {
	return l.Namespace == "" && l.Path == ""
}

var (
	// MissingModelLocation names the process-wide fallback model
	// substituted when parent resolution fails.
	MissingModelLocation = Location{Namespace: "builtin", Path: "missing"}

	// MissingTextureLocation names the placeholder texture substituted
	// for unresolvable texture references.
	MissingTextureLocation = Location{Namespace: "builtin", Path: "missing_texture"}

	// BlockAtlasLocation names the block texture sheet all block
	// materials live on.
	BlockAtlasLocation = Location{Namespace: DefaultNamespace, Path: "textures/atlas/blocks"}

	// DynamicBakeLocation is used when baking models built in code
	// rather than loaded from a document. The name only shows up in
	// diagnostics.
	DynamicBakeLocation = Location{Namespace: DefaultNamespace, Path: "dynamic_model_baking"}
)
