// Package registry supplies model documents by location, backed by a
// models directory on disk. It owns the process-wide missing-model
// sentinel that parent resolution substitutes on failure.
package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"voxmodel/pkg/blockmodel"
	"voxmodel/pkg/geom"
)

// Registry loads and caches model documents from an asset directory.
type Registry struct {
	assetsDir string
	cache     map[blockmodel.Location]*blockmodel.Model
	missing   *blockmodel.Model
	log       *zap.Logger
}

// New creates a registry rooted at assetsDir, which contains the
// models/ and blockstates/ subdirectories. log may be nil.
func New(assetsDir string, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		assetsDir: assetsDir,
		cache:     make(map[blockmodel.Location]*blockmodel.Model),
		missing:   newMissingModel(),
		log:       log,
	}
}

// Model returns the document at loc, loading and caching it on first
// use. Absent or unparseable files yield nil; the missing-model
// location always yields the sentinel.
func (r *Registry) Model(loc blockmodel.Location) *blockmodel.Model {
	if loc == blockmodel.MissingModelLocation {
		return r.missing
	}
	if m, ok := r.cache[loc]; ok {
		return m
	}
	m, err := r.load(loc)
	if err != nil {
		r.log.Warn("could not load model", zap.Stringer("model", loc), zap.Error(err))
		return nil
	}
	r.cache[loc] = m
	return m
}

// Lookup adapts Model to the document-lookup contract. It returns a
// true nil interface for absent documents.
func (r *Registry) Lookup(loc blockmodel.Location) blockmodel.Unbaked {
	m := r.Model(loc)
	if m == nil {
		return nil
	}
	return m
}

// Getter returns the registry's lookup as a blockmodel.Getter.
func (r *Registry) Getter() blockmodel.Getter {
	return r.Lookup
}

// MissingModel returns the shared sentinel document.
func (r *Registry) MissingModel() *blockmodel.Model {
	return r.missing
}

func (r *Registry) load(loc blockmodel.Location) (*blockmodel.Model, error) {
	path := filepath.Join(r.assetsDir, "models", filepath.FromSlash(loc.Path)+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read model file: %w", err)
	}
	m, err := blockmodel.Parse(data, loc.String())
	if err != nil {
		return nil, err
	}
	return m, nil
}

// newMissingModel builds the sentinel: a full cube of the missing
// texture, so substituted models show up visibly instead of vanishing.
func newMissingModel() *blockmodel.Model {
	faces := make(map[geom.Direction]blockmodel.Face, len(geom.Directions))
	for _, dir := range geom.Directions {
		cull := dir
		faces[dir] = blockmodel.Face{Texture: "#missing", Cull: &cull}
	}
	textures := map[string]blockmodel.TextureRef{
		"missing":  blockmodel.ConcreteRef(blockmodel.MissingMaterial()),
		"particle": blockmodel.ConcreteRef(blockmodel.MissingMaterial()),
	}
	parts := []blockmodel.Element{{
		From:  [3]float32{0, 0, 0},
		To:    [3]float32{16, 16, 16},
		Faces: faces,
	}}
	return blockmodel.NewModel(blockmodel.MissingModelLocation.String(), nil, textures, parts)
}
