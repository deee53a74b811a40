package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// BlockState maps variants of a block to their models.
type BlockState struct {
	Variants map[string]Variants `json:"variants"`
}

// Variant names one model plus its placement rotation about the
// vertical axis, in degrees.
type Variant struct {
	Model string  `json:"model"`
	Y     float32 `json:"y"`
}

// Variants handles the fact that a variant entry can be either a
// single object or an array of objects.
type Variants []Variant

func (v *Variants) UnmarshalJSON(data []byte) error {
	// First, try to unmarshal as an array
	var variants []Variant
	if err := json.Unmarshal(data, &variants); err == nil {
		*v = variants
		return nil
	}

	// If that fails, try to unmarshal as a single object
	var single Variant
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}

	*v = Variants{single}
	return nil
}

// LoadBlockState reads a blockstate definition by block name.
func (r *Registry) LoadBlockState(name string) (*BlockState, error) {
	path := filepath.Join(r.assetsDir, "blockstates", name+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read blockstate file: %w", err)
	}

	var bs BlockState
	if err := json.Unmarshal(data, &bs); err != nil {
		return nil, fmt.Errorf("could not unmarshal blockstate json: %w", err)
	}
	return &bs, nil
}

// SelectVariant picks a deterministic variant: "normal", then the
// unnamed variant, then the alphabetically first one.
func (bs *BlockState) SelectVariant() (Variant, bool) {
	if v, ok := bs.Variants["normal"]; ok && len(v) > 0 {
		return v[0], true
	}
	if v, ok := bs.Variants[""]; ok && len(v) > 0 {
		return v[0], true
	}

	keys := make([]string, 0, len(bs.Variants))
	for k := range bs.Variants {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := bs.Variants[k]; len(v) > 0 {
			return v[0], true
		}
	}
	return Variant{}, false
}
