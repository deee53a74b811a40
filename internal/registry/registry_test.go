package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxmodel/pkg/blockmodel"
)

func writeAsset(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func testAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeAsset(t, dir, "models/block/test_cube.json", `{
		"textures": { "all": "block/stone", "particle": "#all" },
		"elements": [ { "from": [0,0,0], "to": [16,16,16], "faces": { "down": { "texture": "#all" } } } ]
	}`)

	writeAsset(t, dir, "models/block/test_child.json", `{
		"parent": "block/test_cube",
		"textures": { "particle": "block/dirt" }
	}`)

	writeAsset(t, dir, "blockstates/test_cube.json", `{
		"variants": { "normal": { "model": "block/test_cube" } }
	}`)

	writeAsset(t, dir, "blockstates/test_facing.json", `{
		"variants": {
			"facing=west": [ { "model": "block/test_cube", "y": 270 } ],
			"facing=east": { "model": "block/test_cube", "y": 90 }
		}
	}`)

	return dir
}

func TestModelLoadsAndCaches(t *testing.T) {
	reg := New(testAssets(t), nil)
	loc := blockmodel.ParseLocation("block/test_cube")

	first := reg.Model(loc)
	require.NotNil(t, first)
	assert.Len(t, first.Parts, 1)

	second := reg.Model(loc)
	assert.Same(t, first, second, "the registry must return the cached document")
}

func TestLookupAbsentIsNil(t *testing.T) {
	reg := New(testAssets(t), nil)

	got := reg.Lookup(blockmodel.ParseLocation("block/no_such_model"))
	assert.Nil(t, got)
}

func TestMissingModelSentinel(t *testing.T) {
	reg := New(testAssets(t), nil)

	sentinel := reg.Model(blockmodel.MissingModelLocation)
	require.NotNil(t, sentinel)
	assert.Same(t, reg.MissingModel(), sentinel)
	assert.Nil(t, sentinel.ParentRef(), "the sentinel terminates every chain")
	require.Len(t, sentinel.Parts, 1)
	assert.Len(t, sentinel.Parts[0].Faces, 6)

	ctx := blockmodel.ModelContext{Model: sentinel}
	assert.True(t, ctx.Material("#missing").Missing())
	assert.True(t, ctx.Material("particle").Missing())
}

func TestResolveThroughRegistry(t *testing.T) {
	reg := New(testAssets(t), nil)

	child := reg.Model(blockmodel.ParseLocation("block/test_child"))
	require.NotNil(t, child)

	ctx := blockmodel.ModelContext{Model: child}
	report := blockmodel.MissingTextureSet{}
	materials, err := child.Materials(ctx, reg.Getter(), report)
	require.NoError(t, err)

	assert.Empty(t, report)
	assert.Same(t, reg.Model(blockmodel.ParseLocation("block/test_cube")), child.Parent())
	assert.Len(t, child.Elements(), 1, "elements are inherited from the parent")
	assert.Contains(t, materials, blockmodel.BlockMaterial(blockmodel.ParseLocation("block/stone")))
	assert.Contains(t, materials, blockmodel.BlockMaterial(blockmodel.ParseLocation("block/dirt")))
}

func TestLoadBlockStateVariants(t *testing.T) {
	reg := New(testAssets(t), nil)

	bs, err := reg.LoadBlockState("test_facing")
	require.NoError(t, err)

	// Object and array forms both decode to variant lists.
	west, ok := bs.Variants["facing=west"]
	require.True(t, ok)
	require.Len(t, west, 1)
	assert.Equal(t, float32(270), west[0].Y)

	east, ok := bs.Variants["facing=east"]
	require.True(t, ok)
	require.Len(t, east, 1)
	assert.Equal(t, "block/test_cube", east[0].Model)
}

func TestSelectVariant(t *testing.T) {
	normal := &BlockState{Variants: map[string]Variants{
		"normal":   {{Model: "block/a"}},
		"whatever": {{Model: "block/b"}},
	}}
	v, ok := normal.SelectVariant()
	require.True(t, ok)
	assert.Equal(t, "block/a", v.Model)

	unnamed := &BlockState{Variants: map[string]Variants{
		"": {{Model: "block/c"}},
	}}
	v, ok = unnamed.SelectVariant()
	require.True(t, ok)
	assert.Equal(t, "block/c", v.Model)

	// Alphabetical fallback keeps selection deterministic.
	fallback := &BlockState{Variants: map[string]Variants{
		"facing=west": {{Model: "block/w"}},
		"facing=east": {{Model: "block/e"}},
	}}
	v, ok = fallback.SelectVariant()
	require.True(t, ok)
	assert.Equal(t, "block/e", v.Model)

	_, ok = (&BlockState{}).SelectVariant()
	assert.False(t, ok)
}

func TestLoadBlockStateMissingFile(t *testing.T) {
	reg := New(testAssets(t), nil)
	_, err := reg.LoadBlockState("no_such_block")
	require.Error(t, err)
}
