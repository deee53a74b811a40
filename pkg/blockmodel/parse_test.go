package blockmodel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxmodel/pkg/geom"
)

func TestParseFullDocument(t *testing.T) {
	model, err := Parse([]byte(`{
		"parent": "block/cube",
		"ambientocclusion": false,
		"textures": { "all": "block/stone", "side": "#all" },
		"elements": [
			{ "from": [0,0,0], "to": [16,16,16],
			  "faces": { "up": { "texture": "#all", "cullface": "up" },
			             "north": { "texture": "#side" } } }
		]
	}`), "test:block/stone")
	require.NoError(t, err)

	require.NotNil(t, model.ParentRef())
	assert.Equal(t, ParseLocation("block/cube"), *model.ParentRef())
	require.NotNil(t, model.AmbientOcclusion)
	assert.False(t, *model.AmbientOcclusion)

	all, ok := model.Textures["all"]
	require.True(t, ok)
	assert.False(t, all.Symbolic())
	assert.Equal(t, BlockMaterial(ParseLocation("block/stone")), all.Material())

	side, ok := model.Textures["side"]
	require.True(t, ok)
	assert.True(t, side.Symbolic())
	assert.Equal(t, "all", side.Name())

	require.Len(t, model.Parts, 1)
	elem := model.Parts[0]
	up, ok := elem.Faces[geom.Up]
	require.True(t, ok)
	require.NotNil(t, up.Cull)
	assert.Equal(t, geom.Up, *up.Cull)
	north, ok := elem.Faces[geom.North]
	require.True(t, ok)
	assert.Nil(t, north.Cull)
	assert.Equal(t, "#side", north.Texture)
}

func TestParseDefaults(t *testing.T) {
	model, err := Parse([]byte(`{}`), "test:empty")
	require.NoError(t, err)
	assert.Nil(t, model.ParentRef())
	assert.Empty(t, model.Textures)
	assert.Empty(t, model.Parts)
}

func TestParseSingleElementObject(t *testing.T) {
	asObject, err := Parse([]byte(`{
		"elements": { "from": [0,0,0], "to": [16,16,16], "faces": { "down": { "texture": "#all" } } }
	}`), "test:object")
	require.NoError(t, err)

	asArray, err := Parse([]byte(`{
		"elements": [ { "from": [0,0,0], "to": [16,16,16], "faces": { "down": { "texture": "#all" } } } ]
	}`), "test:array")
	require.NoError(t, err)

	require.Len(t, asObject.Parts, 1)
	assert.Equal(t, asArray.Parts, asObject.Parts)
}

func TestParseMalformedElements(t *testing.T) {
	_, err := Parse([]byte(`{ "elements": "nope" }`), "test:bad")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedElements))

	_, err = Parse([]byte(`{ "elements": 7 }`), "test:bad")
	assert.True(t, errors.Is(err, ErrMalformedElements))
}

func TestParseUnknownFaceDirection(t *testing.T) {
	_, err := Parse([]byte(`{
		"elements": [ { "from": [0,0,0], "to": [16,16,16], "faces": { "sideways": { "texture": "#all" } } } ]
	}`), "test:bad")
	require.Error(t, err)
}

func TestParseLocationDefaults(t *testing.T) {
	assert.Equal(t, Location{Namespace: "mod", Path: "block/x"}, ParseLocation("mod:block/x"))
	assert.Equal(t, Location{Namespace: DefaultNamespace, Path: "block/x"}, ParseLocation("block/x"))
	assert.Equal(t, "mod:block/x", ParseLocation("mod:block/x").String())
}
