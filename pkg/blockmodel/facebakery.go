package blockmodel

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxmodel/pkg/atlas"
	"voxmodel/pkg/geom"
)

// faceCorners selects the four corners of a face in counter-clockwise
// order as seen from outside the cuboid. 0 picks the element's From
// component, 1 the To component, per axis. Indexed by geom.Direction.
var faceCorners = [6][4][3]int{
	{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, // down
	{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}, // up
	{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}}, // north
	{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, // south
	{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}, // west
	{{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}}, // east
}

// uvCorners maps corner index to (u, v) selectors into the face's UV
// window [u0, v0, u1, v1]. V grows downward in sheet space, so the
// lower corners take v1.
var uvCorners = [4][2]int{{0, 3}, {2, 3}, {2, 1}, {0, 1}}

// BakeFace bakes one face of an element into a quad: corner positions
// from the element's bounds, texture coordinates mapped into the
// sprite's atlas window, element rotation and bake-state rotation
// applied in that order. Positions are emitted in block units (the
// element's 0..16 space scaled to 0..1).
func BakeFace(elem *Element, face Face, sprite *atlas.Sprite, dir geom.Direction, state BakeState, bakeID Location) BakedQuad {
	uv := [4]float32{0, 0, 16, 16}
	if face.UV != nil {
		uv = *face.UV
	}

	bounds := [2]mgl32.Vec3{
		{elem.From[0] / 16, elem.From[1] / 16, elem.From[2] / 16},
		{elem.To[0] / 16, elem.To[1] / 16, elem.To[2] / 16},
	}

	steps := ((face.Rotation/90)%4 + 4) % 4

	quad := BakedQuad{
		Direction: dir,
		Sprite:    sprite,
		Shade:     elem.Shade == nil || *elem.Shade,
		TintIndex: -1,
		Source:    bakeID,
	}
	if face.TintIndex != nil {
		quad.TintIndex = *face.TintIndex
	}

	for i, sel := range faceCorners[dir] {
		pos := mgl32.Vec3{
			bounds[sel[0]].X(),
			bounds[sel[1]].Y(),
			bounds[sel[2]].Z(),
		}
		pos = applyElementRotation(pos, elem.Rotation)
		pos = rotateAboutCenter(pos, state.Rotation)

		uvSel := uvCorners[(i+steps)%4]
		u, v := sprite.UV(uv[uvSel[0]]/16, uv[uvSel[1]]/16)
		quad.Vertices[i] = Vertex{Pos: pos, U: u, V: v}
	}
	return quad
}

func applyElementRotation(pos mgl32.Vec3, rot *Rotation) mgl32.Vec3 {
	if rot == nil {
		return pos
	}
	var axis mgl32.Vec3
	switch rot.Axis {
	case "x":
		axis = mgl32.Vec3{1, 0, 0}
	case "y":
		axis = mgl32.Vec3{0, 1, 0}
	case "z":
		axis = mgl32.Vec3{0, 0, 1}
	default:
		return pos
	}
	origin := mgl32.Vec3{rot.Origin[0] / 16, rot.Origin[1] / 16, rot.Origin[2] / 16}
	m := mgl32.HomogRotate3D(mgl32.DegToRad(rot.Angle), axis)
	return m.Mul4x1(pos.Sub(origin).Vec4(1)).Vec3().Add(origin)
}

// rotateAboutCenter applies the bake-state rotation about the block
// center so that rotated models stay within their cell.
func rotateAboutCenter(pos mgl32.Vec3, m mgl32.Mat4) mgl32.Vec3 {
	center := mgl32.Vec3{0.5, 0.5, 0.5}
	return m.Mul4x1(pos.Sub(center).Vec4(1)).Vec3().Add(center)
}
