package geometry

import "github.com/hubastard/lightscene/engine/core"

// CubeVertexCount is the number of vertices in Cube (6 faces, 2 triangles each).
const CubeVertexCount = 36

// Vertex: pos3 + normal3 => 6 floats
const cubeStride = 6

// CubeLayout matches
//
//	layout(location = 0) in vec3 aPos;
//	layout(location = 1) in vec3 aNormal;
var CubeLayout = core.VertexLayout{
	Stride: cubeStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 3, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 3, Type: core.AttribFloat32, Offset: 3 * 4}, // normal
	},
}

// Cube is a unit cube centred on the origin with outward face normals.
// Triangles wind counter-clockwise seen from outside.
var Cube = []float32{
	//   X,    Y,    Z,   NX,   NY,   NZ
	// back
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0,
	0.5, -0.5, -0.5, 0.0, 0.0, -1.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0,
	-0.5, 0.5, -0.5, 0.0, 0.0, -1.0,

	// front
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
	0.5, -0.5, 0.5, 0.0, 0.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0,

	// left
	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0,
	-0.5, 0.5, -0.5, -1.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0,
	-0.5, -0.5, 0.5, -1.0, 0.0, 0.0,
	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0,

	// right
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0,

	// bottom
	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0,
	0.5, -0.5, -0.5, 0.0, -1.0, 0.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, -1.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0,

	// top
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 0.0,
}

// CubeMesh returns a mesh description for Cube. The vertex slice is shared.
func CubeMesh() core.MeshDesc {
	return core.MeshDesc{Vertices: Cube, Layout: CubeLayout}
}
