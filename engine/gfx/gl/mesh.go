package glbackend

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/lightscene/engine/core"
)

// Mesh owns one VBO and one VAO describing a triangle list.
type Mesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

// NewMesh uploads desc.Vertices into a fresh buffer and records the attribute layout.
func NewMesh(desc core.MeshDesc) (*Mesh, error) {
	if err := validateMesh(desc); err != nil {
		return nil, err
	}
	floatsPerVertex := int(desc.Layout.Stride) / 4
	m := &Mesh{count: int32(len(desc.Vertices) / floatsPerVertex)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices)*4, gl.Ptr(desc.Vertices), gl.STATIC_DRAW)

	for _, a := range desc.Layout.Attributes {
		gl.VertexAttribPointer(a.Location, a.Size, glType(a.Type), false, desc.Layout.Stride, unsafe.Pointer(uintptr(a.Offset)))
		gl.EnableVertexAttribArray(a.Location)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m, nil
}

func validateMesh(desc core.MeshDesc) error {
	if len(desc.Vertices) == 0 {
		return errors.New("mesh: no vertices")
	}
	if desc.Layout.Stride <= 0 || desc.Layout.Stride%4 != 0 {
		return fmt.Errorf("mesh: invalid stride %d", desc.Layout.Stride)
	}
	floatsPerVertex := int(desc.Layout.Stride) / 4
	if len(desc.Vertices)%floatsPerVertex != 0 {
		return fmt.Errorf("mesh: %d floats is not a multiple of %d per vertex", len(desc.Vertices), floatsPerVertex)
	}
	for _, a := range desc.Layout.Attributes {
		if a.Type != core.AttribFloat32 {
			return fmt.Errorf("mesh: attribute %d has unsupported type %d", a.Location, a.Type)
		}
		if a.Offset+int(a.Size)*4 > int(desc.Layout.Stride) {
			return fmt.Errorf("mesh: attribute %d overflows stride", a.Location)
		}
	}
	return nil
}

// glType assumes the layout passed validateMesh.
func glType(core.AttribType) uint32 { return gl.FLOAT }

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

func (m *Mesh) VertexCount() int { return int(m.count) }

func (m *Mesh) Delete() {
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
