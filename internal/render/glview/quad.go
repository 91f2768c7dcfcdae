package glview

import (
	"tiffview/internal/render"

	"github.com/go-gl/gl/v3.3-core/gl"
)

const floatSize = 4

type quad struct {
	vao, vbo, ebo uint32
}

func newQuad() *quad {
	q := &quad{}
	gl.GenVertexArrays(1, &q.vao)
	gl.GenBuffers(1, &q.vbo)
	gl.GenBuffers(1, &q.ebo)

	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(render.Quad)*floatSize, gl.Ptr(&render.Quad[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(render.QuadIndices)*4, gl.Ptr(&render.QuadIndices[0]), gl.STATIC_DRAW)

	stride := int32(render.QuadStride * floatSize)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, render.QuadPositionOffset*floatSize)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, render.QuadTexCoordOffset*floatSize)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return q
}

func (q *quad) draw() {
	gl.BindVertexArray(q.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(render.QuadIndices)), gl.UNSIGNED_INT, 0)
}

func (q *quad) delete() {
	gl.DeleteVertexArrays(1, &q.vao)
	gl.DeleteBuffers(1, &q.vbo)
	gl.DeleteBuffers(1, &q.ebo)
}
