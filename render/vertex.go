// Package render is the boundary between the geometry core and whatever draws
// its output: a flat vertex stream for a GPU, or a PNG drawn on the CPU.
package render

import (
	"encoding/binary"
	"io"

	"github.com/osuushi/voronoiable"
	"github.com/pkg/errors"
)

// FloatsPerVertex is the stride of the vertex stream: x, y, r, g, b.
const FloatsPerVertex = 5

// One vertex of the stream. Every triangle contributes three, all carrying the
// triangle's color. There is no index buffer.
type Vertex struct {
	X, Y    float32
	R, G, B float32
}

func Vertices(triangles []voronoiable.RenderTriangle) []Vertex {
	vertices := make([]Vertex, 0, 3*len(triangles))
	for _, tri := range triangles {
		for _, p := range tri.Points() {
			vertices = append(vertices, Vertex{
				X: float32(p.X),
				Y: float32(p.Y),
				R: float32(tri.Color.R),
				G: float32(tri.Color.G),
				B: float32(tri.Color.B),
			})
		}
	}
	return vertices
}

// Flatten lays the vertices out as consecutive floats, ready for upload.
func Flatten(triangles []voronoiable.RenderTriangle) []float32 {
	vertices := Vertices(triangles)
	floats := make([]float32, 0, FloatsPerVertex*len(vertices))
	for _, v := range vertices {
		floats = append(floats, v.X, v.Y, v.R, v.G, v.B)
	}
	return floats
}

// WriteVertexStream writes the flattened stream as little endian float32s.
func WriteVertexStream(w io.Writer, triangles []voronoiable.RenderTriangle) error {
	if err := binary.Write(w, binary.LittleEndian, Vertices(triangles)); err != nil {
		return errors.Wrap(err, "write vertex stream")
	}
	return nil
}

// ReadVertexStream is the inverse of WriteVertexStream.
func ReadVertexStream(r io.Reader) ([]Vertex, error) {
	var vertices []Vertex
	for {
		var v Vertex
		err := binary.Read(r, binary.LittleEndian, &v)
		if err == io.EOF {
			return vertices, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "read vertex stream")
		}
		vertices = append(vertices, v)
	}
}
