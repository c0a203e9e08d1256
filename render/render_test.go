package render

import (
	"bytes"
	"encoding/binary"
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/voronoiable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = voronoiable.Color{R: 1}
	blue = voronoiable.Color{B: 1}
)

// Covers the lower left half of the domain
var lowerLeft = voronoiable.RenderTriangle{
	Triangle: voronoiable.Triangle{
		A: voronoiable.Point{X: -1, Y: -1},
		B: voronoiable.Point{X: 1, Y: -1},
		C: voronoiable.Point{X: -1, Y: 1},
	},
	Color: red,
}

var upperRight = voronoiable.RenderTriangle{
	Triangle: voronoiable.Triangle{
		A: voronoiable.Point{X: 0.25, Y: 0.5},
		B: voronoiable.Point{X: 0.75, Y: 0.5},
		C: voronoiable.Point{X: 0.5, Y: 0.75},
	},
	Color: blue,
}

func TestVertices(t *testing.T) {
	vertices := Vertices([]voronoiable.RenderTriangle{lowerLeft, upperRight})
	require.Len(t, vertices, 6)
	assert.Equal(t, Vertex{X: -1, Y: -1, R: 1}, vertices[0])
	assert.Equal(t, Vertex{X: 1, Y: -1, R: 1}, vertices[1])
	assert.Equal(t, Vertex{X: -1, Y: 1, R: 1}, vertices[2])
	assert.Equal(t, Vertex{X: 0.25, Y: 0.5, B: 1}, vertices[3])
	assert.Equal(t, Vertex{X: 0.5, Y: 0.75, B: 1}, vertices[5])

	assert.Empty(t, Vertices(nil))
}

func TestFlatten(t *testing.T) {
	floats := Flatten([]voronoiable.RenderTriangle{lowerLeft, upperRight})
	require.Len(t, floats, 2*3*FloatsPerVertex)
	assert.Equal(t, []float32{-1, -1, 1, 0, 0}, floats[:FloatsPerVertex])
	assert.Equal(t, []float32{0.5, 0.75, 0, 0, 1}, floats[len(floats)-FloatsPerVertex:])
}

func TestVertexStream(t *testing.T) {
	triangles := []voronoiable.RenderTriangle{lowerLeft, upperRight}

	var buf bytes.Buffer
	require.NoError(t, WriteVertexStream(&buf, triangles))
	assert.Equal(t, 2*3*FloatsPerVertex*4, buf.Len())

	t.Run("little endian float32 layout", func(t *testing.T) {
		raw := buf.Bytes()
		floats := Flatten(triangles)
		for i, f := range floats {
			bits := binary.LittleEndian.Uint32(raw[4*i:])
			assert.Equal(t, f, math.Float32frombits(bits), "float %d", i)
		}
	})

	t.Run("reads back", func(t *testing.T) {
		vertices, err := ReadVertexStream(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, Vertices(triangles), vertices)
	})

	t.Run("truncated stream", func(t *testing.T) {
		_, err := ReadVertexStream(bytes.NewReader(buf.Bytes()[:7]))
		assert.Error(t, err)
	})
}

// Compare an 8 bit pixel against a color with some slack for rounding
func assertPixel(t *testing.T, img image.Image, x, y int, expected voronoiable.Color) {
	t.Helper()
	r, g, b, _ := img.At(x, y).RGBA()
	assert.InDelta(t, expected.R*255, float64(r>>8), 2, "red at (%d, %d)", x, y)
	assert.InDelta(t, expected.G*255, float64(g>>8), 2, "green at (%d, %d)", x, y)
	assert.InDelta(t, expected.B*255, float64(b>>8), 2, "blue at (%d, %d)", x, y)
}

func TestRasterize(t *testing.T) {
	size := 200
	sites := []voronoiable.Site{
		{Point: voronoiable.Point{X: 0.5, Y: -0.5}, Color: blue},
	}
	img := Rasterize([]voronoiable.RenderTriangle{lowerLeft, upperRight}, sites, size)
	require.Equal(t, image.Rect(0, 0, size, size), img.Bounds())

	// y points up, so the lower left triangle fills the bottom left of the image
	assertPixel(t, img, 10, size-10, red)
	assertPixel(t, img, size-10, 10, Background)
	// (0.5, 0.6) is inside the small triangle
	assertPixel(t, img, 150, 40, blue)
	// Site marker at (0.5, -0.5), drawn over the red triangle's edge region
	assertPixel(t, img, 150, 150, blue)
	assertPixel(t, img, 150+int(SiteMarkerSize), 150, Background)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, SavePNG(path, []voronoiable.RenderTriangle{lowerLeft}, nil, 64))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	err = SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), nil, nil, 64)
	assert.Error(t, err)
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, []voronoiable.RenderTriangle{lowerLeft}, nil, 32))
	assert.Equal(t, []byte("\x89PNG"), buf.Bytes()[:4])
}

func TestPreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, SavePNG(path, []voronoiable.RenderTriangle{lowerLeft}, nil, 16))

	var out bytes.Buffer
	require.NoError(t, Preview(path, &out))
	assert.NotZero(t, out.Len())

	err := Preview(filepath.Join(t.TempDir(), "missing.png"), &out)
	assert.Error(t, err)
}
