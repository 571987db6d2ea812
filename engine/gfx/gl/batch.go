package glbackend

import "github.com/hubastard/canopy/engine/colors"

// Vertex: pos2 + color4 => 6 floats
const (
	vStride      = 6
	vertsPerQuad = 4
	indsPerQuad  = 6
)

// Statistics captures the counts generated during a frame.
type Statistics struct {
	DrawCalls int
	QuadCount int
}

// batch accumulates solid quads in pixel space until flushed. It holds no
// GL state so it can be exercised without a context.
type batch struct {
	verts    []float32
	quads    int
	maxQuads int
}

func newBatch(maxQuads int) batch {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	return batch{
		verts:    make([]float32, 0, maxQuads*vertsPerQuad*vStride),
		maxQuads: maxQuads,
	}
}

func (b *batch) full() bool { return b.quads >= b.maxQuads }

func (b *batch) reset() {
	b.verts = b.verts[:0]
	b.quads = 0
}

// add appends a quad as TL, TR, BL, BR. Fully transparent or empty quads
// are skipped and report false.
func (b *batch) add(x, y, w, h float32, c colors.Color) bool {
	if w <= 0 || h <= 0 || c[3] <= 0 {
		return false
	}
	corners := [4][2]float32{
		{x, y},
		{x + w, y},
		{x, y + h},
		{x + w, y + h},
	}
	for _, p := range corners {
		b.verts = append(b.verts, p[0], p[1], c[0], c[1], c[2], c[3])
	}
	b.quads++
	return true
}

// quadIndices builds the shared index buffer for n quads.
func quadIndices(n int) []uint32 {
	inds := make([]uint32, 0, n*indsPerQuad)
	for i := 0; i < n; i++ {
		base := uint32(i * vertsPerQuad)
		inds = append(inds, base, base+1, base+2, base+2, base+1, base+3)
	}
	return inds
}
