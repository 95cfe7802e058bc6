package spritequad

import "fmt"

// debugCheckQuadCapacity panics with a descriptive message when vertices
// cannot hold quads quads starting at offset. Only called when built with the
// spritequaddebug tag; release builds rely on the slice bounds check.
func debugCheckQuadCapacity(length, offset, quads int) {
	need := offset + quads*QuadVertexCount
	if offset < 0 || need > length {
		panic(fmt.Sprintf("spritequad debug: %d quad(s) at vertex offset %d need %d vertices, buffer has %d",
			quads, offset, need, length))
	}
}
