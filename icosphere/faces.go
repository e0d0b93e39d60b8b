// SPDX-License-Identifier: MIT
// Package: landlab/icosphere
//
// faces.go — dual edges: one face per link, connecting the corners of the
// two patches adjacent across that link.

package icosphere

import (
	"fmt"

	"github.com/Ashaniekam/landlab/spherical"
)

// setupFaces discovers patch adjacency by registering every patch edge under
// the same canonical node-pair key the link registry uses, then assigns each
// link's face: the corner pair (min, max) of its two adjacent patches and
// the arc length between those corners. A closed mesh has exactly two
// patches at every node pair; fewer is an open boundary (ErrOpenMesh), more
// is non-manifold (ErrNonManifold).
// Complexity: O(P + L) time, O(L) memory.
func (m *Mesh) setupFaces() error {
	patchesAtPair := make(map[uint64][2]int, len(m.NodesAtLink))
	for patch, tri := range m.NodesAtPatch {
		for j := 0; j < 3; j++ {
			key := pairKey(tri[j], tri[(j+1)%3])
			pair, ok := patchesAtPair[key]
			switch {
			case !ok:
				patchesAtPair[key] = [2]int{patch, Sentinel}
			case pair[1] == Sentinel:
				lo, hi := pair[0], patch
				if hi < lo {
					lo, hi = hi, lo
				}
				patchesAtPair[key] = [2]int{lo, hi}
			default:
				return fmt.Errorf("nodes %d-%d shared by patches %d, %d, %d: %w",
					tri[j], tri[(j+1)%3], pair[0], pair[1], patch, ErrNonManifold)
			}
		}
	}

	m.CornersAtFace = make([][2]int, len(m.NodesAtLink))
	m.LengthOfFace = make([]float64, len(m.NodesAtLink))
	for face, ends := range m.NodesAtLink {
		pair := patchesAtPair[pairKey(ends[0], ends[1])]
		if pair[1] == Sentinel {
			return fmt.Errorf("link %d nodes %d-%d: %w", face, ends[0], ends[1], ErrOpenMesh)
		}
		m.CornersAtFace[face] = pair
		m.LengthOfFace[face] = spherical.ArcLength(
			m.CoordsOfCorner[pair[0]], m.CoordsOfCorner[pair[1]], m.radius)
	}
	return nil
}
