// SPDX-License-Identifier: MIT
// Package: landlab/icosphere
//
// links.go — primal link tables: deduplicated edges, per-node incidence
// with direction signs, arc lengths.
//
// Determinism:
//   • Links are numbered in first-seen order while scanning triangles; the
//     first visit of an edge also fixes its (tail, head) orientation.
//   • Slot order within LinksAtNode is link-number order, which downstream
//     tables (FacesAtCell) inherit.

package icosphere

import (
	"fmt"

	"github.com/Ashaniekam/landlab/spherical"
)

// setupLinks registers every triangle edge under its canonical unordered
// key, keeping the first-seen orientation, then fills the per-node incidence
// tables (sign -1 at the tail, +1 at the head) and computes arc lengths.
// Each edge of a closed triangulation is visited twice, once per adjacent
// triangle; the registry admits it once.
// Complexity: O(T + L) time, O(L) memory.
func (m *Mesh) setupLinks(triangles [][3]int) error {
	seen := make(map[uint64]struct{}, 3*len(triangles)/2)
	addLink := func(tail, head int) {
		key := pairKey(tail, head)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		m.NodesAtLink = append(m.NodesAtLink, [2]int{tail, head})
	}
	for _, tri := range triangles {
		addLink(tri[0], tri[1])
		addLink(tri[1], tri[2])
		addLink(tri[2], tri[0])
	}

	numNodes := len(m.CoordsOfNode)
	m.LinksAtNode = make([][MaxNeighbors]int, numNodes)
	m.LinkDirsAtNode = make([][MaxNeighbors]int, numNodes)
	for node := range m.LinksAtNode {
		m.LinksAtNode[node] = emptySlots()
	}

	m.LengthOfLink = make([]float64, len(m.NodesAtLink))
	nextSlot := make([]int, numNodes)
	for link, ends := range m.NodesAtLink {
		tail, head := ends[0], ends[1]
		if nextSlot[tail] == MaxNeighbors {
			return fmt.Errorf("node %d at link %d: %w", tail, link, ErrNodeDegree)
		}
		if nextSlot[head] == MaxNeighbors {
			return fmt.Errorf("node %d at link %d: %w", head, link, ErrNodeDegree)
		}
		m.LinksAtNode[tail][nextSlot[tail]] = link
		m.LinkDirsAtNode[tail][nextSlot[tail]] = -1
		nextSlot[tail]++
		m.LinksAtNode[head][nextSlot[head]] = link
		m.LinkDirsAtNode[head][nextSlot[head]] = 1
		nextSlot[head]++

		m.LengthOfLink[link] = spherical.ArcLength(
			m.CoordsOfNode[tail], m.CoordsOfNode[head], m.radius)
	}
	return nil
}
