/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

		http://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package planar

// RotationAt returns the cyclic order of neighbors around primary
// vertex v in the final embedding, read directly off the embedding
// ring. Only meaningful after a successful Embed.
func (g *Graph) RotationAt(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}
	start := g.vertices[v].embFirst
	if !g.isArc(start) {
		return nil
	}
	var rot []int
	for a := start; ; {
		rot = append(rot, g.neighbor(a))
		a = g.arcs[a].next
		if a == start {
			break
		}
	}
	return rot
}

// Faces walks the rotation system's face-tracing rule (after each arc,
// continue along the next arc after its twin in the target's rotation)
// and returns each face as the cyclic sequence of vertices bounding it.
// A reporting convenience (§4.11); not part of the linear-time bound.
func (g *Graph) Faces() [][]int {
	seen := make(map[int]bool)
	var faces [][]int
	for v := 0; v < g.n; v++ {
		start := g.vertices[v].embFirst
		if !g.isArc(start) {
			continue
		}
		for a := start; ; {
			if !seen[a] {
				var face []int
				b := a
				for !seen[b] {
					seen[b] = true
					face = append(face, g.neighbor(g.twin(b)))
					b = g.arcs[g.twin(b)].next
				}
				faces = append(faces, face)
			}
			a = g.arcs[a].next
			if a == start {
				break
			}
		}
	}
	return faces
}

// EdgeList returns every original edge (u, v) with u < v, read off the
// input adjacency ring built by AddEdge -- independent of whatever
// state DFSInit/Embed has since built, so it is safe to call at any
// point in the graph's lifecycle.
func (g *Graph) EdgeList() [][2]int {
	var edges [][2]int
	for u := 0; u < g.n; u++ {
		start := g.vertices[u].firstArc
		if !g.isArc(start) {
			continue
		}
		for a := start; ; {
			v := g.arcs[a].neighbor
			if u < v {
				edges = append(edges, [2]int{u, v})
			}
			a = g.arcs[a].next
			if a == start {
				break
			}
		}
	}
	return edges
}

// Degree returns the input-graph degree of vertex v (number of edges
// added via AddEdge), independent of embedding state.
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= g.n {
		return 0
	}
	start := g.vertices[v].firstArc
	if !g.isArc(start) {
		return 0
	}
	d := 0
	for a := start; ; {
		d++
		a = g.arcs[a].next
		if a == start {
			break
		}
	}
	return d
}
