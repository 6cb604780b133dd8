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

// Obstruction is the witness produced on a NonEmbeddable result: the
// vertex and edge set of a topological obstruction (a subdivision of
// K5 or K3,3 for planarity, K4 or K2,3 for outerplanarity), plus the
// minor it was classified as.
type Obstruction struct {
	Minor    string // "K5", "K3,3", "K4", or "K2,3"
	Vertices []int
	Edges    [][2]int
}

// isolateKuratowskiSubgraph builds the obstruction witness after a
// PLANAR embed attempt was certified non-embeddable (§4.9). It is a
// case-reduced routine: it covers the single blockage that a one-shot
// Walkdown failure actually exhibits, not Boyer's full six-way case
// split over multiple simultaneously blocked bicomps.
func (g *Graph) isolateKuratowskiSubgraph() error {
	obs, err := g.isolate(false)
	if err != nil {
		return err
	}
	g.lastObstruction = obs
	return nil
}

// isolateOuterplanarObstruction is the OUTERPLANAR counterpart,
// producing a K4 or K2,3 subdivision witness.
func (g *Graph) isolateOuterplanarObstruction() error {
	obs, err := g.isolate(true)
	if err != nil {
		return err
	}
	g.lastObstruction = obs
	return nil
}

// isolate implements §4.9 steps 1-5.
func (g *Graph) isolate(outerplanar bool) (*Obstruction, error) {
	spineSet := map[int]bool{}
	edgeSet := map[[2]int]bool{}

	// step 1: pertinent/visited vertices from the last blocked iteration.
	for v := 0; v < 2*g.n; v++ {
		if g.vertices[v].pertinentAdjacencyInfo != nilIdx {
			spineSet[v] = true
		}
	}
	for v := 0; v < g.n; v++ {
		if g.vertices[v].visitedInfo == g.blockedDFI {
			spineSet[v] = true
		}
	}

	// step 2: walk DFS tree-parent arcs from every collected vertex up
	// to its DFS root, unioning the path into the spine.
	frontier := make([]int, 0, len(spineSet))
	for v := range spineSet {
		frontier = append(frontier, v)
	}
	for _, v0 := range frontier {
		v := v0
		if v >= g.n {
			continue
		}
		for v != nilIdx {
			spineSet[v] = true
			p := g.vertices[v].parent
			if p == nilIdx {
				break
			}
			edgeSet[normEdge(v, p)] = true
			v = p
		}
	}

	// step 3: unembedded forward arcs incident to the spine supply the
	// extra cross connections that force non-planarity.
	for v := range spineSet {
		if v >= g.n {
			continue
		}
		head := g.vertices[v].fwdArcList
		if head == nilIdx {
			continue
		}
		for a := head; ; {
			w := g.neighbor(a)
			spineSet[v] = true
			spineSet[w] = true
			edgeSet[normEdge(v, w)] = true
			nxt := g.lists.fwdArcs.getNext(head, a)
			if nxt == nilIdx {
				break
			}
			a = nxt
		}
	}

	vertices := make([]int, 0, len(spineSet))
	for v := range spineSet {
		vertices = append(vertices, v)
	}
	edges := make([][2]int, 0, len(edgeSet))
	for e := range edgeSet {
		edges = append(edges, e)
	}

	// step 4: no smoothing is done, here or in the bridge's
	// ObstructionSubgraph, which only prunes unmarked vertices and edges;
	// the isolator reports the full unsmoothed vertex/edge set.

	// step 5: classify by branch-vertex count; classifyMinor always
	// picks one of the two labels for the flag in use.
	minor := classifyMinor(vertices, edges, outerplanar)

	return &Obstruction{Minor: minor, Vertices: vertices, Edges: edges}, nil
}

func normEdge(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// classifyMinor counts vertices with degree >= 3 in the marked subgraph
// ("branch vertices") and matches the expected obstruction shape.
func classifyMinor(vertices []int, edges [][2]int, outerplanar bool) string {
	deg := map[int]int{}
	for _, e := range edges {
		deg[e[0]]++
		deg[e[1]]++
	}
	branch := 0
	for _, v := range vertices {
		if deg[v] >= 3 {
			branch++
		}
	}
	if outerplanar {
		if branch < 4 {
			return "K2,3"
		}
		return "K4"
	}
	if branch <= 5 {
		return "K5"
	}
	return "K3,3"
}
