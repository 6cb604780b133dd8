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

// orientVerticesInEmbedding walks every live root copy (one whose
// bicomp never got merged away during the main loop) and propagates a
// consistent rotation sign through its subtree before joinBicomps folds
// the root copies back into their true parents (§4.7).
func (g *Graph) orientVerticesInEmbedding() {
	for v := 0; v < g.n; v++ {
		root := g.n + v
		if g.vertices[root].rootChild != nilIdx {
			g.orientVerticesInBicomp(root, false)
		}
	}
}

// orientVerticesInBicomp is an iterative DFS that starts at a still-live
// root copy and follows every typeTreeChild arc it can find -- not just
// the root's own, but any accumulated into its ring by an earlier
// MergeVertex call during the main loop -- XOR-propagating the
// accumulated inversion flag recorded on each such arc. A vertex is
// physically inverted (invertVertex) iff the accumulated flag is set
// when it is visited.
func (g *Graph) orientVerticesInBicomp(root int, preserveSigns bool) {
	type frame struct {
		v        int
		inverted bool
	}
	stack := []frame{{v: root, inverted: false}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		v, flag := top.v, top.inverted
		if flag && !preserveSigns {
			g.invertVertex(v)
		}

		for _, arc := range g.treeChildArcs(v) {
			childFlag := flag
			if g.arcs[arc].inverted {
				childFlag = !childFlag
			}
			stack = append(stack, frame{v: g.neighbor(arc), inverted: childFlag})
		}
	}
}

// treeChildArcs collects every typeTreeChild arc in v's embedding ring.
// A surviving root copy can carry several: one per sub-bicomp that
// chained into it via MergeVertex before the main loop gave up on
// merging any further.
func (g *Graph) treeChildArcs(v int) []int {
	start := g.vertices[v].embFirst
	if !g.isArc(start) {
		return nil
	}
	var arcs []int
	for a := start; ; {
		if g.arcs[a].typ == typeTreeChild {
			arcs = append(arcs, a)
		}
		a = g.arcs[a].next
		if a == start {
			break
		}
	}
	return arcs
}

// joinBicomps merges every root copy still alive after orientation into
// its true DFS parent, leaving only primary vertices with complete
// rotation systems (§4.7).
func (g *Graph) joinBicomps() {
	for v := 0; v < g.n; v++ {
		root := g.n + v
		if g.vertices[root].rootChild == nilIdx {
			continue
		}
		parent := g.vertices[root].parent
		g.mergeVertex(parent, 0, root)
	}
}
