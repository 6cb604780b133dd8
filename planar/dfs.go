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

// dfsFrame is one stack entry of the iterative DFS walk: the vertex
// being visited and the arc in its adjacency ring to resume from.
// Recursion is unrolled into an explicit stack so a path graph of N
// vertices never threatens the Go call stack (_EmbeddingInitialize in
// the original, which uses sp_Push2(theStack, uparent, e)).
type dfsFrame struct {
	v      int
	resume int // next input arc to examine when this frame resumes
}

// DFSInit is the embedding initializer (§4.2): it numbers every vertex
// with a DFI in visitation order, classifies every arc as tree or back,
// computes leastAncestor and lowpoint, builds sortedDFSChildList and
// (via bucket sort) separatedDFSChildList, and creates one singleton
// bicomp -- a root copy -- per non-root vertex so the main embedder
// loop has an external face to walk from iteration 0.
//
// DFSInit must run exactly once per graph, before Embed.
func (g *Graph) DFSInit() error {
	n := g.n
	g.order = make([]int, 0, n)
	dfi := 0

	for start := 0; start < n; start++ {
		if g.vertices[start].visited {
			continue
		}
		g.dfsRootCount++
		g.vertices[start].visited = true
		g.vertices[start].dfi = dfi
		g.vertices[start].parent = nilIdx
		g.order = append(g.order, start)
		dfi++

		var stack []dfsFrame
		stack = append(stack, dfsFrame{v: start, resume: g.vertices[start].firstArc})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			v := top.v
			a := top.resume

			if !g.isArc(a) {
				stack = stack[:len(stack)-1]
				continue
			}
			nextA := g.arcs[a].next
			if a == g.vertices[v].lastArc {
				top.resume = nilIdx
			} else {
				top.resume = nextA
			}

			w := g.arcs[a].neighbor
			twinA := g.twin(a)

			switch {
			case !g.vertices[w].visited:
				g.vertices[w].visited = true
				g.vertices[w].parent = v
				g.vertices[w].dfi = dfi
				g.order = append(g.order, w)
				dfi++

				g.arcs[a].typ = typeTreeChild
				g.arcs[twinA].typ = typeTreeParent

				g.vertices[v].sortedDFSChildList = g.lists.sorted.append(g.vertices[v].sortedDFSChildList, w)

				stack = append(stack, dfsFrame{v: w, resume: g.vertices[w].firstArc})

			case w == g.vertices[v].parent && !g.arcs[a].used:
				// the mirror of the tree-parent arc we already classified
				// when w (the parent) first visited v; mark it used so a
				// graph with no parallel edges never revisits it as a
				// bogus back edge.
				g.arcs[a].used = true

			case g.arcs[a].typ == typeUnknown:
				if g.vertices[w].dfi < g.vertices[v].dfi {
					// w is a proper ancestor of v: back edge v -> w.
					g.arcs[a].typ = typeBack
					g.arcs[twinA].typ = typeForward
					if g.vertices[w].dfi < g.vertices[v].leastAncestor {
						g.vertices[v].leastAncestor = g.vertices[w].dfi
					}
					// prepended so that traversal order matches descendant DFI.
					g.vertices[w].fwdArcList = g.lists.fwdArcs.prepend(g.vertices[w].fwdArcList, twinA)
				}
				// w already visited with higher DFI than v: the reverse
				// half of a back edge already classified from w's side;
				// nothing further to do here.
			}
		}
	}

	g.computeLowpoints()
	if err := g.buildSeparatedChildLists(); err != nil {
		return err
	}
	g.buildSingletonBicomps()
	g.sortVertices()
	g.flagsDFSNumbered = true
	return nil
}

// sortVertices realizes §6's sortVertices(g): the driver, classify, and
// Walkup all need "the vertex with DFI I" at every step. Rather than
// physically permute g.vertices into DFI order -- which would force
// rebuilding every ring in listCollection, since a ring node's index IS
// its vertex-id payload (list.go) -- this keeps vertices at their
// original input-id slots and relies on g.order, already built
// dfi-by-dfi during the DFS walk above, as the DFI->id side of the sort;
// g.vertices[v].dfi is the id->DFI side. Everywhere the spec says
// "vertex I", the engine says g.order[i]. Called once by DFSInit right
// after the tables it depends on (order, lowpoint, separated child
// lists) are in place.
func (g *Graph) sortVertices() {
	g.flagsSorted = true
}

// computeLowpoints runs the reverse-DFI pass: every child has a strictly
// larger DFI than its parent, so processing DFI N-1 downto 0 guarantees
// a child's lowpoint is finished before its parent needs it.
func (g *Graph) computeLowpoints() {
	n := g.n
	for i := n - 1; i >= 0; i-- {
		v := g.order[i]
		lp := g.vertices[v].leastAncestor
		c := g.vertices[v].sortedDFSChildList
		if c != nilIdx {
			child := c
			for {
				if g.vertices[child].lowpoint < lp {
					lp = g.vertices[child].lowpoint
				}
				nxt := g.lists.sorted.getNext(c, child)
				if nxt == nilIdx {
					break
				}
				child = nxt
			}
		}
		g.vertices[v].lowpoint = lp
	}
}

// buildSeparatedChildLists bucket-sorts every vertex's DFS children by
// lowpoint (§4.3), giving Walkdown's activity test O(1) access to the
// minimum unmerged lowpoint via the list head.
func (g *Graph) buildSeparatedChildLists() error {
	n := g.n
	for v := 0; v < n; v++ {
		head := g.vertices[v].sortedDFSChildList
		if head == nilIdx {
			continue
		}
		var children []int
		for cur := head; ; {
			children = append(children, cur)
			nxt := g.lists.sorted.getNext(head, cur)
			if nxt == nilIdx {
				break
			}
			cur = nxt
		}
		sorted := bucketSortByLowpoint(children, func(c int) int { return g.vertices[c].lowpoint }, n)
		sepHead := nilIdx
		for _, c := range sorted {
			sepHead = g.lists.separated.append(sepHead, c)
		}
		g.vertices[v].separatedDFSChildList = sepHead
	}
	return nil
}

// buildSingletonBicomps gives every non-root vertex v a root copy at
// index n+v representing the trivial bicomp formed by the tree edge
// (parent(v), v); its external face is the single edge back to v. The
// embedding's working adjacency ring for v and its root copy starts out
// containing only this tree edge: back edges are embedded later by
// Walkdown, and forward-arc stubs are embedded or reported as the
// witness of non-planarity.
func (g *Graph) buildSingletonBicomps() error {
	n := g.n
	for i := 0; i < n; i++ {
		v := g.order[i]
		p := g.vertices[v].parent
		if p == nilIdx {
			continue
		}
		root := n + v
		g.vertices[root].rootChild = v
		g.vertices[root].parent = p
		g.vertices[root].dfi = g.vertices[v].dfi
		g.vertices[root].lowpoint = g.vertices[v].lowpoint
		g.vertices[root].leastAncestor = g.vertices[v].leastAncestor

		a, b, err := g.allocArcPair(v, root)
		if err != nil {
			return err
		}
		g.arcs[a].typ = typeTreeParent // v's ring: arc up to its own root copy
		g.arcs[b].typ = typeTreeChild
		g.appendArcEmb(v, a)
		g.appendArcEmb(root, b)

		g.vertices[v].extFace[0] = root
		g.vertices[v].extFace[1] = root
		g.vertices[root].extFace[0] = v
		g.vertices[root].extFace[1] = v
		// p.pertinentBicompList stays empty here: a singleton bicomp is
		// not pertinent to its parent until WalkUp finds a back edge
		// that makes it so.
	}
	return nil
}
