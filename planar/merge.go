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

// spliceEmb inserts the sublist [subFirst..subLast] (already a closed
// circular chain) into v's embedding ring at the given side: link 0
// puts it immediately before the current head, link 1 immediately
// after the current tail. Used by mergeVertex to absorb a whole root
// copy's ring in O(1).
func (g *Graph) spliceEmb(v, link, subFirst, subLast int) {
	first := g.vertices[v].embFirst
	last := g.vertices[v].embLast
	if !g.isArc(first) {
		g.vertices[v].embFirst = subFirst
		g.vertices[v].embLast = subLast
		return
	}
	if link == 0 {
		g.arcs[subLast].next = first
		g.arcs[first].prev = subLast
		g.arcs[last].next = subFirst
		g.arcs[subFirst].prev = last
		g.vertices[v].embFirst = subFirst
	} else {
		g.arcs[last].next = subFirst
		g.arcs[subFirst].prev = last
		g.arcs[subLast].next = first
		g.arcs[first].prev = subLast
		g.vertices[v].embLast = subLast
	}
}

// mergeVertex absorbs root copy r into its true identity w: every arc
// pointing at r is retargeted to w, r's entire ring is spliced into w's
// ring at side wPrevLink, and r is cleared (§4.6, _MergeVertex).
func (g *Graph) mergeVertex(w, wPrevLink, r int) {
	rFirst := g.vertices[r].embFirst
	rLast := g.vertices[r].embLast
	if g.isArc(rFirst) {
		for a := rFirst; ; {
			g.arcs[g.twin(a)].neighbor = w
			if a == rLast {
				break
			}
			a = g.arcs[a].next
		}
		g.spliceEmb(w, wPrevLink, rFirst, rLast)
	}
	g.clearRootCopy(r)
}

// rootTreeChildArc returns the arc in r's embedding ring whose neighbor
// is r's own rootChild -- the tree edge r was created for in
// buildSingletonBicomps, as distinct from any other typeTreeChild arc r
// may have accumulated by absorbing other bicomps in earlier merges.
// This is the one arc mergeBicomps marks when R itself is flipped; the
// others were already marked, independently, at their own merge time.
func (g *Graph) rootTreeChildArc(r int) int {
	child := g.vertices[r].rootChild
	start := g.vertices[r].embFirst
	if !g.isArc(start) {
		return nilIdx
	}
	for a := start; ; {
		if g.arcs[a].typ == typeTreeChild && g.neighbor(a) == child {
			return a
		}
		a = g.arcs[a].next
		if a == start {
			break
		}
	}
	return nilIdx
}

// hasMoreThanRootArc reports whether r's ring holds more than the single
// original tree-edge arc, the guard §4.6 puts on the invertVertex(R)
// call: flipping a one-arc ring is a no-op, so skip the O(deg R) work.
func (g *Graph) hasMoreThanRootArc(r int) bool {
	first := g.vertices[r].embFirst
	last := g.vertices[r].embLast
	return g.isArc(first) && first != last
}

func (g *Graph) clearRootCopy(r int) {
	g.vertices[r] = vertexRec{
		parent:                 nilIdx,
		rootChild:              nilIdx,
		leastAncestor:          g.n,
		lowpoint:               g.n,
		sortedDFSChildList:     nilIdx,
		separatedDFSChildList:  nilIdx,
		pertinentBicompList:    nilIdx,
		fwdArcList:             nilIdx,
		pertinentAdjacencyInfo: nilIdx,
		firstArc:               nilIdx,
		lastArc:                nilIdx,
		embFirst:               nilIdx,
		embLast:                nilIdx,
		index:                  r,
	}
	g.vertices[r].extFace[0] = nilIdx
	g.vertices[r].extFace[1] = nilIdx
}

// mergeBicomps drains the stack of (R, ROut)/(Z, ZPrevLink) frames
// Walkdown pushed while descending into blocked bicomps, merging each
// root copy into its true DFS parent and reconnecting the external face
// across the gap so the face remains a single cycle (§4.6,
// _MergeBicomps). It is always called just before embedding a back edge
// so that the bicomp containing the edge's far endpoint is fully
// joined to the active vertex's bicomp.
func (g *Graph) mergeBicomps() {
	for !g.stack.empty() {
		r, rOut, ok := g.stack.pop2()
		if !ok {
			return
		}
		z, zPrevLink, ok := g.stack.pop2()
		if !ok {
			return
		}

		far := g.vertices[r].extFace[1-rOut]
		farLink := 0
		if g.vertices[far].extFace[0] != r {
			farLink = 1
		}

		g.vertices[z].extFace[zPrevLink] = far
		g.vertices[far].extFace[farLink] = z

		if zPrevLink == rOut {
			// R is entering Z in the opposite rotational sense: flip R's
			// own ring now (skipped when it holds only the trivial root
			// arc), and XOR the inversion flag on R's own tree-child arc
			// so OrientVerticesInBicomp propagates the flip into whatever
			// of R's subtree isn't already physically part of this ring.
			rOut = 1 ^ zPrevLink
			if g.hasMoreThanRootArc(r) {
				g.invertVertex(r)
			}
			if arc := g.rootTreeChildArc(r); g.isArc(arc) {
				g.arcs[arc].inverted = !g.arcs[arc].inverted
			}
		}

		child := g.vertices[r].rootChild
		g.vertices[z].pertinentBicompList = g.lists.pertinent.delete(g.vertices[z].pertinentBicompList, child)
		g.vertices[z].separatedDFSChildList = g.lists.separated.delete(g.vertices[z].separatedDFSChildList, child)

		g.mergeVertex(z, zPrevLink, r)
	}
}
