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

// activity classifies vertex v in step i (§4.5): inactive vertices have
// no unembedded edge reaching i or higher; internally active ones are
// pertinent but not (yet) externally active; externally active ones
// still have a path out to an ancestor of i or above.
type activity int

const (
	inactive activity = iota
	internallyActive
	externallyActive
)

func (g *Graph) classify(v, i int) activity {
	pertinent := g.vertices[v].pertinentAdjacencyInfo != nilIdx || g.vertices[v].pertinentBicompList != nilIdx
	if g.vertices[v].leastAncestor < i {
		return externallyActive
	}
	if c := g.vertices[v].separatedDFSChildList; c != nilIdx {
		if g.vertices[c].lowpoint < i {
			return externallyActive
		}
	}
	if pertinent {
		return internallyActive
	}
	return inactive
}

// walkDown embeds back edges reachable from root copy r's bicomp,
// merging in further bicomps along the way as Walkup's earlier pass
// marked them pertinent (§4.5). Returns NonEmbeddable if it cannot make
// progress on either external-face side -- the driver then triggers the
// blocked-iteration handler and, eventually, the isolator.
func (g *Graph) walkDown(i, r int) Result {
	for rootSide := 0; rootSide < 2; rootSide++ {
		w := g.vertices[r].extFace[rootSide]
		wPrevLink := g.extFaceBackLink(r, w, rootSide)

		for {
			if w == r {
				break
			}

			if g.vertices[w].pertinentAdjacencyInfo != nilIdx {
				g.mergeBicomps()
				if res := g.embedBackEdge(i, r, rootSide, w, wPrevLink); res != OK {
					return res
				}
				continue
			}

			if g.vertices[w].pertinentBicompList != nilIdx {
				rPrime := g.vertices[w].pertinentBicompList
				rRootSide := 0
				g.stack.push2(w, wPrevLink)
				g.stack.push2(rPrime+g.n, rRootSide)

				x := g.vertices[rPrime+g.n].extFace[0]
				y := g.vertices[rPrime+g.n].extFace[1]
				xClass := g.classify(x, i)

				if xClass == internallyActive {
					w = x
					wPrevLink = g.extFaceBackLink(rPrime+g.n, x, 0)
					continue
				}
				yClass := g.classify(y, i)
				if yClass == internallyActive {
					w = y
					wPrevLink = g.extFaceBackLink(rPrime+g.n, y, 1)
					continue
				}
				if xClass != inactive {
					w = x
					wPrevLink = g.extFaceBackLink(rPrime+g.n, x, 0)
					continue
				}
				if yClass != inactive {
					w = y
					wPrevLink = g.extFaceBackLink(rPrime+g.n, y, 1)
					continue
				}
				return g.handleBlockedDescendantBicomp(rPrime + g.n)
			}

			if g.classify(w, i) == inactive {
				nextW, nextLink := g.handleInactiveVertex(w, wPrevLink)
				w, wPrevLink = nextW, nextLink
				continue
			}

			// externally active: this side of the face stops here.
			break
		}

		g.vertices[r].extFace[rootSide] = w
		g.vertices[w].extFace[wPrevLink] = r
		if w == r {
			break
		}
	}
	return OK
}

// extFaceBackLink returns which of next's two external-face links points
// back toward from, so the walk knows which side to continue from once
// it steps onto next.
func (g *Graph) extFaceBackLink(from, next, arriveLink int) int {
	if g.vertices[next].extFace[0] == from {
		return 0
	}
	if g.vertices[next].extFace[1] == from {
		return 1
	}
	return arriveLink
}

// handleInactiveVertex advances past a vertex with no remaining pertinent
// or active connection on this pass: skip to the next external-face
// vertex (_HandleInactiveVertex in the original).
func (g *Graph) handleInactiveVertex(w, wPrevLink int) (int, int) {
	nextLink := 1 ^ wPrevLink
	next := g.vertices[w].extFace[nextLink]
	back := g.extFaceBackLink(w, next, nextLink)
	return next, back
}

// handleBlockedDescendantBicomp is the core's default hook: push the
// blocking bicomp root onto the stack and report non-embeddability (the
// isolator works from the pertinence and visited marks and does not read
// the stack). Extensions (SEARCH_K23, SEARCH_K33) would
// override this to keep searching instead of stopping.
func (g *Graph) handleBlockedDescendantBicomp(rPrimeRoot int) Result {
	g.stack.push2(rPrimeRoot, 0)
	return NonEmbeddable
}

// embedBackEdge moves the forward arc recorded at W's ancestor chain
// into R's adjacency ring at rootSide, and its twin into W's ring at
// wPrevLink, realizing the back edge (R's DFS child, W) in the
// embedding and updating the external-face endpoints.
func (g *Graph) embedBackEdge(i, r, rootSide, w, wPrevLink int) Result {
	fwd := g.vertices[w].pertinentAdjacencyInfo
	if fwd == nilIdx {
		return Internal
	}
	twinArc := g.twin(fwd)

	// fwd was recorded in fwdArcList(anc) -- anc, the vertex whose DFI is
	// i, is always the forward arc's ancestor endpoint, since Walkup only
	// ever marks vertices pertinent for the iteration that is currently
	// walking its fwdArcList.
	anc := g.order[i]
	g.vertices[anc].fwdArcList = g.lists.fwdArcs.delete(g.vertices[anc].fwdArcList, fwd)

	g.appendArcEmbAtLink(r, rootSide, fwd)
	g.appendArcEmbAtLink(w, wPrevLink, twinArc)

	g.vertices[w].pertinentAdjacencyInfo = nilIdx
	return OK
}

// appendArcEmbAtLink inserts a single arc at the given side of v's ring,
// using the same splice convention as appendArcEmb/prependArcEmb.
func (g *Graph) appendArcEmbAtLink(v, link, a int) {
	if link == 0 {
		g.prependArcEmb(v, a)
	} else {
		g.appendArcEmb(v, a)
	}
}
