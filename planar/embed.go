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

// functionTable is the strategy bundle that lets an extension override
// the core's default blockage handling without touching the driver
// loop (graphFunctionTable.h in the original). The core only fills in
// the PLANAR/OUTERPLANAR defaults; DrawPlanar/SearchK23/SearchK33 are
// named in Flags but have no default body (ErrExtensionNotInstalled).
type functionTable struct {
	handleBlockedDescendantBicomp func(g *Graph, rPrimeRoot int) Result
	handleBlockedEmbedIteration   func(g *Graph, i int) Result
	embedPostprocess              func(g *Graph, overallResult Result) (Result, error)
}

func defaultFunctionTable() *functionTable {
	return &functionTable{
		handleBlockedDescendantBicomp: (*Graph).handleBlockedDescendantBicomp,
		handleBlockedEmbedIteration:   defaultHandleBlockedEmbedIteration,
		embedPostprocess:              defaultEmbedPostprocess,
	}
}

// defaultHandleBlockedEmbedIteration is the core's policy: stop at the
// first blockage. Extensions that can tolerate a partial blockage (e.g.
// while searching only for a K3,3 subdivision) would install a
// different hook here.
func defaultHandleBlockedEmbedIteration(g *Graph, i int) Result {
	return NonEmbeddable
}

// Embed runs the Boyer-Myrvold driver (§4.8, gp_Embed): DFS-initialize
// if not already done, then iterate I from N-1 down to 0, priming
// pertinence with Walkup and discharging it with Walkdown. Vertices are
// not physically sorted into DFI order (§6's sortVertices is realized
// here as an indirection instead of a swap pass), so I is the DFI and
// g.order[I] is the vertex it names; every per-step field access goes
// through that lookup, while thresholds compared against I itself
// (leastAncestor, lowpoint, visitedInfo) are already DFI-space and need
// no translation. Returns OK with a completed rotation system,
// NonEmbeddable with the engine state frozen for the isolator, or
// Internal on a broken invariant.
func (g *Graph) Embed(flags Flags) (Result, error) {
	if flags&(DrawPlanar|SearchK23|SearchK33) != 0 {
		return Internal, ErrExtensionNotInstalled
	}
	g.embedFlags = flags

	if !g.flagsDFSNumbered {
		if err := g.DFSInit(); err != nil {
			return Internal, err
		}
	}

	overall := OK
	for i := g.n - 1; i >= 0; i-- {
		v := g.order[i]
		g.vertices[v].visitedInfo = g.n

		if head := g.vertices[v].fwdArcList; head != nilIdx {
			for a := head; ; {
				w := g.neighbor(a)
				g.walkUp(i, w, a)
				nxt := g.lists.fwdArcs.getNext(head, a)
				if nxt == nilIdx {
					break
				}
				a = nxt
				// walkUp never removes forward arcs (embedBackEdge does,
				// later, from walkDown); this guard only stops the walk if
				// v's list has been emptied.
				if g.vertices[v].fwdArcList == nilIdx {
					break
				}
			}
		}

		blocked := false
		if head := g.vertices[v].sortedDFSChildList; head != nilIdx {
			for c := head; ; {
				if g.vertices[c].pertinentBicompList != nilIdx {
					if res := g.walkDown(i, c+g.n); res == NonEmbeddable {
						blocked = true
						break
					}
				}
				nxt := g.lists.sorted.getNext(head, c)
				if nxt == nilIdx {
					break
				}
				c = nxt
			}
		}

		g.vertices[v].pertinentBicompList = nilIdx

		if g.vertices[v].fwdArcList != nilIdx || blocked {
			res := g.hooks.handleBlockedEmbedIteration(g, i)
			if res != OK {
				overall = NonEmbeddable
				g.blockedDFI = i
				break
			}
		}
	}

	return g.hooks.embedPostprocess(g, overall)
}

// defaultEmbedPostprocess orients and joins on success; on blockage it
// dispatches to the planar or outerplanar isolator depending on which
// flag Embed ran with.
func defaultEmbedPostprocess(g *Graph, overall Result) (Result, error) {
	if overall == OK {
		g.lastObstruction = nil
		g.orientVerticesInEmbedding()
		g.joinBicomps()
		if err := g.testEmbedResultIntegrity(); err != nil {
			return Internal, err
		}
		return OK, nil
	}

	if g.embedFlags&Outerplanar != 0 {
		if err := g.isolateOuterplanarObstruction(); err != nil {
			return Internal, err
		}
	} else {
		if err := g.isolateKuratowskiSubgraph(); err != nil {
			return Internal, err
		}
	}
	return NonEmbeddable, nil
}

// testEmbedResultIntegrity checks Euler's formula against the realized
// rotation system, a cheap O(n) sanity check run once after a successful
// embed (§8). countFaces traces each component's faces separately, so
// every component with at least one edge contributes V - E + F = 2 and
// every isolated vertex contributes 1.
func (g *Graph) testEmbedResultIntegrity() error {
	edges := 0
	for v := 0; v < g.n; v++ {
		a := g.vertices[v].embFirst
		if !g.isArc(a) {
			continue
		}
		for {
			edges++
			a = g.arcs[a].next
			if a == g.vertices[v].embFirst {
				break
			}
		}
	}
	edges /= 2
	faces := g.countFaces()
	edgeComponents := 0
	for r := 0; r < g.n; r++ {
		if g.vertices[r].parent == nilIdx && g.isArc(g.vertices[r].embFirst) {
			edgeComponents++
		}
	}
	v := g.n
	if v-edges+faces != g.dfsRootCount+edgeComponents {
		return ErrInternal
	}
	return nil
}

// countFaces walks the embedding's face traversal (the standard "next
// arc after twin in rotation" rule) to count faces for the Euler check.
func (g *Graph) countFaces() int {
	seen := make(map[int]bool)
	faces := 0
	for v := 0; v < g.n; v++ {
		start := g.vertices[v].embFirst
		if !g.isArc(start) {
			continue
		}
		for a := start; ; {
			if !seen[a] {
				faces++
				b := a
				for !seen[b] {
					seen[b] = true
					b = g.arcs[g.twin(b)].next
				}
			}
			a = g.arcs[a].next
			if a == start {
				break
			}
		}
	}
	return faces
}
