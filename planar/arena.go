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

// vertexRec is a vertex record. Indices [0,N) are primary vertices,
// [N,2N) are virtual root copies (see §3).
type vertexRec struct {
	index int // original vertex id; this record's position in g.vertices
	dfi   int // DFI assigned by DFSInit; g.order is the dfi->id inverse used everywhere a DFI needs to resolve to a vertex

	parent  int
	visited bool

	// rootChild is nilIdx for a primary vertex. For a root copy (index
	// in [n,2n)) it names the DFS child whose bicomp this copy roots;
	// the copy is merged back into vertices[parent] once that bicomp is
	// fully resolved (§4.6).
	rootChild int

	visitedInfo   int
	leastAncestor int
	lowpoint      int

	sortedDFSChildList    int
	separatedDFSChildList int
	pertinentBicompList   int

	fwdArcList int

	pertinentAdjacencyInfo int

	// firstArc/lastArc bound the static input adjacency ring built by
	// AddEdge; DFSInit walks it to discover the graph and never touches
	// it again.
	firstArc, lastArc int

	// embFirst/embLast bound the embedding ring: the rotation system
	// Walkdown/MergeVertex/OrientVerticesInBicomp actually build and
	// splice. It starts out holding only the tree-to-root-copy arc and
	// grows as back edges are embedded.
	embFirst, embLast int

	extFace              [2]int
	extFaceInversionFlag bool
}

// arcRec is a half-edge. Arcs come in twinned pairs at indices 2k, 2k+1.
type arcRec struct {
	neighbor   int
	prev, next int
	typ        arcType
	inverted   bool
	used       bool
}

// Graph is the arena-backed engine graph: N primary vertices, N root
// copies, and a preallocated arc arena. All linkage is by index, never
// by pointer, so the whole structure is trivially relocatable and
// serializable (§9).
type Graph struct {
	n int // order (primary vertex count)

	vertices []vertexRec // length 2*n
	arcs     []arcRec    // length 2*arcCapacity
	arcFree  int         // next unused arc pair

	dfsRootCount int   // number of DFS tree roots found (connected components)
	order        []int // dfi -> vertex id, filled by DFSInit
	blockedDFI   int   // DFI of the step Embed was processing when it gave up, consumed by isolate()

	stack *intStack
	lists *listCollection // one ring each for sortedDFSChildList/separatedDFSChildList/pertinentBicompList/fwdArcList

	embedFlags Flags
	hooks      *functionTable

	flagsDFSNumbered bool
	flagsSorted      bool

	lastObstruction *Obstruction
}

// LastObstruction returns the witness recorded by the most recent
// NonEmbeddable Embed call, or nil if the graph was never embedded or
// last embedded successfully.
func (g *Graph) LastObstruction() *Obstruction {
	return g.lastObstruction
}

// NewGraph allocates an engine graph for at most maxVertices vertices
// and an arc arena of maxVertices*4 twinned arc pairs (at least 8). The
// pairs hold both the edges added by AddEdge and the tree-edge pairs
// DFSInit allocates for the singleton bicomps, which leaves room for any
// simple planar graph of that order (at most 3*maxVertices-6 edges);
// AddEdge returns ErrCapacity once the arena is full.
func NewGraph(maxVertices int) (*Graph, error) {
	if maxVertices <= 0 {
		return nil, ErrCapacity
	}
	g := &Graph{}
	if err := g.init(maxVertices); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) init(n int) error {
	g.n = n
	g.vertices = make([]vertexRec, 2*n)
	arcCap := 4 * n
	if arcCap < 8 {
		arcCap = 8
	}
	g.arcs = make([]arcRec, 2*arcCap)
	g.arcFree = 0
	g.stack = newIntStack()
	g.lists = newListCollection(n)
	g.hooks = defaultFunctionTable()
	g.reinitVertices()
	return nil
}

func (g *Graph) reinitVertices() {
	for i := range g.vertices {
		g.vertices[i] = vertexRec{
			parent:                 nilIdx,
			leastAncestor:          g.n,
			lowpoint:               g.n,
			visitedInfo:            g.n, // sentinel: any value > current I means unvisited
			sortedDFSChildList:     nilIdx,
			separatedDFSChildList:  nilIdx,
			pertinentBicompList:    nilIdx,
			fwdArcList:             nilIdx,
			pertinentAdjacencyInfo: nilIdx,
			firstArc:               nilIdx,
			lastArc:                nilIdx,
			embFirst:               nilIdx,
			embLast:                nilIdx,
			index:                  i,
			rootChild:              nilIdx,
		}
		g.vertices[i].extFace[0] = nilIdx
		g.vertices[i].extFace[1] = nilIdx
	}
	g.flagsDFSNumbered = false
	g.flagsSorted = false
	g.dfsRootCount = 0
}

// ReinitializeGraph clears DFS/embedding state (vertex flags, arcs) but
// keeps the arena allocation, matching the lifecycle contract in §6/§5:
// an already-embedded graph can be re-embedded idempotently.
func (g *Graph) ReinitializeGraph() error {
	for i := range g.arcs {
		g.arcs[i] = arcRec{}
	}
	g.arcFree = 0
	g.reinitVertices()
	return nil
}

// CopyGraph deep-copies src's arc and vertex arrays into dst, which must
// have been created with at least src's capacity.
func CopyGraph(dst, src *Graph) error {
	if len(dst.vertices) < len(src.vertices) || len(dst.arcs) < len(src.arcs) {
		return ErrCapacity
	}
	copy(dst.vertices, src.vertices)
	copy(dst.arcs, src.arcs)
	dst.n = src.n
	dst.arcFree = src.arcFree
	dst.dfsRootCount = src.dfsRootCount
	dst.flagsDFSNumbered = src.flagsDFSNumbered
	dst.flagsSorted = src.flagsSorted
	return nil
}

// FreeGraph releases the arena. Present for symmetry with the C
// lifecycle contract in §6; in Go the garbage collector does the actual
// work once the last reference to g is dropped.
func (g *Graph) FreeGraph() {
	g.vertices = nil
	g.arcs = nil
	g.stack = nil
	g.lists = nil
}

// N returns the graph order (primary vertex count).
func (g *Graph) N() int { return g.n }

func (g *Graph) isArc(a int) bool { return a != nilIdx }

// twin maps an arc to its paired half-edge via the fixed XOR offset (§3).
func (g *Graph) twin(a int) int { return a ^ 1 }

func (g *Graph) neighbor(a int) int  { return g.arcs[a].neighbor }
func (g *Graph) arcType_(a int) arcType { return g.arcs[a].typ }

func (g *Graph) setNeighbor(a, v int) { g.arcs[a].neighbor = v }

func (g *Graph) prevArc(a int) int { return g.arcs[a].prev }
func (g *Graph) nextArc(a int) int { return g.arcs[a].next }
func (g *Graph) setPrevArc(a, p int) { g.arcs[a].prev = p }
func (g *Graph) setNextArc(a, nx int) { g.arcs[a].next = nx }

func (g *Graph) firstArc(v int) int { return g.vertices[v].firstArc }
func (g *Graph) lastArc(v int) int  { return g.vertices[v].lastArc }
func (g *Graph) setFirstArc(v, a int) { g.vertices[v].firstArc = a }
func (g *Graph) setLastArc(v, a int)  { g.vertices[v].lastArc = a }

// arcAtLink returns the arc at link 0 (firstArc) or 1 (lastArc) of v.
func (g *Graph) arcAtLink(v, link int) int {
	if link == 0 {
		return g.vertices[v].firstArc
	}
	return g.vertices[v].lastArc
}

func (g *Graph) setArcAtLink(v, link, a int) {
	if link == 0 {
		g.vertices[v].firstArc = a
	} else {
		g.vertices[v].lastArc = a
	}
}

// setAdjacentArc sets the link-side neighbor pointer of arc a (i.e. its
// prev if link==0 else its next) -- the arc-record analogue of
// arcAtLink, used by mergeVertex's list splice (§4.6).
func (g *Graph) setAdjacentArc(a, link, target int) {
	if link == 0 {
		g.arcs[a].prev = target
	} else {
		g.arcs[a].next = target
	}
}

// arcAtLinkEmb/setArcAtLinkEmb are the embedding-ring analogues of
// arcAtLink/setArcAtLink, used throughout merge.go/orient.go/walkdown.go.
func (g *Graph) arcAtLinkEmb(v, link int) int {
	if link == 0 {
		return g.vertices[v].embFirst
	}
	return g.vertices[v].embLast
}

func (g *Graph) setArcAtLinkEmb(v, link, a int) {
	if link == 0 {
		g.vertices[v].embFirst = a
	} else {
		g.vertices[v].embLast = a
	}
}

// appendArcEmb links arc a into v's embedding ring, at the tail (link 1
// side), extending the rotation.
func (g *Graph) appendArcEmb(v, a int) {
	last := g.vertices[v].embLast
	if !g.isArc(last) {
		g.arcs[a].prev = a
		g.arcs[a].next = a
		g.vertices[v].embFirst = a
		g.vertices[v].embLast = a
		return
	}
	first := g.vertices[v].embFirst
	g.arcs[last].next = a
	g.arcs[a].prev = last
	g.arcs[a].next = first
	g.arcs[first].prev = a
	g.vertices[v].embLast = a
}

// prependArcEmb links arc a into v's embedding ring, at the head (link 0
// side).
func (g *Graph) prependArcEmb(v, a int) {
	last := g.vertices[v].embLast
	if !g.isArc(last) {
		g.arcs[a].prev = a
		g.arcs[a].next = a
		g.vertices[v].embFirst = a
		g.vertices[v].embLast = a
		return
	}
	first := g.vertices[v].embFirst
	g.arcs[last].next = a
	g.arcs[a].prev = last
	g.arcs[a].next = first
	g.arcs[first].prev = a
	g.vertices[v].embFirst = a
}

// allocArcPair returns a fresh twinned pair of arc indices (u->v, v->u).
func (g *Graph) allocArcPair(u, v int) (int, int, error) {
	if g.arcFree+2 > len(g.arcs) {
		return nilIdx, nilIdx, ErrCapacity
	}
	a := g.arcFree
	b := a + 1
	g.arcFree += 2
	g.arcs[a] = arcRec{neighbor: v, prev: nilIdx, next: nilIdx, used: true}
	g.arcs[b] = arcRec{neighbor: u, prev: nilIdx, next: nilIdx, used: true}
	return a, b, nil
}

// appendArc links arc a into v's circular adjacency list, right after
// the current lastArc (i.e. at link 1), extending the ring.
func (g *Graph) appendArc(v, a int) {
	last := g.vertices[v].lastArc
	if !g.isArc(last) {
		g.arcs[a].prev = a
		g.arcs[a].next = a
		g.vertices[v].firstArc = a
		g.vertices[v].lastArc = a
		return
	}
	first := g.vertices[v].firstArc
	g.arcs[last].next = a
	g.arcs[a].prev = last
	g.arcs[a].next = first
	g.arcs[first].prev = a
	g.vertices[v].lastArc = a
}

// AddEdge adds an undirected simple edge (u, v) to the graph, rejecting
// self-loops and parallel edges per the Non-goals in SPEC_FULL.md §1.
// u and v are original (pre-DFS) vertex ids in [0, N).
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return ErrCapacity
	}
	if u == v {
		return ErrSelfLoop
	}
	for a := g.vertices[u].firstArc; g.isArc(a); a = g.arcs[a].next {
		if g.arcs[a].neighbor == v {
			return ErrParallelEdge
		}
		if a == g.vertices[u].lastArc {
			break
		}
	}
	a, b, err := g.allocArcPair(u, v)
	if err != nil {
		return err
	}
	g.appendArc(u, a)
	g.appendArc(v, b)
	return nil
}

// invertVertex flips V's rotation: swap next/prev on every arc in its
// adjacency list, swap first/last, and swap the two external-face
// links. O(deg V); used only when reorienting a bicomp root or an
// isolated external-face path (§4.1).
func (g *Graph) invertVertex(v int) {
	a := g.vertices[v].embFirst
	if g.isArc(a) {
		start := a
		for {
			nx := g.arcs[a].next
			g.arcs[a].next = g.arcs[a].prev
			g.arcs[a].prev = nx
			a = nx
			if a == start {
				break
			}
		}
	}
	g.vertices[v].embFirst, g.vertices[v].embLast = g.vertices[v].embLast, g.vertices[v].embFirst
	g.vertices[v].extFace[0], g.vertices[v].extFace[1] = g.vertices[v].extFace[1], g.vertices[v].extFace[0]
	g.vertices[v].extFaceInversionFlag = !g.vertices[v].extFaceInversionFlag
}
