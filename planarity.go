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

package graphlib

import (
	"fmt"

	"github.com/flxj/planarity/planar"
)

var (
	errNotPlanarDigraph  = fmt.Errorf("planarity engine: %w", errNotSimple)
	errNotPlanarMulti    = fmt.Errorf("planarity engine requires a simple graph: %w", errNotSimple)
	errNoObstruction     = fmt.Errorf("embedding carries no obstruction witness")
	errColouringDiverged = fmt.Errorf("greedy four-colouring did not converge")
)

// KeyIndex maps a graphlib vertex key to the dense [0,n) index the
// planar engine's arena expects, and back.
type KeyIndex[K comparable] struct {
	toIndex map[K]int
	toKey   []K
}

// Index returns the dense engine index for key k.
func (ki *KeyIndex[K]) Index(k K) (int, bool) {
	i, ok := ki.toIndex[k]
	return i, ok
}

// Key returns the vertex key for dense engine index i.
func (ki *KeyIndex[K]) Key(i int) K {
	return ki.toKey[i]
}

// BuildEngineGraph translates a graphlib.Graph into the bare planar.Graph
// the embedding engine operates on. The engine has no notion of
// directed edges, self-loops, or parallel edges, so any of those in g
// is rejected rather than silently discarded.
func BuildEngineGraph[K comparable, V any, W number | any](g Graph[K, V, W]) (*planar.Graph, *KeyIndex[K], error) {
	if g.IsDigraph() {
		return nil, nil, errNotPlanarDigraph
	}
	if g.IsMulti() {
		return nil, nil, errNotPlanarMulti
	}

	vs, err := g.AllVertexes()
	if err != nil {
		return nil, nil, err
	}
	es, err := g.AllEdges()
	if err != nil {
		return nil, nil, err
	}

	ki := &KeyIndex[K]{
		toIndex: make(map[K]int, len(vs)),
		toKey:   make([]K, len(vs)),
	}
	for i, v := range vs {
		ki.toIndex[v.Key] = i
		ki.toKey[i] = v.Key
	}

	pg, err := planar.NewGraph(len(vs))
	if err != nil {
		return nil, nil, err
	}
	for _, e := range es {
		if e.Head == e.Tail {
			return nil, nil, fmt.Errorf("planarity: self-loop on %v: %w", e.Head, planar.ErrSelfLoop)
		}
		u, ok := ki.toIndex[e.Head]
		if !ok {
			return nil, nil, fmt.Errorf("planarity: %w", errVertexNotExists)
		}
		v, ok := ki.toIndex[e.Tail]
		if !ok {
			return nil, nil, fmt.Errorf("planarity: %w", errVertexNotExists)
		}
		if err := pg.AddEdge(u, v); err != nil {
			if err == planar.ErrParallelEdge {
				return nil, nil, fmt.Errorf("planarity: %w", errNotPlanarMulti)
			}
			return nil, nil, fmt.Errorf("planarity: %w", err)
		}
	}
	return pg, ki, nil
}

// KeyObstruction is the key-level translation of a planar.Obstruction:
// the witness subdivision reported in terms of the caller's own vertex
// keys rather than the engine's dense indices.
type KeyObstruction[K comparable] struct {
	Minor    string
	Vertices []K
	Edges    [][2]K
}

// Embedding is the key-level view of a planar.Graph embedding attempt:
// every rotation, face, and (on non-embeddability) obstruction vertex
// reported in terms of the caller's own vertex keys.
type Embedding[K comparable] struct {
	Result      planar.Result
	Obstruction *KeyObstruction[K]

	g  *planar.Graph
	ki *KeyIndex[K]
}

// RotationAt returns the cyclic neighbor order around key k in the
// realized embedding. Only meaningful when Result == planar.OK.
func (e *Embedding[K]) RotationAt(k K) []K {
	i, ok := e.ki.Index(k)
	if !ok {
		return nil
	}
	return e.translate(e.g.RotationAt(i))
}

// Faces returns every face of the embedding as the cyclic sequence of
// vertex keys bounding it.
func (e *Embedding[K]) Faces() [][]K {
	faces := e.g.Faces()
	out := make([][]K, 0, len(faces))
	for _, f := range faces {
		out = append(out, e.translate(f))
	}
	return out
}

func (e *Embedding[K]) translate(idx []int) []K {
	out := make([]K, 0, len(idx))
	for _, i := range idx {
		if i >= 0 && i < len(e.ki.toKey) {
			out = append(out, e.ki.Key(i))
		}
	}
	return out
}

// Embed builds the engine graph for g, runs the Boyer-Myrvold method
// with the given flags, and translates the result back to g's own
// vertex keys (§4.11). On planar.OK, Embedding carries the realized
// rotation system. On planar.NonEmbeddable, it carries the isolated
// obstruction; use ObstructionSubgraph to materialize it as a
// graphlib.Graph for rendering or comparison.
func Embed[K comparable, V any, W number | any](g Graph[K, V, W], flags planar.Flags) (*Embedding[K], error) {
	pg, ki, err := BuildEngineGraph(g)
	if err != nil {
		return nil, err
	}
	res, err := pg.Embed(flags)
	if err != nil {
		return nil, err
	}

	emb := &Embedding[K]{Result: res, g: pg, ki: ki}
	if res == planar.OK {
		return emb, nil
	}

	obs := pg.LastObstruction()
	if obs == nil {
		return emb, nil
	}
	kobs := &KeyObstruction[K]{Minor: obs.Minor}
	for _, v := range obs.Vertices {
		if v >= 0 && v < len(ki.toKey) {
			kobs.Vertices = append(kobs.Vertices, ki.Key(v))
		}
	}
	for _, e := range obs.Edges {
		if e[0] >= 0 && e[0] < len(ki.toKey) && e[1] >= 0 && e[1] < len(ki.toKey) {
			kobs.Edges = append(kobs.Edges, [2]K{ki.Key(e[0]), ki.Key(e[1])})
		}
	}
	emb.Obstruction = kobs
	return emb, nil
}

// ObstructionSubgraph materializes a NonEmbeddable Embedding's witness
// as a graphlib.Graph: every vertex not named by the obstruction is
// pruned via InducedSubgraph, then every edge the isolator did not mark
// is pruned via SpanningSubgraph, leaving exactly the reported
// subdivision (subgraphs.go, reused rather than reimplemented).
func ObstructionSubgraph[K comparable, W number](g Graph[K, any, W], emb *Embedding[K]) (Graph[K, any, W], error) {
	if emb.Obstruction == nil {
		return nil, errNoObstruction
	}
	keep := make(map[K]bool, len(emb.Obstruction.Vertices))
	for _, k := range emb.Obstruction.Vertices {
		keep[k] = true
	}

	vs, err := g.AllVertexes()
	if err != nil {
		return nil, err
	}
	var drop []K
	for _, v := range vs {
		if !keep[v.Key] {
			drop = append(drop, v.Key)
		}
	}
	ng, err := InducedSubgraph[K, W](g, drop)
	if err != nil {
		return nil, err
	}

	marked := make(map[[2]K]bool, len(emb.Obstruction.Edges))
	for _, e := range emb.Obstruction.Edges {
		marked[e] = true
		marked[[2]K{e[1], e[0]}] = true
	}
	es, err := ng.AllEdges()
	if err != nil {
		return nil, err
	}
	var unmarked [][]K
	for _, e := range es {
		if !marked[[2]K{e.Head, e.Tail}] {
			unmarked = append(unmarked, []K{e.Head, e.Tail})
		}
	}
	return SpanningSubgraph[K, W](ng, unmarked)
}

// FourColor certifies g as planar (a prior, internal Embed) and then
// applies the existing greedy vertex-colouring routine (colour.go)
// bounded to 4 colours. Four colours are always sufficient for a planar
// graph, but the greedy backtracking search is not guaranteed to find a
// valid assignment within a bounded number of attempts, so this is
// documented as a heuristic rather than a from-scratch four colour
// theorem prover. Each retry gets a different starting vertex for free,
// since the underlying graph stores vertices in a map and AllVertexes
// iterates it in Go's randomized order.
func FourColor[K comparable, V any, W number](g Graph[K, V, W]) (map[K]int, error) {
	pg, _, err := BuildEngineGraph(g)
	if err != nil {
		return nil, err
	}
	res, err := pg.Embed(planar.Planar)
	if err != nil {
		return nil, err
	}
	if res != planar.OK {
		return nil, fmt.Errorf("planarity: graph is not planar, four-colouring does not apply")
	}

	const maxAttempts = 8
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		colours, err := VertexColouring[K, V, W](g, 4)
		if err == nil {
			return colours, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("planarity: %w: %v", errColouringDiverged, lastErr)
}
