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

import "testing"

func TestDFSInitAssignsDistinctDFIs(t *testing.T) {
	g, err := NewGraph(4)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
	if err := g.DFSInit(); err != nil {
		t.Fatalf("DFSInit: %v", err)
	}
	seen := make(map[int]bool)
	for v := 0; v < 3; v++ {
		dfi := g.vertices[v].dfi
		if dfi < 0 || dfi >= 3 {
			t.Fatalf("vertex %d has out-of-range dfi %d", v, dfi)
		}
		if seen[dfi] {
			t.Fatalf("dfi %d assigned to more than one vertex", dfi)
		}
		seen[dfi] = true
	}
	if len(g.order) != 4 {
		t.Fatalf("expected order of length 4, got %d", len(g.order))
	}
}

func TestDFSInitLowpointsAreFinite(t *testing.T) {
	g, err := NewGraph(4)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
	if err := g.DFSInit(); err != nil {
		t.Fatalf("DFSInit: %v", err)
	}
	for v := 0; v < 3; v++ {
		lp := g.vertices[v].lowpoint
		if lp < 0 || lp >= g.n {
			t.Fatalf("vertex %d has out-of-range lowpoint %d", v, lp)
		}
	}
	// the DFS root has no ancestors, so every back edge in this triangle
	// must bring some descendant's lowpoint down to the root's own dfi.
	root := g.order[0]
	if g.vertices[root].lowpoint != g.vertices[root].dfi {
		t.Fatalf("expected root lowpoint to equal its own dfi, got %d vs %d",
			g.vertices[root].lowpoint, g.vertices[root].dfi)
	}
}

func TestDFSInitSingleRootPerComponent(t *testing.T) {
	g, err := NewGraph(6)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	// two disjoint triangles: {0,1,2} and {3,4,5}.
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
	if err := g.DFSInit(); err != nil {
		t.Fatalf("DFSInit: %v", err)
	}
	if g.dfsRootCount != 2 {
		t.Fatalf("expected 2 dfs roots for 2 components, got %d", g.dfsRootCount)
	}
}
