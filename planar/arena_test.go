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

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g, err := NewGraph(4)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	if err := g.AddEdge(0, 0); err != ErrSelfLoop {
		t.Fatalf("expected ErrSelfLoop, got %v", err)
	}
}

func TestAddEdgeRejectsParallel(t *testing.T) {
	g, err := NewGraph(4)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(1, 0); err != ErrParallelEdge {
		t.Fatalf("expected ErrParallelEdge, got %v", err)
	}
}

func TestAddEdgeOutOfRange(t *testing.T) {
	g, err := NewGraph(3)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	if err := g.AddEdge(0, 5); err != ErrCapacity {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}
}

func TestDegreeAndEdgeList(t *testing.T) {
	g, err := NewGraph(4)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
	for v := 0; v < 4; v++ {
		if d := g.Degree(v); d != 2 {
			t.Fatalf("expected degree 2 at vertex %d, got %d", v, d)
		}
	}
	got := g.EdgeList()
	if len(got) != len(edges) {
		t.Fatalf("expected %d edges, got %d: %v", len(edges), len(got), got)
	}
}

func TestNewGraphRejectsNonPositive(t *testing.T) {
	if _, err := NewGraph(0); err != ErrCapacity {
		t.Fatalf("expected ErrCapacity for 0 vertices, got %v", err)
	}
}
