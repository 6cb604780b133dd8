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

func TestEmbedTriangleIsPlanar(t *testing.T) {
	g, err := NewGraph(3)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
	res, err := g.Embed(Planar)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if res != OK {
		t.Fatalf("expected OK for a triangle, got %v", res)
	}
	for v := 0; v < 3; v++ {
		if len(g.RotationAt(v)) != 2 {
			t.Fatalf("expected rotation of length 2 at vertex %d, got %v", v, g.RotationAt(v))
		}
	}
}

func TestEmbedK4IsPlanar(t *testing.T) {
	g, err := NewGraph(4)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			if err := g.AddEdge(u, v); err != nil {
				t.Fatalf("AddEdge(%d,%d): %v", u, v, err)
			}
		}
	}
	res, err := g.Embed(Planar)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if res != OK {
		t.Fatalf("expected OK for K4, got %v", res)
	}
}

func TestEmbedK5IsNonPlanar(t *testing.T) {
	g, err := NewGraph(5)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	for u := 0; u < 5; u++ {
		for v := u + 1; v < 5; v++ {
			if err := g.AddEdge(u, v); err != nil {
				t.Fatalf("AddEdge(%d,%d): %v", u, v, err)
			}
		}
	}
	res, err := g.Embed(Planar)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if res != NonEmbeddable {
		t.Fatalf("expected NON_EMBEDDABLE for K5, got %v", res)
	}
	obs := g.LastObstruction()
	if obs == nil {
		t.Fatal("expected a recorded obstruction witness for K5")
	}
	if len(obs.Vertices) == 0 || len(obs.Edges) == 0 {
		t.Fatalf("expected non-empty obstruction witness, got %+v", obs)
	}
}

// TestEmbedOuterplanarFlagUsesOuterplanarIsolator exercises the
// OUTERPLANAR code path against a graph with no planar embedding at all
// (K5): the driver loop itself does not distinguish "planar but not
// outerplanar" from "planar" (see DESIGN.md's Outerplanar entry -- the
// universal-vertex reduction that would make that distinction isn't
// grounded in anything the available original source defines), but a
// graph with no planar embedding must still block under either flag,
// and the witness it records must be labeled with the outerplanar
// convention (K4/K2,3) rather than the Kuratowski one.
func TestEmbedOuterplanarFlagUsesOuterplanarIsolator(t *testing.T) {
	g, err := NewGraph(5)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	for u := 0; u < 5; u++ {
		for v := u + 1; v < 5; v++ {
			if err := g.AddEdge(u, v); err != nil {
				t.Fatalf("AddEdge(%d,%d): %v", u, v, err)
			}
		}
	}
	res, err := g.Embed(Outerplanar)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if res != NonEmbeddable {
		t.Fatalf("expected NON_EMBEDDABLE for K5 under OUTERPLANAR, got %v", res)
	}
	obs := g.LastObstruction()
	if obs == nil {
		t.Fatal("expected a recorded obstruction witness under OUTERPLANAR")
	}
	if obs.Minor != "K4" && obs.Minor != "K2,3" {
		t.Fatalf("expected a K4 or K2,3 label from the outerplanar isolator, got %q", obs.Minor)
	}
}

func TestEmbedK33IsNonPlanar(t *testing.T) {
	g, err := NewGraph(6)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	// bipartition {0,1,2} x {3,4,5}, complete between the parts.
	for u := 0; u < 3; u++ {
		for v := 3; v < 6; v++ {
			if err := g.AddEdge(u, v); err != nil {
				t.Fatalf("AddEdge(%d,%d): %v", u, v, err)
			}
		}
	}
	res, err := g.Embed(Planar)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if res != NonEmbeddable {
		t.Fatalf("expected NON_EMBEDDABLE for K3,3, got %v", res)
	}
	obs := g.LastObstruction()
	if obs == nil {
		t.Fatal("expected a recorded obstruction witness for K3,3")
	}
	if len(obs.Vertices) == 0 || len(obs.Edges) == 0 {
		t.Fatalf("expected non-empty obstruction witness, got %+v", obs)
	}
}

// TestEmbedPathIsPlanarAndOuterplanar embeds the same path once under
// each flag. A path is genuinely both planar and outerplanar, so OK is
// the correct result under OUTERPLANAR even though the engine does not
// distinguish outerplanar graphs from merely-planar ones (see
// TestEmbedOuterplanarFlagUsesOuterplanarIsolator and DESIGN.md).
func TestEmbedPathIsPlanarAndOuterplanar(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}

	g, err := NewGraph(5)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
	res, err := g.Embed(Planar)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if res != OK {
		t.Fatalf("expected OK for a path under PLANAR, got %v", res)
	}

	g2, err := NewGraph(5)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	for _, e := range edges {
		if err := g2.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
	res2, err := g2.Embed(Outerplanar)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if res2 != OK {
		t.Fatalf("expected OK for a path under OUTERPLANAR, got %v", res2)
	}
}

func TestEmbedTwoDisjointTrianglesIsPlanar(t *testing.T) {
	g, err := NewGraph(6)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}
	res, err := g.Embed(Planar)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if res != OK {
		t.Fatalf("expected OK for two disjoint triangles, got %v", res)
	}
	for v := 0; v < 6; v++ {
		if len(g.RotationAt(v)) != 2 {
			t.Fatalf("expected rotation of length 2 at vertex %d, got %v", v, g.RotationAt(v))
		}
	}
	if err := g.testEmbedResultIntegrity(); err != nil {
		t.Fatalf("testEmbedResultIntegrity: %v", err)
	}
}

// TestEmbedDiscoveryOrderDiffersFromVertexID exercises the DFI/id
// distinction directly: a fan (hub 4 joined to 0..3, plus the path
// 0-1-2-3) makes the DFS from vertex 0 reach the hub second, so the
// discovery order is 0, 4, 1, 2, 3 and every vertex but 0 gets a DFI
// different from its id; a driver that conflated the two would
// misclassify activity and either reject a planar graph or produce a
// broken rotation.
func TestEmbedDiscoveryOrderDiffersFromVertexID(t *testing.T) {
	g, err := NewGraph(5)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	for leaf := 0; leaf < 4; leaf++ {
		if err := g.AddEdge(4, leaf); err != nil {
			t.Fatalf("AddEdge(4,%d): %v", leaf, err)
		}
	}
	for leaf := 0; leaf < 3; leaf++ {
		if err := g.AddEdge(leaf, leaf+1); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", leaf, leaf+1, err)
		}
	}
	res, err := g.Embed(Planar)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if res != OK {
		t.Fatalf("expected OK, got %v", res)
	}
	if err := g.testEmbedResultIntegrity(); err != nil {
		t.Fatalf("testEmbedResultIntegrity: %v", err)
	}
}

func TestEmbedRejectsUnimplementedExtensions(t *testing.T) {
	g, err := NewGraph(3)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	if _, err := g.Embed(SearchK33); err != ErrExtensionNotInstalled {
		t.Fatalf("expected ErrExtensionNotInstalled, got %v", err)
	}
}
