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
	"encoding/json"
	"fmt"
	"testing"

	"github.com/go-test/deep"

	"github.com/flxj/planarity/planar"
)

func completeGraph(t *testing.T, n int) Graph[int, any, int] {
	g, err := NewGraph[int, any, int](false, "")
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	for i := 0; i < n; i++ {
		if err := g.AddVertex(Vertex[int, any]{Key: i}); err != nil {
			t.Fatalf("AddVertex(%d): %v", i, err)
		}
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if err := g.AddEdge(Edge[int, int]{Head: u, Tail: v}); err != nil {
				t.Fatalf("AddEdge(%d,%d): %v", u, v, err)
			}
		}
	}
	return g
}

func TestEmbedTriangleRoundTripsThroughBridge(t *testing.T) {
	g := completeGraph(t, 3)
	emb, err := Embed[int, any, int](g, planar.Planar)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if emb.Result != planar.OK {
		t.Fatalf("expected OK, got %v", emb.Result)
	}
	if emb.Obstruction != nil {
		t.Fatalf("expected no obstruction on a planar embed, got %+v", emb.Obstruction)
	}
}

func TestEmbedK5ObstructionRoundTripsThroughJSON(t *testing.T) {
	g := completeGraph(t, 5)
	emb, err := Embed[int, any, int](g, planar.Planar)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if emb.Result != planar.NonEmbeddable {
		t.Fatalf("expected NON_EMBEDDABLE for K5, got %v", emb.Result)
	}
	if emb.Obstruction == nil {
		t.Fatal("expected a recorded obstruction for K5")
	}

	body, err := MarshalEmbeddingToJSON[int](emb, nil)
	if err != nil {
		t.Fatalf("MarshalEmbeddingToJSON: %v", err)
	}

	var info EmbeddingInfo[int]
	if err := json.Unmarshal(body, &info); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if diff := deep.Equal(info.Obstruction, emb.Obstruction); diff != nil {
		t.Fatalf("obstruction did not round-trip through JSON: %v", diff)
	}
	fmt.Printf("obstruction: %s on %v\n", info.Obstruction.Minor, info.Obstruction.Vertices)
}
