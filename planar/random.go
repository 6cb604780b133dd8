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

import "math/rand"

// CreateRandomGraph populates g with random simple edges up to a
// density target of 2*N edges (§4.10), the typical density used to
// fuzz-test planarity engines against sparse, frequently-planar
// inputs. g must have been freshly created or reinitialized.
func CreateRandomGraph(g *Graph) error {
	return CreateRandomGraphEx(g, 2*g.n)
}

// CreateRandomGraphEx adds numEdges random simple edges (capped at
// N*(N-1)/2; nothing is added when N < 2), retrying on
// self-loop/parallel-edge collisions up to 30*numEdges attempts total
// before giving up with ErrInternal (§4.10).
func CreateRandomGraphEx(g *Graph, numEdges int) error {
	if g.n < 2 {
		return nil
	}
	maxPossible := g.n * (g.n - 1) / 2
	if numEdges > maxPossible {
		numEdges = maxPossible
	}

	added := 0
	attempts := 0
	maxAttempts := 30 * numEdges
	if maxAttempts == 0 {
		maxAttempts = 30
	}

	for added < numEdges && attempts < maxAttempts {
		attempts++
		u := rand.Intn(g.n)
		v := rand.Intn(g.n)
		if u == v {
			continue
		}
		if err := g.AddEdge(u, v); err != nil {
			if err == ErrSelfLoop || err == ErrParallelEdge {
				continue
			}
			return err
		}
		added++
	}
	if added < numEdges {
		return ErrInternal
	}
	return nil
}
