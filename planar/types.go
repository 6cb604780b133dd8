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

// Package planar implements the Boyer-Myrvold edge-addition planarity
// method: linear-time planarity testing and combinatorial embedding,
// with obstruction isolation (a K5/K3,3 subdivision, or K4/K2,3 for
// outerplanarity) on the negative branch.
package planar

import "errors"

// nilIdx marks an absent vertex, arc, or list node.
const nilIdx = -1

// Result is the three-way outcome of an embedding attempt.
type Result int

const (
	// OK means every edge was embedded; the graph carries a valid
	// combinatorial embedding.
	OK Result = iota
	// NonEmbeddable is a structural result, not an error: the graph
	// does not admit the requested kind of embedding.
	NonEmbeddable
	// Internal marks a broken invariant or an exhausted resource; always
	// accompanied by a non-nil error.
	Internal
)

func (r Result) String() string {
	switch r {
	case OK:
		return "OK"
	case NonEmbeddable:
		return "NON_EMBEDDABLE"
	default:
		return "INTERNAL"
	}
}

// Flags selects which variant of the edge-addition method gp_Embed runs.
// Only Planar and Outerplanar are implemented by the core; the others
// are extension hooks that the function table does not fill in.
type Flags int

const (
	Planar Flags = 1 << iota
	Outerplanar
	DrawPlanar
	SearchK23
	SearchK33
)

func (f Flags) String() string {
	switch f {
	case Planar:
		return "PLANAR"
	case Outerplanar:
		return "OUTERPLANAR"
	case DrawPlanar:
		return "DRAWPLANAR"
	case SearchK23:
		return "SEARCH_K23"
	case SearchK33:
		return "SEARCH_K33"
	default:
		return "UNKNOWN"
	}
}

var (
	// ErrInternal wraps assertion failures: a §3 invariant was found
	// broken, or a resource (stack, arc arena) was exhausted.
	ErrInternal = errors.New("planar: internal invariant violation")
	// ErrCapacity is returned by AddEdge/addVertex when the arc/vertex
	// arena has no room left.
	ErrCapacity = errors.New("planar: arena capacity exhausted")
	// ErrSelfLoop is returned by AddEdge for u == v.
	ErrSelfLoop = errors.New("planar: self-loops are not supported")
	// ErrParallelEdge is returned by AddEdge when (u, v) already exists.
	ErrParallelEdge = errors.New("planar: parallel edges are not supported")
	// ErrExtensionNotInstalled is returned by Embed for a Flags value
	// the core function table does not implement (DrawPlanar, SearchK23,
	// SearchK33): their contract is named in §6 but no default body
	// exists to run.
	ErrExtensionNotInstalled = errors.New("planar: extension hook not installed")
)

// arcType classifies a half-edge as discovered by the DFS initializer.
type arcType int

const (
	typeUnknown arcType = iota
	typeTreeChild
	typeTreeParent
	typeBack
	typeForward
)
