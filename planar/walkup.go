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

// walkUp is the Zig/Zag dual external-face traversal (§4.4): starting
// from W, the descendant endpoint of a not-yet-embedded back edge to
// ancestor I recorded as forward arc fwdArc (I -> W), it marks W
// pertinent for this step and climbs both directions of the external
// face simultaneously, marking every vertex it passes as visited for
// this iteration and, at every bicomp root it crosses, records the
// child's pertinence on the root's true DFS parent so Walkdown knows
// which bicomps still need attention when I is reached.
func (g *Graph) walkUp(i, w, fwdArc int) {
	g.vertices[w].pertinentAdjacencyInfo = fwdArc

	x, y := w, w
	xLink, yLink := 0, 1

	for {
		xDone := g.walkUpStep(i, &x, &xLink)
		yDone := g.walkUpStep(i, &y, &yLink)
		if xDone && yDone {
			return
		}
	}
}

// walkUpStep advances one of the two cursors by a single hop, returning
// true once that cursor has reached I or a vertex already settled for
// this iteration.
func (g *Graph) walkUpStep(i int, cursor *int, link *int) bool {
	v := *cursor
	if v == g.order[i] {
		return true
	}
	if g.vertices[v].visitedInfo == i {
		return true
	}
	g.vertices[v].visitedInfo = i

	if v >= g.n {
		// v is a bicomp root copy: record pertinence on its true DFS
		// parent, then hop up to that parent and keep climbing.
		child := g.vertices[v].rootChild
		parent := g.vertices[v].parent

		if g.vertices[child].lowpoint < i {
			g.vertices[parent].pertinentBicompList = g.lists.pertinent.append(g.vertices[parent].pertinentBicompList, child)
		} else {
			g.vertices[parent].pertinentBicompList = g.lists.pertinent.prepend(g.vertices[parent].pertinentBicompList, child)
		}

		*cursor = parent
		return false
	}

	next := g.vertices[v].extFace[*link]
	if g.vertices[v].extFaceInversionFlag {
		*link = 1 - *link
	}
	*cursor = next
	return false
}
