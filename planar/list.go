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

// ring is a pool of doubly-linked circular list nodes addressed by
// identity: node index IS the payload (a vertex id or an arc index),
// so no separate data slot is needed (LCAppend/LCPrepend/LCDelete/
// LCGetNext/LCGetPrev in the original). A node can only belong to one
// ring-list at a time, which is why sortedDFSChildList,
// separatedDFSChildList, pertinentBicompList, and fwdArcList each get
// their own ring instance below instead of sharing one pool -- the
// same vertex id is a member of several of those lists at once.
type ring struct {
	prev, next []int
}

func newRing(size int) *ring {
	if size < 1 {
		size = 1
	}
	r := &ring{prev: make([]int, size), next: make([]int, size)}
	for i := range r.prev {
		r.prev[i] = nilIdx
		r.next[i] = nilIdx
	}
	return r
}

func (r *ring) reset(node int) {
	r.prev[node] = nilIdx
	r.next[node] = nilIdx
}

// append adds node onto the end of the list headed at head (or starts a
// new list if head is nilIdx), returning the (possibly new) head.
func (r *ring) append(head, node int) int {
	if head == nilIdx {
		r.prev[node] = node
		r.next[node] = node
		return node
	}
	tail := r.prev[head]
	r.next[tail] = node
	r.prev[node] = tail
	r.next[node] = head
	r.prev[head] = node
	return head
}

// prepend adds node onto the front of the list headed at head,
// returning the new head (node itself).
func (r *ring) prepend(head, node int) int {
	if head == nilIdx {
		r.prev[node] = node
		r.next[node] = node
		return node
	}
	tail := r.prev[head]
	r.next[tail] = node
	r.prev[node] = tail
	r.next[node] = head
	r.prev[head] = node
	return node
}

// delete removes node from the list headed at head, returning the new
// head (nilIdx if the list becomes empty). A no-op if node is nilIdx or
// already detached.
func (r *ring) delete(head, node int) int {
	if node == nilIdx || head == nilIdx {
		return head
	}
	if r.next[node] == nilIdx && r.prev[node] == nilIdx && node != head {
		return head
	}
	if r.next[node] == node {
		r.reset(node)
		return nilIdx
	}
	p, n := r.prev[node], r.next[node]
	r.next[p] = n
	r.prev[n] = p
	newHead := head
	if head == node {
		newHead = n
	}
	r.reset(node)
	return newHead
}

// getNext returns the node after cur in the list headed at head, or nilIdx
// once the traversal wraps back to head.
func (r *ring) getNext(head, cur int) int {
	n := r.next[cur]
	if n == head {
		return nilIdx
	}
	return n
}

func (r *ring) getPrev(head, cur int) int {
	if cur == head {
		return nilIdx
	}
	return r.prev[cur]
}

// listCollection bundles the four independent ring pools the embedder
// needs, each addressed by a different payload space: DFS children by
// vertex id (sortedDFSChildList/separatedDFSChildList), pertinent
// bicomps by child-vertex id (pertinentBicompList), and pending back
// edges by arc index (fwdArcList).
type listCollection struct {
	sorted     *ring
	separated  *ring
	pertinent  *ring
	fwdArcs    *ring
}

func newListCollection(n int) *listCollection {
	arcCap := 4 * n
	if arcCap < 8 {
		arcCap = 8
	}
	return &listCollection{
		sorted:    newRing(n),
		separated: newRing(n),
		pertinent: newRing(n),
		fwdArcs:   newRing(2 * arcCap),
	}
}

// bucketSortByLowpoint builds separatedDFSChildList in O(|children|) by
// bucketing children of v on their lowpoint value (range [0, n)) and
// concatenating the buckets in ascending order -- _CreateSortedSeparatedDFSChildLists
// in the original, used once per vertex during initialization (§4.3).
func bucketSortByLowpoint(children []int, lowpoint func(int) int, n int) []int {
	buckets := make([][]int, n)
	for _, c := range children {
		lp := lowpoint(c)
		if lp < 0 {
			lp = 0
		}
		if lp >= n {
			lp = n - 1
		}
		buckets[lp] = append(buckets[lp], c)
	}
	sorted := make([]int, 0, len(children))
	for lp := 0; lp < n; lp++ {
		sorted = append(sorted, buckets[lp]...)
	}
	return sorted
}
