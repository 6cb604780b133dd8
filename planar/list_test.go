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

func collect(r *ring, head int) []int {
	if head == nilIdx {
		return nil
	}
	out := []int{head}
	for cur := head; ; {
		nxt := r.getNext(head, cur)
		if nxt == nilIdx {
			break
		}
		out = append(out, nxt)
		cur = nxt
	}
	return out
}

func TestRingAppendOrder(t *testing.T) {
	r := newRing(5)
	head := nilIdx
	for _, v := range []int{0, 1, 2, 3} {
		head = r.append(head, v)
	}
	got := collect(r, head)
	want := []int{0, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRingPrependOrder(t *testing.T) {
	r := newRing(5)
	head := nilIdx
	head = r.append(head, 0)
	head = r.prepend(head, 1)
	got := collect(r, head)
	want := []int{1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRingDeleteMiddle(t *testing.T) {
	r := newRing(5)
	head := nilIdx
	for _, v := range []int{0, 1, 2, 3} {
		head = r.append(head, v)
	}
	head = r.delete(head, 1)
	got := collect(r, head)
	want := []int{0, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRingDeleteOnlyElement(t *testing.T) {
	r := newRing(5)
	head := r.append(nilIdx, 4)
	head = r.delete(head, 4)
	if head != nilIdx {
		t.Fatalf("expected empty list after deleting only element, got head=%d", head)
	}
}

func TestBucketSortByLowpoint(t *testing.T) {
	lowpoints := map[int]int{0: 3, 1: 1, 2: 2, 3: 1}
	children := []int{0, 1, 2, 3}
	sorted := bucketSortByLowpoint(children, func(c int) int { return lowpoints[c] }, 5)
	want := []int{1, 3, 2, 0}
	if len(sorted) != len(want) {
		t.Fatalf("expected %v, got %v", want, sorted)
	}
	for i := range want {
		if sorted[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, sorted)
		}
	}
}
