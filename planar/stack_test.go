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

func TestIntStackPushPop(t *testing.T) {
	s := newIntStack()
	if !s.empty() {
		t.Fatal("expected new stack to be empty")
	}
	s.push(1)
	s.push(2)
	s.push(3)
	if s.size() != 3 {
		t.Fatalf("expected size 3, got %d", s.size())
	}
	for _, want := range []int{3, 2, 1} {
		got, ok := s.pop()
		if !ok || got != want {
			t.Fatalf("expected %d, got %d (ok=%v)", want, got, ok)
		}
	}
	if !s.empty() {
		t.Fatal("expected stack to be empty after draining")
	}
}

func TestIntStackPush2Pop2(t *testing.T) {
	s := newIntStack()
	s.push2(10, 20)
	a, b, ok := s.pop2()
	if !ok || a != 10 || b != 20 {
		t.Fatalf("expected (10,20), got (%d,%d) ok=%v", a, b, ok)
	}
	if !s.empty() {
		t.Fatal("expected stack empty after pop2")
	}
}

func TestIntStackPush2Order(t *testing.T) {
	s := newIntStack()
	s.push2(1, 2)
	s.push2(3, 4)
	a, b, ok := s.pop2()
	if !ok || a != 3 || b != 4 {
		t.Fatalf("expected last-pushed pair (3,4) first, got (%d,%d)", a, b)
	}
	a, b, ok = s.pop2()
	if !ok || a != 1 || b != 2 {
		t.Fatalf("expected (1,2), got (%d,%d)", a, b)
	}
}
