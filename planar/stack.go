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

import "github.com/emirpasic/gods/stacks/arraystack"

// intStack is the reusable stack Walkdown and MergeBicomps share
// (sp_Push2/sp_Pop2 in the original): Walkdown and the blocked-bicomp
// handler push pairs and mergeBicomps pops them, so the stack stores
// plain ints and push2/pop2 push/pop two at a time in a fixed order.
// The iterative DFS keeps its own frame slice and does not use it.
type intStack struct {
	s *arraystack.Stack
}

func newIntStack() *intStack {
	return &intStack{s: arraystack.New()}
}

func (st *intStack) push(v int) {
	st.s.Push(v)
}

func (st *intStack) pop() (int, bool) {
	v, ok := st.s.Pop()
	if !ok {
		return 0, false
	}
	return v.(int), true
}

// push2 pushes a pair (a, b) such that pop2 returns them in the same
// order they were pushed -- mirroring sp_Push2(theStack, a, b).
func (st *intStack) push2(a, b int) {
	st.s.Push(b)
	st.s.Push(a)
}

func (st *intStack) pop2() (int, int, bool) {
	a, ok := st.pop()
	if !ok {
		return 0, 0, false
	}
	b, ok := st.pop()
	if !ok {
		return 0, 0, false
	}
	return a, b, true
}

func (st *intStack) empty() bool {
	return st.s.Empty()
}

func (st *intStack) clear() {
	st.s.Clear()
}

func (st *intStack) size() int {
	return st.s.Size()
}
