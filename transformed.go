// Copyright 2023-2025 Plancraft, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package treewalk

// Transformed is the envelope every rewriting callback returns and every
// rewriting traversal threads through the tree: the (possibly rewritten)
// value, a flag recording whether this value or any descendant was altered,
// and the trailing control signal of the last step applied to the subtree.
//
// Changed only ever transitions from false to true. It is OR-accumulated
// across every visited node and is never reset by Jump or Stop: an aborted
// traversal still reports the changes made before the abort.
type Transformed[T any] struct {
	Data      T
	Changed   bool
	Recursion Recursion
}

// Changed wraps data that was altered, signaling Continue.
func Changed[T any](data T) Transformed[T] {
	return Transformed[T]{Data: data, Changed: true}
}

// Unchanged wraps data that was left as is, signaling Continue.
func Unchanged[T any](data T) Transformed[T] {
	return Transformed[T]{Data: data}
}

// Update replaces the data with f(data), keeping the flag and signal.
func (t Transformed[T]) Update(f func(T) T) Transformed[T] {
	t.Data = f(t.Data)
	return t
}

// Map projects the envelope onto a new element type, keeping the flag and
// signal. It cannot be a method because it changes the type parameter.
func Map[T, U any](t Transformed[T], f func(T) (U, error)) (Transformed[U], error) {
	data, err := f(t.Data)
	if err != nil {
		return Transformed[U]{}, err
	}
	return Transformed[U]{Data: data, Changed: t.Changed, Recursion: t.Recursion}, nil
}

// andThen applies the follow-up step f according to the envelope's signal.
//
// On Continue f runs and its Changed flag is ORed with the current one. On
// Jump f is skipped and the signal becomes onJump: callers absorbing a jump
// at this level pass Continue, callers propagating it upward pass Jump. On
// Stop the envelope is returned untouched.
//
// This single rule is shared by every rewriting traversal; only onJump
// differs between them.
func (t Transformed[T]) andThen(f RewriteFunc[T], onJump Recursion) (Transformed[T], error) {
	switch t.Recursion {
	case Continue:
		u, err := f(t.Data)
		if err != nil {
			return Transformed[T]{}, err
		}
		u.Changed = u.Changed || t.Changed
		return u, nil
	case Jump:
		t.Recursion = onJump
	}
	return t, nil
}

// MapUntilStop applies op to each element left to right, rewriting each in
// the output. The running signal starts at Continue and is overwritten by
// each element's reported signal, so a Jump from one element has no effect
// once a later sibling reports Continue. Once an element reports Stop, op is
// not invoked on the remaining elements and they are carried over untouched.
//
// The result carries the last-computed signal and the OR of all Changed
// flags. The input slice is never written to.
func MapUntilStop[E any](elems []E, op func(E) (Transformed[E], error)) (Transformed[[]E], error) {
	out := make([]E, len(elems))
	result := Transformed[[]E]{Data: out}
	for i, elem := range elems {
		if result.Recursion == Stop {
			out[i] = elem
			continue
		}
		t, err := op(elem)
		if err != nil {
			return Transformed[[]E]{}, err
		}
		out[i] = t.Data
		result.Changed = result.Changed || t.Changed
		result.Recursion = t.Recursion
	}
	return result, nil
}
