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

import "fmt"

// Node is the structural contract a tree type implements to receive the
// traversal suite. T is the node handle type itself: a pointer or interface
// type for trees whose nodes are shared, or a struct type for trees whose
// nodes are held by value.
//
// An implementation must not mutate a node reachable through more than one
// handle; WithChildren returns a new node instead. Handles are treated as
// immutable once published, which is what makes sharing safe.
type Node[T any] interface {
	// Children returns the node's children in order. The order must be
	// stable across calls on the same value.
	Children() []T

	// WithChildren rebuilds the node with the given replacement children.
	// The traversal engine only ever calls it with a slice of the same
	// length Children returned; implementations should treat any other
	// length as an invariant violation and report a ChildCountError.
	WithChildren(children []T) (T, error)
}

// OwnedNode extends Node for trees whose nodes are uniquely owned and moved
// rather than shared. Implementing DetachChildren switches MapChildren to a
// detach/rewrite/reattach discipline: the node is separated from its
// children before they are rewritten, so the old and new children are never
// held by the same node during reconstruction, and the node is always
// rebuilt via WithChildren on the detached remainder.
type OwnedNode[T any] interface {
	Node[T]

	// DetachChildren separates the node from its children, returning the
	// node without children and the children themselves.
	DetachChildren() (T, []T)
}

// ApplyChildren applies f to each child of node in order.
//
// A Stop from f aborts immediately. Continue and Jump both proceed to the
// next child; the signal returned is the one reported for the last child
// visited, so a Jump is erased by a later sibling's Continue. With no
// children the result is Continue.
func ApplyChildren[T Node[T]](node T, f VisitFunc[T]) (Recursion, error) {
	r := Continue
	for _, child := range node.Children() {
		var err error
		r, err = f(child)
		if err != nil {
			return Stop, err
		}
		if r == Stop {
			return Stop, nil
		}
	}
	return r, nil
}

// MapChildren rewrites each child of node with f and rebuilds the node
// around the results, combining the children's envelopes per MapUntilStop.
//
// For a plain Node, the original handle is returned untouched when no child
// changed; WithChildren is not called, so an unchanged subtree keeps its
// identity and costs no allocation. For an OwnedNode the children are
// detached first and the node is always rebuilt by reattaching them.
func MapChildren[T Node[T]](node T, f RewriteFunc[T]) (Transformed[T], error) {
	if owned, ok := any(node).(OwnedNode[T]); ok {
		remainder, children := owned.DetachChildren()
		if len(children) == 0 {
			return Unchanged(remainder), nil
		}
		t, err := MapUntilStop(children, f)
		if err != nil {
			return Transformed[T]{}, err
		}
		return Map(t, remainder.WithChildren)
	}

	children := node.Children()
	if len(children) == 0 {
		return Unchanged(node), nil
	}
	t, err := MapUntilStop(children, f)
	if err != nil {
		return Transformed[T]{}, err
	}
	if !t.Changed {
		return Transformed[T]{Data: node, Recursion: t.Recursion}, nil
	}
	return Map(t, node.WithChildren)
}

// ChildCountError reports a WithChildren call whose replacement slice does
// not match the node's own child count. It indicates a bug in the caller,
// not a recoverable condition, but it propagates like any other failure.
type ChildCountError struct {
	Got, Want int
}

// Error implements error.
func (e *ChildCountError) Error() string {
	return fmt.Sprintf("treewalk: rebuilding node with %d children, want %d", e.Got, e.Want)
}
