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

// VisitFunc is a read-only per-node callback. It must not mutate the node.
type VisitFunc[T any] func(node T) (Recursion, error)

// RewriteFunc is a rewriting per-node callback. It takes the current node
// and returns its replacement wrapped in a Transformed envelope.
type RewriteFunc[T any] func(node T) (Transformed[T], error)

// Visitor is the dual-callback shape for read-only traversals, passed to
// Walk. It keeps an algorithm separate from the code traversing the tree.
type Visitor[T any] interface {
	// Enter is invoked before any children of node are visited.
	Enter(node T) (Recursion, error)

	// Exit is invoked after all children of node are visited.
	Exit(node T) (Recursion, error)
}

// Rewriter is the dual-callback shape for combined pre/post rewrites,
// passed to Rewrite.
type Rewriter[T any] interface {
	// Enter is invoked on the way down, before any children are rewritten.
	Enter(node T) (Transformed[T], error)

	// Exit is invoked on the way up, after all children are rewritten.
	Exit(node T) (Transformed[T], error)
}

type funcVisitor[T any] struct {
	enter, exit VisitFunc[T]
}

func (v funcVisitor[T]) Enter(node T) (Recursion, error) {
	if v.enter == nil {
		return Continue, nil
	}
	return v.enter(node)
}

func (v funcVisitor[T]) Exit(node T) (Recursion, error) {
	if v.exit == nil {
		return Continue, nil
	}
	return v.exit(node)
}

// keep is the no-op rewrite used for omitted callbacks.
func keep[T any](node T) (Transformed[T], error) {
	return Unchanged(node), nil
}
