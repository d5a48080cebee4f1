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

// Walk performs a depth-first read-only traversal of the tree rooted at
// node, invoking the visitor's Enter before and Exit after each node's
// children. For a parent with children left and right the order is
//
//	Enter(parent)
//	Enter(left)
//	Exit(left)
//	Enter(right)
//	Exit(right)
//	Exit(parent)
//
// A Jump from Enter skips the node's children but still invokes its Exit; a
// Jump from Exit (or from a subtree) bypasses ancestors' Exit callbacks
// until a later sibling subtree reports Continue. Stop aborts everything.
// An error from either callback aborts the traversal and is returned
// unchanged.
func Walk[T Node[T]](node T, v Visitor[T]) (Recursion, error) {
	r, err := v.Enter(node)
	if err != nil {
		return Stop, err
	}
	switch r {
	case Continue:
		r, err = ApplyChildren(node, func(child T) (Recursion, error) {
			return Walk(child, v)
		})
		if err != nil {
			return Stop, err
		}
		switch r {
		case Jump:
			// Bypass this node's Exit and keep jumping upward.
			return Jump, nil
		case Stop:
			return Stop, nil
		}
		return v.Exit(node)
	case Jump:
		// Subtree pruned; the node itself still gets its Exit.
		return v.Exit(node)
	default:
		return Stop, nil
	}
}

// WalkEnterExit is Walk with bare callbacks. Either callback may be nil, in
// which case it is a no-op reporting Continue.
func WalkEnterExit[T Node[T]](node T, enter, exit VisitFunc[T]) (Recursion, error) {
	return Walk(node, funcVisitor[T]{enter: enter, exit: exit})
}

// Inspect applies f to node and, pre-order, to every node below it. It is
// used for scans and checks that need no exit phase: a Jump from f prunes
// the node's subtree and reads as Continue to the node's parent, and Stop
// aborts the traversal.
func Inspect[T Node[T]](node T, f VisitFunc[T]) (Recursion, error) {
	r, err := f(node)
	if err != nil {
		return Stop, err
	}
	switch r {
	case Jump:
		return Continue, nil
	case Stop:
		return Stop, nil
	}
	return ApplyChildren(node, func(child T) (Recursion, error) {
		return Inspect(child, f)
	})
}
