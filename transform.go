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

// Rewrite performs a combined pre/post rewrite of the tree rooted at node,
// invoking the rewriter's Enter on the way down and Exit on the way up. It
// is TransformDownUp with the callback pair bundled behind an interface.
func Rewrite[T Node[T]](node T, r Rewriter[T]) (Transformed[T], error) {
	return transformDownUp(node, r.Enter, r.Exit)
}

// TransformDownUp rewrites the tree with down applied pre-order and up
// applied post-order in a single pass. Either callback may be nil, in which
// case it keeps the node and reports Continue.
//
// The fused pass is what gives Jump its fast path: when down reports Jump
// for a node, up starts right at that node instead of at the leaves below
// it. Consider
//
//	j → i → f → {e → c → {b, d → a}, g → h}
//
// with down jumping on e: b, a and their parents are never entered, and the
// up phase runs e, h, g, f, i, j. When up (or a subtree) reports Jump, the
// up callbacks of the ancestors are bypassed until a later sibling subtree
// reports Continue; the Changed flags of everything already rewritten are
// preserved regardless.
func TransformDownUp[T Node[T]](node T, down, up RewriteFunc[T]) (Transformed[T], error) {
	if down == nil {
		down = keep[T]
	}
	if up == nil {
		up = keep[T]
	}
	return transformDownUp(node, down, up)
}

func transformDownUp[T Node[T]](node T, down, up RewriteFunc[T]) (Transformed[T], error) {
	pre, err := down(node)
	if err != nil {
		return Transformed[T]{}, err
	}
	var post Transformed[T]
	switch pre.Recursion {
	case Continue:
		t, err := MapChildren(pre.Data, func(child T) (Transformed[T], error) {
			return transformDownUp(child, down, up)
		})
		if err != nil {
			return Transformed[T]{}, err
		}
		post, err = t.andThen(up, Jump)
		if err != nil {
			return Transformed[T]{}, err
		}
	case Jump:
		// Children skipped; the up phase starts at this very node.
		post, err = up(pre.Data)
		if err != nil {
			return Transformed[T]{}, err
		}
	default:
		return pre, nil
	}
	post.Changed = post.Changed || pre.Changed
	return post, nil
}

// TransformDown rewrites the tree pre-order: f is applied to a node before
// its children. A Jump from f prunes that node's children and nothing more;
// traversal resumes with the next sibling.
func TransformDown[T Node[T]](node T, f RewriteFunc[T]) (Transformed[T], error) {
	t, err := f(node)
	if err != nil {
		return Transformed[T]{}, err
	}
	return t.andThen(func(n T) (Transformed[T], error) {
		return MapChildren(n, func(child T) (Transformed[T], error) {
			return TransformDown(child, f)
		})
	}, Continue)
}

// TransformUp rewrites the tree post-order: f is applied to a node after
// all of its children. A Jump from f bypasses f on the node's ancestors
// until a later sibling subtree reports Continue.
func TransformUp[T Node[T]](node T, f RewriteFunc[T]) (Transformed[T], error) {
	t, err := MapChildren(node, func(child T) (Transformed[T], error) {
		return TransformUp(child, f)
	})
	if err != nil {
		return Transformed[T]{}, err
	}
	return t.andThen(f, Jump)
}

// Transform is the conventional leaves-first rewrite most optimizer rules
// want; it is TransformUp under its customary name.
func Transform[T Node[T]](node T, f RewriteFunc[T]) (Transformed[T], error) {
	return TransformUp(node, f)
}
