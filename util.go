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

import "strings"

// Exists reports whether any node in the tree satisfies pred. The scan
// stops at the first match.
func Exists[T Node[T]](node T, pred func(T) bool) bool {
	found := false
	_, _ = Inspect(node, func(n T) (Recursion, error) {
		if pred(n) {
			found = true
			return Stop, nil
		}
		return Continue, nil
	})
	return found
}

// Collect returns every node in the tree satisfying pred, in pre-order.
func Collect[T Node[T]](node T, pred func(T) bool) []T {
	var out []T
	_, _ = Inspect(node, func(n T) (Recursion, error) {
		if pred(n) {
			out = append(out, n)
		}
		return Continue, nil
	})
	return out
}

// Count returns the number of nodes in the tree.
func Count[T Node[T]](node T) int {
	n := 0
	_, _ = Inspect(node, func(T) (Recursion, error) {
		n++
		return Continue, nil
	})
	return n
}

// Sprint renders the tree one node per line, children indented under their
// parent, with label naming each node. Intended for debugging output and
// test failure messages.
func Sprint[T Node[T]](node T, label func(T) string) string {
	var sb strings.Builder
	sprint(&sb, node, label, 0)
	return sb.String()
}

func sprint[T Node[T]](sb *strings.Builder, node T, label func(T) string, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(label(node))
	sb.WriteByte('\n')
	for _, child := range node.Children() {
		sprint(sb, child, label, depth+1)
	}
}
