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

// Recursion is the control signal callbacks return to steer a traversal.
type Recursion int

const (
	// Continue proceeds with the next node.
	Continue Recursion = iota

	// Jump short-circuits part of the traversal; what it skips depends on
	// the phase that reports it.
	//
	// From an enter (pre-order) callback, Jump prunes the node's subtree:
	// children are not visited, but the node's own exit callback still runs,
	// and traversal resumes normally with the next sibling.
	//
	// From an exit (post-order) callback, Jump bypasses the exit callbacks of
	// the node's ancestors until it reaches an ancestor with a later sibling
	// subtree; a plain Continue from that sibling resumes exit callbacks. On
	// a chain of single-child ancestors a Jump therefore suppresses every
	// exit callback up to and including the root's.
	Jump

	// Stop aborts the entire traversal. No further callback of any kind
	// runs once a callback reports Stop.
	Stop
)

// String implements fmt.Stringer.
func (r Recursion) String() string {
	switch r {
	case Continue:
		return "Continue"
	case Jump:
		return "Jump"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Recursion(%d)", int(r))
	}
}
