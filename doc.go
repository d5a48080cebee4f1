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

// Package treewalk provides generic depth-first traversal and rewriting of
// tree data structures, such as the expression and plan trees of a query
// engine, without knowledge of the concrete node shapes.
//
// A tree type plugs in by implementing [Node]: enumerate children, rebuild
// with replacement children. Types whose nodes are uniquely owned rather
// than shared can additionally implement [OwnedNode] to have their children
// detached before rewriting. Either way the entire suite applies:
//
//   - [Walk] and [Inspect] visit nodes read-only.
//   - [TransformDown] and [TransformUp] rewrite the tree pre-order and
//     post-order respectively; [Transform] is the customary name for the
//     latter.
//   - [Rewrite] and [TransformDownUp] run both phases in one fused pass.
//
// Every callback returns a [Recursion] signal steering the traversal:
// Continue descends normally, Jump short-circuits part of the walk (what it
// skips depends on the phase reporting it, see [Recursion]), and Stop aborts
// the whole traversal. Rewriting callbacks return their result wrapped in a
// [Transformed] envelope, which additionally carries a monotonic Changed
// flag so a caller can tell whether a pass did anything.
//
// Traversals are synchronous and purely recursive; recursion depth equals
// tree depth. Callback errors abort the traversal at the point of failure
// and are returned to the caller unchanged.
package treewalk
