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

// Package treetest provides small concrete tree types, one per ownership
// model, for exercising traversals in tests.
package treetest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/plancraft/treewalk"
)

// Tree is a by-value tree node carrying a string payload. It implements the
// plain treewalk.Node contract.
type Tree struct {
	Data string
	Kids []Tree
}

var _ treewalk.Node[Tree] = Tree{}

// New returns a node with the given payload and children.
func New(data string, kids ...Tree) Tree {
	return Tree{Data: data, Kids: kids}
}

// Children implements treewalk.Node.
func (t Tree) Children() []Tree {
	return t.Kids
}

// WithChildren implements treewalk.Node.
func (t Tree) WithChildren(children []Tree) (Tree, error) {
	if len(children) != len(t.Kids) {
		return Tree{}, &treewalk.ChildCountError{Got: len(children), Want: len(t.Kids)}
	}
	t.Kids = children
	return t, nil
}

// OwnedTree is Tree's uniquely-owned counterpart: it additionally
// implements DetachChildren, opting in to the detach/reattach discipline.
// Detaches, when non-nil, counts DetachChildren calls so tests can assert
// which path the engine took.
type OwnedTree struct {
	Data     string
	Kids     []OwnedTree
	Detaches *int
}

var _ treewalk.OwnedNode[OwnedTree] = OwnedTree{}

// Children implements treewalk.Node.
func (t OwnedTree) Children() []OwnedTree {
	return t.Kids
}

// WithChildren implements treewalk.Node. Unlike Tree, the receiver may be a
// detached remainder with no children of its own, so no count is enforced.
func (t OwnedTree) WithChildren(children []OwnedTree) (OwnedTree, error) {
	t.Kids = children
	return t, nil
}

// DetachChildren implements treewalk.OwnedNode.
func (t OwnedTree) DetachChildren() (OwnedTree, []OwnedTree) {
	if t.Detaches != nil {
		*t.Detaches++
	}
	kids := t.Kids
	t.Kids = nil
	return t, kids
}

// Expr is a pointer-based node whose handles are shared. Rebuilding
// allocates a new node; the engine is expected to hand back the original
// pointer whenever nothing below it changed.
type Expr struct {
	Op   string
	Args []*Expr
}

var _ treewalk.Node[*Expr] = (*Expr)(nil)

// Children implements treewalk.Node.
func (e *Expr) Children() []*Expr {
	return e.Args
}

// WithChildren implements treewalk.Node.
func (e *Expr) WithChildren(args []*Expr) (*Expr, error) {
	if len(args) != len(e.Args) {
		return nil, &treewalk.ChildCountError{Got: len(args), Want: len(e.Args)}
	}
	return &Expr{Op: e.Op, Args: args}, nil
}

// Parse builds a Tree from a YAML mapping with a single root key. Each key
// is a node's payload and its value is the mapping of the node's children;
// leaves map to an empty mapping or null. Sibling order follows document
// order.
func Parse(t testing.TB, src string) Tree {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	require.Len(t, doc.Content, 1, "tree document")
	root := doc.Content[0]
	require.Equal(t, yaml.MappingNode, root.Kind, "tree root must be a mapping")
	require.Len(t, root.Content, 2, "tree must have exactly one root node")
	tree, err := fromYAML(root.Content[0], root.Content[1])
	require.NoError(t, err)
	return tree
}

// ParseExpr is Parse for the pointer-based Expr fixture.
func ParseExpr(t testing.TB, src string) *Expr {
	t.Helper()
	return exprFromTree(Parse(t, src))
}

// ParseOwned is Parse for the OwnedTree fixture. The returned nodes share
// the given detach counter.
func ParseOwned(t testing.TB, src string, detaches *int) OwnedTree {
	t.Helper()
	return ownedFromTree(Parse(t, src), detaches)
}

func fromYAML(key, value *yaml.Node) (Tree, error) {
	tree := Tree{Data: key.Value}
	switch value.Kind {
	case yaml.MappingNode:
		for i := 0; i < len(value.Content); i += 2 {
			child, err := fromYAML(value.Content[i], value.Content[i+1])
			if err != nil {
				return Tree{}, err
			}
			tree.Kids = append(tree.Kids, child)
		}
	case yaml.ScalarNode:
		if value.Tag != "!!null" {
			return Tree{}, fmt.Errorf("treetest: node %q: children must be a mapping, got scalar %q", key.Value, value.Value)
		}
	default:
		return Tree{}, fmt.Errorf("treetest: node %q: children must be a mapping", key.Value)
	}
	return tree, nil
}

func exprFromTree(tree Tree) *Expr {
	expr := &Expr{Op: tree.Data}
	for _, kid := range tree.Kids {
		expr.Args = append(expr.Args, exprFromTree(kid))
	}
	return expr
}

func ownedFromTree(tree Tree, detaches *int) OwnedTree {
	owned := OwnedTree{Data: tree.Data, Detaches: detaches}
	for _, kid := range tree.Kids {
		owned.Kids = append(owned.Kids, ownedFromTree(kid, detaches))
	}
	return owned
}

// Rename returns a copy of tree with each node's payload replaced by
// names[payload] when present. Used to state expected trees compactly.
func Rename(tree Tree, names map[string]string) Tree {
	if name, ok := names[tree.Data]; ok {
		tree.Data = name
	}
	if len(tree.Kids) == 0 {
		return tree
	}
	kids := make([]Tree, len(tree.Kids))
	for i, kid := range tree.Kids {
		kids[i] = Rename(kid, names)
	}
	tree.Kids = kids
	return tree
}
