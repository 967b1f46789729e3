/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package difftree

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/voedger/schemadiff/pkg/scalar"
)

func (n Node) Tree() *Tree { return n.tree }

func (n Node) ID() NodeID { return n.id }

func (n Node) Name() string { return n.node().name }

// Returns index of aligned list member node.
func (n Node) Index() (index int, ok bool) {
	i := n.node().index
	return i, i != noIndex
}

// Returns parent node. Root has no parent.
func (n Node) Parent() (Node, bool) {
	p := n.node().parent
	if p == noParent {
		return Node{}, false
	}
	return Node{tree: n.tree, id: p}, true
}

// Returns is node may hold children.
func (n Node) IsComposite() bool { return n.node().kind == nodeKind_Composite }

// Returns is node may hold two-sided value.
func (n Node) IsScalar() bool { return n.node().kind == nodeKind_Scalar }

// Returns dot-separated path from root, like «Root.Classes.Widget».
func (n Node) Path() string {
	var names []string
	for id := n.id; id != noParent; id = n.tree.nodes[id].parent {
		names = append(names, n.tree.nodes[id].name)
	}
	slices.Reverse(names)
	return strings.Join(names, PathDelimiter)
}

// Returns live children in order of addition.
func (n Node) Children() []Node {
	ids := n.node().children
	children := make([]Node, len(ids))
	for i, id := range ids {
		children[i] = Node{tree: n.tree, id: id}
	}
	return children
}

// Returns live child by name.
func (n Node) Child(name string) (Node, bool) {
	if id, ok := n.node().byName[name]; ok {
		return Node{tree: n.tree, id: id}, true
	}
	return Node{}, false
}

// Returns node and its live descendants in depth-first pre-order.
func (n Node) Descendants() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		n.walk(yield)
	}
}

func (n Node) walk(yield func(Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.node().children {
		if !(Node{tree: n.tree, id: c}).walk(yield) {
			return false
		}
	}
	return true
}

// Returns value of specified side.
func (n Node) Value(side Side) scalar.Value { return n.node().values[side] }

func (n Node) Left() scalar.Value { return n.Value(Side_Left) }

func (n Node) Right() scalar.Value { return n.Value(Side_Right) }

// Returns existing composite child or adds new one.
//
// Panics if scalar child with the same name exists.
func (n Node) AddComposite(name string) Node {
	if c, ok := n.Child(name); ok {
		if !c.IsComposite() {
			panic(ErrAlreadyExists("scalar node «%s» exists in «%s»", name, n.Path()))
		}
		return c
	}
	return n.addChild(name, noIndex, nodeKind_Composite)
}

// Adds scalar child.
//
// Panics if child with the same name exists.
func (n Node) AddScalar(name string) Node {
	if _, ok := n.Child(name); ok {
		panic(ErrAlreadyExists("node «%s» exists in «%s»", name, n.Path()))
	}
	return n.addChild(name, noIndex, nodeKind_Scalar)
}

// Adds scalar child for aligned list member with specified index.
//
// Child name is «<parent name>[<index>]». Panics if child with the same index exists.
func (n Node) AddIndexed(index int) Node {
	if index < 0 {
		panic(ErrUnsupported("negative index %d in «%s»", index, n.Path()))
	}
	name := fmt.Sprintf("%s[%d]", n.Name(), index)
	if _, ok := n.Child(name); ok {
		panic(ErrAlreadyExists("node «%s» exists in «%s»", name, n.Path()))
	}
	return n.addChild(name, index, nodeKind_Scalar)
}

// Sets two-sided value. Nil side means the side has no value.
//
// Panics if both sides are nil.
func (n Node) SetValue(left, right scalar.Value) {
	if left.IsNil() && right.IsNil() {
		panic(ErrNothingToDiff(n))
	}
	n.setValue(Side_Left, left)
	n.setValue(Side_Right, right)
}

// Sets value of one side. Nil value is ignored.
func (n Node) SetSide(side Side, v scalar.Value) {
	if v.IsNil() {
		return
	}
	n.setValue(side, v)
}

// Returns node classification.
//
// Not recursive classification is node own value state.
// Recursive classification rolls up own and descendants states: empty states are skipped,
// the same states are kept, and different states give conflict.
func (n Node) Classify(recursive bool) State {
	if !recursive {
		return n.node().ownState()
	}
	if n.tree.rollup != nil {
		return n.tree.rollup[n.id]
	}
	st := n.node().ownState()
	for _, c := range n.Children() {
		st = combine(st, c.Classify(true))
	}
	return st
}

// Returns is node has no value and no live children.
func (n Node) IsEmpty() bool {
	nd := n.node()
	return len(nd.children) == 0 && nd.ownState() == State_Empty
}

// Removes child if it is empty. Returns is child removed.
func (n Node) RemoveIfEmpty(child Node) bool {
	if !child.IsEmpty() {
		return false
	}
	nd := n.node()
	i := slices.Index(nd.children, child.id)
	if i < 0 {
		return false
	}
	n.tree.checkMutable("remove node")
	nd.children = slices.Delete(nd.children, i, i+1)
	delete(nd.byName, child.Name())
	child.node().removed = true
	return true
}

func (n Node) String() string { return n.Path() }

func (n Node) node() *node { return &n.tree.nodes[n.id] }

func (n Node) addChild(name string, index int, kind nodeKind) Node {
	n.tree.checkMutable("add node")
	if !n.IsComposite() {
		panic(ErrUnsupported("scalar node «%s» can not have children", n.Path()))
	}
	return Node{tree: n.tree, id: n.tree.newNode(n.id, name, index, kind)}
}

func (n Node) setValue(side Side, v scalar.Value) {
	n.tree.checkMutable("set value")
	if !n.IsScalar() {
		panic(ErrUnsupported("composite node «%s» can not have value", n.Path()))
	}
	n.node().values[side] = v
}

// Returns is node removed from its parent by RemoveIfEmpty.
func (n Node) IsRemoved() bool { return n.node().removed }
