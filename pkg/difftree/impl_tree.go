/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package difftree

import (
	"iter"
	"strings"
)

const rootID NodeID = 0

// Returns root node.
func (t *Tree) Root() Node { return Node{tree: t, id: rootID} }

// Returns node by ID.
func (t *Tree) Node(id NodeID) Node {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(ErrUnsupported("node id %d out of tree bounds", id))
	}
	return Node{tree: t, id: id}
}

// Returns is tree contains no differences.
func (t *Tree) IsEmpty() bool { return t.Root().IsEmpty() }

// Returns is tree finalized.
func (t *Tree) IsFinalized() bool { return t.rollup != nil }

// Computes recursive classification for every live node and freezes tree.
//
// Repeated calls are ignored.
func (t *Tree) Finalize() {
	if t.IsFinalized() {
		return
	}
	rollup := make([]State, len(t.nodes))
	var calc func(NodeID) State
	calc = func(id NodeID) State {
		st := t.nodes[id].ownState()
		for _, c := range t.nodes[id].children {
			st = combine(st, calc(c))
		}
		rollup[id] = st
		return st
	}
	calc(rootID)
	t.rollup = rollup
}

// Returns live nodes in depth-first pre-order, starting from root.
func (t *Tree) Nodes() iter.Seq[Node] {
	return t.Root().Descendants()
}

// Renders tree as text.
//
// Every line starts with legend: «L» for left-only value, «R» for right-only value,
// «!» for conflict and « » for composite node, followed by indent, node name and value.
// Indent is nesting depth multiplied by indentWidth spaces. Lines are terminated by CR-LF.
func (t *Tree) Render(indentWidth int) string {
	if indentWidth < 1 {
		indentWidth = 1
	}
	tab := strings.Repeat(" ", indentWidth)
	b := strings.Builder{}
	t.render(&b, rootID, 0, tab)
	return b.String()
}

func (t *Tree) String() string { return t.Render(DefaultIndentWidth) }

func (t *Tree) render(b *strings.Builder, id NodeID, depth int, tab string) {
	n := &t.nodes[id]
	st := n.ownState()
	b.WriteString(stateLegend[st])
	b.WriteString(strings.Repeat(tab, depth))
	b.WriteString(n.name)
	b.WriteString(" : ")
	switch st {
	case State_Left:
		b.WriteString(n.values[Side_Left].String())
	case State_Right:
		b.WriteString(n.values[Side_Right].String())
	case State_Conflict:
		b.WriteString(n.values[Side_Left].String())
		b.WriteString(" <> ")
		b.WriteString(n.values[Side_Right].String())
	}
	b.WriteString(eol)
	if st == State_Empty {
		for _, c := range n.children {
			t.render(b, c, depth+1, tab)
		}
	}
}

func (t *Tree) newNode(parent NodeID, name string, index int, kind nodeKind) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		name:   name,
		index:  index,
		kind:   kind,
		parent: parent,
	})
	if parent != noParent {
		p := &t.nodes[parent]
		p.children = append(p.children, id)
		if p.byName == nil {
			p.byName = make(map[string]NodeID)
		}
		p.byName[name] = id
	}
	return id
}

func (t *Tree) checkMutable(op string) {
	if t.IsFinalized() {
		panic(ErrTreeFinalized(op))
	}
}

func (n *node) ownState() State {
	l, r := !n.values[Side_Left].IsNil(), !n.values[Side_Right].IsNil()
	switch {
	case l && r:
		return State_Conflict
	case l:
		return State_Left
	case r:
		return State_Right
	default:
		return State_Empty
	}
}

func combine(a, b State) State {
	switch {
	case a == State_Empty:
		return b
	case b == State_Empty, a == b:
		return a
	default:
		return State_Conflict
	}
}
