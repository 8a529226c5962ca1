package prefixmap

import (
	"maps"
	"slices"
)

type node[T any] struct {
	children map[byte]Ref
	value    T
	hasValue bool
}

// child returns the ref labelled b below ref, ok=false if absent.
func (m *Map[T]) child(ref Ref, b byte) (Ref, bool) {
	c, ok := m.nodes[ref].children[b]
	return c, ok
}

// childOrCreate returns the ref labelled b below ref, appending a new node to
// the pool when the link does not exist yet.
func (m *Map[T]) childOrCreate(ref Ref, b byte) Ref {
	if c, ok := m.child(ref, b); ok {
		return c
	}
	c := Ref(len(m.nodes))
	m.nodes = append(m.nodes, node[T]{})

	// m.nodes may have been reallocated, index again.
	n := &m.nodes[ref]
	if n.children == nil {
		n.children = make(map[byte]Ref)
	}
	n.children[b] = c
	return c
}

// soleChild returns the only child of ref. ok=false unless there is exactly one.
func (m *Map[T]) soleChild(ref Ref) (label byte, c Ref, ok bool) {
	children := m.nodes[ref].children
	if len(children) != 1 {
		return 0, 0, false
	}
	for label, c = range children {
		break
	}
	return label, c, true
}

// labels returns the child labels of ref in ascending byte order.
func (m *Map[T]) labels(ref Ref) []byte {
	children := m.nodes[ref].children
	if len(children) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(children))
}
