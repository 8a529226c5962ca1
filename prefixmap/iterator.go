package prefixmap

import (
	"fmt"
	"iter"
)

type frame struct {
	ref   Ref
	depth int
	label byte
}

// Iterator walks the valued nodes of a Map depth first, in pre-order, with
// siblings visited in ascending byte order.
//
// The pending subtrees are held on an explicit stack so a walk can be paused
// between calls to Next. Keys are rebuilt incrementally in one buffer from the
// (depth, label) recorded on each frame.
//
// Mutating the map while an iterator is live is undefined. A new iterator
// always starts from the root.
type Iterator[T any] struct {
	m     *Map[T]
	stack []frame
	key   []byte
	done  bool
}

// Iter returns an iterator positioned before the first valued node.
func (m *Map[T]) Iter() *Iterator[T] {
	return &Iterator[T]{
		m:     m,
		stack: []frame{{ref: RootRef}},
	}
}

// Next advances to the next valued node and returns its key and value.
//
// Returns ErrIteratorDone once the walk is complete and ErrInvalidState on any
// call after that.
func (it *Iterator[T]) Next() (string, T, error) {
	var zero T
	if it.done {
		return "", zero, fmt.Errorf("%w: iterator advanced past its end", ErrInvalidState)
	}

	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		if top.depth == 0 {
			it.key = it.key[:0]
		} else {
			it.key = append(it.key[:top.depth-1], top.label)
		}

		// Push in descending order so the smallest label pops first.
		n := &it.m.nodes[top.ref]
		labels := it.m.labels(top.ref)
		for i := len(labels) - 1; i >= 0; i-- {
			it.stack = append(it.stack, frame{
				ref:   n.children[labels[i]],
				depth: top.depth + 1,
				label: labels[i],
			})
		}

		if n.hasValue {
			return string(it.key), n.value, nil
		}
	}

	it.done = true
	return "", zero, ErrIteratorDone
}

// All returns a sequence of every (key, value) pair, restarting from the root
// each time it is ranged over.
func (m *Map[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		it := m.Iter()
		for {
			k, v, err := it.Next()
			if err != nil {
				return
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Values returns a sequence of every stored value in iteration order.
func (m *Map[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
