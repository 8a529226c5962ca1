package frozen

import (
	"fmt"
	"iter"
)

type frame struct {
	ref   Ref
	depth int
	label byte
	seed  bool
}

// KeyIterator yields the keys of terminal nodes depth first, siblings in
// ascending byte order, which is ascending lexicographic key order.
//
// Pending subtrees are kept on an explicit stack, so a walk can be paused
// between calls to Next. The current key is rebuilt in a single buffer: each
// frame records its depth and edge label, and popping a frame truncates the
// buffer to depth-1 before appending the label.
//
// Iterators read the trie and never change it; any number may run at once.
type KeyIterator struct {
	pool  *NodePool
	stack []frame
	key   []byte
	done  bool
}

// Iter returns an iterator positioned before the first key.
func (t *Trie) Iter() *KeyIterator {
	return newKeyIterator(&t.pool, RootRef, "")
}

// IterPrefix returns an iterator over the keys starting with prefix.
// ErrKeyNotFound if prefix is absent.
func (t *Trie) IterPrefix(prefix string) (*KeyIterator, error) {
	ref, err := t.Walk(prefix)
	if err != nil {
		return nil, err
	}
	return newKeyIterator(&t.pool, ref, prefix), nil
}

func newKeyIterator(pool *NodePool, start Ref, prefix string) *KeyIterator {
	return &KeyIterator{
		pool:  pool,
		stack: []frame{{ref: start, depth: len(prefix), seed: true}},
		key:   []byte(prefix),
	}
}

// Next advances to the next key.
//
// Returns ErrIteratorDone once the walk is complete and ErrInvalidState on any
// call after that.
func (it *KeyIterator) Next() (string, error) {
	if it.done {
		return "", fmt.Errorf("%w: iterator advanced past its end", ErrInvalidState)
	}

	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		if top.seed {
			it.key = it.key[:top.depth]
		} else {
			it.key = append(it.key[:top.depth-1], top.label)
		}

		n := &it.pool.nodes[top.ref]
		if n.childCount > 0 {
			// Descending, so the smallest label pops first.
			for i := ChildLimit - 1; i >= 0; i-- {
				c := n.children[i]
				if c == NoneRef {
					continue
				}
				it.stack = append(it.stack, frame{ref: c, depth: top.depth + 1, label: byte(i)})
			}
		}

		if n.terminal {
			return string(it.key), nil
		}
	}

	it.done = true
	return "", ErrIteratorDone
}

// All returns every key in ascending order. Each range starts a new walk.
func (t *Trie) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		drain(t.Iter(), yield)
	}
}

// KeysWithPrefix returns every key starting with prefix, in ascending order.
// An absent prefix yields nothing.
func (t *Trie) KeysWithPrefix(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		it, err := t.IterPrefix(prefix)
		if err != nil {
			return
		}
		drain(it, yield)
	}
}

func drain(it *KeyIterator, yield func(string) bool) {
	for {
		k, err := it.Next()
		if err != nil {
			return
		}
		if !yield(k) {
			return
		}
	}
}
