package frozen

import (
	"fmt"
	"iter"
)

// Trie is an immutable prefix trie over a fixed key set. Use Build,
// MustBuild, or one of the decoders to obtain one.
type Trie struct {
	pool     NodePool
	keyCount int
}

// Size returns the number of distinct keys the trie was built from.
func (t *Trie) Size() int { return t.keyCount }

func (t *Trie) Empty() bool { return t.keyCount == 0 }

// NodeCount returns the pool size, the root included.
func (t *Trie) NodeCount() int { return t.pool.Len() }

// Root returns the root ref.
func (t *Trie) Root() Ref { return RootRef }

// Node returns the node at ref. ErrInvalidState if ref is outside the pool.
func (t *Trie) Node(ref Ref) (*Node, error) { return t.pool.At(ref) }

// Walk follows q from the root and returns the node it reaches.
//
// Returns ErrKeyNotFound at the first byte with no child.
func (t *Trie) Walk(q string) (Ref, error) {
	ref, ok := t.pool.walk(RootRef, q)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrKeyNotFound, q)
	}
	return ref, nil
}

// ContainsPrefix reports whether q is a prefix of at least one key. The empty
// string is a prefix of every trie.
func (t *Trie) ContainsPrefix(q string) bool {
	_, ok := t.pool.walk(RootRef, q)
	return ok
}

// ContainsWord reports whether q is one of the keys.
func (t *Trie) ContainsWord(q string) bool {
	ref, ok := t.pool.walk(RootRef, q)
	return ok && t.pool.nodes[ref].terminal
}

// HasUniqueSuffix reports whether following the sole child from prefix, for
// as long as there is exactly one, ends at a terminal node with no children.
// An absent prefix reports false.
func (t *Trie) HasUniqueSuffix(prefix string) bool {
	ref, ok := t.pool.walk(RootRef, prefix)
	if !ok {
		return false
	}

	n := &t.pool.nodes[ref]
	for n.childCount == 1 {
		n = &t.pool.nodes[n.last]
	}
	return n.childCount == 0 && n.terminal
}

// Children returns the present (label, ref) pairs below ref in ascending
// label order. An out of range ref yields nothing. Every range over the
// result starts again from the first present slot.
func (t *Trie) Children(ref Ref) iter.Seq2[byte, Ref] {
	n, err := t.pool.At(ref)
	if err != nil {
		return func(func(byte, Ref) bool) {}
	}
	return n.Children()
}
