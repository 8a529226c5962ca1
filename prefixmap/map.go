package prefixmap

import "fmt"

// Map is a mutable trie from byte-string keys to values of type T.
//
// The zero value is not usable, use New.
type Map[T any] struct {
	nodes []node[T]
	count int
}

// New returns an empty map holding only the root node.
func New[T any]() *Map[T] {
	return &Map[T]{nodes: make([]node[T], 1)}
}

// FromMap builds a map by inserting every entry of entries.
func FromMap[T any](entries map[string]T) *Map[T] {
	m := New[T]()
	for k, v := range entries {
		m.Insert(k, v)
	}
	return m
}

// Insert stores value at key, overwriting any value already stored at exactly
// that key. Missing links are created, so the pool grows by at most len(key)
// nodes. The empty key stores the value on the root.
func (m *Map[T]) Insert(key string, value T) {
	cur := RootRef
	for i := 0; i < len(key); i++ {
		cur = m.childOrCreate(cur, key[i])
	}

	n := &m.nodes[cur]
	if !n.hasValue {
		m.count++
	}
	n.value = value
	n.hasValue = true
}

// Lookup resolves key to a stored value, completing an unambiguous
// abbreviation of a stored key.
//
// Returns ErrKeyNotFound if a byte of key has no link, or if the walk ends at
// a node without a value that is either childless or branching.
func (m *Map[T]) Lookup(key string) (T, error) {
	ref, err := m.resolve(key, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.nodes[ref].value, nil
}

// Complete is Lookup that also returns the full stored key the query
// resolved to.
func (m *Map[T]) Complete(key string) (string, T, error) {
	full := []byte(key)
	ref, err := m.resolve(key, &full)
	if err != nil {
		var zero T
		return "", zero, err
	}
	return string(full), m.nodes[ref].value, nil
}

// Contains reports whether key itself carries a value. No completion is
// attempted.
func (m *Map[T]) Contains(key string) bool {
	ref, ok := m.walk(key)
	return ok && m.nodes[ref].hasValue
}

// Remove is not supported and never modifies the map.
func (m *Map[T]) Remove(key string) error {
	return fmt.Errorf("%w: remove %q", ErrUnsupported, key)
}

// Len returns the number of keys carrying a value.
func (m *Map[T]) Len() int {
	return m.count
}

// NodeCount returns the number of nodes in the pool, including the root.
func (m *Map[T]) NodeCount() int {
	return len(m.nodes)
}

// walk follows key from the root. ok=false at the first missing link.
func (m *Map[T]) walk(key string) (Ref, bool) {
	cur := RootRef
	for i := 0; i < len(key); i++ {
		c, ok := m.child(cur, key[i])
		if !ok {
			return 0, false
		}
		cur = c
	}
	return cur, true
}

// resolve walks key and then applies unique completion. When completed is
// non-nil the labels of every descended edge are appended to it.
func (m *Map[T]) resolve(key string, completed *[]byte) (Ref, error) {
	cur, ok := m.walk(key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	for !m.nodes[cur].hasValue {
		label, c, ok := m.soleChild(cur)
		if !ok {
			break
		}
		if completed != nil {
			*completed = append(*completed, label)
		}
		cur = c
	}

	if !m.nodes[cur].hasValue {
		return 0, fmt.Errorf("%w: %q has no unique completion", ErrKeyNotFound, key)
	}
	return cur, nil
}
