package frozen

import "fmt"

// Build constructs a frozen trie from keys. Duplicate keys are collapsed and
// Size reports the number of distinct keys.
//
// The node count is computed first and storage for exactly that many nodes
// is allocated once; the populate pass never reallocates.
func Build(keys []string, opts ...Option) (*Trie, error) {
	o := BuildOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	sorted := sortedUnique(keys)
	nodeCount := countSorted(sorted)
	if o.Log != nil {
		o.Log.Debugf(
			"frozen.Build: keys=%d, distinct=%d, nodes=%d, bytes=%d",
			len(keys), len(sorted), nodeCount, EncodedBytes(uint64(nodeCount)))
	}
	if o.MaxNodes > 0 && nodeCount > o.MaxNodes {
		return nil, fmt.Errorf("%w: need %d nodes, limit %d", ErrCapacityExceeded, nodeCount, o.MaxNodes)
	}
	if uint64(nodeCount) > uint64(^Ref(0)) {
		return nil, fmt.Errorf("%w: %d nodes do not fit a Ref", ErrCapacityExceeded, nodeCount)
	}

	pool := newNodePool(nodeCount)
	for _, k := range sorted {
		if err := pool.insert(k); err != nil {
			return nil, err
		}
	}
	if pool.Len() != nodeCount {
		return nil, fmt.Errorf("%w: counted %d nodes, populated %d", ErrInvalidState, nodeCount, pool.Len())
	}

	if o.Log != nil {
		o.Log.Debugf("frozen.Build: collapsed %d duplicate keys", len(keys)-len(sorted))
	}
	return &Trie{pool: pool, keyCount: len(sorted)}, nil
}

// MustBuild is Build for package level tries whose key set is a literal. It
// panics if Build fails.
func MustBuild(keys ...string) *Trie {
	t, err := Build(keys)
	if err != nil {
		panic(err)
	}
	return t
}
