package frozen

import "slices"

// CountNodes returns the node count of a trie holding keys: the number of
// distinct prefixes across all keys, the empty prefix included.
func CountNodes(keys []string) int {
	return countSorted(sortedUnique(keys))
}

// countSorted counts nodes for an ascending, duplicate free key list. Each
// key adds one node per byte beyond the prefix it shares with its
// predecessor, which is the longest prefix it shares with any earlier key.
func countSorted(keys []string) int {
	count := 1
	prev := ""
	for _, k := range keys {
		count += len(k) - commonPrefixLen(prev, k)
		prev = k
	}
	return count
}

func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func sortedUnique(keys []string) []string {
	out := slices.Clone(keys)
	slices.Sort(out)
	return slices.Compact(out)
}

// PoolBytes returns the record bytes required for nodeCount nodes.
func PoolBytes(nodeCount uint64) uint64 {
	return nodeCount * NodeRecordBytes
}

// EncodedBytes returns the full binary encoding size, header included.
func EncodedBytes(nodeCount uint64) uint64 {
	return HeaderBytesV1 + PoolBytes(nodeCount)
}
