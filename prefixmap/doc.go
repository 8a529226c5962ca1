package prefixmap

/*

# Mutable prefix map with unique completion

A Map associates values with byte-string keys and shares common prefixes in a
trie. Every byte of a key is one trie level; there is no radix compression.

Nodes live in a single growable pool and are addressed by Ref. Ref 0 is the
root, refs are assigned in creation order and are never reused. A node's
children are a sparse byte -> Ref map.

## Unique completion

Lookup accepts an abbreviation of a stored key. After walking every byte of
the query:

1. if the node carries a value, that value is the answer (even if the node has
   children, so "a" never descends into "aha")
2. otherwise, while the node has exactly one child and no value, descend
3. the answer is the value of the node reached; a dead end or a branching node
   without a value is ErrKeyNotFound

## Concurrency

A Map is not synchronised. Callers that share one across goroutines must hold
an exclusive lock around Insert, Lookup and iteration.

*/
