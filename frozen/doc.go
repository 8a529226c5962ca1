package frozen

/*

# Frozen prefix trie

A Trie is built once from a fixed key set and never changes afterwards. It
answers prefix and word membership, unique-suffix checks, and iterates its
keys in ascending byte order.

## Layout

All nodes live in one NodePool, a flat slice allocated exactly once. Each node
is a dense 256-slot array of child Refs (one slot per byte value), a terminal
flag, the number of present children and the most recently appended child.

Build runs in two passes:

1. count: the node count is the number of distinct prefixes of the key set,
   the empty prefix included
2. populate: storage for exactly that many nodes is allocated, then every key
   is walked from the root, appending a node for each missing link

Keys are populated in ascending byte order, so the same key set always
produces the same pool regardless of the order keys were supplied in.

## The zero sentinel

Ref 0 is the root and NoneRef is also 0. This is sound only because the root
is never anybody's child. The builder guarantees it by construction: a child
is always appended after its parent, so every child ref is strictly greater
than its parent's ref. ValidatePool checks exactly that for decoded pools.

## Concurrency

Nothing is mutated after Build returns and nothing is computed lazily, so a
Trie may be shared by any number of goroutines without coordination.

## Serialized forms

- binary: a 16 byte header followed by one fixed width record per node (see
  noderecord.go). View answers queries directly over that encoding.
- CBOR: a sparse snapshot listing only the present (label, ref) edges of each
  node (see cbor.go).

*/
