package frozen

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// SnapshotVersionV1 is the version field of a CBOR snapshot.
const SnapshotVersionV1 = 1

// edgeSnapshot is one present child slot.
type edgeSnapshot struct {
	_     struct{} `cbor:",toarray"`
	Label uint8
	Ref   Ref
}

type nodeSnapshot struct {
	Terminal bool           `cbor:"1,keyasint,omitempty"`
	Edges    []edgeSnapshot `cbor:"2,keyasint,omitempty"`
}

// trieSnapshot is the sparse encoding: only present edges are listed and the
// node count is the length of Nodes.
type trieSnapshot struct {
	Version  uint8          `cbor:"1,keyasint"`
	KeyCount uint32         `cbor:"2,keyasint"`
	Nodes    []nodeSnapshot `cbor:"3,keyasint"`
}

// Codec encodes and decodes sparse CBOR snapshots of frozen tries.
type Codec struct {
	encMode cbor.EncMode
	decMode cbor.DecMode
}

// NewCodec returns a codec using core deterministic encoding unless
// WithEncOptions / WithDecOptions say otherwise.
func NewCodec(opts ...Option) (Codec, error) {
	o := CodecOptions{
		EncOptions: cbor.CoreDetEncOptions(),
		DecOptions: cbor.DecOptions{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	var err error
	c := Codec{}
	c.encMode, err = o.EncOptions.EncMode()
	if err != nil {
		return Codec{}, err
	}
	c.decMode, err = o.DecOptions.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return c, nil
}

// Encode returns the CBOR snapshot of t.
func (c Codec) Encode(t *Trie) ([]byte, error) {
	s := trieSnapshot{
		Version:  SnapshotVersionV1,
		KeyCount: uint32(t.keyCount),
		Nodes:    make([]nodeSnapshot, t.pool.Len()),
	}
	for i := range t.pool.nodes {
		n := &t.pool.nodes[i]
		ns := &s.Nodes[i]
		ns.Terminal = n.terminal
		for label, ref := range n.Children() {
			ns.Edges = append(ns.Edges, edgeSnapshot{Label: label, Ref: ref})
		}
	}
	return c.encMode.Marshal(&s)
}

// Decode rebuilds a trie from a CBOR snapshot. The last child of each node is
// taken to be its greatest child ref, which is what Build produces.
func (c Codec) Decode(data []byte) (*Trie, error) {
	var s trieSnapshot
	if err := c.decMode.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Version != SnapshotVersionV1 {
		return nil, fmt.Errorf("%w: snapshot version %d", ErrBadVersion, s.Version)
	}
	if uint64(len(s.Nodes)) > uint64(^Ref(0)) {
		return nil, fmt.Errorf("%w: %d nodes do not fit a Ref", ErrCapacityExceeded, len(s.Nodes))
	}

	pool := NodePool{nodes: make([]Node, len(s.Nodes))}
	for i := range s.Nodes {
		ns := &s.Nodes[i]
		n := &pool.nodes[i]
		n.terminal = ns.Terminal
		for _, e := range ns.Edges {
			if n.children[e.Label] != NoneRef {
				return nil, fmt.Errorf("%w: node %d lists label %#02x twice", ErrCorruptPool, i, e.Label)
			}
			if e.Ref == NoneRef {
				return nil, fmt.Errorf("%w: node %d label %#02x links to the root", ErrCorruptPool, i, e.Label)
			}
			n.children[e.Label] = e.Ref
			n.childCount++
			n.last = max(n.last, e.Ref)
		}
	}
	if err := ValidatePool(&pool, int(s.KeyCount)); err != nil {
		return nil, err
	}
	return &Trie{pool: pool, keyCount: int(s.KeyCount)}, nil
}

// MarshalCBOR encodes t with the default codec.
func (t *Trie) MarshalCBOR() ([]byte, error) {
	c, err := NewCodec()
	if err != nil {
		return nil, err
	}
	return c.Encode(t)
}

// UnmarshalCBOR replaces t with the trie in data, using the default codec.
// It must not be called on a trie that readers already share.
func (t *Trie) UnmarshalCBOR(data []byte) error {
	c, err := NewCodec()
	if err != nil {
		return err
	}
	decoded, err := c.Decode(data)
	if err != nil {
		return err
	}
	*t = *decoded
	return nil
}
