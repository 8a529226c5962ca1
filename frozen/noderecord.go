package frozen

import (
	"bytes"
	"fmt"
)

const (
	MagicV1       = "PFT1"
	VersionV1     = 1
	HeaderBytesV1 = 16

	// NodeRecordBytes is the fixed width of one node record:
	//   - flags u8 (bit 0: terminal)
	//   - reserved u8
	//   - childCount u16
	//   - last u32
	//   - children [256]u32
	NodeRecordBytes = 8 + ChildLimit*4

	flagTerminal = 0x01

	nodeChildrenOff = 8
)

// HeaderV1 precedes the node records of a binary encoded trie.
type HeaderV1 struct {
	NodeCount uint32
	KeyCount  uint32
}

// EncodeHeaderV1 writes a V1 header into region.
func EncodeHeaderV1(region []byte, h HeaderV1) error {
	if len(region) < HeaderBytesV1 {
		return ErrBadRegionSize
	}
	if h.NodeCount == 0 {
		return fmt.Errorf("%w: a pool always holds the root", ErrCorruptPool)
	}
	copy(region[0:4], []byte(MagicV1))
	region[4] = VersionV1
	clear(region[5:8])
	writeU32BE(region[8:12], h.NodeCount)
	writeU32BE(region[12:16], h.KeyCount)
	return nil
}

// DecodeHeaderV1 decodes a V1 header from region.
//
// ok=false indicates the region is zero-filled / uninitialized.
func DecodeHeaderV1(region []byte) (h HeaderV1, ok bool, err error) {
	if len(region) < HeaderBytesV1 {
		return HeaderV1{}, false, ErrBadRegionSize
	}
	if bytes.Equal(region[0:4], []byte{0, 0, 0, 0}) {
		return HeaderV1{}, false, nil
	}
	if string(region[0:4]) != MagicV1 {
		return HeaderV1{}, false, ErrBadMagic
	}
	if region[4] != VersionV1 {
		return HeaderV1{}, false, ErrBadVersion
	}

	h.NodeCount = readU32BE(region[8:12])
	h.KeyCount = readU32BE(region[12:16])
	if h.NodeCount == 0 {
		return HeaderV1{}, false, fmt.Errorf("%w: header declares no nodes", ErrCorruptPool)
	}
	return h, true, nil
}

// NodeRecordOffset returns the byte offset of ref in records.
func NodeRecordOffset(ref Ref) uint64 {
	return uint64(ref) * NodeRecordBytes
}

func nodeRec(records []byte, ref Ref) []byte {
	off := NodeRecordOffset(ref)
	return records[off : off+NodeRecordBytes]
}

// NodeTerminalAt returns the terminal flag of the record at ref.
func NodeTerminalAt(records []byte, ref Ref) bool {
	return nodeRec(records, ref)[0]&flagTerminal != 0
}

// NodeChildCountAt returns the child count of the record at ref.
func NodeChildCountAt(records []byte, ref Ref) int {
	return int(readU16BE(nodeRec(records, ref)[2:4]))
}

// NodeLastChildAt returns the most recently appended child of the record at ref.
func NodeLastChildAt(records []byte, ref Ref) Ref {
	return Ref(readU32BE(nodeRec(records, ref)[4:8]))
}

// NodeChildAt returns the child labelled b of the record at ref, or NoneRef.
func NodeChildAt(records []byte, ref Ref, b byte) Ref {
	off := nodeChildrenOff + int(b)*4
	return Ref(readU32BE(nodeRec(records, ref)[off : off+4]))
}

// NodeWrite writes n as the record at ref in-place.
func NodeWrite(records []byte, ref Ref, n *Node) {
	rec := nodeRec(records, ref)
	rec[0] = 0
	if n.terminal {
		rec[0] = flagTerminal
	}
	rec[1] = 0
	writeU16BE(rec[2:4], n.childCount)
	writeU32BE(rec[4:8], uint32(n.last))
	for i, c := range n.children {
		off := nodeChildrenOff + i*4
		writeU32BE(rec[off:off+4], uint32(c))
	}
}

func nodeReadInto(records []byte, ref Ref, n *Node) {
	rec := nodeRec(records, ref)
	n.terminal = rec[0]&flagTerminal != 0
	n.childCount = readU16BE(rec[2:4])
	n.last = Ref(readU32BE(rec[4:8]))
	for i := range n.children {
		off := nodeChildrenOff + i*4
		n.children[i] = Ref(readU32BE(rec[off : off+4]))
	}
}

// MarshalBinary encodes the trie as a V1 header followed by one record per
// node, in ref order starting with the root.
func (t *Trie) MarshalBinary() ([]byte, error) {
	nodeCount := t.pool.Len()
	data := make([]byte, EncodedBytes(uint64(nodeCount)))
	err := EncodeHeaderV1(data, HeaderV1{NodeCount: uint32(nodeCount), KeyCount: uint32(t.keyCount)})
	if err != nil {
		return nil, err
	}

	records := data[HeaderBytesV1:]
	for i := range t.pool.nodes {
		NodeWrite(records, Ref(i), &t.pool.nodes[i])
	}
	return data, nil
}

// UnmarshalBinary replaces t with the trie encoded in data. The decoded pool
// is validated before t is touched. Like Build, this is construction: it must
// not be called on a trie that readers already share.
func (t *Trie) UnmarshalBinary(data []byte) error {
	h, ok, err := DecodeHeaderV1(data)
	if err != nil {
		return err
	}
	if !ok {
		return ErrEmptyRegion
	}
	if want := EncodedBytes(uint64(h.NodeCount)); uint64(len(data)) != want {
		return fmt.Errorf("%w: want=%d, got=%d", ErrBadRegionSize, want, len(data))
	}

	records := data[HeaderBytesV1:]
	pool := NodePool{nodes: make([]Node, h.NodeCount)}
	for i := range pool.nodes {
		nodeReadInto(records, Ref(i), &pool.nodes[i])
	}
	if err := ValidatePool(&pool, int(h.KeyCount)); err != nil {
		return err
	}

	t.pool = pool
	t.keyCount = int(h.KeyCount)
	return nil
}

// DecodeBinary returns the trie encoded in data.
func DecodeBinary(data []byte) (*Trie, error) {
	t := &Trie{}
	if err := t.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return t, nil
}
