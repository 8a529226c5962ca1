package frozen

import "errors"

// Ref is a node index into a NodePool.
type Ref uint32

const (
	// RootRef is the index of the root node.
	RootRef Ref = 0

	// NoneRef marks an absent child slot. It shares its value with RootRef,
	// which is safe because the root is never a child.
	NoneRef Ref = 0

	// ChildLimit is the fanout of every node, one slot per byte value.
	ChildLimit = 256
)

var (
	ErrKeyNotFound      = errors.New("frozen: key not found")
	ErrInvalidState     = errors.New("frozen: invalid state")
	ErrIteratorDone     = errors.New("frozen: no more items in iterator")
	ErrCapacityExceeded = errors.New("frozen: node capacity exceeded")
	ErrCorruptPool      = errors.New("frozen: corrupt node pool")
	ErrBadRegionSize    = errors.New("frozen: region size invalid")
	ErrBadMagic         = errors.New("frozen: magic invalid")
	ErrBadVersion       = errors.New("frozen: version invalid")
	ErrEmptyRegion      = errors.New("frozen: region is uninitialized")
)
