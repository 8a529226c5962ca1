package prefixmap

import "errors"

// Ref is a node index into a map's pool.
type Ref uint32

// RootRef is the index of the root node. It exists for the map's lifetime.
const RootRef Ref = 0

var (
	ErrKeyNotFound  = errors.New("prefixmap: key not found")
	ErrUnsupported  = errors.New("prefixmap: operation not supported")
	ErrInvalidState = errors.New("prefixmap: invalid state")
	ErrIteratorDone = errors.New("prefixmap: no more items in iterator")
)
