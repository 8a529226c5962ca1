package frozen

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/fxamacker/cbor/v2"
)

type BuildOptions struct {
	Log logger.Logger

	// MaxNodes bounds the pool size. Zero means unbounded.
	MaxNodes int
}

type CodecOptions struct {
	EncOptions cbor.EncOptions
	DecOptions cbor.DecOptions
}

// Option is a generic option type. Each option type asserts to the options
// record it targets and ignores any other.
type Option func(any)

// WithLogger enables debug logging of build statistics.
func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*BuildOptions); ok {
			o.Log = log
		}
	}
}

// WithMaxNodes fails Build with ErrCapacityExceeded, before any storage is
// allocated, when the key set needs more than n nodes.
func WithMaxNodes(n int) Option {
	return func(opts any) {
		if o, ok := opts.(*BuildOptions); ok {
			o.MaxNodes = n
		}
	}
}

func WithEncOptions(encOpts cbor.EncOptions) Option {
	return func(opts any) {
		if o, ok := opts.(*CodecOptions); ok {
			o.EncOptions = encOpts
		}
	}
}

func WithDecOptions(decOpts cbor.DecOptions) Option {
	return func(opts any) {
		if o, ok := opts.(*CodecOptions); ok {
			o.DecOptions = decOpts
		}
	}
}
