package frozen

import "fmt"

// View answers queries directly over a binary encoded trie without decoding
// it, e.g. over data embedded in the binary or mapped from a file.
//
// NewView checks the header and the region size only. Child refs are bounds
// checked as they are followed, so a damaged region yields wrong answers but
// never a panic or an unbounded walk.
type View struct {
	Header  HeaderV1
	Records []byte
}

// NewView slices data into header and records.
func NewView(data []byte) (View, error) {
	h, ok, err := DecodeHeaderV1(data)
	if err != nil {
		return View{}, err
	}
	if !ok {
		return View{}, ErrEmptyRegion
	}
	if want := EncodedBytes(uint64(h.NodeCount)); uint64(len(data)) != want {
		return View{}, fmt.Errorf(
			"%w: bad data size: want=%d, got=%d",
			ErrBadRegionSize, want, len(data),
		)
	}
	return View{Header: h, Records: data[HeaderBytesV1:]}, nil
}

func (v View) Size() int { return int(v.Header.KeyCount) }

func (v View) ContainsPrefix(q string) bool {
	_, ok := v.walk(q)
	return ok
}

func (v View) ContainsWord(q string) bool {
	ref, ok := v.walk(q)
	return ok && NodeTerminalAt(v.Records, ref)
}

// HasUniqueSuffix matches Trie.HasUniqueSuffix.
func (v View) HasUniqueSuffix(prefix string) bool {
	ref, ok := v.walk(prefix)
	if !ok {
		return false
	}

	// A valid chain is at most NodeCount long.
	for steps := uint32(0); NodeChildCountAt(v.Records, ref) == 1; steps++ {
		next := NodeLastChildAt(v.Records, ref)
		if steps >= v.Header.NodeCount || !v.valid(next) {
			return false
		}
		ref = next
	}
	return NodeChildCountAt(v.Records, ref) == 0 && NodeTerminalAt(v.Records, ref)
}

func (v View) valid(ref Ref) bool {
	return ref != NoneRef && uint32(ref) < v.Header.NodeCount
}

func (v View) walk(q string) (Ref, bool) {
	cur := RootRef
	for i := 0; i < len(q); i++ {
		c := NodeChildAt(v.Records, cur, q[i])
		if !v.valid(c) {
			return 0, false
		}
		cur = c
	}
	return cur, true
}
