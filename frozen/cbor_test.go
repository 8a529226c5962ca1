package frozen

import (
	"slices"
	"testing"

	"github.com/forestrie/go-prefixtrie/trietesting"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
)

func TestCBORRoundTrip(t *testing.T) {
	keys := trietesting.RandomKeys(31, 200, 10)
	trie, err := Build(keys)
	require.NoError(t, err)

	data, err := trie.MarshalCBOR()
	require.NoError(t, err)

	var decoded Trie
	require.NoError(t, decoded.UnmarshalCBOR(data))
	require.Equal(t, trie.Size(), decoded.Size())
	require.Equal(t, trie.pool.nodes, decoded.pool.nodes)
	require.Equal(t, slices.Collect(trie.All()), slices.Collect(decoded.All()))
}

func TestCBORIsDeterministic(t *testing.T) {
	keys := trietesting.RandomKeys(32, 100, 6)
	a, err := MustBuild(keys...).MarshalCBOR()
	require.NoError(t, err)
	b, err := MustBuild(keys...).MarshalCBOR()
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestCBORIsSparse(t *testing.T) {
	trie := MustBuild("test", "xx")
	data, err := trie.MarshalCBOR()
	require.NoError(t, err)

	bin, err := trie.MarshalBinary()
	require.NoError(t, err)
	require.Less(t, len(data), len(bin)/10)
}

func TestCBORCodecOptions(t *testing.T) {
	codec, err := NewCodec(
		WithEncOptions(cbor.CanonicalEncOptions()),
		WithDecOptions(cbor.DecOptions{MaxArrayElements: 1024}),
	)
	require.NoError(t, err)

	trie := MustBuild(trietesting.GreetingKeys...)
	data, err := codec.Encode(trie)
	require.NoError(t, err)

	decoded, err := codec.Decode(data)
	require.NoError(t, err)
	require.Equal(t, trietesting.GreetingKeys, slices.Collect(decoded.All()))
}

func TestCBORDecodeRejectsCorruptSnapshots(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)

	encode := func(s trieSnapshot) []byte {
		data, err := codec.encMode.Marshal(&s)
		require.NoError(t, err)
		return data
	}

	cases := []struct {
		name string
		s    trieSnapshot
		want error
	}{
		{
			name: "bad version",
			s:    trieSnapshot{Version: 2, Nodes: []nodeSnapshot{{}}},
			want: ErrBadVersion,
		},
		{
			name: "no root",
			s:    trieSnapshot{Version: SnapshotVersionV1},
			want: ErrCorruptPool,
		},
		{
			name: "root as child",
			s: trieSnapshot{Version: SnapshotVersionV1, KeyCount: 1, Nodes: []nodeSnapshot{
				{Edges: []edgeSnapshot{{Label: 'a', Ref: 1}}},
				{Terminal: true, Edges: []edgeSnapshot{{Label: 'b', Ref: RootRef}}},
			}},
			want: ErrCorruptPool,
		},
		{
			name: "duplicate label",
			s: trieSnapshot{Version: SnapshotVersionV1, KeyCount: 2, Nodes: []nodeSnapshot{
				{Edges: []edgeSnapshot{{Label: 'a', Ref: 1}, {Label: 'a', Ref: 2}}},
				{Terminal: true},
				{Terminal: true},
			}},
			want: ErrCorruptPool,
		},
		{
			name: "shared child",
			s: trieSnapshot{Version: SnapshotVersionV1, KeyCount: 1, Nodes: []nodeSnapshot{
				{Edges: []edgeSnapshot{{Label: 'a', Ref: 1}, {Label: 'b', Ref: 1}}},
				{Terminal: true},
			}},
			want: ErrCorruptPool,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := codec.Decode(encode(c.s))
			require.ErrorIs(t, err, c.want)
		})
	}

	_, err = codec.Decode([]byte{0xff})
	require.Error(t, err)
}
