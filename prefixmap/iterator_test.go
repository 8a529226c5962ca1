package prefixmap

import (
	"slices"
	"testing"

	"github.com/forestrie/go-prefixtrie/trietesting"
	"github.com/stretchr/testify/require"
)

func TestIteratorVisitsEveryValueOnce(t *testing.T) {
	m := greetingMap(t)

	var keys []string
	var values []string
	it := m.Iter()
	for {
		k, v, err := it.Next()
		if err != nil {
			require.ErrorIs(t, err, ErrIteratorDone)
			break
		}
		keys = append(keys, k)
		values = append(values, v)
	}

	require.Equal(t, []string{"a", "aha", "ahoj", "ahojky"}, keys)
	require.Equal(t, []string{"value:a", "value:aha", "value:ahoj", "value:ahojky"}, values)
}

func TestIteratorPastEnd(t *testing.T) {
	m := New[int]()
	m.Insert("x", 1)

	it := m.Iter()
	_, _, err := it.Next()
	require.NoError(t, err)

	_, _, err = it.Next()
	require.ErrorIs(t, err, ErrIteratorDone)

	_, _, err = it.Next()
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestIteratorEmptyMap(t *testing.T) {
	m := New[int]()
	_, _, err := m.Iter().Next()
	require.ErrorIs(t, err, ErrIteratorDone)

	n := 0
	for range m.All() {
		n++
	}
	require.Zero(t, n)
}

func TestIteratorIsResumable(t *testing.T) {
	m := greetingMap(t)

	it := m.Iter()
	first, _, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "a", first)

	// A fresh iterator restarts without disturbing the paused one.
	restarted, _, err := m.Iter().Next()
	require.NoError(t, err)
	require.Equal(t, "a", restarted)

	second, _, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "aha", second)
}

func TestAllMatchesInsertedKeys(t *testing.T) {
	keys := trietesting.RandomKeys(3, 300, 10)

	m := New[string]()
	for _, k := range keys {
		m.Insert(k, k)
	}

	var got []string
	for k, v := range m.All() {
		require.Equal(t, k, v)
		got = append(got, k)
	}
	require.Equal(t, trietesting.SortedUnique(keys), got)
	require.Equal(t, m.Len(), len(got))

	values := slices.Collect(m.Values())
	require.Equal(t, got, values)
}

func TestAllEarlyBreak(t *testing.T) {
	m := greetingMap(t)
	var got []string
	for k := range m.All() {
		got = append(got, k)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []string{"a", "aha"}, got)
}
