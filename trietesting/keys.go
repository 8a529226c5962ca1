package trietesting

import (
	"math/rand"
	"slices"
)

// GreetingKeys is the abbreviation table used throughout the unique
// completion tests: "a" is both a key and a prefix of every other key, "ah"
// branches, and "ahojk" has exactly one completion.
var GreetingKeys = []string{"a", "aha", "ahoj", "ahojky"}

// RandomKeys returns n keys of length [0, maxLen] drawn from the full byte
// range. The same seed always produces the same keys, duplicates included.
func RandomKeys(seed int64, n int, maxLen int) []string {
	rng := rand.New(rand.NewSource(seed))
	keys := make([]string, 0, n)
	for range n {
		b := make([]byte, rng.Intn(maxLen+1))
		for i := range b {
			// A narrow alphabet on half the bytes forces shared prefixes.
			if rng.Intn(2) == 0 {
				b[i] = byte('a' + rng.Intn(3))
			} else {
				b[i] = byte(rng.Intn(256))
			}
		}
		keys = append(keys, string(b))
	}
	return keys
}

// SortedUnique returns the distinct keys in ascending byte order.
func SortedUnique(keys []string) []string {
	out := slices.Clone(keys)
	slices.Sort(out)
	return slices.Compact(out)
}

// AllPrefixes returns every distinct prefix of every key, the empty prefix
// included. Its length is the node count of a trie holding keys.
func AllPrefixes(keys []string) map[string]struct{} {
	prefixes := map[string]struct{}{"": {}}
	for _, k := range keys {
		for i := 1; i <= len(k); i++ {
			prefixes[k[:i]] = struct{}{}
		}
	}
	return prefixes
}

// IsPrefixOfAny reports whether q is a prefix of at least one key.
func IsPrefixOfAny(keys []string, q string) bool {
	for _, k := range keys {
		if len(q) <= len(k) && k[:len(q)] == q {
			return true
		}
	}
	return false
}
