package frozen

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ValidatePool checks the structural invariants of a pool and returns every
// violation found, each wrapping ErrCorruptPool:
//
//   - the pool holds at least the root
//   - every child ref lies inside the pool and is greater than its parent's
//     ref, so the root is never a child and the structure is acyclic
//   - every node other than the root has exactly one parent
//   - childCount equals the number of present slots
//   - last is NoneRef iff there are no children, otherwise a present child
//   - the number of terminal nodes equals keyCount
func ValidatePool(p *NodePool, keyCount int) error {
	var result *multierror.Error
	corrupt := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf("%w: "+format, append([]any{ErrCorruptPool}, args...)...))
	}

	if p.Len() == 0 {
		corrupt("pool has no root")
		return result.ErrorOrNil()
	}

	parented := make([]bool, p.Len())
	terminals := 0
	for i := range p.nodes {
		n := &p.nodes[i]
		parent := Ref(i)
		if n.terminal {
			terminals++
		}

		present := 0
		lastPresent := false
		for label := range n.children {
			c := n.children[label]
			if c == NoneRef {
				continue
			}
			present++
			if c == n.last {
				lastPresent = true
			}
			if uint64(c) >= uint64(p.Len()) {
				corrupt("node %d child %#02x ref %d outside pool of %d", parent, label, c, p.Len())
				continue
			}
			if c <= parent {
				corrupt("node %d child %#02x ref %d does not follow its parent", parent, label, c)
				continue
			}
			if parented[c] {
				corrupt("node %d has more than one parent", c)
			}
			parented[c] = true
		}

		if present != int(n.childCount) {
			corrupt("node %d childCount %d, %d slots present", parent, n.childCount, present)
		}
		if (n.last == NoneRef) != (present == 0) {
			corrupt("node %d last %d inconsistent with %d children", parent, n.last, present)
		} else if present > 0 && !lastPresent {
			corrupt("node %d last %d is not one of its children", parent, n.last)
		}
	}

	for i := 1; i < len(parented); i++ {
		if !parented[i] {
			corrupt("node %d is unreachable", i)
		}
	}
	if terminals != keyCount {
		corrupt("%d terminal nodes, key count %d", terminals, keyCount)
	}
	return result.ErrorOrNil()
}

// Validate checks the trie's pool with ValidatePool.
func (t *Trie) Validate() error {
	return ValidatePool(&t.pool, t.keyCount)
}
