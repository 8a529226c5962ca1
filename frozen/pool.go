package frozen

import "fmt"

// NodePool owns every node of one trie. Its length is fixed when the pool is
// populated and never changes afterwards.
type NodePool struct {
	nodes []Node
}

// newNodePool allocates storage for exactly capacity nodes and appends the root.
func newNodePool(capacity int) NodePool {
	nodes := make([]Node, 1, max(capacity, 1))
	return NodePool{nodes: nodes}
}

// Len returns the number of nodes, the root included.
func (p *NodePool) Len() int { return len(p.nodes) }

// At returns the node at ref. ErrInvalidState if ref is outside the pool.
func (p *NodePool) At(ref Ref) (*Node, error) {
	if uint64(ref) >= uint64(len(p.nodes)) {
		return nil, fmt.Errorf("%w: ref %d outside pool of %d nodes", ErrInvalidState, ref, len(p.nodes))
	}
	return &p.nodes[ref], nil
}

// insert walks key from the root, appending a node for every missing link,
// and marks the final node terminal. It never grows the pool beyond the
// capacity it was allocated with.
func (p *NodePool) insert(key string) error {
	cur := RootRef
	for i := 0; i < len(key); i++ {
		b := key[i]
		if c := p.nodes[cur].children[b]; c != NoneRef {
			cur = c
			continue
		}
		if len(p.nodes) == cap(p.nodes) {
			return fmt.Errorf("%w: pool of %d nodes is full at %q", ErrCapacityExceeded, cap(p.nodes), key[:i+1])
		}
		next := Ref(len(p.nodes))
		p.nodes = append(p.nodes, Node{})
		p.nodes[cur].appendChild(b, next)
		cur = next
	}
	p.nodes[cur].terminate()
	return nil
}

// walk follows key down from the node at from. ok=false at the first absent
// child.
func (p *NodePool) walk(from Ref, key string) (Ref, bool) {
	cur := from
	for i := 0; i < len(key); i++ {
		c := p.nodes[cur].children[key[i]]
		if c == NoneRef {
			return 0, false
		}
		cur = c
	}
	return cur, true
}
