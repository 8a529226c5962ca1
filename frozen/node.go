package frozen

import "iter"

// Node is one vertex of a frozen trie. Nodes are only ever handed out by
// pointer into their pool and expose no mutators.
type Node struct {
	children   [ChildLimit]Ref
	terminal   bool
	childCount uint16
	last       Ref
}

func (n *Node) appendChild(label byte, ref Ref) {
	n.children[label] = ref
	n.last = ref
	n.childCount++
}

func (n *Node) terminate() { n.terminal = true }

// HasChild reports whether the node has at least one child.
func (n *Node) HasChild() bool { return n.last != NoneRef }

// HasChildAt reports whether the node has a child labelled b.
func (n *Node) HasChildAt(b byte) bool { return n.children[b] != NoneRef }

// Child returns the child labelled b, or NoneRef.
func (n *Node) Child(b byte) Ref { return n.children[b] }

// LastChild returns the most recently appended child, or NoneRef. For a node
// with a single child this is that child.
func (n *Node) LastChild() Ref { return n.last }

func (n *Node) ChildCount() int { return int(n.childCount) }

// Terminal reports whether the path to this node is a stored key.
func (n *Node) Terminal() bool { return n.terminal }

// Children returns the present (label, ref) pairs in ascending label order.
// The sequence holds no state of its own, ranging over it again replays it
// from the first present slot.
func (n *Node) Children() iter.Seq2[byte, Ref] {
	return func(yield func(byte, Ref) bool) {
		if n.childCount == 0 {
			return
		}
		for i := range n.children {
			c := n.children[i]
			if c == NoneRef {
				continue
			}
			if !yield(byte(i), c) {
				return
			}
		}
	}
}
