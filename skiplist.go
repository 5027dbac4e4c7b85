package gk

import "math/rand"

const maxHeight = 31

// skiplist is the ordered index behind a Summary. Nodes are keyed by
// entry value; equal values keep insertion order. Level 0 is a fully
// linked list in both directions, which is what the compression scan
// and rank walks operate on.
type skiplist struct {
	height int
	head   *slnode
}

type slnode struct {
	entry Entry
	next  []*slnode
	prev  []*slnode
}

func newSkiplist() *skiplist {
	return &skiplist{
		head: &slnode{next: make([]*slnode, maxHeight)},
	}
}

func (s *skiplist) front() *slnode {
	return s.head.next[0]
}

// insert places e after any existing nodes with the same value and
// returns the new node.
func (s *skiplist) insert(e Entry) *slnode {
	level := 0
	for n := rand.Int31(); n&1 == 1; n >>= 1 {
		level++
	}
	if level >= maxHeight {
		level = maxHeight - 1
	}
	if level > s.height {
		s.height++
		level = s.height
	}

	node := &slnode{
		entry: e,
		next:  make([]*slnode, level+1),
		prev:  make([]*slnode, level+1),
	}
	curr := s.head
	for i := s.height; i >= 0; i-- {
		for curr.next[i] != nil && e.Value >= curr.next[i].entry.Value {
			curr = curr.next[i]
		}
		if i > level {
			continue
		}
		node.next[i] = curr.next[i]
		if curr.next[i] != nil {
			curr.next[i].prev[i] = node
		}
		curr.next[i] = node
		node.prev[i] = curr
	}
	return node
}

// remove unlinks node from every level it participates in.
func (s *skiplist) remove(node *slnode) {
	for i := range node.next {
		prev := node.prev[i]
		next := node.next[i]
		if prev != nil {
			prev.next[i] = next
		}
		if next != nil {
			next.prev[i] = prev
		}
		node.next[i] = nil
		node.prev[i] = nil
	}
}
