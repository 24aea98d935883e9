// Package dedup removes duplicate values from a linkedlist.LinkedList while
// keeping the first occurrence of every value in its original position.
package dedup

import (
	mapset "github.com/deckarep/golang-set/v2"

	"removedups/linkedlist"
)

// RemoveDupsWithBuffer returns a new list with each distinct value of l once,
// in order of first occurrence. A seen-set gives O(n) time and O(n) space.
// l is not modified. An empty or nil l yields a new empty list.
func RemoveDupsWithBuffer(l *linkedlist.LinkedList) *linkedlist.LinkedList {
	if l.IsEmpty() {
		return linkedlist.New()
	}
	n := l.Head
	seen := mapset.NewThreadUnsafeSet[int](n.Value)
	out := linkedlist.NewWith(n.Value)
	tail := out.Head
	for n = n.Next; n != nil; n = n.Next {
		// Add reports false when the value was already present.
		if seen.Add(n.Value) {
			tail.Next = &linkedlist.Node{Value: n.Value}
			tail = tail.Next
		}
	}
	return out
}

// RemoveDupsNoBuffer removes duplicates from l in place by splicing nodes out
// of the chain. It needs O(n^2) time and no storage beyond two cursors.
// The returned list is l itself.
func RemoveDupsNoBuffer(l *linkedlist.LinkedList) *linkedlist.LinkedList {
	if l == nil {
		return linkedlist.New()
	}
	for n := l.Head; n != nil; n = n.Next {
		prev := n
		for m := n.Next; m != nil; m = prev.Next {
			if m.Value == n.Value {
				prev.Next = m.Next
				m.Next = nil
			} else {
				prev = m
			}
		}
	}
	return l
}
