package linkedlist

import (
	"strconv"
	"strings"
)

// EmptyMarker is what String renders for a list without nodes.
const EmptyMarker = "<empty>"

// Node is a single element of a LinkedList.
type Node struct {
	Value int   // 当前数据
	Next  *Node // 下一个元素
}

// LinkedList is a singly linked list of ints. The zero value is an empty list.
// The chain reachable from Head is acyclic and finite.
type LinkedList struct {
	Head *Node // 链表中第一个元素
}

// New creates an empty list.
func New() *LinkedList {
	return &LinkedList{}
}

// NewWith creates a list holding a single value.
func NewWith(v int) *LinkedList {
	return &LinkedList{Head: &Node{Value: v}}
}

// Build creates a list by appending every value to the tail, in order.
func Build(values []int) *LinkedList {
	l := New()
	for _, v := range values {
		l.AppendToTail(v)
	}
	return l
}

// AppendToTail walks to the last node and attaches v after it.
func (l *LinkedList) AppendToTail(v int) {
	end := &Node{Value: v}
	if l.Head == nil {
		l.Head = end
		return
	}
	n := l.Head
	for n.Next != nil {
		n = n.Next
	}
	n.Next = end
}

// AppendToHead makes v the new first element.
func (l *LinkedList) AppendToHead(v int) {
	l.Head = &Node{Value: v, Next: l.Head}
}

// Len counts the nodes.
func (l *LinkedList) Len() int {
	if l == nil {
		return 0
	}
	size := 0
	for n := l.Head; n != nil; n = n.Next {
		size++
	}
	return size
}

func (l *LinkedList) IsEmpty() bool {
	return l == nil || l.Head == nil
}

// Values returns the values in list order. An empty list yields an empty, non-nil slice.
func (l *LinkedList) Values() []int {
	vs := make([]int, 0, l.Len())
	l.Loop(func(_ int, v int) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// Loop visits the values in order until callback returns false.
func (l *LinkedList) Loop(callback func(index int, v int) bool) {
	if l == nil {
		return
	}
	index := 0
	for n := l.Head; n != nil; n = n.Next {
		if !callback(index, n.Value) {
			break
		}
		index++
	}
}

// String renders the list as "v1 -> v2 -> ... -> vk", or EmptyMarker.
func (l *LinkedList) String() string {
	if l.IsEmpty() {
		return EmptyMarker
	}
	var sb strings.Builder
	n := l.Head
	for ; n.Next != nil; n = n.Next {
		sb.WriteString(strconv.Itoa(n.Value))
		sb.WriteString(" -> ")
	}
	sb.WriteString(strconv.Itoa(n.Value))
	return sb.String()
}

// Equals walks both lists in lockstep. They are equal when every pair of
// values matches and both chains end at the same position. Nil lists are empty.
func (l *LinkedList) Equals(other *LinkedList) bool {
	var a, b *Node
	if l != nil {
		a = l.Head
	}
	if other != nil {
		b = other.Head
	}
	for a != nil && b != nil {
		if a.Value != b.Value {
			return false
		}
		a = a.Next
		b = b.Next
	}
	return a == nil && b == nil
}
