package linkedlist

// List is the capability set a singly linked list of ints exposes.
type List interface {
	AppendToTail(v int)
	AppendToHead(v int)
	Len() int
	IsEmpty() bool
	Values() []int
	String() string
	Equals(other *LinkedList) bool
	Loop(callback func(index int, v int) bool) // 遍历链表，返回true继续，返回false停止
}

var _ List = (*LinkedList)(nil)
