package dedup

import (
	"math/rand"
	"reflect"
	"testing"

	"removedups/linkedlist"
)

var testCases = []struct {
	input    []int
	expected []int
}{
	{[]int{1, 2, 3, 3, 5}, []int{1, 2, 3, 5}},
	{[]int{1, 2, 3, 3}, []int{1, 2, 3}},
	{[]int{1, 2, 2}, []int{1, 2}},
	{[]int{1}, []int{1}},
	{[]int{1, 1}, []int{1}},
	{[]int{2, 2, 2, 2, 2, 2}, []int{2}},
	{[]int{1, 1, 3, 4, 5, 5, 6, 7}, []int{1, 3, 4, 5, 6, 7}},
	{[]int{7, 2, 7, 9, 20, 1, 0, 0, 0, 25}, []int{7, 2, 9, 20, 1, 0, 25}},
	{[]int{9, 8, 7, 6, 6, 1, 2, 3, 4, 4}, []int{9, 8, 7, 6, 1, 2, 3, 4}},
	{[]int{9, 9, 9, -10, -100, 45, 67, -100, 99}, []int{9, -10, -100, 45, 67, 99}},
}

var algorithms = map[string]func(*linkedlist.LinkedList) *linkedlist.LinkedList{
	"with_buffer": RemoveDupsWithBuffer,
	"no_buffer":   RemoveDupsNoBuffer,
}

// firstOccurrences is the reference result both algorithms must match.
func firstOccurrences(values []int) []int {
	seen := make(map[int]struct{}, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

func TestRemoveDups(t *testing.T) {
	for name, f := range algorithms {
		for _, tc := range testCases {
			got := f(linkedlist.Build(tc.input))
			expected := linkedlist.Build(tc.expected)
			if !got.Equals(expected) {
				t.Errorf("%s(%v): unexpected result: %s, expected: %s", name, tc.input, got, expected)
			}
		}
	}
}

func TestRemoveDupsEmpty(t *testing.T) {
	for name, f := range algorithms {
		got := f(linkedlist.New())
		if got == nil || !got.IsEmpty() {
			t.Errorf("%s: unexpected result: %v, expected an empty list", name, got)
		}
		got = f(nil)
		if got == nil || !got.IsEmpty() {
			t.Errorf("%s(nil): unexpected result: %v, expected an empty list", name, got)
		}
	}
}

func TestRemoveDupsWithBufferKeepsInput(t *testing.T) {
	input := []int{7, 2, 7, 9, 20, 1, 0, 0, 0, 25}
	l := linkedlist.Build(input)
	out := RemoveDupsWithBuffer(l)
	if out == l {
		t.Error("expected a new list, got the input list")
	}
	if got := l.Values(); !reflect.DeepEqual(got, input) {
		t.Errorf("input modified: %v, expected: %v", got, input)
	}
}

func TestRemoveDupsNoBufferInPlace(t *testing.T) {
	l := linkedlist.Build([]int{1, 1, 2, 1, 3, 2})
	head := l.Head
	out := RemoveDupsNoBuffer(l)
	if out != l {
		t.Error("expected the input list to be returned")
	}
	if out.Head != head {
		t.Error("expected the head node to be kept")
	}
	if got := l.Values(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("unexpected result: %v, expected: %v", got, []int{1, 2, 3})
	}
}

func TestRemoveDupsIdempotent(t *testing.T) {
	for name, f := range algorithms {
		for _, tc := range testCases {
			once := f(linkedlist.Build(tc.input))
			twice := f(linkedlist.Build(once.Values()))
			if !twice.Equals(once) {
				t.Errorf("%s: unexpected result: %s, expected: %s", name, twice, once)
			}
		}
	}
}

func TestRemoveDupsRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		values := make([]int, r.Intn(40))
		for j := range values {
			values[j] = r.Intn(21) - 10
		}
		expected := firstOccurrences(values)
		for name, f := range algorithms {
			got := f(linkedlist.Build(values)).Values()
			if !reflect.DeepEqual(got, expected) {
				t.Errorf("%s(%v): unexpected result: %v, expected: %v", name, values, got, expected)
			}
		}
	}
}

func benchmarkInput() []int {
	values := make([]int, 1000)
	for i := range values {
		values[i] = i / 3
	}
	return values
}

func BenchmarkRemoveDupsWithBuffer(b *testing.B) {
	values := benchmarkInput()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		l := linkedlist.Build(values)
		b.StartTimer()
		RemoveDupsWithBuffer(l)
	}
}

func BenchmarkRemoveDupsNoBuffer(b *testing.B) {
	values := benchmarkInput()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		l := linkedlist.Build(values)
		b.StartTimer()
		RemoveDupsNoBuffer(l)
	}
}
