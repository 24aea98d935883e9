package harness

// Case is one row of the validation table.
type Case struct {
	Name     string
	Input    []int
	Expected []int
}

// Cases returns the fixed validation table. Every call builds a fresh slice.
func Cases() []Case {
	return []Case{
		{Name: "one_adjacent_pair", Input: []int{1, 2, 3, 3, 5}, Expected: []int{1, 2, 3, 5}},
		{Name: "trailing_pair", Input: []int{1, 2, 3, 3}, Expected: []int{1, 2, 3}},
		{Name: "short_trailing_pair", Input: []int{1, 2, 2}, Expected: []int{1, 2}},
		{Name: "singleton", Input: []int{1}, Expected: []int{1}},
		{Name: "pair", Input: []int{1, 1}, Expected: []int{1}},
		{Name: "all_equal", Input: []int{2, 2, 2, 2, 2, 2}, Expected: []int{2}},
		{Name: "head_and_middle_pairs", Input: []int{1, 1, 3, 4, 5, 5, 6, 7}, Expected: []int{1, 3, 4, 5, 6, 7}},
		{Name: "scattered", Input: []int{7, 2, 7, 9, 20, 1, 0, 0, 0, 25}, Expected: []int{7, 2, 9, 20, 1, 0, 25}},
		{Name: "descending_then_ascending", Input: []int{9, 8, 7, 6, 6, 1, 2, 3, 4, 4}, Expected: []int{9, 8, 7, 6, 1, 2, 3, 4}},
		{Name: "negatives", Input: []int{9, 9, 9, -10, -100, 45, 67, -100, 99}, Expected: []int{9, -10, -100, 45, 67, 99}},
	}
}
