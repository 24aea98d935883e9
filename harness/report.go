package harness

import (
	"io"

	"removedups/csv"
)

// Result is the outcome of one algorithm on one case.
type Result struct {
	Algorithm string
	Case      string
	Input     []int
	Expected  []int
	Got       []int
	Passed    bool
}

type Report struct {
	RunID   string
	Results []Result
}

func (r *Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

func (r *Report) Failed() int {
	return len(r.Results) - r.Passed()
}

// OK reports whether every result passed.
func (r *Report) OK() bool {
	return r.Failed() == 0
}

func (r *Report) csvSpec() *csv.Spec {
	spec := &csv.Spec{
		Titles: []string{"run_id", "algorithm", "case", "input", "expected", "got", "passed"},
		Data:   make([][]interface{}, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		spec.Data = append(spec.Data, []interface{}{
			r.RunID, res.Algorithm, res.Case, res.Input, res.Expected, res.Got, res.Passed,
		})
	}
	return spec
}

func (r *Report) WriteCSV(w io.Writer) error {
	return csv.Write(w, r.csvSpec())
}

// SaveCSV writes the report to the named file.
func (r *Report) SaveCSV(fileName string) error {
	spec := r.csvSpec()
	spec.FileName = fileName
	return csv.Create(spec)
}
