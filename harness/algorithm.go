package harness

import (
	"fmt"

	"removedups/dedup"
	"removedups/linkedlist"
)

const (
	WithBuffer = "with_buffer"
	NoBuffer   = "no_buffer"
)

// Algorithm is a named deduplication function.
type Algorithm struct {
	Name string
	Fn   func(l *linkedlist.LinkedList) *linkedlist.LinkedList
}

func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: WithBuffer, Fn: dedup.RemoveDupsWithBuffer},
		{Name: NoBuffer, Fn: dedup.RemoveDupsNoBuffer},
	}
}

func AlgorithmNames() []string {
	algorithms := Algorithms()
	names := make([]string, 0, len(algorithms))
	for _, a := range algorithms {
		names = append(names, a.Name)
	}
	return names
}

func LookupAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if a.Name == name {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
