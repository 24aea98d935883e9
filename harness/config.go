package harness

import (
	"errors"
	"fmt"

	"removedups/tools"
)

const defaultLogLevel = "info"

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

type Config struct {
	Algorithms []string // empty selects every algorithm
	LogLevel   string
}

func NewConfig() *Config {
	return &Config{LogLevel: defaultLogLevel}
}

func (c *Config) Validate() error {
	known := AlgorithmNames()
	for _, name := range c.Algorithms {
		if !tools.ContainsString(known, name) {
			return fmt.Errorf("config: %w: %q, expected one of %v", ErrUnknownAlgorithm, name, known)
		}
	}
	return nil
}

// Selected returns the configured algorithms in registry order.
func (c *Config) Selected() []Algorithm {
	if len(c.Algorithms) == 0 {
		return Algorithms()
	}
	var selected []Algorithm
	for _, a := range Algorithms() {
		if tools.ContainsString(c.Algorithms, a.Name) {
			selected = append(selected, a)
		}
	}
	return selected
}
