package harness

import (
	"github.com/prometheus/client_golang/prometheus"
	uuid "github.com/satori/go.uuid"

	"removedups/linkedlist"
	"removedups/log"
)

type Runner struct {
	algorithms []Algorithm
	logger     log.Logger
	metrics    *Metrics
}

// NewRunner validates cfg and registers the runner metrics on reg. A nil reg
// keeps the metrics unregistered.
func NewRunner(cfg *Config, logger log.Logger, reg prometheus.Registerer) (*Runner, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	metrics, err := NewMetrics(reg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New()
	}
	logger.SetLevel(cfg.LogLevel)
	return &Runner{
		algorithms: cfg.Selected(),
		logger:     logger,
		metrics:    metrics,
	}, nil
}

// Run applies every selected algorithm to a freshly built list for each case.
func (r *Runner) Run(cases []Case) *Report {
	report := &Report{RunID: uuid.NewV4().String()}
	logger := r.logger.WithFields(log.Fields{"run_id": report.RunID})
	logger.Info("running %d cases against %d algorithms", len(cases), len(r.algorithms))

	for _, a := range r.algorithms {
		for _, c := range cases {
			res := r.runCase(a, c)
			report.Results = append(report.Results, res)

			entry := logger.WithFields(log.Fields{"algorithm": a.Name, "case": c.Name})
			if res.Passed {
				entry.Debug("input %v, got %v", c.Input, res.Got)
			} else {
				entry.Error("input %v, got %v, expected %v", c.Input, res.Got, c.Expected)
			}
		}
	}
	logger.Info("run finished, passed: %d, failed: %d", report.Passed(), report.Failed())
	return report
}

func (r *Runner) runCase(a Algorithm, c Case) Result {
	got := a.Fn(linkedlist.Build(c.Input))
	passed := got.Equals(linkedlist.Build(c.Expected))
	values := got.Values()
	r.metrics.observe(a.Name, passed, len(c.Input)-len(values))
	return Result{
		Algorithm: a.Name,
		Case:      c.Name,
		Input:     c.Input,
		Expected:  c.Expected,
		Got:       values,
		Passed:    passed,
	}
}

// Dedup runs the named algorithm over values and returns the resulting list.
func (r *Runner) Dedup(name string, values []int) (*linkedlist.LinkedList, error) {
	a, err := LookupAlgorithm(name)
	if err != nil {
		return nil, err
	}
	out := a.Fn(linkedlist.Build(values))
	r.logger.WithFields(log.Fields{"algorithm": name}).Debug("input %v, got %s", values, out)
	return out, nil
}

// Algorithms lists the names this runner was configured with.
func (r *Runner) Algorithms() []string {
	names := make([]string, 0, len(r.algorithms))
	for _, a := range r.algorithms {
		names = append(names, a.Name)
	}
	return names
}
