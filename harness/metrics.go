package harness

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultPass = "pass"
	resultFail = "fail"
)

type Metrics struct {
	cases   *prometheus.CounterVec
	removed *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		cases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "removedups_cases_total",
				Help: "validation cases run, by algorithm and result",
			},
			[]string{"algorithm", "result"},
		),
		removed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "removedups_values_removed_total",
				Help: "duplicate values dropped, by algorithm",
			},
			[]string{"algorithm"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.cases, m.removed} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(algorithm string, passed bool, removed int) {
	result := resultFail
	if passed {
		result = resultPass
	}
	m.cases.WithLabelValues(algorithm, result).Inc()
	if removed > 0 {
		m.removed.WithLabelValues(algorithm).Add(float64(removed))
	}
}
