package proj

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts transform activity for a process. Register one with your
// prometheus.Registerer and attach it to transformations with Instrument;
// exposure (HTTP handler, push, ...) belongs to the caller.
type Metrics struct {
	calls  *prometheus.CounterVec
	errors *prometheus.CounterVec
	points prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		calls: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "proj",
			Name:      "transform_calls_total",
			Help:      "Transform calls, by operation.",
		}, []string{"op"}),
		errors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "proj",
			Name:      "transform_errors_total",
			Help:      "Failed transform calls, by operation.",
		}, []string{"op"}),
		points: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "proj",
			Name:      "transformed_points_total",
			Help:      "Coordinates pushed through bulk and single transforms.",
		}),
	}
}

// Instrument wraps a transformation so every call is counted.
func (m *Metrics) Instrument(p *Proj) *InstrumentedProj {
	return &InstrumentedProj{p: p, m: m}
}

// An InstrumentedProj forwards to the underlying Proj and records call,
// error, and point counts. It adds no synchronization; the single-owner
// contract of the wrapped Proj still applies.
type InstrumentedProj struct {
	p *Proj
	m *Metrics
}

func (ip *InstrumentedProj) Convert(coord Coord) (Coord, error) {
	out, err := ip.p.Convert(coord)
	ip.count("convert", 1, err)
	return out, err
}

func (ip *InstrumentedProj) Project(coord Coord, inverse bool) (Coord, error) {
	out, err := ip.p.Project(coord, inverse)
	ip.count("project", 1, err)
	return out, err
}

func (ip *InstrumentedProj) ConvertSlice(coords []Coord) ([]Coord, error) {
	out, err := ip.p.ConvertSlice(coords)
	ip.count("convert_slice", len(coords), err)
	return out, err
}

func (ip *InstrumentedProj) ProjectSlice(coords []Coord, inverse bool) ([]Coord, error) {
	out, err := ip.p.ProjectSlice(coords, inverse)
	ip.count("project_slice", len(coords), err)
	return out, err
}

func (ip *InstrumentedProj) Close() {
	ip.p.Close()
}

func (ip *InstrumentedProj) count(op string, points int, err error) {
	ip.m.calls.WithLabelValues(op).Inc()
	if err != nil {
		ip.m.errors.WithLabelValues(op).Inc()
		return
	}
	ip.m.points.Add(float64(points))
}
