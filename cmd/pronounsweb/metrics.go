package main

import (
	"log"
	"net/http"
	"strconv"

	"github.com/frizinak/gotls/simplehttp"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	reg      *prom.Registry
	requests *prom.CounterVec
	sets     prom.Gauge
	adhoc    prom.Counter
}

func newMetrics(sets int) *metrics {
	m := &metrics{
		reg: prom.NewRegistry(),
		requests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "pronouns",
			Name:      "requests_total",
			Help:      "Requests by route and status code",
		}, []string{"route", "code"}),
		sets: prom.NewGauge(prom.GaugeOpts{
			Namespace: "pronouns",
			Name:      "sets",
			Help:      "Pronoun sets in the database",
		}),
		adhoc: prom.NewCounter(prom.CounterOpts{
			Namespace: "pronouns",
			Name:      "adhoc_sets_total",
			Help:      "Pages rendered for sets that are not in the database",
		}),
	}

	m.sets.Set(float64(sets))
	m.reg.MustRegister(
		m.requests,
		m.sets,
		m.adhoc,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (s *statusWriter) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

// count wraps h so every request is recorded under route.
func (m *metrics) count(route string, h simplehttp.HandleFunc) simplehttp.HandleFunc {
	return func(w http.ResponseWriter, r *http.Request, l *log.Logger) (int, error) {
		sw := &statusWriter{ResponseWriter: w}
		code, err := h(sw, r, l)

		status := code
		switch {
		case err != nil:
			status = http.StatusInternalServerError
		case status == 0 && sw.status != 0:
			status = sw.status
		case status == 0:
			status = http.StatusOK
		}
		m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()

		return code, err
	}
}
