package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service holds the prometheus registry and the service-level collectors.
type Service struct {
	registry *prometheus.Registry

	DocumentsInspected prometheus.Counter
	InspectionFailures prometheus.Counter
	SignatureLinesSeen prometheus.Counter
}

// New creates the metrics service with all collectors registered.
func New() *Service {
	registry := prometheus.NewRegistry()

	s := &Service{
		registry: registry,
		DocumentsInspected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "docsig_documents_inspected_total",
			Help: "Number of documents successfully inspected.",
		}),
		InspectionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "docsig_inspection_failures_total",
			Help: "Number of document inspections that failed to parse.",
		}),
		SignatureLinesSeen: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "docsig_signature_lines_total",
			Help: "Number of signature lines extracted across all inspected documents.",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.DocumentsInspected,
		s.InspectionFailures,
		s.SignatureLinesSeen,
	)

	return s
}

// HTTPHandler exposes the registry for the management metrics endpoint.
func (s *Service) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
