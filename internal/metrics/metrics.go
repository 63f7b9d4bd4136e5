// Package metrics exposes prometheus collectors for the HTTP surface and the
// contract import pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Namespace = "emlak"

// Outcome labels.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

type Metrics struct {
	registry *prometheus.Registry

	httpReqCnt *prometheus.CounterVec
	httpDur    *prometheus.HistogramVec
	httpInfl   *prometheus.GaugeVec

	importCnt    *prometheus.CounterVec
	fieldCount   prometheus.Histogram
	contractsCnt *prometheus.CounterVec
	entitiesCnt  *prometheus.CounterVec
	conflictCnt  *prometheus.CounterVec
	documentCnt  *prometheus.CounterVec
}

// New builds a registry with process and Go collectors plus the application
// collectors. Every call returns an independent registry.
func New() *Metrics {
	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry: r,

		httpReqCnt: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: Namespace, Name: "http_requests_total"}, []string{"method", "route", "status"}),
		httpDur:    prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: Namespace, Name: "http_request_duration_seconds", Buckets: prometheus.DefBuckets}, []string{"method", "route", "status"}),
		httpInfl:   prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: Namespace, Name: "http_requests_inflight"}, []string{"method"}),

		importCnt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace, Name: "imports_total",
			Help: "Contract imports by extraction method and outcome.",
		}, []string{"method", "outcome", "low_confidence"}),
		fieldCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace, Name: "import_recognized_fields",
			Buckets: prometheus.LinearBuckets(0, 2, 12),
		}),
		contractsCnt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace, Name: "contracts_created_total",
		}, []string{"outcome"}),
		entitiesCnt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace, Name: "entities_resolved_total",
			Help: "Owners, tenants and properties resolved during creation, created or reused.",
		}, []string{"entity", "action"}),
		conflictCnt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace, Name: "address_checks_total",
		}, []string{"result"}),
		documentCnt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace, Name: "documents_attached_total",
		}, []string{"outcome"}),
	}

	r.MustRegister(m.httpReqCnt, m.httpDur, m.httpInfl)
	r.MustRegister(m.importCnt, m.fieldCount, m.contractsCnt, m.entitiesCnt, m.conflictCnt, m.documentCnt)

	return m
}

// Middleware records request count, duration and in-flight gauges. The route
// label is the chi pattern, so path parameters do not explode cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.httpInfl.WithLabelValues(r.Method).Inc()
		defer m.httpInfl.WithLabelValues(r.Method).Dec()

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := strconv.Itoa(sw.status)
		m.httpReqCnt.WithLabelValues(r.Method, route, status).Inc()
		m.httpDur.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
	})
}

// Handler exposes the instance registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ImportDone records a finished import with its extraction method and parse
// quality.
func (m *Metrics) ImportDone(method string, fields int, lowConfidence bool) {
	m.importCnt.WithLabelValues(method, OutcomeOK, strconv.FormatBool(lowConfidence)).Inc()
	m.fieldCount.Observe(float64(fields))
}

func (m *Metrics) ImportFailed() {
	m.importCnt.WithLabelValues("", OutcomeFailed, "false").Inc()
}

// ContractCreated counts one successful creation and what it reused.
func (m *Metrics) ContractCreated(createdOwner, createdTenant, createdProperty bool) {
	m.contractsCnt.WithLabelValues(OutcomeOK).Inc()
	m.entitiesCnt.WithLabelValues("owner", action(createdOwner)).Inc()
	m.entitiesCnt.WithLabelValues("tenant", action(createdTenant)).Inc()
	m.entitiesCnt.WithLabelValues("property", action(createdProperty)).Inc()
}

// ContractFailed counts server-side creation failures. Client rejections are
// not recorded.
func (m *Metrics) ContractFailed() {
	m.contractsCnt.WithLabelValues(OutcomeFailed).Inc()
}

// AddressChecked records a conflict check: incomplete, clear, or active.
func (m *Metrics) AddressChecked(result string) {
	m.conflictCnt.WithLabelValues(result).Inc()
}

func (m *Metrics) DocumentAttached(ok bool) {
	outcome := OutcomeOK
	if !ok {
		outcome = OutcomeFailed
	}
	m.documentCnt.WithLabelValues(outcome).Inc()
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func action(created bool) string {
	if created {
		return "created"
	}
	return "reused"
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
