package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eliksir/quote-service/internal/domain/models"
)

// Registry holds the service metrics and implements the recorder interfaces of
// the policy, quote and inquiry services.
type Registry struct {
	reg            *prometheus.Registry
	PolicyLoads    *prometheus.CounterVec
	QuotesComputed *prometheus.CounterVec
	QuotesRejected *prometheus.CounterVec
	Inquiries      *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	policyLoads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "eliksir_policy_loads_total",
		Help: "Pricing policy loads by origin (remote or default).",
	}, []string{"origin"})
	computed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "eliksir_quotes_computed_total",
		Help: "Quotes computed by offer.",
	}, []string{"offer"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "eliksir_quotes_rejected_total",
		Help: "Quote requests rejected by reason.",
	}, []string{"reason"})
	inquiries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "eliksir_inquiries_total",
		Help: "Contact inquiries by outcome.",
	}, []string{"outcome"})

	r.MustRegister(policyLoads, computed, rejected, inquiries)
	return &Registry{
		reg:            r,
		PolicyLoads:    policyLoads,
		QuotesComputed: computed,
		QuotesRejected: rejected,
		Inquiries:      inquiries,
	}
}

func (r *Registry) PolicyLoaded(origin string) { r.PolicyLoads.WithLabelValues(origin).Inc() }

func (r *Registry) QuoteComputed(offer models.OfferID) {
	r.QuotesComputed.WithLabelValues(string(offer)).Inc()
}

func (r *Registry) QuoteRejected(reason string) { r.QuotesRejected.WithLabelValues(reason).Inc() }

func (r *Registry) InquiryHandled(outcome string) { r.Inquiries.WithLabelValues(outcome).Inc() }

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
