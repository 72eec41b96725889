package metrics

import (
	"sync"
	"time"
	
	"github.com/prometheus/client_golang/prometheus"
)

const (
	PaymentStatusRejected  = "rejected"
	PaymentStatusInitiated = "initiated"
	PaymentStatusCreated   = "created"
	PaymentStatusFailed    = "failed"
)

const (
	GatewayOutcomeOK             = "ok"
	GatewayOutcomeHTTPError      = "http_error"
	GatewayOutcomeTransportError = "transport_error"
)

const (
	CallbackResultOK               = "ok"
	CallbackResultMissingSignature = "missing_signature"
	CallbackResultInvalidSignature = "invalid_signature"
)

var (
	registerOnce sync.Once
	
	// status: rejected|initiated|created|failed
	paymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "momo_payments_total",
			Help: "MoMo create-payment attempts by status.",
		},
		[]string{"status"},
	)
	
	callbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "momo_callbacks_total",
			Help: "MoMo callbacks by signature verification result.",
		},
		[]string{"result"},
	)
	
	gatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "momo_gateway_request_duration_seconds",
			Help:    "Duration of outbound create-payment calls in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"outcome"},
	)
)

// MustRegister exposes the MoMo collectors on the default Prometheus registry.
// Calling it more than once is a no-op.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(paymentsTotal, callbacksTotal, gatewayRequestDuration)
	})
}

func IncPayment(status string) {
	paymentsTotal.WithLabelValues(status).Inc()
}

func IncCallback(result string) {
	callbacksTotal.WithLabelValues(result).Inc()
}

func ObserveGatewayRequest(outcome string, elapsed time.Duration) {
	gatewayRequestDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
