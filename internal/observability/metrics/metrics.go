package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success Outcome = "success"
	Error   Outcome = "error"
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                         sync.Once
	metricsRouter                *chi.Mux
	httpRequestDurationHistogram *prometheus.HistogramVec
	ledgerOperationsTotal        *prometheus.CounterVec
	queuePublishFailuresTotal    *prometheus.CounterVec
	custodyReconciliationsTotal  prometheus.Counter
	rewardReconciliationsTotal   prometheus.Counter
	assetsByStageGauge           *prometheus.GaugeVec
	totalStakersGauge            prometheus.Gauge
	rewardsPaidGauge             prometheus.Gauge
	currentTickGauge             prometheus.Gauge
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	go func() {
		metricsAddr := fmt.Sprintf(":%d", metricsPort)
		err := http.ListenAndServe(metricsAddr, metricsRouter)
		if err != nil {
			log.Fatal().Err(err).Msgf("error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"endpoint", "status"},
	)

	ledgerOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "Total number of ledger operations by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	queuePublishFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_publish_failures_total",
			Help: "Total number of event publishes that exhausted their retries.",
		},
		[]string{"queue_name"},
	)

	custodyReconciliationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "custody_reconciliations_total",
			Help: "Custody transfers that could not be reversed after an aborted operation and need operator reconciliation.",
		},
	)

	rewardReconciliationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reward_reconciliations_total",
			Help: "Reward disbursements whose settlement failed to commit and need operator reconciliation.",
		},
	)

	assetsByStageGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ledger_assets_by_stage",
			Help: "Number of assets per custody stage.",
		},
		[]string{"stage"},
	)

	totalStakersGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_stakers_total",
			Help: "Number of distinct stakers seen by the ledger.",
		},
	)

	rewardsPaidGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_rewards_paid_total",
			Help: "Cumulative reward amount disbursed by the ledger.",
		},
	)

	currentTickGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_current_tick",
			Help: "Current tick derived from genesis time and tick interval.",
		},
	)

	prometheus.MustRegister(
		httpRequestDurationHistogram,
		ledgerOperationsTotal,
		queuePublishFailuresTotal,
		custodyReconciliationsTotal,
		rewardReconciliationsTotal,
		assetsByStageGauge,
		totalStakersGauge,
		rewardsPaidGauge,
		currentTickGauge,
	)

}

// StartHttpRequestDurationTimer starts a timer to measure http request handling duration.
func StartHttpRequestDurationTimer(endpoint string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		httpRequestDurationHistogram.WithLabelValues(endpoint, fmt.Sprintf("%d", statusCode)).Observe(duration)
	}
}

func RecordLedgerOperation(operation string, outcome Outcome) {
	if ledgerOperationsTotal == nil {
		return
	}
	ledgerOperationsTotal.WithLabelValues(operation, outcome.String()).Inc()
}

func RecordQueuePublishFailure(queueName string) {
	if queuePublishFailuresTotal == nil {
		return
	}
	queuePublishFailuresTotal.WithLabelValues(queueName).Inc()
}

// RecordCustodyReconciliationRequired counts a custody transfer left dangling
// after the surrounding operation aborted. Each increment is an asset an
// operator has to move back by hand.
func RecordCustodyReconciliationRequired() {
	if custodyReconciliationsTotal == nil {
		return
	}
	custodyReconciliationsTotal.Inc()
}

func RecordRewardReconciliationRequired() {
	if rewardReconciliationsTotal == nil {
		return
	}
	rewardReconciliationsTotal.Inc()
}

func RecordAssetStageCount(stage string, count int64) {
	if assetsByStageGauge == nil {
		return
	}
	assetsByStageGauge.WithLabelValues(stage).Set(float64(count))
}

func RecordTotalStakers(count uint64) {
	if totalStakersGauge == nil {
		return
	}
	totalStakersGauge.Set(float64(count))
}

func RecordRewardsPaid(amount int64) {
	if rewardsPaidGauge == nil {
		return
	}
	rewardsPaidGauge.Set(float64(amount))
}

func RecordCurrentTick(tick uint64) {
	if currentTickGauge == nil {
		return
	}
	currentTickGauge.Set(float64(tick))
}
