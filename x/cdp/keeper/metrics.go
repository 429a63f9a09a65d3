package keeper

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects the counters and gauges the engine updates as positions
// are mutated and liquidated. Grounded on observability/metrics's Prometheus
// vector pattern; unlike that package's process-wide singleton, a Metrics
// instance here belongs to a single Keeper since a process may host more
// than one cdp Keeper in tests.
type Metrics struct {
	positionsOpened     prometheus.Counter
	positionsClosed     prometheus.Counter
	liquidationsStarted *prometheus.CounterVec
	liquidationsResolved *prometheus.CounterVec
	badDebtQueued       prometheus.Counter
	creditMinted        prometheus.Counter
	creditBurned        prometheus.Counter
	pendingRevenue      prometheus.Gauge
	creditPrice         prometheus.Gauge
	replyLatencySeconds *prometheus.HistogramVec
}

// NewMetrics builds an unregistered Metrics instance. Registration happens in
// module.go's RegisterInvariants-equivalent wiring step so tests that
// construct a bare Keeper do not collide on the default Prometheus registry.
func NewMetrics() *Metrics {
	return &Metrics{
		positionsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cdp_positions_opened_total",
			Help: "Count of positions created by first deposit.",
		}),
		positionsClosed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cdp_positions_closed_total",
			Help: "Count of positions that reached zero collateral and zero credit.",
		}),
		liquidationsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cdp_liquidations_started_total",
			Help: "Count of liquidation triggers by outcome (insolvent, solvent_abort).",
		}, []string{"outcome"}),
		liquidationsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cdp_liquidations_resolved_total",
			Help: "Count of liquidations resolved by terminal stage (terminal, bad_debt).",
		}, []string{"stage"}),
		badDebtQueued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cdp_bad_debt_queued_total",
			Help: "Count of positions that fell through to the bad-debt auction path.",
		}),
		creditMinted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cdp_credit_minted_total",
			Help: "Cumulative credit asset minted against new debt, in base units.",
		}),
		creditBurned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cdp_credit_burned_total",
			Help: "Cumulative credit asset burned on repay/liquidation, in base units.",
		}),
		pendingRevenue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cdp_pending_revenue",
			Help: "Current basket pending_revenue balance.",
		}),
		creditPrice: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cdp_credit_price",
			Help: "Current basket redemption price.",
		}),
		replyLatencySeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "cdp_reply_latency_seconds",
			Help: "Time between dispatching a waterfall leg and its reply being processed, by leg.",
		}, []string{"leg"}),
	}
}

// Collectors returns every metric for bulk registration.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.positionsOpened,
		m.positionsClosed,
		m.liquidationsStarted,
		m.liquidationsResolved,
		m.badDebtQueued,
		m.creditMinted,
		m.creditBurned,
		m.pendingRevenue,
		m.creditPrice,
		m.replyLatencySeconds,
	}
}
