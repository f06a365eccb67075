// Package metrics provides Prometheus metrics for match scoring runs.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the metrics of one scoring process.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      prometheus.Labels
	registry         *prometheus.Registry

	// Input
	rostersLoaded     prometheus.Counter
	playersRegistered prometheus.Counter

	// Replay
	hitsReplayed    prometheus.Counter
	pointsCredited  *prometheus.CounterVec
	replayErrors    *prometheus.CounterVec
	replayDuration  prometheus.Histogram
	ledgerLength    prometheus.Gauge
	teamTotalPoints *prometheus.GaugeVec

	// Output
	reportLines *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager = NewManager() //nolint:gochecknoglobals // process-wide default

// Default returns the process-wide manager.
func Default() *Manager { return globalManager }

// NewManager creates a metrics manager on its own registry, so default Go
// runtime collectors never leak into the dump.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "tagscore",
		subsystem:        "match",
		histogramBuckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		enabled:          true,
		constLabels:      prometheus.Labels{},
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rostersLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "rosters_loaded_total",
		Help:        "Total number of team rosters built",
		ConstLabels: m.constLabels,
	})

	m.playersRegistered = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "players_registered_total",
		Help:        "Total number of players registered in the directory",
		ConstLabels: m.constLabels,
	})

	m.hitsReplayed = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "hits_replayed_total",
		Help:        "Total number of hit events credited",
		ConstLabels: m.constLabels,
	})

	m.pointsCredited = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "points_credited_total",
		Help:        "Points credited, by hit location code",
		ConstLabels: m.constLabels,
	}, []string{"location"})

	m.replayErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "replay_errors_total",
		Help:        "Replay aborts, by error kind",
		ConstLabels: m.constLabels,
	}, []string{"kind"})

	m.replayDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "replay_duration_seconds",
		Help:        "Time spent replaying a match file",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.ledgerLength = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "ledger_shots",
		Help:        "Number of shots held in the hit ledger",
		ConstLabels: m.constLabels,
	})

	m.teamTotalPoints = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "team_total_points",
		Help:        "Final total score, by team number",
		ConstLabels: m.constLabels,
	}, []string{"team"})

	m.reportLines = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "report_lines_total",
		Help:        "Report lines assembled, by verbosity",
		ConstLabels: m.constLabels,
	}, []string{"verbosity"})
}

// RecordRosterLoaded counts a built team and its registered players.
func (m *Manager) RecordRosterLoaded(players int) {
	if !m.enabled {
		return
	}
	m.rostersLoaded.Inc()
	m.playersRegistered.Add(float64(players))
}

// RecordHit counts a credited hit and its points.
func (m *Manager) RecordHit(location, points int) {
	if !m.enabled {
		return
	}
	m.hitsReplayed.Inc()
	m.pointsCredited.WithLabelValues(strconv.Itoa(location)).Add(float64(points))
}

// ResetLedger zeroes the ledger gauge when a new ledger starts.
func (m *Manager) ResetLedger() {
	if !m.enabled {
		return
	}
	m.ledgerLength.Set(0)
}

// RecordShot counts one shot appended to the ledger.
func (m *Manager) RecordShot() {
	if !m.enabled {
		return
	}
	m.ledgerLength.Inc()
}

// RecordReplayError counts a replay abort of the given kind.
func (m *Manager) RecordReplayError(kind string) {
	if !m.enabled {
		return
	}
	m.replayErrors.WithLabelValues(kind).Inc()
}

// ObserveReplayDuration records how long a replay took, in seconds.
func (m *Manager) ObserveReplayDuration(seconds float64) {
	if !m.enabled {
		return
	}
	m.replayDuration.Observe(seconds)
}

// SetTeamTotal records a team's total score.
func (m *Manager) SetTeamTotal(teamNumber, points int) {
	if !m.enabled {
		return
	}
	m.teamTotalPoints.WithLabelValues(strconv.Itoa(teamNumber)).Set(float64(points))
}

// RecordReportLines counts assembled report lines.
func (m *Manager) RecordReportLines(verbosity string, n int) {
	if !m.enabled {
		return
	}
	m.reportLines.WithLabelValues(verbosity).Add(float64(n))
}

// Registry returns the registry the manager's metrics live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile dumps the registry to path in the text exposition format.
// The write is atomic, as expected by node_exporter's textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}
