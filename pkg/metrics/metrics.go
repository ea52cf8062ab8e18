package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Replayer metrics
	SlotsReplayedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sedimentology_slots_replayed_total",
			Help: "Total number of slots replayed",
		},
	)

	InstructionsReplayedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sedimentology_instructions_replayed_total",
			Help: "Total number of instructions replayed by name",
		},
		[]string{"name"},
	)

	CheckpointsSavedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sedimentology_checkpoints_saved_total",
			Help: "Total number of daily checkpoints persisted",
		},
	)

	LatestReplayedSlot = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sedimentology_latest_replayed_slot",
			Help: "Slot cursor of the replay engine",
		},
	)

	// Archiver metrics
	DaysArchivedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sedimentology_days_archived_total",
			Help: "Total number of days archived by profile",
		},
		[]string{"profile"},
	)

	ArchiveDayDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sedimentology_archive_day_duration_seconds",
			Help:    "Wall time spent archiving one day",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10),
		},
	)

	// Distributor metrics
	SlotsDistributedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sedimentology_slots_distributed_total",
			Help: "Total number of slots mirrored to the destination",
		},
	)

	DistributedBytesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sedimentology_distributed_bytes_total",
			Help: "Bytes shipped to the destination, raw vs compressed",
		},
		[]string{"kind"},
	)

	// Stream server metrics
	StreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sedimentology_stream_requests_total",
			Help: "Total number of requests by endpoint",
		},
		[]string{"endpoint"},
	)

	StreamEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sedimentology_stream_events_total",
			Help: "Total number of SSE events sent, data vs empty",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(
		SlotsReplayedTotal,
		InstructionsReplayedTotal,
		CheckpointsSavedTotal,
		LatestReplayedSlot,
		DaysArchivedTotal,
		ArchiveDayDuration,
		SlotsDistributedTotal,
		DistributedBytesTotal,
		StreamRequestsTotal,
		StreamEventsTotal,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// StartMetricsServer starts the metrics endpoint on addr (e.g. ":9090").
func StartMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		_ = server.ListenAndServe()
	}()

	return server
}
