package metrics

import "net/http"
import "github.com/prometheus/client_golang/prometheus"
import "github.com/prometheus/client_golang/prometheus/promauto"
import "github.com/prometheus/client_golang/prometheus/promhttp"

var (
	attendanceEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gymadmin_attendance_events_total",
		Help: "Attendance events processed, labelled by outcome reason.",
	}, []string{"reason"})

	duplicateScans = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gymadmin_duplicate_scans_total",
		Help: "Scan events dropped as already seen.",
	})

	mirrorFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gymadmin_datastore_mirror_failures_total",
		Help: "Attendance records that could not be pushed to the remote datastore.",
	})
)

// ObserveEvent counts one processed attendance event.
func ObserveEvent(reason string) {
	attendanceEvents.WithLabelValues(reason).Inc()
}

// ObserveDuplicate counts one dropped duplicate scan.
func ObserveDuplicate() {
	duplicateScans.Inc()
}

// ObserveMirrorFailure counts one failed upstream push.
func ObserveMirrorFailure() {
	mirrorFailures.Inc()
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
