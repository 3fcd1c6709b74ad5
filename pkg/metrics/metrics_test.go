package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given a private registry", t, func() {
		registry := prometheus.NewRegistry()

		Convey("When a manager is created with custom options", func() {
			m := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{1, 5, 10}),
				WithConstLabels(map[string]string{"revision": "r1"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then its collectors are registered and usable", func() {
				So(m, ShouldNotBeNil)
				m.scoresComputed.WithLabelValues("pft", "First").Inc()
				So(testutil.ToFloat64(m.scoresComputed.WithLabelValues("pft", "First")), ShouldEqual, 1)

				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "test_unit_scores_computed_total")
			})
		})

		Convey("When runtime collectors are requested", func() {
			So(func() {
				NewManager(WithPrometheusRegistry(registry), WithRuntimeCollectors(true))
			}, ShouldNotPanic)
		})

		Convey("When the same registry is reused for a second manager", func() {
			NewManager(WithPrometheusRegistry(registry))

			Convey("Then duplicate registration panics", func() {
				So(func() { NewManager(WithPrometheusRegistry(registry)) }, ShouldPanic)
			})
		})
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Given the package-level manager", t, func() {
		Convey("When scores are recorded", func() {
			before := testutil.ToFloat64(globalManager.scoresComputed.WithLabelValues("cft", "Fail"))
			RecordScore("cft", "Fail")

			Convey("Then the labelled counter moves", func() {
				after := testutil.ToFloat64(globalManager.scoresComputed.WithLabelValues("cft", "Fail"))
				So(after-before, ShouldEqual, 1)
			})
		})

		Convey("When the queue size is updated", func() {
			UpdateQueueSize(25, 100)

			Convey("Then utilization is derived", func() {
				So(testutil.ToFloat64(globalManager.queueSize), ShouldEqual, 25)
				So(testutil.ToFloat64(globalManager.queueUtilization), ShouldEqual, 0.25)
			})
		})

		Convey("Then every recorder is safe to call", func() {
			So(func() {
				RecordScoringError("pft", "missing_table_entry")
				RecordScoringLatency(1.5)
				RecordSubmissionProcessed()
				RecordSubmissionDuplicate()
				UpdateRosterSize(3)
				UpdateQueueCapacity(100)
				RecordQueueEnqueue()
				RecordQueueDequeue()
				RecordQueueRejected("full")
				RecordQueueLatency(0.1)
				UpdateWorkerCount(4)
				UpdateWorkerActive(1)
				RecordWorkerLatency(2)
				RecordWorkerError()
				RecordRepositoryUpdateLatency(0.2)
				RecordRepositoryQueryLatency(0.2)
				RecordSnapshot(3, 1700000000)
				RecordHTTPRequest("/pft", "POST", "200", 4)
				RecordErrorByComponent("api", "bad_request")
			}, ShouldNotPanic)
		})

		Convey("Then the registry gathers without error", func() {
			_, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
		})
	})
}
