// Package metrics defines Prometheus collectors for signal propagation and
// the timer loop. Collectors are not registered by default: call Register
// with the Registerer of your choice.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	WatchersRegisteredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sig_watchers_registered_total",
		Help: "Total number of watchers registered with a signal.",
	})
	WatchersCancelledTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sig_watchers_cancelled_total",
		Help: "Total number of watchers cancelled by releasing their guard.",
	})
	NotificationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sig_notifications_total",
		Help: "Total number of watcher callbacks invoked.",
	})
)

var (
	TimersScheduledTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sig_loop_timers_scheduled_total",
		Help: "Total number of timers scheduled on a loop.",
	})
	TimersFiredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sig_loop_timers_fired_total",
		Help: "Total number of timers which ran their callback.",
	})
	TimersStoppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sig_loop_timers_stopped_total",
		Help: "Total number of timers stopped before firing.",
	})
	LoopPanicsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sig_loop_panics_total",
		Help: "Total number of loop callbacks which panicked.",
	})
)

var (
	ThrottleDroppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sig_throttle_dropped_total",
		Help: "Total number of notifications dropped by a throttle while suppressed.",
	})
	DistinctSuppressedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sig_distinct_suppressed_total",
		Help: "Total number of notifications swallowed by a distinct filter.",
	})
	DebounceSupersededTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sig_debounce_superseded_total",
		Help: "Total number of pending debounce emissions replaced by a newer value.",
	})
)

// Collectors returns every collector of the package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		WatchersRegisteredTotal,
		WatchersCancelledTotal,
		NotificationsTotal,
		TimersScheduledTotal,
		TimersFiredTotal,
		TimersStoppedTotal,
		LoopPanicsTotal,
		ThrottleDroppedTotal,
		DistinctSuppressedTotal,
		DebounceSupersededTotal,
	}
}

// Register registers all Collectors with |reg|.
func Register(reg prometheus.Registerer) error {
	for _, c := range Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
