package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "simon"

var (
	GamesStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Total games started, by difficulty",
		},
		[]string{"difficulty"},
	)
	Guesses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guesses_total",
			Help:      "Total guesses evaluated, by result",
		},
		[]string{"result"},
	)
	LevelsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "levels_completed_total",
			Help:      "Total levels fully repeated by the player",
		},
	)
	HighScore = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "high_score",
			Help:      "Best score known to the running process",
		},
	)
	PersistenceFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_failures_total",
			Help:      "Total high score reads and writes that failed",
		},
	)
	APIRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total status API requests, by route and status code",
		},
		[]string{"route", "code"},
	)
	StaleEventsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_events_dropped_total",
			Help:      "Total playback events dropped because their generation was replaced",
		},
	)
)

func init() {
	prometheus.MustRegister(GamesStarted)
	prometheus.MustRegister(Guesses)
	prometheus.MustRegister(LevelsCompleted)
	prometheus.MustRegister(HighScore)
	prometheus.MustRegister(PersistenceFailures)
	prometheus.MustRegister(StaleEventsDropped)
	prometheus.MustRegister(APIRequests)
}
