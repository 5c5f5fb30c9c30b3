package controller

import "github.com/prometheus/client_golang/prometheus"

var (
	ticks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "ticks_total",
			Help:      "Ticks processed across all games.",
		},
	)
	foodEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "food_eaten_total",
			Help:      "Food cells eaten.",
		},
	)
	gamesOver = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "over_total",
			Help:      "Games ended, by cause of death.",
		},
		[]string{"cause"},
	)
	tickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "game",
			Name:      "tick_seconds",
			Help:      "Time spent running a tick.",
		},
	)
)

func instrument() func() {
	t := prometheus.NewTimer(tickDuration)
	return func() { t.ObserveDuration() }
}

func init() {
	prometheus.MustRegister(ticks, foodEaten, gamesOver, tickDuration)
}
