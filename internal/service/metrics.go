package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	pointsCredited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "points_credited_total",
			Help: "Total points credited to the ledger",
		},
	)
	rewardedCompletions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rewarded_completions_total",
			Help: "Total rewarded-ad completions recorded",
		},
	)
	feedViews = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_views_total",
			Help: "Total feed ad views recorded",
		},
	)
)

func init() {
	prometheus.MustRegister(pointsCredited)
	prometheus.MustRegister(rewardedCompletions)
	prometheus.MustRegister(feedViews)
}
