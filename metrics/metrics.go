package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AssignmentsCreatedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "khe_assignments_created_total",
	Help: "Number of judge assignments created, by mode",
}, []string{"mode"})

var NoProjectAvailableCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "khe_assignment_no_project_total",
	Help: "Number of next-project requests that found nothing to judge",
})

var ScoresSubmittedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "khe_scores_submitted_total",
	Help: "Number of rubric submissions stored",
})

var JudgementsCompletedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: "khe_judgements_completed_total",
	Help: "Number of judgements completed with a comment",
})

var FeedbackEmailCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "khe_feedback_emails_total",
	Help: "Feedback emails by outcome",
}, []string{"status"})

var EventsPublishedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "khe_judging_events_published_total",
	Help: "Judging events handed to the event stream, by outcome",
}, []string{"status"})

var LeaderboardSubscribersGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "khe_leaderboard_subscribers",
	Help: "Number of open leaderboard websocket connections",
})

var LeaderboardDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "khe_leaderboard_duration_s",
	Help: "Duration of leaderboard aggregation",
	Buckets: []float64{
		0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2, 5,
	},
})

var QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "sql_query_duration_seconds",
	Help: "Duration of sql queries in seconds",
}, []string{"query"})
