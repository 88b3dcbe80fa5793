package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aitoolhub_registrations_total",
		Help: "Accounts created.",
	})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aitoolhub_logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"status"})

	AuthFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aitoolhub_auth_failures_total",
		Help: "Requests rejected by the auth gate, by reason.",
	}, []string{"reason"})

	ReviewsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aitoolhub_reviews_submitted_total",
		Help: "Reviews accepted and persisted.",
	})

	OrphanReviewsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aitoolhub_orphan_reviews_total",
		Help: "Reviews persisted for a tool id that no longer exists.",
	})

	NewsRefreshesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aitoolhub_news_refreshes_total",
		Help: "Completed news refresh runs.",
	})

	NewsRefreshErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aitoolhub_news_refresh_errors_total",
		Help: "Feed fetches that failed during a refresh run.",
	})
)
