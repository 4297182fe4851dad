package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScrapesTotal counts product page scrapes by platform and outcome (ok, degraded)
	ScrapesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialboost_scrapes_total",
		Help: "Total product page scrapes",
	}, []string{"platform", "outcome"})

	// AnalysesTotal counts pipeline runs by path and outcome
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialboost_analyses_total",
		Help: "Total content analyses",
	}, []string{"path", "outcome"})

	// AIRequestsTotal counts remote model calls by provider and result kind
	AIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialboost_ai_requests_total",
		Help: "Total AI provider requests",
	}, []string{"provider", "result"})

	// ProviderSwitchesTotal counts primary to secondary provider switches during URL import
	ProviderSwitchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "socialboost_ai_provider_switches_total",
		Help: "Total switches from the primary to the secondary AI provider",
	})
)
