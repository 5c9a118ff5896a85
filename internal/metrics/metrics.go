package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecalculationsTotal counts period recomputes by outcome
	// (success, failed, no_consumption)
	RecalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agua",
		Name:      "recalculations_total",
		Help:      "Total number of period recalculations by outcome",
	}, []string{"outcome"})

	// ResidentsRecalculated counts individual resident charges written by
	// successful recomputes
	ResidentsRecalculated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "agua",
		Name:      "residents_recalculated_total",
		Help:      "Total number of resident charges written by recalculations",
	})

	// PaymentDecisionsTotal counts administrator payment reviews by resulting
	// status (aprovado, rejeitado)
	PaymentDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agua",
		Name:      "payment_decisions_total",
		Help:      "Total number of payment review decisions by status",
	}, []string{"status"})

	// PaymentClaimsTotal counts payment claims declared by residents
	PaymentClaimsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "agua",
		Name:      "payment_claims_total",
		Help:      "Total number of payment claims declared by residents",
	})

	// SchedulerRunsTotal counts period-opening scheduler runs by status
	// (success, failed, skipped)
	SchedulerRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agua",
		Name:      "scheduler_runs_total",
		Help:      "Total number of period-opening scheduler runs by status",
	}, []string{"status"})
)
