package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeStored   = "stored"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var (
	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_submissions_total",
			Help: "Internship applications received, by outcome",
		},
		[]string{"outcome"},
	)

	SubmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "intake_submission_duration_seconds",
			Help:    "Time spent validating, storing the resume and inserting the application",
			Buckets: prometheus.DefBuckets,
		},
	)

	ResumeBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "intake_resume_bytes",
			Help:    "Size of stored resume files",
			Buckets: prometheus.ExponentialBuckets(16<<10, 4, 6),
		},
	)
)
