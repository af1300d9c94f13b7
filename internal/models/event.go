package models

import "time"

// SubmissionEvent is announced after an application is stored.
type SubmissionEvent struct {
	ApplicationID string    `json:"id"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Resume        string    `json:"resume"`
	SubmittedAt   time.Time `json:"submittedAt"`
}
