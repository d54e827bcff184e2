package models

import "time"

// ActivityEvent is the payload pushed to the clinician activity queue when a
// patient does something worth surfacing (check-in, evaluation submission).
type ActivityEvent struct {
	EventType  string    `json:"event_type"`
	PatientID  string    `json:"patient_id"`
	Reference  string    `json:"reference,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
