package model

import (
	"time"
)

// PushStatus is the terminal record of the last dispatch attempt for a notice.
type PushStatus string

const (
	PushStatusUnset   PushStatus = "UNSET"
	PushStatusSuccess PushStatus = "SUCCESS"
	PushStatusFailed  PushStatus = "FAILED"
)

// Notice represents one announcement record in the notice store.
type Notice struct {
	ID              string     `json:"id"`                          // opaque identifier assigned by the store
	Title           string     `json:"title,omitempty"`             // optional, defaulted at composition time
	Category        string     `json:"category,omitempty"`          // optional, defaulted at composition time
	PushRequested   bool       `json:"push_requested"`              // rising edge of this flag triggers a broadcast
	PushRequestID   string     `json:"push_request_id,omitempty"`   // token minted for every new request
	PushRequestedAt *time.Time `json:"push_requested_at,omitempty"` // when the current request was raised
	PushStatus      PushStatus `json:"push_status,omitempty"`       // written only by the outcome recorder
	PushSentAt      *time.Time `json:"push_sent_at,omitempty"`      // set only on SUCCESS
	PushError       string     `json:"push_error,omitempty"`        // set only on FAILED
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NoticeRef identifies the document an outcome is written to, together with
// the request token observed when the rising edge was detected.
type NoticeRef struct {
	ID            string
	PushRequestID string
}

// Ref returns the reference used to record the outcome of the notice's current request.
func (n Notice) Ref() NoticeRef {
	return NoticeRef{ID: n.ID, PushRequestID: n.PushRequestID}
}

// NoticePatch holds the editable fields of a notice. Nil fields are left untouched.
type NoticePatch struct {
	Title    *string
	Category *string
}

// PushOutcome is the terminal status written back after a dispatch attempt.
// Error is empty unless Status is PushStatusFailed.
type PushOutcome struct {
	Status    PushStatus
	MessageID string
	Error     string
}
