package domain

import "time"

// SwapStatus is the closed set of states a swap request moves through.
type SwapStatus string

const (
	StatusPending   SwapStatus = "pending"
	StatusAccepted  SwapStatus = "accepted"
	StatusRejected  SwapStatus = "rejected"
	StatusCompleted SwapStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s SwapStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible from s.
func (s SwapStatus) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// CanTransitionTo reports whether the transition s -> next is allowed.
// pending may become accepted or rejected; accepted may become completed.
// Nothing ever re-enters pending.
func (s SwapStatus) CanTransitionTo(next SwapStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusAccepted || next == StatusRejected
	case StatusAccepted:
		return next == StatusCompleted
	}
	return false
}

// SwapRequest represents a proposed exchange of one skill for another.
type SwapRequest struct {
	ID             string     `json:"id"`
	FromUser       string     `json:"from_user"`
	ToUser         string     `json:"to_user"`
	OfferedSkill   string     `json:"offered_skill"`
	RequestedSkill string     `json:"requested_skill"`
	Message        string     `json:"message,omitempty"`
	Status         SwapStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// Participant reports whether userID is one of the two parties.
func (r *SwapRequest) Participant(userID string) bool {
	return r != nil && (r.FromUser == userID || r.ToUser == userID)
}

// Counterpart returns the other party of the swap relative to userID.
func (r *SwapRequest) Counterpart(userID string) (string, bool) {
	if r == nil {
		return "", false
	}
	switch userID {
	case r.FromUser:
		return r.ToUser, true
	case r.ToUser:
		return r.FromUser, true
	}
	return "", false
}
