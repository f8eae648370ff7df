package domain

import "time"

// Review records a directional rating one user left for another after a
// completed swap. Reviews are immutable once created.
type Review struct {
	ID        string    `json:"id"`
	SwapID    string    `json:"swap_id"`
	FromUser  string    `json:"from_user"`
	ToUser    string    `json:"to_user"`
	Rating    int       `json:"rating"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}
