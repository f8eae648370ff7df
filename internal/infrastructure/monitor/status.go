package monitor

import (
	"time"

	"github.com/skillswap/backend/internal/infrastructure/snapshot"
)

type Status struct {
	Store     bool            `json:"store"`
	Counts    snapshot.Counts `json:"counts"`
	LastCheck time.Time       `json:"last_check"`
}
