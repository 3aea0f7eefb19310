package models

import "time"

// RateLimit is the outcome of counting one request against a client's
// fixed-window budget.
type RateLimit struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetIn   time.Duration
}
