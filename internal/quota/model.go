package quota

import "time"

// Quota represents a user's recommendation allowance for the current period.
type Quota struct {
	Plan     string    `json:"plan"`
	Limit    int       `json:"limit"`
	Used     int       `json:"used"`
	ResetsAt time.Time `json:"resetsAt"`
}
