package exercises

import "time"

// Exercise is a catalog entry the recommender can route users to.
type Exercise struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Muscle      string    `json:"muscle"`
	Difficulty  string    `json:"difficulty"`
	MediaKey    string    `json:"-"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}
