package recommend

import "time"

// Status is the lifecycle state of a recommendation audit row.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// ValidStatusTransition reports whether a stored recommendation may move to
// the requested status. Only pending rows can be accepted or rejected.
func ValidStatusTransition(from, to Status) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusAccepted || to == StatusRejected
}

// Recommendation is the immutable audit row persisted for every engine run,
// including overridden ones.
type Recommendation struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	RoutineID    string        `json:"routineId,omitempty"`
	PrimaryLabel string        `json:"primaryLabel"`
	Difficulty   string        `json:"difficulty"`
	Confidence   float64       `json:"confidence"`
	Top3         []LabelScore  `json:"top3"`
	Exercises    []ExerciseRef `json:"exercises"`
	Features     FeatureRecord `json:"features"`
	ModelVersion string        `json:"modelVersion,omitempty"`
	Status       Status        `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Result is what a successful engine run returns to the caller.
type Result struct {
	Recommendation Recommendation `json:"recommendation"`
	RoutineCreated bool           `json:"newRoutine"`
}
