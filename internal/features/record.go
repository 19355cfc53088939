// Package features holds the model input record shared by the
// recommendation engine and the classifier clients.
package features

// Record is the fixed-shape input the classifier sees. It is built once per
// request, immutable after the safety clamp, and logged verbatim on the
// audit row.
type Record struct {
	Age                   float64 `json:"age"`
	BMI                   float64 `json:"bmi"`
	RestingHeartRate      float64 `json:"restingHeartRate"`
	DurationMin           float64 `json:"durationMin"`
	CaloriesBurned        float64 `json:"caloriesBurned"`
	HeightCm              float64 `json:"heightCm"`
	WeightKg              float64 `json:"weightKg"`
	BodyFatPct            float64 `json:"bodyFatPct"`
	MuscleMassPct         float64 `json:"muscleMassPct"`
	WaistCm               float64 `json:"waistCm"`
	HipCm                 float64 `json:"hipCm"`
	Smokes                string  `json:"smokes"`
	Drinks                string  `json:"drinks"`
	CurrentInjuries       string  `json:"currentInjuries"`
	PreexistingConditions string  `json:"preexistingConditions"`
	SleepHours            string  `json:"sleepHours"`
	SleepQuality          string  `json:"sleepQuality"`
	NightWakeups          string  `json:"nightWakeups"`
	MainMealType          string  `json:"mainMealType"`
	DailyCalories         string  `json:"dailyCalories"`
	ProteinIntake         string  `json:"proteinIntake"`
	TargetWeight          string  `json:"targetWeight"`
	TargetBodyFat         string  `json:"targetBodyFat"`
	Goal                  string  `json:"goal"`
	ExperienceLevel       string  `json:"experienceLevel"`
}
