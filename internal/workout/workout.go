package workout

const (
	metersInKm    = 1000
	minutesInHour = 60

	// stepLength is the distance covered by one running or walking step, in meters
	stepLength = 0.65
)

// Workout is a single training session built from one sensor package.
// Every kind computes its own distance, speed and calories.
type Workout interface {
	// Name returns the kind name shown in summaries
	Name() string
	// Distance returns the covered distance in km
	Distance() float64
	// MeanSpeed returns the average speed in km/h
	MeanSpeed() float64
	// Calories returns the spent energy in kcal
	Calories() float64
	// Summarize snapshots the computed values into a Summary
	Summarize() Summary
}

// Session holds the readings shared by every workout kind
type Session struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
}

// distance converts the action count into kilometers for the given step length
func (s Session) distance(length float64) float64 {
	return float64(s.Action) * length / metersInKm
}

// summarize collects the derived values of w into a Summary
func summarize(w Workout, duration float64) Summary {
	return Summary{
		Kind:     w.Name(),
		Duration: duration,
		Distance: w.Distance(),
		Speed:    w.MeanSpeed(),
		Calories: w.Calories(),
	}
}
