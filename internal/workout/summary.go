package workout

import "fmt"

// Summary is the reportable snapshot of a workout
type Summary struct {
	Kind     string
	Duration float64 // hours
	Distance float64 // km
	Speed    float64 // km/h
	Calories float64 // kcal
}

// Render formats the summary as a single report line
func (s Summary) Render() string {
	return fmt.Sprintf("Workout type: %s; Duration: %.3f h.; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f.",
		s.Kind, s.Duration, s.Distance, s.Speed, s.Calories)
}

func (s Summary) String() string {
	return s.Render()
}
