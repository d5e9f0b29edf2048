package workout

const (
	runningCaloriesMultiplier = 18
	runningCaloriesShift      = 20
)

// Running is a run measured in steps
type Running struct {
	Session
}

// Name returns "Running"
func (r Running) Name() string {
	return "Running"
}

// Distance returns the distance in km
func (r Running) Distance() float64 {
	return r.distance(stepLength)
}

// MeanSpeed returns the average speed in km/h
func (r Running) MeanSpeed() float64 {
	return r.Distance() / r.Duration
}

// Calories returns the spent kcal
func (r Running) Calories() float64 {
	return (runningCaloriesMultiplier*r.MeanSpeed() - runningCaloriesShift) *
		r.Weight / metersInKm * r.Duration * minutesInHour
}

// Summarize returns the summary of the run
func (r Running) Summarize() Summary {
	return summarize(r, r.Duration)
}
