package workout

import "math"

const (
	walkingWeightMultiplier = 0.035
	walkingSpeedMultiplier  = 0.029
)

// SportsWalking is a walk with poles measured in steps
type SportsWalking struct {
	Session
	Height float64 // cm
}

// Name returns "SportsWalking"
func (w SportsWalking) Name() string {
	return "SportsWalking"
}

// Distance returns the distance in km
func (w SportsWalking) Distance() float64 {
	return w.distance(stepLength)
}

// MeanSpeed returns the average speed in km/h
func (w SportsWalking) MeanSpeed() float64 {
	return w.Distance() / w.Duration
}

// Calories returns the spent kcal.
// The squared speed is floor-divided by height: while speed^2 stays
// below the height only the weight term counts.
func (w SportsWalking) Calories() float64 {
	speed := w.MeanSpeed()
	return (walkingWeightMultiplier*w.Weight +
		math.Floor(speed*speed/w.Height)*walkingSpeedMultiplier*w.Weight) *
		w.Duration * minutesInHour
}

// Summarize returns the summary of the walk
func (w SportsWalking) Summarize() Summary {
	return summarize(w, w.Duration)
}
