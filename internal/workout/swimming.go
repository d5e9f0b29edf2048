package workout

const (
	swimmingStrokeLength       = 1.38
	swimmingSpeedShift         = 1.1
	swimmingCaloriesMultiplier = 2
)

// Swimming is a pool swim measured in strokes and laps
type Swimming struct {
	Session
	PoolLength float64 // meters
	PoolCount  float64 // laps
}

// Name returns "Swimming"
func (s Swimming) Name() string {
	return "Swimming"
}

// Distance returns the stroke distance in km
func (s Swimming) Distance() float64 {
	return s.distance(swimmingStrokeLength)
}

// MeanSpeed is derived from the pool laps, not the stroke count
func (s Swimming) MeanSpeed() float64 {
	return s.PoolLength * s.PoolCount / metersInKm / s.Duration
}

// Calories returns the spent kcal
func (s Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimmingSpeedShift) * swimmingCaloriesMultiplier * s.Weight
}

// Summarize returns the summary of the swim
func (s Swimming) Summarize() Summary {
	return summarize(s, s.Duration)
}
