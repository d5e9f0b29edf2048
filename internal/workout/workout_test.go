package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestRunning(t *testing.T) {
	r := Running{Session: Session{Action: 15000, Duration: 1, Weight: 75}}

	assert.Equal(t, "Running", r.Name())
	assert.InDelta(t, 9.75, r.Distance(), tolerance)
	assert.InDelta(t, 9.75, r.MeanSpeed(), tolerance)
	// (18*9.75 - 20) * 75 / 1000 * 1 * 60
	assert.InDelta(t, 699.75, r.Calories(), tolerance)
}

func TestRunningDistanceIsStepBased(t *testing.T) {
	tests := []struct {
		action   int
		duration float64
	}{
		{0, 1},
		{1, 0.5},
		{1000, 2},
		{12345, 1.25},
		{99999, 0.1},
	}

	for _, tt := range tests {
		r := Running{Session: Session{Action: tt.action, Duration: tt.duration, Weight: 80}}
		assert.InDelta(t, float64(tt.action)*0.00065, r.Distance(), tolerance, "action=%d", tt.action)
		assert.InDelta(t, r.Distance()/tt.duration, r.MeanSpeed(), tolerance, "action=%d", tt.action)
	}
}

func TestSportsWalking(t *testing.T) {
	tests := []struct {
		name         string
		walk         SportsWalking
		wantDistance float64
		wantCalories float64
	}{
		{
			name:         "speed squared below height",
			walk:         SportsWalking{Session: Session{Action: 9000, Duration: 1, Weight: 75}, Height: 180},
			wantDistance: 5.85,
			// 5.85^2 // 180 == 0, only the weight term remains
			wantCalories: 0.035 * 75 * 60,
		},
		{
			name:         "speed squared above height",
			walk:         SportsWalking{Session: Session{Action: 20000, Duration: 1, Weight: 70}, Height: 160},
			wantDistance: 13,
			// 13^2 // 160 == 1
			wantCalories: (0.035*70 + 0.029*70) * 60,
		},
		{
			name:         "half hour walk",
			walk:         SportsWalking{Session: Session{Action: 6000, Duration: 0.5, Weight: 90}, Height: 170},
			wantDistance: 3.9,
			// (3.9/0.5)^2 = 60.84 // 170 == 0
			wantCalories: 0.035 * 90 * 0.5 * 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "SportsWalking", tt.walk.Name())
			assert.InDelta(t, tt.wantDistance, tt.walk.Distance(), tolerance)
			assert.InDelta(t, tt.wantDistance/tt.walk.Duration, tt.walk.MeanSpeed(), tolerance)
			assert.InDelta(t, tt.wantCalories, tt.walk.Calories(), tolerance)
		})
	}
}

func TestSwimming(t *testing.T) {
	s := Swimming{Session: Session{Action: 720, Duration: 1, Weight: 80}, PoolLength: 25, PoolCount: 40}

	assert.Equal(t, "Swimming", s.Name())
	assert.InDelta(t, 720*1.38/1000, s.Distance(), tolerance)
	assert.InDelta(t, 1.0, s.MeanSpeed(), tolerance)
	assert.InDelta(t, 336.0, s.Calories(), tolerance)
}

func TestSwimmingSpeedIgnoresStrokes(t *testing.T) {
	for _, action := range []int{0, 1, 720, 5000} {
		s := Swimming{
			Session:    Session{Action: action, Duration: 2, Weight: 60},
			PoolLength: 50,
			PoolCount:  30,
		}
		assert.InDelta(t, 50.0*30/1000/2, s.MeanSpeed(), tolerance, "action=%d", action)
	}
}

func TestSummarize(t *testing.T) {
	w, err := Build(CodeRunning, []float64{15000, 1, 75})
	require.NoError(t, err)

	got := w.Summarize()
	assert.Equal(t, "Running", got.Kind)
	assert.InDelta(t, 1.0, got.Duration, tolerance)
	assert.InDelta(t, w.Distance(), got.Distance, tolerance)
	assert.InDelta(t, w.MeanSpeed(), got.Speed, tolerance)
	assert.InDelta(t, w.Calories(), got.Calories, tolerance)
}
