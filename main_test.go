package main

import (
	"bytes"
	"strings"
	"testing"

	"ftracker/internal/service"
	"ftracker/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSamples(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	require.NoError(t, run(nil, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Workout type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; Avg speed: 1.000 km/h; Calories burned: 336.000.", lines[0])
	assert.Equal(t, "Workout type: Running; Duration: 1.000 h.; Distance: 9.750 km; Avg speed: 9.750 km/h; Calories burned: 699.750.", lines[1])
	assert.Equal(t, "Workout type: SportsWalking; Duration: 1.000 h.; Distance: 5.850 km; Avg speed: 5.850 km/h; Calories burned: 157.500.", lines[2])
}

func TestRunSinglePackage(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	require.NoError(t, run([]string{"RUN", "15000", "1", "75"}, &out))
	assert.Equal(t, "Workout type: Running; Duration: 1.000 h.; Distance: 9.750 km; Avg speed: 9.750 km/h; Calories burned: 699.750.\n", out.String())
}

func TestRunSinglePackageErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	err := run([]string{"XYZ", "1", "1", "1"}, &out)
	assert.ErrorIs(t, err, workout.ErrUnknownWorkoutKind)

	err = run([]string{"RUN", "15000", "1"}, &out)
	assert.ErrorIs(t, err, workout.ErrInvalidInput)

	err = run([]string{"RUN", "15000", "-1", "75"}, &out)
	assert.ErrorIs(t, err, workout.ErrInvalidInput)

	assert.Empty(t, out.String())
}

func TestPrintReportSkipsRejected(t *testing.T) {
	entries := service.Build([]workout.Package{
		{Code: "XYZ", Values: []float64{1, 1, 1}},
		{Code: "RUN", Values: []float64{15000, 1, 75}},
	})

	var out bytes.Buffer
	require.NoError(t, printReport(&out, entries, false))
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
	assert.Contains(t, out.String(), "Workout type: Running")
}
