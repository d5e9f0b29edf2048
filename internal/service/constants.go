package service

const (
	// Time conversions
	MinutesPerHour = 60

	// Chart dimensions for the calories trend
	ChartHeight    = 8
	ChartWidth     = 60
	ChartPrecision = 1
)
