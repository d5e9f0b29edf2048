package service

import (
	"fmt"
	"math"

	"ftracker/internal/workout"
)

// ReportService turns sensor packages into workout summaries
type ReportService struct {
	packages []workout.Package
}

// NewReportService creates a report service over the given packages.
// With no packages it falls back to the built-in samples.
func NewReportService(packages []workout.Package) *ReportService {
	if len(packages) == 0 {
		packages = workout.SamplePackages()
	}
	return &ReportService{packages: packages}
}

// Entry is the outcome of building and summarizing one package
type Entry struct {
	Package workout.Package
	Summary workout.Summary
	Err     error
}

// OK reports whether the package produced a summary
func (e Entry) OK() bool {
	return e.Err == nil
}

// Line returns the rendered summary, or an error line for a failed package
func (e Entry) Line() string {
	if e.Err != nil {
		return fmt.Sprintf("error: %v", e.Err)
	}
	return e.Summary.Render()
}

// Totals aggregates the successful entries of a report
type Totals struct {
	Count    int
	Failed   int
	Duration float64 // hours
	Distance float64 // km
	Calories float64 // kcal
}

// Packages returns the packages the service reports on
func (r *ReportService) Packages() []workout.Package {
	return r.packages
}

// Report builds every configured package
func (r *ReportService) Report() []Entry {
	return Build(r.packages)
}

// Build summarizes each package in order. A failing package only
// marks its own entry; the rest are still reported.
func Build(packages []workout.Package) []Entry {
	entries := make([]Entry, 0, len(packages))
	for _, p := range packages {
		entry := Entry{Package: p}
		w, err := p.Build()
		if err != nil {
			entry.Err = err
		} else {
			entry.Summary = w.Summarize()
		}
		entries = append(entries, entry)
	}
	return entries
}

// Sum adds up the successful entries
func Sum(entries []Entry) Totals {
	var t Totals
	for _, e := range entries {
		if !e.OK() {
			t.Failed++
			continue
		}
		t.Count++
		t.Duration += e.Summary.Duration
		t.Distance += e.Summary.Distance
		t.Calories += e.Summary.Calories
	}
	return t
}

// Calories returns the calories of the successful entries, in report order
func Calories(entries []Entry) []float64 {
	var values []float64
	for _, e := range entries {
		if e.OK() {
			values = append(values, e.Summary.Calories)
		}
	}
	return values
}

// FormatHours formats fractional hours as h:mm
func FormatHours(hours float64) string {
	minutes := int(math.Round(hours * MinutesPerHour))
	return fmt.Sprintf("%d:%02d", minutes/MinutesPerHour, minutes%MinutesPerHour)
}
