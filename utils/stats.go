package utils

import (
	"fmt"
	"time"
)

// Stats tracks frame statistics for the shutdown summary.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one completed frame.
func (s *Stats) Update(generation, population int, frameDuration time.Duration) {
	s.TotalGenerations = generation
	if frameDuration > 0 {
		s.GenerationsPerSecond = 1.0 / frameDuration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary formats the end-of-run report.
func (s *Stats) Summary() string {
	return fmt.Sprintf("Final stats: %d generations in %.1f seconds | %.1f gen/sec | %.1f avg population",
		s.TotalGenerations, time.Since(s.StartTime).Seconds(),
		s.GenerationsPerSecond, s.AveragePopulation)
}
