package utils

import (
	"time"

	"github.com/sheikhrachel/go-gol-form/model"
)

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	StagnantSince        int // generation a repeating state was first seen, 0 if none

	lastUpdate time.Time
	history    []string
	now        func() time.Time
}

func NewStats() *Stats {
	now := time.Now()
	return &Stats{StartTime: now, lastUpdate: now, now: time.Now}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Observe records one generation of g; it fits runner.Observer
func (s *Stats) Observe(generation int, g *model.Grid) {
	if s.now == nil {
		s.now = time.Now
	}
	now := s.now()
	s.Update(generation, g.CountLivingCells(), now.Sub(s.lastUpdate))
	s.lastUpdate = now

	hash := g.GetGridHash()
	if s.StagnantSince == 0 && s.seen(hash) {
		s.StagnantSince = generation
	}
	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// IsStagnant reports whether a still life or short cycle has been reached
func (s *Stats) IsStagnant() bool {
	return s.StagnantSince > 0
}

func (s *Stats) seen(hash string) bool {
	for _, h := range s.history {
		if h == hash {
			return true
		}
	}
	return false
}
