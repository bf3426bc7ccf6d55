package services

import "time"

// seqRand replays a fixed sequence of uniform values.
type seqRand struct {
	vals []float64
	i    int
}

func constRand(v float64) *seqRand { return &seqRand{vals: []float64{v}} }

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

var testNow = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func ptr(v float64) *float64 { return &v }
