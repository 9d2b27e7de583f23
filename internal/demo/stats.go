package demo

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats accumulates frame timings.
type Stats struct {
	Frames int
	Total  time.Duration
	Last   time.Duration
}

// Add records one frame.
func (s *Stats) Add(dt time.Duration) {
	s.Frames++
	s.Total += dt
	s.Last = dt
}

// FPS returns the average frame rate, or 0 before any time has elapsed.
func (s *Stats) FPS() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Total.Seconds()
}

var printer = message.NewPrinter(language.English)

// String formats the statistics for a log line.
func (s *Stats) String() string {
	return printer.Sprintf("%d frames, last %.2f ms, %.1f FPS",
		s.Frames, float64(s.Last.Microseconds())/1000, s.FPS())
}
