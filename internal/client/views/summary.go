package views

import (
	"github.com/montanaflynn/stats"
)

// Summary feeds the dashboard tiles.
type Summary struct {
	Total        int
	Acknowledged int
	Pending      int
	// Average is the mean of the per-assessment averages, two decimals.
	Average float64
	Median  float64
	// Levels counts EPA evaluations per entrustment level 1..5.
	Levels [6]int
}

func Summarize(items []Assessment) Summary {
	s := Summary{Total: len(items)}
	avgs := make([]float64, 0, len(items))
	for _, a := range items {
		if a.Acknowledged {
			s.Acknowledged++
		} else {
			s.Pending++
		}
		if a.HasAverage {
			avgs = append(avgs, a.Average)
		}
		for _, e := range a.EPAs {
			if e.Level >= 1 && e.Level <= 5 {
				s.Levels[e.Level]++
			}
		}
	}

	if mean, err := stats.Mean(avgs); err == nil {
		s.Average, _ = stats.Round(mean, 2)
	}
	if med, err := stats.Median(avgs); err == nil {
		s.Median, _ = stats.Round(med, 2)
	}
	return s
}
