// Package stats contains statistics calculations and reporting.
package stats

import (
	"math"
	"strings"

	"github.com/calvike/fovea/internal/model"
)

const sparkChars = " .:-=+*#%@"

// SessionMetrics computes the effective reading speed and completion
// ratio for a session.
func SessionMetrics(wordsRead, words int, durationMs int64) (wpm, completion float64) {
	if durationMs > 0 {
		minutes := float64(durationMs) / 60000.0
		wpm = float64(wordsRead) / minutes
	}
	if words > 0 {
		completion = float64(wordsRead) / float64(words)
	}
	return wpm, completion
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Summary aggregates session history for the stats header.
type Summary struct {
	Sessions   int
	WordsRead  int
	AvgWPM     float64
	BestWPM    float64
	TotalMs    int64
	SpeedCurve []float64
}

// Summarize folds session aggregates into a Summary. The speed curve
// holds per-session effective WPM in chronological order.
func Summarize(sessions []model.SessionAggregate) Summary {
	var s Summary
	s.Sessions = len(sessions)
	for _, agg := range sessions {
		wpm, _ := SessionMetrics(agg.WordsRead, agg.Words, agg.DurationMs)
		s.WordsRead += agg.WordsRead
		s.TotalMs += agg.DurationMs
		s.AvgWPM += wpm
		if wpm > s.BestWPM {
			s.BestWPM = wpm
		}
		s.SpeedCurve = append(s.SpeedCurve, wpm)
	}
	if s.Sessions > 0 {
		s.AvgWPM /= float64(s.Sessions)
	}
	return s
}
