// Package model defines shared data structures.
package model

import "time"

// SessionStats captures a completed reading session. Only the summary
// is recorded; no position or resume data is kept.
type SessionStats struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Source     string
	Words      int
	WordsRead  int
	WPMStart   int
	WPMEnd     int
	DurationMs int64
	Completed  bool
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Since *time.Time
	Last  int
}

// SessionAggregate summarizes a stored session for reporting.
type SessionAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	Source     string
	Words      int
	WordsRead  int
	WPMEnd     int
	DurationMs int64
	Completed  bool
}
