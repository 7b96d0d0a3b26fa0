// Package seed turns calendar dates into the seeds and puzzle numbers that
// every daily game is keyed by.
package seed

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the wire format of a puzzle date
const DateLayout = "2006-01-02"

// Offset is added to date hashes so the first season of puzzles does not
// collide with the prototype's seeds.
const Offset = 20260111

// Epoch is puzzle #1. Every game numbers its puzzles from this date.
var Epoch = time.Date(2026, time.January, 11, 0, 0, 0, 0, time.UTC)

// DateString formats t as YYYY-MM-DD using t's own calendar date
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into midnight UTC of that date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Hash is the 31-multiplier polynomial string hash, wrapping at 32 bits
func Hash(s string) int32 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = h*31 + int32(s[i])
	}
	return h
}

// FromDate returns |hash(date) * multiplier| + Offset
func FromDate(t time.Time, multiplier int64) int64 {
	return abs(int64(Hash(DateString(t)))*multiplier) + Offset
}

// WithTag returns |hash(date) + tag*1000|
func WithTag(t time.Time, tag rune) int64 {
	return abs(int64(Hash(DateString(t))) + int64(tag)*1000)
}

// PuzzleNumber returns the number of days since Epoch plus one
func PuzzleNumber(t time.Time) int {
	day := calendarDay(t)
	return int(math.Floor(day.Sub(Epoch).Hours()/24)) + 1
}

// EffectiveDate returns the calendar date whose puzzles are current at now.
// Before unlockHour local time, the previous day's puzzles are still live.
func EffectiveDate(now time.Time, unlockHour int) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if now.Hour() < unlockHour {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

// UntilNextPuzzle returns the time left until the next unlock at unlockHour
func UntilNextPuzzle(now time.Time, unlockHour int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), unlockHour, 0, 0, 0, now.Location())
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
