// @license
// Copyright (C) 2024  nure-tools authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package period constructs timezone-normalized start/end intervals for
// schedule queries. All constructors normalize to a single fixed timezone
// (the institution lives in Europe/Kyiv), regardless of how the input was
// expressed: permissive date/time strings, unix timestamps or calendar
// anchors relative to the current instant.
package period

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/araddon/dateparse"

	"github.com/nure-tools/nuretools/logger"
)

// DefaultTimezone is the IANA name of the institution's timezone.
const DefaultTimezone = "Europe/Kyiv"

// eetOffset is the standard-time UTC offset used as a last resort when the
// timezone database has no Europe/Kyiv entry.
const eetOffset = 2 * 60 * 60

// InvalidStringError denotes a date/time string the permissive parser could
// not make sense of.
type InvalidStringError struct {
	Input string
}

func (e *InvalidStringError) Error() string {
	return "can't parse date/time from string: " + e.Input
}

// InvalidTimestampError denotes a numeric timestamp the parser rejected.
type InvalidTimestampError struct {
	Value int64
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("can't parse date/time from timestamp: %d", e.Value)
}

// Period is a closed start/end interval with both instants in the fixed
// timezone. Start is expected to precede End; constructors never reorder the
// bounds the caller asked for.
type Period struct {
	Start time.Time
	End   time.Time
}

// Duration returns the span of the period.
func (p Period) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// Contains reports whether t falls within the period bounds, inclusive.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

func (p Period) String() string {
	return fmt.Sprintf("%v .. %v", p.Start.Format(time.RFC3339), p.End.Format(time.RFC3339))
}

// Builder constructs periods against one fixed location, week convention and
// time source. The zero-argument package-level constructors delegate to a
// shared default builder; tests inject their own location and clock instead.
type Builder struct {
	loc       *time.Location
	weekStart time.Weekday
	now       func() time.Time
}

// NewBuilder returns a builder fixed to loc, with a Monday week start and the
// wall clock as its time source.
func NewBuilder(loc *time.Location) *Builder {
	return &Builder{
		loc:       loc,
		weekStart: time.Monday,
		now:       time.Now,
	}
}

// WithClock returns a copy of the builder using fn as its time source.
func (b *Builder) WithClock(fn func() time.Time) *Builder {
	nb := *b
	nb.now = fn

	return &nb
}

// Location returns the fixed location all periods are normalized to.
func (b *Builder) Location() *time.Location {
	return b.loc
}

var defaultBuilder = sync.OnceValue(func() *Builder {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		logger.Warn().Msgf("Unable to load %v timezone, using fixed EET offset: %v", DefaultTimezone, err)

		loc = time.FixedZone("EET", eetOffset)
	}

	return NewBuilder(loc)
})

// Default returns the shared builder fixed to the institution's timezone.
func Default() *Builder {
	return defaultBuilder()
}

// parse runs the permissive multi-format parser over s, interpreting naive
// inputs in the builder location and converting everything into it.
func (b *Builder) parse(s string) (time.Time, error) {
	t, err := dateparse.ParseIn(s, b.loc)
	if err != nil {
		return time.Time{}, &InvalidStringError{Input: s}
	}

	return t.In(b.loc), nil
}

// FromStrings builds a period from two date/time strings. Accepted input is
// whatever the permissive parser takes: numeric epochs, ISO-8601, RFC-2822,
// Postgres-style timestamps, loose dates like "oct 7, 1970". A side that
// fails to parse yields *InvalidStringError carrying that side.
func (b *Builder) FromStrings(start, end string) (Period, error) {
	st, err := b.parse(start)
	if err != nil {
		return Period{}, err
	}

	en, err := b.parse(end)
	if err != nil {
		return Period{}, err
	}

	return Period{Start: st, End: en}, nil
}

// FromTimestamps builds a period from two unix timestamps, running the
// decimal string form of each through the same permissive parser so larger
// units (milliseconds, nanoseconds) are accepted too. A rejected value
// yields *InvalidTimestampError carrying it.
func (b *Builder) FromTimestamps(start, end int64) (Period, error) {
	st, err := dateparse.ParseIn(strconv.FormatInt(start, 10), b.loc)
	if err != nil {
		return Period{}, &InvalidTimestampError{Value: start}
	}

	en, err := dateparse.ParseIn(strconv.FormatInt(end, 10), b.loc)
	if err != nil {
		return Period{}, &InvalidTimestampError{Value: end}
	}

	return Period{Start: st.In(b.loc), End: en.In(b.loc)}, nil
}

// startOfDay returns 00:00:00.000 of t's calendar day.
func (b *Builder) startOfDay(t time.Time) time.Time {
	y, m, d := t.In(b.loc).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, b.loc)
}

// endOfDay returns 23:59:59.999 of t's calendar day.
func (b *Builder) endOfDay(t time.Time) time.Time {
	return b.startOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// startOfWeek returns 00:00:00.000 of the first day of the week containing t.
func (b *Builder) startOfWeek(t time.Time) time.Time {
	t = b.startOfDay(t)
	diff := (int(t.Weekday()) - int(b.weekStart) + 7) % 7

	return t.AddDate(0, 0, -diff)
}

// weekOf returns the full calendar week containing t.
func (b *Builder) weekOf(t time.Time) Period {
	start := b.startOfWeek(t)

	return Period{Start: start, End: start.AddDate(0, 0, 7).Add(-time.Millisecond)}
}

// Now returns the period from the current instant until the end of the
// current calendar day.
func (b *Builder) Now() Period {
	n := b.now().In(b.loc)

	return Period{Start: n, End: b.endOfDay(n)}
}

// Today returns the bounds of the current calendar day.
func (b *Builder) Today() Period {
	n := b.now().In(b.loc)

	return Period{Start: b.startOfDay(n), End: b.endOfDay(n)}
}

// ThisDay is an alias for Today.
func (b *Builder) ThisDay() Period {
	return b.Today()
}

// NextDay returns the bounds of the calendar day 24 hours ahead of now.
func (b *Builder) NextDay() Period {
	n := b.now().In(b.loc).Add(24 * time.Hour)

	return Period{Start: b.startOfDay(n), End: b.endOfDay(n)}
}

// DayFrom parses s and returns the bounds of that calendar day.
func (b *Builder) DayFrom(s string) (Period, error) {
	t, err := b.parse(s)
	if err != nil {
		return Period{}, err
	}

	return Period{Start: b.startOfDay(t), End: b.endOfDay(t)}, nil
}

// ThisWeek returns the bounds of the current calendar week.
func (b *Builder) ThisWeek() Period {
	return b.weekOf(b.now())
}

// NextWeek returns the bounds of the calendar week after the current one.
func (b *Builder) NextWeek() Period {
	return b.weekOf(b.now().In(b.loc).AddDate(0, 0, 7))
}

// WeekFrom parses s and returns the bounds of the calendar week containing
// that date.
func (b *Builder) WeekFrom(s string) (Period, error) {
	t, err := b.parse(s)
	if err != nil {
		return Period{}, err
	}

	return b.weekOf(t), nil
}

// Package-level constructors delegating to the default builder.

// FromStrings builds a period from two date/time strings in the default
// timezone.
func FromStrings(start, end string) (Period, error) {
	return Default().FromStrings(start, end)
}

// FromTimestamps builds a period from two unix timestamps in the default
// timezone.
func FromTimestamps(start, end int64) (Period, error) {
	return Default().FromTimestamps(start, end)
}

// Now returns the period from the current instant until the end of the day.
func Now() Period {
	return Default().Now()
}

// Today returns the bounds of the current calendar day.
func Today() Period {
	return Default().Today()
}

// ThisDay is an alias for Today.
func ThisDay() Period {
	return Default().ThisDay()
}

// NextDay returns the bounds of the day 24 hours ahead of now.
func NextDay() Period {
	return Default().NextDay()
}

// DayFrom parses s and returns the bounds of that calendar day.
func DayFrom(s string) (Period, error) {
	return Default().DayFrom(s)
}

// ThisWeek returns the bounds of the current calendar week.
func ThisWeek() Period {
	return Default().ThisWeek()
}

// NextWeek returns the bounds of the next calendar week.
func NextWeek() Period {
	return Default().NextWeek()
}

// WeekFrom parses s and returns the bounds of the week containing that date.
func WeekFrom(s string) (Period, error) {
	return Default().WeekFrom(s)
}
