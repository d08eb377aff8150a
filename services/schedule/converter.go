package schedule

import (
	"fmt"
	"time"
)

const (
	// maxConvergePasses bounds the fixed-point loop. Ten passes is far
	// more than any real zone needs; wall clocks only ever disagree with
	// a guess by whole offset steps.
	maxConvergePasses = 10

	instantLayout = "2006-01-02T15:04:05.000Z"

	invalidDateResult = "Invalid date"
)

// Converter maps wall-clock readings in a named zone to absolute instants
// and back. It holds no state beyond its ZoneDB and is safe for
// concurrent use.
//
// DST policy: the seed uses the zone's standard-time offset, so a civil
// reading inside a fall-back overlap resolves to the second (standard
// time) occurrence. A reading inside a spring-forward gap does not exist
// on any clock; the loop settles on the instant at civil+standardOffset,
// which displays one hour past the requested wall time. Both outcomes
// are deterministic.
type Converter struct {
	db          ZoneDB
	defaultAbbr string
}

// NewConverter builds a Converter over db. defaultAbbr is the
// abbreviation reported when the zone database cannot supply one.
func NewConverter(db ZoneDB, defaultAbbr string) *Converter {
	if defaultAbbr == "" {
		defaultAbbr = "CST"
	}
	return &Converter{db: db, defaultAbbr: defaultAbbr}
}

// CivilToInstant converts a wall-clock reading in zone to the absolute
// instant that projects back to that reading. Calendar-invalid input
// fails with MalformedCivilTimeError before any lookup. The loop never
// fails on non-convergence; it returns the last guess (see type doc for
// the DST policy). Only a zone-resolution failure is an error.
func (c *Converter) CivilToInstant(civil CivilDateTime, zone string) (time.Time, error) {
	if err := civil.Validate(); err != nil {
		return time.Time{}, err
	}

	target := civil.naive()
	seed, err := c.standardOffset(civil.Year, zone)
	if err != nil {
		return time.Time{}, err
	}

	guess := target.Add(-seed)
	for i := 0; i < maxConvergePasses; i++ {
		projected, _, err := c.db.Project(guess, zone)
		if err != nil {
			return time.Time{}, fmt.Errorf("project into %q: %w", zone, err)
		}
		diff := target.Unix() - projected.naive().Unix()
		if diff == 0 {
			break
		}
		guess = guess.Add(time.Duration(diff) * time.Second)
	}
	return guess, nil
}

// ComposeScheduled builds a civil reading from "YYYY-MM-DD" and "HH:MM"
// strings (second = 0), converts it, and serializes the instant as an
// ISO-8601 UTC string.
func (c *Converter) ComposeScheduled(dateOnly, timeOnly, zone string) (string, error) {
	civil, err := ComposeCivil(dateOnly, timeOnly)
	if err != nil {
		return "", err
	}
	instant, err := c.CivilToInstant(civil, zone)
	if err != nil {
		return "", err
	}
	return FormatInstantUTC(instant), nil
}

// DisplayInstant renders a serialized instant as local wall-clock text:
// "MM/DD/YYYY, hh:mm:ss AM/PM ABBR". Display sits on best-effort UI
// paths, so any unparseable or unprojectable input yields the literal
// "Invalid date" instead of an error.
func (c *Converter) DisplayInstant(raw, zone string) string {
	t, err := ParseInstant(raw)
	if err != nil {
		return invalidDateResult
	}
	return c.DisplayTime(t, zone)
}

// DisplayTime is DisplayInstant for an already-parsed instant.
func (c *Converter) DisplayTime(t time.Time, zone string) string {
	civil, abbr, err := c.db.Project(t, zone)
	if err != nil {
		return invalidDateResult
	}
	if abbr == "" || abbr[0] == '+' || abbr[0] == '-' {
		abbr = c.defaultAbbr
	}

	hour12 := civil.Hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	meridiem := "AM"
	if civil.Hour >= 12 {
		meridiem = "PM"
	}
	return fmt.Sprintf("%02d/%02d/%04d, %02d:%02d:%02d %s %s",
		civil.Month, civil.Day, civil.Year, hour12, civil.Minute, civil.Second, meridiem, abbr)
}

// ZoneAbbreviation returns the standard/daylight code in effect at t in
// zone ("CST"/"CDT" for the central US). It never fails: an unresolvable
// zone or a bare numeric offset falls back to the configured default.
func (c *Converter) ZoneAbbreviation(t time.Time, zone string) string {
	_, abbr, err := c.db.Project(t, zone)
	if err != nil || abbr == "" || abbr[0] == '+' || abbr[0] == '-' {
		return c.defaultAbbr
	}
	return abbr
}

// IsDue reports whether scheduled is at or before reference. Both sides
// are absolute instants, so no zone is involved.
func (c *Converter) IsDue(scheduled, reference time.Time) bool {
	return !scheduled.After(reference)
}

// standardOffset probes the zone's offset in January and July of year
// and keeps the smaller. Daylight offsets are always ahead of standard,
// so the minimum is the standard offset in either hemisphere.
func (c *Converter) standardOffset(year int, zone string) (time.Duration, error) {
	jan, err := c.offsetAt(time.Date(year, time.January, 1, 12, 0, 0, 0, time.UTC), zone)
	if err != nil {
		return 0, err
	}
	jul, err := c.offsetAt(time.Date(year, time.July, 1, 12, 0, 0, 0, time.UTC), zone)
	if err != nil {
		return 0, err
	}
	if jul < jan {
		return jul, nil
	}
	return jan, nil
}

func (c *Converter) offsetAt(t time.Time, zone string) (time.Duration, error) {
	civil, _, err := c.db.Project(t, zone)
	if err != nil {
		return 0, fmt.Errorf("project into %q: %w", zone, err)
	}
	return time.Duration(civil.naive().Unix()-t.Unix()) * time.Second, nil
}

// FormatInstantUTC serializes an instant in the canonical wire form,
// e.g. "2026-02-10T15:00:00.000Z".
func FormatInstantUTC(t time.Time) string {
	return t.UTC().Format(instantLayout)
}

// ParseInstant parses an ISO-8601 UTC instant string.
func ParseInstant(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse instant %q: %w", raw, err)
	}
	return t, nil
}
