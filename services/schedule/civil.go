package schedule

import (
	"fmt"
	"time"
)

// CivilDateTime is a naive wall-clock reading. It carries no zone of its
// own; it only means something once paired with a zone name.
type CivilDateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// MalformedCivilTimeError signals that a civil input failed grammar or
// calendar-range checks before any conversion was attempted.
type MalformedCivilTimeError struct {
	Input  string
	Reason string
}

func (e *MalformedCivilTimeError) Error() string {
	return fmt.Sprintf("malformed civil time %q: %s", e.Input, e.Reason)
}

func newMalformed(input, reason string) error {
	return &MalformedCivilTimeError{Input: input, Reason: reason}
}

// ParseCivilDateTime parses "YYYY-MM-DDTHH:MM:SS" or "YYYY-MM-DDTHH:MM"
// (seconds default to 0). Anything else fails with MalformedCivilTimeError.
func ParseCivilDateTime(raw string) (CivilDateTime, error) {
	if len(raw) != 16 && len(raw) != 19 {
		return CivilDateTime{}, newMalformed(raw, "expected YYYY-MM-DDTHH:MM[:SS]")
	}
	if raw[4] != '-' || raw[7] != '-' || raw[10] != 'T' || raw[13] != ':' {
		return CivilDateTime{}, newMalformed(raw, "expected YYYY-MM-DDTHH:MM[:SS]")
	}
	if len(raw) == 19 && raw[16] != ':' {
		return CivilDateTime{}, newMalformed(raw, "expected YYYY-MM-DDTHH:MM[:SS]")
	}

	civil := CivilDateTime{}
	var err error
	if civil.Year, err = digits(raw, 0, 4); err != nil {
		return CivilDateTime{}, newMalformed(raw, "year is not numeric")
	}
	if civil.Month, err = digits(raw, 5, 7); err != nil {
		return CivilDateTime{}, newMalformed(raw, "month is not numeric")
	}
	if civil.Day, err = digits(raw, 8, 10); err != nil {
		return CivilDateTime{}, newMalformed(raw, "day is not numeric")
	}
	if civil.Hour, err = digits(raw, 11, 13); err != nil {
		return CivilDateTime{}, newMalformed(raw, "hour is not numeric")
	}
	if civil.Minute, err = digits(raw, 14, 16); err != nil {
		return CivilDateTime{}, newMalformed(raw, "minute is not numeric")
	}
	if len(raw) == 19 {
		if civil.Second, err = digits(raw, 17, 19); err != nil {
			return CivilDateTime{}, newMalformed(raw, "second is not numeric")
		}
	}

	if err := civil.Validate(); err != nil {
		return CivilDateTime{}, err
	}
	return civil, nil
}

// ComposeCivil joins a "YYYY-MM-DD" date and an "HH:MM" time into one
// CivilDateTime with second fixed to 0.
func ComposeCivil(dateOnly, timeOnly string) (CivilDateTime, error) {
	if len(dateOnly) != 10 || dateOnly[4] != '-' || dateOnly[7] != '-' {
		return CivilDateTime{}, newMalformed(dateOnly, "expected YYYY-MM-DD")
	}
	if len(timeOnly) != 5 || timeOnly[2] != ':' {
		return CivilDateTime{}, newMalformed(timeOnly, "expected HH:MM")
	}
	return ParseCivilDateTime(dateOnly + "T" + timeOnly)
}

// Validate checks standard calendar ranges, including leap-year February.
func (c CivilDateTime) Validate() error {
	raw := c.String()
	if c.Month < 1 || c.Month > 12 {
		return newMalformed(raw, "month out of range")
	}
	if c.Day < 1 || c.Day > daysIn(c.Year, c.Month) {
		return newMalformed(raw, "day out of range")
	}
	if c.Hour < 0 || c.Hour > 23 {
		return newMalformed(raw, "hour out of range")
	}
	if c.Minute < 0 || c.Minute > 59 {
		return newMalformed(raw, "minute out of range")
	}
	if c.Second < 0 || c.Second > 59 {
		return newMalformed(raw, "second out of range")
	}
	return nil
}

func (c CivilDateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
}

// naive interprets the wall-clock fields as if they were UTC. Used only
// for whole-second subtraction inside the conversion loop.
func (c CivilDateTime) naive() time.Time {
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second, 0, time.UTC)
}

func digits(s string, from, to int) (int, error) {
	n := 0
	for i := from; i < to; i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit at %d", i)
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, nil
}

func daysIn(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 31
	}
}
