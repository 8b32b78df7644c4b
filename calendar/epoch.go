package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTime is returned when a reading has no representation relative to the chosen epoch.
var ErrInvalidTime = errors.New("calendar: time not representable")

// Reference selects the instant epoch seconds are counted from.
type Reference uint8

const (
	// Epoch2000 counts from 2000-01-01T00:00:00Z, the epoch of the AVR C library.
	Epoch2000 Reference = iota
	// Epoch1970 counts from 1970-01-01T00:00:00Z, the Unix epoch.
	Epoch1970
)

// unixOffset is 2000-01-01T00:00:00Z in Unix seconds.
const unixOffset = 946684800

// Year returns the calendar year the epoch starts in.
func (r Reference) Year() int {
	if r == Epoch1970 {
		return 1970
	}
	return 2000
}

// Unix returns the epoch instant in Unix seconds.
func (r Reference) Unix() int64 {
	if r == Epoch1970 {
		return 0
	}
	return unixOffset
}

func (r Reference) String() string {
	if r == Epoch1970 {
		return "1970"
	}
	return "2000"
}

// Decoder breaks a count of Unix seconds down into UTC calendar fields.
type Decoder func(unix int64) Civil

// UTC is the Decoder backed by the time package.
func UTC(unix int64) Civil {
	t := time.Unix(unix, 0).UTC()
	return Civil{
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		Weekday: t.Weekday(),
	}
}

// cumulative days before the first of each month in a common year
var monthDays = [12]int64{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// probeSteps walk the estimate through +0, +2, -2, +1 and -1 seconds.
var probeSteps = [...]int64{0, 2, -4, 3, -2}

// Converter converts calendar readings to seconds since an epoch and back. The zero value
// counts from Epoch2000 and decodes with UTC.
type Converter struct {
	Reference Reference
	// Decode is the authoritative UTC decoder the forward conversion is checked against.
	// Nil means UTC.
	Decode Decoder
}

func (c Converter) decode(epoch int64) Civil {
	decode := c.Decode
	if decode == nil {
		decode = UTC
	}
	return decode(epoch + c.Reference.Unix())
}

// linear counts seconds since the reference assuming no leap second ever happened.
func (c Converter) linear(t Civil) int64 {
	ref := int64(c.Reference.Year())
	year := int64(t.Year)
	leapYear := year
	if t.Month < time.March {
		leapYear--
	}
	leaps := leapDays(leapYear) - leapDays(ref-1)
	days := (year-ref)*365 + monthDays[t.Month-1] + int64(t.Day-1) + leaps
	return ((days*24+int64(t.Hour))*60+int64(t.Minute))*60 + int64(t.Second)
}

// leapDays counts the leap days from year 0 up to and including year.
func leapDays(year int64) int64 {
	return year/4 - year/100 + year/400
}

// Seconds converts a UTC reading to seconds since the reference epoch.
//
// The reading is first converted assuming no leap seconds, then checked against the decoder.
// When the decoder disagrees, which happens around inserted leap seconds with a leap-second
// aware decoder, the estimate is corrected by the observed difference and probed at most five
// times within two seconds of the correction. A reading of second 60 or 61 that no probe
// matches resolves to the start of the next minute. The conversion fails only for a month
// outside 1-12 or a year before the reference year.
func (c Converter) Seconds(t Civil) (int64, error) {
	if t.Month < time.January || t.Month > time.December {
		return 0, fmt.Errorf("%w: month %d", ErrInvalidTime, int(t.Month))
	}
	if t.Year < c.Reference.Year() {
		return 0, fmt.Errorf("%w: year %d before epoch %s", ErrInvalidTime, t.Year, c.Reference)
	}

	guess := c.linear(t)
	got := c.decode(guess)
	if got.Second == t.Second && c.linear(got) >= guess {
		return guess, nil
	}

	est := guess + (guess - c.linear(got))
	probe := est
	for _, step := range probeSteps {
		probe += step
		if c.decode(probe).Second == t.Second {
			return probe, nil
		}
	}
	if t.Second >= 60 {
		return est, nil
	}
	return est + 1, nil
}

// Epoch converts t to seconds since the reference epoch.
func (c Converter) Epoch(t Time) (int64, error) {
	return c.Seconds(t.Civil())
}

// Time converts seconds since the reference epoch to a Time. The result must fall within the
// two-digit year window of an RTC.
func (c Converter) Time(epoch int64) (Time, error) {
	t, err := FromCivil(c.decode(epoch))
	if err != nil {
		return Time{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	return t, nil
}
