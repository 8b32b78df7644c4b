// Package calendar converts the calendar readings kept by real-time-clock chips.
//
// RTC chips store every field of the current time as binary-coded decimal in a block of
// registers, with the year as a two-digit offset from 2000. This package decodes such a block
// into a Time value, encodes it back, and converts it to and from a linear count of seconds
// since a reference epoch without consulting the host time zone database.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Offsets into Registers.
const (
	IndexHundredths = iota
	IndexSeconds
	IndexMinutes
	IndexHours
	IndexWeekday
	IndexDate
	IndexMonth
	IndexYear

	// RegisterCount is the number of calendar registers.
	RegisterCount
)

// BaseYear is the year a two-digit RTC year counts from.
const BaseYear = 2000

// ErrFieldRange is returned when a calendar field is outside of its valid range.
var ErrFieldRange = errors.New("calendar: field out of range")

// Registers is a raw calendar register block: hundredths, seconds, minutes, hours, weekday,
// date, month and year. All fields are BCD except the weekday, which is a one-hot mask.
type Registers [RegisterCount]byte

// Time is a decoded calendar reading in 24-hour form.
type Time struct {
	Hundredths uint8
	Second     uint8
	Minute     uint8
	Hour       uint8
	Weekday    time.Weekday
	Date       uint8
	Month      time.Month
	// Year counts from BaseYear.
	Year uint8
}

// Civil is a broken-down UTC reading with a full year, as produced by a Decoder.
type Civil struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int
	Minute  int
	Second  int
	Weekday time.Weekday
}

// Decode converts a raw register block into a Time. The caller is expected to have masked off
// any non-calendar bits the chip keeps in the same registers.
func Decode(r Registers) (Time, error) {
	var t Time
	var err error
	fields := []struct {
		dst *uint8
		idx int
	}{
		{&t.Hundredths, IndexHundredths},
		{&t.Second, IndexSeconds},
		{&t.Minute, IndexMinutes},
		{&t.Hour, IndexHours},
		{&t.Date, IndexDate},
		{&t.Year, IndexYear},
	}
	for _, f := range fields {
		*f.dst, err = FromBCD(r[f.idx])
		if err != nil {
			return Time{}, err
		}
	}
	month, err := FromBCD(r[IndexMonth])
	if err != nil {
		return Time{}, err
	}
	t.Month = time.Month(month)
	t.Weekday, err = WeekdayFromBit(r[IndexWeekday])
	if err != nil {
		return Time{}, err
	}
	return t, t.Validate()
}

// Encode converts t into a raw register block.
func (t Time) Encode() (Registers, error) {
	var r Registers
	if err := t.Validate(); err != nil {
		return r, err
	}
	values := [RegisterCount]int{
		IndexHundredths: int(t.Hundredths),
		IndexSeconds:    int(t.Second),
		IndexMinutes:    int(t.Minute),
		IndexHours:      int(t.Hour),
		IndexDate:       int(t.Date),
		IndexMonth:      int(t.Month),
		IndexYear:       int(t.Year),
	}
	for i, v := range values {
		if i == IndexWeekday {
			continue
		}
		b, err := ToBCD(v)
		if err != nil {
			return r, err
		}
		r[i] = b
	}
	wd, err := WeekdayBit(t.Weekday)
	if err != nil {
		return r, err
	}
	r[IndexWeekday] = wd
	return r, nil
}

// Validate reports whether every field of t is within the range an RTC can hold. The date is
// only checked against 1-31; the chip itself does not reject the 31st of a short month.
func (t Time) Validate() error {
	switch {
	case t.Hundredths > 99:
		return fmt.Errorf("%w: hundredths %d", ErrFieldRange, t.Hundredths)
	case t.Second > 59:
		return fmt.Errorf("%w: seconds %d", ErrFieldRange, t.Second)
	case t.Minute > 59:
		return fmt.Errorf("%w: minutes %d", ErrFieldRange, t.Minute)
	case t.Hour > 23:
		return fmt.Errorf("%w: hours %d", ErrFieldRange, t.Hour)
	case t.Date < 1 || t.Date > 31:
		return fmt.Errorf("%w: date %d", ErrFieldRange, t.Date)
	case t.Month < time.January || t.Month > time.December:
		return fmt.Errorf("%w: month %d", ErrFieldRange, int(t.Month))
	case t.Year > 99:
		return fmt.Errorf("%w: year %d", ErrFieldRange, t.Year)
	case t.Weekday < time.Sunday || t.Weekday > time.Saturday:
		return fmt.Errorf("%w: weekday %d", ErrFieldRange, int(t.Weekday))
	}
	return nil
}

// FullYear returns the four-digit year.
func (t Time) FullYear() int {
	return BaseYear + int(t.Year)
}

// Civil returns t as a broken-down UTC reading.
func (t Time) Civil() Civil {
	return Civil{
		Year:    t.FullYear(),
		Month:   t.Month,
		Day:     int(t.Date),
		Hour:    int(t.Hour),
		Minute:  int(t.Minute),
		Second:  int(t.Second),
		Weekday: t.Weekday,
	}
}

// Time returns t as a UTC time.Time. The weekday field is ignored.
func (t Time) Time() time.Time {
	return time.Date(t.FullYear(), t.Month, int(t.Date), int(t.Hour), int(t.Minute), int(t.Second),
		int(t.Hundredths)*int(10*time.Millisecond), time.UTC)
}

// FromCivil converts a broken-down reading into a Time. The year must lie within the two-digit
// window starting at BaseYear.
func FromCivil(c Civil) (Time, error) {
	if c.Year < BaseYear || c.Year > BaseYear+99 {
		return Time{}, fmt.Errorf("%w: year %d", ErrFieldRange, c.Year)
	}
	if c.Day < 0 || c.Day > 255 || c.Hour < 0 || c.Hour > 255 ||
		c.Minute < 0 || c.Minute > 255 || c.Second < 0 || c.Second > 255 {
		return Time{}, fmt.Errorf("%w: %+v", ErrFieldRange, c)
	}
	t := Time{
		Second:  uint8(c.Second),
		Minute:  uint8(c.Minute),
		Hour:    uint8(c.Hour),
		Weekday: c.Weekday,
		Date:    uint8(c.Day),
		Month:   c.Month,
		Year:    uint8(c.Year - BaseYear),
	}
	return t, t.Validate()
}

// FromTime converts a time.Time to a Time in UTC.
func FromTime(tt time.Time) (Time, error) {
	tt = tt.UTC()
	t, err := FromCivil(Civil{
		Year:    tt.Year(),
		Month:   tt.Month(),
		Day:     tt.Day(),
		Hour:    tt.Hour(),
		Minute:  tt.Minute(),
		Second:  tt.Second(),
		Weekday: tt.Weekday(),
	})
	if err != nil {
		return Time{}, err
	}
	t.Hundredths = uint8(tt.Nanosecond() / int(10*time.Millisecond))
	return t, nil
}
