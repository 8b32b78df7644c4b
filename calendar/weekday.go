package calendar

import (
	"errors"
	"fmt"
	"math/bits"
	"time"
)

// ErrInvalidWeekday is returned for weekday masks that do not have exactly one of bits 0-6 set.
var ErrInvalidWeekday = errors.New("calendar: invalid weekday")

// WeekdayBit returns the one-hot register encoding of d: bit 0 is Sunday, bit 6 Saturday.
func WeekdayBit(d time.Weekday) (uint8, error) {
	if d < time.Sunday || d > time.Saturday {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWeekday, int(d))
	}
	return 1 << uint(d), nil
}

// WeekdayFromBit decodes a one-hot weekday register. A mask with no bit set, more than one
// bit set, or bit 7 set is rejected rather than guessed at.
func WeekdayFromBit(mask uint8) (time.Weekday, error) {
	if mask&0x80 != 0 || bits.OnesCount8(mask) != 1 {
		return 0, fmt.Errorf("%w: mask 0b%08b", ErrInvalidWeekday, mask)
	}
	return time.Weekday(bits.TrailingZeros8(mask)), nil
}

// WeekdayMask builds a mask with one bit per given day, as used by the weekday alarm which may
// match several days at once.
func WeekdayMask(days ...time.Weekday) (uint8, error) {
	var mask uint8
	for _, d := range days {
		b, err := WeekdayBit(d)
		if err != nil {
			return 0, err
		}
		mask |= b
	}
	return mask, nil
}

// Weekdays lists the days set in mask, Sunday first. Bit 7 is ignored.
func Weekdays(mask uint8) []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if mask&(1<<uint(d)) != 0 {
			days = append(days, d)
		}
	}
	return days
}
