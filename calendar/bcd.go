package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrBCDRange is returned when a decimal value does not fit in two BCD digits.
	ErrBCDRange = errors.New("calendar: value out of BCD range")
	// ErrInvalidBCD is returned when a register byte holds a nibble above 9.
	ErrInvalidBCD = errors.New("calendar: invalid BCD digit")
)

// FromBCD converts a two-digit binary-coded decimal byte to its decimal value.
func FromBCD(bcd uint8) (uint8, error) {
	if bcd>>4 > 9 || bcd&0x0F > 9 {
		return 0, fmt.Errorf("%w: 0x%02X", ErrInvalidBCD, bcd)
	}
	return (bcd>>4)*10 + bcd&0x0F, nil
}

// ToBCD converts a decimal value in the range 0-99 to binary-coded decimal.
func ToBCD(dec int) (uint8, error) {
	if dec < 0 || dec > 99 {
		return 0, fmt.Errorf("%w: %d", ErrBCDRange, dec)
	}
	return uint8(dec/10)<<4 | uint8(dec%10), nil
}
