// Package pcf8523 implements a driver for the PCF8523 Real-Time Clock (RTC), providing basic read-write of the current
// time only. The PCF8523 itself supports alarms, clock drift compensation, and timer interrupts, but those features
// remain unimplemented.
//
// Datasheet: https://www.nxp.com/docs/en/data-sheet/PCF8523.pdf
package pcf8523

import (
	"fmt"
	"time"

	"github.com/ajanata/drivers"
	"github.com/ajanata/drivers/calendar"
)

type Device struct {
	bus     drivers.I2C
	Address uint8
}

func New(i2c drivers.I2C) Device {
	return Device{
		bus:     i2c,
		Address: Address,
	}
}

// Connected reports whether the chip acknowledges its address.
func (d *Device) Connected() bool {
	return d.bus.Tx(uint16(d.Address), nil, nil) == nil
}

// LostPower reports whether the oscillator stopped, in which case the time is invalid.
func (d *Device) LostPower() (bool, error) {
	buf := [1]byte{}
	err := d.bus.ReadRegister(d.Address, Status, buf[:])
	if err != nil {
		return false, err
	}
	return buf[0]&statusOS != 0, nil
}

func (d *Device) Initialized() (bool, error) {
	buf := [1]byte{}
	err := d.bus.ReadRegister(d.Address, Control3, buf[:])
	if err != nil {
		return false, err
	}
	return buf[0]&0xE0 != 0xE0, nil
}

// Set writes t, converted to UTC, to the chip. Years outside 2000-2099 are rejected.
func (d *Device) Set(t time.Time) error {
	ct, err := calendar.FromTime(t)
	if err != nil {
		return err
	}
	return d.SetCalendar(ct)
}

// SetCalendar writes t to the time registers. Hundredths are ignored; the chip counts whole
// seconds.
func (d *Device) SetCalendar(t calendar.Time) error {
	if err := t.Validate(); err != nil {
		return err
	}
	rbuf := [1]byte{}
	err := d.bus.ReadRegister(d.Address, Control1, rbuf[:])
	if err != nil {
		return err
	}
	// do not change cap_sel or second/alarm/correction interrupts
	// ensure RTC is running and 24-hour mode is selected
	rbuf[0] &= 0b1000_0111
	err = d.bus.WriteRegister(d.Address, Control1, rbuf[:])
	if err != nil {
		return err
	}

	buf := make([]byte, 0, 7)
	for _, v := range []int{
		int(t.Second),
		int(t.Minute),
		int(t.Hour),
		int(t.Date),
		int(t.Weekday),
		int(t.Month),
		int(t.Year),
	} {
		bcd, err := calendar.ToBCD(v)
		if err != nil {
			return err
		}
		buf = append(buf, bcd)
	}
	// writing the seconds register also clears the oscillator stop flag
	err = d.bus.WriteRegister(d.Address, Time, buf)
	if err != nil {
		return err
	}
	// turn on battery switchover mode, turn off battery-related interrupts
	return d.bus.WriteRegister(d.Address, Control3, []byte{0})
}

// Calendar reads the time registers.
func (d *Device) Calendar() (calendar.Time, error) {
	buf := [7]byte{}
	err := d.bus.ReadRegister(d.Address, Time, buf[:])
	if err != nil {
		return calendar.Time{}, err
	}

	var fields [7]uint8
	for i, mask := range timeMasks {
		fields[i], err = calendar.FromBCD(buf[i] & mask)
		if err != nil {
			return calendar.Time{}, fmt.Errorf("pcf8523: reading time: %w", err)
		}
	}
	t := calendar.Time{
		Second:  fields[0],
		Minute:  fields[1],
		Hour:    fields[2],
		Date:    fields[3],
		Weekday: time.Weekday(fields[4]),
		Month:   time.Month(fields[5]),
		Year:    fields[6],
	}
	if err := t.Validate(); err != nil {
		return calendar.Time{}, fmt.Errorf("pcf8523: reading time: %w", err)
	}
	return t, nil
}

func (d *Device) Now() (time.Time, error) {
	t, err := d.Calendar()
	if err != nil {
		return time.Time{}, err
	}
	return t.Time(), nil
}
