// Package rv8803 implements a driver for the Micro Crystal RV-8803 Real-Time Clock (RTC).
//
// The driver keeps a snapshot of the calendar registers: UpdateTime refreshes it from the chip,
// the getters and string formatters read from it, and the setters write it back. Besides time
// keeping it covers the alarm, the countdown timer, the periodic update interrupt, the external
// event input (EVI) with its timestamp capture, and the frequency calibration offset. One byte
// of the user RAM is used to remember a time zone in quarter hours.
//
// Datasheet: https://www.microcrystal.com/fileadmin/Media/Products/RTC/App.Manual/RV-8803-C7_App-Manual.pdf
package rv8803

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/ajanata/drivers"
	"github.com/ajanata/drivers/calendar"
)

// ErrNoBuildTime is returned by SetToBuildTime when the binary carries no VCS timestamp.
var ErrNoBuildTime = errors.New("rv8803: no build time in binary")

type Device struct {
	bus     drivers.I2C
	Address uint8

	twelveHour bool
	conv       calendar.Converter
	now        calendar.Time
}

type Config struct {
	// Address defaults to Address. The chip has no address pins, so this only matters behind
	// an address translator.
	Address uint8
	// TwelveHour makes Hours and StringTime report a 12-hour dial. The chip always counts in
	// 24-hour form.
	TwelveHour bool
	// Epoch selects the reference for Epoch and SetEpoch. Defaults to 2000-01-01.
	Epoch calendar.Reference
}

// New creates a new RV-8803 driver on the given preconfigured I2C bus. The chip supports up to
// 400 kHz.
func New(i2c drivers.I2C) Device {
	return Device{
		bus:     i2c,
		Address: Address,
		// the power-on value of the time registers
		now: calendar.Time{Weekday: time.Saturday, Date: 1, Month: time.January},
	}
}

func (d *Device) Configure(c Config) {
	if c.Address == 0 {
		c.Address = Address
	}
	d.Address = c.Address
	d.twelveHour = c.TwelveHour
	d.conv.Reference = c.Epoch
}

// Connected reports whether the chip acknowledges its address.
func (d *Device) Connected() bool {
	return d.bus.Tx(uint16(d.Address), nil, nil) == nil
}

// UpdateTime refreshes the snapshot of the time registers. It needs to be called before
// reading the time through the getters or string formatters.
func (d *Device) UpdateTime() error {
	regs, err := d.readTime()
	if err != nil {
		return err
	}
	if regs[calendar.IndexSeconds] == 0x59 {
		// the burst read may have straddled a minute rollover; a second reading that shows
		// the next minute is the consistent one
		again, err := d.readTime()
		if err != nil {
			return err
		}
		if again[calendar.IndexSeconds] == 0x00 {
			regs = again
		}
	}
	t, err := calendar.Decode(regs)
	if err != nil {
		return fmt.Errorf("rv8803: reading time: %w", err)
	}
	d.now = t
	return nil
}

func (d *Device) readTime() (calendar.Registers, error) {
	var regs calendar.Registers
	err := d.bus.ReadRegister(d.Address, Hundredths, regs[:])
	if err != nil {
		return regs, err
	}
	for i := range regs {
		regs[i] &= timeMasks[i]
	}
	return regs, nil
}

// Calendar returns the last snapshot taken by UpdateTime, or the last time written.
func (d *Device) Calendar() calendar.Time {
	return d.now
}

// Now reads the chip and returns the current time in UTC.
func (d *Device) Now() (time.Time, error) {
	if err := d.UpdateTime(); err != nil {
		return time.Time{}, err
	}
	return d.now.Time(), nil
}

// Set writes t, converted to UTC, to the chip. The hundredths register is read-only; use
// ResetHundredths to align it.
func (d *Device) Set(t time.Time) error {
	ct, err := calendar.FromTime(t)
	if err != nil {
		return err
	}
	return d.SetCalendar(ct)
}

// SetCalendar writes t to the time registers.
func (d *Device) SetCalendar(t calendar.Time) error {
	regs, err := t.Encode()
	if err != nil {
		return err
	}
	err = d.bus.WriteRegister(d.Address, Seconds, regs[calendar.IndexSeconds:])
	if err != nil {
		return err
	}
	t.Hundredths = d.now.Hundredths
	d.now = t
	return nil
}

// SetTime writes the given time of day and date. Year is the full year, 2000-2099.
func (d *Device) SetTime(sec, min, hour uint8, weekday time.Weekday, date uint8, month time.Month, year int) error {
	t, err := calendar.FromCivil(calendar.Civil{
		Year:    year,
		Month:   month,
		Day:     int(date),
		Hour:    int(hour),
		Minute:  int(min),
		Second:  int(sec),
		Weekday: weekday,
	})
	if err != nil {
		return err
	}
	return d.SetCalendar(t)
}

// The single field setters change one field of the snapshot and write all time registers
// back, so call UpdateTime first unless the snapshot is known to be current.

func (d *Device) SetSeconds(v uint8) error {
	t := d.now
	t.Second = v
	return d.SetCalendar(t)
}

func (d *Device) SetMinutes(v uint8) error {
	t := d.now
	t.Minute = v
	return d.SetCalendar(t)
}

// SetHours sets the hour in 24-hour form.
func (d *Device) SetHours(v uint8) error {
	t := d.now
	t.Hour = v
	return d.SetCalendar(t)
}

func (d *Device) SetDate(v uint8) error {
	t := d.now
	t.Date = v
	return d.SetCalendar(t)
}

func (d *Device) SetWeekday(v time.Weekday) error {
	t := d.now
	t.Weekday = v
	return d.SetCalendar(t)
}

func (d *Device) SetMonth(v time.Month) error {
	t := d.now
	t.Month = v
	return d.SetCalendar(t)
}

// SetYear sets the full year, 2000-2099.
func (d *Device) SetYear(v int) error {
	if v < calendar.BaseYear || v > calendar.BaseYear+99 {
		return fmt.Errorf("%w: year %d", calendar.ErrFieldRange, v)
	}
	t := d.now
	t.Year = uint8(v - calendar.BaseYear)
	return d.SetCalendar(t)
}

// ResetHundredths clears the hundredths register and the clock prescaler by pulsing the
// reset bit.
func (d *Device) ResetHundredths() error {
	if err := d.writeBit(Control, controlReset, true); err != nil {
		return err
	}
	return d.writeBit(Control, controlReset, false)
}

// SetToBuildTime sets the clock to the commit time recorded in the binary's build info.
func (d *Device) SetToBuildTime() error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrNoBuildTime
	}
	for _, s := range info.Settings {
		if s.Key != "vcs.time" {
			continue
		}
		t, err := time.Parse(time.RFC3339, s.Value)
		if err != nil {
			return fmt.Errorf("rv8803: build time: %w", err)
		}
		return d.Set(t)
	}
	return ErrNoBuildTime
}

func (d *Device) Hundredths() uint8 {
	return d.now.Hundredths
}

func (d *Device) Seconds() uint8 {
	return d.now.Second
}

func (d *Device) Minutes() uint8 {
	return d.now.Minute
}

// Hours returns the hour, on a 12-hour dial if configured so.
func (d *Device) Hours() uint8 {
	if d.twelveHour {
		h, _ := d.now.Hour12()
		return h
	}
	return d.now.Hour
}

func (d *Device) Date() uint8 {
	return d.now.Date
}

func (d *Device) Weekday() time.Weekday {
	return d.now.Weekday
}

func (d *Device) Month() time.Month {
	return d.now.Month
}

// Year returns the full year.
func (d *Device) Year() int {
	return d.now.FullYear()
}

func (d *Device) Set12Hour() {
	d.twelveHour = true
}

func (d *Device) Set24Hour() {
	d.twelveHour = false
}

func (d *Device) Is12Hour() bool {
	return d.twelveHour
}

// IsPM reports whether the driver is in 12-hour mode and the snapshot is past noon.
func (d *Device) IsPM() bool {
	return d.twelveHour && d.now.Hour >= 12
}

func (d *Device) read8(reg uint8) (uint8, error) {
	buf := [1]byte{}
	err := d.bus.ReadRegister(d.Address, reg, buf[:])
	return buf[0], err
}

func (d *Device) write8(reg, val uint8) error {
	buf := [1]byte{val}
	return d.bus.WriteRegister(d.Address, reg, buf[:])
}

func (d *Device) readBit(reg, bit uint8) (bool, error) {
	v, err := d.read8(reg)
	return v&(1<<bit) != 0, err
}

func (d *Device) readTwoBits(reg, bit uint8) (uint8, error) {
	v, err := d.read8(reg)
	return (v >> bit) & 0b11, err
}

func (d *Device) writeBit(reg, bit uint8, set bool) error {
	v, err := d.read8(reg)
	if err != nil {
		return err
	}
	v &^= 1 << bit
	if set {
		v |= 1 << bit
	}
	return d.write8(reg, v)
}

func (d *Device) writeTwoBits(reg, bit, val uint8) error {
	v, err := d.read8(reg)
	if err != nil {
		return err
	}
	v &^= 0b11 << bit
	v |= (val & 0b11) << bit
	return d.write8(reg, v)
}
