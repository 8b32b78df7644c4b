package pcf8523

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/ajanata/drivers/calendar"
	"github.com/ajanata/drivers/tester"
)

func newDevice(c *qt.C) (Device, *tester.I2CDevice8) {
	bus := tester.NewI2CBus(c)
	fake := bus.NewDevice(Address)
	return New(bus), fake
}

func TestSet(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	fake.Registers[Control1] = 0b1111_1111
	fake.Registers[Control3] = 0b1110_0000

	c.Assert(dev.Set(time.Date(2024, time.March, 1, 12, 34, 56, 0, time.UTC)), qt.IsNil)
	c.Assert(fake.Registers[Control1], qt.Equals, uint8(0b1000_0111))
	c.Assert(fake.Registers[Time:Time+7], qt.DeepEquals, []uint8{0x56, 0x34, 0x12, 0x01, 0x05, 0x03, 0x24})
	c.Assert(fake.Registers[Control3], qt.Equals, uint8(0))

	initialized, err := dev.Initialized()
	c.Assert(err, qt.IsNil)
	c.Assert(initialized, qt.IsTrue)

	c.Assert(dev.Set(time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)), qt.ErrorIs, calendar.ErrFieldRange)
}

func TestNow(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	// oscillator stopped, with stray bits above the minutes and month values
	copy(fake.Registers[Time:], []uint8{0x80 | 0x07, 0x80 | 0x59, 0x23, 0x31, 0x02, 0xE0 | 0x12, 0x99})

	now, err := dev.Now()
	c.Assert(err, qt.IsNil)
	c.Assert(now, qt.Equals, time.Date(2099, time.December, 31, 23, 59, 7, 0, time.UTC))

	lost, err := dev.LostPower()
	c.Assert(err, qt.IsNil)
	c.Assert(lost, qt.IsTrue)

	fake.Registers[Time+1] = 0x5A
	_, err = dev.Now()
	c.Assert(err, qt.ErrorIs, calendar.ErrInvalidBCD)

	fake.Registers[Time+1] = 0x00
	fake.Registers[Time+5] = 0x13
	_, err = dev.Calendar()
	c.Assert(err, qt.ErrorIs, calendar.ErrFieldRange)
}

func TestConnected(t *testing.T) {
	c := qt.New(t)
	dev, _ := newDevice(c)
	c.Assert(dev.Connected(), qt.IsTrue)
	dev.Address = 0x10
	c.Assert(dev.Connected(), qt.IsFalse)
}
