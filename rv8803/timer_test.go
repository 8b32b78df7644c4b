package rv8803

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestCountdownTimer(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	fake.Registers[Timer1] = 0x50

	c.Assert(dev.SetCountdownTimerClockTicks(0xABC), qt.IsNil)
	c.Assert(fake.Registers[Timer0], qt.Equals, uint8(0xBC))
	c.Assert(fake.Registers[Timer1], qt.Equals, uint8(0x5A))
	ticks, err := dev.CountdownTimerClockTicks()
	c.Assert(err, qt.IsNil)
	c.Assert(ticks, qt.Equals, uint16(0xABC))

	c.Assert(dev.SetCountdownTimerClockTicks(MaxTimerTicks+1), qt.ErrorMatches, "rv8803: 4096 timer ticks out of range")

	c.Assert(dev.SetCountdownTimerFrequency(TimerFrequencyOnePerMinute), qt.IsNil)
	c.Assert(dev.SetCountdownTimerEnable(true), qt.IsNil)
	c.Assert(fake.Registers[Extension], qt.Equals, uint8(0b0001_0011))

	f, err := dev.CountdownTimerFrequency()
	c.Assert(err, qt.IsNil)
	c.Assert(f, qt.Equals, TimerFrequencyOnePerMinute)
	on, err := dev.CountdownTimerEnabled()
	c.Assert(err, qt.IsNil)
	c.Assert(on, qt.IsTrue)
}

func TestClockOutAndUpdate(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	fake.Registers[Extension] = 0b0000_0011

	c.Assert(dev.SetClockOutFrequency(ClockOut1Hz), qt.IsNil)
	c.Assert(fake.Registers[Extension], qt.Equals, uint8(0b0000_1011))
	f, err := dev.ClockOutFrequency()
	c.Assert(err, qt.IsNil)
	c.Assert(f, qt.Equals, ClockOut1Hz)

	c.Assert(dev.SetPeriodicTimeUpdateFrequency(UpdateEveryMinute), qt.IsNil)
	c.Assert(fake.Registers[Extension], qt.Equals, uint8(0b0010_1011))
	p, err := dev.PeriodicTimeUpdateFrequency()
	c.Assert(err, qt.IsNil)
	c.Assert(p, qt.Equals, UpdateEveryMinute)

	c.Assert(dev.SetPeriodicTimeUpdateFrequency(UpdateEverySecond), qt.IsNil)
	p, err = dev.PeriodicTimeUpdateFrequency()
	c.Assert(err, qt.IsNil)
	c.Assert(p, qt.Equals, UpdateEverySecond)
}
