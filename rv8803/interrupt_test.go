package rv8803

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestInterrupts(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	fake.Registers[Control] = 0b0000_0001

	c.Assert(dev.EnableHardwareInterrupt(InterruptAlarm), qt.IsNil)
	c.Assert(dev.EnableHardwareInterrupt(InterruptTimer), qt.IsNil)
	c.Assert(fake.Registers[Control], qt.Equals, uint8(0b0001_1001))

	c.Assert(dev.DisableHardwareInterrupt(InterruptTimer), qt.IsNil)
	c.Assert(fake.Registers[Control], qt.Equals, uint8(0b0000_1001))

	c.Assert(dev.EnableHardwareInterrupt(InterruptUpdate), qt.IsNil)
	c.Assert(dev.DisableAllInterrupts(), qt.IsNil)
	c.Assert(fake.Registers[Control], qt.Equals, uint8(0b0000_0001))
}

func TestStatus(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	fake.Registers[Flag] = 0b0010_1010

	s, err := dev.Status()
	c.Assert(err, qt.IsNil)
	c.Assert(s.Has(FlagAlarm), qt.IsTrue)
	c.Assert(s.Has(FlagTimer), qt.IsFalse)
	c.Assert(s.LostPower(), qt.IsTrue)
	c.Assert(s.String(), qt.Equals, "V2F|AF|UF")

	c.Assert(dev.ClearInterruptFlag(FlagAlarm), qt.IsNil)
	alarm, err := dev.InterruptFlag(FlagAlarm)
	c.Assert(err, qt.IsNil)
	c.Assert(alarm, qt.IsFalse)
	c.Assert(fake.Registers[Flag], qt.Equals, uint8(0b0010_0010))

	c.Assert(dev.ClearAllInterruptFlags(), qt.IsNil)
	c.Assert(fake.Registers[Flag], qt.Equals, uint8(0))
}
