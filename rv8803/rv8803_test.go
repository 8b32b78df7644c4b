package rv8803

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/ajanata/drivers/calendar"
	"github.com/ajanata/drivers/tester"
)

func newDevice(c *qt.C) (*Device, *tester.I2CDevice8) {
	bus := tester.NewI2CBus(c)
	fake := bus.NewDevice(Address)
	dev := New(bus)
	return &dev, fake
}

// 2024-03-01 12:34:56.78, a Friday
var friday = []uint8{0x78, 0x56, 0x34, 0x12, 0b0010_0000, 0x01, 0x03, 0x24}

func TestConnected(t *testing.T) {
	c := qt.New(t)
	dev, _ := newDevice(c)
	c.Assert(dev.Connected(), qt.IsTrue)

	other := New(tester.NewI2CBus(c))
	c.Assert(other.Connected(), qt.IsFalse)
}

func TestUpdateTime(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	copy(fake.Registers[Hundredths:], friday)
	// bits outside the calendar fields must be ignored
	fake.Registers[Seconds] |= 0x80
	fake.Registers[Months] |= 0xE0

	c.Assert(dev.UpdateTime(), qt.IsNil)
	c.Assert(dev.Hundredths(), qt.Equals, uint8(78))
	c.Assert(dev.Seconds(), qt.Equals, uint8(56))
	c.Assert(dev.Minutes(), qt.Equals, uint8(34))
	c.Assert(dev.Hours(), qt.Equals, uint8(12))
	c.Assert(dev.Weekday(), qt.Equals, time.Friday)
	c.Assert(dev.Date(), qt.Equals, uint8(1))
	c.Assert(dev.Month(), qt.Equals, time.March)
	c.Assert(dev.Year(), qt.Equals, 2024)

	now, err := dev.Now()
	c.Assert(err, qt.IsNil)
	c.Assert(now.Equal(time.Date(2024, time.March, 1, 12, 34, 56, 780*int(time.Millisecond), time.UTC)), qt.IsTrue)
}

func TestUpdateTimeInvalidRegisters(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	copy(fake.Registers[Hundredths:], friday)
	fake.Registers[Weekdays] = 0b0000_0011
	c.Assert(dev.UpdateTime(), qt.ErrorIs, calendar.ErrInvalidWeekday)
}

func TestUpdateTimeMinuteRollover(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	copy(fake.Registers[Hundredths:], friday)
	fake.Registers[Seconds] = 0x59
	reads := 0
	fake.BeforeRead = func(d *tester.I2CDevice8, r uint8) {
		reads++
		if reads == 2 {
			d.Registers[Hundredths] = 0x01
			d.Registers[Seconds] = 0x00
			d.Registers[Minutes] = 0x35
		}
	}
	c.Assert(dev.UpdateTime(), qt.IsNil)
	c.Assert(reads, qt.Equals, 2)
	c.Assert(dev.Minutes(), qt.Equals, uint8(35))
	c.Assert(dev.Seconds(), qt.Equals, uint8(0))
}

func TestUpdateTimeSecondReadStillInSameMinute(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	copy(fake.Registers[Hundredths:], friday)
	fake.Registers[Seconds] = 0x59
	reads := 0
	fake.BeforeRead = func(d *tester.I2CDevice8, r uint8) {
		reads++
		if reads == 2 {
			d.Registers[Hundredths] = 0x99
		}
	}
	c.Assert(dev.UpdateTime(), qt.IsNil)
	c.Assert(reads, qt.Equals, 2)
	c.Assert(dev.Hundredths(), qt.Equals, uint8(78))
	c.Assert(dev.Seconds(), qt.Equals, uint8(59))
}

func TestSet(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	fake.Registers[Hundredths] = 0x42

	err := dev.Set(time.Date(2006, time.January, 2, 15, 4, 5, 0, time.FixedZone("", 3600)))
	c.Assert(err, qt.IsNil)
	c.Assert(fake.Registers[Hundredths:Years+1], qt.DeepEquals,
		[]uint8{0x42, 0x05, 0x04, 0x14, 0b0000_0010, 0x02, 0x01, 0x06})
	c.Assert(fake.Writes, qt.DeepEquals, []uint8{Seconds})

	err = dev.Set(time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC))
	c.Assert(err, qt.ErrorIs, calendar.ErrFieldRange)
}

func TestSetTime(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	c.Assert(dev.SetTime(56, 34, 12, time.Friday, 1, time.March, 2024), qt.IsNil)
	c.Assert(fake.Registers[Seconds:Years+1], qt.DeepEquals, friday[1:])
	c.Assert(dev.SetTime(0, 0, 0, time.Friday, 1, time.March, 1999), qt.ErrorIs, calendar.ErrFieldRange)
}

func TestSingleFieldSetters(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	copy(fake.Registers[Hundredths:], friday)
	c.Assert(dev.UpdateTime(), qt.IsNil)

	c.Assert(dev.SetHours(23), qt.IsNil)
	c.Assert(fake.Registers[Hours], qt.Equals, uint8(0x23))
	c.Assert(dev.SetMinutes(7), qt.IsNil)
	c.Assert(fake.Registers[Minutes], qt.Equals, uint8(0x07))
	c.Assert(dev.SetSeconds(9), qt.IsNil)
	c.Assert(fake.Registers[Seconds], qt.Equals, uint8(0x09))
	c.Assert(dev.SetDate(31), qt.IsNil)
	c.Assert(fake.Registers[Date], qt.Equals, uint8(0x31))
	c.Assert(dev.SetMonth(time.December), qt.IsNil)
	c.Assert(fake.Registers[Months], qt.Equals, uint8(0x12))
	c.Assert(dev.SetWeekday(time.Sunday), qt.IsNil)
	c.Assert(fake.Registers[Weekdays], qt.Equals, uint8(0b0000_0001))
	c.Assert(dev.SetYear(2099), qt.IsNil)
	c.Assert(fake.Registers[Years], qt.Equals, uint8(0x99))

	c.Assert(dev.SetHours(24), qt.ErrorIs, calendar.ErrFieldRange)
	c.Assert(dev.SetWeekday(7), qt.ErrorIs, calendar.ErrFieldRange)
	c.Assert(dev.SetYear(2100), qt.ErrorIs, calendar.ErrFieldRange)
	c.Assert(fake.Registers[Hours], qt.Equals, uint8(0x23))
}

func TestTwelveHour(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	dev.Configure(Config{TwelveHour: true})
	copy(fake.Registers[Hundredths:], friday)
	fake.Registers[Hours] = 0x15
	c.Assert(dev.UpdateTime(), qt.IsNil)

	c.Assert(dev.Is12Hour(), qt.IsTrue)
	c.Assert(dev.Hours(), qt.Equals, uint8(3))
	c.Assert(dev.IsPM(), qt.IsTrue)
	c.Assert(dev.StringTime(), qt.Equals, "03:34:56PM")

	dev.Set24Hour()
	c.Assert(dev.IsPM(), qt.IsFalse)
	c.Assert(dev.Hours(), qt.Equals, uint8(15))
	c.Assert(dev.StringTime(), qt.Equals, "15:34:56")
}

func TestStrings(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	copy(fake.Registers[Hundredths:], friday)
	c.Assert(dev.UpdateTime(), qt.IsNil)

	c.Assert(dev.StringDate(), qt.Equals, "01/03/2024")
	c.Assert(dev.StringDateUSA(), qt.Equals, "03/01/2024")
	c.Assert(dev.StringTime8601(), qt.Equals, "2024-03-01T12:34:56")

	fake.Registers[RAM] = calendar.Zone(-16).Byte()
	s, err := dev.StringTime8601Zone()
	c.Assert(err, qt.IsNil)
	c.Assert(s, qt.Equals, "2024-03-01T08:34:56-04:00")

	fake.Registers[SecondsCapture] = 0x21
	fake.Registers[HundredthsCapture] = 0x05
	s, err = dev.StringTimestamp()
	c.Assert(err, qt.IsNil)
	c.Assert(s, qt.Equals, "12:34:21:05")

	dev.Set12Hour()
	s, err = dev.StringTimestamp()
	c.Assert(err, qt.IsNil)
	c.Assert(s, qt.Equals, "12:34:21:05PM")
}

func TestResetHundredths(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	fake.Registers[Control] = 0b0000_1000
	c.Assert(dev.ResetHundredths(), qt.IsNil)
	c.Assert(fake.Writes, qt.DeepEquals, []uint8{Control, Control})
	c.Assert(fake.Registers[Control], qt.Equals, uint8(0b0000_1000))
}

func TestBusErrorsPropagate(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	fake.Err = tester.ErrNoDevice
	c.Assert(dev.UpdateTime(), qt.ErrorIs, tester.ErrNoDevice)
	c.Assert(dev.Set(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)), qt.ErrorIs, tester.ErrNoDevice)
	_, err := dev.TimeZone()
	c.Assert(err, qt.ErrorIs, tester.ErrNoDevice)
	c.Assert(dev.Connected(), qt.IsFalse)
}
