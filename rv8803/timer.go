package rv8803

import "fmt"

// TimerFrequency is the clock of the countdown timer.
type TimerFrequency uint8

const (
	TimerFrequency4096Hz TimerFrequency = iota
	TimerFrequency64Hz
	TimerFrequency1Hz
	TimerFrequencyOnePerMinute
)

// ClockOutFrequency is the square wave on the CLKOUT pin.
type ClockOutFrequency uint8

const (
	ClockOut32768Hz ClockOutFrequency = iota
	ClockOut1024Hz
	ClockOut1Hz
)

// UpdatePeriod is the period of the periodic time update interrupt.
type UpdatePeriod uint8

const (
	UpdateEverySecond UpdatePeriod = iota
	UpdateEveryMinute
)

// MaxTimerTicks is the largest countdown value; the timer counts 12 bits.
const MaxTimerTicks = 0x0FFF

func (d *Device) SetCountdownTimerEnable(enable bool) error {
	return d.writeBit(Extension, extensionTE, enable)
}

func (d *Device) CountdownTimerEnabled() (bool, error) {
	return d.readBit(Extension, extensionTE)
}

func (d *Device) SetCountdownTimerFrequency(f TimerFrequency) error {
	return d.writeTwoBits(Extension, extensionTD, uint8(f))
}

func (d *Device) CountdownTimerFrequency() (TimerFrequency, error) {
	v, err := d.readTwoBits(Extension, extensionTD)
	return TimerFrequency(v), err
}

// SetCountdownTimerClockTicks sets the countdown start value. The general purpose bits sharing
// the upper timer register are preserved.
func (d *Device) SetCountdownTimerClockTicks(ticks uint16) error {
	if ticks > MaxTimerTicks {
		return fmt.Errorf("rv8803: %d timer ticks out of range", ticks)
	}
	high, err := d.read8(Timer1)
	if err != nil {
		return err
	}
	high = high&0xF0 | uint8(ticks>>8)
	return d.bus.WriteRegister(d.Address, Timer0, []byte{uint8(ticks), high})
}

func (d *Device) CountdownTimerClockTicks() (uint16, error) {
	buf := [2]byte{}
	err := d.bus.ReadRegister(d.Address, Timer0, buf[:])
	return uint16(buf[1]&0x0F)<<8 | uint16(buf[0]), err
}

func (d *Device) SetClockOutFrequency(f ClockOutFrequency) error {
	return d.writeTwoBits(Extension, extensionFD, uint8(f))
}

func (d *Device) ClockOutFrequency() (ClockOutFrequency, error) {
	v, err := d.readTwoBits(Extension, extensionFD)
	return ClockOutFrequency(v), err
}

func (d *Device) SetPeriodicTimeUpdateFrequency(p UpdatePeriod) error {
	return d.writeBit(Extension, extensionUSEL, p == UpdateEveryMinute)
}

func (d *Device) PeriodicTimeUpdateFrequency() (UpdatePeriod, error) {
	minute, err := d.readBit(Extension, extensionUSEL)
	if minute {
		return UpdateEveryMinute, err
	}
	return UpdateEverySecond, err
}
