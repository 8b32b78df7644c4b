package rv8803

import "strings"

// Interrupt is an interrupt source, identified by its enable bit in the control register.
type Interrupt uint8

const (
	InterruptEvent  Interrupt = 2
	InterruptAlarm  Interrupt = 3
	InterruptTimer  Interrupt = 4
	InterruptUpdate Interrupt = 5
)

// StatusFlag is a bit of the flag register.
type StatusFlag uint8

const (
	FlagLowVoltage1 StatusFlag = iota // temperature compensation stopped
	FlagLowVoltage2                   // data lost, the time needs to be set
	FlagEvent
	FlagAlarm
	FlagTimer
	FlagUpdate
)

var flagNames = [...]string{"V1F", "V2F", "EVF", "AF", "TF", "UF"}

// Status is the content of the flag register.
type Status uint8

// Has reports whether f is set.
func (r Status) Has(f StatusFlag) bool {
	return r&(1<<f) != 0
}

// LostPower reports whether the supply dropped low enough for the time to be invalid.
func (r Status) LostPower() bool {
	return r.Has(FlagLowVoltage2)
}

func (r Status) String() string {
	var set []string
	for i, name := range flagNames {
		if r.Has(StatusFlag(i)) {
			set = append(set, name)
		}
	}
	return strings.Join(set, "|")
}

func (d *Device) EnableHardwareInterrupt(i Interrupt) error {
	return d.writeBit(Control, uint8(i), true)
}

func (d *Device) DisableHardwareInterrupt(i Interrupt) error {
	return d.writeBit(Control, uint8(i), false)
}

// DisableAllInterrupts clears every interrupt enable bit, leaving the reset bit alone.
func (d *Device) DisableAllInterrupts() error {
	v, err := d.read8(Control)
	if err != nil {
		return err
	}
	return d.write8(Control, v&(1<<controlReset))
}

// Status reads the flag register. A single read returns every flag so they can be checked
// with one bus transaction.
func (d *Device) Status() (Status, error) {
	v, err := d.read8(Flag)
	return Status(v), err
}

func (d *Device) InterruptFlag(f StatusFlag) (bool, error) {
	s, err := d.Status()
	return s.Has(f), err
}

func (d *Device) ClearInterruptFlag(f StatusFlag) error {
	return d.writeBit(Flag, uint8(f), false)
}

func (d *Device) ClearAllInterruptFlags() error {
	return d.write8(Flag, 0)
}
