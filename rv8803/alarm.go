package rv8803

import (
	"time"

	"github.com/ajanata/drivers/calendar"
)

// SetItemsToMatchForAlarm selects which alarm fields have to match the current time for the
// alarm to fire. The weekday and date alarms share a register; when both are requested the
// date alarm wins.
func (d *Device) SetItemsToMatchForAlarm(minute, hour, weekday, date bool) error {
	// the enable bits are active low
	err := d.writeBit(MinutesAlarm, alarmEnable, !minute)
	if err != nil {
		return err
	}
	err = d.writeBit(HoursAlarm, alarmEnable, !hour)
	if err != nil {
		return err
	}
	err = d.writeBit(Extension, extensionWADA, date)
	if err != nil {
		return err
	}
	return d.writeBit(WeekdaysDateAlarm, alarmEnable, !(weekday || date))
}

// AlarmDateSelected reports whether the shared weekday/date alarm register holds a date.
func (d *Device) AlarmDateSelected() (bool, error) {
	return d.readBit(Extension, extensionWADA)
}

func (d *Device) SetAlarmMinutes(minute uint8) error {
	if minute > 59 {
		return calendar.ErrFieldRange
	}
	return d.writeAlarm(MinutesAlarm, int(minute))
}

func (d *Device) SetAlarmHours(hour uint8) error {
	if hour > 23 {
		return calendar.ErrFieldRange
	}
	return d.writeAlarm(HoursAlarm, int(hour))
}

// SetAlarmWeekdays makes the weekday alarm match any of the given days.
func (d *Device) SetAlarmWeekdays(days ...time.Weekday) error {
	mask, err := calendar.WeekdayMask(days...)
	if err != nil {
		return err
	}
	return d.writeAlarmRaw(WeekdaysDateAlarm, mask)
}

func (d *Device) SetAlarmDate(date uint8) error {
	if date < 1 || date > 31 {
		return calendar.ErrFieldRange
	}
	return d.writeAlarm(WeekdaysDateAlarm, int(date))
}

func (d *Device) AlarmMinutes() (uint8, error) {
	return d.decode(MinutesAlarm, 0x7F)
}

func (d *Device) AlarmHours() (uint8, error) {
	return d.decode(HoursAlarm, 0x3F)
}

// AlarmWeekdays returns the days the weekday alarm matches. The result is only meaningful when
// the weekday alarm is selected.
func (d *Device) AlarmWeekdays() ([]time.Weekday, error) {
	v, err := d.read8(WeekdaysDateAlarm)
	if err != nil {
		return nil, err
	}
	return calendar.Weekdays(v), nil
}

// AlarmDate returns the day of month of the date alarm. The result is only meaningful when the
// date alarm is selected.
func (d *Device) AlarmDate() (uint8, error) {
	return d.decode(WeekdaysDateAlarm, 0x3F)
}

func (d *Device) writeAlarm(reg uint8, dec int) error {
	bcd, err := calendar.ToBCD(dec)
	if err != nil {
		return err
	}
	return d.writeAlarmRaw(reg, bcd)
}

// writeAlarmRaw replaces the value bits of an alarm register, keeping its enable bit.
func (d *Device) writeAlarmRaw(reg, val uint8) error {
	v, err := d.read8(reg)
	if err != nil {
		return err
	}
	v &= 1 << alarmEnable
	v |= val &^ (1 << alarmEnable)
	return d.write8(reg, v)
}
