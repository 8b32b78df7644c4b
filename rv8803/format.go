package rv8803

import (
	"fmt"

	"github.com/ajanata/drivers/calendar"
)

// StringDate returns the snapshot date as dd/mm/yyyy.
func (d *Device) StringDate() string {
	return d.now.DateString()
}

// StringDateUSA returns the snapshot date as mm/dd/yyyy.
func (d *Device) StringDateUSA() string {
	return d.now.USADateString()
}

// StringTime returns the snapshot time as hh:mm:ss, with an AM/PM suffix in 12-hour mode.
func (d *Device) StringTime() string {
	return d.now.ClockString(d.twelveHour)
}

// StringTime8601 returns the snapshot as yyyy-mm-ddThh:mm:ss.
func (d *Device) StringTime8601() string {
	return d.now.ISO8601()
}

// StringTime8601Zone returns the snapshot shifted into the stored time zone as
// yyyy-mm-ddThh:mm:ss±hh:mm.
func (d *Device) StringTime8601Zone() (string, error) {
	epoch, err := d.Epoch()
	if err != nil {
		return "", err
	}
	z, err := d.TimeZone()
	if err != nil {
		return "", err
	}
	t, err := d.conv.Time(calendar.LocalEpoch(epoch, z))
	if err != nil {
		return "", err
	}
	return t.ISO8601Zone(z), nil
}

// StringTimestamp returns the time of the last event captured on the EVI pin as hh:mm:ss:HH,
// taking hours and minutes from the snapshot, with an AM/PM suffix in 12-hour mode.
func (d *Device) StringTimestamp() (string, error) {
	sec, err := d.SecondsCapture()
	if err != nil {
		return "", err
	}
	hundredths, err := d.HundredthsCapture()
	if err != nil {
		return "", err
	}
	if !d.twelveHour {
		return fmt.Sprintf("%02d:%02d:%02d:%02d", d.now.Hour, d.now.Minute, sec, hundredths), nil
	}
	hour, pm := d.now.Hour12()
	half := "AM"
	if pm {
		half = "PM"
	}
	return fmt.Sprintf("%02d:%02d:%02d:%02d%s", hour, d.now.Minute, sec, hundredths, half), nil
}

func (d *Device) decode(reg, mask uint8) (uint8, error) {
	v, err := d.read8(reg)
	if err != nil {
		return 0, err
	}
	return calendar.FromBCD(v & mask)
}
