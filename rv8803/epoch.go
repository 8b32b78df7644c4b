package rv8803

import (
	"github.com/ajanata/drivers/calendar"
)

// Epoch returns the snapshot as seconds since the configured epoch. The chip is assumed to
// keep UTC.
func (d *Device) Epoch() (int64, error) {
	return d.conv.Epoch(d.now)
}

// SetEpoch sets the clock to the given number of seconds since the configured epoch.
func (d *Device) SetEpoch(epoch int64) error {
	t, err := d.conv.Time(epoch)
	if err != nil {
		return err
	}
	return d.SetCalendar(t)
}

// LocalEpoch returns the snapshot as seconds since the configured epoch, shifted into the time
// zone stored on the chip.
func (d *Device) LocalEpoch() (int64, error) {
	epoch, err := d.Epoch()
	if err != nil {
		return 0, err
	}
	z, err := d.TimeZone()
	if err != nil {
		return 0, err
	}
	return calendar.LocalEpoch(epoch, z), nil
}

// SetLocalEpoch sets the clock from a local epoch value in the time zone stored on the chip.
func (d *Device) SetLocalEpoch(local int64) error {
	z, err := d.TimeZone()
	if err != nil {
		return err
	}
	return d.SetEpoch(calendar.UTCEpoch(local, z))
}

// TimeZone returns the time zone kept in user RAM.
func (d *Device) TimeZone() (calendar.Zone, error) {
	v, err := d.read8(RAM)
	return calendar.ZoneFromByte(v), err
}

// SetTimeZone stores z in user RAM. The chip itself ignores it.
func (d *Device) SetTimeZone(z calendar.Zone) error {
	return d.write8(RAM, z.Byte())
}

// Converter returns the epoch converter configured for this device.
func (d *Device) Converter() calendar.Converter {
	return d.conv
}
