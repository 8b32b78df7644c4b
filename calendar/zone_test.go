package calendar

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestLocalUTCEpoch(t *testing.T) {
	c := qt.New(t)
	c.Assert(UTCEpoch(1700000000, -16), qt.Equals, int64(1700014400))
	c.Assert(LocalEpoch(1700000000, -16), qt.Equals, int64(1699985600))

	for _, e := range []int64{0, 1, 762566400, 1700000000, -86400} {
		for q := -32; q <= 31; q++ {
			c.Assert(LocalEpoch(UTCEpoch(e, Zone(q)), Zone(q)), qt.Equals, e)
		}
	}
}

func TestZoneByte(t *testing.T) {
	c := qt.New(t)
	c.Assert(ZoneFromByte(0xF0), qt.Equals, Zone(-16))
	c.Assert(Zone(-16).Byte(), qt.Equals, uint8(0xF0))
	c.Assert(ZoneFromByte(0x16), qt.Equals, Zone(22))
}

func TestZoneOf(t *testing.T) {
	c := qt.New(t)
	z, err := ZoneOf(5*time.Hour + 45*time.Minute)
	c.Assert(err, qt.IsNil)
	c.Assert(z, qt.Equals, Zone(23))
	c.Assert(z.String(), qt.Equals, "+05:45")
	c.Assert(z.Offset(), qt.Equals, 5*time.Hour+45*time.Minute)

	z, err = ZoneOf(-4 * time.Hour)
	c.Assert(err, qt.IsNil)
	c.Assert(z.String(), qt.Equals, "-04:00")

	_, err = ZoneOf(10 * time.Minute)
	c.Assert(err, qt.ErrorIs, ErrZone)
	_, err = ZoneOf(40 * time.Hour)
	c.Assert(err, qt.ErrorIs, ErrZone)
}

func TestZoneLocation(t *testing.T) {
	c := qt.New(t)
	loc := Zone(-16).Location()
	_, offset := time.Unix(1700000000, 0).In(loc).Zone()
	c.Assert(offset, qt.Equals, -4*3600)
}
