package calendar

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// QuarterHour is the resolution of a Zone.
const QuarterHour = 15 * time.Minute

// ErrZone is returned for offsets that cannot be stored as a Zone.
var ErrZone = errors.New("calendar: offset not representable as a zone")

// Zone is a UTC offset counted in quarter hours. RTC drivers keep it in a single byte of
// battery-backed user RAM as a two's-complement value.
type Zone int8

// ZoneOf converts a UTC offset to a Zone. The offset must be a whole number of quarter hours.
func ZoneOf(offset time.Duration) (Zone, error) {
	if offset%QuarterHour != 0 {
		return 0, fmt.Errorf("%w: %v is not a whole quarter hour", ErrZone, offset)
	}
	q := offset / QuarterHour
	if q < math.MinInt8 || q > math.MaxInt8 {
		return 0, fmt.Errorf("%w: %v", ErrZone, offset)
	}
	return Zone(q), nil
}

// ZoneFromByte interprets a raw RAM byte.
func ZoneFromByte(b uint8) Zone {
	return Zone(int8(b))
}

// Byte returns the raw RAM byte for z.
func (z Zone) Byte() uint8 {
	return uint8(z)
}

// Offset returns z as a duration east of UTC.
func (z Zone) Offset() time.Duration {
	return time.Duration(z) * QuarterHour
}

// Seconds returns z in seconds east of UTC.
func (z Zone) Seconds() int64 {
	return int64(z) * int64(QuarterHour/time.Second)
}

// Location returns a fixed time.Location for z.
func (z Zone) Location() *time.Location {
	return time.FixedZone(z.String(), int(z.Seconds()))
}

// String formats z as +hh:mm or -hh:mm.
func (z Zone) String() string {
	sign := '+'
	q := int(z)
	if q < 0 {
		sign = '-'
		q = -q
	}
	return fmt.Sprintf("%c%02d:%02d", sign, q/4, (q%4)*15)
}

// LocalEpoch shifts a UTC epoch value into the local view of zone z.
func LocalEpoch(utc int64, z Zone) int64 {
	return utc + z.Seconds()
}

// UTCEpoch shifts a local epoch value of zone z back to UTC.
func UTCEpoch(local int64, z Zone) int64 {
	return local - z.Seconds()
}
