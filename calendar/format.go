package calendar

import "fmt"

// DateString formats t as dd/mm/yyyy.
func (t Time) DateString() string {
	return fmt.Sprintf("%02d/%02d/%04d", t.Date, int(t.Month), t.FullYear())
}

// USADateString formats t as mm/dd/yyyy.
func (t Time) USADateString() string {
	return fmt.Sprintf("%02d/%02d/%04d", int(t.Month), t.Date, t.FullYear())
}

// Hour12 returns the hour on a 12-hour dial (1-12) and whether it is after noon.
func (t Time) Hour12() (hour uint8, pm bool) {
	hour = t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return hour, t.Hour >= 12
}

// ClockString formats the time of day as hh:mm:ss, or hh:mm:ssAM / hh:mm:ssPM on a 12-hour
// dial.
func (t Time) ClockString(twelveHour bool) string {
	if !twelveHour {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	hour, pm := t.Hour12()
	half := "AM"
	if pm {
		half = "PM"
	}
	return fmt.Sprintf("%02d:%02d:%02d%s", hour, t.Minute, t.Second, half)
}

// ISO8601 formats t as yyyy-mm-ddThh:mm:ss.
func (t Time) ISO8601() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		t.FullYear(), int(t.Month), t.Date, t.Hour, t.Minute, t.Second)
}

// ISO8601Zone formats t as yyyy-mm-ddThh:mm:ss±hh:mm, t being a local reading of zone z.
func (t Time) ISO8601Zone(z Zone) string {
	return t.ISO8601() + z.String()
}

func (t Time) String() string {
	return t.ISO8601()
}
