package calendar

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestEpochRoundTrip(t *testing.T) {
	c := qt.New(t)
	for _, ref := range []Reference{Epoch2000, Epoch1970} {
		conv := Converter{Reference: ref}
		for year := 0; year <= 99; year += 3 {
			for month := time.January; month <= time.December; month++ {
				for _, day := range []int{1, 15, 28} {
					std := time.Date(BaseYear+year, month, day, (year+day)%24, int(month)*4, day*2, 0, time.UTC)
					tt, err := FromTime(std)
					c.Assert(err, qt.IsNil)

					epoch, err := conv.Epoch(tt)
					c.Assert(err, qt.IsNil)
					c.Assert(epoch, qt.Equals, std.Unix()-ref.Unix(), qt.Commentf("%v since %v", std, ref))

					back, err := conv.Time(epoch)
					c.Assert(err, qt.IsNil)
					c.Assert(back, qt.Equals, tt)
				}
			}
		}
	}
}

func TestEpochLeapDay(t *testing.T) {
	c := qt.New(t)
	epoch, err := Converter{}.Epoch(Time{Date: 1, Month: time.March, Year: 24, Weekday: time.Friday})
	c.Assert(err, qt.IsNil)

	days := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC).Sub(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)) / (24 * time.Hour)
	c.Assert(int64(days), qt.Equals, int64(8826))
	c.Assert(epoch, qt.Equals, int64(days)*86400)
	c.Assert(epoch, qt.Equals, int64(762566400))

	feb29, err := Converter{}.Epoch(Time{Date: 29, Month: time.February, Year: 24, Weekday: time.Thursday})
	c.Assert(err, qt.IsNil)
	c.Assert(epoch-feb29, qt.Equals, int64(86400))
}

func TestEpochInvalid(t *testing.T) {
	c := qt.New(t)
	conv := Converter{}
	for _, m := range []time.Month{0, 13} {
		_, err := conv.Seconds(Civil{Year: 2024, Month: m, Day: 1})
		c.Assert(err, qt.ErrorIs, ErrInvalidTime)
	}

	_, err := conv.Seconds(Civil{Year: 1999, Month: time.December, Day: 31})
	c.Assert(err, qt.ErrorIs, ErrInvalidTime)

	_, err = Converter{Reference: Epoch1970}.Seconds(Civil{Year: 1969, Month: time.December, Day: 31})
	c.Assert(err, qt.ErrorIs, ErrInvalidTime)

	secs, err := Converter{Reference: Epoch1970}.Seconds(Civil{Year: 1999, Month: time.December, Day: 31})
	c.Assert(err, qt.IsNil)
	c.Assert(secs, qt.Equals, int64(unixOffset-86400))
}

func TestTimeOutsideWindow(t *testing.T) {
	c := qt.New(t)
	conv := Converter{Reference: Epoch1970}
	_, err := conv.Time(0)
	c.Assert(err, qt.ErrorIs, ErrInvalidTime)
	_, err = conv.Time(time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC).Unix())
	c.Assert(err, qt.ErrorIs, ErrInvalidTime)
}

// leap at the end of 2016-12-31
var leapAt = time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()

// rightUTC decodes a second count that includes the leap second inserted at leapAt, the way a
// "right/" zoneinfo decoder does.
func rightUTC(s int64) Civil {
	switch {
	case s < leapAt:
		return UTC(s)
	case s == leapAt:
		c := UTC(s - 1)
		c.Second = 60
		return c
	default:
		return UTC(s - 1)
	}
}

func TestSecondsLeapAwareDecoder(t *testing.T) {
	conv := Converter{Reference: Epoch1970, Decode: rightUTC}
	june2017 := time.Date(2017, time.June, 1, 12, 0, 30, 0, time.UTC).Unix()
	june2016 := time.Date(2016, time.June, 1, 12, 0, 30, 0, time.UTC).Unix()
	tests := []struct {
		name string
		in   Civil
		want int64
	}{
		{"before leap", Civil{Year: 2016, Month: time.June, Day: 1, Hour: 12, Second: 30}, june2016},
		{"leap second", Civil{Year: 2016, Month: time.December, Day: 31, Hour: 23, Minute: 59, Second: 60}, leapAt},
		{"first second after leap", Civil{Year: 2017, Month: time.January, Day: 1}, leapAt + 1},
		{"after leap", Civil{Year: 2017, Month: time.June, Day: 1, Hour: 12, Second: 30}, june2017 + 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := qt.New(t)
			got, err := conv.Seconds(test.in)
			c.Assert(err, qt.IsNil)
			c.Assert(got, qt.Equals, test.want)
			c.Assert(rightUTC(got).Second, qt.Equals, test.in.Second)
		})
	}
}

func TestSecondsLeapSecondWithoutLeapDecoder(t *testing.T) {
	c := qt.New(t)
	got, err := Converter{Reference: Epoch1970}.Seconds(Civil{Year: 2016, Month: time.December, Day: 31, Hour: 23, Minute: 59, Second: 60})
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, leapAt)
}

func TestSecondsBestEffort(t *testing.T) {
	c := qt.New(t)
	stuck := func(s int64) Civil {
		civil := UTC(s)
		civil.Second = 0
		return civil
	}
	in := Civil{Year: 2020, Month: time.May, Day: 5, Hour: 5, Minute: 5, Second: 30}
	guess := time.Date(2020, time.May, 5, 5, 5, 30, 0, time.UTC).Unix()

	got, err := Converter{Reference: Epoch1970, Decode: stuck}.Seconds(in)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, guess+31)
}
