package rv8803

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestCalibrationOffset(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)

	tests := []struct {
		ppm   float32
		reg   uint8
		steps int
	}{
		{0, 0x00, 0},
		{1.0, 0x04, 4},
		{-1.0, 0x3C, -4},
		{7.4, 0x1F, 31},
		{100, 0x1F, 31},
		{-7.63, 0x20, -32},
		{-100, 0x20, -32},
	}
	for _, test := range tests {
		c.Assert(dev.SetCalibrationOffset(test.ppm), qt.IsNil)
		c.Assert(fake.Registers[Offset], qt.Equals, test.reg, qt.Commentf("%v ppm", test.ppm))
		got, err := dev.CalibrationOffset()
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, float32(test.steps)*PPMPerStep)
	}
}

func TestCalibrationOffsetNotFinite(t *testing.T) {
	c := qt.New(t)
	dev, fake := newDevice(c)
	fake.Registers[Offset] = 0x04

	for _, ppm := range []float32{float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))} {
		err := dev.SetCalibrationOffset(ppm)
		c.Assert(err, qt.ErrorMatches, `rv8803: calibration offset .* ppm is not finite`)
		c.Assert(fake.Registers[Offset], qt.Equals, uint8(0x04))
	}
}
