package rv8803

import (
	"fmt"
	"math"
)

// PPMPerStep is the frequency correction of one step of the offset register.
const PPMPerStep = 0.2384

// SetCalibrationOffset corrects the clock frequency by ppm parts per million, rounded to the
// nearest step and clamped to the -32..31 steps the 6-bit register can hold.
func (d *Device) SetCalibrationOffset(ppm float32) error {
	if math.IsNaN(float64(ppm)) || math.IsInf(float64(ppm), 0) {
		return fmt.Errorf("rv8803: calibration offset %v ppm is not finite", ppm)
	}
	steps := math.Round(float64(ppm) / PPMPerStep)
	if steps < -32 {
		steps = -32
	} else if steps > 31 {
		steps = 31
	}
	return d.write8(Offset, uint8(int8(steps))&0x3F)
}

// CalibrationOffset returns the frequency correction in parts per million.
func (d *Device) CalibrationOffset() (float32, error) {
	v, err := d.read8(Offset)
	if err != nil {
		return 0, err
	}
	// sign extend the 6-bit value
	steps := int8(v<<2) >> 2
	return float32(steps) * PPMPerStep, nil
}
