package rv8803

// EVIDebounce is the digital filter applied to the external event input.
type EVIDebounce uint8

const (
	EVIDebounceNone EVIDebounce = iota
	EVIDebounce256Hz
	EVIDebounce64Hz
	EVIDebounce8Hz
)

func (d *Device) SetEVIDebounceTime(t EVIDebounce) error {
	return d.writeTwoBits(EventControl, eventET, uint8(t))
}

func (d *Device) EVIDebounceTime() (EVIDebounce, error) {
	v, err := d.readTwoBits(EventControl, eventET)
	return EVIDebounce(v), err
}

// SetEVICalibration makes an event reset the hundredths register and the prescaler, so the
// clock can be aligned to an external pulse.
func (d *Device) SetEVICalibration(enable bool) error {
	return d.writeBit(EventControl, eventERST, enable)
}

func (d *Device) EVICalibration() (bool, error) {
	return d.readBit(EventControl, eventERST)
}

// SetEVIEdgeDetection selects the active edge: true for rising, false for falling.
func (d *Device) SetEVIEdgeDetection(rising bool) error {
	return d.writeBit(EventControl, eventEHL, rising)
}

func (d *Device) EVIEdgeDetection() (rising bool, err error) {
	return d.readBit(EventControl, eventEHL)
}

// SetEVIEventCapture enables copying the seconds and hundredths into the capture registers on
// every event.
func (d *Device) SetEVIEventCapture(enable bool) error {
	return d.writeBit(EventControl, eventECP, enable)
}

func (d *Device) EVIEventCapture() (bool, error) {
	return d.readBit(EventControl, eventECP)
}

func (d *Device) HundredthsCapture() (uint8, error) {
	return d.decode(HundredthsCapture, 0xFF)
}

func (d *Device) SecondsCapture() (uint8, error) {
	return d.decode(SecondsCapture, 0x7F)
}
