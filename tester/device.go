package tester

// I2CDevice8 represents a mock I2C device on a mock I2C bus with 8-bit registers.
type I2CDevice8 struct {
	c Failer
	// addr is the i2c device address.
	addr uint8
	// Registers holds the device registers. It can be inspected
	// or changed as desired for testing.
	Registers [256]uint8
	// If Err is non-nil, it will be returned as the error from the
	// I2C methods.
	Err error
	// BeforeRead, when set, runs before every register read with the first register about to be
	// read. Tests use it to make the device state change between two reads, like a clock
	// ticking over.
	BeforeRead func(d *I2CDevice8, r uint8)
	// Writes records the first register of every write, in order.
	Writes []uint8
}

// NewI2CDevice8 returns a new mock I2C device.
func NewI2CDevice8(c Failer, addr uint8) *I2CDevice8 {
	return &I2CDevice8{
		c:    c,
		addr: addr,
	}
}

// Addr returns the Device address.
func (d *I2CDevice8) Addr() uint8 {
	return d.addr
}

// ReadRegister implements I2C.ReadRegister.
func (d *I2CDevice8) ReadRegister(r uint8, buf []byte) error {
	if d.Err != nil {
		return d.Err
	}
	d.assertRegisterRange(r, buf)
	if d.BeforeRead != nil {
		d.BeforeRead(d, r)
	}
	copy(buf, d.Registers[r:])
	return nil
}

// WriteRegister implements I2C.WriteRegister.
func (d *I2CDevice8) WriteRegister(r uint8, buf []byte) error {
	if d.Err != nil {
		return d.Err
	}
	d.assertRegisterRange(r, buf)
	copy(d.Registers[r:], buf)
	d.Writes = append(d.Writes, r)
	return nil
}

// Tx implements I2C.Tx. The first written byte selects the register, any further written bytes
// are stored from there on, and reads continue from the selected register. An empty
// transaction only checks that the device acknowledges.
func (d *I2CDevice8) Tx(w, r []byte) error {
	if d.Err != nil {
		return d.Err
	}
	if len(w) == 0 {
		if len(r) != 0 {
			d.c.Helper()
			d.c.Fatalf("i2c mock: read of %d bytes without a register address", len(r))
		}
		return nil
	}
	if len(w) > 1 {
		if err := d.WriteRegister(w[0], w[1:]); err != nil {
			return err
		}
	}
	if len(r) > 0 {
		return d.ReadRegister(w[0], r)
	}
	return nil
}

func (d *I2CDevice8) assertRegisterRange(r uint8, buf []byte) {
	if int(r)+len(buf) > len(d.Registers) {
		d.c.Helper()
		d.c.Fatalf("i2c mock: register range [%#x:%#x] out of range", r, int(r)+len(buf))
	}
}
