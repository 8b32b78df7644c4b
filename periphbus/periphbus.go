// Package periphbus lets the drivers run on a Linux host by adapting a periph.io I2C bus to the
// drivers.I2C interface.
package periphbus

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// Bus implements drivers.I2C on top of a periph.io bus.
type Bus struct {
	bus i2c.Bus
}

// New wraps an already opened bus.
func New(b i2c.Bus) *Bus {
	return &Bus{bus: b}
}

// Open initializes the host drivers and opens the named bus, or the first one found when name
// is empty. A zero frequency leaves the bus speed alone.
func Open(name string, f physic.Frequency) (*Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periphbus: initializing host: %w", err)
	}
	b, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("periphbus: opening %q: %w", name, err)
	}
	return withSpeed(b, f)
}

// withSpeed sets the speed of a freshly opened bus, closing it again when that fails.
func withSpeed(b i2c.BusCloser, f physic.Frequency) (*Bus, error) {
	if f != 0 {
		if err := b.SetSpeed(f); err != nil {
			err = fmt.Errorf("periphbus: setting speed of %s to %s: %w", b, f, err)
			if cerr := b.Close(); cerr != nil {
				return nil, errors.Join(err, fmt.Errorf("periphbus: closing %s: %w", b, cerr))
			}
			return nil, err
		}
	}
	return New(b), nil
}

// ReadRegister implements drivers.I2C.
func (b *Bus) ReadRegister(addr uint8, r uint8, buf []byte) error {
	return b.bus.Tx(uint16(addr), []byte{r}, buf)
}

// WriteRegister implements drivers.I2C.
func (b *Bus) WriteRegister(addr uint8, r uint8, buf []byte) error {
	w := make([]byte, 0, len(buf)+1)
	w = append(w, r)
	w = append(w, buf...)
	return b.bus.Tx(uint16(addr), w, nil)
}

// Tx implements drivers.I2C. The kernel rejects transfers without data, so an empty
// transaction used to probe for a device is sent as a one byte read.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	if len(w) == 0 && len(r) == 0 {
		r = make([]byte, 1)
	}
	return b.bus.Tx(addr, w, r)
}

// Close closes the underlying bus if it can be closed.
func (b *Bus) Close() error {
	if c, ok := b.bus.(i2c.BusCloser); ok {
		return c.Close()
	}
	return nil
}

func (b *Bus) String() string {
	return b.bus.String()
}
