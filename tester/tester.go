// Package tester contains mock structs to make it easier to test I2C devices.
package tester

import (
	"errors"
	"fmt"
)

// ErrNoDevice is returned by the bus for addresses no device answers to, the equivalent of a
// missing acknowledge on real hardware.
var ErrNoDevice = errors.New("tester: no device at address")

// Failer is used by the I2CDevice8 to log and fail on unexpected accesses. It is satisfied by
// *testing.T and *quicktest.C.
type Failer interface {
	// Helper marks the calling function as a test helper function.
	Helper()

	// Fatal is equivalent to Log followed by FailNow.
	Fatal(args ...interface{})

	// Fatalf is equivalent to Logf followed by FailNow.
	Fatalf(format string, args ...interface{})
}

// I2CDevice is a fake device that sits on an I2CBus.
type I2CDevice interface {
	// Addr returns the device's I2C address.
	Addr() uint8
	ReadRegister(r uint8, buf []byte) error
	WriteRegister(r uint8, buf []byte) error
	Tx(w, r []byte) error
}

// I2CBus implements the I2C interface in memory for testing.
type I2CBus struct {
	c       Failer
	devices []I2CDevice
}

// NewI2CBus returns an I2CBus mock I2C instance that uses c to flag errors
// if they happen. After creating a I2C instance, add devices
// to it with AddDevice before using NewI2CBus interface.
func NewI2CBus(c Failer) *I2CBus {
	return &I2CBus{
		c: c,
	}
}

// AddDevice adds a new mock device to the mock I2C bus.
// It panics if a device with the same address is added more than once.
func (bus *I2CBus) AddDevice(d I2CDevice) {
	for _, dev := range bus.devices {
		if dev.Addr() == d.Addr() {
			panic(fmt.Errorf("device already added at address %#x", d.Addr()))
		}
	}
	bus.devices = append(bus.devices, d)
}

// NewDevice creates a new register-file device, adds it to the bus and returns it.
func (bus *I2CBus) NewDevice(addr uint8) *I2CDevice8 {
	dev := NewI2CDevice8(bus.c, addr)
	bus.AddDevice(dev)
	return dev
}

// ReadRegister implements I2C.ReadRegister.
func (bus *I2CBus) ReadRegister(addr uint8, r uint8, buf []byte) error {
	dev, err := bus.FindDevice(addr)
	if err != nil {
		return err
	}
	return dev.ReadRegister(r, buf)
}

// WriteRegister implements I2C.WriteRegister.
func (bus *I2CBus) WriteRegister(addr uint8, r uint8, buf []byte) error {
	dev, err := bus.FindDevice(addr)
	if err != nil {
		return err
	}
	return dev.WriteRegister(r, buf)
}

// Tx implements I2C.Tx.
func (bus *I2CBus) Tx(addr uint16, w, r []byte) error {
	dev, err := bus.FindDevice(uint8(addr))
	if err != nil {
		return err
	}
	return dev.Tx(w, r)
}

// FindDevice returns the device with the given address.
func (bus *I2CBus) FindDevice(addr uint8) (I2CDevice, error) {
	for _, dev := range bus.devices {
		if dev.Addr() == addr {
			return dev, nil
		}
	}
	return nil, fmt.Errorf("%w %#x", ErrNoDevice, addr)
}
