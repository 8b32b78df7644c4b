// Package drivers holds the bus and display interfaces shared by every device driver in this
// repository. Drivers only depend on these interfaces, so the same driver runs on a tinygo
// board (machine.I2C satisfies I2C directly) and on a Linux host through the periphbus adapter.
package drivers

import "image/color"

// I2C represents an I2C bus. It is notably implemented by the machine.I2C type.
type I2C interface {
	ReadRegister(addr uint8, r uint8, buf []byte) error
	WriteRegister(addr uint8, r uint8, buf []byte) error
	Tx(addr uint16, w, r []byte) error
}

// Displayer is a pixel display.
type Displayer interface {
	// Size returns the current size of the display.
	Size() (x, y int16)

	// SetPixel modifies the internal buffer.
	SetPixel(x, y int16, c color.RGBA)

	// Display sends the buffer (if any) to the screen.
	Display() error
}
