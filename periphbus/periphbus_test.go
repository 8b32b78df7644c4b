package periphbus

import (
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"

	"github.com/ajanata/drivers/rv8803"
)

func TestRegisters(t *testing.T) {
	c := qt.New(t)
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x32, W: []byte{0x1E}, R: []byte{0x28}},
			{Addr: 0x32, W: []byte{0x1E, 0x00}},
			{Addr: 0x32, R: []byte{0x00}},
		},
	}
	b := New(pb)

	buf := make([]byte, 1)
	c.Assert(b.ReadRegister(0x32, 0x1E, buf), qt.IsNil)
	c.Assert(buf[0], qt.Equals, uint8(0x28))
	c.Assert(b.WriteRegister(0x32, 0x1E, []byte{0}), qt.IsNil)
	c.Assert(b.Tx(0x32, nil, nil), qt.IsNil)
	c.Assert(b.Close(), qt.IsNil)
}

func TestDriver(t *testing.T) {
	c := qt.New(t)
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{
				Addr: rv8803.Address,
				W:    []byte{rv8803.Hundredths},
				R:    []byte{0x00, 0x05, 0x04, 0x15, 0b0000_0010, 0x02, 0x01, 0x06},
			},
		},
	}
	dev := rv8803.New(New(pb))

	now, err := dev.Now()
	c.Assert(err, qt.IsNil)
	c.Assert(now, qt.Equals, time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC))
	c.Assert(pb.Close(), qt.IsNil)
}

// stubbornBus refuses speed changes and optionally refuses to close.
type stubbornBus struct {
	i2ctest.Record
	closeErr error
	closed   bool
}

var errSpeed = errors.New("speed not supported")

func (s *stubbornBus) SetSpeed(physic.Frequency) error {
	return errSpeed
}

func (s *stubbornBus) Close() error {
	s.closed = true
	return s.closeErr
}

func TestWithSpeed(t *testing.T) {
	c := qt.New(t)

	b, err := withSpeed(&stubbornBus{}, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(b, qt.Not(qt.IsNil))

	sb := &stubbornBus{}
	_, err = withSpeed(sb, 400*physic.KiloHertz)
	c.Assert(err, qt.ErrorIs, errSpeed)
	c.Assert(sb.closed, qt.IsTrue)

	errClose := errors.New("bus busy")
	sb = &stubbornBus{closeErr: errClose}
	_, err = withSpeed(sb, 400*physic.KiloHertz)
	c.Assert(err, qt.ErrorIs, errSpeed)
	c.Assert(err, qt.ErrorIs, errClose)
	c.Assert(sb.closed, qt.IsTrue)
}
