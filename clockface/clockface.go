// Package clockface draws a digital clock on a pixel display. The upper part of the screen
// shows the time and date in large type, the lower part is a small terminal for event
// messages.
package clockface

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"

	"github.com/ajanata/drivers"
	"github.com/ajanata/drivers/calendar"
)

// Displayer is a display that can fill rectangles and scroll, like most SPI TFT drivers.
type Displayer interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	SetScrollArea(topFixedArea, bottomFixedArea int16)
	SetScroll(line int16)
	StopScroll()
}

type Config struct {
	// ClockHeight is the number of rows reserved for the clock. Defaults to half the display.
	ClockHeight int16
	// Foreground defaults to white, Background to black.
	Foreground color.RGBA
	Background color.RGBA
	// TimeFont defaults to FreeMono Bold 12pt, DateFont and LogFont to ProggyTinySZ.
	TimeFont *tinyfont.Font
	DateFont *tinyfont.Font
	LogFont  *tinyfont.Font
}

type Face struct {
	display Displayer
	term    *tinyterm.Terminal
	cfg     Config
	width   int16
}

func New(display Displayer, cfg Config) *Face {
	w, h := display.Size()
	if cfg.ClockHeight <= 0 || cfg.ClockHeight > h {
		cfg.ClockHeight = h / 2
	}
	if cfg.Foreground == (color.RGBA{}) {
		cfg.Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}
	if cfg.Background == (color.RGBA{}) {
		cfg.Background = color.RGBA{A: 0xFF}
	}
	if cfg.TimeFont == nil {
		cfg.TimeFont = &freemono.Bold12pt7b
	}
	if cfg.DateFont == nil {
		cfg.DateFont = &proggy.TinySZ8pt7b
	}
	if cfg.LogFont == nil {
		cfg.LogFont = &proggy.TinySZ8pt7b
	}

	f := &Face{
		display: display,
		cfg:     cfg,
		width:   w,
	}
	if cfg.ClockHeight < h {
		f.term = tinyterm.NewTerminal(&region{Displayer: display, top: cfg.ClockHeight})
		f.term.Configure(&tinyterm.Config{
			Font:       cfg.LogFont,
			FontHeight: 10,
			FontOffset: 6,
		})
	}
	return f
}

// Draw shows t in the clock area and sends the frame to the display.
func (f *Face) Draw(t calendar.Time, twelveHour bool) error {
	err := f.display.FillRectangle(0, 0, f.width, f.cfg.ClockHeight, f.cfg.Background)
	if err != nil {
		return err
	}
	f.centered(f.cfg.TimeFont, f.cfg.ClockHeight/2, t.ClockString(twelveHour))
	f.centered(f.cfg.DateFont, f.cfg.ClockHeight-4, t.Weekday.String()[:3]+" "+t.DateString())
	return f.display.Display()
}

// centered writes str with its baseline at y.
func (f *Face) centered(font *tinyfont.Font, y int16, str string) {
	_, w := tinyfont.LineWidth(font, str)
	x := (f.width - int16(w)) / 2
	if x < 0 {
		x = 0
	}
	tinyfont.WriteLine(f.display, font, x, y, str, f.cfg.Foreground)
}

// Logf appends a line to the terminal below the clock. It is a no-op when the clock fills the
// display.
func (f *Face) Logf(format string, args ...interface{}) {
	if f.term == nil {
		return
	}
	fmt.Fprintf(f.term, format+"\n", args...)
}

// region is the part of a display below the top rows, so the terminal scrolls without
// touching the clock.
type region struct {
	Displayer
	top int16
}

func (r *region) Size() (x, y int16) {
	x, y = r.Displayer.Size()
	return x, y - r.top
}

func (r *region) SetPixel(x, y int16, c color.RGBA) {
	r.Displayer.SetPixel(x, y+r.top, c)
}

func (r *region) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	return r.Displayer.FillRectangle(x, y+r.top, width, height, c)
}

func (r *region) SetScrollArea(topFixedArea, bottomFixedArea int16) {
	r.Displayer.SetScrollArea(topFixedArea+r.top, bottomFixedArea)
}

func (r *region) SetScroll(line int16) {
	r.Displayer.SetScroll(line + r.top)
}
