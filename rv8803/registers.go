package rv8803

// Address is the fixed 7-bit I2C address of the RV-8803.
const Address = 0x32

// Registers
const (
	RAM               = 0x07 // user RAM, holds the time zone in quarter hours
	Hundredths        = 0x10 // time registers starting with hundredths of seconds
	Seconds           = 0x11
	Minutes           = 0x12
	Hours             = 0x13
	Weekdays          = 0x14
	Date              = 0x15
	Months            = 0x16
	Years             = 0x17
	MinutesAlarm      = 0x18
	HoursAlarm        = 0x19
	WeekdaysDateAlarm = 0x1A
	Timer0            = 0x1B // countdown timer value, low byte
	Timer1            = 0x1C // countdown timer value, high nibble; upper nibble is GPX storage
	Extension         = 0x1D
	Flag              = 0x1E
	Control           = 0x1F
	HundredthsCapture = 0x20
	SecondsCapture    = 0x21
	Offset            = 0x2C // clock calibration offset
	EventControl      = 0x2F
)

// Alarm register bits
const (
	alarmEnable = 7 // active low: 0 means the field takes part in the match
)

// Extension register bits
const (
	extensionTest = 7
	extensionWADA = 6 // 1 selects date alarm, 0 weekday alarm
	extensionUSEL = 5 // periodic update every minute instead of every second
	extensionTE   = 4 // countdown timer enable
	extensionFD   = 2 // two bits: clock out frequency
	extensionTD   = 0 // two bits: countdown timer clock
)

// Control register bits
const (
	controlReset = 0
)

// Event control register bits
const (
	eventECP  = 7 // event capture enable
	eventEHL  = 6 // high level / rising edge detection
	eventET   = 4 // two bits: debounce filter
	eventERST = 0 // reset hundredths on event
)

// masks applied to the time registers before BCD decoding
var timeMasks = [8]uint8{0xFF, 0x7F, 0x7F, 0x3F, 0x7F, 0x3F, 0x1F, 0xFF}
