package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajanata/drivers/calendar"
	"github.com/ajanata/drivers/rv8803"
)

type alarmOptions struct {
	*rootOptions
	minute    int
	hour      int
	weekdays  []string
	date      int
	interrupt bool
}

func newAlarmCommand(root *rootOptions) *cobra.Command {
	o := &alarmOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "alarm",
		Short: "Print or program the alarm",
		Long: `Print or program the alarm. Fields left at -1 or empty are ignored when
matching. The weekday and date alarms share a register, so only one of them can
be given.`,
		Example: `  rv8803ctl alarm --minute 30 --hour 7 --weekdays mon,tue,wed,thu,fri
  rv8803ctl alarm --minute 0 --date 1 --interrupt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withDevice(func(dev *rv8803.Device) error {
				if changed(cmd, "minute", "hour", "weekdays", "date", "interrupt") {
					if err := o.program(dev); err != nil {
						return err
					}
				}
				return o.print(cmd, dev)
			})
		},
	}
	cmd.Flags().IntVar(&o.minute, "minute", -1, "minute to match")
	cmd.Flags().IntVar(&o.hour, "hour", -1, "hour to match, 0-23")
	cmd.Flags().StringSliceVar(&o.weekdays, "weekdays", nil, "weekdays to match, like sun,sat")
	cmd.Flags().IntVar(&o.date, "date", -1, "day of month to match")
	cmd.Flags().BoolVar(&o.interrupt, "interrupt", false, "drive the INT pin when the alarm fires")
	return cmd
}

func (o *alarmOptions) program(dev *rv8803.Device) error {
	if len(o.weekdays) > 0 && o.date >= 0 {
		return fmt.Errorf("--weekdays and --date are mutually exclusive")
	}
	if err := checkAlarmField("minute", o.minute, 0, 59); err != nil {
		return err
	}
	if err := checkAlarmField("hour", o.hour, 0, 23); err != nil {
		return err
	}
	if err := checkAlarmField("date", o.date, 1, 31); err != nil {
		return err
	}
	// stop the alarm while it is being changed
	if err := dev.SetItemsToMatchForAlarm(false, false, false, false); err != nil {
		return err
	}
	if err := dev.ClearInterruptFlag(rv8803.FlagAlarm); err != nil {
		return err
	}
	if o.minute >= 0 {
		if err := dev.SetAlarmMinutes(uint8(o.minute)); err != nil {
			return fmt.Errorf("alarm minute %d: %w", o.minute, err)
		}
	}
	if o.hour >= 0 {
		if err := dev.SetAlarmHours(uint8(o.hour)); err != nil {
			return fmt.Errorf("alarm hour %d: %w", o.hour, err)
		}
	}
	if len(o.weekdays) > 0 {
		days, err := parseWeekdays(o.weekdays)
		if err != nil {
			return err
		}
		if err := dev.SetAlarmWeekdays(days...); err != nil {
			return err
		}
	}
	if o.date >= 0 {
		if err := dev.SetAlarmDate(uint8(o.date)); err != nil {
			return fmt.Errorf("alarm date %d: %w", o.date, err)
		}
	}
	err := dev.SetItemsToMatchForAlarm(o.minute >= 0, o.hour >= 0, len(o.weekdays) > 0, o.date >= 0)
	if err != nil {
		return err
	}
	if o.interrupt {
		return dev.EnableHardwareInterrupt(rv8803.InterruptAlarm)
	}
	return dev.DisableHardwareInterrupt(rv8803.InterruptAlarm)
}

// checkAlarmField rejects a set field outside min..max before it is narrowed to a register.
func checkAlarmField(name string, v, min, max int) error {
	if v >= 0 && (v < min || v > max) {
		return fmt.Errorf("alarm %s %d: %w", name, v, calendar.ErrFieldRange)
	}
	return nil
}

func (o *alarmOptions) print(cmd *cobra.Command, dev *rv8803.Device) error {
	m, err := dev.AlarmMinutes()
	if err != nil {
		return err
	}
	h, err := dev.AlarmHours()
	if err != nil {
		return err
	}
	status, err := dev.Status()
	if err != nil {
		return err
	}
	dateAlarm, err := dev.AlarmDateSelected()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "minute %02d hour %02d", m, h)
	if dateAlarm {
		d, err := dev.AlarmDate()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, " date %d", d)
	} else {
		days, err := dev.AlarmWeekdays()
		if err != nil {
			return err
		}
		names := make([]string, len(days))
		for i, d := range days {
			names[i] = strings.ToLower(d.String()[:3])
		}
		fmt.Fprintf(w, " weekdays %s", strings.Join(names, ","))
	}
	fmt.Fprintf(w, " fired %t\n", status.Has(rv8803.FlagAlarm))
	return nil
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	var days []time.Weekday
	for _, name := range names {
		found := false
		for d := time.Sunday; d <= time.Saturday; d++ {
			full := strings.ToLower(d.String())
			if n := strings.ToLower(name); n == full || n == full[:3] {
				days = append(days, d)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
	}
	return days, nil
}
