package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajanata/drivers/rv8803"
)

var timerFrequencies = map[string]rv8803.TimerFrequency{
	"4096Hz": rv8803.TimerFrequency4096Hz,
	"64Hz":   rv8803.TimerFrequency64Hz,
	"1Hz":    rv8803.TimerFrequency1Hz,
	"1/60Hz": rv8803.TimerFrequencyOnePerMinute,
}

var timerFrequencyNames = [...]string{"4096Hz", "64Hz", "1Hz", "1/60Hz"}

type timerOptions struct {
	*rootOptions
	ticks     uint16
	frequency string
	enable    bool
	interrupt bool
}

func newTimerCommand(root *rootOptions) *cobra.Command {
	o := &timerOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Print or program the countdown timer",
		Example: `  rv8803ctl timer --ticks 10 --frequency 1Hz --enable --interrupt
  rv8803ctl timer --enable=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withDevice(func(dev *rv8803.Device) error {
				if changed(cmd, "ticks", "frequency", "enable", "interrupt") {
					if err := o.program(cmd, dev); err != nil {
						return err
					}
				}
				return o.print(cmd, dev)
			})
		},
	}
	cmd.Flags().Uint16Var(&o.ticks, "ticks", 0, fmt.Sprintf("countdown start value, at most %d", rv8803.MaxTimerTicks))
	cmd.Flags().StringVar(&o.frequency, "frequency", "1Hz", "countdown clock: 4096Hz, 64Hz, 1Hz or 1/60Hz")
	cmd.Flags().BoolVar(&o.enable, "enable", false, "start the timer")
	cmd.Flags().BoolVar(&o.interrupt, "interrupt", false, "drive the INT pin when the timer expires")
	return cmd
}

func (o *timerOptions) program(cmd *cobra.Command, dev *rv8803.Device) error {
	f, ok := timerFrequencies[o.frequency]
	if !ok {
		return fmt.Errorf("unknown timer frequency %q", o.frequency)
	}
	// the timer has to be stopped to load a new value
	if err := dev.SetCountdownTimerEnable(false); err != nil {
		return err
	}
	if cmd.Flags().Changed("ticks") {
		if err := dev.SetCountdownTimerClockTicks(o.ticks); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("frequency") {
		if err := dev.SetCountdownTimerFrequency(f); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("interrupt") {
		var err error
		if o.interrupt {
			err = dev.EnableHardwareInterrupt(rv8803.InterruptTimer)
		} else {
			err = dev.DisableHardwareInterrupt(rv8803.InterruptTimer)
		}
		if err != nil {
			return err
		}
	}
	if err := dev.ClearInterruptFlag(rv8803.FlagTimer); err != nil {
		return err
	}
	return dev.SetCountdownTimerEnable(o.enable)
}

func (o *timerOptions) print(cmd *cobra.Command, dev *rv8803.Device) error {
	ticks, err := dev.CountdownTimerClockTicks()
	if err != nil {
		return err
	}
	f, err := dev.CountdownTimerFrequency()
	if err != nil {
		return err
	}
	enabled, err := dev.CountdownTimerEnabled()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ticks %d frequency %s enabled %t\n", ticks, timerFrequencyNames[f], enabled)
	return nil
}
