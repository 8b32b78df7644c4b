package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog"

	"github.com/ajanata/drivers/rv8803"
)

type setOptions struct {
	*rootOptions
	build bool
}

func newSetCommand(root *rootOptions) *cobra.Command {
	o := &setOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "set [RFC3339 time|now]",
		Short: "Set the clock",
		Long: `Set the clock to the given RFC 3339 time, or to the system time when the
argument is "now" or missing. The clock always keeps UTC.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withDevice(func(dev *rv8803.Device) error {
				return o.run(cmd, dev, args)
			})
		},
	}
	cmd.Flags().BoolVar(&o.build, "build", false, "set the clock to the commit time of this binary")
	return cmd
}

func (o *setOptions) run(cmd *cobra.Command, dev *rv8803.Device, args []string) error {
	switch {
	case o.build:
		if err := dev.SetToBuildTime(); err != nil {
			return err
		}
	case len(args) == 0 || args[0] == "now":
		if err := o.setAligned(dev, o.now()); err != nil {
			return err
		}
	default:
		t, err := time.Parse(time.RFC3339, args[0])
		if err != nil {
			return err
		}
		if err := dev.Set(t); err != nil {
			return err
		}
	}
	if err := dev.ClearInterruptFlag(rv8803.FlagLowVoltage2); err != nil {
		return err
	}
	klog.V(2).Infof("clock set to %s", dev.Calendar())
	fmt.Fprintf(cmd.OutOrStdout(), "set %sZ\n", dev.Calendar())
	return nil
}
