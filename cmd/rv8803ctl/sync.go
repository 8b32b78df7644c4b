package main

import (
	"fmt"
	"time"

	"github.com/beevik/ntp"
	"github.com/spf13/cobra"
	"k8s.io/klog"

	"github.com/ajanata/drivers/rv8803"
)

// clockOffset returns how far the system clock is behind the NTP server.
type clockOffset func(host string) (time.Duration, error)

func queryNTP(host string) (time.Duration, error) {
	r, err := ntp.Query(host)
	if err != nil {
		return 0, err
	}
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return r.ClockOffset, nil
}

type syncOptions struct {
	*rootOptions
	server string
}

func newSyncCommand(root *rootOptions) *cobra.Command {
	o := &syncOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Set the clock from an NTP server",
		Long: `Set the clock from an NTP server. With an empty --ntp the system clock is
used as is.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withDevice(func(dev *rv8803.Device) error {
				return o.run(cmd, dev)
			})
		},
	}
	cmd.Flags().StringVar(&o.server, "ntp", "pool.ntp.org", "NTP server")
	return cmd
}

func (o *syncOptions) run(cmd *cobra.Command, dev *rv8803.Device) error {
	var offset time.Duration
	if o.server != "" {
		var err error
		offset, err = o.ntpOffset(o.server)
		if err != nil {
			return fmt.Errorf("querying %s: %w", o.server, err)
		}
		klog.V(2).Infof("system clock offset from %s is %v", o.server, offset)
	}

	before, err := dev.Now()
	if err != nil {
		return err
	}
	now := o.now().Add(offset)
	if err := o.setAligned(dev, now); err != nil {
		return err
	}
	if err := dev.ClearInterruptFlag(rv8803.FlagLowVoltage2); err != nil {
		return err
	}
	drift := before.Sub(now).Round(time.Millisecond)
	klog.Infof("clock set to %s, it was %v off", dev.Calendar(), drift)
	fmt.Fprintf(cmd.OutOrStdout(), "set %sZ, drift %v\n", dev.Calendar(), drift)
	return nil
}
