package main

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajanata/drivers/calendar"
	"github.com/ajanata/drivers/rv8803"
)

func newZoneCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "zone [quarter hours|±hh:mm]",
		Short: "Print or store the time zone kept in the clock's RAM",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withDevice(func(dev *rv8803.Device) error {
				if len(args) == 1 {
					z, err := parseZone(args[0])
					if err != nil {
						return err
					}
					if err := dev.SetTimeZone(z); err != nil {
						return err
					}
				}
				z, err := dev.TimeZone()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d quarter hours)\n", z, int(z))
				return nil
			})
		},
	}
}

// parseZone accepts a signed count of quarter hours or an offset like -04:00.
func parseZone(s string) (calendar.Zone, error) {
	if q, err := strconv.Atoi(s); err == nil {
		if q < math.MinInt8 || q > math.MaxInt8 {
			return 0, fmt.Errorf("%w: %d quarter hours", calendar.ErrZone, q)
		}
		return calendar.Zone(q), nil
	}
	t, err := time.Parse("-07:00", s)
	if err != nil {
		return 0, fmt.Errorf("parsing zone %q: %w", s, err)
	}
	_, offset := t.Zone()
	return calendar.ZoneOf(time.Duration(offset) * time.Second)
}
