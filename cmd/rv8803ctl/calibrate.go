package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajanata/drivers/rv8803"
)

func newCalibrateCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "calibrate [ppm]",
		Short: "Print or set the frequency offset",
		Long: fmt.Sprintf(`Print or set the frequency offset in parts per million. A positive value
speeds the clock up. The offset is applied in steps of %.4f ppm.`, rv8803.PPMPerStep),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withDevice(func(dev *rv8803.Device) error {
				if len(args) == 1 {
					ppm, err := strconv.ParseFloat(args[0], 32)
					if err != nil {
						return err
					}
					if err := dev.SetCalibrationOffset(float32(ppm)); err != nil {
						return err
					}
				}
				ppm, err := dev.CalibrationOffset()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%+.4f ppm\n", ppm)
				return nil
			})
		},
	}
}
