package main

import (
	"github.com/spf13/cobra"

	"github.com/ajanata/drivers/rv8803"
)

type nowOptions struct {
	*rootOptions
	output string
}

func newNowCommand(root *rootOptions) *cobra.Command {
	o := &nowOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the time kept by the clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withDevice(func(dev *rv8803.Device) error {
				r, err := readClock(dev)
				if err != nil {
					return err
				}
				return printReading(cmd.OutOrStdout(), r, o.output, dev)
			})
		},
	}
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output format: json or yaml")
	return cmd
}
