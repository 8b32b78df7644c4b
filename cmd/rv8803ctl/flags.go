package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajanata/drivers/rv8803"
)

type flagsOptions struct {
	*rootOptions
	clear bool
}

func newFlagsCommand(root *rootOptions) *cobra.Command {
	o := &flagsOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "flags",
		Short: "Print the status flags",
		Long: `Print the status flags: V1F and V2F for low supply voltage, EVF for an
external event, AF for the alarm, TF for the countdown timer and UF for the
periodic update.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withDevice(func(dev *rv8803.Device) error {
				status, err := dev.Status()
				if err != nil {
					return err
				}
				s := status.String()
				if s == "" {
					s = "none"
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
				if status.Has(rv8803.FlagEvent) {
					if err := dev.UpdateTime(); err != nil {
						return err
					}
					ts, err := dev.StringTimestamp()
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "event at %s\n", ts)
				}
				if o.clear {
					return dev.ClearAllInterruptFlags()
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&o.clear, "clear", false, "clear all flags after printing them")
	return cmd
}
