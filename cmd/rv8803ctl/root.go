package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog"

	"github.com/ajanata/drivers"
	"github.com/ajanata/drivers/calendar"
	"github.com/ajanata/drivers/rv8803"
)

// busOpener opens the named I2C bus. The bus is closed after every command when it
// implements io.Closer.
type busOpener func(name string) (drivers.I2C, error)

type rootOptions struct {
	configFile string
	open       busOpener
	in         io.Reader
	v          *viper.Viper

	// now, sleep and ntpOffset reach outside the clock, tests replace them
	now       func() time.Time
	sleep     func(time.Duration)
	ntpOffset clockOffset
}

func newRootCommand(open busOpener, in io.Reader) *cobra.Command {
	return newRootOptions(open, in).newCommand()
}

func newRootOptions(open busOpener, in io.Reader) *rootOptions {
	return &rootOptions{
		open:      open,
		in:        in,
		v:         viper.New(),
		now:       time.Now,
		sleep:     time.Sleep,
		ntpOffset: queryNTP,
	}
}

func (o *rootOptions) newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rv8803ctl",
		Short: "Control an RV-8803 real-time clock",
		Long: `Control an RV-8803 real-time clock on a Linux I2C bus.

Settings are read from flags, from RV8803_* environment variables and from
.rv8803.yaml in the home or current directory, in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.loadConfig()
		},
	}

	o.bindFlags(cmd.PersistentFlags())
	o.v.SetEnvPrefix("RV8803")
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()

	cmd.AddCommand(
		newNowCommand(o),
		newSetCommand(o),
		newSyncCommand(o),
		newZoneCommand(o),
		newAlarmCommand(o),
		newTimerCommand(o),
		newCalibrateCommand(o),
		newFlagsCommand(o),
		newPublishCommand(o),
		newExporterCommand(o),
		newShellCommand(o),
	)
	return cmd
}

// bindFlags adds the settings shared by every subcommand to flags and binds them to viper.
func (o *rootOptions) bindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.configFile, "config", "", "config file (default $HOME/.rv8803.yaml)")
	flags.String("bus", "", "I2C bus name or number; empty picks the first bus")
	flags.Uint8("address", rv8803.Address, "I2C address of the clock")
	flags.String("epoch", "2000", "epoch seconds are counted from: 2000 or 1970")
	flags.Bool("twelve-hour", false, "show times on a 12-hour dial")
	flags.String("broker", "tcp://localhost:1883", "MQTT broker URL")
	flags.String("topic", "rv8803/time", "MQTT topic")
	o.v.BindPFlags(flags)
}

func (o *rootOptions) loadConfig() error {
	if o.configFile != "" {
		o.v.SetConfigFile(o.configFile)
	} else {
		o.v.SetConfigName(".rv8803")
		o.v.AddConfigPath("$HOME")
		o.v.AddConfigPath(".")
	}
	err := o.v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	klog.V(2).Infof("using config file %s", o.v.ConfigFileUsed())
	return nil
}

func (o *rootOptions) reference() (calendar.Reference, error) {
	switch e := o.v.GetString("epoch"); e {
	case "2000", "":
		return calendar.Epoch2000, nil
	case "1970", "unix":
		return calendar.Epoch1970, nil
	default:
		return 0, fmt.Errorf("unknown epoch %q, want 2000 or 1970", e)
	}
}

// withDevice opens the bus, runs fn on a configured clock and closes the bus again.
func (o *rootOptions) withDevice(fn func(dev *rv8803.Device) error) error {
	ref, err := o.reference()
	if err != nil {
		return err
	}
	name := o.v.GetString("bus")
	bus, err := o.open(name)
	if err != nil {
		return err
	}
	if c, ok := bus.(io.Closer); ok {
		defer c.Close()
	}

	dev := rv8803.New(bus)
	dev.Configure(rv8803.Config{
		Address:    uint8(o.v.GetUint32("address")),
		TwelveHour: o.v.GetBool("twelve-hour"),
		Epoch:      ref,
	})
	if !dev.Connected() {
		return fmt.Errorf("no RV-8803 at %#x on bus %q", dev.Address, name)
	}
	klog.V(4).Infof("opened RV-8803 at %#x on bus %q", dev.Address, name)
	return fn(&dev)
}

// setAligned waits for the next whole second of t, writes it and restarts the hundredths
// counter, so the clock ticks in step with the source.
func (o *rootOptions) setAligned(dev *rv8803.Device, t time.Time) error {
	next := t.Truncate(time.Second).Add(time.Second)
	o.sleep(next.Sub(t))
	if err := dev.Set(next); err != nil {
		return err
	}
	return dev.ResetHundredths()
}

// changed reports whether any of the named flags was given.
func changed(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
