// Command rv8803ctl reads and sets an RV-8803 real-time clock attached to a Linux I2C bus.
package main

import (
	"flag"
	"os"

	"k8s.io/klog"
	"periph.io/x/conn/v3/physic"

	"github.com/ajanata/drivers"
	"github.com/ajanata/drivers/periphbus"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	cmd := newRootCommand(openPeriph, os.Stdin)
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	if err := cmd.Execute(); err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(1)
	}
}

func openPeriph(name string) (drivers.I2C, error) {
	return periphbus.Open(name, 400*physic.KiloHertz)
}
