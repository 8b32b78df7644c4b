package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"
	"k8s.io/klog"

	"github.com/ajanata/drivers/rv8803"
)

// publisher is the part of an MQTT client publish needs.
type publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

type publishOptions struct {
	*rootOptions
	interval time.Duration
	count    int
	qos      byte
	retain   bool
}

func newPublishCommand(root *rootOptions) *cobra.Command {
	o := &publishOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish clock readings to an MQTT broker",
		Long: `Publish a JSON reading of the clock to an MQTT topic at a fixed interval,
until interrupted or --count readings were sent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := mqtt.NewClientOptions().
				AddBroker(o.v.GetString("broker")).
				SetClientID(fmt.Sprintf("rv8803ctl-%d", os.Getpid())).
				SetConnectTimeout(10 * time.Second)
			client := mqtt.NewClient(opts)
			if token := client.Connect(); token.Wait() && token.Error() != nil {
				return fmt.Errorf("connecting to %s: %w", o.v.GetString("broker"), token.Error())
			}
			defer client.Disconnect(250)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return o.withDevice(func(dev *rv8803.Device) error {
				return o.publish(ctx, dev, client)
			})
		},
	}
	cmd.Flags().DurationVar(&o.interval, "interval", 10*time.Second, "time between readings")
	cmd.Flags().IntVar(&o.count, "count", 0, "stop after this many readings; 0 runs until interrupted")
	cmd.Flags().Uint8Var(&o.qos, "qos", 0, "MQTT quality of service")
	cmd.Flags().BoolVar(&o.retain, "retain", false, "ask the broker to retain the last reading")
	return cmd
}

func (o *publishOptions) publish(ctx context.Context, dev *rv8803.Device, p publisher) error {
	topic := o.v.GetString("topic")
	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	for sent := 0; o.count == 0 || sent < o.count; sent++ {
		if sent > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
		r, err := readClock(dev)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(r)
		if err != nil {
			return err
		}
		token := p.Publish(topic, o.qos, o.retain, payload)
		if token.Wait() && token.Error() != nil {
			return fmt.Errorf("publishing to %s: %w", topic, token.Error())
		}
		klog.V(2).Infof("published %s to %s", payload, topic)
	}
	return nil
}
