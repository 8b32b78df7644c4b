package main

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"k8s.io/klog"

	"github.com/ajanata/drivers/rv8803"
)

var (
	driftDesc = prometheus.NewDesc(
		"rv8803_drift_seconds",
		"Time kept by the clock minus the system time.",
		nil, nil)
	flagDesc = prometheus.NewDesc(
		"rv8803_flag",
		"Status flags of the clock, 1 when set.",
		[]string{"flag"}, nil)
	calibrationDesc = prometheus.NewDesc(
		"rv8803_calibration_ppm",
		"Frequency offset applied by the clock.",
		nil, nil)
	upDesc = prometheus.NewDesc(
		"rv8803_up",
		"Whether the last read of the clock succeeded.",
		nil, nil)
)

var statusFlags = map[string]rv8803.StatusFlag{
	"V1F": rv8803.FlagLowVoltage1,
	"V2F": rv8803.FlagLowVoltage2,
	"EVF": rv8803.FlagEvent,
	"AF":  rv8803.FlagAlarm,
	"TF":  rv8803.FlagTimer,
	"UF":  rv8803.FlagUpdate,
}

// collector reads the clock on every scrape.
type collector struct {
	mu  sync.Mutex
	dev *rv8803.Device
	now func() time.Time
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- driftDesc
	ch <- flagDesc
	ch <- calibrationDesc
	ch <- upDesc
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.collect(ch); err != nil {
		klog.Errorf("reading clock: %v", err)
		ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, 0)
		return
	}
	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, 1)
}

func (c *collector) collect(ch chan<- prometheus.Metric) error {
	t, err := c.dev.Now()
	if err != nil {
		return err
	}
	drift := t.Sub(c.now()).Seconds()
	status, err := c.dev.Status()
	if err != nil {
		return err
	}
	ppm, err := c.dev.CalibrationOffset()
	if err != nil {
		return err
	}

	ch <- prometheus.MustNewConstMetric(driftDesc, prometheus.GaugeValue, drift)
	for name, f := range statusFlags {
		v := 0.0
		if status.Has(f) {
			v = 1
		}
		ch <- prometheus.MustNewConstMetric(flagDesc, prometheus.GaugeValue, v, name)
	}
	ch <- prometheus.MustNewConstMetric(calibrationDesc, prometheus.GaugeValue, float64(ppm))
	return nil
}

func newExporterCommand(o *rootOptions) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "exporter",
		Short: "Serve clock metrics for Prometheus",
		Long: `Serve the drift against the system clock, the status flags and the
calibration offset on /metrics. The bus stays open while serving.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withDevice(func(dev *rv8803.Device) error {
				reg := prometheus.NewRegistry()
				if err := reg.Register(&collector{dev: dev, now: o.now}); err != nil {
					return err
				}
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
				server := &http.Server{
					Addr:    listen,
					Handler: mux,
				}
				klog.Infof("serving metrics on %s", listen)
				return server.ListenAndServe()
			})
		},
	}
	cmd.Flags().StringVar(&listen, "listen", ":9803", "address to serve metrics on")
	return cmd
}
