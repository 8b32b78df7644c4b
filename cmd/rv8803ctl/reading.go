package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ghodss/yaml"

	"github.com/ajanata/drivers/calendar"
	"github.com/ajanata/drivers/rv8803"
)

// reading is one snapshot of the clock, as printed by now and published by publish.
type reading struct {
	Time       string `json:"time"`
	Local      string `json:"local"`
	Hundredths uint8  `json:"hundredths"`
	Epoch      int64  `json:"epoch"`
	Reference  string `json:"reference"`
	Zone       string `json:"zone"`
	Flags      string `json:"flags,omitempty"`
	LostPower  bool   `json:"lostPower"`
}

func readClock(dev *rv8803.Device) (reading, error) {
	if err := dev.UpdateTime(); err != nil {
		return reading{}, err
	}
	epoch, err := dev.Epoch()
	if err != nil {
		return reading{}, err
	}
	zone, err := dev.TimeZone()
	if err != nil {
		return reading{}, err
	}
	status, err := dev.Status()
	if err != nil {
		return reading{}, err
	}
	conv := dev.Converter()
	local, err := conv.Time(calendar.LocalEpoch(epoch, zone))
	if err != nil {
		return reading{}, err
	}
	return reading{
		Time:       dev.StringTime8601() + "Z",
		Local:      local.ISO8601Zone(zone),
		Hundredths: dev.Hundredths(),
		Epoch:      epoch,
		Reference:  conv.Reference.String(),
		Zone:       zone.String(),
		Flags:      status.String(),
		LostPower:  status.LostPower(),
	}, nil
}

func printReading(w io.Writer, r reading, format string, dev *rv8803.Device) error {
	switch format {
	case "json":
		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("creating json: %w", err)
		}
		fmt.Fprintln(w, string(b))
	case "yaml":
		b, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("creating yaml: %w", err)
		}
		fmt.Fprint(w, string(b))
	case "":
		fmt.Fprintf(w, "%s %s %s\n", dev.Weekday(), dev.StringDate(), dev.StringTime())
		fmt.Fprintf(w, "local %s\n", r.Local)
		fmt.Fprintf(w, "epoch %d since %s\n", r.Epoch, r.Reference)
		if r.LostPower {
			fmt.Fprintln(w, "warning: the clock lost power, the time is not valid")
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}
