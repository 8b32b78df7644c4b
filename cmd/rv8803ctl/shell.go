package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/ajanata/drivers"
)

// sharedBus hides Close, so commands run from the shell leave the bus open.
type sharedBus struct {
	drivers.I2C
}

func newShellCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively on one open bus",
		Long: `Read commands from standard input, one per line, and run them with the
settings given to the shell. Quote arguments like in a POSIX shell. Exit with
"exit", "quit" or end of input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bus, err := o.open(o.v.GetString("bus"))
			if err != nil {
				return err
			}
			if c, ok := bus.(io.Closer); ok {
				defer c.Close()
			}
			return o.shell(cmd.OutOrStdout(), sharedBus{bus})
		},
	}
}

func (o *rootOptions) shell(out io.Writer, bus drivers.I2C) error {
	scanner := bufio.NewScanner(o.in)
	for {
		fmt.Fprint(out, "rv8803> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		args, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}
		if err := o.runLine(out, bus, args); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

// runLine runs one shell command on a fresh command tree. Settings of the shell become the
// defaults of the command, so flags on the line still override them.
func (o *rootOptions) runLine(out io.Writer, bus drivers.I2C, args []string) error {
	if args[0] == "shell" {
		return fmt.Errorf("already in a shell")
	}
	sub := newRootOptions(func(string) (drivers.I2C, error) { return bus, nil }, o.in)
	sub.now = o.now
	sub.sleep = o.sleep
	sub.ntpOffset = o.ntpOffset
	cmd := sub.newCommand()
	for k, v := range o.v.AllSettings() {
		sub.v.SetDefault(k, v)
	}
	// the shell already read the config file
	sub.configFile = o.v.ConfigFileUsed()
	cmd.SetOutput(out)
	cmd.SetArgs(args)
	return cmd.Execute()
}
