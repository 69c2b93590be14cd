// Command check-config validates a scoreboard config file and prints the
// resolved wiring.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/input"
	"github.com/Black-And-White-Club/pingpong-scoreboard/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("check-config", flag.ContinueOnError)
	fs.SetOutput(out)
	var (
		path  = fs.String("config", "config.yaml", "Path to the config file")
		quiet = fs.Bool("quiet", false, "Only report errors")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(*path); err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	cfg, err := config.LoadConfig(*path)
	if err != nil {
		return err
	}
	bindings, err := input.Bindings(cfg.Inputs)
	if err != nil {
		return err
	}
	if *quiet {
		return nil
	}

	fmt.Fprintf(out, "%s %s\n", cfg.Service.Name, cfg.Service.Version)
	fmt.Fprintf(out, "debounce %s, poll %s\n", cfg.Scoreboard.DebounceWindow, cfg.Scoreboard.PollInterval)
	for _, b := range bindings {
		fmt.Fprintf(out, "input  %-8s GP%-2d key %q -> %s\n", b.Name, b.Pin, b.Key, b.Line)
	}
	for _, d := range cfg.Displays {
		fmt.Fprintf(out, "display %-7s i2c%d 0x%02X %dx%d %q\n", d.Name, d.Bus, d.Address, d.Width, d.Height, d.Label)
	}
	fmt.Fprintf(out, "heartbeat GP%d on %s off %s\n", cfg.Heartbeat.Pin, cfg.Heartbeat.On, cfg.Heartbeat.Off)
	return nil
}
