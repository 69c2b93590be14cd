//go:build tinygo

// Command pico runs the scoreboard on a Raspberry Pi Pico with two SSD1306
// OLEDs and four buttons.
package main

import (
	"context"
	"fmt"
	"machine"
	"time"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/debounce"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/dispatch"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/display"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/heartbeat"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/input"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/ledger"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/metrics"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/scoreboard"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/attr"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/logging"
	"github.com/Black-And-White-Club/pingpong-scoreboard/config"
	"tinygo.org/x/drivers/ssd1306"
)

func main() {
	cfg := config.Default()
	logger := logging.NewWithWriter(machine.Serial, cfg.Log)
	ctx := context.Background()
	led := machine.Pin(cfg.Heartbeat.Pin)
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid config", attr.Error(err))
		failLoop(led)
	}

	bindings, err := input.Bindings(cfg.Inputs)
	if err != nil {
		logger.Error("Invalid input mapping", attr.Error(err))
		failLoop(led)
	}

	screens, err := setupDisplays(cfg.Displays)
	if err != nil {
		logger.Error("Failed to set up displays", attr.Error(err))
		failLoop(led)
	}

	deb := debounce.New(cfg.Scoreboard.DebounceWindow)
	if err := setupButtons(bindings, deb); err != nil {
		logger.Error("Failed to set up buttons", attr.Error(err))
		failLoop(led)
	}

	controller, err := scoreboard.NewController(logger, nil, metrics.NoOp{}, nil, ledger.New(), screens)
	if err != nil {
		logger.Error("Failed to create scoreboard", attr.Error(err))
		failLoop(led)
	}
	if err := controller.DrawScreens(ctx); err != nil {
		failLoop(led)
	}

	go heartbeat.New(logger, led, cfg.Heartbeat.On, cfg.Heartbeat.Off).Run(ctx)

	loop := dispatch.NewLoop(logger, deb, controller, nil, cfg.Scoreboard.PollInterval)
	if err := loop.Run(ctx); err != nil {
		failLoop(led)
	}
}

func setupDisplays(displays []config.DisplayConfig) ([]scoreboard.Screen, error) {
	screens := make([]scoreboard.Screen, 0, len(displays))
	for _, d := range displays {
		bus, err := i2cBus(d.Bus)
		if err != nil {
			return nil, err
		}
		err = bus.Configure(machine.I2CConfig{
			SDA:       machine.Pin(d.SDA),
			SCL:       machine.Pin(d.SCL),
			Frequency: 400 * machine.KHz,
		})
		if err != nil {
			return nil, fmt.Errorf("configure i2c%d for %s: %w", d.Bus, d.Name, err)
		}

		dev := ssd1306.NewI2C(bus)
		dev.Configure(ssd1306.Config{
			Width:   d.Width,
			Height:  d.Height,
			Address: d.Address,
		})
		dev.ClearDisplay()

		screens = append(screens, scoreboard.Screen{
			Surface: display.NewPanel(d.Name, &dev),
			Label:   d.Label,
		})
	}
	return screens, nil
}

func i2cBus(n int) (*machine.I2C, error) {
	switch n {
	case 0:
		return machine.I2C0, nil
	case 1:
		return machine.I2C1, nil
	default:
		return nil, fmt.Errorf("no i2c bus %d", n)
	}
}

// setupButtons arms a rising-edge interrupt per button. The callback runs in
// interrupt context and only touches the debouncer.
func setupButtons(bindings []input.Binding, deb *debounce.Debouncer) error {
	for _, b := range bindings {
		line := b.Line
		pin := machine.Pin(b.Pin)
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		err := pin.SetInterrupt(machine.PinRising, func(machine.Pin) {
			deb.Edge(line)
		})
		if err != nil {
			return fmt.Errorf("arm interrupt on GP%d for %s: %w", b.Pin, b.Name, err)
		}
	}
	return nil
}

// failLoop flashes the heartbeat LED rapidly forever.
func failLoop(led machine.Pin) {
	for {
		led.Low()
		time.Sleep(100 * time.Millisecond)
		led.High()
		time.Sleep(100 * time.Millisecond)
	}
}
