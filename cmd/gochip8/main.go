// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/lassandro/gochip8/pkg/config"
	"github.com/lassandro/gochip8/pkg/keypad"
	"github.com/lassandro/gochip8/pkg/machine"
	"github.com/retroenv/retrogolib/log"
)

func gochip8() int {
	opts, err := config.ParseFlags(os.Args[1:])

	if err != nil {
		var usageErr *config.UsageError

		if errors.As(err, &usageErr) {
			if opts.Help {
				usageErr.ShowUsage(os.Stdout)
				return 0
			}
			usageErr.ShowUsage(os.Stderr)
		}

		config.CreateLogger(false, false).Error("Invalid arguments", err)
		return 1
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)

	file, err := os.Open(opts.ROM)

	if err != nil {
		logger.Error("Opening ROM failed", err)
		return 1
	}

	defer file.Close()

	var kp keypad.Keypad
	var dh machine.DeviceHandler
	dh.Keyboard = &kp

	if opts.Seed != 0 {
		dh.Random = rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	}

	mc := machine.Machine{Devices: &dh, Logger: logger}

	if err := mc.LoadBin(file); err != nil {
		logger.Error("Loading ROM failed", err, log.String("file", opts.ROM))
		return 1
	}

	logger.Info("ROM loaded",
		log.String("file", opts.ROM),
		log.Int("rate", opts.Rate))

	r := newRunner(&mc, &kp, opts.Rate)

	if opts.Terminal {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err = runTerminal(ctx, r)
	} else {
		err = runWindow(r, opts.Scale)
	}

	if err != nil {
		var halt *machine.HaltError
		if !errors.As(err, &halt) {
			// Halts are already logged by the machine
			logger.Error("Emulation failed", err)
		}
		return 1
	}

	return 0
}

func main() {
	os.Exit(gochip8())
}
