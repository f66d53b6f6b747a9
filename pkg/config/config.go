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

package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/log"
)

const usage = "gochip8 [options] filename"

const (
	DEFAULT_RATE  = 600
	DEFAULT_SCALE = 10

	MAX_RATE  = 10000
	MAX_SCALE = 40
)

type Options struct {
	ROM string

	// Instructions executed per second
	Rate int
	// Window pixels per display cell
	Scale int
	// Use the terminal frontend instead of a window
	Terminal bool
	// Fixed random seed, 0 seeds from the clock
	Seed uint64

	Debug bool
	Quiet bool
	Help  bool
}

// UsageError is returned for command lines that should print usage
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s\n\n", usage)
	e.flags.SetOutput(w)
	e.flags.PrintDefaults()
}

// ParseFlags parses args, not including the program name
func ParseFlags(args []string) (Options, error) {
	var opts Options

	flags := flag.NewFlagSet("gochip8", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	flags.BoolVar(&opts.Help, "help", false, "Displays command usage")
	flags.BoolVar(&opts.Debug, "debug", false, "Logs every executed instruction")
	flags.BoolVar(&opts.Quiet, "q", false, "Only logs errors")
	flags.BoolVar(&opts.Terminal, "term", false, "Renders to the terminal instead of a window")
	flags.IntVar(&opts.Rate, "rate", DEFAULT_RATE, "Instructions executed per second")
	flags.IntVar(&opts.Scale, "scale", DEFAULT_SCALE, "Window pixels per display cell")
	flags.Uint64Var(&opts.Seed, "seed", 0, "Random seed, 0 seeds from the clock")

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	if opts.Help {
		return opts, &UsageError{flags: flags}
	}

	if flags.NArg() != 1 {
		return opts, &UsageError{flags: flags, msg: "expected exactly one rom file"}
	}
	opts.ROM = flags.Arg(0)

	if err := opts.Validate(); err != nil {
		return opts, err
	}

	return opts, nil
}

func (opts *Options) Validate() error {
	if opts.Rate < 1 || opts.Rate > MAX_RATE {
		return fmt.Errorf("rate %d out of range 1..%d", opts.Rate, MAX_RATE)
	}

	if opts.Scale < 1 || opts.Scale > MAX_SCALE {
		return fmt.Errorf("scale %d out of range 1..%d", opts.Scale, MAX_SCALE)
	}

	if opts.Debug && opts.Quiet {
		return fmt.Errorf("-debug and -q are mutually exclusive")
	}

	return nil
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
