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

//go:build unix

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lassandro/gochip8/pkg/machine"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const (
	ansiClear      = "\033[2J"
	ansiHome       = "\033[H"
	ansiHideCursor = "\033[?25l"
	ansiShowCursor = "\033[?25h"
)

var termRestore *term.State

func enterRawTerm(fd int) error {
	if !term.IsTerminal(fd) {
		return errors.New("stdin is not a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	termRestore = state

	if err := unix.SetNonblock(fd, true); err != nil {
		_ = term.Restore(fd, termRestore)
		return err
	}

	return nil
}

func exitRawTerm(fd int) {
	_ = unix.SetNonblock(fd, false)

	if termRestore != nil {
		_ = term.Restore(fd, termRestore)
		termRestore = nil
	}
}

// Two display rows per line plus a status line
func checkTermSize(fd int) error {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return err
	}

	if int(ws.Col) < machine.DISPLAY_WIDTH || int(ws.Row) < machine.DISPLAY_HEIGHT/2+1 {
		return fmt.Errorf(
			"terminal is %dx%d, need at least %dx%d",
			ws.Col, ws.Row, machine.DISPLAY_WIDTH, machine.DISPLAY_HEIGHT/2+1,
		)
	}

	return nil
}

func drawTerm(out *bufio.Writer, frame machine.Display, status string) error {
	out.WriteString(ansiHome)
	// Raw mode disables output post-processing, so lines need explicit CRs
	out.WriteString(strings.ReplaceAll(frame.String(), "\n", "\r\n"))
	out.WriteString("\033[K")
	out.WriteString(status)
	return out.Flush()
}

func runTerminal(ctx context.Context, r *runner) error {
	fd := int(os.Stdin.Fd())

	if err := checkTermSize(int(os.Stdout.Fd())); err != nil {
		return err
	}

	if err := enterRawTerm(fd); err != nil {
		return err
	}
	defer exitRawTerm(fd)

	out := bufio.NewWriter(os.Stdout)
	out.WriteString(ansiClear + ansiHideCursor)
	defer func() {
		out.WriteString(ansiShowCursor + "\r\n")
		out.Flush()
	}()

	ticker := time.NewTicker(time.Second / TICK_RATE)
	defer ticker.Stop()

	var held heldKeys
	buf := make([]byte, 64)

	for {
		select {
		case <-ctx.Done():
			return nil

		case now := <-ticker.C:
			n, err := unix.Read(fd, buf)
			if err != nil && !errors.Is(err, unix.EAGAIN) {
				return err
			}

			if n > 0 && held.feed(r.keys, buf[:n], now) {
				return nil
			}
			held.expire(r.keys, now)

			halt := r.tick()

			status := "esc: quit"
			if halt != nil {
				status = "HALTED: " + halt.Error()
			}

			if err := drawTerm(out, r.frame(), status); err != nil {
				return err
			}

			if halt != nil {
				return halt
			}
		}
	}
}
