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
	"github.com/lassandro/gochip8/pkg/keypad"
	"github.com/lassandro/gochip8/pkg/machine"
)

// Frontends call tick at this rate
const TICK_RATE = 60

// runner paces the machine: each tick executes rate/TICK_RATE instructions,
// carrying the remainder so the long-run average matches rate exactly.
type runner struct {
	mc    *machine.Machine
	keys  *keypad.Keypad
	rate  int
	carry int
}

func newRunner(mc *machine.Machine, keys *keypad.Keypad, rate int) *runner {
	return &runner{mc: mc, keys: keys, rate: rate}
}

// tick returns the halt error once the machine halts and on every tick after
func (r *runner) tick() error {
	if err := r.mc.Err(); err != nil {
		return err
	}

	budget := r.rate + r.carry
	steps := budget / TICK_RATE
	r.carry = budget % TICK_RATE

	for i := 0; i < steps; i++ {
		if err := r.mc.Step(); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner) frame() machine.Display {
	return r.mc.Frame()
}
