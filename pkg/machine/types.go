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

package machine

import (
	"github.com/retroenv/retrogolib/log"
)

// Keyboard is the read-only view of the 16-key keypad. Keys outside 0x0-0xF
// are never down.
type Keyboard interface {
	IsKeyDown(key uint8) bool
	FirstKeyDown() (uint8, bool)
}

// RandomSource is satisfied by *rand.Rand from math/rand/v2
type RandomSource interface {
	Uint32() uint32
}

type DeviceHandler struct {
	Keyboard Keyboard
	Random   RandomSource
}

type MachineState struct {
	Registers [REGISTER_COUNT]uint8
	Program   uint16
	Address   uint16
	Stack     []uint16
	Delay     uint8
	Sound     uint8
	Memory    [MEMSIZE]uint8
	Display   Display
}

type Machine struct {
	Devices *DeviceHandler
	State   MachineState
	Logger  *log.Logger

	halt *HaltError
}
