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
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lassandro/gochip8/pkg/keypad"
	"github.com/lassandro/gochip8/pkg/machine"
	"github.com/retroenv/retrogolib/assert"
)

// Fills program memory with ADD V0, 1
func countingMachine() *machine.Machine {
	var mc machine.Machine
	mc.Reset()

	for addr := int(machine.MEMSPACE_PROGRAM); addr < machine.MEMSIZE; addr += 2 {
		mc.State.Memory[addr] = 0x70
		mc.State.Memory[addr+1] = 0x01
	}

	return &mc
}

func TestRunnerTick(t *testing.T) {
	mc := countingMachine()
	r := newRunner(mc, &keypad.Keypad{}, 600)

	assert.NoError(t, r.tick())
	assert.Equal(t, uint8(10), mc.State.Registers[0])

	assert.NoError(t, r.tick())
	assert.Equal(t, uint8(20), mc.State.Registers[0])
}

func TestRunnerCarry(t *testing.T) {
	mc := countingMachine()
	r := newRunner(mc, &keypad.Keypad{}, 90)

	assert.NoError(t, r.tick())
	assert.Equal(t, uint8(1), mc.State.Registers[0])

	assert.NoError(t, r.tick())
	assert.Equal(t, uint8(3), mc.State.Registers[0])

	for i := 0; i < 58; i++ {
		assert.NoError(t, r.tick())
	}
	assert.Equal(t, uint8(90), mc.State.Registers[0])
}

func TestRunnerSlowRate(t *testing.T) {
	mc := countingMachine()
	r := newRunner(mc, &keypad.Keypad{}, 1)

	for i := 0; i < TICK_RATE-1; i++ {
		assert.NoError(t, r.tick())
	}
	assert.Equal(t, uint8(0), mc.State.Registers[0])

	assert.NoError(t, r.tick())
	assert.Equal(t, uint8(1), mc.State.Registers[0])
}

func TestRunnerHalt(t *testing.T) {
	var mc machine.Machine
	mc.Reset()
	copy(mc.State.Memory[0x200:], []uint8{0x60, 0x05, 0x00, 0xEE, 0x60, 0x09})

	r := newRunner(&mc, &keypad.Keypad{}, 600)

	err := r.tick()
	assert.True(t, errors.Is(err, machine.ErrStackUnderflow))
	assert.Equal(t, uint8(5), mc.State.Registers[0])

	err = r.tick()
	assert.True(t, errors.Is(err, machine.ErrStackUnderflow))
	assert.Equal(t, uint8(5), mc.State.Registers[0])
}

func TestHeldKeys(t *testing.T) {
	var kp keypad.Keypad
	var held heldKeys
	start := time.Unix(1000, 0)

	assert.False(t, held.feed(&kp, []byte("w4?"), start))
	assert.True(t, kp.IsKeyDown(0x5))
	assert.True(t, kp.IsKeyDown(0xC))

	held.expire(&kp, start.Add(KEY_HOLD/2))
	assert.True(t, kp.IsKeyDown(0x5))

	// A repeat extends the hold
	held.feed(&kp, []byte("w"), start.Add(KEY_HOLD/2))
	held.expire(&kp, start.Add(KEY_HOLD))
	assert.True(t, kp.IsKeyDown(0x5))
	assert.False(t, kp.IsKeyDown(0xC))

	held.expire(&kp, start.Add(2*KEY_HOLD))
	_, ok := kp.FirstKeyDown()
	assert.False(t, ok)
}

func TestHeldKeysQuit(t *testing.T) {
	var kp keypad.Keypad
	var held heldKeys

	assert.True(t, held.feed(&kp, []byte{'a', KEY_ESCAPE}, time.Now()))
	assert.True(t, held.feed(&kp, []byte{KEY_CTRL_C}, time.Now()))
	assert.True(t, kp.IsKeyDown(0x7))
}

func TestHeldKeysEscapeSequences(t *testing.T) {
	tests := []struct {
		Name  string
		Input []byte
		Keys  []uint8
	}{
		{"Arrow Up", []byte{KEY_ESCAPE, '[', 'A'}, nil},
		{"Arrow Then Key", []byte{KEY_ESCAPE, '[', 'D', 'w'}, []uint8{0x5}},
		{"Function Key", []byte{KEY_ESCAPE, '[', '1', '5', '~', '1'}, []uint8{0x1}},
		{"SS3 Key", []byte{KEY_ESCAPE, 'O', 'P', 'x'}, []uint8{0x0}},
		{"Alt Key", []byte{KEY_ESCAPE, 'q', 'e'}, []uint8{0x6}},
		{"Truncated CSI", []byte{'v', KEY_ESCAPE, '[', '2'}, []uint8{0xF}},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			var kp keypad.Keypad
			var held heldKeys

			assert.False(t, held.feed(&kp, test.Input, time.Now()))

			want := map[uint8]bool{}
			for _, key := range test.Keys {
				want[key] = true
			}

			for key := uint8(0); key < keypad.KEY_COUNT; key++ {
				assert.Equal(t, want[key], kp.IsKeyDown(key), fmt.Sprintf("key %X", key))
			}
		})
	}
}
