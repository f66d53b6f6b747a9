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

package keypad_test

import (
	"testing"

	"github.com/lassandro/gochip8/pkg/keypad"
	"github.com/retroenv/retrogolib/assert"
)

func TestPressRelease(t *testing.T) {
	var kp keypad.Keypad

	for key := uint8(0); key < keypad.KEY_COUNT; key++ {
		assert.False(t, kp.IsKeyDown(key))
	}

	kp.Press(0xA)
	assert.True(t, kp.IsKeyDown(0xA))
	assert.False(t, kp.IsKeyDown(0xB))

	kp.Release(0xA)
	assert.False(t, kp.IsKeyDown(0xA))
}

func TestOutOfRangeKeys(t *testing.T) {
	var kp keypad.Keypad

	kp.Press(0x10)
	kp.Press(0xFF)

	assert.False(t, kp.IsKeyDown(0x10))
	assert.False(t, kp.IsKeyDown(0xFF))

	_, ok := kp.FirstKeyDown()
	assert.False(t, ok)
}

func TestFirstKeyDown(t *testing.T) {
	var kp keypad.Keypad

	_, ok := kp.FirstKeyDown()
	assert.False(t, ok)

	kp.Press(0xE)
	kp.Press(0x3)

	key, ok := kp.FirstKeyDown()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x3), key)

	kp.Reset()
	_, ok = kp.FirstKeyDown()
	assert.False(t, ok)
}

func TestKeyForRune(t *testing.T) {
	tests := []struct {
		r   rune
		key uint8
		ok  bool
	}{
		{'1', 0x1, true},
		{'4', 0xC, true},
		{'q', 0x4, true},
		{'R', 0xD, true},
		{'x', 0x0, true},
		{'V', 0xF, true},
		{'5', 0, false},
		{' ', 0, false},
	}

	for _, test := range tests {
		t.Run(string(test.r), func(t *testing.T) {
			key, ok := keypad.KeyForRune(test.r)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.key, key)
		})
	}
}
