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
	"time"

	"github.com/lassandro/gochip8/pkg/keypad"
)

// Terminals report key presses but never releases, so a pressed key is held
// down for this long after its last repeat.
const KEY_HOLD = 150 * time.Millisecond

const (
	KEY_CTRL_C = 0x03
	KEY_ESCAPE = 0x1B
)

type heldKeys struct {
	until [keypad.KEY_COUNT]time.Time
}

// Length of the escape sequence at the start of input, or 0 for a lone ESC
func escapeLength(input []byte) int {
	if len(input) < 2 {
		return 0
	}

	switch input[1] {
	case '[':
		// CSI runs up to its final byte in 0x40..0x7E
		for i := 2; i < len(input); i++ {
			if input[i] >= 0x40 && input[i] <= 0x7E {
				return i + 1
			}
		}
		return len(input)
	case 'O':
		return min(3, len(input))
	default:
		// Alt+key
		return 2
	}
}

// feed presses the keys found in input and reports whether a quit key was
// seen. Escape sequences from arrow and function keys are skipped.
func (h *heldKeys) feed(kp *keypad.Keypad, input []byte, now time.Time) bool {
	for i := 0; i < len(input); i++ {
		b := input[i]

		if b == KEY_CTRL_C {
			return true
		}

		if b == KEY_ESCAPE {
			n := escapeLength(input[i:])
			if n == 0 {
				return true
			}
			i += n - 1
			continue
		}

		if key, ok := keypad.KeyForRune(rune(b)); ok {
			kp.Press(key)
			h.until[key] = now.Add(KEY_HOLD)
		}
	}

	return false
}

func (h *heldKeys) expire(kp *keypad.Keypad, now time.Time) {
	for key, until := range h.until {
		if !until.IsZero() && !now.Before(until) {
			kp.Release(uint8(key))
			h.until[key] = time.Time{}
		}
	}
}
