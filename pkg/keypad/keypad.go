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

package keypad

const KEY_COUNT = 16

// Keypad holds the down state of the 16 hex keys. The zero value has every key
// released.
type Keypad struct {
	state [KEY_COUNT]bool
}

func (kp *Keypad) Press(key uint8) {
	if key < KEY_COUNT {
		kp.state[key] = true
	}
}

func (kp *Keypad) Release(key uint8) {
	if key < KEY_COUNT {
		kp.state[key] = false
	}
}

func (kp *Keypad) Reset() {
	kp.state = [KEY_COUNT]bool{}
}

func (kp *Keypad) IsKeyDown(key uint8) bool {
	return key < KEY_COUNT && kp.state[key]
}

// FirstKeyDown returns the lowest key index currently down
func (kp *Keypad) FirstKeyDown() (uint8, bool) {
	for i, down := range kp.state {
		if down {
			return uint8(i), true
		}
	}
	return 0, false
}

// Physical QWERTY layout of the hex keypad:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var layout = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// KeyForRune maps a character of the QWERTY layout to its hex key. Upper and
// lower case letters map to the same key.
func KeyForRune(r rune) (uint8, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}

	key, ok := layout[r]
	return key, ok
}
