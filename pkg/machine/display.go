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
	"strings"
)

// Bytes per exported pixel, RGBA order
const PIXEL_SIZE = 4

type Display struct {
	Cells [DISPLAY_HEIGHT][DISPLAY_WIDTH]bool
}

func (d *Display) Clear() {
	for y := range d.Cells {
		for x := range d.Cells[y] {
			d.Cells[y][x] = false
		}
	}
}

// Coordinates wrap around both edges
func (d *Display) Pixel(x, y int) bool {
	return d.Cells[wrap(y, DISPLAY_HEIGHT)][wrap(x, DISPLAY_WIDTH)]
}

// Toggle XORs bit onto the cell at (x, y), wrapping around both edges, and
// reports whether the cell went from on to off.
func (d *Display) Toggle(x, y int, bit bool) bool {
	y = wrap(y, DISPLAY_HEIGHT)
	x = wrap(x, DISPLAY_WIDTH)

	previous := d.Cells[y][x]
	d.Cells[y][x] = previous != bit

	return previous && !d.Cells[y][x]
}

// WriteRGBA fills dst row-major with 4 bytes per cell: 0xFF for on, 0x00 for
// off on every channel. dst must hold DISPLAY_WIDTH*DISPLAY_HEIGHT*4 bytes.
func (d *Display) WriteRGBA(dst []byte) {
	for y, row := range d.Cells {
		for x, on := range row {
			var value byte
			if on {
				value = 0xFF
			}

			offset := (y*DISPLAY_WIDTH + x) * PIXEL_SIZE
			for i := 0; i < PIXEL_SIZE; i++ {
				dst[offset+i] = value
			}
		}
	}
}

// String renders two display rows per text line with half-block characters
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow(DISPLAY_HEIGHT / 2 * (DISPLAY_WIDTH*3 + 1))

	for y := 0; y < DISPLAY_HEIGHT; y += 2 {
		for x := 0; x < DISPLAY_WIDTH; x++ {
			top, bottom := d.Cells[y][x], d.Cells[y+1][x]

			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func wrap(value, size int) int {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}
