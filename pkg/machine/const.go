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

const (
	MEMSIZE = 0x1000

	MEMSPACE_FONT    uint16 = 0x0000
	MEMSPACE_PROGRAM uint16 = 0x0200

	// Largest ROM that fits between the program space and the end of memory
	MAX_ROM_SIZE = MEMSIZE - int(MEMSPACE_PROGRAM)
)

const (
	DISPLAY_WIDTH  = 64
	DISPLAY_HEIGHT = 32

	SPRITE_WIDTH = 8
)

const (
	REGISTER_COUNT = 16
	REGISTER_FLAG  = 0xF

	KEY_COUNT = 16
)

const (
	OP_SYS  uint8 = 0x0
	OP_JP   uint8 = 0x1
	OP_CALL uint8 = 0x2
	OP_SEI  uint8 = 0x3
	OP_SNEI uint8 = 0x4
	OP_SER  uint8 = 0x5
	OP_LDI  uint8 = 0x6
	OP_ADDI uint8 = 0x7
	OP_ALU  uint8 = 0x8
	OP_SNER uint8 = 0x9
	OP_LDA  uint8 = 0xA
	OP_JPV0 uint8 = 0xB
	OP_RND  uint8 = 0xC
	OP_DRW  uint8 = 0xD
	OP_KEY  uint8 = 0xE
	OP_MISC uint8 = 0xF
)

// Each glyph is 5 rows tall, one row per byte, drawn from the high nibble
const FONT_GLYPH_SIZE = 5

var Font = [16 * FONT_GLYPH_SIZE]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
