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

package encoding

// Joins two big-endian bytes into a single opcode word
func Opcode(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Splits an opcode into its four nibbles, most significant first
func Nibbles(opcode uint16) [4]uint8 {
	return [4]uint8{
		uint8(opcode>>12) & 0xF,
		uint8(opcode>>8) & 0xF,
		uint8(opcode>>4) & 0xF,
		uint8(opcode) & 0xF,
	}
}

// Lower 12 bits, the NNN address field
func Address(opcode uint16) uint16 {
	return opcode & 0x0FFF
}

// Lower 8 bits, the NN immediate field
func Immediate(opcode uint16) uint8 {
	return uint8(opcode & 0x00FF)
}

// Lower 4 bits, the N field
func Short(opcode uint16) uint8 {
	return uint8(opcode & 0x000F)
}

// Second nibble, the X register field
func RegisterX(opcode uint16) uint8 {
	return uint8(opcode>>8) & 0xF
}

// Third nibble, the Y register field
func RegisterY(opcode uint16) uint8 {
	return uint8(opcode>>4) & 0xF
}

// Decomposes a byte into hundreds, tens and ones
func DecimalDigits(value uint8) [3]uint8 {
	return [3]uint8{value / 100, (value / 10) % 10, value % 10}
}
