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
	"github.com/lassandro/gochip8/pkg/encoding"
)

// Decode maps an opcode to exactly one instruction variant. Opcodes that match
// no defined pattern decode to NoOp.
func Decode(opcode uint16) Instruction {
	n := encoding.Nibbles(opcode)
	x := encoding.RegisterX(opcode)
	y := encoding.RegisterY(opcode)
	addr := encoding.Address(opcode)
	value := encoding.Immediate(opcode)

	switch n[0] {
	// CLS  |0000|0000|1110|0000| Clear display
	// RET  |0000|0000|1110|1110| Return from subroutine
	case OP_SYS:
		switch opcode {
		case 0x00E0:
			return Clear{}
		case 0x00EE:
			return Return{}
		}

	// JP   |0001|NNN           | Jump
	case OP_JP:
		return Jump{Addr: addr}

	// CALL |0010|NNN           | Call subroutine
	case OP_CALL:
		return Call{Addr: addr}

	// SE   |0011|X   |NN       | Skip if VX == NN
	case OP_SEI:
		return SkipEqImm{X: x, Value: value}

	// SNE  |0100|X   |NN       | Skip if VX != NN
	case OP_SNEI:
		return SkipNeImm{X: x, Value: value}

	// SE   |0101|X   |Y   |0000| Skip if VX == VY
	case OP_SER:
		if n[3] == 0x0 {
			return SkipEqReg{X: x, Y: y}
		}

	// LD   |0110|X   |NN       | VX = NN
	case OP_LDI:
		return SetImm{X: x, Value: value}

	// ADD  |0111|X   |NN       | VX += NN, no flag
	case OP_ADDI:
		return AddImm{X: x, Value: value}

	// ALU  |1000|X   |Y   |op  | Register/register arithmetic
	case OP_ALU:
		switch n[3] {
		case 0x0:
			return Assign{X: x, Y: y}
		case 0x1:
			return Or{X: x, Y: y}
		case 0x2:
			return And{X: x, Y: y}
		case 0x3:
			return Xor{X: x, Y: y}
		case 0x4:
			return Add{X: x, Y: y}
		case 0x5:
			return Sub{X: x, Y: y}
		case 0x6:
			return ShiftRight{X: x, Y: y}
		case 0x7:
			return SubReverse{X: x, Y: y}
		case 0xE:
			return ShiftLeft{X: x, Y: y}
		}

	// SNE  |1001|X   |Y   |0000| Skip if VX != VY
	case OP_SNER:
		if n[3] == 0x0 {
			return SkipNeReg{X: x, Y: y}
		}

	// LD   |1010|NNN           | I = NNN
	case OP_LDA:
		return SetAddress{Addr: addr}

	// JP   |1011|NNN           | Jump to NNN + V0
	case OP_JPV0:
		return JumpOffset{Addr: addr}

	// RND  |1100|X   |NN       | VX = random & NN
	case OP_RND:
		return Random{X: x, Mask: value}

	// DRW  |1101|X   |Y   |N   | Draw N rows at (VX, VY)
	case OP_DRW:
		return Draw{X: x, Y: y, Height: encoding.Short(opcode)}

	// SKP  |1110|X   |1001|1110| Skip if key VX down
	// SKNP |1110|X   |1010|0001| Skip if key VX up
	case OP_KEY:
		switch value {
		case 0x9E:
			return SkipKeyDown{X: x}
		case 0xA1:
			return SkipKeyUp{X: x}
		}

	// MISC |1111|X   |op       | Timers, keys, I arithmetic, memory
	case OP_MISC:
		switch value {
		case 0x07:
			return GetDelay{X: x}
		case 0x0A:
			return WaitKey{X: x}
		case 0x15:
			return SetDelay{X: x}
		case 0x18:
			return SetSound{X: x}
		case 0x1E:
			return AddAddress{X: x}
		case 0x29:
			return FontAddress{X: x}
		case 0x33:
			return StoreDecimal{X: x}
		case 0x55:
			return DumpRegisters{X: x}
		case 0x65:
			return LoadRegisters{X: x}
		}
	}

	return NoOp{Opcode: opcode}
}
