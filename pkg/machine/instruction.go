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

// Instruction is a decoded opcode. The set of variants is closed: only the
// types in this file satisfy it.
type Instruction interface {
	instruction()
}

// Operand shapes shared by several variants
type (
	Register     struct{ X uint8 }
	RegisterPair struct{ X, Y uint8 }
	Target       struct{ Addr uint16 }
)

type RegisterValue struct {
	X     uint8
	Value uint8
}

// 00E0 / 00EE
type (
	Clear  struct{}
	Return struct{}
)

// 1NNN, 2NNN, ANNN, BNNN
type (
	Jump       Target
	Call       Target
	SetAddress Target
	JumpOffset Target
)

// 3XNN, 4XNN, 6XNN, 7XNN
type (
	SkipEqImm RegisterValue
	SkipNeImm RegisterValue
	SetImm    RegisterValue
	AddImm    RegisterValue
)

// 5XY0, 9XY0 and the 8XY_ family
type (
	SkipEqReg  RegisterPair
	SkipNeReg  RegisterPair
	Assign     RegisterPair
	Or         RegisterPair
	And        RegisterPair
	Xor        RegisterPair
	Add        RegisterPair
	Sub        RegisterPair
	ShiftRight RegisterPair
	SubReverse RegisterPair
	ShiftLeft  RegisterPair
)

// CXNN
type Random struct {
	X    uint8
	Mask uint8
}

// DXYN
type Draw struct {
	X, Y   uint8
	Height uint8
}

// EX9E, EXA1 and the FX__ family
type (
	SkipKeyDown   Register
	SkipKeyUp     Register
	GetDelay      Register
	WaitKey       Register
	SetDelay      Register
	SetSound      Register
	AddAddress    Register
	FontAddress   Register
	StoreDecimal  Register
	DumpRegisters Register
	LoadRegisters Register
)

// Anything that matches no defined pattern
type NoOp struct {
	Opcode uint16
}

func (Clear) instruction()         {}
func (Return) instruction()        {}
func (Jump) instruction()          {}
func (Call) instruction()          {}
func (SetAddress) instruction()    {}
func (JumpOffset) instruction()    {}
func (SkipEqImm) instruction()     {}
func (SkipNeImm) instruction()     {}
func (SetImm) instruction()        {}
func (AddImm) instruction()        {}
func (SkipEqReg) instruction()     {}
func (SkipNeReg) instruction()     {}
func (Assign) instruction()        {}
func (Or) instruction()            {}
func (And) instruction()           {}
func (Xor) instruction()           {}
func (Add) instruction()           {}
func (Sub) instruction()           {}
func (ShiftRight) instruction()    {}
func (SubReverse) instruction()    {}
func (ShiftLeft) instruction()     {}
func (Random) instruction()        {}
func (Draw) instruction()          {}
func (SkipKeyDown) instruction()   {}
func (SkipKeyUp) instruction()     {}
func (GetDelay) instruction()      {}
func (WaitKey) instruction()       {}
func (SetDelay) instruction()      {}
func (SetSound) instruction()      {}
func (AddAddress) instruction()    {}
func (FontAddress) instruction()   {}
func (StoreDecimal) instruction()  {}
func (DumpRegisters) instruction() {}
func (LoadRegisters) instruction() {}
func (NoOp) instruction()          {}
