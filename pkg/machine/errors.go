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
	"errors"
	"fmt"
)

var (
	ErrStackUnderflow = errors.New("return with empty call stack")
	ErrOutOfBounds    = errors.New("memory access out of bounds")
	ErrROMTooLarge    = errors.New("rom does not fit in program memory")
	ErrHalted         = errors.New("machine is halted")
)

// HaltError records the fatal condition that moved the machine to the halted
// state, together with the instruction that raised it.
type HaltError struct {
	PC     uint16
	Opcode uint16
	Err    error
}

func (e *HaltError) Error() string {
	return fmt.Sprintf("halted at %#04x (opcode %#04x): %v", e.PC, e.Opcode, e.Err)
}

func (e *HaltError) Unwrap() error {
	return e.Err
}

// haltedError is returned by every step after the machine halted
type haltedError struct {
	reason *HaltError
}

func (e *haltedError) Error() string {
	return fmt.Sprintf("%v: %v", ErrHalted, e.reason)
}

func (e *haltedError) Unwrap() []error {
	return []error{ErrHalted, e.reason}
}
