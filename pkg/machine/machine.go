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
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/lassandro/gochip8/pkg/encoding"
	"github.com/retroenv/retrogolib/log"
)

func (mc *MachineState) Reset() {
	for i := range mc.Registers {
		mc.Registers[i] = 0x00
	}

	for i := range mc.Memory {
		mc.Memory[i] = 0x00
	}

	copy(mc.Memory[MEMSPACE_FONT:], Font[:])

	mc.Program = MEMSPACE_PROGRAM
	mc.Address = 0x0000
	mc.Stack = mc.Stack[:0]
	mc.Delay = 0
	mc.Sound = 0
	mc.Display.Clear()
}

// Reset returns the machine to its power-on state and leaves the halted state
func (mc *Machine) Reset() {
	mc.State.Reset()
	mc.halt = nil
}

// LoadBin resets the machine and copies the ROM read from reader into program
// memory. Nothing is copied when the ROM does not fit.
func (mc *Machine) LoadBin(reader io.Reader) error {
	mc.Reset()

	rom, err := io.ReadAll(io.LimitReader(reader, int64(MAX_ROM_SIZE)+1))

	if err != nil {
		return err
	} else if len(rom) > MAX_ROM_SIZE {
		return fmt.Errorf("%w: more than %d bytes", ErrROMTooLarge, MAX_ROM_SIZE)
	}

	copy(mc.State.Memory[MEMSPACE_PROGRAM:], rom)

	return nil
}

func (mc *Machine) Halted() bool {
	return mc.halt != nil
}

// Err returns the reason the machine halted, or nil while it is ready
func (mc *Machine) Err() error {
	if mc.halt == nil {
		return nil
	}
	return mc.halt
}

// Frame returns a copy of the display buffer
func (mc *Machine) Frame() Display {
	return mc.State.Display
}

func (mc *Machine) read(addr int) (uint8, error) {
	if addr < 0 || addr >= MEMSIZE {
		return 0, fmt.Errorf("%w: read %#04x", ErrOutOfBounds, addr)
	}
	return mc.State.Memory[addr], nil
}

// Checks that count bytes starting at addr are addressable
func (mc *Machine) span(addr, count int) error {
	if addr < 0 || addr+count > MEMSIZE {
		return fmt.Errorf(
			"%w: %d bytes at %#04x", ErrOutOfBounds, count, addr,
		)
	}
	return nil
}

func (mc *Machine) push(value uint16) {
	mc.State.Stack = append(mc.State.Stack, value)
}

func (mc *Machine) pop() (uint16, error) {
	depth := len(mc.State.Stack)

	if depth == 0 {
		return 0, ErrStackUnderflow
	}

	result := mc.State.Stack[depth-1]
	mc.State.Stack = mc.State.Stack[:depth-1]
	return result, nil
}

func (mc *Machine) keyDown(key uint8) bool {
	if mc.Devices == nil || mc.Devices.Keyboard == nil {
		return false
	}
	return mc.Devices.Keyboard.IsKeyDown(key)
}

func (mc *Machine) firstKeyDown() (uint8, bool) {
	if mc.Devices == nil || mc.Devices.Keyboard == nil {
		return 0, false
	}
	return mc.Devices.Keyboard.FirstKeyDown()
}

func (mc *Machine) random() uint8 {
	if mc.Devices == nil || mc.Devices.Random == nil {
		return uint8(rand.Uint32())
	}
	return uint8(mc.Devices.Random.Uint32())
}

// Flag is written after the result so it wins when VF is also the destination
func (mc *Machine) setFlag(set bool) {
	if set {
		mc.State.Registers[REGISTER_FLAG] = 1
	} else {
		mc.State.Registers[REGISTER_FLAG] = 0
	}
}

func (mc *Machine) skip(condition bool) {
	if condition {
		mc.State.Program += 2
	}
}

func (mc *Machine) tickTimers() {
	if mc.State.Delay > 0 {
		mc.State.Delay--
	}

	if mc.State.Sound > 0 {
		mc.State.Sound--
	}
}

func hex(key string, value uint16) log.Field {
	return log.String(key, fmt.Sprintf("0x%04X", value))
}

func (mc *Machine) stop(pc, opcode uint16, err error) error {
	mc.halt = &HaltError{PC: pc, Opcode: opcode, Err: err}

	if mc.Logger != nil {
		mc.Logger.Error("Machine halted", err,
			hex("pc", pc),
			hex("opcode", opcode))
	}

	return mc.halt
}

// Step runs one fetch, decode, execute and timer cycle. It returns nil when
// the machine can continue, a *HaltError when this step halted it, and an
// error wrapping ErrHalted for every step after that.
func (mc *Machine) Step() error {
	if mc.halt != nil {
		return &haltedError{reason: mc.halt}
	}

	pc := mc.State.Program

	high, err := mc.read(int(pc))
	if err != nil {
		return mc.stop(pc, 0, err)
	}

	low, err := mc.read(int(pc) + 1)
	if err != nil {
		return mc.stop(pc, 0, err)
	}

	opcode := encoding.Opcode(high, low)
	mc.State.Program += 2

	instruction := Decode(opcode)

	if mc.Logger != nil {
		if _, unknown := instruction.(NoOp); unknown {
			mc.Logger.Warn("Unknown opcode",
				hex("pc", pc),
				hex("opcode", opcode))
		} else if mc.Logger.Enabled(log.DebugLevel) {
			mc.Logger.Debug("Execute",
				hex("pc", pc),
				hex("opcode", opcode),
				log.String("instruction", fmt.Sprintf("%T", instruction)))
		}
	}

	if err := mc.execute(instruction); err != nil {
		return mc.stop(pc, opcode, err)
	}

	mc.tickTimers()

	return nil
}

func (mc *Machine) execute(instruction Instruction) error {
	v := &mc.State.Registers

	switch in := instruction.(type) {
	case Clear:
		mc.State.Display.Clear()

	case Return:
		addr, err := mc.pop()
		if err != nil {
			return err
		}
		mc.State.Program = addr

	case Jump:
		mc.State.Program = in.Addr

	case Call:
		mc.push(mc.State.Program)
		mc.State.Program = in.Addr

	case SkipEqImm:
		mc.skip(v[in.X] == in.Value)

	case SkipNeImm:
		mc.skip(v[in.X] != in.Value)

	case SkipEqReg:
		mc.skip(v[in.X] == v[in.Y])

	case SkipNeReg:
		mc.skip(v[in.X] != v[in.Y])

	case SetImm:
		v[in.X] = in.Value

	case AddImm:
		v[in.X] += in.Value

	case Assign:
		v[in.X] = v[in.Y]

	case Or:
		v[in.X] |= v[in.Y]

	case And:
		v[in.X] &= v[in.Y]

	case Xor:
		v[in.X] ^= v[in.Y]

	case Add:
		sum := uint16(v[in.X]) + uint16(v[in.Y])
		v[in.X] = uint8(sum)
		mc.setFlag(sum > 0xFF)

	case Sub:
		noBorrow := v[in.X] >= v[in.Y]
		v[in.X] -= v[in.Y]
		mc.setFlag(noBorrow)

	case SubReverse:
		noBorrow := v[in.Y] >= v[in.X]
		v[in.X] = v[in.Y] - v[in.X]
		mc.setFlag(noBorrow)

	case ShiftRight:
		lsb := v[in.X] & 0x01
		v[in.X] >>= 1
		mc.setFlag(lsb == 1)

	case ShiftLeft:
		msb := v[in.X] >> 7
		v[in.X] <<= 1
		mc.setFlag(msb == 1)

	case SetAddress:
		mc.State.Address = in.Addr

	case JumpOffset:
		mc.State.Program = (in.Addr + uint16(v[0])) % MEMSIZE

	case Random:
		v[in.X] = mc.random() & in.Mask

	case Draw:
		base := int(mc.State.Address)
		height := int(in.Height)

		if err := mc.span(base, height); err != nil {
			return err
		}

		x, y := int(v[in.X]), int(v[in.Y])
		collision := false

		for row := 0; row < height; row++ {
			bits := mc.State.Memory[base+row]

			for col := 0; col < SPRITE_WIDTH; col++ {
				bit := bits&(0x80>>col) != 0
				if mc.State.Display.Toggle(x+col, y+row, bit) {
					collision = true
				}
			}
		}

		mc.setFlag(collision)

	case SkipKeyDown:
		mc.skip(mc.keyDown(v[in.X]))

	case SkipKeyUp:
		mc.skip(!mc.keyDown(v[in.X]))

	case GetDelay:
		v[in.X] = mc.State.Delay

	case WaitKey:
		// Rewinding re-runs this instruction next step until a key is down
		if key, ok := mc.firstKeyDown(); ok {
			v[in.X] = key
		} else {
			mc.State.Program -= 2
		}

	case SetDelay:
		mc.State.Delay = v[in.X]

	case SetSound:
		mc.State.Sound = v[in.X]

	case AddAddress:
		mc.State.Address += uint16(v[in.X])

	case FontAddress:
		mc.State.Address = MEMSPACE_FONT + uint16(v[in.X])*FONT_GLYPH_SIZE

	case StoreDecimal:
		base := int(mc.State.Address)

		if err := mc.span(base, 3); err != nil {
			return err
		}

		for i, digit := range encoding.DecimalDigits(v[in.X]) {
			mc.State.Memory[base+i] = digit
		}

	case DumpRegisters:
		base := int(mc.State.Address)

		if err := mc.span(base, int(in.X)+1); err != nil {
			return err
		}

		copy(mc.State.Memory[base:], v[:in.X+1])

	case LoadRegisters:
		base := int(mc.State.Address)

		if err := mc.span(base, int(in.X)+1); err != nil {
			return err
		}

		copy(v[:in.X+1], mc.State.Memory[base:])

	case NoOp:
		// Unknown opcodes only advance the program counter
	}

	return nil
}
