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

package encoding_test

import (
	"testing"

	"github.com/lassandro/gochip8/pkg/encoding"
	"github.com/retroenv/retrogolib/assert"
)

func TestOpcode(t *testing.T) {
	assert.Equal(t, uint16(0xD12F), encoding.Opcode(0xD1, 0x2F))
	assert.Equal(t, uint16(0x00E0), encoding.Opcode(0x00, 0xE0))
}

func TestFields(t *testing.T) {
	const opcode uint16 = 0xD4A7

	assert.Equal(t, [4]uint8{0xD, 0x4, 0xA, 0x7}, encoding.Nibbles(opcode))
	assert.Equal(t, uint16(0x4A7), encoding.Address(opcode))
	assert.Equal(t, uint8(0xA7), encoding.Immediate(opcode))
	assert.Equal(t, uint8(0x7), encoding.Short(opcode))
	assert.Equal(t, uint8(0x4), encoding.RegisterX(opcode))
	assert.Equal(t, uint8(0xA), encoding.RegisterY(opcode))
}

func TestDecimalDigits(t *testing.T) {
	tests := []struct {
		value uint8
		want  [3]uint8
	}{
		{0, [3]uint8{0, 0, 0}},
		{7, [3]uint8{0, 0, 7}},
		{42, [3]uint8{0, 4, 2}},
		{100, [3]uint8{1, 0, 0}},
		{255, [3]uint8{2, 5, 5}},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, encoding.DecimalDigits(test.value))
	}
}
