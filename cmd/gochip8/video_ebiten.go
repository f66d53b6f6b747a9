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

//go:build !headless

package main

import (
	"errors"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/lassandro/gochip8/pkg/machine"
	"golang.org/x/image/font/basicfont"
)

// Same physical layout as keypad.KeyForRune
var keyLayout = map[ebiten.Key]uint8{
	ebiten.KeyDigit1: 0x1, ebiten.KeyDigit2: 0x2, ebiten.KeyDigit3: 0x3, ebiten.KeyDigit4: 0xC,
	ebiten.KeyQ: 0x4, ebiten.KeyW: 0x5, ebiten.KeyE: 0x6, ebiten.KeyR: 0xD,
	ebiten.KeyA: 0x7, ebiten.KeyS: 0x8, ebiten.KeyD: 0x9, ebiten.KeyF: 0xE,
	ebiten.KeyZ: 0xA, ebiten.KeyX: 0x0, ebiten.KeyC: 0xB, ebiten.KeyV: 0xF,
}

const (
	// Logical pixels per machine pixel, so overlay text stays readable
	OVERLAY_SCALE = 8

	// basicfont.Face7x13 columns across the logical screen, less a margin
	HALT_LINE_WIDTH = machine.DISPLAY_WIDTH*OVERLAY_SCALE/7 - 1
)

var haltColor = color.RGBA{220, 40, 40, 255}

type windowOutput struct {
	runner *runner
	pixels []byte
	image  *ebiten.Image
	halt   error
}

// Splits "HALTED: <reason>" into lines of at most width runes
func haltLines(reason error, width int) []string {
	message := []rune("HALTED: " + reason.Error())
	lines := make([]string, 0, len(message)/width+1)

	for len(message) > width {
		lines = append(lines, strings.TrimSpace(string(message[:width])))
		message = message[width:]
	}

	return append(lines, strings.TrimSpace(string(message)))
}

func newWindowOutput(r *runner) *windowOutput {
	return &windowOutput{
		runner: r,
		pixels: make([]byte, machine.DISPLAY_WIDTH*machine.DISPLAY_HEIGHT*machine.PIXEL_SIZE),
	}
}

func (wo *windowOutput) handleKeyboardInput() {
	for physical, key := range keyLayout {
		if inpututil.IsKeyJustPressed(physical) {
			wo.runner.keys.Press(key)
		}
		if inpututil.IsKeyJustReleased(physical) {
			wo.runner.keys.Release(key)
		}
	}
}

func (wo *windowOutput) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	wo.handleKeyboardInput()

	// A halted machine keeps its last frame on screen until the window closes
	if wo.halt == nil {
		wo.halt = wo.runner.tick()
	}

	return nil
}

func (wo *windowOutput) Draw(screen *ebiten.Image) {
	if wo.image == nil {
		wo.image = ebiten.NewImage(machine.DISPLAY_WIDTH, machine.DISPLAY_HEIGHT)
	}

	frame := wo.runner.frame()
	frame.WriteRGBA(wo.pixels)
	wo.image.WritePixels(wo.pixels)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(OVERLAY_SCALE, OVERLAY_SCALE)
	screen.DrawImage(wo.image, &op)

	if wo.halt != nil {
		for i, line := range haltLines(wo.halt, HALT_LINE_WIDTH) {
			text.Draw(screen, line, basicfont.Face7x13, 4, 14+i*14, haltColor)
		}
	}
}

func (wo *windowOutput) Layout(_, _ int) (int, int) {
	return machine.DISPLAY_WIDTH * OVERLAY_SCALE, machine.DISPLAY_HEIGHT * OVERLAY_SCALE
}

// runWindow blocks on the calling goroutine, which must be the main one
func runWindow(r *runner, scale int) error {
	ebiten.SetWindowSize(machine.DISPLAY_WIDTH*scale, machine.DISPLAY_HEIGHT*scale)
	ebiten.SetWindowTitle("gochip8")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(TICK_RATE)

	wo := newWindowOutput(r)

	if err := ebiten.RunGame(wo); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	return wo.halt
}
