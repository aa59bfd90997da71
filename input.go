package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/mistwood/platform"
)

const stickDeadZone = 0.3

var keyBindings = map[platform.Key][]ebiten.Key{
	platform.KeyLeft:    {ebiten.KeyLeft, ebiten.KeyA},
	platform.KeyRight:   {ebiten.KeyRight, ebiten.KeyD},
	platform.KeyJump:    {ebiten.KeyZ, ebiten.KeySpace},
	platform.KeyDash:    {ebiten.KeyX, ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	platform.KeyConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	platform.KeyEscape:  {ebiten.KeyEscape},
}

var padBindings = map[platform.Key]ebiten.StandardGamepadButton{
	platform.KeyLeft:    ebiten.StandardGamepadButtonLeftLeft,
	platform.KeyRight:   ebiten.StandardGamepadButtonLeftRight,
	platform.KeyJump:    ebiten.StandardGamepadButtonRightBottom,
	platform.KeyDash:    ebiten.StandardGamepadButtonRightLeft,
	platform.KeyConfirm: ebiten.StandardGamepadButtonCenterRight,
}

// pollOrder fixes the order KeysDown is reported in.
var pollOrder = []platform.Key{
	platform.KeyLeft,
	platform.KeyRight,
	platform.KeyJump,
	platform.KeyDash,
	platform.KeyConfirm,
	platform.KeyEscape,
}

// Input samples keyboard, mouse and the first gamepad once per tick.
type Input struct {
	pads []ebiten.GamepadID
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Poll() platform.Input {
	i.pads = ebiten.AppendGamepadIDs(i.pads[:0])

	var in platform.Input
	for _, k := range pollOrder {
		if i.held(k) {
			switch k {
			case platform.KeyLeft:
				in.Left = true
			case platform.KeyRight:
				in.Right = true
			case platform.KeyJump:
				in.Jump = true
			case platform.KeyDash:
				in.Dash = true
			case platform.KeyConfirm:
				in.Confirm = true
			case platform.KeyEscape:
				in.Escape = true
			}
		}
		if i.justPressed(k) {
			in.KeysDown = append(in.KeysDown, k)
		}
	}

	if len(i.pads) > 0 {
		x := ebiten.StandardGamepadAxisValue(i.pads[0], ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -stickDeadZone {
			in.Left = true
		} else if x > stickDeadZone {
			in.Right = true
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Clicks = append(in.Clicks, platform.Point{X: float64(x), Y: float64(y)})
	}
	return in
}

func (i *Input) held(k platform.Key) bool {
	for _, key := range keyBindings[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	if b, ok := padBindings[k]; ok && len(i.pads) > 0 {
		return ebiten.IsStandardGamepadButtonPressed(i.pads[0], b)
	}
	return false
}

func (i *Input) justPressed(k platform.Key) bool {
	for _, key := range keyBindings[k] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	if b, ok := padBindings[k]; ok && len(i.pads) > 0 {
		return inpututil.IsStandardGamepadButtonJustPressed(i.pads[0], b)
	}
	return false
}
