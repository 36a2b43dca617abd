package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/input"
)

// Keymap maps keys to simulation commands.
type Keymap map[ebiten.Key]input.Command

func DefaultKeymap() Keymap {
	return Keymap{
		ebiten.KeyArrowUp:    input.RotateCW,
		ebiten.KeyArrowLeft:  input.MoveLeft,
		ebiten.KeyArrowRight: input.MoveRight,
		ebiten.KeyArrowDown:  input.SoftDrop,
		ebiten.KeyEscape:     input.Quit,
	}
}

// Translate maps keys in order, dropping unmapped ones.
func (k Keymap) Translate(keys []ebiten.Key) []input.Command {
	var cmds []input.Command
	for _, key := range keys {
		if cmd, ok := k[key]; ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// Input reports the keys pressed since the previous ebiten tick. Poll must
// be called from the game's Update. Keys pressed within the same tick come
// back in key-code order, not in the order they were pressed.
type Input struct {
	keymap Keymap
	keys   []ebiten.Key

	// Suppress, when set and returning true, drops the keys of this tick.
	Suppress func() bool
}

func NewInput(keymap Keymap) *Input {
	return &Input{keymap: keymap}
}

func (in *Input) Poll() []input.Command {
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	if in.Suppress != nil && in.Suppress() {
		return nil
	}
	return in.keymap.Translate(in.keys)
}
