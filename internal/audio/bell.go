package audio

import "io"

// Bell rings the terminal bell for a chosen set of effects. Soundtracks are
// ignored; a terminal has no way to play them.
type Bell struct {
	w       io.Writer
	effects map[Effect]bool
}

// NewBell creates a Bell that writes to w. With no effects it stays silent.
func NewBell(w io.Writer, effects ...Effect) *Bell {
	b := &Bell{w: w, effects: make(map[Effect]bool, len(effects))}
	for _, e := range effects {
		b.effects[e] = true
	}
	return b
}

// Play writes BEL if the effect is enabled. Write errors are dropped; the
// frame writer on the same stream reports them.
func (b *Bell) Play(effect Effect) {
	if b.effects[effect] {
		_, _ = b.w.Write([]byte{'\a'})
	}
}

// PlayLoop does nothing.
func (b *Bell) PlayLoop(Track) {}
