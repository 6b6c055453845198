package input

// Bindings maps each action to the keys that trigger it, for keyboards that
// report key state directly instead of as a byte stream.
type Bindings[K comparable] struct {
	Quit    []K
	Left    []K
	Right   []K
	Up      []K
	Down    []K
	Fire    []K
	Confirm []K
}

// Poll builds one frame of input. held reports keys that are down; pressed
// reports keys that went down this frame. Quit and Confirm trigger on a press,
// the rest while held.
func (b Bindings[K]) Poll(held, pressed func(K) bool) Input {
	return Input{
		Quit:    anyKey(b.Quit, pressed),
		Left:    anyKey(b.Left, held),
		Right:   anyKey(b.Right, held),
		Up:      anyKey(b.Up, held),
		Down:    anyKey(b.Down, held),
		Fire:    anyKey(b.Fire, held),
		Confirm: anyKey(b.Confirm, pressed),
	}
}

func anyKey[K comparable](keys []K, fn func(K) bool) bool {
	for _, k := range keys {
		if fn(k) {
			return true
		}
	}
	return false
}

// FireLatch hides Fire while the press that started a game is still held, so
// that press does not also launch a missile.
type FireLatch struct {
	armed bool
}

// Arm starts suppressing Fire until it is released.
func (l *FireLatch) Arm() {
	l.armed = true
}

// Filter clears in.Fire while the latch is armed and disarms on release.
func (l *FireLatch) Filter(in Input) Input {
	if !l.armed {
		return in
	}
	if in.Fire {
		in.Fire = false
	} else {
		l.armed = false
	}
	return in
}
