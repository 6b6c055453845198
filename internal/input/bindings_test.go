package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testBindings = Bindings[rune]{
	Quit:    []rune{'q', 0x1b},
	Left:    []rune{'a', '←'},
	Right:   []rune{'d', '→'},
	Up:      []rune{'w'},
	Down:    []rune{'s'},
	Fire:    []rune{' '},
	Confirm: []rune{'\r'},
}

func keySet(keys ...rune) func(rune) bool {
	set := map[rune]bool{}
	for _, k := range keys {
		set[k] = true
	}
	return func(k rune) bool { return set[k] }
}

func TestBindingsPoll(t *testing.T) {
	tests := []struct {
		name    string
		held    []rune
		pressed []rune
		want    Input
	}{
		{"nothing", nil, nil, Input{}},
		{"second binding counts", []rune{'←'}, nil, Input{Left: true}},
		{"diagonal and fire", []rune{'d', 'w', ' '}, nil, Input{Right: true, Up: true, Fire: true}},
		{"held quit is not a press", []rune{'q', '\r'}, nil, Input{}},
		{"pressed quit and confirm", []rune{'q', '\r'}, []rune{'q', '\r'}, Input{Quit: true, Confirm: true}},
		{"press of a held-only key", nil, []rune{'s'}, Input{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testBindings.Poll(keySet(tt.held...), keySet(tt.pressed...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFireLatch(t *testing.T) {
	var latch FireLatch
	fire := Input{Fire: true}

	assert.True(t, latch.Filter(fire).Fire, "unarmed latch passes fire through")

	latch.Arm()
	assert.False(t, latch.Filter(fire).Fire)
	assert.False(t, latch.Filter(Input{Fire: true, Left: true}).Fire)
	assert.True(t, latch.Filter(Input{Fire: true, Left: true}).Left, "other keys pass")

	assert.False(t, latch.Filter(Input{}).Fire, "release disarms")
	assert.True(t, latch.Filter(fire).Fire, "a fresh press fires")
}
