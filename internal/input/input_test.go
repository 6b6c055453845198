package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBytesArrowKeys(t *testing.T) {
	now := time.Now()
	var state keyState
	applyBytes(&state, []byte("\x1b[A\x1b[D"), now)

	in := snapshot(&state, now)
	assert.True(t, in.Up)
	assert.True(t, in.Left)
	assert.False(t, in.Down)
	assert.False(t, in.Right)
	assert.False(t, in.Quit, "escape sequence must not be read as plain keys")
}

func TestApplyBytesLetters(t *testing.T) {
	now := time.Now()
	var state keyState
	applyBytes(&state, []byte("sd \r"), now)

	in := snapshot(&state, now)
	assert.True(t, in.Down)
	assert.True(t, in.Right)
	assert.True(t, in.Fire)
	assert.True(t, in.Confirm)
	assert.False(t, in.Up)
}

func TestKeyHoldExpires(t *testing.T) {
	now := time.Now()
	var state keyState
	applyBytes(&state, []byte("w"), now)

	assert.True(t, snapshot(&state, now.Add(keyHoldDuration/2)).Up)
	assert.False(t, snapshot(&state, now.Add(keyHoldDuration)).Up)
}

func TestReadInputFromStream(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("q")))

	require.Eventually(t, func() bool {
		return ReadInput(s).Quit
	}, time.Second, time.Millisecond)
}

func TestClosedStreamReportsQuit(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))

	require.Eventually(t, func() bool {
		in := ReadInput(s)
		return in.Quit && s.Closed()
	}, time.Second, time.Millisecond)
}

func TestResetKeyInput(t *testing.T) {
	now := time.Now()
	s := &Stream{ch: make(chan byte)}
	applyBytes(&s.state, []byte("\r"), now)
	require.True(t, snapshot(&s.state, now).Confirm)

	ResetKeyInput(s)
	assert.False(t, snapshot(&s.state, now).Confirm)
	ResetKeyInput(nil)
}
