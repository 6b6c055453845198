package loop

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"math/rand/v2"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/metrics"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/world"
)

var (
	fire = input.Input{Fire: true, Pressed: []byte{' '}}
	idle = input.Input{}
)

func newTestSession(t *testing.T, out io.Writer, opts Options) *Session {
	t.Helper()
	opts.TermSizeFunc = draw.FixedSize(80, 24)
	opts.NewRand = func() world.Rand { return rand.New(rand.NewPCG(1, 2)) }
	return NewSession(bufio.NewReader(strings.NewReader("")), out, opts)
}

// endGame sets the world up so the next step loses the last life.
func endGame(w *world.World) {
	w.Player.Lives = 1
	w.Player.Health = 1
	w.EnemyBullets = append(w.EnemyBullets,
		object.NewEntity(999, object.KindEnemyBullet, w.Player.X+8, w.Player.Y))
}

func TestStartScreenWaitsForKey(t *testing.T) {
	s := newTestSession(t, io.Discard, Options{})
	now := time.Now()

	s.update(idle, now)
	assert.Equal(t, GameStateStart, s.State().GameState)
	assert.Nil(t, s.State().World)

	s.update(fire, now)
	assert.Equal(t, GameStatePlaying, s.State().GameState)
	require.NotNil(t, s.State().World)
	assert.Equal(t, 1, s.State().Games)
}

func TestConfirmAlsoStarts(t *testing.T) {
	s := newTestSession(t, io.Discard, Options{})
	s.update(input.Input{Confirm: true, Pressed: []byte{'\r'}}, time.Now())
	assert.Equal(t, GameStatePlaying, s.State().GameState)
}

func TestGameOverHoldsThenRestarts(t *testing.T) {
	var logs bytes.Buffer
	s := newTestSession(t, io.Discard, Options{Logger: log.New(&logs)})
	now := time.Now()

	s.update(fire, now)
	first := s.State().World
	first.Score = 7
	endGame(first)

	s.update(idle, now)
	require.Equal(t, GameStateOver, s.State().GameState)
	assert.Equal(t, 7, s.State().BestScore)
	assert.True(t, s.State().Holding(now))
	assert.Contains(t, logs.String(), "game over")

	s.update(fire, now.Add(gameOverHold-time.Millisecond))
	assert.Equal(t, GameStateOver, s.State().GameState, "input ignored while the final frame is held")

	s.update(fire, now.Add(gameOverHold))
	assert.Equal(t, GameStatePlaying, s.State().GameState)
	assert.NotSame(t, first, s.State().World)
	assert.Equal(t, 0, s.State().World.Score)
	assert.Equal(t, 2, s.State().Games)
	assert.Equal(t, 7, s.State().BestScore)
}

func TestQuitFromAnyState(t *testing.T) {
	quit := input.Input{Quit: true, Pressed: []byte{'q'}}

	for _, start := range []bool{false, true} {
		s := newTestSession(t, io.Discard, Options{})
		if start {
			s.update(fire, time.Now())
		}
		s.update(quit, time.Now())
		assert.False(t, s.State().Running)
	}
}

func TestIdleTimeout(t *testing.T) {
	s := newTestSession(t, io.Discard, Options{IdleTimeout: time.Second})
	now := time.Now()
	s.State().lastInput = now

	s.update(idle, now.Add(900*time.Millisecond))
	assert.True(t, s.State().Running)

	s.update(fire, now.Add(1500*time.Millisecond))
	assert.True(t, s.State().Running, "a key press resets the idle clock")

	s.update(idle, now.Add(2600*time.Millisecond))
	assert.False(t, s.State().Running)
}

func TestDrawFrameScreens(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(t, &out, Options{})
	now := time.Now()

	require.NoError(t, s.drawFrame(now))
	assert.Contains(t, out.String(), "S K Y R A I D")

	out.Reset()
	s.update(fire, now)
	require.NoError(t, s.drawFrame(now))
	assert.Contains(t, out.String(), "Lives: 3")
	assert.Contains(t, out.String(), "Health: 3")
	assert.Contains(t, out.String(), "Score: 0")
	assert.Contains(t, out.String(), string(draw.BlockFull), "the player is drawn")

	endGame(s.State().World)
	s.update(idle, now)

	out.Reset()
	require.NoError(t, s.drawFrame(now))
	assert.Contains(t, out.String(), "Lives: 0", "final frame is still shown")

	out.Reset()
	require.NoError(t, s.drawFrame(now.Add(gameOverHold)))
	assert.Contains(t, out.String(), "GAME OVER")
}

func TestRunEndsOnQuitKey(t *testing.T) {
	var out bytes.Buffer
	m := metrics.New()
	s := NewSession(bufio.NewReader(strings.NewReader("q")), &out, Options{
		TermSizeFunc: draw.FixedSize(80, 24),
		FrameTime:    time.Millisecond,
		Metrics:      m,
	})

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop")
	}

	assert.True(t, strings.HasPrefix(out.String(), "\033[?25l"))
	assert.True(t, strings.HasSuffix(out.String(), "\033[?25h"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "skyraid_sessions_total 1")
	assert.Contains(t, rec.Body.String(), "skyraid_sessions_active 0")
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	s := NewSession(bufio.NewReader(pr), io.Discard, Options{
		TermSizeFunc: draw.FixedSize(80, 24),
		FrameTime:    time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("session ignored cancellation")
	}
}

func TestGameStateString(t *testing.T) {
	assert.Equal(t, "playing", GameStatePlaying.String())
	assert.Equal(t, "unknown", GameState(9).String())
}
