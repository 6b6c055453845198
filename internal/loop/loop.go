// Package loop runs a terminal game session: the title screen, games driven
// at a fixed frame rate, and the game over screen, rendered with ANSI
// half-block graphics.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/background"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/metrics"
	"github.com/tomz197/skyraid/internal/world"
)

const defaultFrameTime = time.Second / 60

// backgroundCell is the edge length of a background texture cell in field pixels.
const backgroundCell = 16

// Options configures a Session. Zero values pick sensible defaults.
type Options struct {
	Rules        world.Rules
	TermSizeFunc draw.TermSizeFunc
	FrameTime    time.Duration
	IdleTimeout  time.Duration     // 0 never disconnects idle players
	NewRand      func() world.Rand // Random source for each new game
	Bell         []audio.Effect    // Effects that ring the terminal bell
	Logger       *log.Logger
	Metrics      *metrics.Metrics
}

// Session handles rendering and input for one player.
type Session struct {
	opts        Options
	state       *State
	canvas      *draw.Canvas
	writer      *draw.ChunkWriter
	inputStream *input.Stream
	sounds      audio.Player
	texture     *background.Texture
	logger      *log.Logger
}

// NewSession creates a session reading keys from r and drawing to w.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) *Session {
	if opts.Rules.Field.Width == 0 {
		opts.Rules = world.DefaultRules()
	}
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.FrameTime <= 0 {
		opts.FrameTime = defaultFrameTime
	}
	if opts.NewRand == nil {
		opts.NewRand = DefaultRand
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	field := opts.Rules.Field
	termWidth, termHeight, _ := opts.TermSizeFunc()
	canvas := draw.NewScaledCanvas(termWidth, termHeight, float64(field.Width), float64(field.Height))
	writer := draw.NewChunkWriter(w, canvas.OffsetCol(), canvas.OffsetRow())
	writer.SetBounds(canvas.Cols(), canvas.Rows())

	return &Session{
		opts:        opts,
		state:       NewState(time.Now()),
		canvas:      canvas,
		writer:      writer,
		inputStream: input.StartStream(r),
		sounds:      audio.NewBell(writer, opts.Bell...),
		texture:     background.NewTexture(field.Width, field.Height, backgroundCell, time.Now().UnixNano()),
		logger:      logger,
	}
}

// State returns the session state.
func (s *Session) State() *State {
	return s.state
}

// Run starts the session loop with the standard Input → Update → Draw cycle.
// It blocks until the player quits, disconnects, idles out or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	s.opts.Metrics.SessionStarted()
	defer s.opts.Metrics.SessionEnded()

	if err := s.enterTerminal(); err != nil {
		return err
	}
	defer s.leaveTerminal()

	for s.state.Running {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			s.logger.Info("session cancelled", "reason", context.Cause(ctx))
			return nil
		default:
		}

		// ===== INPUT + UPDATE PHASE =====
		s.state.Input = input.ReadInput(s.inputStream)
		s.update(s.state.Input, frameStart)

		// ===== DRAW PHASE =====
		s.updateScreen()
		if err := s.drawFrame(frameStart); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		s.opts.Metrics.ObserveFrame(elapsed)
		s.opts.Metrics.ObserveFrameBytes(s.writer.LastFlush())
		if elapsed < s.opts.FrameTime {
			time.Sleep(s.opts.FrameTime - elapsed)
		}
	}

	return nil
}

func (s *Session) enterTerminal() error {
	if err := draw.HideCursor(s.writer); err != nil {
		return err
	}
	if err := draw.ClearScreen(s.writer); err != nil {
		return err
	}
	if err := s.writer.Flush(); err != nil {
		return fmt.Errorf("prepare terminal: %w", err)
	}
	return nil
}

// leaveTerminal restores the cursor. The connection may already be gone, so
// errors are ignored.
func (s *Session) leaveTerminal() {
	_ = draw.ClearScreen(s.writer)
	_ = draw.ShowCursor(s.writer)
	_ = s.writer.Flush()
}

// updateScreen checks for terminal resize and updates canvas scaling.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.opts.TermSizeFunc()
	if err != nil {
		return
	}
	s.canvas.Resize(termWidth, termHeight)
	s.writer.SetOffset(s.canvas.OffsetCol(), s.canvas.OffsetRow())
	s.writer.SetBounds(s.canvas.Cols(), s.canvas.Rows())
}
