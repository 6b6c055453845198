package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/metrics"
	"github.com/tomz197/skyraid/internal/world"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skyraid-ssh: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skyraid-ssh: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *log.Logger) error {
	bell, err := cfg.Game.BellEffects()
	if err != nil {
		return err
	}

	var m *metrics.Metrics
	if cfg.Metrics.Addr != "" {
		m = metrics.New()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	games := &gameHandler{
		ctx:     ctx,
		cfg:     cfg,
		bell:    bell,
		logger:  logger,
		metrics: m,
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.SSH.Addr()),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.DebugLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.SSH.HostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSH.HostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create ssh server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting ssh server", "addr", cfg.SSH.Addr())
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	})
	if m != nil {
		g.Go(func() error {
			logger.Info("serving metrics", "addr", cfg.Metrics.Addr)
			return m.Serve(gctx, cfg.Metrics.Addr)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		// Sessions watch ctx and leave on their own; wait for them first.
		games.wait(shutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("ssh shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// gameHandler runs one single-player session per SSH connection.
type gameHandler struct {
	ctx     context.Context
	cfg     *config.Config
	bell    []audio.Effect
	logger  *log.Logger
	metrics *metrics.Metrics

	sessions sync.WaitGroup
}

// middleware handles SSH sessions and runs the game.
func (h *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			wish.Fatalln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		h.sessions.Add(1)
		defer h.sessions.Done()

		id := uuid.New()
		logger := h.logger.With("session", id.String(), "user", sess.User())
		logger.Info("session started", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		// End the session when either the server stops or the client leaves.
		ctx, cancel := context.WithCancel(h.ctx)
		defer cancel()
		go func() {
			select {
			case <-sess.Context().Done():
				cancel()
			case <-ctx.Done():
			}
		}()

		session := loop.NewSession(bufio.NewReader(sess), sess, loop.Options{
			Rules:        world.DefaultRules(),
			TermSizeFunc: sizeTracker.getSize,
			FrameTime:    h.cfg.Game.FrameTime(),
			IdleTimeout:  h.cfg.Session.IdleTimeout,
			NewRand:      func() world.Rand { return h.cfg.Game.NewRand() },
			Bell:         h.bell,
			Logger:       logger,
			Metrics:      h.metrics,
		})
		if err := session.Run(ctx); err != nil {
			logger.Warn("session error", "err", err)
		}

		logger.Info("session ended", "games", session.State().Games, "best", session.State().BestScore)
		next(sess)
	}
}

// wait blocks until every session has ended or the timeout passes.
func (h *gameHandler) wait(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		h.sessions.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		h.logger.Warn("sessions still running at shutdown")
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
