package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop/config"
)

// Session plays one game on one terminal: it reads keys, steps its own World
// and renders frames.
type Session struct {
	world        *World
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates the frame for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger

	input           input.Input
	lastInput       time.Time
	idleTimeout     bool
	inactive        bool
	shutdownDisplay time.Duration
	shutdownIn      time.Duration
	shuttingDown    bool
	running         bool
}

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Seed         int64       // 0 picks a seed from the clock
	Logger       *log.Logger // nil uses the package default

	// IdleTimeout warns and then disconnects players who stop pressing keys.
	IdleTimeout bool

	// ShutdownDisplay is how long the shutdown notice shows once the run
	// context is cancelled. Zero means config.ShutdownDisplayTime.
	ShutdownDisplay time.Duration
}

// NewSession creates a session reading keys from r and drawing to w.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) (*Session, error) {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	shutdownDisplay := opts.ShutdownDisplay
	if shutdownDisplay <= 0 {
		shutdownDisplay = config.ShutdownDisplayTime
	}

	world, err := NewWorld(opts.Seed, logger)
	if err != nil {
		return nil, err
	}

	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termSizeFunc)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Session{
		world:           world,
		canvas:          canvas,
		chunkWriter:     draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:          w,
		inputStream:     input.StartStream(r),
		termSizeFunc:    termSizeFunc,
		logger:          logger,
		lastInput:       time.Now(),
		idleTimeout:     opts.IdleTimeout,
		shutdownDisplay: shutdownDisplay,
		running:         true,
	}, nil
}

// Run creates a session and plays it until the player quits.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	s, err := NewSession(r, w, opts)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

// World returns the session's game.
func (s *Session) World() *World {
	return s.world
}

// Run plays frames until the player quits, the input ends or, after ctx is
// cancelled, the shutdown notice has been shown.
func (s *Session) Run(ctx context.Context) error {
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	lastTime := time.Now()

	for s.running {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		if !s.shuttingDown && ctx.Err() != nil {
			s.shuttingDown = true
			s.shutdownIn = s.shutdownDisplay
		}

		s.processInput(frameStart)
		s.updateScreen()

		if s.shuttingDown {
			s.shutdownIn -= delta
			if s.shutdownIn <= 0 {
				s.running = false
			}
		} else if err := s.world.Step(s.input, delta); err != nil {
			return fmt.Errorf("loop: step: %w", err)
		}

		if err := s.drawFrame(); err != nil {
			return fmt.Errorf("loop: draw: %w", err)
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(s.writer)
	return nil
}

// processInput reads pending keys and tracks inactivity.
func (s *Session) processInput(now time.Time) {
	s.input = input.ReadInput(s.inputStream)

	if s.input.Quit || s.inputStream.Closed() {
		s.running = false
		return
	}
	if !s.idleTimeout {
		return
	}

	idle := now.Sub(s.lastInput)
	switch {
	case s.input.Any:
		s.lastInput = now
		s.inactive = false
	case idle > config.InactivityDisconnectUser:
		s.logger.Info("disconnecting idle player", "idle", idle.Round(time.Second))
		s.running = false
	case idle > config.InactivityWarnUser:
		s.inactive = true
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (s *Session) updateScreen() {
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(s.termSizeFunc)
	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize reads the terminal size and fits the render area into it.
// An unreadable size falls back to the max render resolution.
func clampTermSize(termSizeFunc draw.TermSizeFunc) (width, height, offsetCol, offsetRow int) {
	termWidth, termHeight, err := termSizeFunc()
	if err != nil || termWidth <= 0 || termHeight <= 0 {
		termWidth, termHeight = config.MaxRenderCols, config.MaxRenderRows
	}
	return draw.ClampTermSize(termWidth, termHeight, config.MaxRenderCols, config.MaxRenderRows)
}

// drawFrame renders the world and the overlay for the current state.
func (s *Session) drawFrame() error {
	cw := s.chunkWriter
	cw.ClearScreen()

	s.canvas.Clear()
	if err := s.world.Draw(s.canvas); err != nil {
		return err
	}
	if err := s.canvas.Render(cw); err != nil {
		return err
	}
	cw.Border(s.canvas.TerminalWidth(), s.canvas.TerminalHeight())

	s.drawUI()

	return cw.Flush()
}
