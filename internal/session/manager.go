package session

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-maze/internal/commands"
	"github.com/pixil98/go-maze/internal/content"
	"github.com/pixil98/go-maze/internal/display"
	"github.com/pixil98/go-maze/internal/logger"
)

type Option func(*Manager)

// WithSeed makes the puzzle words of every built world deterministic.
func WithSeed(seed uint64) Option {
	return func(m *Manager) {
		m.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithColor turns ANSI colour on or off.
func WithColor(enabled bool) Option {
	return func(m *Manager) {
		m.painter.Enabled = enabled
	}
}

// WithWrapWidth sets the column output is wrapped at. Zero disables
// wrapping.
func WithWrapWidth(width int) Option {
	return func(m *Manager) {
		m.width = width
	}
}

// Manager starts sessions over a shared, read-only world dictionary. Each
// session builds its own game from it.
type Manager struct {
	dict     *content.Dictionary
	handler  *commands.Handler
	painter  display.Painter
	width    int
	sessions sync.WaitGroup

	mu  sync.Mutex
	rng *rand.Rand
}

func NewManager(dict *content.Dictionary, opts ...Option) *Manager {
	now := uint64(time.Now().UnixNano())
	m := &Manager{
		dict:    dict,
		handler: commands.NewHandler(),
		width:   display.DefaultWidth,
		rng:     rand.New(rand.NewPCG(now, now>>1)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunSession plays games over conn until the player stops or the
// connection closes.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	m.sessions.Add(1)
	defer m.sessions.Done()

	id := uuid.New()
	s := &Session{
		id:      id,
		log:     logger.WithSession(slog.Default(), id),
		manager: m,
	}
	s.init(conn)

	s.log.InfoContext(ctx, "session started")
	err := s.Run(ctx)
	s.log.InfoContext(ctx, "session ended", "games", s.games)
	return err
}

// Wait blocks until every running session has ended.
func (m *Manager) Wait() {
	m.sessions.Wait()
}

// newRand gives each game its own source so sessions never share one.
func (m *Manager) newRand() *rand.Rand {
	m.mu.Lock()
	defer m.mu.Unlock()
	return rand.New(rand.NewPCG(m.rng.Uint64(), m.rng.Uint64()))
}
