package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

// shutdownTimeout bounds how long open sessions may take to drain.
const shutdownTimeout = 10 * time.Second

// SSHServerConfig configures `bricks serve`.
type SSHServerConfig struct {
	Address string // host:port, e.g. ":23234"

	// HostKeyPath is the server key. Empty means UserDir()/host_key,
	// generated on first start.
	HostKeyPath string

	DBPath      string        // shared score history
	IdleTimeout time.Duration // disconnect idle clients after this long
	TickRate    int           // frames per second of every session
	Difficulty  core.Difficulty
}

// DefaultSSHServerConfig returns the settings `bricks serve` starts from.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.arcade/bricks/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		Difficulty:  core.DifficultyNormal,
	}
}

// SSHServer serves one SessionModel per SSH connection. All sessions share
// the score store; settings changed in a session stay in that session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer prepares the server without listening. A nil logger logs to
// stderr. Without a score store the server still starts and logs a warning.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "bricks-ssh",
		})
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{config: cfg, logger: logger}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			activeterm.Middleware(),
			s.sessionLog,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}
	s.server = server

	if s.store, err = storage.Open(cfg.DBPath); err != nil {
		logger.Warn("score history disabled", "error", err)
	}
	return s, nil
}

// hostKeyPath resolves the key location and makes sure its directory
// exists.
func hostKeyPath(path string) (string, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return "", fmt.Errorf("tui: %w", err)
	}
	if path == "" {
		dir := config.UserDir()
		if dir == "" {
			return "", errors.New("tui: cannot resolve home directory for host key")
		}
		path = filepath.Join(dir, "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the menu-first session for one connection. activeterm
// guarantees a PTY.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	cfg := core.RuntimeConfig{
		ScreenW:    pty.Window.Width,
		ScreenH:    pty.Window.Height,
		TickRate:   s.config.TickRate,
		Seed:       time.Now().UnixNano(),
		Difficulty: s.config.Difficulty,
	}
	settings := config.DefaultSettings()
	settings.Difficulty = s.config.Difficulty

	model := NewSessionModel(s.store, s.logger.With("user", sess.User()), cfg, settings, "")
	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}
}

func (s *SSHServer) sessionLog(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())

		logger.Info("session started")
		next(sess)
		logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe accepts connections until ctx is cancelled, then shuts
// down and closes the score store.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err, ok := <-errc:
		s.closeStore()
		if ok {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown stops accepting connections and waits for sessions to drain.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr is the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
