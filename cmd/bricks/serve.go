package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/platform/tui"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagIdleTimeout   int
	flagSSHDifficulty string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the main menu.
Settings changed in a session last for that session only.
Scores are stored per server (all users share the same history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/bricks/host_key

Examples:
  bricks serve                           # Listen on :23234 with auto-generated key
  bricks serve --ssh :2222               # Listen on port 2222
  bricks serve --host-key ./my_host_key  # Use specific host key
  bricks serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	d := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", d.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(d.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagSSHDifficulty, "difficulty", d.Difficulty.String(), "Starting difficulty of new sessions")
}

func runServe(_ *cobra.Command, _ []string) {
	difficulty, err := core.ParseDifficulty(flagSSHDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Difficulty:  difficulty,
	}

	logger := newLogger(false)
	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Brick Arcade SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = server.ListenAndServe(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// port returns the port part of a host:port address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
