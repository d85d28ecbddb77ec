// Package action runs the shell commands attached to leaf menu items.
package action

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const maxOutput = 64 * 1024

// FinishedMsg is sent when an item command exits.
type FinishedMsg struct {
	Name    string
	Command string
	Output  string
	Err     error
}

// Executor runs item commands through a Runner.
type Executor struct {
	Runner  Runner
	Shell   string
	Size    Size
	Timeout time.Duration
	Logger  *slog.Logger
}

// NewExecutor returns an executor that runs commands with sh in a pty.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Executor{
		Runner:  &CreackPTY{},
		Shell:   "sh",
		Size:    Size{Rows: 24, Cols: 80},
		Timeout: 30 * time.Second,
		Logger:  logger,
	}
}

// Run returns a command that executes command and reports a FinishedMsg.
func (e *Executor) Run(name, command string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if e.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, e.Timeout)
			defer cancel()
		}
		out, err := e.Exec(ctx, command)
		return FinishedMsg{Name: name, Command: command, Output: out, Err: err}
	}
}

// Exec runs command to completion and returns its combined terminal output.
func (e *Executor) Exec(ctx context.Context, command string) (string, error) {
	if command == "" {
		return "", errors.New("empty command")
	}
	shell := e.Shell
	if shell == "" {
		shell = "sh"
	}
	cmd := exec.CommandContext(ctx, shell, "-c", command)
	start := time.Now()
	term, err := e.Runner.Start(ctx, cmd, e.Size)
	if err != nil {
		return "", fmt.Errorf("start %q: %w", command, err)
	}
	defer term.Close()

	var buf bytes.Buffer
	_, readErr := io.Copy(&buf, io.LimitReader(term, maxOutput))
	if readErr == nil {
		// Keep reading past the limit so the child never blocks on a full pty.
		_, readErr = io.Copy(io.Discard, term)
	}
	// A pty reports EIO once the child side is closed.
	if readErr != nil && !errors.Is(readErr, syscall.EIO) {
		err = fmt.Errorf("read output: %w", readErr)
	}
	if cmd.Process != nil {
		if waitErr := cmd.Wait(); waitErr != nil && err == nil {
			err = waitErr
		}
	}
	out := normalizeOutput(buf.Bytes())
	e.Logger.Debug("item command finished", "command", command, "duration", time.Since(start), "bytes", len(out), "error", err)
	return out, err
}

func normalizeOutput(b []byte) string {
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	return string(bytes.TrimRight(b, "\n"))
}
