package admin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/udisondev/itemforge/internal/metrics"
)

var (
	// ErrEmptyCommand is returned for blank command text.
	ErrEmptyCommand = errors.New("empty command")
	// ErrUnknownCommand is returned when no command is registered under the name.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrAccessDenied is returned when the caller's level is below the command's.
	ErrAccessDenied = errors.New("insufficient access level")
)

// Command is an operator command.
// Each command registers one or more names and a required access level.
type Command interface {
	// Handle executes the command. args includes command name at [0].
	// Output for the operator goes to out.
	Handle(ctx context.Context, out io.Writer, args []string) error
	// Names returns all registered command names.
	Names() []string
	// RequiredAccessLevel returns the minimum access level to use this command.
	RequiredAccessLevel() int32
}

// Handler dispatches operator commands.
// Thread-safe: commands are registered once at startup, then read-only.
type Handler struct {
	mu   sync.RWMutex
	cmds map[string]Command // name → Command (lowercase)
}

// NewHandler creates a new command handler.
func NewHandler() *Handler {
	return &Handler{cmds: make(map[string]Command, 16)}
}

// RegisterAdmin registers a command.
// All command names are lowercased for case-insensitive lookup.
func (h *Handler) RegisterAdmin(cmd Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, name := range cmd.Names() {
		h.cmds[strings.ToLower(name)] = cmd
	}
}

// Execute runs text as a command on behalf of caller and returns its output.
// On a command error the partial output is returned together with the error.
func (h *Handler) Execute(ctx context.Context, caller Caller, text string) (string, error) {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return "", ErrEmptyCommand
	}
	cmdName := strings.ToLower(parts[0])
	parts[0] = cmdName

	h.mu.RLock()
	cmd, ok := h.cmds[cmdName]
	h.mu.RUnlock()

	if !ok {
		metrics.AdminCommands.WithLabelValues("unknown", metrics.ResultError).Inc()
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, cmdName)
	}

	if !caller.CanUse(cmd.RequiredAccessLevel()) {
		slog.Warn("admin command access denied",
			"caller", caller.Name,
			"command", cmdName,
			"required", cmd.RequiredAccessLevel(),
			"actual", caller.AccessLevel)
		metrics.AdminCommands.WithLabelValues(cmdName, metrics.ResultError).Inc()
		return "", fmt.Errorf("%w for %s (need %d, have %d)",
			ErrAccessDenied, cmdName, cmd.RequiredAccessLevel(), caller.AccessLevel)
	}

	slog.Info("admin command",
		"caller", caller.Name,
		"command", text)

	var out bytes.Buffer
	if err := cmd.Handle(WithCaller(ctx, caller), &out, parts); err != nil {
		slog.Error("admin command failed",
			"caller", caller.Name,
			"command", text,
			"error", err)
		metrics.AdminCommands.WithLabelValues(cmdName, metrics.ResultError).Inc()
		return out.String(), fmt.Errorf("%s: %w", cmdName, err)
	}

	metrics.AdminCommands.WithLabelValues(cmdName, metrics.ResultOK).Inc()
	return out.String(), nil
}

// CommandCount returns number of registered command names.
func (h *Handler) CommandCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.cmds)
}

// CommandNames returns registered names sorted alphabetically.
func (h *Handler) CommandNames() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.cmds))
	for name := range h.cmds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
