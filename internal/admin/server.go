package admin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	"github.com/udisondev/itemforge/internal/loot"
	"github.com/udisondev/itemforge/internal/metrics"
	"github.com/udisondev/itemforge/internal/model"
)

// HeaderAPIKey carries the operator key.
const HeaderAPIKey = "X-API-Key"

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TemplateLoader resolves base templates (db.TemplateCache).
type TemplateLoader interface {
	GetBase(ctx context.Context, entry int32) (*model.ItemTemplate, error)
}

// LootRunner is the loot event hook (loot.Hook).
type LootRunner interface {
	OnGenerateLoot(ctx context.Context, l *model.Loot, creature *model.Creature, player loot.Player) []loot.Replacement
}

// LoginAnnouncer greets players entering the world (loot.Hook).
type LoginAnnouncer interface {
	OnLogin(player loot.Player)
}

// ItemGiver puts item instances into character inventories (db.ItemRepository).
type ItemGiver interface {
	GiveItem(ctx context.Context, item *model.Item) error
}

// APIKey is an accepted operator key. Hash is a bcrypt hash of the header value.
type APIKey struct {
	Name        string
	Hash        []byte
	AccessLevel int32
}

// Deps wires the HTTP surface. Login, Items and DB may be nil.
type Deps struct {
	Commands  *Handler
	Loot      LootRunner
	Login     LoginAnnouncer
	Templates TemplateLoader
	Items     ItemGiver
	DB        Pinger
	Keys      []APIKey
}

// NewRouter builds the operator HTTP router:
//
//	GET  /healthz        liveness
//	GET  /readyz         database ping
//	GET  /metrics        prometheus
//	POST /admin/command  run a registered command (X-API-Key)
//	POST /loot           run the loot hook for a creature (X-API-Key, operator level)
//	POST /login          messages for a player entering the world (X-API-Key)
//
// Without keys the authenticated routes are not mounted.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(metrics.Middleware)

	r.Get("/healthz", handleHealthz)
	r.Get("/readyz", handleReadyz(d.DB))
	r.Handle("/metrics", promhttp.Handler())

	if len(d.Keys) == 0 {
		slog.Warn("no admin API keys configured, command and loot endpoints disabled")
		return r
	}

	r.Group(func(r chi.Router) {
		r.Use(requireAPIKey(d.Keys))

		if d.Commands != nil {
			r.Post("/admin/command", handleCommand(d.Commands))
		}
		if d.Loot != nil && d.Templates != nil {
			r.With(requireAccessLevel(AccessOperator)).Post("/loot", handleLoot(d.Loot, d.Templates, d.Items))
		}
		if d.Login != nil {
			r.Post("/login", handleLogin(d.Login))
		}
	})
	return r
}

// requireAPIKey matches X-API-Key against the configured bcrypt hashes
// and stores the resulting Caller in the request context.
func requireAPIKey(keys []APIKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(HeaderAPIKey)
			if provided == "" {
				respondError(w, http.StatusUnauthorized, "missing API key")
				return
			}

			for _, k := range keys {
				err := bcrypt.CompareHashAndPassword(k.Hash, []byte(provided))
				if err == nil {
					ctx := WithCaller(r.Context(), Caller{Name: k.Name, AccessLevel: k.AccessLevel})
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
					slog.Error("checking API key", "key", k.Name, "error", err)
				}
			}

			slog.Warn("admin auth failed",
				"remote_addr", r.RemoteAddr,
				"path", r.URL.Path)
			respondError(w, http.StatusUnauthorized, "invalid API key")
		})
	}
}

func requireAccessLevel(level int32) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, _ := CallerFrom(r.Context())
			if !caller.CanUse(level) {
				respondError(w, http.StatusForbidden, ErrAccessDenied.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HealthResponse is returned by /healthz and /readyz.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func handleReadyz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Message: "no database"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			slog.Error("readiness check failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Message: "database unreachable"})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// CommandRequest is the body of POST /admin/command.
type CommandRequest struct {
	Command string `json:"command" validate:"required,max=256"`
}

// CommandResponse carries the command output.
type CommandResponse struct {
	Output string `json:"output"`
}

func handleCommand(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CommandRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		caller, _ := CallerFrom(r.Context())
		out, err := h.Execute(r.Context(), caller, req.Command)
		if err != nil {
			status := http.StatusUnprocessableEntity
			switch {
			case errors.Is(err, ErrEmptyCommand):
				status = http.StatusBadRequest
			case errors.Is(err, ErrUnknownCommand):
				status = http.StatusNotFound
			case errors.Is(err, ErrAccessDenied):
				status = http.StatusForbidden
			}
			respondJSON(w, status, ErrorResponse{Error: err.Error(), Output: out})
			return
		}
		respondJSON(w, http.StatusOK, CommandResponse{Output: out})
	}
}
