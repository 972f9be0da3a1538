package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/itemforge/internal/admin"
	"github.com/udisondev/itemforge/internal/admin/commands"
	"github.com/udisondev/itemforge/internal/config"
	"github.com/udisondev/itemforge/internal/db"
	"github.com/udisondev/itemforge/internal/game/enchant"
	"github.com/udisondev/itemforge/internal/game/naming"
	"github.com/udisondev/itemforge/internal/idfactory"
	"github.com/udisondev/itemforge/internal/itemgen"
	"github.com/udisondev/itemforge/internal/loot"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Config first: it decides the log level
	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	slog.Info("itemforge starting", "log_level", cfg.LogLevel)

	dsn := cfg.Database.DSN()
	if err := db.RunMigrations(ctx, dsn); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	database, err := db.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	templateRepo := db.NewTemplateRepository(database.Pool())
	itemRepo := db.NewItemRepository(database.Pool())
	baseCache := db.NewTemplateCache(templateRepo, cfg.TemplateCache.Size, cfg.TemplateCache.TTL)

	// Generation tables
	gen := cfg.Generation
	registry, err := gen.Registry()
	if err != nil {
		return fmt.Errorf("building stat registry: %w", err)
	}
	curve := gen.PointCurve()
	uptier := gen.UptierSettings()
	variance := gen.VariancePercent

	generator := enchant.NewGenerator(enchant.Options{
		Registry:        registry,
		Curve:           curve,
		Rolls:           gen.RollTable(),
		RankBonuses:     gen.RankBonusTable(),
		Uptier:          &uptier,
		VariancePercent: &variance,
		AllowRepeats:    gen.AllowRepeatStats,
	})
	composer := naming.NewComposer(naming.Options{
		PerfectPrefix: gen.PerfectPrefix,
		PrefixesOnly:  gen.PrefixesOnly,
	})

	slog.Info("generation tables loaded",
		"enchantable_stats", registry.Len(),
		"max_level", curve.MaxLevel(),
		"variance_percent", variance,
		"allow_repeat_stats", gen.AllowRepeatStats)

	if logLevel == slog.LevelDebug {
		var b strings.Builder
		if err := curve.Print(&b); err == nil {
			slog.Debug("point curve", "table", b.String())
		}
	}

	// ID allocator: orphan purge + reuse of gaps left by deleted templates
	ids := idfactory.New(gen.IDStart)
	if err := ids.Reconcile(ctx, &idStoreAdapter{repo: templateRepo}); err != nil {
		return fmt.Errorf("reconciling template ids: %w", err)
	}
	st := ids.Stats()
	slog.Info("template id allocator ready",
		"start", st.Start,
		"next", st.Next,
		"max", st.Max,
		"free", st.Free)

	service := itemgen.NewService(generator, composer, ids, &templateStoreAdapter{repo: templateRepo})
	hook := loot.NewHook(service, loot.Options{
		Announce:     cfg.Loot.AnnounceOnLogin,
		Announcement: cfg.Loot.Announcement,
	})

	cmds := admin.NewHandler()
	commands.RegisterAll(cmds, commands.Deps{
		Base:    baseCache,
		Custom:  templateRepo,
		Creator: service,
		Items:   itemRepo,
		IDs:     ids,
		Curve:   curve,
	})
	slog.Info("admin commands registered", "count", cmds.CommandCount())

	if !cfg.Admin.Enabled {
		slog.Info("admin HTTP server disabled")
		<-ctx.Done()
		return nil
	}

	keys, err := apiKeys(cfg.Admin.APIKeys)
	if err != nil {
		return fmt.Errorf("loading admin API keys: %w", err)
	}

	srv := &http.Server{
		Addr: cfg.Admin.Addr(),
		Handler: admin.NewRouter(admin.Deps{
			Commands:  cmds,
			Loot:      hook,
			Login:     hook,
			Templates: baseCache,
			Items:     itemRepo,
			DB:        database,
			Keys:      keys,
		}),
		ReadTimeout:       cfg.Admin.ReadTimeout,
		ReadHeaderTimeout: cfg.Admin.ReadTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting admin HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("admin HTTP server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Admin.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("admin HTTP shutdown: %w", err)
		}
		slog.Info("admin HTTP server stopped")
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
