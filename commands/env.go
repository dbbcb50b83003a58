// Package commands provides the semlink CLI subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/semlink/concept"
	"github.com/c360studio/semlink/config"
	"github.com/c360studio/semlink/export"
	"github.com/c360studio/semlink/graph"
	"github.com/c360studio/semlink/load"
	"github.com/c360studio/semlink/metric"
	"github.com/c360studio/semlink/query"
	"github.com/c360studio/semlink/schema"
	"github.com/c360studio/semlink/vocabulary/enterprise"
)

// Env bundles the configured runtime every subcommand works against: the
// schema registry with the enterprise ontology installed, an empty store,
// and the loader/mapper/engine built over it.
type Env struct {
	Config  *config.Config
	Logger  *slog.Logger
	Store   *graph.Store
	Loader  *load.Loader
	Mapper  *concept.Mapper
	Engine  *query.Engine
	Metrics *metric.Metrics

	nc *nats.Conn
}

// NewEnv loads configuration, configures logging, and builds the runtime.
// The log level flag overrides the configured level when set.
func NewEnv(logLevel string) (*Env, error) {
	bootstrap := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg, err := config.NewLoader(bootstrap).Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	logger := newLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	reg := schema.NewRegistry()
	if err := enterprise.RegisterSchema(reg); err != nil {
		return nil, fmt.Errorf("register ontology: %w", err)
	}

	metrics := metric.New(prometheus.DefaultRegisterer)

	env := &Env{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics,
	}

	if cfg.NATS.URL != "" {
		nc, err := nats.Connect(cfg.NATS.URL, nats.Name("semlink"))
		if err != nil {
			return nil, fmt.Errorf("connect to NATS %s: %w", cfg.NATS.URL, err)
		}
		logger.Debug("Connected to NATS", slog.String("url", cfg.NATS.URL))
		env.nc = nc
	}

	publisher := graph.NewPublisher(env.nc)
	env.Store = graph.NewStore(reg, graph.WithMetrics(metrics))
	env.Loader = load.NewLoader(env.Store,
		load.WithPublisher(publisher),
		load.WithMetrics(metrics))
	env.Mapper = concept.NewMapper(env.Store, concept.WithPublisher(publisher))
	env.Engine = query.NewEngine(env.Store, query.WithMetrics(metrics))

	return env, nil
}

// Close releases the NATS connection if one was opened.
func (e *Env) Close() {
	if e.nc != nil {
		e.nc.Close()
	}
}

// LoadFiles loads each N-Triples file into the store under a namespace
// derived from the file name. Rejects are logged; atomic loads fail fast.
func (e *Env) LoadFiles(ctx context.Context, paths []string, atomic bool) error {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		records, err := export.ParseNTriples(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		result, err := e.Loader.LoadRecords(ctx, load.NamespaceForFile(path), records, atomic)
		if err != nil {
			return err
		}
		for _, rej := range result.Rejects {
			e.Logger.Warn("Record rejected",
				slog.String("namespace", result.Namespace),
				slog.String("kind", rej.Kind),
				slog.String("reason", rej.Reason))
		}
		e.Logger.Info("Loaded ontology file",
			slog.String("path", path),
			slog.String("namespace", result.Namespace),
			slog.Int("entities", result.Entities),
			slog.Int("relations", result.Relations),
			slog.Int("labels", result.Labels),
			slog.Int("rejects", len(result.Rejects)))
	}
	return nil
}

// QualifyIRI expands a short class or property name against the enterprise
// ontology namespace. Full IRIs pass through unchanged.
func QualifyIRI(name string) string {
	if strings.Contains(name, "://") {
		return name
	}
	return enterprise.Namespace + name
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
