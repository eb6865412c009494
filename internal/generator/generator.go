// Package generator assembles complete levels: it seeds the random stream,
// synthesizes every room, wires the room graph and populates the rooms.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeongen/internal/connect"
	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/noise"
	"github.com/samdwyer/dungeongen/internal/populate"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/telemetry"
	"github.com/samdwyer/dungeongen/internal/world"
)

var (
	// ErrUnknownTheme is returned when Options.Themes names a theme the
	// tables do not define.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrGeneratorUsed is returned by a second Generate call on one
	// Generator.
	ErrGeneratorUsed = errors.New("generator already used")
)

// Generator produces exactly one level. It owns its random stream, so two
// generations never share state.
type Generator struct {
	opts   Options
	tables *gamedata.Tables
	log    logrus.FieldLogger
	tracer trace.Tracer
	used   bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger for phase summaries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Generator) { g.log = l }
}

// WithTracer sets the tracer used for generation spans.
func WithTracer(t trace.Tracer) Option {
	return func(g *Generator) { g.tracer = t }
}

// WithTables replaces the embedded data tables.
func WithTables(t *gamedata.Tables) Option {
	return func(g *Generator) { g.tables = t }
}

// New creates a single-use generator. Options are normalized; forced rooms
// naming an unknown role or template fail here.
func New(opts Options, options ...Option) (*Generator, error) {
	g := &Generator{opts: opts.Normalize()}
	for _, o := range options {
		o(g)
	}
	if err := g.opts.validate(); err != nil {
		return nil, err
	}
	if g.tables == nil {
		t, err := gamedata.Default()
		if err != nil {
			return nil, fmt.Errorf("loading tables: %w", err)
		}
		g.tables = t
	}
	if g.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		g.log = l
	}
	if g.tracer == nil {
		g.tracer = telemetry.Tracer("generator")
	}
	return g, nil
}

// Generate builds a level from opts with a fresh Generator.
func Generate(ctx context.Context, opts Options, options ...Option) (*world.Level, error) {
	g, err := New(opts, options...)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx)
}

// Options returns the normalized options the generator runs with.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate builds the level. ctx only carries the trace.
func (g *Generator) Generate(ctx context.Context) (*world.Level, error) {
	if g.used {
		return nil, ErrGeneratorUsed
	}
	g.used = true

	opts := g.opts
	ctx, span := g.tracer.Start(ctx, "level.generate",
		trace.WithAttributes(
			attribute.String("seed", opts.Seed),
			attribute.Int("rooms", opts.RoomCount),
			attribute.Float64("difficulty", opts.Difficulty),
		),
	)
	defer span.End()

	level, err := g.generate(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.String("theme", level.Theme),
		attribute.Int("enemies", len(level.Enemies)),
		attribute.Int("treasures", len(level.Treasures)),
	)
	return level, nil
}

func (g *Generator) generate(ctx context.Context) (*world.Level, error) {
	opts := g.opts
	log := g.log.WithField("seed", opts.Seed)

	r := rng.New(opts.Seed)
	field := noise.New(r, noise.DefaultParams)

	theme, err := g.pickTheme(r)
	if err != nil {
		return nil, err
	}
	log = log.WithField("theme", theme.ID)

	rooms, err := g.buildRooms(ctx, r, field, theme)
	if err != nil {
		return nil, err
	}
	log.WithField("rooms", len(rooms)).Debug("rooms synthesized")

	_, span := g.tracer.Start(ctx, "level.connect")
	graph, err := connect.Plan(r, rooms, connect.Params{
		MainPathLength:  opts.MainPathLength,
		BranchingFactor: opts.BranchingFactor,
	})
	if err != nil {
		span.End()
		return nil, fmt.Errorf("connecting rooms: %w", err)
	}
	connect.Link(rooms, graph)
	span.SetAttributes(attribute.Int("edges", graph.Edges()))
	span.End()
	log.WithField("edges", graph.Edges()).Debug("rooms connected")

	level := &world.Level{
		ID:         world.LevelID(opts.Seed),
		Seed:       opts.Seed,
		Difficulty: opts.Difficulty,
		Theme:      theme.ID,
		Rooms:      rooms,
	}

	_, span = g.tracer.Start(ctx, "level.populate")
	engine := populate.New(r, g.tables, populate.NewSequentialIDs(level.ID), populate.WithResources(theme.Resources...))
	for _, room := range rooms {
		if err := engine.Populate(room, opts.Difficulty, opts.Rewards); err != nil {
			span.End()
			return nil, fmt.Errorf("populating %s: %w", room.ID, err)
		}
		level.Enemies = append(level.Enemies, room.Enemies...)
		level.Treasures = append(level.Treasures, room.Treasures...)
		if room.Role == world.RoleBoss && len(room.Enemies) > 0 {
			level.Boss = room.Enemies[0]
		}
	}
	span.SetAttributes(
		attribute.Int("enemies", len(level.Enemies)),
		attribute.Int("treasures", len(level.Treasures)),
	)
	span.End()

	log.WithFields(logrus.Fields{
		"enemies":   len(level.Enemies),
		"treasures": len(level.Treasures),
	}).Debug("level populated")
	return level, nil
}

// pickTheme draws one theme from the configured list, or from every theme
// when the list is empty.
func (g *Generator) pickTheme(r rng.Random) (*gamedata.ThemeDef, error) {
	ids := g.opts.Themes
	if len(ids) == 0 {
		ids = g.tables.ThemeIDs()
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no themes defined", ErrUnknownTheme)
	}
	for _, id := range ids {
		if g.tables.Theme(id) == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, id)
		}
	}
	return g.tables.Theme(rng.Pick(r, ids)), nil
}
