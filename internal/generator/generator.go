// Package generator produces deterministic, session-unique fantasy names.
//
// A Generator owns a seeded random stream, a per-kind record of names it has
// already returned, and a theme registry. Two generators built with the same
// seed and configuration return the same sequence of names for the same
// sequence of calls. Reset replays that sequence from the start.
package generator

import (
	"fmt"
	"io"
	"log/slog"

	"namecraft/internal/random"
	"namecraft/internal/registry"
	"namecraft/internal/session"
	"namecraft/internal/theme"
	"namecraft/internal/theme/builtin"
)

// MaxAttempts bounds the candidates drawn by a single generation call.
const MaxAttempts = 1000

// Request describes one generation call. Gender applies to KindNPC and
// BuildingType to KindBuilding; both are ignored for other kinds. A nil
// Gender draws one per attempt, a nil BuildingType selects the generic
// building template.
type Request struct {
	Kind         theme.EntityKind
	Theme        theme.Ref
	Gender       *theme.Gender
	BuildingType *theme.BuildingType
}

type options struct {
	seed   *int64
	config Config
	logger *slog.Logger
	loader registry.Loader
}

type Option func(*options)

// WithSeed fixes the seed. Without it a seed is drawn from the system's
// entropy source; read it back with Seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithBuiltinLoader replaces the embedded built-in theme data.
func WithBuiltinLoader(load registry.Loader) Option {
	return func(o *options) {
		if load != nil {
			o.loader = load
		}
	}
}

// Generator is not safe for concurrent use. Callers sharing one across
// goroutines must serialise access.
type Generator struct {
	logger   *slog.Logger
	registry *registry.Registry
	state    *session.State
}

func New(opts ...Option) (*Generator, error) {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		loader: builtin.Load,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var seed int64
	if o.seed != nil {
		seed = *o.seed
	} else {
		s, err := random.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("drawing seed: %w", err)
		}
		seed = s
	}

	reg := registry.New(o.loader, registry.WithLogger(o.logger))
	if err := o.config.Register(reg); err != nil {
		return nil, err
	}

	o.logger.Debug("generator created",
		slog.Int64("seed", seed),
		slog.Int("custom_themes", len(o.config.CustomThemes)),
		slog.Int("extensions", len(o.config.Extensions)),
	)
	return &Generator{
		logger:   o.logger,
		registry: reg,
		state:    session.NewState(seed),
	}, nil
}

func (g *Generator) Seed() int64 {
	return g.state.Seed()
}

// Reset forgets every emitted name and restarts the random stream from the
// original seed. Registered themes and extensions are kept.
func (g *Generator) Reset() {
	g.state.Reset()
	g.logger.Debug("generator reset", slog.Int64("seed", g.state.Seed()))
}

// ThemeNames lists built-in themes in declaration order, then custom themes.
func (g *Generator) ThemeNames() []string {
	return g.registry.Names()
}

func (g *Generator) RegisterCustomTheme(id string, data *theme.Data) error {
	return g.registry.RegisterCustomTheme(id, data)
}

func (g *Generator) RegisterExtension(baseID string, fragment *theme.Data) error {
	return g.registry.RegisterExtension(baseID, fragment)
}

// Emitted reports how many distinct names of kind have been returned since
// construction or the last Reset.
func (g *Generator) Emitted(kind theme.EntityKind) int {
	return g.state.Tracker().Count(kind)
}

func (g *Generator) NPCName(ref theme.Ref) (string, error) {
	return g.Generate(Request{Kind: theme.KindNPC, Theme: ref})
}

func (g *Generator) NPCNameWithGender(ref theme.Ref, gender theme.Gender) (string, error) {
	return g.Generate(Request{Kind: theme.KindNPC, Theme: ref, Gender: &gender})
}

func (g *Generator) BuildingName(ref theme.Ref) (string, error) {
	return g.Generate(Request{Kind: theme.KindBuilding, Theme: ref})
}

func (g *Generator) BuildingNameOfType(ref theme.Ref, buildingType theme.BuildingType) (string, error) {
	return g.Generate(Request{Kind: theme.KindBuilding, Theme: ref, BuildingType: &buildingType})
}

func (g *Generator) CityName(ref theme.Ref) (string, error) {
	return g.Generate(Request{Kind: theme.KindCity, Theme: ref})
}

func (g *Generator) DistrictName(ref theme.Ref) (string, error) {
	return g.Generate(Request{Kind: theme.KindDistrict, Theme: ref})
}

func (g *Generator) StreetName(ref theme.Ref) (string, error) {
	return g.Generate(Request{Kind: theme.KindStreet, Theme: ref})
}

func (g *Generator) FactionName(ref theme.Ref) (string, error) {
	return g.Generate(Request{Kind: theme.KindFaction, Theme: ref})
}

// Generate returns a name of req.Kind that has not been returned before in
// this session. Parameters are validated before any random draw, so a
// rejected request leaves the stream untouched.
func (g *Generator) Generate(req Request) (string, error) {
	if err := req.validate(); err != nil {
		return "", err
	}

	data, err := g.registry.Theme(req.Theme.ID())
	if err != nil {
		return "", err
	}
	assemble := req.assembler(data)

	tracker := g.state.Tracker()
	stream := g.state.Stream()
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		name := assemble(stream)
		if !tracker.IsUnique(req.Kind, name) {
			continue
		}
		tracker.Track(req.Kind, name)
		return name, nil
	}

	g.logger.Warn("name pool exhausted",
		slog.String("kind", req.Kind.String()),
		slog.String("theme", req.Theme.String()),
		slog.Int("attempts", MaxAttempts),
		slog.Int("emitted", tracker.Count(req.Kind)),
	)
	return "", &PoolExhaustedError{Kind: req.Kind, Theme: req.Theme.String(), Attempts: MaxAttempts}
}

func (r Request) validate() error {
	if err := r.Kind.Validate(); err != nil {
		return err
	}
	if err := r.Theme.Validate(); err != nil {
		return err
	}
	if r.Kind == theme.KindNPC && r.Gender != nil {
		if err := r.Gender.Validate(); err != nil {
			return err
		}
	}
	if r.Kind == theme.KindBuilding && r.BuildingType != nil {
		if err := r.BuildingType.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r Request) assembler(data *theme.Data) assembler {
	switch r.Kind {
	case theme.KindNPC:
		return npcAssembler(data, r.Gender)
	case theme.KindBuilding:
		return buildingAssembler(data, r.BuildingType)
	case theme.KindCity:
		return cityAssembler(data)
	case theme.KindDistrict:
		return districtAssembler(data)
	case theme.KindStreet:
		return streetAssembler(data)
	default:
		return factionAssembler(data)
	}
}
